// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the embedded payloads that ship with the core: models and
// sprites, together with the material and texture bindings they share.
//
// Binding order is preserved exactly as declared. The consuming material system
// gives it meaning (rendering priority); this layer never reorders it.
package model

import (
	"fmt"

	"github.com/specialistvlad/prefabgo/internal/resourcepath"
)

const (
	KindModel  = "model"
	KindSprite = "sprite"
)

// TextureBinding pairs a sampler slot with a texture.
type TextureBinding struct {
	Sampler string            `json:"sampler" yaml:"sampler"`
	Texture resourcepath.Path `json:"texture" yaml:"texture"`
}

// MaterialBinding binds a named material slot to a material asset and its
// texture samplers.
type MaterialBinding struct {
	Name     string            `json:"name" yaml:"name"`
	Material resourcepath.Path `json:"material" yaml:"material"`
	Textures []TextureBinding  `json:"textures" yaml:"textures"`
}

func (m MaterialBinding) clone() MaterialBinding {
	m.Textures = append([]TextureBinding{}, m.Textures...)
	return m
}

// ModelDescriptor is the payload of a "model" embedded entry.
type ModelDescriptor struct {
	Mesh resourcepath.Path `json:"mesh" yaml:"mesh"`
	// Name is a template; "{{NAME}}" is replaced on instantiation.
	Name      string            `json:"name" yaml:"name"`
	Materials []MaterialBinding `json:"materials" yaml:"materials"`

	Skeleton         resourcepath.Path `json:"skeleton,omitempty" yaml:"skeleton,omitempty"`
	Animations       resourcepath.Path `json:"animations,omitempty" yaml:"animations,omitempty"`
	DefaultAnimation string            `json:"default_animation,omitempty" yaml:"default_animation,omitempty"`

	// Legacy single-material form, carried as declared.
	Material resourcepath.Path `json:"material,omitempty" yaml:"material,omitempty"`
	Textures []TextureBinding  `json:"textures,omitempty" yaml:"textures,omitempty"`
}

// Kind implements Payload.
func (m *ModelDescriptor) Kind() string { return KindModel }

// References implements Payload.
func (m *ModelDescriptor) References() []Reference {
	refs := []Reference{{Field: "mesh", Path: m.Mesh}}
	refs = appendOptional(refs, "skeleton", m.Skeleton)
	refs = appendOptional(refs, "animations", m.Animations)
	refs = appendOptional(refs, "material", m.Material)
	refs = append(refs, textureReferences("textures", m.Textures)...)
	for i, mat := range m.Materials {
		prefix := fmt.Sprintf("materials[%d]", i)
		refs = append(refs, Reference{Field: prefix + ".material", Path: mat.Material})
		refs = append(refs, textureReferences(prefix+".textures", mat.Textures)...)
	}
	return refs
}

// Instantiate implements Payload.
func (m *ModelDescriptor) Instantiate(substitute func(string) string) Payload {
	out := *m
	out.Name = substitute(m.Name)
	out.Materials = make([]MaterialBinding, len(m.Materials))
	for i, mat := range m.Materials {
		out.Materials[i] = mat.clone()
	}
	if m.Textures != nil {
		out.Textures = append([]TextureBinding{}, m.Textures...)
	}
	return &out
}

// SpriteDescriptor is the payload of a "sprite" embedded entry.
type SpriteDescriptor struct {
	TileSet          resourcepath.Path `json:"tile_set,omitempty" yaml:"tile_set,omitempty"`
	DefaultAnimation string            `json:"default_animation,omitempty" yaml:"default_animation,omitempty"`
	Material         resourcepath.Path `json:"material,omitempty" yaml:"material,omitempty"`
	Textures         []TextureBinding  `json:"textures" yaml:"textures"`
}

// Kind implements Payload.
func (s *SpriteDescriptor) Kind() string { return KindSprite }

// References implements Payload.
func (s *SpriteDescriptor) References() []Reference {
	var refs []Reference
	refs = appendOptional(refs, "tile_set", s.TileSet)
	refs = appendOptional(refs, "material", s.Material)
	return append(refs, textureReferences("textures", s.Textures)...)
}

// Instantiate implements Payload. Sprites carry no name template.
func (s *SpriteDescriptor) Instantiate(func(string) string) Payload {
	out := *s
	out.Textures = append([]TextureBinding{}, s.Textures...)
	return &out
}

func appendOptional(refs []Reference, field string, p resourcepath.Path) []Reference {
	if p.IsZero() {
		return refs
	}
	return append(refs, Reference{Field: field, Path: p})
}

func textureReferences(prefix string, textures []TextureBinding) []Reference {
	refs := make([]Reference, 0, len(textures))
	for _, tex := range textures {
		refs = append(refs, Reference{
			Field: fmt.Sprintf("%s[%s].texture", prefix, tex.Sampler),
			Path:  tex.Texture,
		})
	}
	return refs
}
