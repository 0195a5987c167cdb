// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Definition, the parsed form of a prefab source file.
//
// Why keep ordered slices instead of maps keyed by id?
//
// Ids are local component slots, and the order in which components and
// embedded entries are declared is meaningful to the scene-graph builder (it
// is the order in which they are attached). A map would lose that order, so
// ids are kept unique by the parser and looked up linearly; definitions hold a
// handful of entries at most.
package model

import (
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
)

// Definition is the parsed, immutable form of a prefab. It is never mutated
// after the parser returns it, so it may be shared between goroutines that
// instantiate it concurrently.
type Definition struct {
	// Source identifies where the text came from (a file or resource path).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Digest is the hex BLAKE3 hash of the source text.
	Digest     string          `json:"digest" yaml:"digest"`
	Components []ComponentRef  `json:"components" yaml:"components"`
	Embedded   []EmbeddedEntry `json:"embedded_components" yaml:"embedded_components"`
}

// FindComponent returns the external component reference with the given id.
func (d *Definition) FindComponent(id string) (*ComponentRef, bool) {
	for i := range d.Components {
		if d.Components[i].ID == id {
			return &d.Components[i], true
		}
	}
	return nil, false
}

// FindEmbedded returns the embedded entry with the given id.
func (d *Definition) FindEmbedded(id string) (*EmbeddedEntry, bool) {
	for i := range d.Embedded {
		if d.Embedded[i].ID == id {
			return &d.Embedded[i], true
		}
	}
	return nil, false
}

// ComponentRef binds a local id to an externally defined behavior component.
type ComponentRef struct {
	ID         string            `json:"id" yaml:"id"`
	Component  resourcepath.Path `json:"component" yaml:"component"`
	Transform  Transform         `json:"transform" yaml:"transform"`
	Properties []Property        `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func (c ComponentRef) clone() ComponentRef {
	c.Properties = append([]Property(nil), c.Properties...)
	return c
}

// PropertyType tells the consuming script runtime how to read a Property value.
type PropertyType string

const (
	PropertyNumber  PropertyType = "number"
	PropertyHash    PropertyType = "hash"
	PropertyURL     PropertyType = "url"
	PropertyVector3 PropertyType = "vector3"
	PropertyVector4 PropertyType = "vector4"
	PropertyQuat    PropertyType = "quat"
	PropertyBoolean PropertyType = "boolean"
)

// Property overrides a script property. Value is carried verbatim.
type Property struct {
	ID    string       `json:"id" yaml:"id"`
	Value string       `json:"value" yaml:"value"`
	Type  PropertyType `json:"type" yaml:"type"`
}

// EmbeddedEntry is an inline component whose payload was parsed per Type.
type EmbeddedEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Type      string    `json:"type" yaml:"type"`
	Transform Transform `json:"transform" yaml:"transform"`
	Payload   Payload   `json:"data" yaml:"data"`
}

// Payload is the typed content of an embedded entry.
type Payload interface {
	// Kind returns the embedded type name the payload was registered under.
	Kind() string
	// References lists every resource path the payload points at.
	References() []Reference
	// Instantiate returns a deep copy with substitute applied to every
	// name template. The receiver is left untouched.
	Instantiate(substitute func(string) string) Payload
}

// Reference is a resource path together with the field it was found in,
// relative to its owner, e.g. "materials[0].textures[tex0].texture".
type Reference struct {
	Field string
	Path  resourcepath.Path
}
