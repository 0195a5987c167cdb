// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Instance, the concrete node a scene spawns from a
// Definition.
//
// Why is an Instance a separate type rather than a copied Definition?
//
// An instance has an identity (its name and a stable id) that a definition
// lacks, and it must never share memory with the definition it came from: a
// scene is free to hand instances to other subsystems that may modify them.
// NewInstance therefore deep-copies everything it takes from the definition.
package model

import (
	"github.com/google/uuid"
)

// Instance is a fully resolved node. It is owned by the caller.
type Instance struct {
	ID         uuid.UUID       `json:"id" yaml:"id"`
	Name       string          `json:"name" yaml:"name"`
	Source     string          `json:"source,omitempty" yaml:"source,omitempty"`
	Components []ComponentRef  `json:"components" yaml:"components"`
	Embedded   []EmbeddedEntry `json:"embedded_components" yaml:"embedded_components"`
}

// NewInstance deep-copies def into a new Instance, applying substitute to
// every name template of every embedded payload.
func NewInstance(id uuid.UUID, name string, def *Definition, substitute func(string) string) *Instance {
	inst := &Instance{
		ID:         id,
		Name:       name,
		Source:     def.Source,
		Components: make([]ComponentRef, len(def.Components)),
		Embedded:   make([]EmbeddedEntry, len(def.Embedded)),
	}
	for i, c := range def.Components {
		inst.Components[i] = c.clone()
	}
	for i, e := range def.Embedded {
		e.Payload = e.Payload.Instantiate(substitute)
		inst.Embedded[i] = e
	}
	return inst
}

// FindEmbedded returns the embedded entry with the given id.
func (i *Instance) FindEmbedded(id string) (*EmbeddedEntry, bool) {
	for idx := range i.Embedded {
		if i.Embedded[idx].ID == id {
			return &i.Embedded[idx], true
		}
	}
	return nil, false
}
