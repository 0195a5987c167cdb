// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the placement of a component within its node.
package model

// Vector3 is a point or a per-axis scale.
type Vector3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Quat is a rotation quaternion.
type Quat struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// Transform places a component relative to its node.
type Transform struct {
	Position Vector3 `json:"position" yaml:"position"`
	Rotation Quat    `json:"rotation" yaml:"rotation"`
	Scale    Vector3 `json:"scale" yaml:"scale"`
}

// IdentityTransform is the placement used when a block declares none:
// origin, no rotation, unit scale.
func IdentityTransform() Transform {
	return Transform{
		Rotation: Quat{W: 1},
		Scale:    Vector3{X: 1, Y: 1, Z: 1},
	}
}
