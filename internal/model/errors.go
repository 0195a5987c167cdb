// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the error kinds surfaced by parsing and instantiation.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel causes wrapped by SchemaError. Check them with errors.Is.
var (
	ErrMalformed        = errors.New("malformed text")
	ErrMissingField     = errors.New("missing required field")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrDuplicateSampler = errors.New("duplicate sampler")
	ErrUnknownType      = errors.New("unknown embedded type")
)

// SchemaError reports prefab text that does not describe a valid Definition.
type SchemaError struct {
	Source string // file or resource the text came from, if known
	Block  string // e.g. "embedded_components[1]"
	ID     string // id of the offending entry, if known
	Field  string // e.g. "mesh" or "materials[0].material"
	Err    error  // one of the sentinels above, possibly wrapping a lower-level error
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var sb strings.Builder
	sb.WriteString("schema error")
	if e.Source != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Source)
	}
	if e.Block != "" {
		sb.WriteString(" [block: ")
		sb.WriteString(e.Block)
		if e.ID != "" {
			fmt.Fprintf(&sb, " id=%q", e.ID)
		}
		sb.WriteString("]")
	}
	if e.Field != "" {
		sb.WriteString(" [field: ")
		sb.WriteString(e.Field)
		sb.WriteString("]")
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *SchemaError) Unwrap() error {
	return e.Err
}

// InvalidNameError reports an instantiation name or token that cannot be used.
type InvalidNameError struct {
	Name   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid instance name %q: %s", e.Name, e.Reason)
}
