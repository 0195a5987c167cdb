// Package registry provides the mapping from embedded component type names
// (the `type` field of an `embedded_components` block, e.g. "model") to the Go
// functions that parse their `data` payload.
//
// The set of known types is closed at runtime: an entry whose type has no
// registered parser is rejected by the schema parser rather than skipped. New
// types are added by registering a Module at startup; registering the same
// type twice is a programming error and panics.
package registry
