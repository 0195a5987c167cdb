// Package parser turns prefab source text into a model.Definition.
//
// A prefab is a sequence of top-level `components` blocks (external component
// references) and `embedded_components` blocks (inline, typed payloads). The
// `data` of each embedded block is parsed by the payload parser registered for
// its `type`, using the same schema.Decoder as the enclosing text.
//
// Parsing is pure and atomic: the same text always yields an equal Definition,
// and any problem yields a *model.SchemaError with no Definition at all.
package parser
