// Package schema is the grammar engine for prefab text. Prefab files and the
// `data` payloads nested inside them are written in protobuf text format:
// repeated, possibly nested blocks of `name: value` pairs, where adjacent
// string literals are concatenated.
//
// The grammar of every block is declared once in descriptors.go as protobuf
// message descriptors, built at init time and materialized with protodesc.
// Decoding goes through prototext into dynamicpb messages, wrapped by Message
// for convenient, name-based access. The same Decoder handles the outer
// prototype and any nested payload, so nesting needs no special casing.
package schema
