// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go struct representation of a prefab: a reusable
// scene node assembled from references to external behavior components and
// embedded, type-tagged sub-resources.
//
// # Core Concepts
//
//   - Definition: the parsed, immutable form of one prefab source file. It holds
//     the ordered external component references and the ordered embedded entries.
//
//   - ComponentRef: a local id bound to an externally defined component (usually
//     a script), with its placement and property overrides.
//
//   - EmbeddedEntry: an inline component whose payload was parsed according to
//     its declared type. The payload is a Payload implementation such as
//     ModelDescriptor or SpriteDescriptor.
//
//   - Instance: what a scene spawns. It is produced from a Definition and a
//     concrete name by the instantiate package, with every name template
//     resolved. The caller owns it; nothing here caches instances.
//
// Why a separate model package?
//
// The parser, the instantiator, the reference validator and the encoders all
// speak in terms of these types. Keeping them free of any text-format concerns
// means the grammar engine can change without touching its consumers, and
// consumers never observe format-specific values.
package model
