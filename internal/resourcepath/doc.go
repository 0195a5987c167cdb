/*
Package resourcepath provides the value type used to address other assets
from a prefab, e.g. `/src/Modules/Render/Scene/Materials/Sphere.material`.

A Path is opaque to this layer. Whether the referenced asset exists is the
concern of the asset-resolution collaborator; this package only answers
whether a path is syntactically well formed and, optionally, rooted at one
of a set of known namespaces.
*/
package resourcepath
