// Package embedded implements the payload parsers for the embedded component
// types that ship with prefabgo, "model" and "sprite", and exposes them as
// registry modules.
package embedded
