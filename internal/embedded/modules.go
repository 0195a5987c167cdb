package embedded

import "github.com/specialistvlad/prefabgo/internal/registry"

// Core is the definitive list of embedded types compiled into prefabgo.
var Core = []registry.Module{
	Models{},
	Sprites{},
}

// NewRegistry returns a registry holding the Core embedded types.
func NewRegistry() *registry.Registry {
	return registry.New(Core...)
}
