package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/schema"
)

// PayloadParser parses the `data` text of an embedded entry into a typed
// payload. It must use dec for all decoding so that strictness and the
// grammar engine are shared with the enclosing prototype. Errors about
// specific fields should be *model.SchemaError values with Field set; the
// caller fills in where the entry lives.
type PayloadParser func(ctx context.Context, data []byte, dec schema.Decoder) (model.Payload, error)

// Module is the interface that embedded type packages implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds the payload parsers for a single parser instance.
type Registry struct {
	parsers map[string]PayloadParser
}

// New creates a registry and registers the given modules into it.
func New(modules ...Module) *Registry {
	r := &Registry{parsers: make(map[string]PayloadParser)}
	for _, mod := range modules {
		mod.Register(r)
	}
	return r
}

// RegisterKind registers the parser for an embedded type name.
func (r *Registry) RegisterKind(kind string, parser PayloadParser) {
	if kind == "" {
		panic("embedded type name cannot be empty")
	}
	if parser == nil {
		panic(fmt.Sprintf("payload parser for embedded type '%s' is nil", kind))
	}
	if _, exists := r.parsers[kind]; exists {
		panic(fmt.Sprintf("payload parser for embedded type '%s' already registered", kind))
	}
	slog.Debug("Registering embedded type.", "kind", kind)
	r.parsers[kind] = parser
}

// Lookup returns the parser registered for kind.
func (r *Registry) Lookup(kind string) (PayloadParser, bool) {
	p, ok := r.parsers[kind]
	return p, ok
}

// Kinds returns the registered type names, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
