package parser

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/prefabgo/internal/ctxlog"
	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/registry"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
	"github.com/specialistvlad/prefabgo/internal/schema"
	"github.com/zeebo/blake3"
)

// Options controls parsing behavior.
type Options struct {
	// Strict rejects fields the grammar does not declare instead of ignoring them.
	Strict bool
}

// Parser parses prefab text. It is safe for concurrent use.
type Parser struct {
	registry *registry.Registry
	opts     Options
}

// New creates a parser resolving embedded types through reg.
func New(reg *registry.Registry, opts Options) *Parser {
	return &Parser{registry: reg, opts: opts}
}

// ParseFile reads and parses a prefab file. The path is used as the source.
func (p *Parser) ParseFile(ctx context.Context, path string) (*model.Definition, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefab %s: %w", path, err)
	}
	return p.Parse(ctx, path, text)
}

// Parse parses prefab text. source only labels errors and the result.
func (p *Parser) Parse(ctx context.Context, source string, text []byte) (*model.Definition, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing prefab.", "source", source, "bytes", len(text))

	dec := schema.Decoder{Strict: p.opts.Strict}
	root, err := dec.Decode(text, schema.Prototype)
	if err != nil {
		return nil, &model.SchemaError{Source: source, Err: fmt.Errorf("%w: %w", model.ErrMalformed, err)}
	}

	digest := blake3.Sum256(text)
	b := &builder{
		source: source,
		ids:    make(map[string]string),
		def: &model.Definition{
			Source:     source,
			Digest:     hex.EncodeToString(digest[:]),
			Components: []model.ComponentRef{},
			Embedded:   []model.EmbeddedEntry{},
		},
	}

	for i, block := range root.List("components") {
		if err := b.addComponent(i, block); err != nil {
			return nil, err
		}
	}
	for i, block := range root.List("embedded_components") {
		if err := b.addEmbedded(ctx, i, block, p.registry, dec); err != nil {
			return nil, err
		}
	}

	logger.Debug("Prefab parsed.", "source", source, "components", len(b.def.Components), "embedded", len(b.def.Embedded))
	return b.def, nil
}

// builder accumulates one Definition and tracks which block claimed each id.
type builder struct {
	source string
	ids    map[string]string
	def    *model.Definition
}

func (b *builder) fail(block, id, field string, err error) error {
	return &model.SchemaError{Source: b.source, Block: block, ID: id, Field: field, Err: err}
}

// claim records id for block. Ids are unique across both block kinds.
func (b *builder) claim(block, id string) error {
	if id == "" {
		return b.fail(block, "", "id", model.ErrMissingField)
	}
	if prev, dup := b.ids[id]; dup {
		return b.fail(block, id, "id", fmt.Errorf("%w: %q already declared by %s", model.ErrDuplicateID, id, prev))
	}
	b.ids[id] = block
	return nil
}

func (b *builder) addComponent(i int, msg schema.Message) error {
	block := fmt.Sprintf("components[%d]", i)
	id := msg.Text("id")
	if err := b.claim(block, id); err != nil {
		return err
	}

	component := msg.Text("component")
	if component == "" {
		return b.fail(block, id, "component", model.ErrMissingField)
	}

	props, badField := parseProperties(msg.List("properties"))
	if badField != "" {
		return b.fail(block, id, badField, model.ErrMissingField)
	}

	b.def.Components = append(b.def.Components, model.ComponentRef{
		ID:         id,
		Component:  resourcepath.Path(component),
		Transform:  parseTransform(msg),
		Properties: props,
	})
	return nil
}

func (b *builder) addEmbedded(ctx context.Context, i int, msg schema.Message, reg *registry.Registry, dec schema.Decoder) error {
	block := fmt.Sprintf("embedded_components[%d]", i)
	id := msg.Text("id")
	if err := b.claim(block, id); err != nil {
		return err
	}

	kind := msg.Text("type")
	if kind == "" {
		return b.fail(block, id, "type", model.ErrMissingField)
	}
	parse, ok := reg.Lookup(kind)
	if !ok {
		return b.fail(block, id, "type", fmt.Errorf("%w: %q (known: %s)", model.ErrUnknownType, kind, strings.Join(reg.Kinds(), ", ")))
	}

	payload, err := parse(ctx, []byte(msg.Text("data")), dec)
	if err != nil {
		var schemaErr *model.SchemaError
		if errors.As(err, &schemaErr) {
			field := "data"
			if schemaErr.Field != "" {
				field += "." + schemaErr.Field
			}
			return b.fail(block, id, field, schemaErr.Err)
		}
		return b.fail(block, id, "data", fmt.Errorf("%w: %w", model.ErrMalformed, err))
	}
	if payload == nil {
		return b.fail(block, id, "data", fmt.Errorf("%w: %q parser returned no payload", model.ErrMalformed, kind))
	}

	b.def.Embedded = append(b.def.Embedded, model.EmbeddedEntry{
		ID:        id,
		Type:      kind,
		Transform: parseTransform(msg),
		Payload:   payload,
	})
	return nil
}
