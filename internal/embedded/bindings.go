package embedded

import (
	"fmt"

	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
	"github.com/specialistvlad/prefabgo/internal/schema"
)

func missing(field string) error {
	return &model.SchemaError{Field: field, Err: model.ErrMissingField}
}

func malformed(err error) error {
	return &model.SchemaError{Err: fmt.Errorf("%w: %w", model.ErrMalformed, err)}
}

// parseTextures converts `textures` blocks into bindings. Samplers must be
// unique within one list. The result is never nil.
func parseTextures(blocks []schema.Message, field string) ([]model.TextureBinding, error) {
	textures := make([]model.TextureBinding, 0, len(blocks))
	seen := make(map[string]struct{}, len(blocks))

	for i, b := range blocks {
		sampler := b.Text("sampler")
		if sampler == "" {
			return nil, missing(fmt.Sprintf("%s[%d].sampler", field, i))
		}
		if _, dup := seen[sampler]; dup {
			return nil, &model.SchemaError{
				Field: fmt.Sprintf("%s[%d].sampler", field, i),
				Err:   fmt.Errorf("%w: %q", model.ErrDuplicateSampler, sampler),
			}
		}
		seen[sampler] = struct{}{}

		texture := b.Text("texture")
		if texture == "" {
			return nil, missing(fmt.Sprintf("%s[%d].texture", field, i))
		}
		textures = append(textures, model.TextureBinding{
			Sampler: sampler,
			Texture: resourcepath.Path(texture),
		})
	}
	return textures, nil
}

// parseMaterials converts `materials` blocks into bindings, preserving order.
// The result is never nil.
func parseMaterials(blocks []schema.Message) ([]model.MaterialBinding, error) {
	materials := make([]model.MaterialBinding, 0, len(blocks))
	for i, b := range blocks {
		field := fmt.Sprintf("materials[%d]", i)

		material := b.Text("material")
		if material == "" {
			return nil, missing(field + ".material")
		}
		textures, err := parseTextures(b.List("textures"), field+".textures")
		if err != nil {
			return nil, err
		}
		materials = append(materials, model.MaterialBinding{
			Name:     b.Text("name"),
			Material: resourcepath.Path(material),
			Textures: textures,
		})
	}
	return materials, nil
}
