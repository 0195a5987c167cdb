package embedded

import (
	"context"

	"github.com/specialistvlad/prefabgo/internal/ctxlog"
	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/registry"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
	"github.com/specialistvlad/prefabgo/internal/schema"
)

// Models registers the "model" embedded type.
type Models struct{}

// Register implements registry.Module.
func (Models) Register(r *registry.Registry) {
	r.RegisterKind(model.KindModel, ParseModel)
}

// ParseModel parses the data of a "model" entry. `mesh` is required; an
// absent `materials` list parses to an empty one.
func ParseModel(ctx context.Context, data []byte, dec schema.Decoder) (model.Payload, error) {
	logger := ctxlog.FromContext(ctx)

	msg, err := dec.Decode(data, schema.Model)
	if err != nil {
		return nil, malformed(err)
	}

	mesh := msg.Text("mesh")
	if mesh == "" {
		return nil, missing("mesh")
	}

	materials, err := parseMaterials(msg.List("materials"))
	if err != nil {
		return nil, err
	}

	desc := &model.ModelDescriptor{
		Mesh:             resourcepath.Path(mesh),
		Name:             msg.Text("name"),
		Materials:        materials,
		Skeleton:         resourcepath.Path(msg.Text("skeleton")),
		Animations:       resourcepath.Path(msg.Text("animations")),
		DefaultAnimation: msg.Text("default_animation"),
		Material:         resourcepath.Path(msg.Text("material")),
	}

	if legacy := msg.List("textures"); len(legacy) > 0 {
		desc.Textures, err = parseTextures(legacy, "textures")
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("Parsed model payload.", "mesh", desc.Mesh, "materials", len(desc.Materials))
	return desc, nil
}
