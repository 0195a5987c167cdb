package embedded

import (
	"context"

	"github.com/specialistvlad/prefabgo/internal/ctxlog"
	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/registry"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
	"github.com/specialistvlad/prefabgo/internal/schema"
)

// Sprites registers the "sprite" embedded type.
type Sprites struct{}

// Register implements registry.Module.
func (Sprites) Register(r *registry.Registry) {
	r.RegisterKind(model.KindSprite, ParseSprite)
}

// ParseSprite parses the data of a "sprite" entry.
func ParseSprite(ctx context.Context, data []byte, dec schema.Decoder) (model.Payload, error) {
	msg, err := dec.Decode(data, schema.Sprite)
	if err != nil {
		return nil, malformed(err)
	}

	textures, err := parseTextures(msg.List("textures"), "textures")
	if err != nil {
		return nil, err
	}

	desc := &model.SpriteDescriptor{
		TileSet:          resourcepath.Path(msg.Text("tile_set")),
		DefaultAnimation: msg.Text("default_animation"),
		Material:         resourcepath.Path(msg.Text("material")),
		Textures:         textures,
	}
	ctxlog.FromContext(ctx).Debug("Parsed sprite payload.", "textures", len(desc.Textures))
	return desc, nil
}

