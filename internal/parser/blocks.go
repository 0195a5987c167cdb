package parser

import (
	"fmt"

	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/schema"
)

var propertyTypes = map[string]model.PropertyType{
	"PROPERTY_TYPE_NUMBER":  model.PropertyNumber,
	"PROPERTY_TYPE_HASH":    model.PropertyHash,
	"PROPERTY_TYPE_URL":     model.PropertyURL,
	"PROPERTY_TYPE_VECTOR3": model.PropertyVector3,
	"PROPERTY_TYPE_VECTOR4": model.PropertyVector4,
	"PROPERTY_TYPE_QUAT":    model.PropertyQuat,
	"PROPERTY_TYPE_BOOLEAN": model.PropertyBoolean,
}

// parseTransform reads the optional position, rotation and scale blocks.
// Absent blocks read as the identity transform.
func parseTransform(msg schema.Message) model.Transform {
	pos := msg.Message("position")
	rot := msg.Message("rotation")
	scale := msg.Message("scale")

	return model.Transform{
		Position: model.Vector3{X: pos.Float("x"), Y: pos.Float("y"), Z: pos.Float("z")},
		Rotation: model.Quat{X: rot.Float("x"), Y: rot.Float("y"), Z: rot.Float("z"), W: rot.Float("w")},
		Scale:    model.Vector3{X: scale.Float("x"), Y: scale.Float("y"), Z: scale.Float("z")},
	}
}

// parseProperties reads script property overrides in declaration order. It
// returns the field of the first property missing its id, if any.
func parseProperties(blocks []schema.Message) ([]model.Property, string) {
	if len(blocks) == 0 {
		return nil, ""
	}
	props := make([]model.Property, 0, len(blocks))
	for i, b := range blocks {
		id := b.Text("id")
		if id == "" {
			return nil, fmt.Sprintf("properties[%d].id", i)
		}
		props = append(props, model.Property{
			ID:    id,
			Value: b.Text("value"),
			Type:  propertyTypes[b.Enum("type")],
		})
	}
	return props, ""
}
