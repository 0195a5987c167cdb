package parser

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/prefabgo/internal/embedded"
	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/registry"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
	"github.com/specialistvlad/prefabgo/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodesDir = "../../testdata/project/src/Modules/Render/Scene/Nodes"

func newTestParser(strict bool) *Parser {
	return New(embedded.NewRegistry(), Options{Strict: strict})
}

func TestParse_PointLight(t *testing.T) {
	def, err := newTestParser(false).ParseFile(context.Background(), filepath.Join(nodesDir, "PointLight.go"))
	require.NoError(t, err)

	require.Len(t, def.Components, 1)
	light := def.Components[0]
	assert.Equal(t, "Light", light.ID)
	assert.Equal(t, resourcepath.Path("/src/Modules/Render/Scene/Nodes/PointLight.script"), light.Component)
	assert.Equal(t, model.IdentityTransform(), light.Transform)
	assert.Empty(t, light.Properties)

	require.Len(t, def.Embedded, 2)
	assert.Equal(t, []string{"model", "model1"}, []string{def.Embedded[0].ID, def.Embedded[1].ID})

	quad, ok := def.FindEmbedded("model")
	require.True(t, ok)
	assert.Equal(t, "model", quad.Type)
	desc := quad.Payload.(*model.ModelDescriptor)
	assert.Equal(t, resourcepath.Path("/builtins/assets/meshes/quad.dae"), desc.Mesh)
	assert.Equal(t, "{{NAME}}", desc.Name)
	assert.Equal(t, []model.MaterialBinding{{
		Name:     "default",
		Material: "/src/Modules/Render/Scene/Materials/Billboard.material",
		Textures: []model.TextureBinding{{Sampler: "tex0", Texture: "/src/Modules/Render/Scene/Textures/render_light.png"}},
	}}, desc.Materials)

	sphere, ok := def.FindEmbedded("model1")
	require.True(t, ok)
	sphereDesc := sphere.Payload.(*model.ModelDescriptor)
	require.Len(t, sphereDesc.Materials, 1)
	assert.Empty(t, sphereDesc.Materials[0].Textures, "absent textures parse to an empty list")

	assert.Len(t, def.Digest, 64)
	assert.Contains(t, def.Source, "PointLight.go")
}

func TestParse_AllLightPrefabs(t *testing.T) {
	for _, name := range []string{"AreaLight.go", "PointLight.go", "SpotLight.go"} {
		t.Run(name, func(t *testing.T) {
			for _, strict := range []bool{false, true} {
				def, err := newTestParser(strict).ParseFile(context.Background(), filepath.Join(nodesDir, name))
				require.NoError(t, err, "strict=%v", strict)
				assert.NotEmpty(t, def.Components)
				assert.NotEmpty(t, def.Embedded)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	text, err := os.ReadFile(filepath.Join(nodesDir, "AreaLight.go"))
	require.NoError(t, err)

	p := newTestParser(false)
	first, err := p.Parse(context.Background(), "AreaLight.go", text)
	require.NoError(t, err)
	second, err := p.Parse(context.Background(), "AreaLight.go", text)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("parsing the same text twice differs (-first +second):\n%s", diff)
	}
	assert.NotSame(t, first, second)
}

func TestParse_ComponentDetails(t *testing.T) {
	def, err := newTestParser(false).ParseFile(context.Background(), "../../testdata/project/src/checked/checked.go")
	require.NoError(t, err)

	sprite, ok := def.FindComponent("referenced_sprite")
	require.True(t, ok)
	assert.Equal(t, model.Vector3{X: 0.1, Y: 0.2, Z: 0.3}, sprite.Transform.Position)
	assert.Equal(t, model.Vector3{X: 1.1, Y: 1.2, Z: 1.3}, sprite.Transform.Scale)
	assert.InDelta(t, 0.99999464, sprite.Transform.Rotation.W, 1e-9)

	script, ok := def.FindComponent("referenced_script")
	require.True(t, ok)
	require.Len(t, script.Properties, 7)
	assert.Equal(t, model.Property{ID: "boolean", Value: "true", Type: model.PropertyBoolean}, script.Properties[0])
	assert.Equal(t, model.Property{ID: "url", Value: "#referenced_script", Type: model.PropertyURL}, script.Properties[5])
	assert.Equal(t, model.PropertyHash, script.Properties[6].Type)

	entry, ok := def.FindEmbedded("embedded_sprite")
	require.True(t, ok)
	assert.Equal(t, "sprite", entry.Type)
	assert.Equal(t, model.Vector3{X: 0.1, Y: 0.2, Z: 0.3}, entry.Transform.Position)
	spriteDesc := entry.Payload.(*model.SpriteDescriptor)
	assert.Equal(t, "diamond", spriteDesc.DefaultAnimation)
	assert.Equal(t, []model.TextureBinding{{Sampler: "texture0", Texture: "/checked.atlas"}}, spriteDesc.Textures)

	_, ok = def.FindComponent("embedded_sprite")
	assert.False(t, ok)
}

func TestParse_Empty(t *testing.T) {
	def, err := newTestParser(true).Parse(context.Background(), "empty.go", nil)
	require.NoError(t, err)
	assert.Empty(t, def.Components)
	assert.Empty(t, def.Embedded)
}

func TestParse_AbsentMaterials(t *testing.T) {
	text := `embedded_components {
  id: "model"
  type: "model"
  data: "mesh: \"/src/Meshes/Light.glb\"\n"
  "name: \"{{NAME}}\"\n"
}`
	def, err := newTestParser(false).Parse(context.Background(), "", []byte(text))
	require.NoError(t, err)

	desc := def.Embedded[0].Payload.(*model.ModelDescriptor)
	require.NotNil(t, desc.Materials)
	assert.Empty(t, desc.Materials)
}

func TestParse_UnknownFields(t *testing.T) {
	text := `components {
  id: "Light"
  component: "/src/Light.script"
  property_decls { }
}
property_resources: "/src/a.png"
`
	_, err := newTestParser(false).Parse(context.Background(), "", []byte(text))
	require.NoError(t, err)

	_, err = newTestParser(true).Parse(context.Background(), "", []byte(text))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMalformed)
}

func TestParse_SchemaErrors(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		sentinel  error
		wantBlock string
		wantField string
	}{
		{
			name:      "duplicate id across block kinds",
			text:      `components { id: "model" component: "/a.script" } embedded_components { id: "model" type: "model" data: "mesh: \"/a.dae\"" }`,
			sentinel:  model.ErrDuplicateID,
			wantBlock: "embedded_components[0]",
			wantField: "id",
		},
		{
			name:      "duplicate component id",
			text:      `components { id: "a" component: "/a.script" } components { id: "a" component: "/b.script" }`,
			sentinel:  model.ErrDuplicateID,
			wantBlock: "components[1]",
			wantField: "id",
		},
		{
			name: "duplicate embedded id",
			text: `embedded_components { id: "m" type: "model" data: "mesh: \"/a.dae\"" }
embedded_components { id: "m" type: "model" data: "mesh: \"/b.dae\"" }`,
			sentinel:  model.ErrDuplicateID,
			wantBlock: "embedded_components[1]",
			wantField: "id",
		},
		{
			name:      "unknown embedded type",
			text:      `embedded_components { id: "x" type: "unknown_kind" data: "" }`,
			sentinel:  model.ErrUnknownType,
			wantBlock: "embedded_components[0]",
			wantField: "type",
		},
		{
			name:      "missing component id",
			text:      `components { component: "/a.script" }`,
			sentinel:  model.ErrMissingField,
			wantBlock: "components[0]",
			wantField: "id",
		},
		{
			name:      "missing component path",
			text:      `components { id: "Light" }`,
			sentinel:  model.ErrMissingField,
			wantBlock: "components[0]",
			wantField: "component",
		},
		{
			name:      "missing property id",
			text:      `components { id: "Light" component: "/a.script" properties { value: "1" } }`,
			sentinel:  model.ErrMissingField,
			wantBlock: "components[0]",
			wantField: "properties[0].id",
		},
		{
			name:      "missing embedded type",
			text:      `embedded_components { id: "x" data: "" }`,
			sentinel:  model.ErrMissingField,
			wantBlock: "embedded_components[0]",
			wantField: "type",
		},
		{
			name:      "missing mesh",
			text:      `embedded_components { id: "m" type: "model" data: "name: \"{{NAME}}\"" }`,
			sentinel:  model.ErrMissingField,
			wantBlock: "embedded_components[0]",
			wantField: "data.mesh",
		},
		{
			name:      "missing material path",
			text:      `embedded_components { id: "m" type: "model" data: "mesh: \"/a.dae\" materials { name: \"default\" }" }`,
			sentinel:  model.ErrMissingField,
			wantBlock: "embedded_components[0]",
			wantField: "data.materials[0].material",
		},
		{
			name:      "malformed payload",
			text:      `embedded_components { id: "m" type: "model" data: "mesh: " }`,
			sentinel:  model.ErrMalformed,
			wantBlock: "embedded_components[0]",
			wantField: "data",
		},
		{
			name:     "malformed prototype",
			text:     `components { id: "a"`,
			sentinel: model.ErrMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := newTestParser(false).Parse(context.Background(), "test.go", []byte(tc.text))
			require.Error(t, err)
			assert.Nil(t, def, "a failed parse must not return a partial definition")
			assert.ErrorIs(t, err, tc.sentinel)

			var schemaErr *model.SchemaError
			require.True(t, errors.As(err, &schemaErr))
			assert.Equal(t, "test.go", schemaErr.Source)
			assert.Equal(t, tc.wantBlock, schemaErr.Block)
			assert.Equal(t, tc.wantField, schemaErr.Field)
		})
	}
}

type nilPayloadModule struct{}

func (nilPayloadModule) Register(r *registry.Registry) {
	r.RegisterKind("empty", func(ctx context.Context, data []byte, dec schema.Decoder) (model.Payload, error) {
		return nil, nil
	})
}

func TestParse_NilPayload(t *testing.T) {
	p := New(registry.New(nilPayloadModule{}), Options{})

	def, err := p.Parse(context.Background(), "test.go", []byte(`embedded_components { id: "e" type: "empty" data: "" }`))
	require.Error(t, err)
	assert.Nil(t, def)
	assert.ErrorIs(t, err, model.ErrMalformed)

	var schemaErr *model.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "embedded_components[0]", schemaErr.Block)
	assert.Equal(t, "data", schemaErr.Field)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := newTestParser(false).ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.go"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
