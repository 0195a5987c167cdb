package instantiate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/prefabgo/internal/embedded"
	"github.com/specialistvlad/prefabgo/internal/model"
	"github.com/specialistvlad/prefabgo/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodesDir = "../../testdata/project/src/Modules/Render/Scene/Nodes"

func loadDefinition(t *testing.T, name string) *model.Definition {
	t.Helper()
	p := parser.New(embedded.NewRegistry(), parser.Options{})
	def, err := p.ParseFile(context.Background(), filepath.Join(nodesDir, name))
	require.NoError(t, err)
	return def
}

func definitionWithName(t *testing.T, template string) *model.Definition {
	t.Helper()
	text := fmt.Sprintf(`components { id: "Light" component: "/src/Light.script" }
embedded_components {
  id: "model"
  type: "model"
  data: "mesh: \"/src/Meshes/Light.glb\"\n"
  "name: \"%s\"\n"
}`, template)
	p := parser.New(embedded.NewRegistry(), parser.Options{})
	def, err := p.Parse(context.Background(), "inline", []byte(text))
	require.NoError(t, err)
	return def
}

func modelName(t *testing.T, inst *model.Instance, id string) string {
	t.Helper()
	entry, ok := inst.FindEmbedded(id)
	require.True(t, ok, "embedded entry %q not found", id)
	return entry.Payload.(*model.ModelDescriptor).Name
}

func TestInstantiate_PointLight(t *testing.T) {
	def := loadDefinition(t, "PointLight.go")

	inst, err := Instantiate(context.Background(), def, "Lamp01")
	require.NoError(t, err)

	assert.Equal(t, "Lamp01", inst.Name)
	assert.Equal(t, def.Source, inst.Source)
	assert.Equal(t, def.Components, inst.Components)

	entry, ok := inst.FindEmbedded("model")
	require.True(t, ok)
	desc := entry.Payload.(*model.ModelDescriptor)
	assert.Equal(t, "Lamp01", desc.Name)

	source, _ := def.FindEmbedded("model")
	assert.Equal(t, source.Payload.(*model.ModelDescriptor).Materials, desc.Materials, "bindings must be carried unchanged")
	assert.Equal(t, source.Payload.(*model.ModelDescriptor).Mesh, desc.Mesh)

	assert.Equal(t, "Lamp01", modelName(t, inst, "model1"))
	assert.Equal(t, "{{NAME}}", source.Payload.(*model.ModelDescriptor).Name, "the definition must not change")
}

func TestInstantiate_Templates(t *testing.T) {
	testCases := []struct {
		name     string
		template string
		instance string
		expected string
	}{
		{name: "exact placeholder", template: "{{NAME}}", instance: "Lamp01", expected: "Lamp01"},
		{name: "no placeholder", template: "sphere", instance: "Lamp01", expected: "sphere"},
		{name: "empty template", template: "", instance: "Lamp01", expected: ""},
		{name: "prefix and suffix", template: "light_{{NAME}}_mesh", instance: "A", expected: "light_A_mesh"},
		{name: "repeated placeholder", template: "{{NAME}}/{{NAME}}", instance: "x", expected: "x/x"},
		{name: "near miss is literal", template: "{{ NAME }} {{name}}", instance: "x", expected: "{{ NAME }} {{name}}"},
		{name: "name containing placeholder", template: "{{NAME}}", instance: "{{NAME}}", expected: "{{NAME}}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inst, err := Instantiate(context.Background(), definitionWithName(t, tc.template), tc.instance)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, modelName(t, inst, "model"))
		})
	}
}

func TestInstantiate_Deterministic(t *testing.T) {
	def := loadDefinition(t, "SpotLight.go")

	first, err := Instantiate(context.Background(), def, "Spot1")
	require.NoError(t, err)
	second, err := Instantiate(context.Background(), def, "Spot1")
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("instantiation is not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, ID(def, "Spot1"), first.ID)

	other, err := Instantiate(context.Background(), def, "Spot2")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestInstantiate_InvalidName(t *testing.T) {
	def := loadDefinition(t, "AreaLight.go")

	inst, err := Instantiate(context.Background(), def, "")
	require.Error(t, err)
	assert.Nil(t, inst)

	var nameErr *model.InvalidNameError
	require.True(t, errors.As(err, &nameErr))
	assert.Equal(t, "", nameErr.Name)
}

func TestInstantiate_SharesNoMemory(t *testing.T) {
	def := loadDefinition(t, "PointLight.go")
	def.Components[0].Properties = []model.Property{{ID: "radius", Value: "4", Type: model.PropertyNumber}}

	a, err := Instantiate(context.Background(), def, "A")
	require.NoError(t, err)
	b, err := Instantiate(context.Background(), def, "B")
	require.NoError(t, err)

	a.Components[0].Properties[0].Value = "10"
	aDesc := a.Embedded[0].Payload.(*model.ModelDescriptor)
	aDesc.Materials[0].Textures[0].Texture = "/changed.png"
	aDesc.Materials[0].Name = "changed"

	defDesc := def.Embedded[0].Payload.(*model.ModelDescriptor)
	bDesc := b.Embedded[0].Payload.(*model.ModelDescriptor)
	for _, desc := range []*model.ModelDescriptor{defDesc, bDesc} {
		assert.Equal(t, "default", desc.Materials[0].Name)
		assert.EqualValues(t, "/src/Modules/Render/Scene/Textures/render_light.png", desc.Materials[0].Textures[0].Texture)
	}
	assert.Equal(t, "4", def.Components[0].Properties[0].Value)
	assert.Equal(t, "4", b.Components[0].Properties[0].Value)
}

func TestInstantiate_Concurrent(t *testing.T) {
	def := loadDefinition(t, "PointLight.go")

	const workers = 16
	results := make([]*model.Instance, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			inst, err := Instantiate(context.Background(), def, fmt.Sprintf("Lamp%02d", i%4))
			assert.NoError(t, err)
			results[i] = inst
		}(i)
	}
	wg.Wait()

	for i, inst := range results {
		require.NotNil(t, inst)
		expected := fmt.Sprintf("Lamp%02d", i%4)
		assert.Equal(t, expected, modelName(t, inst, "model"))
		assert.Equal(t, results[i%4].ID, inst.ID)
	}
}

func TestInstantiateWith(t *testing.T) {
	def := definitionWithName(t, "{{NAME}}_{{LOD}}")

	inst, err := InstantiateWith(context.Background(), def, "Lamp", map[string]string{"{{LOD}}": "lod0"})
	require.NoError(t, err)
	assert.Equal(t, "Lamp_lod0", modelName(t, inst, "model"))

	t.Run("single pass", func(t *testing.T) {
		inst, err := InstantiateWith(context.Background(), def, "{{LOD}}", map[string]string{"{{LOD}}": "{{NAME}}"})
		require.NoError(t, err)
		assert.Equal(t, "{{LOD}}_{{NAME}}", modelName(t, inst, "model"))
	})

	t.Run("unmapped tokens stay literal", func(t *testing.T) {
		inst, err := InstantiateWith(context.Background(), def, "Lamp", nil)
		require.NoError(t, err)
		assert.Equal(t, "Lamp_{{LOD}}", modelName(t, inst, "model"))
	})
}

func TestInstantiateWith_ID(t *testing.T) {
	def := definitionWithName(t, "{{NAME}}_{{LOD}}")

	lod0, err := InstantiateWith(context.Background(), def, "Lamp", map[string]string{"{{LOD}}": "lod0"})
	require.NoError(t, err)
	lod1, err := InstantiateWith(context.Background(), def, "Lamp", map[string]string{"{{LOD}}": "lod1"})
	require.NoError(t, err)
	plain, err := Instantiate(context.Background(), def, "Lamp")
	require.NoError(t, err)

	assert.NotEqual(t, lod0.ID, lod1.ID)
	assert.NotEqual(t, lod0.ID, plain.ID)
	assert.Equal(t, ID(def, "Lamp"), plain.ID)
	assert.Equal(t, IDWith(def, "Lamp", nil), plain.ID)
	assert.Equal(t, IDWith(def, "Lamp", map[string]string{"{{LOD}}": "lod0"}), lod0.ID)

	multi := map[string]string{"{{A}}": "1", "{{B}}": "2", "{{C}}": "3"}
	first, err := InstantiateWith(context.Background(), def, "Lamp", multi)
	require.NoError(t, err)
	second, err := InstantiateWith(context.Background(), def, "Lamp", map[string]string{"{{C}}": "3", "{{B}}": "2", "{{A}}": "1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestInstantiateWith_InvalidTokens(t *testing.T) {
	def := definitionWithName(t, "{{NAME}}")

	testCases := []struct {
		name  string
		extra map[string]string
	}{
		{name: "empty token", extra: map[string]string{"": "x"}},
		{name: "reserved token", extra: map[string]string{Placeholder: "x"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := InstantiateWith(context.Background(), def, "Lamp", tc.extra)
			var nameErr *model.InvalidNameError
			assert.True(t, errors.As(err, &nameErr))
		})
	}
}
