// Package manifest decodes spawn manifests: HCL files listing which prefabs
// to instantiate and under which names.
//
//	namespaces = ["src", "builtins"]
//
//	spawn "spots" {
//	  prefab = "/src/Nodes/SpotLight.go"
//	  count  = 3
//	  name   = "Spot${count.index}"
//	}
//
// A spawn block names its instances with exactly one of `names`, `count` plus
// `name`, or neither, in which case the block label is the single name.
package manifest

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/prefabgo/internal/ctxlog"
	"github.com/specialistvlad/prefabgo/internal/hclutil"
	"github.com/specialistvlad/prefabgo/internal/resourcepath"
	"github.com/zclconf/go-cty/cty"
)

// Manifest is a decoded spawn manifest.
type Manifest struct {
	// Namespaces restricts resource paths when non-empty.
	Namespaces []string
	// Strict is nil when the manifest leaves strictness to the caller.
	Strict *bool
	Spawns []Spawn
	// Output is nil when the manifest has no output block.
	Output *Output
}

// Spawn is one spawn block with its instance names resolved.
type Spawn struct {
	Label  string
	Prefab resourcepath.Path
	Names  []string
}

// Output holds rendering preferences.
type Output struct {
	Format string `hcl:"format,optional"`
}

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "namespaces"},
		{Name: "strict"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "spawn", LabelNames: []string{"label"}},
		{Type: "output"},
	},
}

var spawnSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "prefab", Required: true},
		{Name: "names"},
		{Name: "count"},
		{Name: "name"},
	},
}

// Load reads and decodes the manifest at path.
func Load(ctx context.Context, path string) (*Manifest, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return Parse(ctx, src, path)
}

// Parse decodes manifest source. filename is used in diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing spawn manifest.", "file", filename)

	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}

	m, diags := decode(ctx, file.Body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", filename, diags)
	}

	logger.Debug("Spawn manifest parsed.", "file", filename, "spawns", len(m.Spawns), "instances", m.InstanceCount())
	return m, nil
}

func decode(ctx context.Context, body hcl.Body) (*Manifest, hcl.Diagnostics) {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	m := &Manifest{}
	if attr, ok := content.Attributes["namespaces"]; ok {
		diags = append(diags, hclutil.DecodeExpression(ctx, attr.Expr, nil, &m.Namespaces)...)
	}
	if attr, ok := content.Attributes["strict"]; ok {
		var strict bool
		diags = append(diags, gohcl.DecodeExpression(attr.Expr, nil, &strict)...)
		m.Strict = &strict
	}

	labels := make(map[string]hcl.Range)
	for _, block := range content.Blocks.OfType("spawn") {
		label := block.Labels[0]
		if prev, dup := labels[label]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate spawn block",
				Detail:   fmt.Sprintf("A spawn block labeled %q was already declared at %s.", label, prev),
				Subject:  &block.DefRange,
			})
			continue
		}
		labels[label] = block.DefRange

		spawn, spawnDiags := decodeSpawn(ctx, block)
		diags = append(diags, spawnDiags...)
		if !spawnDiags.HasErrors() {
			m.Spawns = append(m.Spawns, spawn)
		}
	}

	outputBlock, outputDiags := hclutil.FindUniqueBlock(content.Blocks, "output")
	diags = append(diags, outputDiags...)
	if outputBlock != nil {
		m.Output = &Output{}
		diags = append(diags, gohcl.DecodeBody(outputBlock.Body, nil, m.Output)...)
	}

	return m, diags
}

func decodeSpawn(ctx context.Context, block *hcl.Block) (Spawn, hcl.Diagnostics) {
	spawn := Spawn{Label: block.Labels[0]}

	content, diags := block.Body.Content(spawnSchema)
	if diags.HasErrors() {
		return spawn, diags
	}

	prefabAttr := content.Attributes["prefab"]
	var prefab string
	if diags = append(diags, gohcl.DecodeExpression(prefabAttr.Expr, nil, &prefab)...); diags.HasErrors() {
		return spawn, diags
	}
	spawn.Prefab = resourcepath.Path(prefab)
	if err := resourcepath.NewValidator().Validate(spawn.Prefab); err != nil {
		return spawn, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid prefab path",
			Detail:   err.Error(),
			Subject:  prefabAttr.Expr.Range().Ptr(),
		})
	}

	namesAttr, hasNames := content.Attributes["names"]
	countAttr, hasCount := content.Attributes["count"]
	nameAttr, hasName := content.Attributes["name"]

	switch {
	case hasNames && (hasCount || hasName):
		rng := block.Body.MissingItemRange()
		return spawn, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Conflicting naming attributes",
			Detail:   "The 'names' attribute cannot be combined with 'count' or 'name'.",
			Subject:  &rng,
		})
	case hasCount != hasName:
		rng := block.Body.MissingItemRange()
		return spawn, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Incomplete naming attributes",
			Detail:   "The 'count' and 'name' attributes must be used together.",
			Subject:  &rng,
		})
	case hasNames:
		diags = append(diags, hclutil.DecodeExpression(ctx, namesAttr.Expr, nil, &spawn.Names)...)
	case hasCount:
		var countDiags hcl.Diagnostics
		spawn.Names, countDiags = expandCount(ctx, countAttr, nameAttr)
		diags = append(diags, countDiags...)
	default:
		spawn.Names = []string{spawn.Label}
	}
	if diags.HasErrors() {
		return spawn, diags
	}

	seen := make(map[string]struct{}, len(spawn.Names))
	for _, name := range spawn.Names {
		if _, dup := seen[name]; dup {
			rng := block.Body.MissingItemRange()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate instance name",
				Detail:   fmt.Sprintf("The name %q is produced more than once by spawn %q.", name, spawn.Label),
				Subject:  &rng,
			})
			break
		}
		seen[name] = struct{}{}
	}
	return spawn, diags
}

// MaxCount bounds the count attribute of a spawn block.
const MaxCount = 10000

// expandCount evaluates name once per index with count.index in scope.
func expandCount(ctx context.Context, countAttr, nameAttr *hcl.Attribute) ([]string, hcl.Diagnostics) {
	n, diags := hclutil.WholeNumber(countAttr, nil, MaxCount)
	if diags.HasErrors() {
		return nil, diags
	}

	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		evalCtx := &hcl.EvalContext{Variables: map[string]cty.Value{
			"count": cty.ObjectVal(map[string]cty.Value{
				"index": cty.NumberIntVal(int64(i)),
			}),
		}}
		var name string
		if diags = append(diags, hclutil.DecodeExpression(ctx, nameAttr.Expr, evalCtx, &name)...); diags.HasErrors() {
			return nil, diags
		}
		names = append(names, name)
	}
	return names, diags
}

// InstanceCount returns the number of instances all spawns produce.
func (m *Manifest) InstanceCount() int {
	n := 0
	for _, s := range m.Spawns {
		n += len(s.Names)
	}
	return n
}
