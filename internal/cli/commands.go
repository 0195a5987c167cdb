package cli

import (
	"github.com/specialistvlad/prefabgo/internal/app"
	"github.com/spf13/cobra"
)

func newParseCommand(application func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a prefab and print its definition",
		Long: `Parse a single prefab file and print the resulting definition.

Examples:
  prefabgo parse src/Nodes/PointLight.go
  prefabgo parse src/Nodes/PointLight.go --format json --strict`,
		Args: exactArgs(1, "<file>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return application().Parse(cmd.Context(), args[0])
		},
	}
}

func newInstantiateCommand(application func() *app.App) *cobra.Command {
	var (
		name string
		set  []string
	)
	cmd := &cobra.Command{
		Use:   "instantiate <file>",
		Short: "Resolve a named instance of a prefab",
		Long: `Parse a prefab file and print the instance obtained by replacing every
{{NAME}} placeholder with --name. Additional tokens can be replaced with
--set, all in a single pass.

Examples:
  prefabgo instantiate src/Nodes/PointLight.go --name Lamp01
  prefabgo instantiate src/Nodes/PointLight.go --name Lamp01 --set '{{LOD}}=lod0'`,
		Args: exactArgs(1, "<file>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") {
				return usageError("instantiate requires --name")
			}
			extra, err := parseAssignments(set)
			if err != nil {
				return err
			}
			return application().Instantiate(cmd.Context(), args[0], name, extra)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Instance name substituted for {{NAME}}.")
	cmd.Flags().StringArrayVar(&set, "set", nil, "Additional TOKEN=VALUE substitution. Repeatable.")
	return cmd
}

func newCheckCommand(application func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <dir>",
		Short: "Parse every prefab below a directory and check its references",
		Long: `Parse every prefab file below a directory and validate the syntax of
every resource path it refers to. Existence of the referenced assets is not
checked. A report with one entry per prefab is printed.

Examples:
  prefabgo check ./project
  prefabgo check ./project --namespace src --namespace builtins`,
		Args: exactArgs(1, "<dir>"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return application().Check(cmd.Context(), args[0])
		},
	}
}

func newSpawnCommand(application func() *app.App) *cobra.Command {
	var project, manifestPath string
	cmd := &cobra.Command{
		Use:   "spawn",
		Short: "Resolve every instance listed in a spawn manifest",
		Long: `Load the prefabs of a project and print every instance the HCL spawn
manifest asks for, in manifest order. Flags override the manifest's
namespaces, strict and output settings.

Examples:
  prefabgo spawn --project ./project --manifest ./project/spawn.hcl`,
		Args: exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if manifestPath == "" {
				return usageError("spawn requires --manifest")
			}
			return application().Spawn(cmd.Context(), project, manifestPath)
		},
	}
	cmd.Flags().StringVar(&project, "project", ".", "Project root the prefab paths are relative to.")
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the HCL spawn manifest.")
	return cmd
}
