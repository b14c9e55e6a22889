package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/nukit/internal/branding"
	"github.com/agentx-labs/nukit/internal/config"
	"github.com/agentx-labs/nukit/internal/plugin"
	"github.com/spf13/cobra"
)

func newPluginInitCmd(version string) *cobra.Command {
	var (
		outputDir   string
		templateDir string
	)

	cmd := &cobra.Command{
		Use:   branding.PluginCLIName() + " <plugin-name>",
		Short: "Initialize a new Nushell plugin project from a template",
		Long: `Initialize a new Nushell plugin project from a template.

The project is created as nu_plugin_<name> inside the output directory.
Hyphens in the name become underscores; the name may only contain
letters, numbers, hyphens, and underscores.

Examples:
  nu-plugin-init my_plugin
  nu-plugin-init hello-world --output-dir ~/src`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Load()

			name, err := plugin.ParseName(args[0])
			if err != nil {
				return err
			}

			opts := plugin.Options{
				OutputDir:   config.Resolve(outputDir, config.KeyPluginOutputDir),
				TemplateDir: config.Resolve(templateDir, config.KeyPluginTemplateDir),
				Version:     version,
			}
			if opts.OutputDir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolving current directory: %w", err)
				}
				opts.OutputDir = cwd
			}

			result, err := plugin.Generate(name, opts)
			if err != nil {
				return err
			}

			printPluginResult(cmd.OutOrStdout(), name, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory for the plugin project (default: current directory)")
	cmd.Flags().StringVar(&templateDir, "template-dir", "", "Template directory to copy (default: built-in template)")
	return cmd
}

func printPluginResult(w io.Writer, name plugin.PluginName, result *plugin.Result) {
	fmt.Fprintf(w, "Creating plugin project: %s\n", result.ProjectDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	fmt.Fprintf(w, "✅ Plugin '%s' created successfully at %s\n", name.Snake, result.ProjectDir)

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  cd %s\n", result.ProjectDir)
	fmt.Fprintln(w, "  cargo build")
	fmt.Fprintf(w, "  plugin add target/debug/%s\n", plugin.ProjectDirName(name))
	fmt.Fprintf(w, "  plugin use %s\n", name.Snake)
	fmt.Fprintf(w, "  \"test\" | %s\n", name.Snake)
}
