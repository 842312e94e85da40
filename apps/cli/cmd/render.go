package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rolespec/packages/core/vars"
	"github.com/abdul-hamid-achik/rolespec/packages/template"
)

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a scenario template",
	Long: `Render a template with a merged variable set and print the result.

The template is looked up next to the given path first, then in the
embedded template set. Variables come from --env-file (dotenv), --vars
(YAML), and --var (key=value); later sources win.

Examples:
  rolespec render rolespec.yaml.tmpl --var role_name=nginx
  rolespec render custom.tmpl --env-file .env --vars values.yaml
  rolespec render rolespec.yaml.tmpl --var role_name=nginx --out rolespec.yaml`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: renderCommand,
}

var (
	renderVarsFlag    string
	renderEnvFileFlag string
	renderVarFlags    []string
	renderOutFlag     string
)

func init() {
	renderCmd.Flags().StringVar(&renderEnvFileFlag, "env-file", "", "Path to .env file with template variables")
	renderCmd.Flags().StringVar(&renderVarsFlag, "vars", "", "YAML file with template variables (wins over --env-file)")
	renderCmd.Flags().StringArrayVar(&renderVarFlags, "var", nil, "Set a template variable as key=value (repeatable, wins over files)")
	renderCmd.Flags().StringVar(&renderOutFlag, "out", "", "Write the rendered output to a file instead of stdout")
}

func renderCommand(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(nil)
	if err != nil {
		return err
	}
	console := newConsole(cmd, settings)

	context, err := collectVars()
	if err != nil {
		return err
	}

	renderer := template.NewRenderer()
	if renderOutFlag != "" {
		return renderer.RenderTo(renderOutFlag, args[0], context)
	}

	content, err := renderer.Render(args[0], context)
	if err != nil {
		return err
	}
	console.Print(content)
	return nil
}

// collectVars merges the template variable sources; later sources win.
func collectVars() (map[string]any, error) {
	sources := make([]map[string]any, 0, 3)

	if renderEnvFileFlag != "" {
		fromEnv, err := vars.FromDotEnv(renderEnvFileFlag)
		if err != nil {
			return nil, err
		}
		sources = append(sources, fromEnv)
	}

	if renderVarsFlag != "" {
		fromFile, err := vars.FromYAMLFile(renderVarsFlag)
		if err != nil {
			return nil, err
		}
		sources = append(sources, fromFile)
	}

	if len(renderVarFlags) > 0 {
		fromPairs, err := vars.FromPairs(renderVarFlags)
		if err != nil {
			return nil, &usageError{err: err}
		}
		sources = append(sources, fromPairs)
	}

	return vars.Overlay(sources...), nil
}
