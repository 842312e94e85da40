package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
	"github.com/abdul-hamid-achik/rolespec/packages/core/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>...",
	Short: "Validate the effective configuration against the scenario schema",
	Long: `Fold the given configuration layers and validate the effective
configuration against the scenario schema.

Examples:
  rolespec validate rolespec.yaml
  rolespec validate . overrides.yaml
  rolespec validate . --schema custom-schema.json`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: validateCommand,
}

var validateSchemaFlag string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaFlag, "schema", "", "Validate against a custom JSON Schema file instead of the embedded one")
}

func validateCommand(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(nil)
	if err != nil {
		return err
	}
	console := newConsole(cmd, settings)

	paths, err := resolveLayerArgs(args)
	if err != nil {
		return err
	}

	stack := config.NewStack(config.WithBase(config.DefaultTree()))
	for _, path := range paths {
		if err := stack.PushFile(path); err != nil {
			return err
		}
	}

	eff, err := stack.Effective(conftree.Overwrite)
	if err != nil {
		return err
	}

	var schema []byte
	if validateSchemaFlag != "" {
		schema, err = os.ReadFile(validateSchemaFlag)
		if err != nil {
			return fmt.Errorf("reading schema: %w", err)
		}
	}

	if err := eff.Validate(schema); err != nil {
		var invalid *config.ValidationError
		if errors.As(err, &invalid) {
			for _, violation := range invalid.Violations {
				fmt.Fprintf(cmd.OutOrStderr(), "Error in configuration: %s\n", violation)
			}
		}
		return err
	}

	if !settings.Quiet {
		console.Printf("Valid: %s\n", effectiveSourceLabel(paths))
	}
	return nil
}

// effectiveSourceLabel names the layer set in user-facing messages.
func effectiveSourceLabel(paths []string) string {
	if len(paths) == 1 {
		return paths[0]
	}
	return fmt.Sprintf("%d layers", len(paths))
}
