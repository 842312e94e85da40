package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rolespec/packages/core/config"
	"github.com/abdul-hamid-achik/rolespec/packages/output"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	noColorFlag bool
	quietFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "rolespec",
	Short: "Layered scenario configuration for role testing. No magic.",
	Long: `rolespec folds layered scenario configuration files into a single
effective configuration for testing configuration management roles.
Layers merge recursively; the result can be printed, queried, checked
against a golden file, validated against a schema, and scaffolded
from templates.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output (env: ROLESPEC_NO_COLOR)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress warnings and progress messages (env: ROLESPEC_QUIET)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(instancesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings layers a command's flag values over ROLESPEC_* environment
// variables over built-in defaults, folding in the global flags.
func loadSettings(flags *config.Settings) (*config.Settings, error) {
	if flags == nil {
		flags = &config.Settings{}
	}
	flags.NoColor = flags.NoColor || noColorFlag
	flags.Quiet = flags.Quiet || quietFlag
	return config.LoadSettings(flags)
}

// newConsole builds the console for a command, honoring the command's
// output streams so tests can capture them.
func newConsole(cmd *cobra.Command, settings *config.Settings) *output.Console {
	return output.NewConsole(
		output.WithStdout(cmd.OutOrStdout()),
		output.WithStderr(cmd.ErrOrStderr()),
		output.WithNoColor(settings.NoColor),
	)
}
