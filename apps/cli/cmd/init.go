package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rolespec/packages/template"
)

var (
	forceInit        bool
	initDriverFlag   string
	initPlatformFlag string
)

var initCmd = &cobra.Command{
	Use:   "init <role>",
	Short: "Initialize a new scenario directory",
	Long: `Initialize a scenario directory for the named role from the
embedded templates.

This creates:
  - <role>/rolespec.yaml      - Scenario configuration
  - <role>/playbook.yml       - Converge playbook
  - <role>/tests/verify.yaml  - Verifier cases

Examples:
  rolespec init nginx
  rolespec init nginx --force
  rolespec init nginx --driver podman --platform debian12`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
	initCmd.Flags().StringVar(&initDriverFlag, "driver", "docker", "Driver name written into the scenario")
	initCmd.Flags().StringVar(&initPlatformFlag, "platform", "ubuntu2404", "Platform name written into the scenario")
}

func initCommand(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(nil)
	if err != nil {
		return err
	}
	console := newConsole(cmd, settings)

	role := args[0]
	scaffold := []struct {
		ref  string
		dest string
	}{
		{ref: "rolespec.yaml.tmpl", dest: filepath.Join(role, "rolespec.yaml")},
		{ref: "playbook.yml.tmpl", dest: filepath.Join(role, "playbook.yml")},
		{ref: "verify.yaml.tmpl", dest: filepath.Join(role, "tests", "verify.yaml")},
	}

	if !forceInit {
		for _, entry := range scaffold {
			if _, err := os.Stat(entry.dest); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", entry.dest)
			}
		}
	}

	context := map[string]any{
		"role_name": role,
		"driver":    initDriverFlag,
		"platform":  initPlatformFlag,
	}

	renderer := template.NewRenderer()
	for _, entry := range scaffold {
		if err := os.MkdirAll(filepath.Dir(entry.dest), 0755); err != nil {
			return fmt.Errorf("failed to create scenario directory: %w", err)
		}
		if err := renderer.RenderTo(entry.dest, entry.ref, context); err != nil {
			return err
		}
		console.Printf("Created: %s\n", entry.dest)
	}

	if !settings.Quiet {
		console.Printf("\nScenario initialized!\n")
		console.Printf("Run 'rolespec merge %s' to inspect the effective configuration.\n", role)
	}

	return nil
}
