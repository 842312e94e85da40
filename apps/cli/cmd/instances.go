package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
	"github.com/abdul-hamid-achik/rolespec/packages/core/config"
	"github.com/abdul-hamid-achik/rolespec/packages/instance"
)

var instancesCmd = &cobra.Command{
	Use:   "instances <file|directory>...",
	Short: "Print the formatted hostnames of scenario instances",
	Long: `Fold the given configuration layers and print one formatted
hostname per instance.

Instances with the append_platform_to_hostname option get the platform
suffixed as name-platform. The platform comes from --platform, from
ROLESPEC_PLATFORM, or from the first entry of the scenario's platforms
section.

Examples:
  rolespec instances rolespec.yaml
  rolespec instances . --platform debian12`,
	Args: usageArgs(cobra.MinimumNArgs(1)),
	RunE: instancesCommand,
}

var instancesPlatformFlag string

func init() {
	instancesCmd.Flags().StringVarP(&instancesPlatformFlag, "platform", "p", "", "Platform name appended to opted-in hostnames (env: ROLESPEC_PLATFORM)")
}

func instancesCommand(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(&config.Settings{
		Platform: instancesPlatformFlag,
	})
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

	instances := eff.Instances()
	if len(instances) == 0 {
		if !settings.Quiet {
			console.Warnf("no instances defined in %s", effectiveSourceLabel(paths))
		}
		return nil
	}

	platform := settings.Platform
	if platform == "" {
		platform = eff.DefaultPlatform()
	}

	for _, inst := range instances {
		name, ok := instance.FormatName(inst.Name, platform, instances)
		if !ok {
			continue
		}
		console.Println(name)
	}
	return nil
}
