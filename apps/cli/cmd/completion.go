package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion <bash|zsh|fish|powershell>",
	Short: "Generate a shell completion script",
	Long: `Generate a completion script covering rolespec subcommands and flags.

The script is written to stdout; load it with your shell's completion
mechanism:

Bash:
  source <(rolespec completion bash)
  # or persist it for new sessions:
  rolespec completion bash > /etc/bash_completion.d/rolespec

Zsh:
  rolespec completion zsh > "${fpath[1]}/_rolespec"
  # requires compinit; new shells pick the script up.

Fish:
  rolespec completion fish > ~/.config/fish/completions/rolespec.fish

PowerShell:
  rolespec completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
