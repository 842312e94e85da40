package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Output AI-readable documentation (llms.txt)",
	Long:  "Print the llms.txt content for AI agents to learn rolespec usage.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), llmsTxt)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
