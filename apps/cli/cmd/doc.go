// Package cmd implements the rolespec CLI commands using Cobra.
//
// Available commands:
//   - merge: Fold configuration layers and print the effective configuration
//   - validate: Check the effective configuration against a JSON Schema
//   - render: Render a scenario template with a merged variable set
//   - instances: Print the formatted hostnames of scenario instances
//   - init: Create a new scenario directory from the embedded templates
//   - version: Show rolespec version information
//
// The CLI supports strict merging, path queries, golden-file checks,
// and watch mode for development workflows.
package cmd
