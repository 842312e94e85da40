package cmd

import (
	"errors"

	"github.com/flosch/pongo2/v6"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/rolespec/packages/conftree"
	"github.com/abdul-hamid-achik/rolespec/packages/core/config"
	"github.com/abdul-hamid-achik/rolespec/packages/template"
)

// Exit codes for rolespec CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitDrift indicates a --check comparison found drift
	ExitDrift = 1

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 2

	// ExitConfigError indicates a configuration, merge, or validation error
	ExitConfigError = 3

	// ExitTemplateError indicates a template resolution or render error
	ExitTemplateError = 4
)

// usageError marks flag and argument mistakes so Execute can map them to
// ExitUsageError.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// usageArgs wraps a positional-argument validator so its failures exit
// with ExitUsageError. Flag parse failures take the same route through
// the root command's flag error func.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	var usage *usageError
	var notFound *template.NotFoundError
	var renderErr *pongo2.Error
	var conflict *conftree.ConflictError
	var invalid *config.ValidationError

	switch {
	case errors.As(err, &usage):
		return ExitUsageError
	case errors.As(err, &notFound), errors.As(err, &renderErr):
		return ExitTemplateError
	case errors.As(err, &conflict), errors.As(err, &invalid):
		return ExitConfigError
	default:
		return ExitConfigError
	}
}
