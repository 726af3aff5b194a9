// Package exitcode maps errors to process exit codes so scripts wrapping the
// CLI can distinguish failure classes.
package exitcode

import (
	"os"

	"github.com/planflow/planflow/internal/errors"
)

const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// ConfigError indicates the configuration file is missing or invalid
	ConfigError = 3

	// ProviderError indicates the model provider could not be reached
	ProviderError = 4

	// Interrupted indicates the process was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var pfErr *errors.PlanFlowError
	if errors.As(err, &pfErr) {
		switch {
		case pfErr.IsCategory("CONFIG"):
			return ConfigError
		case pfErr.IsCategory("PROVIDER"):
			return ProviderError
		}
	}
	return GeneralError
}
