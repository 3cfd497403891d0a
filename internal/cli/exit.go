package cli

import (
	"context"
	"errors"
)

// ExitCode maps the error returned by the root command to a process exit
// status: 0 for success, 130 when interrupted and 1 for everything else.
// Outdated dependencies alone never produce an error.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	default:
		return 1
	}
}
