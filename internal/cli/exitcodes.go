package cli

import (
	"errors"
	"io/fs"

	"github.com/dshills/multisel/internal/config"
)

// Exit codes for multisel.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates an error with no more specific code.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrInvalidUsage marks errors caused by bad arguments or flags.
var ErrInvalidUsage = errors.New("invalid usage")

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var parseErr *config.ParseError
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.As(err, &parseErr),
		errors.Is(err, config.ErrInvalidFormat),
		errors.Is(err, config.ErrInvalidLogLevel),
		errors.Is(err, config.ErrInvalidPattern):
		return ExitConfigError
	case errors.As(err, &pathErr):
		return ExitIOError
	}
	return ExitFailure
}
