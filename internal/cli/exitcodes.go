package cli

import (
	"errors"

	"github.com/yaklabco/mdcheck/internal/configloader"
)

// Exit codes for mdcheck. Values above 1 follow sysexits.h.
const (
	// ExitSuccess indicates a clean run.
	ExitSuccess = 0

	// ExitLintIssues indicates lint completed and reported violations.
	ExitLintIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates an unreadable or invalid configuration.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates one or more files could not be read or parsed.
	ExitIOError = 74
)

var (
	// ErrLintIssuesFound is returned when lint issues are found.
	ErrLintIssuesFound = errors.New("lint issues found")

	// ErrFilesFailed is returned when at least one file could not be linted.
	ErrFilesFailed = errors.New("some files could not be linted")

	// ErrUsage marks invalid flags, arguments or flag values.
	ErrUsage = errors.New("invalid usage")
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFilesFailed):
		return ExitIOError
	case errors.Is(err, ErrLintIssuesFound):
		return ExitLintIssues
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig),
		errors.Is(err, configloader.ErrUnknownRule),
		errors.Is(err, configloader.ErrInvalidOption):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}

// IsReportedOutcome reports whether err only signals an outcome the
// reporter already printed, so it needs no further logging.
func IsReportedOutcome(err error) bool {
	return errors.Is(err, ErrLintIssuesFound) || errors.Is(err, ErrFilesFailed)
}
