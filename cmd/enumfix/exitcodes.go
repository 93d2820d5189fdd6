package main

import (
	"context"
	"errors"

	"github.com/backmassage/enumfix/internal/audit"
	"github.com/backmassage/enumfix/internal/check"
)

// Exit codes for different error types.
// These enable scripts to distinguish between failure modes.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments, flags or configuration
	ExitUsage = 2

	// ExitSourceUnavailable indicates the input could not be read
	ExitSourceUnavailable = 3

	// ExitBlockNotFound indicates the audited enum block is missing
	ExitBlockNotFound = 4

	// ExitDuplicates indicates duplicates were found with --fail-on-duplicates
	ExitDuplicates = 5

	// ExitDestinationUnavailable indicates the output cannot be written
	ExitDestinationUnavailable = 6

	// ExitInterrupted indicates the run was cancelled by a signal
	ExitInterrupted = 130
)

// errDuplicatesFound is returned by audit when --fail-on-duplicates is set
// and the report is not clean.
var errDuplicatesFound = errors.New("duplicates found")

// usageError marks errors caused by bad arguments or configuration.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// reportedError marks errors that were already logged, so main does not
// print them a second time.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// exitCode maps an error returned by the command tree onto an exit code.
func exitCode(err error) int {
	var usage usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, check.ErrSourceUnavailable):
		return ExitSourceUnavailable
	case errors.Is(err, check.ErrDestinationUnavailable):
		return ExitDestinationUnavailable
	case errors.Is(err, audit.ErrBlockNotFound):
		return ExitBlockNotFound
	case errors.Is(err, errDuplicatesFound):
		return ExitDuplicates
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitGeneral
	}
}
