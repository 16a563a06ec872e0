// Package errors provides error handling conventions for maa.
//
// It re-exports the subset of github.com/cockroachdb/errors used across
// the module, defines sentinel errors for the board-identity and
// scheduler layers, and provides an ExitError type for CLI exit code
// handling.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrPermissionDenied) {
//	    // run without real-time priority
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, scheduler, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(errors.ErrInvalidConfig, "Run: maa doctor")
//	os.Exit(errors.ExitCode(err))
//
// [ExitCode] also maps bare host failures marked with [ErrProbeFailed],
// [ErrPermissionDenied] or [ErrSchedulerUnsupported] to ExitSystem.
package errors
