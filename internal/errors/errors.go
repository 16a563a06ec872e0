package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, scheduler, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrProbeFailed indicates the board identification source exists but
	// could not be read.
	ErrProbeFailed = crdb.New("board probe failed")

	// ErrSchedulerUnsupported indicates the host has no real-time
	// round-robin scheduling class this module can drive.
	ErrSchedulerUnsupported = crdb.New("real-time scheduling not supported on this host")

	// ErrPermissionDenied indicates the host refused a privileged request.
	ErrPermissionDenied = crdb.New("permission denied")

	// ErrInvalidPriority indicates the host rejected the priority value for
	// the requested policy, e.g. 0 for SCHED_RR.
	ErrInvalidPriority = crdb.New("priority not valid for real-time round-robin")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrInvalidResultCode indicates a value outside the result taxonomy.
	ErrInvalidResultCode = crdb.New("invalid result code")
)

// Thin re-exports so callers only import this package.
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithHint     = crdb.WithHint
	FlattenHints = crdb.FlattenHints
	GetAllHints  = crdb.GetAllHints
	Is           = crdb.Is
	As           = crdb.As
	Mark         = crdb.Mark
	Join         = crdb.Join
)

// ExitError carries the process exit code and an optional next step for
// the user alongside the failure.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

func newExit(err error, code int, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: code, Suggestion: suggestion}
}

// NewExitError wraps err with code and no suggestion. err may be nil.
func NewExitError(err error, code int) *ExitError {
	return newExit(err, code, "")
}

// NewUserError reports bad input or configuration (ExitUser).
func NewUserError(err error, suggestion string) *ExitError {
	return newExit(err, ExitUser, suggestion)
}

// NewSystemError reports a host failure such as an unreadable probe source
// or a refused scheduler call (ExitSystem).
func NewSystemError(err error, suggestion string) *ExitError {
	return newExit(err, ExitSystem, suggestion)
}

// NewConfigError reports an unusable config file and points at maa doctor.
func NewConfigError(err error) *ExitError {
	return newExit(err, ExitUser, "Run: maa doctor")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode resolves the exit status for err. An ExitError anywhere in the
// chain decides; otherwise host failures marked with ErrProbeFailed,
// ErrPermissionDenied or ErrSchedulerUnsupported map to ExitSystem and
// anything else to ExitUser.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	if crdb.IsAny(err, ErrProbeFailed, ErrPermissionDenied, ErrSchedulerUnsupported) {
		return ExitSystem
	}
	return ExitUser
}
