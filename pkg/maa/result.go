package maa

import (
	"fmt"

	"github.com/thoreinstein/maa/internal/errors"
)

// Result is the outcome code shared by every operation in the library.
//
// The numeric values are part of the external contract and must never be
// renumbered; new codes are appended.
type Result int

const (
	Success                         Result = 0
	ErrorFeatureNotImplemented      Result = 1
	ErrorFeatureNotSupported        Result = 2
	ErrorInvalidVerbosityLevel      Result = 3
	ErrorInvalidParameter           Result = 4
	ErrorInvalidHandle              Result = 5
	ErrorNoResources                Result = 6
	ErrorInvalidResource            Result = 7
	ErrorInvalidQueueType           Result = 8
	ErrorNoDataAvailable            Result = 9
	ErrorInvalidPlatform            Result = 10
	ErrorPlatformNotInitialised     Result = 11
	ErrorPlatformAlreadyInitialised Result = 12

	ErrorUnspecified Result = 99
)

// Kind groups result codes by the class of failure they report.
type Kind string

const (
	KindSuccess    Kind = "success"
	KindCapability Kind = "capability"
	KindInput      Kind = "input"
	KindResource   Kind = "resource"
	KindLifecycle  Kind = "lifecycle"
	KindUnknown    Kind = "unspecified"
)

type resultInfo struct {
	label string
	kind  Kind
}

var results = map[Result]resultInfo{
	Success:                         {"Success", KindSuccess},
	ErrorFeatureNotImplemented:      {"Feature not implemented", KindCapability},
	ErrorFeatureNotSupported:        {"Feature not supported by hardware", KindCapability},
	ErrorInvalidVerbosityLevel:      {"Invalid verbosity level", KindInput},
	ErrorInvalidParameter:           {"Invalid parameter", KindInput},
	ErrorInvalidHandle:              {"Invalid handle", KindInput},
	ErrorNoResources:                {"No resources of that type available", KindResource},
	ErrorInvalidResource:            {"Invalid resource", KindInput},
	ErrorInvalidQueueType:           {"Invalid queue type", KindInput},
	ErrorNoDataAvailable:            {"No data available", KindResource},
	ErrorInvalidPlatform:            {"Platform not recognised", KindInput},
	ErrorPlatformNotInitialised:     {"Platform not initialised", KindLifecycle},
	ErrorPlatformAlreadyInitialised: {"Platform already initialised", KindLifecycle},
	ErrorUnspecified:                {"Unspecified error", KindUnknown},
}

// Results returns every defined result code in numeric order.
func Results() []Result {
	return []Result{
		Success,
		ErrorFeatureNotImplemented,
		ErrorFeatureNotSupported,
		ErrorInvalidVerbosityLevel,
		ErrorInvalidParameter,
		ErrorInvalidHandle,
		ErrorNoResources,
		ErrorInvalidResource,
		ErrorInvalidQueueType,
		ErrorNoDataAvailable,
		ErrorInvalidPlatform,
		ErrorPlatformNotInitialised,
		ErrorPlatformAlreadyInitialised,
		ErrorUnspecified,
	}
}

// Valid reports whether r is one of the defined codes.
func (r Result) Valid() bool {
	_, ok := results[r]
	return ok
}

// Label returns the human-readable description of r. Undefined values
// get the label of ErrorUnspecified.
func (r Result) Label() string {
	if info, ok := results[r]; ok {
		return info.label
	}
	return results[ErrorUnspecified].label
}

// String returns the diagnostic line for r, e.g. "MAA: Success".
func (r Result) String() string {
	return "MAA: " + r.Label()
}

// Kind returns the taxonomy class of r.
func (r Result) Kind() Kind {
	if info, ok := results[r]; ok {
		return info.kind
	}
	return KindUnknown
}

// Err converts r into an error. Success yields nil.
func (r Result) Err() error {
	if r == Success {
		return nil
	}
	return &ResultError{Code: r}
}

// ResultError carries a Result through an error chain.
type ResultError struct {
	Code Result
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s (%d)", e.Code.Label(), int(e.Code))
}

// ResultOf recovers the Result carried by err. A nil error is Success and
// an error without a code is ErrorUnspecified.
func ResultOf(err error) Result {
	if err == nil {
		return Success
	}
	var re *ResultError
	if errors.As(err, &re) {
		return re.Code
	}
	return ErrorUnspecified
}

// ParseResult converts a numeric code into a Result.
func ParseResult(code int) (Result, error) {
	r := Result(code)
	if !r.Valid() {
		return ErrorUnspecified, errors.Wrapf(errors.ErrInvalidResultCode, "%d", code)
	}
	return r, nil
}
