package maa

import (
	"fmt"
	"testing"

	"github.com/thoreinstein/maa/internal/errors"
)

func TestResult_Numbering(t *testing.T) {
	tests := []struct {
		result Result
		want   int
	}{
		{Success, 0},
		{ErrorFeatureNotImplemented, 1},
		{ErrorFeatureNotSupported, 2},
		{ErrorInvalidVerbosityLevel, 3},
		{ErrorInvalidParameter, 4},
		{ErrorInvalidHandle, 5},
		{ErrorNoResources, 6},
		{ErrorInvalidResource, 7},
		{ErrorInvalidQueueType, 8},
		{ErrorNoDataAvailable, 9},
		{ErrorInvalidPlatform, 10},
		{ErrorPlatformNotInitialised, 11},
		{ErrorPlatformAlreadyInitialised, 12},
		{ErrorUnspecified, 99},
	}
	for _, tt := range tests {
		t.Run(tt.result.Label(), func(t *testing.T) {
			if int(tt.result) != tt.want {
				t.Errorf("%s = %d, want %d", tt.result.Label(), int(tt.result), tt.want)
			}
		})
	}
	if n := len(Results()); n != len(tests) {
		t.Errorf("len(Results()) = %d, want %d", n, len(tests))
	}
}

func TestResults_OrderedAndValid(t *testing.T) {
	all := Results()
	for i, r := range all {
		if !r.Valid() {
			t.Errorf("Results()[%d] = %d not valid", i, int(r))
		}
		if i > 0 && r <= all[i-1] {
			t.Errorf("Results() not in numeric order at %d", i)
		}
	}
}

func TestResult_Label(t *testing.T) {
	for _, r := range Results() {
		if r.Label() == "" {
			t.Errorf("Result(%d).Label() is empty", int(r))
		}
	}
	if got := Success.Label(); got != "Success" {
		t.Errorf("Success.Label() = %q", got)
	}
	for _, r := range []Result{42, -1} {
		if got := r.Label(); got != ErrorUnspecified.Label() {
			t.Errorf("Result(%d).Label() = %q, want the unspecified label", int(r), got)
		}
	}
	if got, want := ErrorPlatformAlreadyInitialised.String(), "MAA: Platform already initialised"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestResult_Kind(t *testing.T) {
	tests := []struct {
		result Result
		want   Kind
	}{
		{Success, KindSuccess},
		{ErrorFeatureNotImplemented, KindCapability},
		{ErrorFeatureNotSupported, KindCapability},
		{ErrorInvalidVerbosityLevel, KindInput},
		{ErrorInvalidParameter, KindInput},
		{ErrorInvalidHandle, KindInput},
		{ErrorInvalidQueueType, KindInput},
		{ErrorInvalidResource, KindInput},
		{ErrorInvalidPlatform, KindInput},
		{ErrorNoResources, KindResource},
		{ErrorNoDataAvailable, KindResource},
		{ErrorPlatformNotInitialised, KindLifecycle},
		{ErrorPlatformAlreadyInitialised, KindLifecycle},
		{ErrorUnspecified, KindUnknown},
		{Result(77), KindUnknown},
	}
	for _, tt := range tests {
		if got := tt.result.Kind(); got != tt.want {
			t.Errorf("Result(%d).Kind() = %v, want %v", int(tt.result), got, tt.want)
		}
	}
}

func TestResult_ErrRoundTrip(t *testing.T) {
	if err := Success.Err(); err != nil {
		t.Errorf("Success.Err() = %v", err)
	}

	err := fmt.Errorf("opening gpio: %w", ErrorInvalidHandle.Err())
	if got := ResultOf(err); got != ErrorInvalidHandle {
		t.Errorf("ResultOf(%v) = %v", err, got)
	}
	if got := ResultOf(errors.Wrap(err, "outer")); got != ErrorInvalidHandle {
		t.Errorf("ResultOf(wrapped) = %v", got)
	}
	if got := ResultOf(nil); got != Success {
		t.Errorf("ResultOf(nil) = %v", got)
	}
	if got := ResultOf(errors.New("plain")); got != ErrorUnspecified {
		t.Errorf("ResultOf(plain) = %v", got)
	}
}

func TestParseResult(t *testing.T) {
	r, err := ParseResult(12)
	if err != nil {
		t.Fatalf("ParseResult(12) error = %v", err)
	}
	if r != ErrorPlatformAlreadyInitialised {
		t.Errorf("ParseResult(12) = %v", r)
	}

	r, err = ParseResult(13)
	if !errors.Is(err, errors.ErrInvalidResultCode) {
		t.Errorf("ParseResult(13) error = %v, want ErrInvalidResultCode", err)
	}
	if r != ErrorUnspecified {
		t.Errorf("ParseResult(13) = %v", r)
	}
}
