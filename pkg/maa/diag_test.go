package maa

import (
	"bytes"
	"strings"
	"testing"
)

func TestFprintResult_AllCodes(t *testing.T) {
	for _, r := range Results() {
		var buf bytes.Buffer
		FprintResult(&buf, r)

		line := buf.String()
		if !strings.HasSuffix(line, "\n") {
			t.Errorf("result %d: missing newline in %q", int(r), line)
		}
		if !strings.Contains(line, r.Label()) {
			t.Errorf("result %d: %q does not contain %q", int(r), line, r.Label())
		}
		if len(strings.TrimSpace(line)) <= len("MAA: ") {
			t.Errorf("result %d: empty label in %q", int(r), line)
		}
	}
}

func TestFprintResult_OutOfRange(t *testing.T) {
	var buf bytes.Buffer
	FprintResult(&buf, Result(1234))
	if got, want := buf.String(), "MAA: Unspecified error\n"; got != want {
		t.Errorf("FprintResult(1234) = %q, want %q", got, want)
	}
}

func TestResultPrint_UsesDiagnosticOutput(t *testing.T) {
	var buf bytes.Buffer
	SetDiagnosticOutput(&buf)
	t.Cleanup(func() { SetDiagnosticOutput(nil) })

	ResultPrint(Success)
	ResultPrint(Result(-5))

	if got, want := buf.String(), "MAA: Success\nMAA: Unspecified error\n"; got != want {
		t.Errorf("diagnostic output = %q, want %q", got, want)
	}
}

func TestGetVersion_Stable(t *testing.T) {
	first := GetVersion()
	if first == "" {
		t.Fatal("GetVersion() is empty")
	}
	for range 10 {
		if got := GetVersion(); got != first {
			t.Fatalf("GetVersion() = %q, then %q", first, got)
		}
	}

	info := VersionInfo()
	if info.Version != first {
		t.Errorf("VersionInfo().Version = %q, want %q", info.Version, first)
	}
	if info.Commit == "" || info.Date == "" {
		t.Errorf("VersionInfo() = %+v, want commit and date", info)
	}
}
