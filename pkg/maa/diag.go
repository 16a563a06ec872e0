package maa

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/thoreinstein/maa/internal/version"
)

var (
	diagMu  sync.Mutex
	diagOut io.Writer = os.Stderr
)

// SetDiagnosticOutput redirects ResultPrint. A nil writer restores stderr.
func SetDiagnosticOutput(w io.Writer) {
	diagMu.Lock()
	defer diagMu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	diagOut = w
}

// ResultPrint writes the label of r to the diagnostic output. Undefined
// codes print the unspecified label.
func ResultPrint(r Result) {
	diagMu.Lock()
	defer diagMu.Unlock()
	FprintResult(diagOut, r)
}

// FprintResult writes the label of r to w as a single line. Write errors
// are ignored.
func FprintResult(w io.Writer, r Result) {
	_, _ = fmt.Fprintln(w, r.String())
}

// GetVersion returns the library version fixed at build time.
func GetVersion() string {
	if version.Version == "" {
		return "dev"
	}
	return version.Version
}

// Version describes the build.
type Version struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// VersionInfo returns the version, commit and build date.
func VersionInfo() Version {
	return Version{
		Version: GetVersion(),
		Commit:  version.Commit,
		Date:    version.Date,
	}
}
