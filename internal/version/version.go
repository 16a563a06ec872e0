// Package version contains build-time variables injected via ldflags:
//
//	go build -ldflags "-X github.com/thoreinstein/maa/internal/version.Version=v0.2.1"
package version

// Build-time variables set via ldflags.
var (
	// Version is the version of the build, derived from the closest git tag.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
