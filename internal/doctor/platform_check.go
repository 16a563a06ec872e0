package doctor

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/maa/internal/logging"
	"github.com/thoreinstein/maa/pkg/maa"
)

// PlatformCheck runs board detection with a fresh Initializer so the
// process-wide platform state is left untouched.
type PlatformCheck struct {
	prober maa.Prober
	logger *slog.Logger
}

// Ensure PlatformCheck implements Check interface.
var _ Check = (*PlatformCheck)(nil)

// NewPlatformCheck creates a board detection check. A nil prober reads
// the real host.
func NewPlatformCheck(prober maa.Prober) *PlatformCheck {
	if prober == nil {
		prober = maa.NewSysfsProber()
	}
	return &PlatformCheck{prober: prober, logger: logging.NewDiscard()}
}

// Name returns the unique identifier for this check.
func (c *PlatformCheck) Name() string {
	return "platform-detection"
}

// Category returns the grouping for this check.
func (c *PlatformCheck) Category() string {
	return "platform"
}

// Run executes the board detection check and returns its result.
func (c *PlatformCheck) Run(_ context.Context) *CheckResult {
	ini := maa.NewInitializer(c.prober, maa.WithLogger(c.logger))
	code := ini.Init()

	platform := ini.Platform()
	details := map[string]any{
		"result":   code.Label(),
		"state":    ini.State().String(),
		"platform": platform.String(),
		"fallback": platform.Fallback().String(),
	}

	switch {
	case code != maa.Success:
		if err := ini.Err(); err != nil {
			details["error"] = err.Error()
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "board identification could not be read",
			Details:  details,
			FixHint:  "check that the DMI or device-tree files are readable, or set probe.root",
		}
	case !platform.Known():
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "board not recognised; the " + platform.Fallback().String() + " mapping will load",
			Details:  details,
		}
	default:
		board := ini.Board()
		details["description"] = board.Description
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "detected " + board.Description,
			Details:  details,
		}
	}
}
