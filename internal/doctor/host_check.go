package doctor

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

// hostInfoTimeout bounds the gopsutil host query.
const hostInfoTimeout = 5 * time.Second

// HostInfoFunc returns a description of the running host.
type HostInfoFunc func(ctx context.Context) (*host.InfoStat, error)

// HostCheck reports the operating system and kernel maa runs on.
type HostCheck struct {
	info HostInfoFunc
}

var _ Check = (*HostCheck)(nil)

// NewHostCheck creates a host information check. A nil info queries the
// running host through gopsutil.
func NewHostCheck(info HostInfoFunc) *HostCheck {
	if info == nil {
		info = host.InfoWithContext
	}
	return &HostCheck{info: info}
}

// Name returns the unique identifier for this check.
func (c *HostCheck) Name() string {
	return "host"
}

// Category returns the grouping for this check.
func (c *HostCheck) Category() string {
	return "host"
}

// Run executes the host check and returns its result.
func (c *HostCheck) Run(ctx context.Context) *CheckResult {
	ctx, cancel := context.WithTimeout(ctx, hostInfoTimeout)
	defer cancel()

	info, err := c.info(ctx)
	if err != nil || info == nil {
		details := map[string]any{"goos": runtime.GOOS, "goarch": runtime.GOARCH}
		if err != nil {
			details["error"] = err.Error()
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "host information unavailable",
			Details:  details,
		}
	}

	details := map[string]any{
		"hostname":         info.Hostname,
		"os":               info.OS,
		"platform":         info.Platform,
		"platform_version": info.PlatformVersion,
		"kernel_version":   info.KernelVersion,
		"kernel_arch":      info.KernelArch,
		"virtualization":   info.VirtualizationSystem,
	}

	if info.OS != "linux" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  info.OS + " host: board detection and real-time scheduling require Linux",
			Details:  details,
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Message:  "linux " + info.KernelVersion + " (" + info.KernelArch + ")",
		Details:  details,
	}
}
