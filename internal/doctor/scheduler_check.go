package doctor

import (
	"context"
	"fmt"

	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/sched"
)

// SchedulerProbe is the read-only view of the host scheduler used by
// SchedulerCheck.
type SchedulerProbe interface {
	MaxPriority() (int, error)
	CurrentPolicy() (sched.Policy, error)
	RTPrioLimit() (uint64, error)
	Privileged() bool
}

// SchedulerCheck reports whether SetPriority can succeed on this host.
// It never changes the scheduling policy.
type SchedulerCheck struct {
	host SchedulerProbe
}

var _ Check = (*SchedulerCheck)(nil)

// NewSchedulerCheck creates a scheduler capability check. A nil host
// inspects the running process.
func NewSchedulerCheck(host SchedulerProbe) *SchedulerCheck {
	if host == nil {
		host = sched.NewHost()
	}
	return &SchedulerCheck{host: host}
}

// Name returns the unique identifier for this check.
func (c *SchedulerCheck) Name() string {
	return "scheduler"
}

// Category returns the grouping for this check.
func (c *SchedulerCheck) Category() string {
	return "scheduler"
}

// Run executes the scheduler check and returns its result.
func (c *SchedulerCheck) Run(_ context.Context) *CheckResult {
	hostMax, err := c.host.MaxPriority()
	if err != nil {
		status := SeverityError
		if errors.Is(err, errors.ErrSchedulerUnsupported) {
			status = SeverityWarning
		}
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   status,
			Message:  "round-robin scheduling is unavailable; SetPriority will return -1",
			Details:  map[string]any{"error": err.Error()},
		}
	}

	details := map[string]any{
		"max_priority": hostMax,
		"privileged":   c.host.Privileged(),
	}
	if policy, err := c.host.CurrentPolicy(); err == nil {
		details["policy"] = policy.String()
	}
	limit, err := c.host.RTPrioLimit()
	if err == nil {
		details["rtprio_limit"] = limit
	}

	switch {
	case c.host.Privileged():
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("real-time priority available up to %d", hostMax),
			Details:  details,
		}
	case err == nil && limit > 0:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("real-time priority available up to %d (RLIMIT_RTPRIO)", min(limit, uint64(hostMax))),
			Details:  details,
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  "process lacks privilege for real-time priority; SetPriority will return -1",
			Details:  details,
			FixHint:  "run as root, grant CAP_SYS_NICE, or raise rtprio in /etc/security/limits.conf",
		}
	}
}
