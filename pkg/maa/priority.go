package maa

import (
	"log/slog"

	"github.com/thoreinstein/maa/internal/errors"
	"github.com/thoreinstein/maa/internal/sched"
)

// PriorityFailed is returned by SetPriority when the host refuses the
// request. It lies outside every valid real-time priority.
const PriorityFailed = -1

// Scheduler is the host capability to switch the process to real-time
// round-robin scheduling.
type Scheduler interface {
	// MaxPriority returns the highest round-robin priority the host accepts.
	MaxPriority() (int, error)
	// SetRoundRobin switches every thread of the process to round-robin
	// scheduling at priority. On error no thread is left switched.
	SetRoundRobin(priority int) error
}

// Grant is the outcome of one priority request.
type Grant struct {
	// Requested is the caller's input.
	Requested uint `json:"requested" yaml:"requested"`
	// Applied is the priority handed to the host after clamping, or
	// PriorityFailed when the host maximum is unknown.
	Applied int `json:"applied" yaml:"applied"`
	// Clamped is true when Requested exceeded the host maximum.
	Clamped bool `json:"clamped" yaml:"clamped"`
	// Err is the host's reason for refusing, nil on success.
	Err error `json:"-" yaml:"-"`
}

// Denied reports whether the host refused the request.
func (g Grant) Denied() bool {
	return g.Err != nil
}

// Value returns the applied priority, or PriorityFailed if denied.
func (g Grant) Value() int {
	if g.Denied() {
		return PriorityFailed
	}
	return g.Applied
}

// ClampPriority caps requested at hostMax. Negative maxima clamp to 0.
func ClampPriority(requested uint, hostMax int) (applied int, clamped bool) {
	if hostMax < 0 {
		hostMax = 0
	}
	if requested > uint(hostMax) {
		return hostMax, true
	}
	return int(requested), false
}

// Decide combines a request, the host maximum and the host's answer into
// a Grant. It performs no system calls.
func Decide(requested uint, hostMax int, grantErr error) Grant {
	applied, clamped := ClampPriority(requested, hostMax)
	return Grant{
		Requested: requested,
		Applied:   applied,
		Clamped:   clamped,
		Err:       grantErr,
	}
}

// PriorityController requests real-time priority for the process.
// It keeps no mutable state and is safe for concurrent use.
type PriorityController struct {
	sched  Scheduler
	logger *slog.Logger
}

// NewPriorityController returns a controller backed by s. A nil s uses
// the host scheduler.
func NewPriorityController(s Scheduler, logger *slog.Logger) *PriorityController {
	if s == nil {
		s = sched.NewHost()
	}
	return &PriorityController{sched: s, logger: logger}
}

func (c *PriorityController) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

// Request clamps priority to the host maximum and asks the host for
// round-robin scheduling at that level. It never retries.
func (c *PriorityController) Request(priority uint) Grant {
	hostMax, err := c.sched.MaxPriority()
	if err != nil {
		g := Grant{
			Requested: priority,
			Applied:   PriorityFailed,
			Err:       errors.Wrap(err, "querying round-robin maximum"),
		}
		c.log().Warn("real-time priority unavailable", "requested", priority, "error", err)
		return g
	}

	applied, _ := ClampPriority(priority, hostMax)
	g := Decide(priority, hostMax, c.sched.SetRoundRobin(applied))
	if g.Denied() {
		c.log().Warn("real-time priority denied",
			"requested", priority, "applied", g.Applied, "error", g.Err)
		return g
	}

	c.log().Debug("real-time priority set",
		"requested", priority, "applied", g.Applied, "clamped", g.Clamped)
	return g
}

// SetPriority returns the applied priority or PriorityFailed.
func (c *PriorityController) SetPriority(priority uint) int {
	return c.Request(priority).Value()
}

// SetPriority switches every thread of the process to real-time
// round-robin scheduling at priority, capped at the host maximum
// (typically 99). Threads started afterwards inherit the policy.
// It returns the priority set, or PriorityFailed (-1) when the host
// refuses, commonly for lack of privilege. Priority 0 is not a valid
// round-robin level and is refused with errors.ErrInvalidPriority.
// Failure is not fatal and does not affect the platform state.
func SetPriority(priority uint) int {
	return NewPriorityController(nil, nil).SetPriority(priority)
}
