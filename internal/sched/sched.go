// Package sched drives the host's real-time round-robin scheduler for
// every thread of the process.
package sched

// Policy is a host scheduling policy number.
type Policy int

// Linux policy numbers.
const (
	PolicyOther Policy = 0
	PolicyFIFO  Policy = 1
	PolicyRR    Policy = 2
	PolicyBatch Policy = 3
	PolicyIdle  Policy = 5
)

// String returns the conventional SCHED_* name.
func (p Policy) String() string {
	switch p {
	case PolicyOther:
		return "SCHED_OTHER"
	case PolicyFIFO:
		return "SCHED_FIFO"
	case PolicyRR:
		return "SCHED_RR"
	case PolicyBatch:
		return "SCHED_BATCH"
	case PolicyIdle:
		return "SCHED_IDLE"
	default:
		return "unknown"
	}
}

// Host is the scheduler of the machine the process runs on.
type Host struct{}

// NewHost returns the host scheduler.
func NewHost() *Host {
	return &Host{}
}
