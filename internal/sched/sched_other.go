//go:build !linux

package sched

import "github.com/thoreinstein/maa/internal/errors"

// MaxPriority is unsupported off Linux.
func (h *Host) MaxPriority() (int, error) {
	return 0, errors.ErrSchedulerUnsupported
}

// SetRoundRobin is unsupported off Linux.
func (h *Host) SetRoundRobin(int) error {
	return errors.ErrSchedulerUnsupported
}

// CurrentPolicy is unsupported off Linux.
func (h *Host) CurrentPolicy() (Policy, error) {
	return PolicyOther, errors.ErrSchedulerUnsupported
}

// RTPrioLimit is unsupported off Linux.
func (h *Host) RTPrioLimit() (uint64, error) {
	return 0, errors.ErrSchedulerUnsupported
}

// Privileged always reports false off Linux.
func (h *Host) Privileged() bool {
	return false
}
