//go:build linux

package sched

import (
	"os"
	"slices"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/thoreinstein/maa/internal/errors"
)

// taskDir lists one directory per thread of the calling process.
const taskDir = "/proc/self/task"

// maxTaskPasses bounds how often SetRoundRobin rescans taskDir for threads
// the Go runtime started while earlier ones were being switched.
const maxTaskPasses = 8

// MaxPriority returns sched_get_priority_max(SCHED_RR).
func (h *Host) MaxPriority() (int, error) {
	// x/sys/unix has no wrapper for this call.
	r, _, errno := unix.RawSyscall(unix.SYS_SCHED_GET_PRIORITY_MAX, uintptr(unix.SCHED_RR), 0, 0)
	if errno != 0 {
		return 0, wrapErrno(errno, "sched_get_priority_max", errors.ErrSchedulerUnsupported)
	}
	return int(r), nil
}

// SetRoundRobin switches every thread in /proc/self/task to SCHED_RR at
// priority. Threads started afterwards inherit the policy.
//
// The first refusal is returned and threads already switched are put back
// on SCHED_OTHER.
func (h *Host) SetRoundRobin(priority int) error {
	rr := &unix.SchedAttr{Policy: unix.SCHED_RR, Priority: uint32(priority)}

	var switched []int
	for range maxTaskPasses {
		tids, err := listTasks(taskDir)
		if err != nil {
			restoreOther(switched)
			return err
		}

		fresh := 0
		for _, tid := range tids {
			if slices.Contains(switched, tid) {
				continue
			}
			fresh++
			if err := unix.SchedSetAttr(tid, rr, 0); err != nil {
				if errors.Is(err, unix.ESRCH) {
					// The thread exited between listing and switching.
					continue
				}
				restoreOther(switched)
				return wrapErrno(err, "sched_setattr tid "+strconv.Itoa(tid), errors.ErrInvalidPriority)
			}
			switched = append(switched, tid)
		}
		if fresh == 0 {
			return nil
		}
	}
	return nil
}

func restoreOther(tids []int) {
	other := &unix.SchedAttr{Policy: unix.SCHED_NORMAL}
	for _, tid := range tids {
		_ = unix.SchedSetAttr(tid, other, 0)
	}
}

// listTasks returns the numeric thread IDs under dir in ascending order.
func listTasks(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "listing threads")
	}
	tids := make([]int, 0, len(entries))
	for _, e := range entries {
		tid, err := strconv.Atoi(e.Name())
		if err != nil || tid <= 0 {
			continue
		}
		tids = append(tids, tid)
	}
	slices.Sort(tids)
	return tids, nil
}

// CurrentPolicy returns the scheduling policy of the calling thread, which
// SetRoundRobin keeps equal to that of every other thread.
func (h *Host) CurrentPolicy() (Policy, error) {
	return threadPolicy(0)
}

func threadPolicy(tid int) (Policy, error) {
	attr, err := unix.SchedGetAttr(tid, 0)
	if err != nil {
		return PolicyOther, wrapErrno(err, "sched_getattr", errors.ErrSchedulerUnsupported)
	}
	return Policy(attr.Policy), nil
}

// RTPrioLimit returns the soft RLIMIT_RTPRIO of the calling process.
func (h *Host) RTPrioLimit() (uint64, error) {
	var rl unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_RTPRIO, &rl); err != nil {
		return 0, errors.Wrap(err, "getrlimit RLIMIT_RTPRIO")
	}
	return rl.Cur, nil
}

// Privileged reports whether the process runs as root.
func (h *Host) Privileged() bool {
	return unix.Geteuid() == 0
}

// wrapErrno marks err by its errno. EINVAL means different things per call,
// so the caller names its mark.
func wrapErrno(err error, op string, einval error) error {
	wrapped := errors.Wrap(err, op)
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return wrapped
	}
	switch errno {
	case unix.EPERM, unix.EACCES:
		return errors.Mark(wrapped, errors.ErrPermissionDenied)
	case unix.ENOSYS:
		return errors.Mark(wrapped, errors.ErrSchedulerUnsupported)
	case unix.EINVAL:
		return errors.Mark(wrapped, einval)
	}
	return wrapped
}
