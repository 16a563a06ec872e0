// Package maa is the control layer of the maa hardware-access library for
// Intel Galileo class IO boards.
//
// It identifies the board once per process and lets the process request
// real-time round-robin scheduling. Pin multiplexing and the GPIO, I2C,
// SPI and PWM drivers build on top of it and require [Init] to have run.
//
// # Board Identity
//
//	if r := maa.Init(); r != maa.Success {
//	    maa.ResultPrint(r)
//	}
//	switch maa.GetPlatformType() {
//	case maa.IntelGalileoGen2:
//	    // load Gen2 pin table
//	default:
//	    // Gen1, or the fallback for UnknownPlatform
//	}
//
// Init probes the DMI board name and then the device-tree model. A board
// that cannot be classified is [UnknownPlatform]; an unreadable
// identification source fails the initializer permanently. Init is
// at-most-once: later calls return [ErrorPlatformAlreadyInitialised].
//
// Tests and embedders own their state through [NewInitializer] and an
// injected [Prober], or swap the process default with [SetDefault].
//
// # Scheduling Priority
//
//	if got := maa.SetPriority(99); got == maa.PriorityFailed {
//	    // continue without real-time scheduling
//	}
//
// SetPriority clamps to the host maximum and reports refusal through
// [PriorityFailed] rather than a [Result].
//
// # Result Codes
//
// [Result] and [Platform] values are fixed numbers shared with consumers
// compiled against them; 99 is the unspecified/unknown member of both.
package maa
