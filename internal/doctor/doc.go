// Package doctor provides diagnostic checks for a maa host.
//
// Each [Check] inspects one aspect of the environment the library depends
// on: board identification, real-time scheduling capability, the host
// itself and the maa configuration file. A [Runner] executes the checks
// concurrently and aggregates their results, in registration order, into
// a [DoctorReport]. Checks that also implement [Fixer] can repair what
// they found.
package doctor
