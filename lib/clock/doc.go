// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time operations for testability. Production code
// injects [Real]; tests inject [Fake] for deterministic control over ticker
// wakeups.
//
// Only the subset of time operations the ordering subsystem actually needs
// is exposed: reading the current time (for the logger's elapsed-time
// reports) and running a periodic ticker (for the background progress
// reporter). Sleep, AfterFunc and timers are not part of
// this package's surface because nothing in this repository calls them.
package clock
