// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package dwlog

import (
	"log/slog"

	"github.com/mohnkhan/dwarfs/lib/clock"
)

// Logger wraps a [*slog.Logger] with the info/trace/timed-info surface the
// ordering subsystem uses for non-semantic observability (§6 of
// SPEC_FULL.md: "Logger — info/trace/timed-info emissions; non-semantic").
//
// A nil *Logger is valid and discards everything, so callers that don't
// care about observability can pass one without a nil check at every call
// site.
type Logger struct {
	inner *slog.Logger
	clock clock.Clock
}

// New wraps an existing slog logger, using clock.Real() to time
// TimedInfo's elapsed measurement. Passing a nil inner is equivalent to
// a discard logger.
func New(inner *slog.Logger) *Logger {
	return NewWithClock(inner, clock.Real())
}

// NewWithClock is New with an injected clock, so tests can control the
// elapsed duration TimedInfo reports instead of racing a real timer —
// mirroring the teacher's clk clock.Clock constructor-parameter pattern
// (e.g. bureau-daemon's newTokenVerifier).
func NewWithClock(inner *slog.Logger, clk clock.Clock) *Logger {
	return &Logger{inner: inner, clock: clk}
}

// Info logs an informational message, mirroring the C++ log_.info() stream.
func (l *Logger) Info(msg string, args ...any) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Info(msg, args...)
}

// Trace logs a fine-grained diagnostic message, mirroring log_.trace().
// Mapped to slog's Debug level since this codebase has no separate trace
// level.
func (l *Logger) Trace(msg string, args ...any) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Debug(msg, args...)
}

// TimedInfo records the current time and returns a function that, when
// called, logs msg (with args) and an "elapsed" attribute measuring the
// time since TimedInfo was called. Nothing is logged until that function
// runs. This replaces the C++ timed_info() stream proxy
// pattern (whose destructor flushes an accumulated line including elapsed
// time) with an explicit closure, since Go has no destructors to hook.
//
// Typical use, directly mirroring inode_manager.cpp's dispatch loop:
//
//	log.Info("ordering inodes by path name...")
//	done := log.TimedInfo("inodes ordered", "count", n)
//	orderByPath(inodes)
//	done()
func (l *Logger) TimedInfo(msg string, args ...any) func() {
	if l == nil || l.inner == nil {
		return func() {}
	}
	start := l.clock.Now()
	return func() {
		l.inner.Info(msg, append(append([]any{}, args...), "elapsed", l.clock.Now().Sub(start))...)
	}
}
