// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"context"
	"time"

	"github.com/mohnkhan/dwarfs/lib/clock"
)

// WakeInterval is the reporter's periodic wake period, matching the
// design note "a background thread periodically invokes a
// caller-supplied reporter... 200ms wake period and a final invocation
// with a 'final' flag on shutdown" and progress.cpp's
// `cond_.wait_for(lock, std::chrono::milliseconds(200))`.
const WakeInterval = 200 * time.Millisecond

// Func is the caller-supplied reporter callback. final is true exactly
// once, on the last invocation made as the Reporter shuts down —
// mirroring progress.cpp's destructor sequence, which always calls
// `func(*this, true)` once after the wake loop exits.
type Func func(snapshot Snapshot, final bool)

// Reporter periodically invokes a [Func] with a snapshot of a [Progress],
// until its context is cancelled. It is a cooperatively-cancelable
// background task, not a hard-killed thread: Run blocks until ctx is
// done, performs exactly one final invocation, then returns.
type Reporter struct {
	progress *Progress
	clock    clock.Clock
	report   Func
}

// NewReporter creates a Reporter that will poll progress and invoke
// report every [WakeInterval], using clk for timing (inject
// clock.Fake() in tests to drive the wake cadence deterministically).
func NewReporter(progress *Progress, clk clock.Clock, report Func) *Reporter {
	return &Reporter{progress: progress, clock: clk, report: report}
}

// Run blocks, invoking the reporter callback once immediately and then
// once per [WakeInterval], until ctx is cancelled, then performs one
// last invocation with final=true before returning — mirroring
// progress.cpp's `while (running_) { func(*this, false);
// cond_.wait_for(...); } func(*this, true);` loop, which observes
// before it first waits. Intended to be run in its own goroutine:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	go reporter.Run(ctx)
//	defer cancel()
func (r *Reporter) Run(ctx context.Context) {
	ticker := r.clock.NewTicker(WakeInterval)
	defer ticker.Stop()

	r.report(r.progress.Snapshot(), false)

	for {
		select {
		case <-ticker.C:
			r.report(r.progress.Snapshot(), false)
		case <-ctx.Done():
			r.report(r.progress.Snapshot(), true)
			return
		}
	}
}
