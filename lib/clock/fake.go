// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// Fake returns a Clock whose notion of "now" only moves when [FakeClock.Advance]
// is called. Tests use this to drive the progress reporter's wake cadence
// deterministically instead of racing against a real 200ms ticker.
func Fake(start time.Time) *FakeClock {
	f := &FakeClock{now: start}
	f.tickersChanged = sync.NewCond(&f.mu)
	return f
}

// FakeClock is a deterministic [Clock] for tests.
type FakeClock struct {
	mu             sync.Mutex
	now            time.Time
	tickers        []*fakeTicker
	tickersChanged *sync.Cond
}

func (f *FakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan time.Time, 1)
	ft := &fakeTicker{interval: d, next: f.now.Add(d), c: ch}
	f.tickers = append(f.tickers, ft)
	f.tickersChanged.Broadcast()

	return &Ticker{
		C: ch,
		stopFunc: func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			ft.stopped = true
			f.tickersChanged.Broadcast()
		},
	}
}

// WaitForTimers blocks until at least n tickers are pending (registered,
// not yet stopped). This eliminates the race between a goroutine calling
// NewTicker and the test calling Advance.
//
// Example:
//
//	go reporter.Run(ctx)          // calls clock.NewTicker internally
//	fakeClock.WaitForTimers(1)    // blocks until that call registers
//	fakeClock.Advance(WakeInterval)
func (f *FakeClock) WaitForTimers(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.pendingCountLocked() < n {
		f.tickersChanged.Wait()
	}
}

// PendingCount returns the number of active (non-stopped) tickers
// currently registered with this clock.
func (f *FakeClock) PendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pendingCountLocked()
}

func (f *FakeClock) pendingCountLocked() int {
	count := 0
	for _, ft := range f.tickers {
		if !ft.stopped {
			count++
		}
	}
	return count
}

// Advance moves the fake clock forward by d, firing (non-blocking, at most
// one pending tick per ticker) any tickers whose next deadline has passed.
func (f *FakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
	for _, ft := range f.tickers {
		if ft.stopped {
			continue
		}
		for !ft.next.After(f.now) {
			select {
			case ft.c <- f.now:
			default:
			}
			ft.next = ft.next.Add(ft.interval)
		}
	}
}

type fakeTicker struct {
	interval time.Duration
	next     time.Time
	c        chan time.Time
	stopped  bool
}
