// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package progress implements C6 from SPEC_FULL.md: the single
// online-tuned nilsimsa search-depth value the ordering engine (package
// order) publishes as it runs, plus a background reporter goroutine that
// periodically hands a read-only snapshot to a caller-supplied function —
// the Go equivalent of original_source/src/dwarfs/progress.cpp's
// 200ms-wake std::thread.
//
// Progress is write-once-per-step by the ordering engine and read by any
// number of observers (SPEC_FULL.md §5: "the depth variable in C6 is the
// only cross-thread communication and is write-once-per-step by C5;
// readers accept a tearing-free scalar load"). It is never consulted by
// the ordering engine itself — only written.
package progress
