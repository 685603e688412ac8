// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package osaccess provides the C2 "file-content source" contract: bounded,
// releasable, memory-mapped views into file content. The ordering
// subsystem's scanners read through [MappedFile] so that files far larger
// than any single scan window never need to be read into a Go-managed
// buffer.
//
// Grounded on bureau-foundation-bureau/lib/secret/buffer.go's use of
// golang.org/x/sys/unix for Mmap/Madvise, adapted from an anonymous,
// locked, zero-on-close secret buffer to a read-only, shared, file-backed
// mapping with MADV_DONTNEED release hints.
package osaccess
