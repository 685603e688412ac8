// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package osaccess

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// OsAccess maps files into memory for scanning. Implementations must be
// safe for concurrent use across independent calls to MapFile — scanning
// is embarrassingly parallel across inodes (SPEC_FULL.md §5) and each
// scan owns its own mapping.
type OsAccess interface {
	// MapFile memory-maps size bytes of the file at path for reading.
	// size must match the file's actual size; passing a stale size (the
	// file changed underfoot) is a caller error.
	MapFile(path string, size int64) (MappedFile, error)
}

// MappedFile is a bounded, releasable view into a file's bytes.
type MappedFile interface {
	// Bytes returns the mapped content starting at offset, running to
	// the end of the mapping. The returned slice is only valid until
	// Close.
	Bytes(offset int64) []byte

	// ReleaseUntil hints that bytes before offset are no longer needed
	// and their backing pages may be reclaimed. offset must be
	// non-decreasing across calls on the same MappedFile.
	ReleaseUntil(offset int64)

	// Close unmaps the file. Safe to call even if some release hints
	// were never issued.
	Close() error
}

// Default is the production [OsAccess] implementation, backed by
// mmap(2)/madvise(2) via golang.org/x/sys/unix — the read-oriented sibling
// of the anonymous, locked mapping bureau-foundation-bureau/lib/secret
// uses for secret material.
type Default struct{}

// NewDefault returns the production mmap-backed [OsAccess].
func NewDefault() Default { return Default{} }

// MapFile opens path and memory-maps its first size bytes, read-only,
// shared (so the kernel may reclaim clean pages under memory pressure
// without writing anything back).
func (Default) MapFile(path string, size int64) (MappedFile, error) {
	if size == 0 {
		return &mappedFile{}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osaccess: opening %s: %w", path, err)
	}
	defer file.Close()

	data, err := unix.Mmap(int(file.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("osaccess: mmap %s (%d bytes): %w", path, size, err)
	}

	return &mappedFile{data: data}, nil
}

// mappedFile implements MappedFile over a single mmap(2) region.
type mappedFile struct {
	data     []byte
	released int64 // pages before this offset have already been released
	closed   bool
}

func (m *mappedFile) Bytes(offset int64) []byte {
	if m.data == nil || offset >= int64(len(m.data)) {
		return nil
	}
	return m.data[offset:]
}

// ReleaseUntil calls madvise(MADV_DONTNEED) on the page-aligned prefix of
// the mapping up to offset. MADV_DONTNEED is safe for a read-only,
// MAP_SHARED, non-dirty mapping: the kernel simply drops the cached pages,
// re-faulting them from the underlying file on next access rather than
// discarding unwritten data.
func (m *mappedFile) ReleaseUntil(offset int64) {
	if m.data == nil || offset <= m.released {
		return
	}
	if offset > int64(len(m.data)) {
		offset = int64(len(m.data))
	}

	pageSize := int64(os.Getpagesize())
	alignedEnd := (offset / pageSize) * pageSize
	if alignedEnd <= m.released {
		return
	}

	// Best-effort: a release hint that fails changes nothing about
	// correctness, only residency, so errors are not surfaced.
	_ = unix.Madvise(m.data[m.released:alignedEnd], unix.MADV_DONTNEED)
	m.released = alignedEnd
}

func (m *mappedFile) Close() error {
	if m.closed || m.data == nil {
		m.closed = true
		return nil
	}
	m.closed = true
	if err := unix.Munmap(m.data); err != nil {
		return fmt.Errorf("osaccess: munmap: %w", err)
	}
	return nil
}
