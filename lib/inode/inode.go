// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package inode

import (
	"fmt"
	"math"
	"sync"
)

// Unassigned is the sentinel Num value an inode carries until the
// ordering engine finalizes its position.
const Unassigned = uint32(math.MaxUint32)

// File is a single source path that shares an inode's content. Dedup
// upstream of this package groups identical files; the ordering
// subsystem never compares file content itself, only digests already
// attached to the owning inode.
type File interface {
	// Path returns the file's full path.
	Path() string
	// Name returns the file's basename.
	Name() string
	// Size returns the file's size in bytes.
	Size() int64
}

// Chunk records one (block, offset, length) span the compressor placed
// this inode's content into. Chunks are appended only after ordering
// completes; the ordering engine itself never reads them.
type Chunk struct {
	Block  uint32
	Offset uint64
	Length uint64
}

// Inode aggregates the set of source files sharing identical content. It
// holds the similarity digests computed by Scan and, once the ordering
// engine runs, its assigned Num.
//
// Grounded on original_source/src/dwarfs/inode_manager.cpp's inode_ class:
// field-for-field the same shape (files, similarity hash, nilsimsa hash,
// num, chunks), restated with Go error returns in place of C++ exceptions
// (SPEC_FULL.md §9, Open Question 5).
type Inode struct {
	mu sync.RWMutex

	files []File

	similarityHash uint32
	nilsimsaHash   [4]uint64

	num uint32

	chunks []Chunk
}

// New returns an inode with no files set yet and an unassigned number.
// Registry.CreateInode is the normal way to obtain one; this constructor
// is exported for tests and for drivers that manage their own inode
// lifetime outside a Registry.
func New() *Inode {
	return &Inode{num: Unassigned}
}

// SetFiles attaches the (non-empty) set of files that share this inode's
// content. It may be called exactly once; a second call returns
// ErrAlreadySet, matching the original's "files already set for inode"
// fault.
func (n *Inode) SetFiles(files []File) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.files) != 0 {
		return fmt.Errorf("%w", ErrAlreadySet)
	}
	n.files = files
	return nil
}

// Files returns the inode's file set in insertion order. The returned
// slice must not be mutated by the caller.
func (n *Inode) Files() []File {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.files
}

// Any returns the first file in the inode's set, the representative file
// used for scanning and for path/size-based ordering. Returns ErrNoFile
// if no files have been set.
func (n *Inode) Any() (File, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if len(n.files) == 0 {
		return nil, fmt.Errorf("%w", ErrNoFile)
	}
	return n.files[0], nil
}

// Size returns the size of any file in the set (all files sharing an
// inode are identical in content, hence in size). Returns ErrNoFile if
// no files have been set.
func (n *Inode) Size() (int64, error) {
	file, err := n.Any()
	if err != nil {
		return 0, err
	}
	return file.Size(), nil
}

// SetNum finalizes the inode's position in the ordered sequence. Called
// exactly once per inode by the ordering engine.
func (n *Inode) SetNum(num uint32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.num = num
}

// Num returns the inode's assigned number, or Unassigned if ordering has
// not finalized it yet.
func (n *Inode) Num() uint32 {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.num
}

// SetSimilarityHash stores the inode's 32-bit similarity fingerprint.
// Scan calls this once it finishes hashing; a driver that restores
// digests from an external cache instead of rescanning may call it
// directly.
func (n *Inode) SetSimilarityHash(hash uint32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.similarityHash = hash
}

// SimilarityHash returns the inode's 32-bit similarity fingerprint.
// Returns ErrNoFile if the inode has no files — reading a digest before
// SetFiles (or on an intentionally empty inode) is a precondition
// violation, matching the original's "inode has no file" fault on
// similarity_hash().
func (n *Inode) SimilarityHash() (uint32, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if len(n.files) == 0 {
		return 0, fmt.Errorf("%w", ErrNoFile)
	}
	return n.similarityHash, nil
}

// SetNilsimsaHash stores the inode's 256-bit nilsimsa digest, as four
// 64-bit words. Scan calls this once it finishes hashing; a driver that
// restores digests from an external cache instead of rescanning may
// call it directly.
func (n *Inode) SetNilsimsaHash(hash [4]uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nilsimsaHash = hash
}

// NilsimsaSimilarityHash returns the inode's 256-bit nilsimsa digest as
// four 64-bit words. Returns ErrNoFile if the inode has no files.
func (n *Inode) NilsimsaSimilarityHash() ([4]uint64, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if len(n.files) == 0 {
		return [4]uint64{}, fmt.Errorf("%w", ErrNoFile)
	}
	return n.nilsimsaHash, nil
}

// AddChunk appends one compressor-assigned chunk to the inode. Called
// only after ordering completes; the ordering engine never reads chunks.
func (n *Inode) AddChunk(block uint32, offset, length uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chunks = append(n.chunks, Chunk{Block: block, Offset: offset, Length: length})
}

// AppendChunksTo appends a copy of this inode's chunks onto dst and
// returns the extended slice, mirroring the original's
// append_chunks_to(vec).
func (n *Inode) AppendChunksTo(dst []Chunk) []Chunk {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return append(dst, n.chunks...)
}
