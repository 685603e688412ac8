// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package inode

import "errors"

// Errors returned by Inode and Registry operations. All of them are fatal
// to whatever operation raised them (SPEC_FULL.md §7): nothing here is
// retried, and there is no partial-success mode.
var (
	// ErrNoFile is returned by any accessor that requires a file-bearing
	// inode (Any, Size, SimilarityHash, NilsimsaSimilarityHash) when the
	// inode has no files set.
	ErrNoFile = errors.New("inode: has no file")

	// ErrAlreadySet is returned by SetFiles when called a second time on
	// the same inode. An inode's file set is immutable once established.
	ErrAlreadySet = errors.New("inode: files already set")

	// ErrInvalidRequest is returned by Registry.Order when mode is
	// Script but the script declares it cannot order inodes.
	ErrInvalidRequest = errors.New("inode: script cannot order inodes")

	// ErrInternal is returned when the nilsimsa ordering loop's emitted
	// count does not match the inode count it started with — a bug in
	// the ordering engine, not a caller error.
	ErrInternal = errors.New("inode: internal ordering invariant violated")
)
