// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package order

import (
	"fmt"
	"sync"

	"github.com/mohnkhan/dwarfs/lib/dwlog"
	"github.com/mohnkhan/dwarfs/lib/inode"
	"github.com/mohnkhan/dwarfs/lib/progress"
)

// Registry owns every inode from creation through ordering, implementing
// C4 from SPEC_FULL.md. Grounded on
// original_source/src/dwarfs/inode_manager.cpp's inode_manager_ class,
// whose std::vector<std::shared_ptr<inode_>> is this type's inodes field.
type Registry struct {
	mu       sync.Mutex
	inodes   []*inode.Inode
	log      *dwlog.Logger
	progress *progress.Progress
}

// New returns an empty Registry. A nil logger is valid and discards all
// logging.
func New(log *dwlog.Logger) *Registry {
	return &Registry{log: log, progress: progress.New()}
}

// Progress returns the C6 depth record this registry's NILSIMSA ordering
// publishes to. A driver wires it into a progress.Reporter independently
// of Order; the ordering engine never reads it back (SPEC_FULL.md §4.6).
func (r *Registry) Progress() *progress.Progress {
	return r.progress
}

// CreateInode appends a fresh, file-less inode and returns the shared
// handle the caller will later populate with SetFiles.
func (r *Registry) CreateInode() *inode.Inode {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := inode.New()
	r.inodes = append(r.inodes, n)
	return n
}

// Count returns the number of inodes currently owned by the registry.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inodes)
}

// ForEach invokes fn once per inode, in the registry's current order. fn
// must not call CreateInode or Order.
func (r *Registry) ForEach(fn func(*inode.Inode)) {
	r.mu.Lock()
	inodes := make([]*inode.Inode, len(r.inodes))
	copy(inodes, r.inodes)
	r.mu.Unlock()

	for _, n := range inodes {
		fn(n)
	}
}

// Order dispatches to one of the five strategies selected by
// opts.Mode, numbers every inode starting at firstInode, and invokes
// sink exactly once per inode in final emission order. On success every
// inode in the registry carries a unique number in
// [firstInode, firstInode+Count()).
//
// NILSIMSA numbers and emits inline as part of its own loop; every other
// mode permutes the registry's inode slice and then runs through the
// shared numberInodes + forEach(sink) pass — SPEC_FULL.md §4.5.6.
func (r *Registry) Order(script Script, opts inode.FileOrderOptions, firstInode uint32, sink SinkFunc) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch opts.Mode {
	case inode.OrderNilsimsa:
		return r.orderNilsimsa(opts, firstInode, sink)
	case inode.OrderNone:
		r.log.Info("keeping inode order")
		// nothing to permute
	case inode.OrderPath:
		r.log.Info("ordering inodes by path name...")
		done := r.log.TimedInfo("inodes ordered", "count", len(r.inodes))
		if err := orderByPath(r.inodes); err != nil {
			return err
		}
		done()
	case inode.OrderScript:
		r.log.Info("ordering inodes using script...")
		done := r.log.TimedInfo("inodes ordered", "count", len(r.inodes))
		if !script.HasOrder() {
			return fmt.Errorf("order: %w", inode.ErrInvalidRequest)
		}
		if err := script.Order(r.inodes); err != nil {
			return err
		}
		done()
	case inode.OrderSimilarity:
		r.log.Info("ordering inodes by similarity...")
		done := r.log.TimedInfo("inodes ordered", "count", len(r.inodes))
		if err := orderBySimilarity(r.inodes); err != nil {
			return err
		}
		done()
	default:
		return fmt.Errorf("order: unknown mode %q", opts.Mode)
	}

	numberInodes(r.inodes, firstInode)
	for _, n := range r.inodes {
		sink(n)
	}
	return nil
}

// numberInodes assigns first, first+1, ... to inodes in their current
// slice order.
func numberInodes(inodes []*inode.Inode, first uint32) {
	for i, n := range inodes {
		n.SetNum(first + uint32(i))
	}
}
