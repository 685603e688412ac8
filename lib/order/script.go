// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package order

import "github.com/mohnkhan/dwarfs/lib/inode"

// Script is the pluggable ordering collaborator for OrderScript mode. An
// implementation that declines to order (HasOrder returning false) makes
// Registry.Order fail with inode.ErrInvalidRequest — mirroring the
// original's `if (!scr->has_order()) throw ...`.
type Script interface {
	// HasOrder reports whether this script is willing to order inodes.
	HasOrder() bool

	// Order permutes inodes in place into the script's desired order.
	// Only called when HasOrder returns true.
	Order(inodes []*inode.Inode) error
}

// NoScript is a [Script] that never offers to order, for drivers that
// support OrderScript mode syntactically but have no script configured.
type NoScript struct{}

func (NoScript) HasOrder() bool { return false }

func (NoScript) Order([]*inode.Inode) error { return nil }
