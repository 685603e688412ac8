// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package order

import "github.com/mohnkhan/dwarfs/lib/inode"

// SinkFunc is invoked exactly once per inode, synchronously, in final
// emission order. Its return value is the "fill signal" — a proxy for
// how saturated the downstream compressor's current block is — that
// feeds the NILSIMSA mode's adaptive depth control (SPEC_FULL.md §4.5.5
// step 4e). Modes other than NILSIMSA still call sink once per inode,
// but ignore the fill signal.
type SinkFunc func(*inode.Inode) int
