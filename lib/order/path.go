// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package order

import (
	"sort"

	"github.com/mohnkhan/dwarfs/lib/inode"
)

// orderByPath sorts inodes in place by their representative file's path,
// ascending, byte-wise (SPEC_FULL.md §4.5.2).
func orderByPath(inodes []*inode.Inode) error {
	keys := make([]string, len(inodes))
	for i, n := range inodes {
		f, err := n.Any()
		if err != nil {
			return err
		}
		keys[i] = f.Path()
	}

	idx := make([]int, len(inodes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]] < keys[idx[b]]
	})

	sorted := make([]*inode.Inode, len(inodes))
	for i, j := range idx {
		sorted[i] = inodes[j]
	}
	copy(inodes, sorted)
	return nil
}
