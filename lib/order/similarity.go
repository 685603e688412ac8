// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package order

import (
	"sort"

	"github.com/mohnkhan/dwarfs/lib/inode"
)

type similarityKey struct {
	fingerprint uint32
	size        int64
	path        string
}

// orderBySimilarity sorts inodes in place by the composite key
// (similarity_hash asc, size desc, path asc) — SPEC_FULL.md §4.5.4.
func orderBySimilarity(inodes []*inode.Inode) error {
	keys := make([]similarityKey, len(inodes))
	for i, n := range inodes {
		fp, err := n.SimilarityHash()
		if err != nil {
			return err
		}
		size, err := n.Size()
		if err != nil {
			return err
		}
		f, err := n.Any()
		if err != nil {
			return err
		}
		keys[i] = similarityKey{fingerprint: fp, size: size, path: f.Path()}
	}

	idx := make([]int, len(inodes))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ka, kb := keys[idx[a]], keys[idx[b]]
		if ka.fingerprint != kb.fingerprint {
			return ka.fingerprint < kb.fingerprint
		}
		if ka.size != kb.size {
			return ka.size > kb.size
		}
		return ka.path < kb.path
	})

	sorted := make([]*inode.Inode, len(inodes))
	for i, j := range idx {
		sorted[i] = inodes[j]
	}
	copy(inodes, sorted)
	return nil
}
