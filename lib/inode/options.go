// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package inode

// OrderMode selects which C5 ordering strategy Registry.Order dispatches
// to. Modeled as a tagged variant per the design note "polymorphic
// file-order strategies: model as a tagged variant ... dispatched inside
// order, not as a subclass hierarchy" rather than an interface hierarchy.
type OrderMode string

const (
	// OrderNone preserves creation order.
	OrderNone OrderMode = "none"
	// OrderPath sorts by path, ascending, byte-wise.
	OrderPath OrderMode = "path"
	// OrderScript delegates the permutation to a Script collaborator.
	OrderScript OrderMode = "script"
	// OrderSimilarity sorts by the 32-bit similarity fingerprint.
	OrderSimilarity OrderMode = "similarity"
	// OrderNilsimsa runs the adaptive greedy nilsimsa walk.
	OrderNilsimsa OrderMode = "nilsimsa"
)

// FileOrderOptions configures Registry.Order. Its yaml tags are consumed
// by LoadFileOrderOptions, which parses one from the same kind of
// single-file YAML configuration bureau-foundation-bureau/lib/config
// loads, without this subsystem owning any file I/O itself (SPEC_FULL.md
// §9).
type FileOrderOptions struct {
	// Mode selects the ordering strategy.
	Mode OrderMode `yaml:"mode"`

	// NilsimsaMaxDepth bounds how many candidates a single greedy step
	// may compare against. Must be >= 1. Only meaningful for
	// OrderNilsimsa.
	NilsimsaMaxDepth uint32 `yaml:"nilsimsa_max_depth"`

	// NilsimsaMinDepth is the floor the adaptive depth control may
	// shrink to. Must be <= NilsimsaMaxDepth. Only meaningful for
	// OrderNilsimsa.
	NilsimsaMinDepth uint32 `yaml:"nilsimsa_min_depth"`

	// NilsimsaLimit is the early-exit similarity threshold (0..255):
	// once a candidate at or above this similarity is found within the
	// search window, the step stops scanning and takes it. Only
	// meaningful for OrderNilsimsa.
	NilsimsaLimit uint32 `yaml:"nilsimsa_limit"`
}

// ScanOptions selects which digests Inode.Scan computes.
type ScanOptions struct {
	// WithSimilarity requests the 32-bit similarity fingerprint.
	WithSimilarity bool
	// WithNilsimsa requests the 256-bit nilsimsa digest.
	WithNilsimsa bool
}

// NeedsScan reports whether any digest was requested. Scan is a no-op
// when this is false, matching the original's opts.needs_scan() guard.
func (o ScanOptions) NeedsScan() bool {
	return o.WithSimilarity || o.WithNilsimsa
}
