// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package order implements C4 (the inode registry) and C5 (the ordering
// engine) from SPEC_FULL.md. The two are combined into a single package,
// mirroring how original_source/src/dwarfs/inode_manager.cpp combines
// both responsibilities into one inode_manager_<LoggerPolicy> class: the
// registry's only non-trivial operation is Order, which is entirely C5's
// concern, so splitting them into separate Go packages would create an
// import cycle (inode ordering needs inode.Inode; a standalone "registry"
// package delegating to "order" would need to import inode too, and
// inode would need the registry's Script/sink types back).
//
// Registry owns inode.Inode values from creation through ordering.
// [Registry.Order] dispatches to one of five strategies (none, path,
// script, similarity, nilsimsa) selected by inode.FileOrderOptions.Mode.
package order
