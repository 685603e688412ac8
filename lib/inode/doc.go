// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package inode implements C3 (Inode) from SPEC_FULL.md: the in-memory
// record that groups content-identical source files together, carries
// their similarity digests, and is handed to the ordering engine
// (package order, which owns C4 and C5) for numbering.
//
// Grounded on original_source/src/dwarfs/inode_manager.cpp's inode_
// class.
package inode
