// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package dwlog is a thin wrapper around [log/slog] that adds a
// TimedInfo helper: the idiomatic Go equivalent of the C++
// log_proxy<LoggerPolicy>::timed_info() stream proxy used throughout
// dwarfs/inode_manager.cpp ("auto ti = log_.timed_info(); ...; ti << n
// << " inodes ordered";"). Logging itself carries no semantics for the
// ordering subsystem — it is purely observational.
package dwlog
