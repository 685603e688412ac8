// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

// Package nilsimsa implements the two streaming content digests the
// ordering subsystem uses to decide which files are "similar":
//
//   - [Fingerprint]: a 32-bit content checksum used purely as a sort key
//     in SIMILARITY mode.
//   - [Digest]: a 256-bit locality-sensitive hash (nilsimsa), used as the
//     nearest-neighbor key in NILSIMSA mode. [Similarity] compares two
//     digests.
//
// Both accept content in arbitrary-sized chunks via Write and only finalize
// on Sum, so a caller can feed a multi-gigabyte memory-mapped file through
// in bounded windows without ever materializing it whole.
package nilsimsa
