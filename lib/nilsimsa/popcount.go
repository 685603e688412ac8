// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package nilsimsa

import (
	"math/bits"

	"github.com/klauspost/cpuid/v2"
)

// popcount64 counts the set bits of a single 64-bit word, dispatched at
// package init time to either a hardware POPCNT-backed path or a portable
// software fallback. This is the Go-idiomatic realization of the design
// note "polymorphic hash acceleration: expose the nilsimsa similarity
// kernel as a single function with runtime CPU-feature dispatch" — a
// function-pointer swap selected once, rather than a type hierarchy
// re-dispatched on every call.
var popcount64 = selectPopcount()

// selectPopcount inspects the host CPU via cpuid and returns
// popcountHardware (math/bits.OnesCount64) when cpuid reports the x86
// POPCNT feature, and popcountSoftware otherwise. cpuid reports POPCNT
// only on x86, so other architectures, arm64 included, always get the
// software count.
func selectPopcount() func(uint64) int {
	if cpuid.CPU.Supports(cpuid.POPCNT) {
		return popcountHardware
	}
	return popcountSoftware
}

// popcountHardware counts bits via math/bits, which the Go compiler lowers
// to a native POPCNT instruction on platforms where it is legal to emit
// one — the case this function is only selected for.
func popcountHardware(x uint64) int {
	return bits.OnesCount64(x)
}

// popcountSoftware is the SWAR (SIMD-within-a-register) bit-counting
// fallback for hosts without a hardware popcount instruction. It never
// calls bits.OnesCount64 so behavior stays deterministic and independent
// of what the Go toolchain happens to lower that call to on a given
// target.
func popcountSoftware(x uint64) int {
	x = x - ((x >> 1) & 0x5555555555555555)
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((x * 0x0101010101010101) >> 56)
}
