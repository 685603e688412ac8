// Copyright 2026 The DwarFS-Go Authors
// SPDX-License-Identifier: Apache-2.0

package nilsimsa

import (
	"bytes"
	"math/rand"
	"testing"
)

func sumOf(data []byte) [4]uint64 {
	d := NewDigest()
	d.Write(data)
	return d.Sum()
}

func TestDigestDeterministic(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 50)

	a := sumOf(data)
	b := sumOf(data)

	if a != b {
		t.Fatalf("digest not deterministic: %v != %v", a, b)
	}
}

func TestDigestStreamingEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 300000)
	rng.Read(data)

	whole := sumOf(data)

	// Feed in small, uneven windows instead of one call, including
	// windows that don't align with any "natural" boundary.
	d := NewDigest()
	for offset := 0; offset < len(data); {
		size := 1 + rng.Intn(4096)
		end := offset + size
		if end > len(data) {
			end = len(data)
		}
		d.Write(data[offset:end])
		offset = end
	}
	streamed := d.Sum()

	if whole != streamed {
		t.Fatalf("streaming digest differs from single-shot digest:\n whole=%v\n streamed=%v", whole, streamed)
	}
}

func TestSimilaritySelfIs255(t *testing.T) {
	data := []byte("a moderately sized piece of content used to seed a digest")
	digest := sumOf(data)

	if got := Similarity(digest, digest); got != 255 {
		t.Errorf("Similarity(d, d) = %d, want 255", got)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := sumOf([]byte("content A, somewhat different from content B"))
	b := sumOf([]byte("content B, somewhat different from content A"))

	if Similarity(a, b) != Similarity(b, a) {
		t.Errorf("Similarity not symmetric: sim(a,b)=%d sim(b,a)=%d", Similarity(a, b), Similarity(b, a))
	}
}

func TestSimilarityDecreasesWithDivergence(t *testing.T) {
	base := bytes.Repeat([]byte("ABCDEFGH"), 4096)
	baseDigest := sumOf(base)

	// A single byte flipped near the start should still be highly
	// similar to the original.
	slightlyDifferent := append([]byte{}, base...)
	slightlyDifferent[10] = 'X'
	slightDigest := sumOf(slightlyDifferent)

	// Entirely unrelated random content should be much less similar.
	rng := rand.New(rand.NewSource(7))
	unrelated := make([]byte, len(base))
	rng.Read(unrelated)
	unrelatedDigest := sumOf(unrelated)

	simSlight := Similarity(baseDigest, slightDigest)
	simUnrelated := Similarity(baseDigest, unrelatedDigest)

	if simSlight <= simUnrelated {
		t.Errorf("expected a single-byte change (sim=%d) to be more similar than unrelated content (sim=%d)", simSlight, simUnrelated)
	}
}

func TestFingerprintDeterministicAndStreaming(t *testing.T) {
	data := bytes.Repeat([]byte("fingerprint me"), 1000)

	whole := NewFingerprint()
	whole.Write(data)
	sumWhole := whole.Sum()

	streamed := NewFingerprint()
	streamed.Write(data[:5000])
	streamed.Write(data[5000:])
	sumStreamed := streamed.Sum()

	if sumWhole != sumStreamed {
		t.Fatalf("fingerprint differs between single-shot and streamed writes: %d != %d", sumWhole, sumStreamed)
	}

	other := NewFingerprint()
	other.Write([]byte("completely different content"))
	if other.Sum() == sumWhole {
		t.Errorf("fingerprints of different content unexpectedly collided")
	}
}

func TestFingerprintReset(t *testing.T) {
	f := NewFingerprint()
	f.Write([]byte("some content"))
	first := f.Sum()

	f.Reset()
	f.Write([]byte("some content"))
	second := f.Sum()

	if first != second {
		t.Errorf("Reset did not restore hasher to a clean state: %d != %d", first, second)
	}
}

func TestPopcountImplementationsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 10000; i++ {
		v := rng.Uint64()
		if popcountHardware(v) != popcountSoftware(v) {
			t.Fatalf("popcount mismatch for %#x: hardware=%d software=%d", v, popcountHardware(v), popcountSoftware(v))
		}
	}
}
