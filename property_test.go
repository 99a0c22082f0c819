// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

import (
	"bytes"
	"math/rand"
	"testing"
	"testing/quick"
)

// TestProperty_RoundTrip checks that compress then decompress reproduces the
// original bytes exactly, over inputs testing/quick generates from arbitrary
// []byte values.
func TestProperty_RoundTrip(t *testing.T) {
	f := func(data []byte) bool {
		cmp, err := Compress(data)
		if err != nil {
			return false
		}
		out, err := Uncompress(cmp, nil)
		if err != nil {
			return false
		}
		return bytes.Equal(out, data)
	}

	cfg := &quick.Config{MaxCount: 200}
	if err := quick.Check(f, cfg); err != nil {
		t.Error(err)
	}
}

// biasedInput generates an input whose byte distribution and run lengths
// are skewed toward repetition, since uniformly random bytes rarely
// exercise the match finder's COPY path.
func biasedInput(r *rand.Rand, maxLen int) []byte {
	n := r.Intn(maxLen + 1)
	out := make([]byte, 0, n)
	alphabet := []byte("ABCabc012 \t\n")

	for len(out) < n {
		runLen := 1 + r.Intn(40)
		if len(out)+runLen > n {
			runLen = n - len(out)
		}
		b := alphabet[r.Intn(len(alphabet))]
		for i := 0; i < runLen; i++ {
			out = append(out, b)
		}
	}

	return out
}

func TestProperty_RoundTripBiasedTowardMatches(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 300; i++ {
		data := biasedInput(r, 4*BlockSize)

		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("iteration %d: Compress failed: %v", i, err)
		}
		out, err := Uncompress(cmp, nil)
		if err != nil {
			t.Fatalf("iteration %d: Uncompress failed: %v", i, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("iteration %d: round-trip mismatch (len=%d)", i, len(data))
		}
	}
}

// TestProperty_MaxBlowupStaysWithinBound generates incompressible input
// (uniformly random bytes, in which repeated 4-byte windows are rare) and
// checks the compressed size never exceeds MaxCompressedLength. It does not
// build inputs from many short copies of earlier content.
func TestProperty_MaxBlowupStaysWithinBound(t *testing.T) {
	sizes := []int{0, 1, 4, 17, BlockSize - 1, BlockSize, BlockSize + 1, 3*BlockSize + 123}

	for _, n := range sizes {
		r := rand.New(rand.NewSource(int64(n) + 7))
		data := make([]byte, n)
		if _, err := r.Read(data); err != nil {
			t.Fatalf("n=%d: rand.Read failed: %v", n, err)
		}

		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("n=%d: Compress failed: %v", n, err)
		}

		bound := MaxCompressedLength(uint32(n))
		if uint32(len(cmp)) > bound {
			t.Fatalf("n=%d: compressed size %d exceeds MaxCompressedLength bound %d", n, len(cmp), bound)
		}

		out, err := Uncompress(cmp, nil)
		if err != nil {
			t.Fatalf("n=%d: Uncompress failed: %v", n, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("n=%d: round-trip mismatch on worst-case input", n)
		}
	}
}

// TestProperty_FragmentBoundaryEdgeCases covers inputs whose length sits
// exactly on, or just either side of, a fragment boundary, since the
// compressor treats each BlockSize-sized fragment independently.
func TestProperty_FragmentBoundaryEdgeCases(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	offsets := []int{-2, -1, 0, 1, 2}
	for _, off := range offsets {
		n := BlockSize + off
		if n < 0 {
			continue
		}
		data := make([]byte, n)
		if _, err := r.Read(data); err != nil {
			t.Fatalf("off=%d: rand.Read failed: %v", off, err)
		}

		cmp, err := Compress(data)
		if err != nil {
			t.Fatalf("off=%d: Compress failed: %v", off, err)
		}
		out, err := Uncompress(cmp, nil)
		if err != nil {
			t.Fatalf("off=%d: Uncompress failed: %v", off, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("off=%d: round-trip mismatch at fragment boundary", off)
		}
	}
}
