// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

import (
	"bytes"
	"testing"
)

func TestIsValidCompressed_AcceptsRealOutput(t *testing.T) {
	for _, in := range testInputSet() {
		cmp, err := Compress(in.data)
		if err != nil {
			t.Fatalf("%s: Compress failed: %v", in.name, err)
		}
		if !IsValidCompressed(cmp) {
			t.Fatalf("%s: IsValidCompressed rejected genuine compressor output", in.name)
		}
	}
}

func TestIsValidCompressed_RejectsTruncatedStream(t *testing.T) {
	data := bytes.Repeat([]byte("validator-probe"), 500)
	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for cut := 1; cut <= 16 && cut < len(cmp); cut++ {
		if IsValidCompressed(cmp[:len(cmp)-cut]) {
			t.Fatalf("cut=%d: IsValidCompressed accepted a truncated stream", cut)
		}
	}
}

func TestIsValidCompressed_RejectsTrailingGarbage(t *testing.T) {
	data := []byte("validator trailing garbage check")
	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	withTrailer := append(append([]byte(nil), cmp...), 0xAA)
	if IsValidCompressed(withTrailer) {
		t.Fatal("IsValidCompressed accepted a stream with trailing garbage")
	}
}

func TestIsValidCompressed_RejectsBadVarint(t *testing.T) {
	if IsValidCompressed([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x0a}) {
		t.Fatal("IsValidCompressed accepted an unterminated varint")
	}
}

// TestIsValidCompressed_OverDeclaredLengthWithNoOutputAllocation verifies that
// a 32-bit-max declared length with an obviously insufficient token stream
// must be rejected without the validator ever allocating output memory.
func TestIsValidCompressed_OverDeclaredLengthWithNoOutputAllocation(t *testing.T) {
	src := appendVarint(nil, MaxUncompressedLength)
	src = append(src, tagByte(0)|tagLiteral, 'x') // declares one literal byte, far short of 2^32-1
	if IsValidCompressed(src) {
		t.Fatal("IsValidCompressed accepted a stream whose declared length vastly exceeds its token stream")
	}
}

func TestIsValidCompressed_EmptyInputIsValid(t *testing.T) {
	if !IsValidCompressed([]byte{0x00}) {
		t.Fatal("IsValidCompressed rejected the canonical empty-input stream")
	}
}
