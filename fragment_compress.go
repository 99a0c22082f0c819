// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

import "encoding/binary"

// compressFragment scans one fragment (at most BlockSize bytes) with mem,
// appending LITERAL/COPY tokens to out, and returns the extended slice.
// mem must already be reset (rebased) for this fragment.
//
// The match finder advances the scan position by a stride that grows with
// consecutive hash misses, trading ratio for throughput on incompressible
// input: skip starts at 32 and grows by 32 per miss, and the actual advance
// each step is skip>>5, so three consecutive misses in a row advance by
// 1, 2, 3 bytes respectively before the next hash probe.
func compressFragment(frag []byte, mem *workingMemory, out []byte) []byte {
	n := len(frag)
	if n < 5 {
		return emitLiteral(out, frag)
	}

	// No 4-byte match can start after position n-4, the start of the
	// final 4 bytes of the fragment.
	limit := n - 4

	literalStart := 0
	i := 0
	skip := 32

	for i <= limit {
		h := mem.hash(frag, i)
		cand := mem.lookup(h)
		mem.insert(h, i)

		if cand < 0 || !sameFour(frag, cand, i) {
			i += skip >> 5
			skip += 32
			continue
		}

		skip = 32
		if i > literalStart {
			out = emitLiteral(out, frag[literalStart:i])
		}

		extra, _ := findMatchLength(frag[cand+4:], frag[i+4:], n-(i+4))
		matchLen := 4 + extra
		offset := i - cand
		out = emitCopy(out, offset, matchLen)

		// Insert a hash entry for the byte right after the match start so a
		// short near-duplicate starting there can still be found later.
		if i+1 <= limit {
			mem.insert(mem.hash(frag, i+1), i+1)
		}

		i += matchLen
		literalStart = i
	}

	if literalStart < n {
		out = emitLiteral(out, frag[literalStart:])
	}

	return out
}

// sameFour reports whether the 4 bytes at b[p:] and b[q:] are equal. Callers
// guarantee p+4 <= len(b) and q+4 <= len(b).
func sameFour(b []byte, p, q int) bool {
	return binary.LittleEndian.Uint32(b[p:]) == binary.LittleEndian.Uint32(b[q:])
}

// emitLiteral appends a LITERAL token for lit. A no-op for an empty lit,
// since the decompressor never expects a zero-length token.
func emitLiteral(out []byte, lit []byte) []byte {
	n := len(lit)
	if n == 0 {
		return out
	}

	m := n - 1
	if m < literalInlineMax {
		out = append(out, tagByte(m<<2)|tagLiteral)
	} else {
		nbytes := leByteLen(uint32(m))
		out = append(out, tagByte((literalInlineMax-1+nbytes)<<2)|tagLiteral)
		for k := 0; k < nbytes; k++ {
			out = append(out, tagByte(m>>(8*k)))
		}
	}

	return append(out, lit...)
}

// leByteLen returns the number of little-endian bytes (1..4) needed to
// represent v.
func leByteLen(v uint32) int {
	n := 1
	for v >= 1<<(8*uint(n)) {
		n++
	}
	return n
}

// emitCopy appends one or more COPY tokens totaling length bytes at the
// given offset, splitting a run longer than a single token can encode into
// consecutive same-offset copies.
func emitCopy(out []byte, offset, length int) []byte {
	for length >= copy2MaxLen+4 {
		out = appendCopy2(out, offset, copy2MaxLen)
		length -= copy2MaxLen
	}

	if length > copy2MaxLen {
		// Avoid a very short trailing token: emit length-4 bytes now and
		// leave a final copy of exactly 4 instead of one of length 1..3.
		out = appendCopy2(out, offset, length-4)
		length = 4
	}

	if length >= copy1MinLen && length <= copy1MaxLen && offset <= copy1MaxOffset {
		return appendCopy1(out, offset, length)
	}

	return appendCopy2(out, offset, length)
}

// appendCopy1 appends a 2-byte COPY_1 token. length must be in [4,11] and
// offset in [0,2047].
func appendCopy1(out []byte, offset, length int) []byte {
	tag := byte(tagCopy1) | tagByte((length-copy1MinLen)<<2) | tagByte((offset>>8)<<5)
	return append(out, tag, tagByte(offset))
}

// appendCopy2 appends a 3-byte COPY_2 token. length must be in [1,64] and
// offset in [0,65535].
func appendCopy2(out []byte, offset, length int) []byte {
	tag := byte(tagCopy2) | tagByte((length-1)<<2)
	return append(out, tag, tagByte(offset), tagByte(offset>>8))
}
