// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

import "encoding/binary"

// findMatchLength returns the length of the longest common prefix of a and
// b, bounded by limit, and a flag reporting whether that length is shorter
// than 8 bytes. compressFragment discards the flag; emitCopy chooses the
// most compact tag from the final length and offset alone.
//
// Callers must guarantee len(a) >= limit and len(b) >= limit. The function
// never reads a[limit:] or b[limit:], even via the word-sized fast path:
// the fragment compressor calls this with limit set to the fragment's end,
// which may sit immediately before an unreadable guard page.
func findMatchLength(a, b []byte, limit int) (length int, shortMatch bool) {
	n := 0

	for n+8 <= limit {
		wa := binary.LittleEndian.Uint64(a[n:])
		wb := binary.LittleEndian.Uint64(b[n:])
		if wa == wb {
			n += 8
			continue
		}
		n += firstDifferingByte(wa, wb)
		return n, n < 8
	}

	for n < limit && a[n] == b[n] {
		n++
	}

	return n, n < 8
}

// firstDifferingByte returns the index (0..7) of the lowest-order byte at
// which two little-endian words differ.
func firstDifferingByte(a, b uint64) int {
	diff := a ^ b
	n := 0
	for diff&0xff == 0 {
		n++
		diff >>= 8
	}
	return n
}
