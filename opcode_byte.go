// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// tagByte truncates v to its low 8 bits. Tag-byte callers pass values that
// already fit in one byte; the trailer emitters pass whole offsets and
// lengths and rely on the truncation to take their low byte.
func tagByte(v int) byte {
	return byte(v & 0xff)
}
