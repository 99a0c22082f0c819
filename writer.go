// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// writer is the capability set the decompressor core is generic over:
// a contiguous buffer, a segmented (scatter/gather) buffer and the
// discarding nullWriter used by IsValidCompressed all implement it.
// decompressCore is a generic function parameterized on this
// interface so the concrete implementations are monomorphized at
// compile time instead of paying a virtual call per token.
type writer interface {
	// appendLiteral copies src verbatim to the writer's current position
	// and advances it by len(src).
	appendLiteral(src []byte) error
	// appendCopy copies length bytes from offset bytes before the current
	// position to the current position, with byte-by-byte semantics when
	// offset < length, and advances the position by length.
	appendCopy(offset, length int) error
}
