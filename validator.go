// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// nullWriter implements writer by discarding every write. decompressCore
// instantiated with nullWriter tracks the op invariant exactly as a real
// decompression would, without ever allocating output.
type nullWriter struct{}

func (nullWriter) appendLiteral(src []byte) error      { return nil }
func (nullWriter) appendCopy(offset, length int) error { return nil }

// IsValidCompressed reports whether src decodes to exactly its declared
// length without buffer overrun or invalid offsets. It does not allocate
// the output buffer, so a declared length that would otherwise be too
// large to allocate is simply rejected once the (necessarily short) token
// stream runs out before reaching it — no special-casing for platform word
// size is needed.
func IsValidCompressed(src []byte) bool {
	u, n, err := readVarint(src)
	if err != nil {
		return false
	}
	return decompressCore(src[n:], nullWriter{}, u) == nil
}
