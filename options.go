// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// DecompressOptions configures decompression. A nil *DecompressOptions (or
// the zero value) means: trust the declared length as-is and allocate
// exactly that much.
type DecompressOptions struct {
	// MaxOutputSize, if non-zero, bounds the declared uncompressed length
	// the decoder will act on. Exceeding it fails with ErrTooLarge before
	// any output buffer is allocated. Use this when decompressing input
	// from an untrusted source.
	MaxOutputSize uint32
}
