// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// Wire format constants: fragment size, hash table sizing, tag-byte layout.

// BlockSize is the maximum size of a fragment compressed as one independent
// unit. Decompression does not see fragment boundaries.
const BlockSize = 65536

// MaxHashTableBits caps the per-call working-memory hash table at 1<<14 entries.
const MaxHashTableBits = 14

// maxHashTableSize is the table entry count at MaxHashTableBits.
const maxHashTableSize = 1 << MaxHashTableBits

// minHashTableSize is the floor for the working-memory hash table, regardless
// of how small the fragment is.
const minHashTableSize = 256

// MaxUncompressedLength is the format's ceiling on a single declared length:
// a varint can encode at most 2^32-1.
const MaxUncompressedLength = 1<<32 - 1

// Tag-byte layout: the low 2 bits of every token's first byte discriminate
// the token kind.
const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
	tagCopy4   = 0x03
)

// Per-kind length bounds.
const (
	copy1MinLen = 4
	copy1MaxLen = 11
	copy2MaxLen = 64
	copy4MaxLen = 64

	copy1MaxOffset = 1<<11 - 1
	copy2MaxOffset = 1<<16 - 1

	literalInlineMax = 60 // m values [0,60) encode L-1 directly in the tag byte
)
