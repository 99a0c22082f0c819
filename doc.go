// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

/*
Package blz implements a byte-oriented, general-purpose lossless block
compression codec optimized for speed over ratio.

Each compressed block begins with a varint-encoded uncompressed length,
followed by a stream of tagged tokens (literals and back-reference copies)
that reproduce the source exactly. There is no magic number, no version
byte and no checksum; format identity is structural.

# Compress

	out, err := blz.Compress(data)

Compression splits input into fragments of at most blz.BlockSize bytes and
compresses each independently with a call-scoped hash table. To compress
input that is already split into segments without first concatenating it:

	out, err := blz.CompressSegments(segments)

# Uncompress

	out, err := blz.Uncompress(compressed, nil)

To bound the allocation performed on untrusted input, supply MaxOutputSize:

	out, err := blz.Uncompress(compressed, &blz.DecompressOptions{MaxOutputSize: 64 << 20})

To decompress directly into caller-owned, possibly discontiguous segments
(zero-copy delivery into pre-existing buffers):

	err := blz.UncompressSegments(compressed, segments, nil)

# Validation

	ok := blz.IsValidCompressed(compressed)

checks that a byte sequence decodes to exactly its declared length without
allocating the output buffer. UncompressedLength reads only the leading
varint.
*/
package blz
