// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// MaxCompressedLength returns an upper bound on the compressed size of an
// input of n uncompressed bytes, safe to use for pre-sizing an output
// buffer before calling Compress.
func MaxCompressedLength(n uint32) uint32 {
	return 32 + n + n/6
}

// Compress compresses src into a single blz block: a varint-encoded length
// followed by the concatenated per-fragment token streams. Input
// longer than BlockSize is split into independent fragments; each fragment
// compresses only against itself.
func Compress(src []byte) ([]byte, error) {
	out := make([]byte, 0, MaxCompressedLength(uint32(len(src))))
	out = appendVarint(out, uint32(len(src)))

	if len(src) == 0 {
		return out, nil
	}

	mem := newWorkingMemory(min(len(src), BlockSize))
	for start := 0; start < len(src); start += BlockSize {
		end := min(start+BlockSize, len(src))
		mem.reset(start)
		out = compressFragment(src[start:end], mem, out)
	}

	return out, nil
}

// CompressSegments compresses input that is already split into segments,
// without requiring the caller to concatenate it first. Each fragment (at
// most BlockSize bytes, which may straddle several segments) is assembled
// into a scratch buffer before the match finder scans it, since match
// search needs random access within the fragment.
func CompressSegments(segments [][]byte) ([]byte, error) {
	total := 0
	for _, s := range segments {
		total += len(s)
	}

	out := make([]byte, 0, MaxCompressedLength(uint32(total)))
	out = appendVarint(out, uint32(total))

	if total == 0 {
		return out, nil
	}

	mem := newWorkingMemory(min(total, BlockSize))
	scratch := make([]byte, 0, BlockSize)

	segIdx, segOff := 0, 0
	base := 0
	remaining := total

	for remaining > 0 {
		fragLen := min(remaining, BlockSize)
		scratch = scratch[:0]

		need := fragLen
		for need > 0 {
			for segOff >= len(segments[segIdx]) {
				segIdx++
				segOff = 0
			}

			avail := len(segments[segIdx]) - segOff
			take := min(avail, need)
			scratch = append(scratch, segments[segIdx][segOff:segOff+take]...)
			segOff += take
			need -= take
		}

		mem.reset(base)
		out = compressFragment(scratch, mem, out)

		base += fragLen
		remaining -= fragLen
	}

	return out, nil
}
