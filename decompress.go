// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// Uncompress decompresses a full blz block and returns the reconstructed
// bytes. opts may be nil, in which case no ceiling is placed on the
// declared uncompressed length beyond the format's own 32-bit limit.
func Uncompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	u, n, err := readVarint(src)
	if err != nil {
		return nil, err
	}
	if err := checkOutputBudget(u, opts); err != nil {
		return nil, err
	}

	w := newContiguousWriter(u)
	if err := decompressCore(src[n:], w, u); err != nil {
		return nil, err
	}
	return w.buf, nil
}

// UncompressSegments decompresses src directly into segments, an ordered
// list of (possibly empty) fixed-size buffers whose combined length must be
// at least the declared uncompressed length. This avoids allocating a
// contiguous output buffer when the caller already owns pre-sized memory.
func UncompressSegments(src []byte, segments [][]byte, opts *DecompressOptions) error {
	u, n, err := readVarint(src)
	if err != nil {
		return err
	}
	if err := checkOutputBudget(u, opts); err != nil {
		return err
	}

	w := newScatterWriter(segments)
	if uint64(w.total) < uint64(u) {
		return corrupt(errSegmentOverrun)
	}

	return decompressCore(src[n:], w, u)
}

// UncompressedLength reads only the leading varint of src and returns the
// declared uncompressed length, without touching the token stream.
func UncompressedLength(src []byte) (uint32, error) {
	u, _, err := readVarint(src)
	return u, err
}

// checkOutputBudget enforces opts.MaxOutputSize, if set.
func checkOutputBudget(u uint32, opts *DecompressOptions) error {
	if opts == nil || opts.MaxOutputSize == 0 {
		return nil
	}
	if u > opts.MaxOutputSize {
		return tooLarge(u, opts.MaxOutputSize)
	}
	return nil
}

// decompressCore consumes the tagged token stream in src and drives w to
// reproduce exactly u bytes. w is a type parameter rather than an
// interface value at the call site so the three concrete writers
// (contiguousWriter, scatterWriter, nullWriter) are monomorphized instead
// of dispatched through a vtable on every token.
func decompressCore[W writer](src []byte, w W, u uint32) error {
	ip := 0
	op := uint32(0)

	for op < u {
		if ip >= len(src) {
			return corrupt(errShortStream)
		}

		tag := src[ip]
		ip++
		e := tagTable[tag]

		if ip+int(e.extra) > len(src) {
			return corrupt(errTruncatedToken)
		}

		var trailer uint32
		switch e.extra {
		case 1:
			trailer = uint32(src[ip])
		case 2:
			trailer = uint32(src[ip]) | uint32(src[ip+1])<<8
		case 4:
			trailer = uint32(src[ip]) | uint32(src[ip+1])<<8 | uint32(src[ip+2])<<16 | uint32(src[ip+3])<<24
		}
		ip += int(e.extra)

		if e.kind == tagLiteral {
			l := e.length
			if e.extra != 0 {
				l = trailer + 1
			}

			if uint64(op)+uint64(l) > uint64(u) {
				return corrupt(errLiteralOverrun)
			}
			if ip+int(l) > len(src) {
				return corrupt(errLiteralOverrun)
			}

			if err := w.appendLiteral(src[ip : ip+int(l)]); err != nil {
				return err
			}
			ip += int(l)
			op += l
			continue
		}

		l := e.length
		var offset uint32
		if e.kind == tagCopy1 {
			offset = e.offsetHigh<<8 | trailer
		} else {
			offset = trailer
		}

		if offset == 0 || offset > op {
			return corrupt(errBadOffset)
		}
		if uint64(op)+uint64(l) > uint64(u) {
			return corrupt(errCopyOverrun)
		}

		if err := w.appendCopy(int(offset), int(l)); err != nil {
			return err
		}
		op += l
	}

	if ip != len(src) {
		return corrupt(errTrailingGarbage)
	}

	return nil
}
