// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// scatterWriter implements writer over an ordered list of fixed-size
// segments, used when the caller wants decompressed bytes delivered
// directly into pre-existing, possibly discontiguous buffers. Segments may
// be empty; the writer must skip over them transparently.
type scatterWriter struct {
	segs   [][]byte
	prefix []int // prefix[i] = total bytes in segs[0:i]; len(prefix) == len(segs)+1
	total  int

	pos    int // absolute output position (op)
	segIdx int // current destination segment
	segOff int // current offset within segs[segIdx]
}

func newScatterWriter(segments [][]byte) *scatterWriter {
	prefix := make([]int, len(segments)+1)
	for i, s := range segments {
		prefix[i+1] = prefix[i] + len(s)
	}
	return &scatterWriter{segs: segments, prefix: prefix, total: prefix[len(segments)]}
}

// locate resolves an absolute position into a (segment index, in-segment
// offset) pair, skipping past any empty segments at that boundary.
func (w *scatterWriter) locate(p int) (int, int) {
	lo, hi := 0, len(w.segs)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if w.prefix[mid] <= p {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	idx, off := lo, p-w.prefix[lo]
	for idx < len(w.segs) && off >= len(w.segs[idx]) {
		idx++
		off = 0
	}
	return idx, off
}

// skipExhausted advances (idx, off) past any segment it has fully consumed
// or that is empty.
func (w *scatterWriter) skipExhausted(idx, off int) (int, int) {
	for idx < len(w.segs) && off >= len(w.segs[idx]) {
		idx++
		off = 0
	}
	return idx, off
}

func (w *scatterWriter) appendLiteral(src []byte) error {
	if w.pos+len(src) > w.total {
		return corrupt(errSegmentOverrun)
	}

	written := 0
	for written < len(src) {
		w.segIdx, w.segOff = w.skipExhausted(w.segIdx, w.segOff)
		if w.segIdx >= len(w.segs) {
			return corrupt(errSegmentOverrun)
		}

		avail := len(w.segs[w.segIdx]) - w.segOff
		take := len(src) - written
		if take > avail {
			take = avail
		}

		copy(w.segs[w.segIdx][w.segOff:w.segOff+take], src[written:written+take])
		w.segOff += take
		written += take
		w.pos += take
	}

	return nil
}

// appendCopy copies length bytes from pos-offset to pos across the segment
// list. When the logical distance (offset) is at least 16, and both the
// source and destination have at least 16 bytes left in their current
// segment, a 16-byte block copy is used; source and destination can never
// overlap at that block size because the distance between them is itself
// at least 16. Otherwise it falls back to a byte-by-byte copy, which is
// required for correctness whenever offset < length (self-overlap).
func (w *scatterWriter) appendCopy(offset, length int) error {
	mPos := w.pos - offset
	if mPos < 0 {
		return corrupt(errBadOffset)
	}
	if w.pos+length > w.total {
		return corrupt(errSegmentOverrun)
	}

	srcIdx, srcOff := w.locate(mPos)
	remaining := length

	for remaining > 0 {
		w.segIdx, w.segOff = w.skipExhausted(w.segIdx, w.segOff)
		srcIdx, srcOff = w.skipExhausted(srcIdx, srcOff)
		if w.segIdx >= len(w.segs) || srcIdx >= len(w.segs) {
			return corrupt(errSegmentOverrun)
		}

		destAvail := len(w.segs[w.segIdx]) - w.segOff
		srcAvail := len(w.segs[srcIdx]) - srcOff

		if offset >= 16 && remaining >= 16 && destAvail >= 16 && srcAvail >= 16 {
			copy(w.segs[w.segIdx][w.segOff:w.segOff+16], w.segs[srcIdx][srcOff:srcOff+16])
			w.segOff += 16
			srcOff += 16
			w.pos += 16
			remaining -= 16
			continue
		}

		w.segs[w.segIdx][w.segOff] = w.segs[srcIdx][srcOff]
		w.segOff++
		srcOff++
		w.pos++
		remaining--
	}

	return nil
}
