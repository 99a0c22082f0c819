// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

// contiguousWriter implements writer over a single pre-sized buffer of
// exactly U bytes. Bounds are enforced by the decompressor core
// before each call; appendLiteral and appendCopy assume the caller has
// already verified the write fits.
type contiguousWriter struct {
	buf []byte
	pos int
}

func newContiguousWriter(u uint32) *contiguousWriter {
	return &contiguousWriter{buf: make([]byte, u)}
}

func (w *contiguousWriter) appendLiteral(src []byte) error {
	n := copy(w.buf[w.pos:], src)
	w.pos += n
	return nil
}

// appendCopy copies length bytes from w.buf[w.pos-offset:] to w.buf[w.pos:].
// When offset < length the regions overlap and copy() would corrupt the
// tail, so the replication is done byte-by-byte, which is exactly the
// logical run-length-fill semantics a self-overlapping copy specifies.
func (w *contiguousWriter) appendCopy(offset, length int) error {
	mPos := w.pos - offset
	if mPos < 0 {
		return corrupt(errBadOffset)
	}

	if offset >= length {
		copy(w.buf[w.pos:w.pos+length], w.buf[mPos:mPos+length])
		w.pos += length
		return nil
	}

	for i := 0; i < length; i++ {
		w.buf[w.pos+i] = w.buf[mPos+i]
	}
	w.pos += length
	return nil
}
