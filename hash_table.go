// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

import "encoding/binary"

// hashMultiplier is the multiplicative-hash constant used to fold a 4-byte
// little-endian fingerprint down to the table's index width. The exact
// constant affects compression ratio, not correctness.
const hashMultiplier = 0x1e35a7bd

// workingMemory is the hash table a single compression call owns. Entries
// are 16-bit offsets from the current fragment's base, stored 1-based so
// that 0 means "empty"; the table is reset per fragment by zeroing it, so
// no entry from a previous fragment survives into the next one.
type workingMemory struct {
	table []uint16
	shift uint // 32 - log2(len(table))
}

// hashTableSize returns the smallest power of two in
// [minHashTableSize, maxHashTableSize] that is >= n.
func hashTableSize(n int) int {
	size := minHashTableSize
	for size < n && size < maxHashTableSize {
		size <<= 1
	}
	return size
}

// newWorkingMemory allocates a hash table sized for a fragment of up to n
// bytes, reusable across fragments via reset.
func newWorkingMemory(n int) *workingMemory {
	size := hashTableSize(n)
	bits := 0
	for 1<<bits < size {
		bits++
	}
	return &workingMemory{
		table: make([]uint16, size),
		shift: 32 - uint(bits),
	}
}

// reset clears all entries so the table can be reused for the next
// fragment; positions stored in it are always relative to that fragment's
// own start, so no base offset needs to be retained here.
func (w *workingMemory) reset(base int) {
	for i := range w.table {
		w.table[i] = 0
	}
}

// hash folds the 4 bytes at src[i:i+4] into a table index.
func (w *workingMemory) hash(src []byte, i int) uint32 {
	v := binary.LittleEndian.Uint32(src[i:])
	return (v * hashMultiplier) >> w.shift
}

// lookup returns the fragment-relative position previously stored at h, or
// -1 if the slot is empty (stores are 1-based so that 0 can mean "empty").
func (w *workingMemory) lookup(h uint32) int {
	v := w.table[h]
	if v == 0 {
		return -1
	}
	return int(v) - 1
}

// insert records that fragment-relative position pos hashes to h. Positions
// are stored 1-based; a fragment may be at most BlockSize <= 1<<16 bytes,
// so pos+1 always fits in uint16.
func (w *workingMemory) insert(h uint32, pos int) {
	w.table[h] = uint16(pos + 1)
}
