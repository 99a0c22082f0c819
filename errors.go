// SPDX-License-Identifier: MIT
// Copyright (c) 2026 student-go
// Source: github.com/student-go/blz

package blz

import (
	"errors"
	"fmt"
)

// Sentinel errors at the public boundary. Every format failure satisfies
// errors.Is(err, ErrCorrupt); an over-large declared length satisfies
// errors.Is(err, ErrTooLarge) instead, since it is a budget decision by the
// caller rather than a malformed stream.
var (
	// ErrCorrupt reports that the input is not a valid compressed blob.
	ErrCorrupt = errors.New("blz: corrupt input")
	// ErrTooLarge reports that the declared uncompressed length exceeds the
	// caller-supplied DecompressOptions.MaxOutputSize.
	ErrTooLarge = errors.New("blz: declared length too large")
)

// Internal sentinels distinguish the error taxonomy for tests while staying
// collapsible to ErrCorrupt/ErrTooLarge at the public boundary.
var (
	errTruncatedVarint    = errors.New("truncated varint")
	errUnterminatedVarint = errors.New("unterminated varint")
	errOverflowingVarint  = errors.New("overflowing varint")
	errTruncatedToken     = errors.New("truncated token")
	errLiteralOverrun     = errors.New("literal overrun")
	errCopyOverrun        = errors.New("copy overrun")
	errBadOffset          = errors.New("bad copy offset")
	errTrailingGarbage    = errors.New("trailing garbage after token stream")
	errShortStream        = errors.New("token stream ended before declared length")
	errSegmentOverrun     = errors.New("segment list shorter than declared length")
)

// corrupt wraps an internal kind as an ErrCorrupt.
func corrupt(kind error) error {
	return fmt.Errorf("blz: %w: %w", ErrCorrupt, kind)
}

// tooLarge wraps ErrTooLarge with context.
func tooLarge(declared, max uint32) error {
	return fmt.Errorf("blz: declared length %d exceeds maximum %d: %w", declared, max, ErrTooLarge)
}
