// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

import "fmt"

// DecompressOptions configures DecompressFromReader.
type DecompressOptions struct {
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no input limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Variant selects the flag packing (Variant0 or Variant2).
	Variant Variant
	// NBits splits a match token into jump and run bits (10..13).
	// Larger values widen the window and shorten the longest run.
	NBits int
	// StoreOnly disables the match search; every byte is stored as a literal.
	StoreOnly bool
}

// DefaultCompressOptions returns variant 2 with nbits 11 (level 2).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		Variant: Variant2,
		NBits:   11,
	}
}

// LevelCompressOptions returns options for one of the compression levels 1, 2, 4 or 8.
func LevelCompressOptions(variant Variant, level int) (*CompressOptions, error) {
	nbits, err := NBitsForLevel(level)
	if err != nil {
		return nil, err
	}

	return &CompressOptions{Variant: variant, NBits: nbits}, nil
}

// validate checks the variant and nbits and returns the window parameters for nbits.
func (o *CompressOptions) validate() (windowParams, error) {
	if !o.Variant.valid() {
		return windowParams{}, fmt.Errorf("%w: %d", ErrUnsupportedVariant, o.Variant)
	}

	if o.NBits < MinNBits || o.NBits > MaxNBits {
		return windowParams{}, fmt.Errorf("%w: got %d", ErrInvalidNBits, o.NBits)
	}

	return fixedWindows[o.NBits-MinNBits], nil
}

// NBitsForLevel maps a compression level (1, 2, 4, 8) to its nbits value (10..13).
// The level is the search window size in KiB.
func NBitsForLevel(level int) (int, error) {
	nbits, ok := levelNBits[level]
	if !ok {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}

	return nbits, nil
}

// WindowSize returns the maximum jump distance for nbits, or 0 if nbits is unsupported.
func WindowSize(nbits int) int {
	if nbits < MinNBits || nbits > MaxNBits {
		return 0
	}

	return fixedWindows[nbits-MinNBits].window
}

// MaxRun returns the maximum match length for nbits, or 0 if nbits is unsupported.
func MaxRun(nbits int) int {
	if nbits < MinNBits || nbits > MaxNBits {
		return 0
	}

	return fixedWindows[nbits-MinNBits].maxRun
}
