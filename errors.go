// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression and compression.
var (
	// ErrFormat is returned when the stream does not start with the ULZ signature.
	ErrFormat = errors.New("not an ulz stream")
	// ErrUnsupportedVariant is returned for a variant byte other than 0 or 2.
	ErrUnsupportedVariant = errors.New("unsupported ulz variant")
	// ErrTruncatedStream is returned when the decoder reads past the end of input.
	ErrTruncatedStream = errors.New("truncated ulz stream")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrOptionsRequired is returned when DecompressFromReader is called with nil options.
	ErrOptionsRequired = errors.New("options required")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrConfig is the family of encoder configuration errors.
	// Callers can use errors.Is(err, ulz.ErrConfig) to match any of the wrapped errors below.
	ErrConfig = errors.New("invalid ulz configuration")
)

// Configuration errors, all matching ErrConfig.
var (
	// ErrInvalidNBits is returned for nbits outside 10..13.
	ErrInvalidNBits = fmt.Errorf("%w: nbits must be one of 10, 11, 12, 13", ErrConfig)
	// ErrInvalidLevel is returned for a compression level other than 1, 2, 4 or 8.
	ErrInvalidLevel = fmt.Errorf("%w: level must be one of 1, 2, 4, 8", ErrConfig)
	// ErrEmptyInput is returned when there is nothing to compress.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrConfig)
	// ErrSizeLimit is returned when the input or a section offset does not fit a 3-byte header field.
	ErrSizeLimit = fmt.Errorf("%w: data does not fit 24-bit header fields", ErrConfig)
)
