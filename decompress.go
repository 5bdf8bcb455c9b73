// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

import "fmt"

// Stats describes the operations seen while decoding one stream.
type Stats struct {
	Literals    int // literal operations
	Matches     int // match operations
	LongestJump int // largest back-reference distance
	LongestRun  int // largest nominal match length (before clipping at the declared size)
}

// Decompress decodes a whole ULZ stream (variant 0 or 2) and returns exactly
// Header.UncompressedSize bytes. Bytes after the last section are ignored.
func Decompress(src []byte) ([]byte, error) {
	out, _, err := decompressCore(src)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// decompressCore parses the header and runs the decode loop until the output
// reaches the declared size.
func decompressCore(src []byte) ([]byte, Stats, error) {
	hdr, err := ParseHeader(src)
	if err != nil {
		return nil, Stats{}, err
	}

	var (
		stats    Stats
		flags    = newFlagReader(src, headerSize, hdr.Variant)
		litPos   = hdr.LiteralOffset
		matchPos = hdr.MatchOffset
		dst      = make([]byte, hdr.UncompressedSize)
		outPos   int
	)

	for outPos < len(dst) {
		isMatch, err := flags.next()
		if err != nil {
			return nil, stats, err
		}

		if !isMatch {
			if litPos >= len(src) {
				return nil, stats, fmt.Errorf("%w: literal at offset %d", ErrTruncatedStream, litPos)
			}

			dst[outPos] = src[litPos]
			litPos++
			outPos++
			stats.Literals++
			continue
		}

		cell, err := readToken(src, &matchPos)
		if err != nil {
			return nil, stats, err
		}

		jump, run := DecodeToken(cell, hdr.NBits)
		stats.Matches++
		stats.LongestJump = max(stats.LongestJump, jump)
		stats.LongestRun = max(stats.LongestRun, run)

		n, err := copyBackRef(dst, outPos, jump, run)
		if err != nil {
			return nil, stats, fmt.Errorf("%w: jump %d at output offset %d", err, jump, outPos)
		}

		outPos += n
	}

	return dst, stats, nil
}

// readToken reads one little-endian match cell from src at *pos and advances *pos by 2.
func readToken(src []byte, pos *int) (uint16, error) {
	if *pos < 0 || *pos+tokenSize > len(src) {
		return 0, fmt.Errorf("%w: match token at offset %d", ErrTruncatedStream, *pos)
	}

	lo := uint16(src[*pos])
	hi := uint16(src[*pos+1])
	*pos += tokenSize

	return lo | hi<<8, nil
}
