// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

import (
	"bytes"
	"fmt"
)

// Header is the fixed 16-byte record at the start of a ULZ stream.
type Header struct {
	UncompressedSize int     // declared output size, authoritative for the decoder
	Variant          Variant // flag packing convention
	LiteralOffset    int     // absolute offset of the literal pool
	NBits            int     // token bit split
	MatchOffset      int     // absolute offset of the token pool
}

// IsULZ reports whether src starts with the ULZ signature.
func IsULZ(src []byte) bool {
	return len(src) >= signatureSize && bytes.Equal(src[:signatureSize], signature[:])
}

// ParseHeader reads the header from the start of src.
// The signature is checked before any other field is read.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < signatureSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedStream, headerSize, len(src))
	}

	if !IsULZ(src) {
		return Header{}, fmt.Errorf("%w: signature % x", ErrFormat, src[:signatureSize])
	}

	if len(src) < headerSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, have %d", ErrTruncatedStream, headerSize, len(src))
	}

	variant := Variant(src[7])
	if !variant.valid() {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVariant, src[7])
	}

	// The high byte of the match offset field is not part of the value.
	return Header{
		UncompressedSize: readLE24(src[4:]),
		Variant:          variant,
		LiteralOffset:    readLE24(src[8:]),
		NBits:            int(src[11]),
		MatchOffset:      readLE24(src[12:]),
	}, nil
}

// AppendBinary appends the 16-byte encoding of h to dst.
func (h Header) AppendBinary(dst []byte) ([]byte, error) {
	if !h.Variant.valid() {
		return dst, fmt.Errorf("%w: %d", ErrUnsupportedVariant, h.Variant)
	}

	if h.NBits < 0 || h.NBits > 0xFF {
		return dst, fmt.Errorf("%w: got %d", ErrInvalidNBits, h.NBits)
	}

	for _, v := range [...]int{h.UncompressedSize, h.LiteralOffset, h.MatchOffset} {
		if v < 0 || v > maxField24 {
			return dst, fmt.Errorf("%w: field value %d", ErrSizeLimit, v)
		}
	}

	dst = append(dst, signature[:]...)
	dst = appendLE24(dst, h.UncompressedSize)
	dst = append(dst, byte(h.Variant))
	dst = appendLE24(dst, h.LiteralOffset)
	dst = append(dst, byte(h.NBits)) // #nosec G115 -- range checked above
	dst = appendLE24(dst, h.MatchOffset)
	dst = append(dst, 0)

	return dst, nil
}

// Level returns the compression level (1, 2, 4, 8) matching h.NBits, or 0 if there is none.
func (h Header) Level() int {
	for level, nbits := range levelNBits {
		if nbits == h.NBits {
			return level
		}
	}

	return 0
}

// readLE24 decodes a 3-byte little-endian value; b must hold at least 3 bytes.
func readLE24(b []byte) int {
	return int(b[0]) | int(b[1])<<8 | int(b[2])<<16
}

// appendLE24 appends the low 3 bytes of v in little-endian order.
func appendLE24(dst []byte, v int) []byte {
	// #nosec G115 -- only the low 24 bits are serialized.
	return append(dst, byte(v), byte(v>>8), byte(v>>16))
}
