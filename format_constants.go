// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

// ULZ container layout constants.
const (
	headerSize    = 16         // fixed header in front of the flag words
	maxField24    = 0xFFFFFF   // largest value of a 3-byte header field
	flagWordSize  = 4          // bytes per flag word
	tokenSize     = 2          // bytes per match token
	sectionAlign  = 4          // literal and token pools are padded to this boundary
	minMatchLen   = 3          // shortest back-reference
	signatureSize = 4          // "Ulz" + 0x1A
	timMagic      = 0x00000010 // little-endian first word of a TIM image
)

// signature is the magic at offset 0 of every ULZ stream.
var signature = [signatureSize]byte{0x55, 0x6C, 0x7A, 0x1A}

// Variant selects one of the two incompatible flag packing conventions.
type Variant uint8

// Supported variants.
const (
	Variant0 Variant = 0 // 31 flags per word, constant low bit, zero terminator word
	Variant2 Variant = 2 // 32 flags per word
)

// flagsPerWord returns the number of operation flags held by one word.
func (v Variant) flagsPerWord() int {
	if v == Variant0 {
		return 31
	}

	return 32
}

// valid reports whether v is a known variant.
func (v Variant) valid() bool {
	return v == Variant0 || v == Variant2
}

// Supported nbits values.
const (
	MinNBits = 10
	MaxNBits = 13
)

// windowParams holds the search window and look-ahead bounds derived from nbits.
type windowParams struct {
	window int // max jump distance
	maxRun int // max match length
}

// fixedWindows is indexed by nbits-MinNBits.
var fixedWindows = [MaxNBits - MinNBits + 1]windowParams{
	{1024, 66},
	{2048, 34},
	{4096, 18},
	{8192, 10},
}

// levelNBits maps the compression levels of the original tooling to nbits.
var levelNBits = map[int]int{
	1: 10,
	2: 11,
	4: 12,
	8: 13,
}
