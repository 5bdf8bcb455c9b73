// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

// EncodeToken packs a back-reference into a 16-bit cell.
// run-3 occupies the high 16-nbits bits, jump-1 the low nbits bits.
func EncodeToken(jump, run, nbits int) uint16 {
	// #nosec G115 -- the cell layout keeps only the low 16 bits.
	return uint16((((run - minMatchLen) << nbits) | (jump - 1)) & 0xFFFF)
}

// DecodeToken unpacks a 16-bit cell. Every cell decodes to some pair.
func DecodeToken(cell uint16, nbits int) (jump, run int) {
	mask := (1 << nbits) - 1
	jump = int(cell)&mask + 1
	run = int(cell)>>nbits + minMatchLen

	return jump, run
}
