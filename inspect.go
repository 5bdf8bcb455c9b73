// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

import "encoding/binary"

// Info summarizes one ULZ stream.
type Info struct {
	Header
	Stats

	CompressedSize int    // length of the inspected stream
	PayloadExt     string // ".tim" or ".dat", from the first bytes of the decoded data
}

// Inspect decodes src and reports its header together with operation statistics.
// It fails exactly when Decompress fails.
func Inspect(src []byte) (*Info, error) {
	out, stats, err := decompressCore(src)
	if err != nil {
		return nil, err
	}

	hdr, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}

	return &Info{
		Header:         hdr,
		Stats:          stats,
		CompressedSize: len(src),
		PayloadExt:     DetectPayloadExt(out),
	}, nil
}

// DetectPayloadExt returns ".tim" when data starts with the TIM image magic, ".dat" otherwise.
func DetectPayloadExt(data []byte) string {
	if len(data) >= 4 && binary.LittleEndian.Uint32(data) == timMagic {
		return ".tim"
	}

	return ".dat"
}
