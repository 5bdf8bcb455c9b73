// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

/*
Package ulz implements the ULZ compression format used by Ace Combat 3 (PlayStation)
for textures and binary assets.

A stream is a 16-byte header followed by three sections: 32-bit flag words (one bit
per operation, raw 0 = match), a pool of literal bytes and a pool of 16-bit match
tokens. Each token splits into jump-1 (low nbits bits) and run-3 (high 16-nbits bits),
nbits being 10, 11, 12 or 13. Variant 2 uses all 32 bits of a flag word; variant 0
uses 31 and ends the flag section with a zero word.

Both sections are read with independent cursors, so the decoder never needs to know
the operation count: it stops when the output reaches the declared size.

# Decompress

	out, err := ulz.Decompress(compressed)

From an io.Reader, optionally capping the input size:

	out, err := ulz.DecompressFromReader(r, &ulz.DecompressOptions{MaxInputSize: 1 << 24})

Header fields and decode statistics (longest jump and run, operation counts):

	info, err := ulz.Inspect(compressed)

# Compress

Options may be nil (variant 2, nbits 11):

	out, err := ulz.Compress(data, nil)
	out, err := ulz.Compress(data, &ulz.CompressOptions{Variant: ulz.Variant0, NBits: 10})

Compression levels 1/2/4/8 of the original tooling select a 1/2/4/8 KiB window:

	opts, err := ulz.LevelCompressOptions(ulz.Variant2, 4)
*/
package ulz
