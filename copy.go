// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

// copyBackRef copies up to length bytes from dst[outputPos-dist:] to dst[outputPos:] and
// returns the number of bytes written. The copy stops at len(dst): the declared size of
// the stream wins over the nominal run.
// If dist < length, source and destination overlap and the bytes written earlier in this
// same copy are read back, which repeats the last dist bytes with period dist.
func copyBackRef(dst []byte, outputPos, dist, length int) (int, error) {
	mPos := outputPos - dist
	if dist <= 0 || mPos < 0 {
		return 0, ErrLookBehindUnderrun
	}

	length = min(length, len(dst)-outputPos)
	if length <= 0 {
		return 0, nil
	}

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return length, nil
	}

	for i := 0; i < length; i++ {
		dst[outputPos+i] = dst[mPos+i]
	}

	return length, nil
}
