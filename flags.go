// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/icza/bitio"
)

// flagReader yields one literal/match decision per operation.
// Words are read on demand at 4-byte steps from the stream;
// stored bits are inverted (raw 0 = match) and consumed from bit 31 down.
type flagReader struct {
	src     []byte  // whole compressed stream
	pos     int     // offset of the next unread word
	variant Variant // decides how many bits of each word are used
	word    uint32  // inverted current word, next flag in bit 31
	pending int     // flags left in word
}

// newFlagReader starts reading flag words at offset pos.
func newFlagReader(src []byte, pos int, variant Variant) *flagReader {
	return &flagReader{src: src, pos: pos, variant: variant}
}

// next reports whether the next operation is a match.
func (f *flagReader) next() (bool, error) {
	if f.pending == 0 {
		if f.pos+flagWordSize > len(f.src) {
			return false, fmt.Errorf("%w: flag word at offset %d", ErrTruncatedStream, f.pos)
		}

		f.word = ^binary.LittleEndian.Uint32(f.src[f.pos:])
		f.pos += flagWordSize

		// Variant 0 leaves bit 0 unused; it is never shifted up into bit 31.
		f.pending = f.variant.flagsPerWord()
	}

	isMatch := f.word&(1<<31) != 0
	f.word <<= 1
	f.pending--

	return isMatch, nil
}

// packFlags serializes one flag per operation into little-endian flag words.
// The first flag of a word lands in bit 31. A short final word is filled with raw 0 bits.
// Variant 0 sets bit 0 of every word and appends a zero terminator word,
// which the legacy decoder uses to detect the end of the stream.
func packFlags(isMatch []bool, variant Variant) ([]byte, error) {
	perWord := variant.flagsPerWord()
	words := (len(isMatch) + perWord - 1) / perWord

	var buf bytes.Buffer
	buf.Grow((words + 1) * flagWordSize)

	w := bitio.NewWriter(&buf)
	for start := 0; start < len(isMatch); start += perWord {
		end := min(start+perWord, len(isMatch))
		for _, m := range isMatch[start:end] {
			w.TryWriteBool(!m)
		}

		if pad := perWord - (end - start); pad > 0 {
			w.TryWriteBits(0, uint8(pad)) // #nosec G115 -- pad < 32
		}

		if variant == Variant0 {
			w.TryWriteBool(true)
		}
	}

	if w.TryError != nil {
		return nil, w.TryError
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	// bitio emits MSB-first bytes, i.e. big-endian words.
	out := buf.Bytes()
	for i := 0; i+flagWordSize <= len(out); i += flagWordSize {
		binary.LittleEndian.PutUint32(out[i:], binary.BigEndian.Uint32(out[i:]))
	}

	if variant == Variant0 {
		out = append(out, 0, 0, 0, 0)
	}

	return out, nil
}
