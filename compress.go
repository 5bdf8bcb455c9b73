// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

import "fmt"

// op is one decoded operation: a literal when run is 0, a back-reference otherwise.
type op struct {
	literal byte
	jump    int
	run     int
}

// Compress encodes src as a ULZ stream. opts may be nil (variant 2, nbits 11).
// The output decodes with Decompress and with the game's own decoder.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	params, err := opts.validate()
	if err != nil {
		return nil, err
	}

	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	if len(src) > maxField24 {
		return nil, fmt.Errorf("%w: input is %d bytes", ErrSizeLimit, len(src))
	}

	var ops []op
	if opts.StoreOnly {
		ops = parseLiterals(src)
	} else {
		ops = parseGreedy(src, params)
	}

	return assemble(ops, len(src), opts)
}

// parseGreedy covers src with operations, taking the longest match at every position.
func parseGreedy(src []byte, params windowParams) []op {
	mf := acquireMatchFinder(src, params)
	defer releaseMatchFinder(mf)

	ops := make([]op, 0, len(src)/2+1)
	for p := 0; p < len(src); {
		jump, run := mf.find(p)
		if run == 0 {
			ops = append(ops, op{literal: src[p]})
			p++
			continue
		}

		ops = append(ops, op{jump: jump, run: run})
		p += run
	}

	return ops
}

// parseLiterals stores every byte of src as a literal.
func parseLiterals(src []byte) []op {
	ops := make([]op, len(src))
	for i, b := range src {
		ops[i].literal = b
	}

	return ops
}

// assemble builds the flag words, literal pool and token pool for ops and prefixes the header.
func assemble(ops []op, size int, opts *CompressOptions) ([]byte, error) {
	isMatch := make([]bool, len(ops))
	literals := make([]byte, 0, len(ops))
	tokens := make([]byte, 0, tokenSize*len(ops)/4)

	for i, o := range ops {
		if o.run == 0 {
			literals = append(literals, o.literal)
			continue
		}

		isMatch[i] = true
		cell := EncodeToken(o.jump, o.run, opts.NBits)
		tokens = append(tokens, byte(cell), byte(cell>>8))
	}

	flags, err := packFlags(isMatch, opts.Variant)
	if err != nil {
		return nil, err
	}

	literals = padSection(literals)
	tokens = padSection(tokens)

	hdr := Header{
		UncompressedSize: size,
		Variant:          opts.Variant,
		LiteralOffset:    headerSize + len(flags),
		NBits:            opts.NBits,
	}
	hdr.MatchOffset = hdr.LiteralOffset + len(literals)

	out := make([]byte, 0, hdr.MatchOffset+len(tokens))
	out, err = hdr.AppendBinary(out)
	if err != nil {
		return nil, err
	}

	out = append(out, flags...)
	out = append(out, literals...)
	out = append(out, tokens...)

	return out, nil
}

// padSection appends zero bytes up to the next 4-byte boundary.
func padSection(b []byte) []byte {
	if rem := len(b) % sectionAlign; rem != 0 {
		b = append(b, make([]byte, sectionAlign-rem)...)
	}

	return b
}
