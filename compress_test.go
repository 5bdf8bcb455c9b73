package ulz

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	rnd := rand.New(rand.NewSource(1))
	noise := make([]byte, 20000)
	rnd.Read(noise)

	block := make([]byte, 3000)
	rnd.Read(block)

	return []struct {
		name string
		data []byte
	}{
		{name: "single-byte", data: []byte{0xAB}},
		{name: "two-bytes", data: []byte{0xAB, 0xAB}},
		{name: "short-text", data: []byte("hello world, ulz test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "noise", data: noise},
		{name: "far-repeat", data: append(append([]byte{}, block...), block...)},
		{name: "tim-like", data: append([]byte{0x10, 0, 0, 0, 0x08, 0, 0, 0}, bytes.Repeat([]byte{0x1F, 0x7C, 0, 0}, 700)...)},
	}
}

func allCompressOptions() []*CompressOptions {
	var opts []*CompressOptions
	for _, variant := range []Variant{Variant0, Variant2} {
		for nbits := MinNBits; nbits <= MaxNBits; nbits++ {
			opts = append(opts, &CompressOptions{Variant: variant, NBits: nbits})
		}
	}

	return opts
}

func TestCompressDecompress_RoundTripAcrossParams(t *testing.T) {
	for _, in := range testInputSet() {
		for _, opts := range allCompressOptions() {
			name := fmt.Sprintf("%s/v%d-nbits-%d", in.name, opts.Variant, opts.NBits)
			t.Run(name, func(t *testing.T) {
				cmp, err := Compress(in.data, opts)
				if err != nil {
					t.Fatalf("Compress failed: %v", err)
				}

				out, err := Decompress(cmp)
				if err != nil {
					t.Fatalf("Decompress failed: %v", err)
				}
				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(in.data))
				}

				info, err := Inspect(cmp)
				if err != nil {
					t.Fatalf("Inspect failed: %v", err)
				}
				if info.LongestJump > WindowSize(opts.NBits) {
					t.Fatalf("jump %d exceeds window %d", info.LongestJump, WindowSize(opts.NBits))
				}
				if info.LongestRun > MaxRun(opts.NBits) {
					t.Fatalf("run %d exceeds max run %d", info.LongestRun, MaxRun(opts.NBits))
				}
			})
		}
	}
}

func TestCompress_HeaderArithmetic(t *testing.T) {
	data := bytes.Repeat([]byte("header arithmetic 0123456789"), 64)

	for _, opts := range allCompressOptions() {
		t.Run(fmt.Sprintf("v%d-nbits-%d", opts.Variant, opts.NBits), func(t *testing.T) {
			cmp, err := Compress(data, opts)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}

			info, err := Inspect(cmp)
			if err != nil {
				t.Fatalf("Inspect failed: %v", err)
			}

			perWord := opts.Variant.flagsPerWord()
			ops := info.Literals + info.Matches
			flagLen := (ops + perWord - 1) / perWord * flagWordSize
			if opts.Variant == Variant0 {
				flagLen += flagWordSize
			}

			if info.UncompressedSize != len(data) {
				t.Fatalf("UncompressedSize = %d, want %d", info.UncompressedSize, len(data))
			}
			if info.Variant != opts.Variant || info.NBits != opts.NBits {
				t.Fatalf("header variant/nbits = %d/%d, want %d/%d", info.Variant, info.NBits, opts.Variant, opts.NBits)
			}
			if info.LiteralOffset != headerSize+flagLen {
				t.Fatalf("LiteralOffset = %d, want %d", info.LiteralOffset, headerSize+flagLen)
			}

			wantMatch := info.LiteralOffset + alignUp(info.Literals)
			if info.MatchOffset != wantMatch {
				t.Fatalf("MatchOffset = %d, want %d", info.MatchOffset, wantMatch)
			}

			wantLen := info.MatchOffset + alignUp(tokenSize*info.Matches)
			if len(cmp) != wantLen {
				t.Fatalf("stream length = %d, want %d", len(cmp), wantLen)
			}
			if cmp[15] != 0 {
				t.Fatalf("match offset high byte = %#x, want 0", cmp[15])
			}
		})
	}
}

func TestCompress_DefaultOptions(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmpDefault, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress default failed: %v", err)
	}

	cmpExplicit, err := Compress(data, &CompressOptions{Variant: Variant2, NBits: 11})
	if err != nil {
		t.Fatalf("Compress explicit failed: %v", err)
	}

	if !bytes.Equal(cmpDefault, cmpExplicit) {
		t.Fatal("default compression should match variant 2, nbits 11")
	}
}

func TestCompress_Deterministic(t *testing.T) {
	data := bytes.Repeat([]byte("same input, same output "), 300)

	first, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	// A different input in between must not leak through the pooled match finder.
	if _, err := Compress(bytes.Repeat([]byte{1, 2, 3}, 5000), &CompressOptions{Variant: Variant0, NBits: 13}); err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	second, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("compressing the same input twice gave different streams")
	}
}

func TestCompress_StoreOnly(t *testing.T) {
	data := bytes.Repeat([]byte("store only"), 100)

	cmp, err := Compress(data, &CompressOptions{Variant: Variant0, NBits: 10, StoreOnly: true})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	info, err := Inspect(cmp)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Matches != 0 || info.Literals != len(data) {
		t.Fatalf("store-only ops: literals=%d matches=%d, want %d/0", info.Literals, info.Matches, len(data))
	}
	if info.MatchOffset != len(cmp) {
		t.Fatalf("store-only stream has a token pool: MatchOffset=%d len=%d", info.MatchOffset, len(cmp))
	}

	out, err := Decompress(cmp)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("store-only round-trip mismatch")
	}
}

func TestCompress_ConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		opts *CompressOptions
		want error
	}{
		{name: "nbits-low", data: []byte("x"), opts: &CompressOptions{Variant: Variant2, NBits: 9}, want: ErrInvalidNBits},
		{name: "nbits-high", data: []byte("x"), opts: &CompressOptions{Variant: Variant2, NBits: 14}, want: ErrInvalidNBits},
		{name: "variant", data: []byte("x"), opts: &CompressOptions{Variant: 1, NBits: 10}, want: ErrUnsupportedVariant},
		{name: "nil-input", data: nil, opts: nil, want: ErrEmptyInput},
		{name: "empty-input", data: []byte{}, opts: DefaultCompressOptions(), want: ErrEmptyInput},
		{name: "too-large", data: make([]byte, maxField24+1), opts: nil, want: ErrSizeLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compress(tt.data, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if tt.want != ErrUnsupportedVariant && !errors.Is(err, ErrConfig) {
				t.Fatalf("expected an ErrConfig family error, got %v", err)
			}
		})
	}
}

func TestLevelCompressOptions(t *testing.T) {
	for level, nbits := range map[int]int{1: 10, 2: 11, 4: 12, 8: 13} {
		opts, err := LevelCompressOptions(Variant0, level)
		if err != nil {
			t.Fatalf("LevelCompressOptions(%d) failed: %v", level, err)
		}
		if opts.NBits != nbits || opts.Variant != Variant0 {
			t.Fatalf("level %d: got nbits=%d variant=%d", level, opts.NBits, opts.Variant)
		}
		if got := (Header{NBits: nbits}).Level(); got != level {
			t.Fatalf("Header.Level for nbits %d = %d, want %d", nbits, got, level)
		}
	}

	if _, err := LevelCompressOptions(Variant2, 3); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if got := (Header{NBits: 9}).Level(); got != 0 {
		t.Fatalf("Header.Level for nbits 9 = %d, want 0", got)
	}
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte("x"), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(7))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(5))

	f.Fuzz(func(t *testing.T, data []byte, sel uint8) {
		if len(data) == 0 {
			return
		}
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		opts := allCompressOptions()[int(sel)%8]
		cmp, err := Compress(data, opts)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := Decompress(cmp)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}

		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}

func alignUp(n int) int {
	return (n + sectionAlign - 1) / sectionAlign * sectionAlign
}
