// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/ulz

package ulz

// Hash chain parameters used by the match finder.
const (
	hashBits = 14            // number of bits in the 3-byte prefix hash
	hashSize = 1 << hashBits // number of chain heads
	hashMul  = 0x9E3779B1    // multiplicative hash constant
	hashTail = minMatchLen   // bytes needed to hash a position
	noPos    = int32(-1)     // empty chain link
)

// matchFinder performs greedy longest-match search over the whole input.
// Every position before the cursor is linked into a chain keyed by its 3-byte prefix;
// chains are walked from the nearest position outwards and cut at the window edge.
type matchFinder struct {
	src      []byte          // whole input
	params   windowParams    // window and run bounds
	head     [hashSize]int32 // newest position per hash
	prev     []int32         // link to the previous position with the same hash, indexed by pos&(window-1)
	inserted int             // positions below this are linked
}

// reset prepares m for a new input. Stale prev entries are never read: a slot is only
// followed after its position has been linked again for src.
func (m *matchFinder) reset(src []byte, params windowParams) {
	m.src = src
	m.params = params
	m.inserted = 0

	for i := range m.head {
		m.head[i] = noPos
	}

	if cap(m.prev) < params.window {
		m.prev = make([]int32, params.window)
	}
	m.prev = m.prev[:params.window]
}

// hash3 hashes the first three bytes of b.
func hash3(b []byte) int {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	return int((v * hashMul) >> (32 - hashBits))
}

// insertUpTo links every hashable position below end.
func (m *matchFinder) insertUpTo(end int) {
	end = min(end, len(m.src)-hashTail+1)
	mask := m.params.window - 1

	for p := m.inserted; p < end; p++ {
		h := hash3(m.src[p:])
		m.prev[p&mask] = m.head[h]
		m.head[h] = int32(p) //nolint:gosec // G115: input size is bounded by the 24-bit header field
	}

	m.inserted = max(m.inserted, end)
}

// find returns the longest match for the bytes at p, or run 0 if none reaches 3 bytes.
// The match may extend past p: the decoder copies byte by byte, so src[p-jump+k]
// is already produced when it is needed. Among equal lengths the smallest jump wins.
func (m *matchFinder) find(p int) (jump, run int) {
	m.insertUpTo(p)

	limit := min(m.params.maxRun, len(m.src)-p)
	if limit < minMatchLen {
		return 0, 0
	}

	cur := m.src[p : p+limit]
	lowest := p - m.params.window
	mask := m.params.window - 1

	cand := int(m.head[hash3(cur)])
	for cand >= 0 && cand >= lowest {
		if n := commonPrefix(m.src[cand:], cur); n > run {
			run = n
			jump = p - cand
			if run == limit {
				break
			}
		}

		cand = int(m.prev[cand&mask])
	}

	if run < minMatchLen {
		return 0, 0
	}

	return jump, run
}

// commonPrefix returns the length of the common prefix of a and b, at most len(b).
func commonPrefix(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}
