package ulz

import "sync"

// matchFinderPool is a pool of match finders; each holds a 64 KiB chain head table.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder acquires a match finder from the pool, reset for src.
func acquireMatchFinder(src []byte, params windowParams) *matchFinder {
	m := matchFinderPool.Get().(*matchFinder)
	m.reset(src, params)
	return m
}

// releaseMatchFinder releases a match finder to the pool.
func releaseMatchFinder(m *matchFinder) {
	if m == nil {
		return
	}

	m.src = nil
	matchFinderPool.Put(m)
}
