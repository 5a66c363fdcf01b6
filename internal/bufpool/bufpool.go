// Package bufpool provides pooled scratch byte slices for MemoryBuffer
// growth, so that copying the old region into a larger one doesn't cost
// an extra allocation on every Buffer.grow call.
package bufpool

import "sync"

var pool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 4096)
	},
}

// Get returns a scratch slice of length size from the pool, growing its
// capacity if the pooled slice is too small.
func Get(size int) []byte {
	buf := pool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size, size*2)
	}
	return buf[:size]
}

// Put returns a scratch slice to the pool for reuse.
func Put(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is acceptable for sync.Pool
	pool.Put(buf[:0])
}
