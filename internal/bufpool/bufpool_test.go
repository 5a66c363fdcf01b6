package bufpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		size        int
		checkMinCap int
	}{
		{name: "small buffer within pool capacity", size: 1024, checkMinCap: 1024},
		{name: "exact pool default size", size: 4096, checkMinCap: 4096},
		{name: "larger than pool capacity", size: 8192, checkMinCap: 8192},
		{name: "zero size", size: 0, checkMinCap: 0},
		{name: "very small size", size: 1, checkMinCap: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Get(tt.size)
			require.Equal(t, tt.size, len(buf), "buffer length should match requested size")
			require.GreaterOrEqual(t, cap(buf), tt.checkMinCap, "buffer capacity should be at least requested size")
			Put(buf)
		})
	}
}

func TestPutThenGetReuse(t *testing.T) {
	buf1 := Get(2048)
	require.Equal(t, 2048, len(buf1))
	buf1[0] = 0xAB
	buf1[2047] = 0xCD
	Put(buf1)

	buf2 := Get(2048)
	require.Equal(t, 2048, len(buf2))
	require.GreaterOrEqual(t, cap(buf2), 2048)
	Put(buf2)
}

func TestConcurrentUse(t *testing.T) {
	const goroutines = 10
	const iterations = 100

	done := make(chan bool, goroutines)

	for g := 0; g < goroutines; g++ {
		go func() {
			for i := 0; i < iterations; i++ {
				size := 1024 + (i % 4096)
				buf := Get(size)
				require.Equal(t, size, len(buf))
				for j := range buf {
					buf[j] = byte(j)
				}
				Put(buf)
			}
			done <- true
		}()
	}

	for g := 0; g < goroutines; g++ {
		<-done
	}
}

func BenchmarkGet(b *testing.B) {
	sizes := []int{512, 1024, 4096, 8192}

	for _, size := range sizes {
		b.Run(string(rune(size)), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				buf := Get(size)
				Put(buf)
			}
		})
	}
}
