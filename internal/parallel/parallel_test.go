package parallel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRows_CoversEveryRowOnce(t *testing.T) {
	for _, cfg := range []Config{
		{Workers: 1},
		{Workers: 4, MinWork: 0},
		{Workers: 16, MinWork: 0},
		DefaultConfig(),
	} {
		const rows = 37
		seen := make([]int, rows)
		var mu sync.Mutex

		Rows(rows, 1, func(lo, hi int) {
			mu.Lock()
			defer mu.Unlock()
			for i := lo; i < hi; i++ {
				seen[i]++
			}
		}, cfg)

		for i, n := range seen {
			assert.Equal(t, 1, n, "row %d with %+v", i, cfg)
		}
	}
}

func TestRows_SmallWorkIsSequential(t *testing.T) {
	calls := 0
	Rows(100, 10, func(lo, hi int) {
		calls++
		assert.Equal(t, 0, lo)
		assert.Equal(t, 100, hi)
	}, Config{Workers: 8, MinWork: 1 << 20})
	assert.Equal(t, 1, calls)
}

func TestRows_Empty(t *testing.T) {
	calls := 0
	Rows(0, 10, func(lo, hi int) { calls++ }, DefaultConfig())
	assert.LessOrEqual(t, calls, 1)
}

func BenchmarkRows(b *testing.B) {
	work := func(lo, hi int) {
		s := 0
		for i := lo; i < hi; i++ {
			for k := 0; k < 1000; k++ {
				s += i ^ k
			}
		}
		_ = s
	}

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Rows(1024, 1000, work, DefaultConfig())
		}
	})
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Rows(1024, 1000, work, Config{Workers: 1})
		}
	})
}
