package workerspool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_ParallelFor(t *testing.T) {
	for _, parallelism := range []int{-1, 0, 1, 4} {
		pool := NewWithParallelism(parallelism)
		const size = 1000
		var visited [size]atomic.Int32
		pool.ParallelFor(size, 7, func(start, end int) {
			for ii := start; ii < end; ii++ {
				visited[ii].Add(1)
			}
		})
		for ii := range visited {
			require.Equalf(t, int32(1), visited[ii].Load(), "parallelism=%d, index %d", parallelism, ii)
		}
	}
}

func TestPool_ParallelForEmpty(t *testing.T) {
	pool := New()
	called := false
	pool.ParallelFor(0, 1, func(start, end int) { called = true })
	assert.False(t, called)
}

func TestPool_NilIsSequential(t *testing.T) {
	var pool *Pool
	assert.False(t, pool.IsEnabled())
	assert.False(t, pool.StartIfAvailable(func() {}))
	var calls int
	pool.ParallelFor(10, 1, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 10, end)
	})
	assert.Equal(t, 1, calls)
}

func TestPool_Disabled(t *testing.T) {
	pool := NewWithParallelism(0)
	assert.False(t, pool.IsEnabled())
	assert.False(t, pool.StartIfAvailable(func() {}))
}
