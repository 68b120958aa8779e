package simplego

import (
	"sync"

	"github.com/gomlx/gopjrt/dtypes"
)

// Scratch buffers hold intermediary results of operations that can't write their output in place, e.g.: MatMat
// when ret is also an input. They are reused across calls through a pool per dtype and length.

type scratchPoolKey struct {
	dtype  dtypes.DType
	length int
}

// scratchPools maps scratchPoolKey to *sync.Pool.
var scratchPools sync.Map

// getScratchPool for the given dtype/length.
func getScratchPool[T dtypes.GoFloat](length int) *sync.Pool {
	key := scratchPoolKey{dtype: dtypes.FromGenericsType[T](), length: length}
	poolInterface, ok := scratchPools.Load(key)
	if !ok {
		poolInterface, _ = scratchPools.LoadOrStore(key, &sync.Pool{
			New: func() any {
				flat := make([]T, length)
				return &flat
			},
		})
	}
	return poolInterface.(*sync.Pool)
}

// getScratch returns a scratch slice with length elements. Its contents are undefined.
// It should be returned with putScratch once no longer used.
func getScratch[T dtypes.GoFloat](length int) *[]T {
	return getScratchPool[T](length).Get().(*[]T)
}

// putScratch returns the scratch slice to the pool.
// After this any references to it should be dropped.
func putScratch[T dtypes.GoFloat](scratch *[]T) {
	if scratch == nil {
		return
	}
	getScratchPool[T](len(*scratch)).Put(scratch)
}
