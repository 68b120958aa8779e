// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package highway

import (
	"math"
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/vec"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/backendtest"
	"github.com/gomlx/mathcore/backends/simplego"
	"github.com/gomlx/mathcore/backends/simplego/gemm"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighwayRegistration(t *testing.T) {
	// Importing this package registers the highway implementation.
	require.NotNil(t, simplego.Highway)
	_, ok := simplego.Highway.(impl)
	assert.True(t, ok)
}

func TestHighwayMatMul(t *testing.T) {
	// A = [[1, 2], [3, 4]]
	// B = [[5, 6], [7, 8]]
	// C = A * B = [[19, 22], [43, 50]]
	lhs := []float32{1, 2, 3, 4}
	rhs := []float32{5, 6, 7, 8}
	output := []float32{-1, -1, -1, -1}
	simplego.Highway.MatMulFloat32(lhs, rhs, output, 2, 2, 2)
	assert.InDeltaSlice(t, []float32{19, 22, 43, 50}, output, 1e-5, "MatMul result mismatch")

	// B stored transposed: A * B^T = [[17, 23], [39, 53]]
	output64 := make([]float64, 4)
	simplego.Highway.MatMulKLastFloat64([]float64{1, 2, 3, 4}, []float64{5, 6, 7, 8}, output64, 2, 2, 2)
	assert.InDeltaSlice(t, []float64{17, 23, 39, 53}, output64, 1e-9)
}

func TestHighwayMatMulLarge(t *testing.T) {
	// Large enough to use the parallel blocked algorithms.
	const m, n, k = 67, 129, 96
	a := backendtest.Sequence[float64](m*k, -1, 0.001)
	b := backendtest.Sequence[float64](k*n, 0.5, -0.0003)
	want := make([]float64, m*n)
	gemm.Basic(gemm.NoTrans, gemm.NoTrans, a.Flat(), b.Flat(), m, n, k, want, 0, m)
	got := make([]float64, m*n)
	simplego.Highway.MatMulFloat64(a.Flat(), b.Flat(), got, m, n, k)
	backendtest.AssertClose(t, want, got)
}

func TestConformance(t *testing.T) {
	backendtest.RunAll[Backend[float32]](t)
	backendtest.RunAll[Backend[float64]](t)

	// simplego.Backend with the highway matrix multiplication registered.
	backendtest.RunOp[simplego.Backend[float32]](t, backends.OpTypeMatMat)
	backendtest.RunOp[simplego.Backend[float64]](t, backends.OpTypeConv2D)
}

func TestName(t *testing.T) {
	assert.Equal(t, BackendName, ops.BackendName[Backend[float32], float32]())
	assert.Equal(t, simplego.Capabilities, Backend[float64]{}.Capabilities())
}

func TestClampInherited(t *testing.T) {
	ctx := backends.NewContext()
	ret := backends.NewBuffer[float32](2)
	err := ops.Clamp[Backend[float32]](2, 1, -1, backendtest.Buffer[float32](0, 3), ret, ctx)
	require.Error(t, err)
	assert.True(t, backends.IsPrecondition(err))
}

func TestAmaxNaN(t *testing.T) {
	ctx := backends.NewContext()
	// NaN at index 0 and the maximum at index 64: the same SIMD lane for any vector width.
	input := backendtest.Sequence[float32](100, 0, 0.01)
	input.Flat()[0] = float32(math.NaN())
	input.Flat()[64] = 10
	input.Flat()[32] = -10
	var index int
	require.NoError(t, ops.Amax[Backend[float32]](100, input, &index, ctx))
	assert.Equal(t, 64, index)
	require.NoError(t, ops.Amin[Backend[float32]](100, input, &index, ctx))
	assert.Equal(t, 32, index)

	// All NaN: the first element, as simplego.
	require.NoError(t, ops.Amax[Backend[float64]](2, backendtest.Buffer[float64](math.NaN(), math.NaN()), &index, ctx))
	assert.Equal(t, 0, index)
}

func TestArgBestChunked(t *testing.T) {
	values := []float32{1, 5, 2, 5, 9, 0, 9, -3, 0}
	greater := func(x, best float32) bool { return x > best }
	less := func(x, best float32) bool { return x < best }
	for _, chunkSize := range []int{1, 2, 3, 4, len(values), 100} {
		assert.Equal(t, 4, argBestChunked(values, chunkSize, vec.BaseArgmax[float32], greater), "chunkSize=%d", chunkSize)
		assert.Equal(t, 7, argBestChunked(values, chunkSize, vec.BaseArgmin[float32], less), "chunkSize=%d", chunkSize)
	}
	assert.Equal(t, -1, argBestChunked([]float32{}, 4, vec.BaseArgmax[float32], greater))
}

// TestAmaxLarge checks indices past the range float32 represents exactly.
func TestAmaxLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large allocation in short mode")
	}
	const size = maxArgChunk + 16
	input := backends.NewBuffer[float32](size)
	input.Flat()[maxArgChunk+3] = 1
	input.Flat()[maxArgChunk+5] = -1
	ctx := backends.NewContext()
	var index int
	require.NoError(t, ops.Amax[Backend[float32]](size, input, &index, ctx))
	assert.Equal(t, maxArgChunk+3, index)
	require.NoError(t, ops.Amin[Backend[float32]](size, input, &index, ctx))
	assert.Equal(t, maxArgChunk+5, index)
}
