// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package simplego

import (
	"math"
	"testing"

	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/backendtest"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

func TestConformance(t *testing.T) {
	backendtest.RunAll[Backend[float32]](t)
	backendtest.RunAll[Backend[float64]](t)
}

func TestName(t *testing.T) {
	assert.Equal(t, BackendName, ops.BackendName[Backend[float32], float32]())
	assert.NotEmpty(t, Backend[float64]{}.Description())
}

func TestClamp(t *testing.T) {
	type B = Backend[float64]
	ctx := backends.NewContext()
	input := backendtest.Buffer[float64](-5, 0.5, 5)
	ret := backends.NewBuffer[float64](3)
	err := ops.Clamp[B](3, 1, 0, input, ret, ctx)
	require.Error(t, err)
	assert.True(t, backends.IsPrecondition(err), "unexpected error: %+v", err)
	assert.Equal(t, []float64{0, 0, 0}, ret.Flat())

	// low == high is a valid, if degenerate, interval.
	require.NoError(t, ops.Clamp[B](3, 1, 1, input, ret, ctx))
	assert.Equal(t, []float64{1, 1, 1}, ret.Flat())
}

func TestAmaxNaN(t *testing.T) {
	type B = Backend[float32]
	ctx := backends.NewContext()
	var index int
	require.NoError(t, ops.Amax[B](4, backendtest.Buffer[float32](math.NaN(), 3, math.NaN(), 5), &index, ctx))
	assert.Equal(t, 3, index)
	require.NoError(t, ops.Amin[B](4, backendtest.Buffer[float32](math.NaN(), 3, math.NaN(), 5), &index, ctx))
	assert.Equal(t, 1, index)

	// All NaN: the first element.
	require.NoError(t, ops.Amax[B](2, backendtest.Buffer[float32](math.NaN(), math.NaN()), &index, ctx))
	assert.Equal(t, 0, index)
}

func TestConvAlgorithms(t *testing.T) {
	type B = Backend[float32]
	ctx := backends.NewContext(backends.WithParallelism(3))
	const c, h, w = 3, 7, 9
	const numKernels, kh, kw = 4, 3, 3
	input := backendtest.Sequence[float32](c*h*w, -2, 0.02)
	kernel := backendtest.Sequence[float32](numKernels*c*kh*kw, 0.3, -0.01)
	for _, geometry := range []configs.Conv2D{{Stride: 1}, {Stride: 2, Padding: 1}, {Stride: 1, Padding: 2}} {
		want, _, _ := backendtest.RefConv2D(c, h, w, numKernels, kh, kw, input.Flat(), kernel.Flat(), geometry)
		for _, algorithm := range []ConvAlgorithm{"", ConvDirect, ConvIm2Col} {
			ret := backends.NewBuffer[float32](len(want))
			conf := &ConvConfig{Conv2D: geometry, Algorithm: algorithm}
			require.NoError(t, ops.Conv2D[B](c, h, w, numKernels, kh, kw, input, kernel, ret, conf, ctx))
			backendtest.AssertClose(t, want, ret.Flat(), "geometry=%+v, algorithm=%q", geometry, algorithm)
		}
	}

	ret := backends.NewBuffer[float32](numKernels * h * w)
	err := ops.Conv2D[B](c, h, w, numKernels, kh, kw, input, kernel, ret,
		&ConvConfig{Conv2D: configs.Conv2D{Stride: 1}, Algorithm: "fft"}, ctx)
	require.Error(t, err)
	assert.True(t, backends.IsPrecondition(err))

	// A nil *ConvConfig is rejected, not taken as the default geometry.
	require.NotPanics(t, func() {
		err = ops.Conv2D[B](c, h, w, numKernels, kh, kw, input, kernel, ret, (*ConvConfig)(nil), ctx)
	})
	require.ErrorIs(t, err, backends.ErrPrecondition)
}

func TestConvConfigJSON(t *testing.T) {
	conf := &ConvConfig{Conv2D: configs.Conv2D{Stride: 2, Padding: 1}, Algorithm: ConvIm2Col}
	data, err := configs.Marshal(conf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"config_type": "simplego.ConvConfig", "config": {"stride": 2, "padding": 1, "algorithm": "im2col"}}`,
		string(data))

	decoded, err := configs.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, conf, decoded)
	geometry, err := configs.GeometryOf(decoded)
	require.NoError(t, err)
	assert.Equal(t, configs.Conv2D{Stride: 2, Padding: 1}, geometry)
	assert.Contains(t, configs.RegisteredTypes(), ConvConfigType)
}

// TestParallelism checks that results don't depend on the number of goroutines used.
func TestParallelism(t *testing.T) {
	type B = Backend[float64]
	const size = 5*minParallelChunk + 17
	input := backendtest.Sequence[float64](size, -100, 0.001)
	other := backendtest.Sequence[float64](size, 3, -0.0005)

	run := func(parallelism int) (exp, add []float64, sum, dot float64, matMat []float64) {
		ctx := backends.NewContext(backends.WithParallelism(parallelism))
		retExp, retAdd := backends.NewBuffer[float64](size), backends.NewBuffer[float64](size)
		ops.Must(ops.Exp[B](size, input, retExp, ctx))
		ops.Must(ops.Add[B](size, input, other, retAdd, ctx))
		ops.Must(ops.Sum[B](size, input, &sum, ctx))
		ops.Must(ops.Dot[B](size, input, other, &dot, ctx))
		const m, n, k = 64, 48, 32
		retMatMat := backends.NewBuffer[float64](m * n)
		a, b := backends.BufferFrom(input.Flat()[:m*k]), backends.BufferFrom(other.Flat()[:k*n])
		ops.Must(ops.MatMat[B](true, false, m, n, k, 1, a, b, 0, retMatMat, ctx))
		return retExp.Flat(), retAdd.Flat(), sum, dot, retMatMat.Flat()
	}
	exp1, add1, sum1, dot1, matMat1 := run(0)
	exp4, add4, sum4, dot4, matMat4 := run(4)
	assert.Equal(t, exp1, exp4)
	assert.Equal(t, add1, add4)
	assert.InDelta(t, sum1, sum4, 1e-6*max(1, math.Abs(sum1)))
	assert.InDelta(t, dot1, dot4, 1e-6*max(1, math.Abs(dot1)))
	assert.Equal(t, matMat1, matMat4)
}
