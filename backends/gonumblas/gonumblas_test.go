// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package gonumblas

import (
	"testing"

	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/backendtest"
	"github.com/gomlx/mathcore/backends/simplego"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	backendtest.RunAll[Backend[float32]](t)
	backendtest.RunAll[Backend[float64]](t)
}

func TestName(t *testing.T) {
	assert.Equal(t, BackendName, ops.BackendName[Backend[float64], float64]())
	// Operations not done with BLAS come from simplego.
	assert.Equal(t, simplego.Capabilities, Backend[float32]{}.Capabilities())
}

// TestMatchesSimpleGo compares the BLAS operations with the simplego ones on larger inputs.
func TestMatchesSimpleGo(t *testing.T) {
	type B = Backend[float64]
	type S = simplego.Backend[float64]
	ctx := backends.NewContext()
	const m, n, k = 23, 31, 17
	a := backendtest.Sequence[float64](m*k, -1, 0.01)
	b := backendtest.Sequence[float64](k*n, 2, -0.007)
	for _, transA := range []bool{false, true} {
		for _, transB := range []bool{false, true} {
			want := backendtest.Sequence[float64](m*n, 0, 1)
			got := backendtest.Sequence[float64](m*n, 0, 1)
			require.NoError(t, ops.MatMat[S](transA, transB, m, n, k, 0.5, a, b, 2, want, ctx))
			require.NoError(t, ops.MatMat[B](transA, transB, m, n, k, 0.5, a, b, 2, got, ctx))
			backendtest.AssertClose(t, want.Flat(), got.Flat(), "transA=%v, transB=%v", transA, transB)
		}
	}

	var wantDot, gotDot float64
	require.NoError(t, ops.Dot[S](m*k, a, a, &wantDot, ctx))
	require.NoError(t, ops.Dot[B](m*k, a, a, &gotDot, ctx))
	assert.InDelta(t, wantDot, gotDot, 1e-9*wantDot)
}

func TestConvConfig(t *testing.T) {
	type B = Backend[float32]
	ctx := backends.NewContext()
	const c, h, w = 2, 6, 6
	const numKernels, kh, kw = 3, 3, 3
	input := backendtest.Sequence[float32](c*h*w, -1, 0.03)
	kernel := backendtest.Sequence[float32](numKernels*c*kh*kw, 0.2, -0.01)
	geometry := configs.Conv2D{Stride: 1, Padding: 1}
	want, _, _ := backendtest.RefConv2D(c, h, w, numKernels, kh, kw, input.Flat(), kernel.Flat(), geometry)

	// im2col workspace is c*kh*kw*outH*outW = 18*36 elements: the first runs im2col, the second falls back to
	// simplego.
	for _, maxWorkspace := range []int{0, 100} {
		ret := backends.NewBuffer[float32](len(want))
		conf := &ConvConfig{Conv2D: geometry, MaxWorkspace: maxWorkspace}
		require.NoError(t, ops.Conv2D[B](c, h, w, numKernels, kh, kw, input, kernel, ret, conf, ctx))
		backendtest.AssertClose(t, want, ret.Flat(), "maxWorkspace=%d", maxWorkspace)
	}

	data, err := configs.Marshal(&ConvConfig{Conv2D: geometry, MaxWorkspace: 1024})
	require.NoError(t, err)
	decoded, err := configs.Unmarshal(data)
	require.NoError(t, err)
	gonumConf, err := configs.As[*ConvConfig](decoded)
	require.NoError(t, err)
	assert.Equal(t, 1024, gonumConf.MaxWorkspace)
	assert.Equal(t, geometry, gonumConf.Conv2D)
}
