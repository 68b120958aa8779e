// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package highway provides SIMD-accelerated operations using go-highway.
// This package requires Go 1.26+ due to its dependency on go-highway.
//
// Importing it registers its matrix multiplication with simplego, used by simplego.Backend MatMat and the im2col
// convolution:
//
//	import _ "github.com/gomlx/mathcore/backends/simplego/highway"
//
// It also provides the Backend tag, which additionally uses SIMD for the elementwise and BLAS level 1 operations.
package highway

import (
	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	"github.com/gomlx/mathcore/backends/simplego"
)

// hwyPool is the shared go-highway worker pool for intra-matrix parallelism.
var hwyPool *workerpool.Pool

func init() {
	// 0 means GOMAXPROCS workers.
	hwyPool = workerpool.New(0)
	simplego.RegisterHighway(impl{})
}

// impl implements simplego.HighwayMatMul.
type impl struct{}

func (impl) MatMulFloat32(a, b, c []float32, m, n, k int) {
	clear(c[:m*n])
	matmul.MatMulAutoWithPool(hwyPool, a[:m*k], b[:k*n], c[:m*n], m, n, k)
}

func (impl) MatMulFloat64(a, b, c []float64, m, n, k int) {
	clear(c[:m*n])
	matmul.MatMulAutoWithPool(hwyPool, a[:m*k], b[:k*n], c[:m*n], m, n, k)
}

func (impl) MatMulKLastFloat32(a, b, c []float32, m, n, k int) {
	clear(c[:m*n])
	matmul.MatMulKLastAuto(a[:m*k], b[:n*k], c[:m*n], m, n, k)
}

func (impl) MatMulKLastFloat64(a, b, c []float64, m, n, k int) {
	clear(c[:m*n])
	matmul.MatMulKLastAuto(a[:m*k], b[:n*k], c[:m*n], m, n, k)
}
