// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package highway

import (
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/matmul"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/simplego/gemm"
	"github.com/gomlx/mathcore/pkg/core/ops"
)

// BenchmarkLinearLayerPattern compares highway matmul with other paths for a linear layer: [11, 1024] x [1024, 1024].
func BenchmarkLinearLayerPattern(b *testing.B) {
	const m, n, k = 11, 1024, 1024
	lhs := make([]float32, m*k)
	rhs := make([]float32, k*n)
	for i := range lhs {
		lhs[i] = float32(i%100) * 0.01
	}
	for i := range rhs {
		rhs[i] = float32(i%100) * 0.001
	}
	flops := float64(2 * m * n * k)

	b.Run("via_ops", func(b *testing.B) {
		ctx := backends.NewContext()
		lhsBuf, rhsBuf := backends.BufferFrom(lhs), backends.BufferFrom(rhs)
		out := backends.NewBuffer[float32](m * n)
		ops.Must(ops.MatMat[Backend[float32]](false, false, m, n, k, 1, lhsBuf, rhsBuf, 0, out, ctx))
		b.ResetTimer()
		for range b.N {
			ops.Must(ops.MatMat[Backend[float32]](false, false, m, n, k, 1, lhsBuf, rhsBuf, 0, out, ctx))
		}
		b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOPS")
	})

	b.Run("direct_highway_matmul", func(b *testing.B) {
		out := make([]float32, m*n)
		matmul.MatMulAuto(lhs, rhs, out, m, n, k)
		b.ResetTimer()
		for range b.N {
			matmul.MatMulAuto(lhs, rhs, out, m, n, k)
		}
		b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOPS")
	})

	b.Run("gemm_basic", func(b *testing.B) {
		out := make([]float32, m*n)
		for range b.N {
			gemm.Basic(gemm.NoTrans, gemm.NoTrans, lhs, rhs, m, n, k, out, 0, m)
		}
		b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOPS")
	})
}
