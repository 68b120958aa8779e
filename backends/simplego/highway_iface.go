// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package simplego

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends/simplego/gemm"
)

// HighwayMatMul defines the interface for highway-accelerated matrix multiplication.
// By default, none is registered and the pure Go gemm.Basic is used.
// To enable highway support, import the highway submodule which requires Go 1.26+:
//
//	import _ "github.com/gomlx/mathcore/backends/simplego/highway"
type HighwayMatMul interface {
	// MatMulFloat32 sets the m x n matrix c to a*b, where a is m x k and b is k x n, all row-major.
	MatMulFloat32(a, b, c []float32, m, n, k int)

	// MatMulFloat64 is the float64 version of MatMulFloat32.
	MatMulFloat64(a, b, c []float64, m, n, k int)

	// MatMulKLastFloat32 sets the m x n matrix c to a*transpose(b), where a is m x k and b is n x k.
	MatMulKLastFloat32(a, b, c []float32, m, n, k int)

	// MatMulKLastFloat64 is the float64 version of MatMulKLastFloat32.
	MatMulKLastFloat64(a, b, c []float64, m, n, k int)
}

// Highway is the registered highway implementation, or nil if none was registered.
var Highway HighwayMatMul

// RegisterHighway registers a highway implementation.
// This is called by the highway submodule's init() function.
func RegisterHighway(impl HighwayMatMul) {
	Highway = impl
}

// highwayMatMul sets c = a*op(b) using the registered highway implementation, if there is one.
// op(b) is b for bLayout == gemm.NoTrans, and transpose(b) otherwise.
// It returns false if no implementation was registered.
func highwayMatMul[T dtypes.GoFloat](bLayout gemm.Layout, a, b, c []T, m, n, k int) bool {
	if Highway == nil {
		return false
	}
	switch cTyped := any(c).(type) {
	case []float32:
		a32, b32 := any(a).([]float32), any(b).([]float32)
		if bLayout == gemm.Transposed {
			Highway.MatMulKLastFloat32(a32, b32, cTyped, m, n, k)
		} else {
			Highway.MatMulFloat32(a32, b32, cTyped, m, n, k)
		}
	case []float64:
		a64, b64 := any(a).([]float64), any(b).([]float64)
		if bLayout == gemm.Transposed {
			Highway.MatMulKLastFloat64(a64, b64, cTyped, m, n, k)
		} else {
			Highway.MatMulFloat64(a64, b64, cTyped, m, n, k)
		}
	default:
		return false
	}
	return true
}
