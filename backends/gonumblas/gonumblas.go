// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package gonumblas implements a backend that runs the BLAS operations (Asum, Axpy, Scale, Dot, MatVec, MatMat and
// Outer) and the convolution with gonum's pure Go BLAS implementation (gonum.org/v1/gonum/blas).
//
// The other operations are those of simplego.Backend.
//
// Usage:
//
//	type B = gonumblas.Backend[float64]
//	err := ops.MatMat[B](false, true, m, n, k, 1, a, b, 0, c, ctx)
package gonumblas

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/simplego"
)

// BackendName is the short name of the backend.
const BackendName = "gonum"

// Backend is the tag type of the gonumblas backend, for the element type T.
type Backend[T dtypes.GoFloat] struct {
	simplego.Backend[T]
}

var (
	_ backends.Ops[float32] = Backend[float32]{}
	_ backends.Ops[float64] = Backend[float64]{}
)

// Name returns the short name of the backend.
func (Backend[T]) Name() string {
	return BackendName
}

// Description is a longer description of the Backend that can be used to pretty-print.
func (Backend[T]) Description() string {
	return "Gonum BLAS Backend"
}
