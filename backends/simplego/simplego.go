// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package simplego implements a simple, and not very fast, but very portable backend: every operation is written
// in plain Go, for float32 and float64.
//
// It is the reference other backends are tested against. Large operations are split among the goroutines allowed
// by the context workers pool (see backends.WithParallelism).
//
// Usage:
//
//	type B = simplego.Backend[float32]
//	err := ops.MatMat[B](false, false, m, n, k, 1, a, b, 0, c, ctx)
//
// If the highway submodule (Go 1.26+) is imported, MatMat and the im2col convolution use its SIMD matrix
// multiplication:
//
//	import _ "github.com/gomlx/mathcore/backends/simplego/highway"
package simplego

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/notimplemented"
)

// BackendName is the short name of the backend.
const BackendName = "go"

// Backend is the tag type of the simplego backend, for the element type T.
type Backend[T dtypes.GoFloat] struct {
	notimplemented.Ops[T]
}

// Compile-time check that simplego.Backend implements backends.Ops.
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
	return "Simple Go Portable Backend"
}

// Capabilities returns information about what is supported by this backend.
func (Backend[T]) Capabilities() backends.Capabilities {
	return Capabilities
}

// minParallelChunk is the minimum number of elements handled by one goroutine in elementwise operations.
const minParallelChunk = 16 * 1024
