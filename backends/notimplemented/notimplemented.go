// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package notimplemented implements a backends.Ops whose every operation returns an error wrapping
// backends.ErrNotImplemented, naming the operation and the dtype.
//
// Backends embed Ops[T] and override the operations they implement, so a backend can be introduced
// incrementally: calling an operation it doesn't cover fails loudly instead of computing a wrong answer.
//
//	type Backend[T dtypes.GoFloat] struct {
//		notimplemented.Ops[T]
//	}
//
//	func (Backend[T]) Name() string { return "mybackend" }
//
//	func (Backend[T]) Abs(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error { ... }
package notimplemented

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
)

//go:generate go run ../../internal/cmd/notimplemented_generator

// BackendName is returned by Ops.Name, unless overridden.
const BackendName = "notimplemented"

// Ops is a zero-sized backends.Ops implementation that doesn't implement any operation.
type Ops[T dtypes.GoFloat] struct{}

// Compile-time check that Ops implements backends.Ops.
var (
	_ backends.Ops[float32] = Ops[float32]{}
	_ backends.Ops[float64] = Ops[float64]{}
)

// Name returns the short name of the backend.
// Backends embedding Ops should override it.
func (Ops[T]) Name() string {
	return BackendName
}

// Capabilities returns empty capabilities.
func (Ops[T]) Capabilities() backends.Capabilities {
	return backends.Capabilities{
		Operations: make(map[backends.OpType]bool),
		DTypes:     make(map[dtypes.DType]bool),
	}
}
