// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package ops is the catalogue of mathcore operations: one generic function per operation, parametrized by the
// backend tag B and the element type T.
//
// Each function checks the operation preconditions (buffer sizes, valid probabilities, etc.) and then calls the
// implementation of the backend B. The backend is selected at compile time, there is no runtime registry:
//
//	x := backends.BufferFrom([]float32{-1, 2, -3})
//	err := ops.Abs[simplego.Backend[float32]](x.Len(), x, x, ctx)
//
// The element type T is inferred from the arguments. Backends that don't implement an operation return an error
// wrapping backends.ErrNotImplemented, and invalid arguments return an error wrapping backends.ErrPrecondition.
// No output element is written if a precondition fails.
//
// Callers that prefer to stop on any error can use Must:
//
//	ops.Must(ops.Dot[B](n, lhs, rhs, &result, ctx))
package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/pkg/errors"
)

// Must panics if err is not nil.
//
// It can be used with exceptions.TryCatch to convert the panic back to an error.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// BackendName returns the name of the backend B for the element type T.
func BackendName[B backends.Ops[T], T dtypes.GoFloat]() string {
	var b B
	return b.Name()
}

// Supports returns whether the backend B reports op as supported for the element type T.
func Supports[B backends.Ops[T], T dtypes.GoFloat](op backends.OpType) bool {
	var b B
	return b.Capabilities().Supports(op, dtypes.FromGenericsType[T]())
}

// CheckCapabilities returns an error wrapping backends.ErrNotImplemented listing the operations in required that
// the backend B doesn't support for the element type T.
//
// It is meant to be called once at start-up by programs that need a fixed set of operations, so missing coverage
// is reported before any work is done.
func CheckCapabilities[B backends.Ops[T], T dtypes.GoFloat](required ...backends.OpType) error {
	var b B
	dtype := dtypes.FromGenericsType[T]()
	missing := b.Capabilities().Missing(dtype, required...)
	if len(missing) == 0 {
		return nil
	}
	return errors.Wrapf(backends.ErrNotImplemented, "backend %q doesn't support %v for dtype %s",
		b.Name(), missing, dtype)
}

// dispatch calls the backend B and annotates a returned error with the operation and backend names.
func dispatch[B backends.Ops[T], T dtypes.GoFloat](op backends.OpType, call func(b B) error) error {
	var b B
	err := call(b)
	if err != nil {
		return errors.WithMessagef(err, "ops.%s on backend %q", op, b.Name())
	}
	return nil
}

// preconditions accumulates the first failed check of an operation.
type preconditions struct {
	op  backends.OpType
	err error
}

func check(op backends.OpType) *preconditions {
	return &preconditions{op: op}
}

func (p *preconditions) failf(format string, args ...any) {
	if p.err == nil {
		p.err = backends.PreconditionErrorf("ops.%s: "+format, append([]any{p.op}, args...)...)
	}
}

// nonNegative checks dimensions (or counts) are >= 0.
func (p *preconditions) nonNegative(name string, value int) *preconditions {
	if value < 0 {
		p.failf("%s must be >= 0, got %d", name, value)
	}
	return p
}

// positive checks dimensions are > 0.
func (p *preconditions) positive(name string, value int) *preconditions {
	if value <= 0 {
		p.failf("%s must be > 0, got %d", name, value)
	}
	return p
}

// scalar checks a scalar output pointer is not nil.
func (p *preconditions) scalar(name string, isNil bool) *preconditions {
	if isNil {
		p.failf("%s must not be nil", name)
	}
	return p
}

// Err returns the first failed precondition.
func (p *preconditions) Err() error {
	return p.err
}

// bufferCheck checks buf holds at least size elements. A size of 0 accepts a nil buffer.
func bufferCheck[T dtypes.GoFloat](p *preconditions, name string, buf *backends.Buffer[T], size int) {
	if size <= 0 || p.err != nil {
		return
	}
	if buf == nil {
		p.failf("buffer %s is nil, %d elements required", name, size)
		return
	}
	if buf.Len() < size {
		p.failf("buffer %s has %d elements, %d required", name, buf.Len(), size)
	}
}

// mulDims multiplies dimensions, checking for overflow.
func mulDims(p *preconditions, dims ...int) int {
	size := 1
	for _, dim := range dims {
		if dim < 0 || p.err != nil {
			return 0
		}
		if dim != 0 && size > maxInt/dim {
			p.failf("dimensions %v overflow", dims)
			return 0
		}
		size *= dim
	}
	return size
}

const maxInt = int(^uint(0) >> 1)
