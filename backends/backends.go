// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package backends defines the contract a compute backend implements to provide the mathcore operations:
// the Ops interface, the Buffer and Context it operates on, the OpType enum and Capabilities.
//
// A backend is identified by a zero-sized "tag" type B that implements Ops[T] for the element types T it supports.
// Operations are dispatched statically by package github.com/gomlx/mathcore/pkg/core/ops: there is no runtime
// registry of backends.
//
// A backend that doesn't implement every operation embeds notimplemented.Ops[T], and every operation it
// doesn't override returns an error wrapping ErrNotImplemented. It never computes a different (or no) answer
// silently.
//
// Backend methods may assume the preconditions checked by package ops (buffer sizes, valid probabilities, etc.)
// were already verified: callers should go through package ops rather than calling the methods directly.
package backends

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

var (
	// ErrNotImplemented is wrapped by every error returned for an operation that a backend doesn't implement for
	// the requested element type.
	ErrNotImplemented = errors.New("not implemented")

	// ErrPrecondition is wrapped by errors returned when the caller broke the contract of an operation: buffers
	// too short, probabilities out of [0, 1], invalid configuration, etc.
	ErrPrecondition = errors.New("precondition violated")
)

// IsNotImplemented returns whether err was caused by a missing operation in a backend.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsPrecondition returns whether err was caused by a caller breaking an operation contract.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPrecondition)
}

// NotImplementedErrorf returns an error wrapping ErrNotImplemented for the operation op and element type T,
// with an optional extra description.
func NotImplementedErrorf[T dtypes.GoFloat](op OpType, format string, args ...any) error {
	err := errors.Wrapf(ErrNotImplemented, "%s for dtype %s", op, dtypes.FromGenericsType[T]())
	if format != "" {
		err = errors.WithMessagef(err, format, args...)
	}
	return err
}

// PreconditionErrorf returns an error wrapping ErrPrecondition with the given description.
func PreconditionErrorf(format string, args ...any) error {
	return errors.Wrapf(ErrPrecondition, format, args...)
}
