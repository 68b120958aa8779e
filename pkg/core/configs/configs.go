// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package configs holds the operation configurations shared by backends, and the tools to view an OpConfig
// as the concrete configuration a backend expects.
//
// An OpConfig carries the extra parameters of an operation that vary among backends (e.g.: the convolution
// algorithm). The caller constructs the concrete configuration of the backend it targets, and the backend views
// it with As:
//
//	conf := &simplego.ConvConfig{Conv2D: configs.Conv2D{Stride: 2}, Algorithm: simplego.ConvIm2Col}
//	err := ops.Conv2D[simplego.Backend[float32]](c, h, w, numKernels, kh, kw, input, kernel, ret, conf, ctx)
//
// Backends that only need the geometry view any configuration as a ConvGeometry, so the same configuration
// works across backends.
package configs

import (
	"reflect"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/mathcore/backends"
)

// OpConfig is an alias to backends.OpConfig, the base of every configuration.
type OpConfig = backends.OpConfig

// As views conf as the configuration type V, which can be a concrete (pointer) type or an interface
// (e.g.: ConvGeometry).
//
// It returns an error wrapping backends.ErrPrecondition if conf is nil (including a nil pointer of a
// concrete type) or if it wasn't constructed as (or doesn't implement) V. No field of conf is read in that case.
func As[V OpConfig](conf OpConfig) (V, error) {
	var zero V
	if isNil(conf) {
		return zero, backends.PreconditionErrorf("configs.As[%s]: nil configuration (%T)", typeName[V](), conf)
	}
	v, ok := conf.(V)
	if !ok {
		return zero, backends.PreconditionErrorf("configs.As[%s]: configuration %q (%T) is not a %s",
			typeName[V](), conf.OpConfigType(), conf, typeName[V]())
	}
	return v, nil
}

// MustAs is like As, but panics if conf can't be viewed as V.
//
// It is meant for callers that constructed conf themselves, for which a mismatch is a programming error.
func MustAs[V OpConfig](conf OpConfig) V {
	v, err := As[V](conf)
	if err != nil {
		exceptions.Panicf("configs.MustAs: %v", err)
	}
	return v
}

// Is returns whether conf can be viewed as V.
func Is[V OpConfig](conf OpConfig) bool {
	_, ok := conf.(V)
	return ok && !isNil(conf)
}

// isNil returns whether conf is nil or holds a nil pointer.
func isNil(conf OpConfig) bool {
	if conf == nil {
		return true
	}
	value := reflect.ValueOf(conf)
	return value.Kind() == reflect.Pointer && value.IsNil()
}

func typeName[V any]() string {
	return reflect.TypeFor[V]().String()
}
