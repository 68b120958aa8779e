// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package highway

import (
	"slices"

	"github.com/ajroetker/go-highway/hwy/contrib/algo"
	"github.com/ajroetker/go-highway/hwy/contrib/vec"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/simplego"
)

// BackendName is the short name of the backend.
const BackendName = "highway"

// Backend is the tag type of the highway backend, for the element type T.
//
// Operations without a SIMD version are those of simplego.Backend.
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
	return "SIMD (go-highway) accelerated Go Backend"
}

// minParallelChunk is the minimum number of elements handled by one goroutine.
const minParallelChunk = 32 * 1024

// parallel splits [0, count) among the goroutines of the context pool.
func parallel(ctx *backends.Context, count int, fn func(start, end int)) {
	ctx.Pool().ParallelFor(count, minParallelChunk, fn)
}

// transform applies the SIMD transform matching T to input[:count], storing the results in ret.
func transform[T dtypes.GoFloat](ctx *backends.Context, count int, input, ret *backends.Buffer[T],
	f32Fn func(input, output []float32), f64Fn func(input, output []float64)) {
	switch inputs := any(input.Flat()[:count]).(type) {
	case []float32:
		outputs := any(ret.Flat()[:count]).([]float32)
		parallel(ctx, count, func(start, end int) { f32Fn(inputs[start:end], outputs[start:end]) })
	case []float64:
		outputs := any(ret.Flat()[:count]).([]float64)
		parallel(ctx, count, func(start, end int) { f64Fn(inputs[start:end], outputs[start:end]) })
	}
}

// Exp implements backends.Ops.
func (Backend[T]) Exp(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	transform(ctx, count, input, ret, algo.ExpTransform, algo.ExpTransform64)
	return nil
}

// Log implements backends.Ops.
func (Backend[T]) Log(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	transform(ctx, count, input, ret, algo.LogTransform, algo.LogTransform64)
	return nil
}

// Sqrt implements backends.Ops.
func (Backend[T]) Sqrt(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	transform(ctx, count, input, ret, algo.SqrtTransform, algo.SqrtTransform64)
	return nil
}

// Tanh implements backends.Ops.
func (Backend[T]) Tanh(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	transform(ctx, count, input, ret, algo.TanhTransform, algo.TanhTransform64)
	return nil
}

// Sigmoid implements backends.Ops.
func (Backend[T]) Sigmoid(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	transform(ctx, count, input, ret, algo.SigmoidTransform, algo.SigmoidTransform64)
	return nil
}

// binary applies fn(dst, a, b) over chunks of lhs, rhs and ret.
func binary[T dtypes.GoFloat](ctx *backends.Context, count int, lhs, rhs, ret *backends.Buffer[T], fn func(dst, a, b []T)) {
	lhsFlat, rhsFlat, outputs := lhs.Flat()[:count], rhs.Flat()[:count], ret.Flat()[:count]
	parallel(ctx, count, func(start, end int) {
		fn(outputs[start:end], lhsFlat[start:end], rhsFlat[start:end])
	})
}

// Add implements backends.Ops.
func (Backend[T]) Add(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binary(ctx, count, lhs, rhs, ret, vec.BaseAddTo[T])
	return nil
}

// Sub implements backends.Ops.
func (Backend[T]) Sub(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binary(ctx, count, lhs, rhs, ret, vec.BaseSubTo[T])
	return nil
}

// Mult implements backends.Ops.
func (Backend[T]) Mult(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binary(ctx, count, lhs, rhs, ret, vec.BaseMulTo[T])
	return nil
}

// Div implements backends.Ops.
func (Backend[T]) Div(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binary(ctx, count, lhs, rhs, ret, vec.BaseDivTo[T])
	return nil
}

// AddScalar implements backends.Ops.
func (Backend[T]) AddScalar(count int, scalar T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	inputs, outputs := input.Flat()[:count], ret.Flat()[:count]
	parallel(ctx, count, func(start, end int) {
		copy(outputs[start:end], inputs[start:end])
		vec.BaseAddConst(scalar, outputs[start:end])
	})
	return nil
}

// MultScalar implements backends.Ops.
func (Backend[T]) MultScalar(count int, scalar T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	inputs, outputs := input.Flat()[:count], ret.Flat()[:count]
	parallel(ctx, count, func(start, end int) {
		vec.BaseScaleTo(outputs[start:end], scalar, inputs[start:end])
	})
	return nil
}

// Scale implements backends.Ops.
func (Backend[T]) Scale(count int, alpha T, ret *backends.Buffer[T], ctx *backends.Context) error {
	if alpha == 1 {
		return nil
	}
	outputs := ret.Flat()[:count]
	if alpha == 0 {
		clear(outputs)
		return nil
	}
	parallel(ctx, count, func(start, end int) {
		vec.BaseScale(alpha, outputs[start:end])
	})
	return nil
}

// Axpy implements backends.Ops.
func (Backend[T]) Axpy(count int, alpha T, x, ret *backends.Buffer[T], ctx *backends.Context) error {
	if alpha == 0 {
		return nil
	}
	xFlat, outputs := x.Flat()[:count], ret.Flat()[:count]
	parallel(ctx, count, func(start, end int) {
		vec.BaseMulConstAddTo(outputs[start:end], alpha, xFlat[start:end])
	})
	return nil
}

// Dot implements backends.Ops.
func (Backend[T]) Dot(count int, lhs, rhs *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	if count == 0 {
		*ret = 0
		return nil
	}
	*ret = vec.BaseDot(lhs.Flat()[:count], rhs.Flat()[:count])
	return nil
}

// Sum implements backends.Ops.
func (Backend[T]) Sum(count int, input *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	if count == 0 {
		*ret = 0
		return nil
	}
	*ret = vec.BaseSum(input.Flat()[:count])
	return nil
}

// maxArgChunk is the largest number of elements whose indices float32 represents exactly.
// vec.BaseArgmax and vec.BaseArgmin track the indices in the element type.
const maxArgChunk = 1 << 24

// Amax implements backends.Ops.
//
// Inputs with NaN values use simplego's version, which skips them.
func (b Backend[T]) Amax(count int, input *backends.Buffer[T], ret *int, ctx *backends.Context) error {
	values := input.Flat()[:count]
	if hasNaN(values) {
		return b.Backend.Amax(count, input, ret, ctx)
	}
	*ret = argBestChunked(values, maxArgChunk, vec.BaseArgmax[T], func(x, best T) bool { return x > best })
	return nil
}

// Amin implements backends.Ops.
//
// Inputs with NaN values use simplego's version, which skips them.
func (b Backend[T]) Amin(count int, input *backends.Buffer[T], ret *int, ctx *backends.Context) error {
	values := input.Flat()[:count]
	if hasNaN(values) {
		return b.Backend.Amin(count, input, ret, ctx)
	}
	*ret = argBestChunked(values, maxArgChunk, vec.BaseArgmin[T], func(x, best T) bool { return x < best })
	return nil
}

func hasNaN[T dtypes.GoFloat](values []T) bool {
	return slices.ContainsFunc(values, func(x T) bool { return x != x })
}

// argBestChunked runs argBest on chunks of at most chunkSize elements and returns the first index of the best
// value among the chunk winners, or -1 for an empty slice.
func argBestChunked[T dtypes.GoFloat](values []T, chunkSize int, argBest func([]T) int,
	better func(x, best T) bool) int {
	bestIdx := -1
	for start := 0; start < len(values); start += chunkSize {
		end := min(start+chunkSize, len(values))
		idx := start + argBest(values[start:end])
		if bestIdx < 0 || better(values[idx], values[bestIdx]) {
			bestIdx = idx
		}
	}
	return bestIdx
}
