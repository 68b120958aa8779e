package simplego

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
)

// unaryMap sets ret[i] = fn(input[i]) for i in [0, count). input and ret may be the same buffer.
func unaryMap[T dtypes.GoFloat](ctx *backends.Context, count int, input, ret *backends.Buffer[T], fn func(x T) T) {
	inputs, outputs := input.Flat()[:count], ret.Flat()[:count]
	ctx.Pool().ParallelFor(count, minParallelChunk, func(start, end int) {
		for ii := start; ii < end; ii++ {
			outputs[ii] = fn(inputs[ii])
		}
	})
}

// binaryMap sets ret[i] = fn(lhs[i], rhs[i]) for i in [0, count). Any of the buffers may be the same.
func binaryMap[T dtypes.GoFloat](ctx *backends.Context, count int, lhs, rhs, ret *backends.Buffer[T], fn func(x, y T) T) {
	lhsFlat, rhsFlat, outputs := lhs.Flat()[:count], rhs.Flat()[:count], ret.Flat()[:count]
	ctx.Pool().ParallelFor(count, minParallelChunk, func(start, end int) {
		for ii := start; ii < end; ii++ {
			outputs[ii] = fn(lhsFlat[ii], rhsFlat[ii])
		}
	})
}

// Sum implements backends.Ops.
func (Backend[T]) Sum(count int, input *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	var sum T
	for _, v := range input.Flat()[:count] {
		sum += v
	}
	*ret = sum
	return nil
}

// Abs implements backends.Ops.
func (Backend[T]) Abs(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, func(x T) T {
		if x < 0 {
			return -x
		}
		return x + 0 // -0 -> 0
	})
	return nil
}

// Sign implements backends.Ops. The sign of NaN is NaN, and the sign of ±0 is 0.
func (Backend[T]) Sign(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, func(x T) T {
		switch {
		case x < 0:
			return -1
		case x > 0:
			return 1
		case x == 0:
			return 0
		}
		return x
	})
	return nil
}

// Exp implements backends.Ops.
func (Backend[T]) Exp(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, func(x T) T { return T(math.Exp(float64(x))) })
	return nil
}

// Log implements backends.Ops.
func (Backend[T]) Log(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, func(x T) T { return T(math.Log(float64(x))) })
	return nil
}

// Sqrt implements backends.Ops.
func (Backend[T]) Sqrt(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, func(x T) T { return T(math.Sqrt(float64(x))) })
	return nil
}

// Tanh implements backends.Ops.
func (Backend[T]) Tanh(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, func(x T) T { return T(math.Tanh(float64(x))) })
	return nil
}

// Sigmoid implements backends.Ops.
func (Backend[T]) Sigmoid(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, sigmoid[T])
	return nil
}

// sigmoid computes 1/(1+e^-x) without overflowing for large negative x.
func sigmoid[T dtypes.GoFloat](x T) T {
	x64 := float64(x)
	if x64 >= 0 {
		return T(1 / (1 + math.Exp(-x64)))
	}
	e := math.Exp(x64)
	return T(e / (1 + e))
}

// PowScalar implements backends.Ops.
func (Backend[T]) PowScalar(count int, x T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	exponent := float64(x)
	unaryMap(ctx, count, input, ret, func(v T) T { return T(math.Pow(float64(v), exponent)) })
	return nil
}

// Clamp implements backends.Ops.
//
// It returns an error wrapping backends.ErrPrecondition if low > high. NaN values are preserved.
func (Backend[T]) Clamp(count int, low, high T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	if low > high {
		return backends.PreconditionErrorf("Clamp: low (%g) > high (%g)", low, high)
	}
	unaryMap(ctx, count, input, ret, func(v T) T {
		if v < low {
			return low
		}
		if v > high {
			return high
		}
		return v
	})
	return nil
}

// AddScalar implements backends.Ops.
func (Backend[T]) AddScalar(count int, x T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, func(v T) T { return v + x })
	return nil
}

// MultScalar implements backends.Ops.
func (Backend[T]) MultScalar(count int, x T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	unaryMap(ctx, count, input, ret, func(v T) T { return v * x })
	return nil
}

// Add implements backends.Ops.
func (Backend[T]) Add(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binaryMap(ctx, count, lhs, rhs, ret, func(x, y T) T { return x + y })
	return nil
}

// Sub implements backends.Ops.
func (Backend[T]) Sub(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binaryMap(ctx, count, lhs, rhs, ret, func(x, y T) T { return x - y })
	return nil
}

// Mult implements backends.Ops.
func (Backend[T]) Mult(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binaryMap(ctx, count, lhs, rhs, ret, func(x, y T) T { return x * y })
	return nil
}

// Div implements backends.Ops. Division by zero follows IEEE-754: ±Inf, or NaN for 0/0.
func (Backend[T]) Div(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binaryMap(ctx, count, lhs, rhs, ret, func(x, y T) T { return x / y })
	return nil
}

// Pow implements backends.Ops.
func (Backend[T]) Pow(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	binaryMap(ctx, count, lhs, rhs, ret, func(x, y T) T { return T(math.Pow(float64(x), float64(y))) })
	return nil
}

// Outer implements backends.Ops.
func (Backend[T]) Outer(m, n int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	size := m * n
	if size == 0 {
		return nil
	}
	scratch := getScratch[T](size)
	defer putScratch(scratch)
	outputs := *scratch
	lhsFlat, rhsFlat := lhs.Flat()[:m], rhs.Flat()[:n]
	ctx.Pool().ParallelFor(m, max(1, minParallelChunk/n), func(start, end int) {
		for row := start; row < end; row++ {
			x := lhsFlat[row]
			outputRow := outputs[row*n : (row+1)*n]
			for col, y := range rhsFlat {
				outputRow[col] = x * y
			}
		}
	})
	copy(ret.Flat()[:size], outputs)
	return nil
}
