package simplego

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/simplego/gemm"
)

// Amax implements backends.Ops.
//
// NaN values are skipped, and if all values are NaN, ret is set to 0.
func (Backend[T]) Amax(count int, input *backends.Buffer[T], ret *int, ctx *backends.Context) error {
	*ret = argBest(input.Flat()[:count], func(x, best T) bool { return x > best })
	return nil
}

// Amin implements backends.Ops.
//
// NaN values are skipped, and if all values are NaN, ret is set to 0.
func (Backend[T]) Amin(count int, input *backends.Buffer[T], ret *int, ctx *backends.Context) error {
	*ret = argBest(input.Flat()[:count], func(x, best T) bool { return x < best })
	return nil
}

// argBest returns the index of the first element x for which no other element is better, -1 for an empty slice.
func argBest[T dtypes.GoFloat](values []T, better func(x, best T) bool) int {
	if len(values) == 0 {
		return -1
	}
	bestIdx := -1
	var best T
	for ii, x := range values {
		if math.IsNaN(float64(x)) {
			continue
		}
		if bestIdx < 0 || better(x, best) {
			bestIdx, best = ii, x
		}
	}
	return max(bestIdx, 0)
}

// Asum implements backends.Ops.
func (Backend[T]) Asum(count int, input *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	var sum T
	for _, v := range input.Flat()[:count] {
		if v < 0 {
			sum -= v
		} else {
			sum += v
		}
	}
	*ret = sum
	return nil
}

// Axpy implements backends.Ops.
func (Backend[T]) Axpy(count int, alpha T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	binaryMap(ctx, count, input, ret, ret, func(x, y T) T { return alpha*x + y })
	return nil
}

// Scale implements backends.Ops.
//
// Scaling by 0 zeroes ret, including infinities and NaNs.
func (Backend[T]) Scale(count int, x T, ret *backends.Buffer[T], ctx *backends.Context) error {
	if x == 0 {
		clear(ret.Flat()[:count])
		return nil
	}
	unaryMap(ctx, count, ret, ret, func(v T) T { return v * x })
	return nil
}

// Dot implements backends.Ops.
func (Backend[T]) Dot(count int, lhs, rhs *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	var sum T
	rhsFlat := rhs.Flat()
	for ii, x := range lhs.Flat()[:count] {
		sum += x * rhsFlat[ii]
	}
	*ret = sum
	return nil
}

// MatVec implements backends.Ops.
func (Backend[T]) MatVec(trans bool, m, n int, alpha T, a, x *backends.Buffer[T], beta T, ret *backends.Buffer[T],
	ctx *backends.Context) error {
	outputLen, inputLen := m, n
	if trans {
		outputLen, inputLen = n, m
	}
	if outputLen == 0 {
		return nil
	}
	scratch := getScratch[T](outputLen)
	defer putScratch(scratch)
	outputs := *scratch
	aFlat, xFlat, retFlat := a.Flat(), x.Flat()[:inputLen], ret.Flat()[:outputLen]
	ctx.Pool().ParallelFor(outputLen, max(1, minParallelChunk/max(inputLen, 1)), func(start, end int) {
		for outIdx := start; outIdx < end; outIdx++ {
			var sum T
			if trans {
				// Column outIdx of a.
				for row, xValue := range xFlat {
					sum += aFlat[row*n+outIdx] * xValue
				}
			} else {
				for col, aValue := range aFlat[outIdx*n : (outIdx+1)*n] {
					sum += aValue * xFlat[col]
				}
			}
			outputs[outIdx] = applyAlphaBeta(alpha, sum, beta, retFlat[outIdx])
		}
	})
	copy(retFlat, outputs)
	return nil
}

// applyAlphaBeta returns alpha*result + beta*previous. previous is ignored if beta is 0, even if it is NaN.
func applyAlphaBeta[T dtypes.GoFloat](alpha, result, beta, previous T) T {
	if beta == 0 {
		return alpha * result
	}
	return alpha*result + beta*previous
}

// MatMat implements backends.Ops.
func (Backend[T]) MatMat(transA, transB bool, m, n, k int, alpha T, a, b *backends.Buffer[T], beta T,
	ret *backends.Buffer[T], ctx *backends.Context) error {
	size := m * n
	if size == 0 {
		return nil
	}
	scratch := getScratch[T](size)
	defer putScratch(scratch)
	product := *scratch
	matMul(ctx, gemm.Layout(transA), gemm.Layout(transB), a.Flat()[:m*k], b.Flat()[:k*n], m, n, k, product)

	retFlat := ret.Flat()[:size]
	ctx.Pool().ParallelFor(size, minParallelChunk, func(start, end int) {
		for ii := start; ii < end; ii++ {
			product[ii] = applyAlphaBeta(alpha, product[ii], beta, retFlat[ii])
		}
	})
	copy(retFlat, product)
	return nil
}

// matMul sets c = op(a)*op(b), where op(a) is m x k and op(b) is k x n. c must not overlap a or b.
//
// It uses the registered Highway implementation when a is not transposed, and gemm.Basic otherwise.
func matMul[T dtypes.GoFloat](ctx *backends.Context, aLayout, bLayout gemm.Layout, a, b []T, m, n, k int, c []T) {
	if k == 0 {
		clear(c[:m*n])
		return
	}
	if aLayout == gemm.NoTrans && highwayMatMul(bLayout, a, b, c, m, n, k) {
		return
	}
	ctx.Pool().ParallelFor(m, max(1, minParallelChunk/max(n*k, 1)), func(start, end int) {
		gemm.Basic(aLayout, bLayout, a, b, m, n, k, c, start, end)
	})
}
