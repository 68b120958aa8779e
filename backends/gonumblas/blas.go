package gonumblas

import (
	"github.com/gomlx/mathcore/backends"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
)

func vector32(data []float32) blas32.Vector { return blas32.Vector{N: len(data), Inc: 1, Data: data} }
func vector64(data []float64) blas64.Vector { return blas64.Vector{N: len(data), Inc: 1, Data: data} }

// general32 returns the row-major rows x cols matrix stored in data.
func general32(rows, cols int, data []float32) blas32.General {
	return blas32.General{Rows: rows, Cols: cols, Stride: cols, Data: data[:rows*cols]}
}

func general64(rows, cols int, data []float64) blas64.General {
	return blas64.General{Rows: rows, Cols: cols, Stride: cols, Data: data[:rows*cols]}
}

func transpose(trans bool) blas.Transpose {
	if trans {
		return blas.Trans
	}
	return blas.NoTrans
}

// Asum implements backends.Ops.
func (Backend[T]) Asum(count int, input *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	if count == 0 {
		*ret = 0
		return nil
	}
	switch flat := any(input.Flat()[:count]).(type) {
	case []float32:
		*ret = T(blas32.Asum(vector32(flat)))
	case []float64:
		*ret = T(blas64.Asum(vector64(flat)))
	}
	return nil
}

// Axpy implements backends.Ops.
func (Backend[T]) Axpy(count int, alpha T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	if count == 0 || alpha == 0 {
		return nil
	}
	switch flat := any(input.Flat()[:count]).(type) {
	case []float32:
		blas32.Axpy(float32(alpha), vector32(flat), vector32(any(ret.Flat()[:count]).([]float32)))
	case []float64:
		blas64.Axpy(float64(alpha), vector64(flat), vector64(any(ret.Flat()[:count]).([]float64)))
	}
	return nil
}

// Scale implements backends.Ops.
func (Backend[T]) Scale(count int, alpha T, ret *backends.Buffer[T], ctx *backends.Context) error {
	if count == 0 {
		return nil
	}
	switch flat := any(ret.Flat()[:count]).(type) {
	case []float32:
		blas32.Scal(float32(alpha), vector32(flat))
	case []float64:
		blas64.Scal(float64(alpha), vector64(flat))
	}
	return nil
}

// Dot implements backends.Ops.
func (Backend[T]) Dot(count int, lhs, rhs *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	if count == 0 {
		*ret = 0
		return nil
	}
	switch flat := any(lhs.Flat()[:count]).(type) {
	case []float32:
		*ret = T(blas32.Dot(vector32(flat), vector32(any(rhs.Flat()[:count]).([]float32))))
	case []float64:
		*ret = T(blas64.Dot(vector64(flat), vector64(any(rhs.Flat()[:count]).([]float64))))
	}
	return nil
}

// scaleBy sets values = beta*values, ignoring the previous values if beta is 0.
func scaleBy[T constraints.Float](beta T, values []T) {
	if beta == 0 {
		clear(values)
		return
	}
	for ii := range values {
		values[ii] *= beta
	}
}

// MatVec implements backends.Ops.
func (Backend[T]) MatVec(trans bool, m, n int, alpha T, a, x *backends.Buffer[T], beta T, ret *backends.Buffer[T],
	ctx *backends.Context) error {
	xLen, retLen := n, m
	if trans {
		xLen, retLen = m, n
	}
	// ret may alias a or x, so the result is built in y.
	y := make([]T, retLen)
	copy(y, ret.Flat()[:retLen])
	if m == 0 || n == 0 {
		scaleBy(beta, y)
	} else {
		switch aFlat := any(a.Flat()).(type) {
		case []float32:
			blas32.Gemv(transpose(trans), float32(alpha), general32(m, n, aFlat),
				vector32(any(x.Flat()[:xLen]).([]float32)), float32(beta), vector32(any(y).([]float32)))
		case []float64:
			blas64.Gemv(transpose(trans), float64(alpha), general64(m, n, aFlat),
				vector64(any(x.Flat()[:xLen]).([]float64)), float64(beta), vector64(any(y).([]float64)))
		}
	}
	copy(ret.Flat()[:retLen], y)
	return nil
}

// MatMat implements backends.Ops.
func (Backend[T]) MatMat(transA, transB bool, m, n, k int, alpha T, a, b *backends.Buffer[T], beta T,
	ret *backends.Buffer[T], ctx *backends.Context) error {
	size := m * n
	if size == 0 {
		return nil
	}
	c := make([]T, size)
	copy(c, ret.Flat()[:size])
	if k == 0 {
		scaleBy(beta, c)
	} else {
		gemm(transA, transB, m, n, k, alpha, a.Flat(), b.Flat(), beta, c)
	}
	copy(ret.Flat()[:size], c)
	return nil
}

// gemm sets c = alpha*op(a)*op(b) + beta*c, with op(a) m x k and op(b) k x n. c must not overlap a or b.
func gemm[T constraints.Float](transA, transB bool, m, n, k int, alpha T, a, b []T, beta T, c []T) {
	aRows, aCols := m, k
	if transA {
		aRows, aCols = k, m
	}
	bRows, bCols := k, n
	if transB {
		bRows, bCols = n, k
	}
	switch cFlat := any(c).(type) {
	case []float32:
		blas32.Gemm(transpose(transA), transpose(transB), float32(alpha),
			general32(aRows, aCols, any(a).([]float32)), general32(bRows, bCols, any(b).([]float32)),
			float32(beta), general32(m, n, cFlat))
	case []float64:
		blas64.Gemm(transpose(transA), transpose(transB), float64(alpha),
			general64(aRows, aCols, any(a).([]float64)), general64(bRows, bCols, any(b).([]float64)),
			float64(beta), general64(m, n, cFlat))
	}
}

// Outer implements backends.Ops.
func (Backend[T]) Outer(m, n int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	size := m * n
	if size == 0 {
		return nil
	}
	// Ger accumulates into a zeroed matrix, which can't be ret, since ret may alias lhs or rhs.
	product := make([]T, size)
	switch flat := any(product).(type) {
	case []float32:
		blas32.Ger(1, vector32(any(lhs.Flat()[:m]).([]float32)), vector32(any(rhs.Flat()[:n]).([]float32)),
			general32(m, n, flat))
	case []float64:
		blas64.Ger(1, vector64(any(lhs.Flat()[:m]).([]float64)), vector64(any(rhs.Flat()[:n]).([]float64)),
			general64(m, n, flat))
	}
	copy(ret.Flat()[:size], product)
	return nil
}
