package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
)

// Amax sets ret to the index of the first element of input with the max value, or -1 if count is 0.
func Amax[B backends.Ops[T], T dtypes.GoFloat](count int, input *backends.Buffer[T], ret *int, ctx *backends.Context) error {
	p := check(backends.OpTypeAmax).nonNegative("count", count).scalar("ret", ret == nil)
	bufferCheck(p, "input", input, count)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeAmax, func(b B) error { return b.Amax(count, input, ret, ctx) })
}

// Amin sets ret to the index of the first element of input with the min value, or -1 if count is 0.
func Amin[B backends.Ops[T], T dtypes.GoFloat](count int, input *backends.Buffer[T], ret *int, ctx *backends.Context) error {
	p := check(backends.OpTypeAmin).nonNegative("count", count).scalar("ret", ret == nil)
	bufferCheck(p, "input", input, count)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeAmin, func(b B) error { return b.Amin(count, input, ret, ctx) })
}

// Asum sets ret to the sum of the absolute values of input.
func Asum[B backends.Ops[T], T dtypes.GoFloat](count int, input *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	p := check(backends.OpTypeAsum).nonNegative("count", count).scalar("ret", ret == nil)
	bufferCheck(p, "input", input, count)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeAsum, func(b B) error { return b.Asum(count, input, ret, ctx) })
}

// Axpy sets ret[i] = alpha*input[i] + ret[i].
func Axpy[B backends.Ops[T], T dtypes.GoFloat](count int, alpha T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	if err := unaryCheck(backends.OpTypeAxpy, count, input, ret); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeAxpy, func(b B) error { return b.Axpy(count, alpha, input, ret, ctx) })
}

// Scale sets ret[i] *= x.
func Scale[B backends.Ops[T], T dtypes.GoFloat](count int, x T, ret *backends.Buffer[T], ctx *backends.Context) error {
	p := check(backends.OpTypeScale).nonNegative("count", count)
	bufferCheck(p, "ret", ret, count)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeScale, func(b B) error { return b.Scale(count, x, ret, ctx) })
}

// Dot sets ret to the dot product of lhs and rhs.
func Dot[B backends.Ops[T], T dtypes.GoFloat](count int, lhs, rhs *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	p := check(backends.OpTypeDot).nonNegative("count", count).scalar("ret", ret == nil)
	bufferCheck(p, "lhs", lhs, count)
	bufferCheck(p, "rhs", rhs, count)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeDot, func(b B) error { return b.Dot(count, lhs, rhs, ret, ctx) })
}

// MatVec sets ret = alpha*op(a)*x + beta*ret, where a is the row-major m x n matrix, and op(a) is a, or its
// transpose if trans is true.
//
// If trans is false x has n elements and ret has m, otherwise x has m elements and ret has n.
// If beta is 0, the previous contents of ret are ignored (even if NaN).
func MatVec[B backends.Ops[T], T dtypes.GoFloat](trans bool, m, n int, alpha T, a, x *backends.Buffer[T], beta T,
	ret *backends.Buffer[T], ctx *backends.Context) error {
	p := check(backends.OpTypeMatVec).nonNegative("m", m).nonNegative("n", n)
	xLen, retLen := n, m
	if trans {
		xLen, retLen = m, n
	}
	bufferCheck(p, "a", a, mulDims(p, m, n))
	bufferCheck(p, "x", x, xLen)
	bufferCheck(p, "ret", ret, retLen)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeMatVec, func(b B) error {
		return b.MatVec(trans, m, n, alpha, a, x, beta, ret, ctx)
	})
}

// MatMat sets ret = alpha*op(a)*op(b) + beta*ret, where op(a) is m x k, op(b) is k x n and ret is m x n.
// All matrices are row-major: a is stored as m x k, or k x m if transA is true, and b is stored as k x n, or n x k
// if transB is true.
//
// If beta is 0, the previous contents of ret are ignored (even if NaN).
func MatMat[B backends.Ops[T], T dtypes.GoFloat](transA, transB bool, m, n, k int, alpha T, a, b *backends.Buffer[T],
	beta T, ret *backends.Buffer[T], ctx *backends.Context) error {
	p := check(backends.OpTypeMatMat).nonNegative("m", m).nonNegative("n", n).nonNegative("k", k)
	bufferCheck(p, "a", a, mulDims(p, m, k))
	bufferCheck(p, "b", b, mulDims(p, k, n))
	bufferCheck(p, "ret", ret, mulDims(p, m, n))
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeMatMat, func(backend B) error {
		return backend.MatMat(transA, transB, m, n, k, alpha, a, b, beta, ret, ctx)
	})
}
