/***** File generated by ./internal/cmd/notimplemented_generator, based on backends.Ops interface. Don't edit it directly. *****/

package notimplemented

import (
	"github.com/gomlx/mathcore/backends"
)

// Sum implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Sum(count int, input *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeSum, "")
}

// Abs implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Abs(count int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAbs, "")
}

// Sign implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Sign(count int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeSign, "")
}

// Exp implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Exp(count int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeExp, "")
}

// Log implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Log(count int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeLog, "")
}

// Sqrt implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Sqrt(count int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeSqrt, "")
}

// Tanh implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Tanh(count int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeTanh, "")
}

// Sigmoid implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Sigmoid(count int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeSigmoid, "")
}

// PowScalar implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) PowScalar(count int, x T, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypePowScalar, "")
}

// Clamp implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Clamp(count int, low T, high T, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeClamp, "")
}

// AddScalar implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) AddScalar(count int, x T, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAddScalar, "")
}

// MultScalar implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) MultScalar(count int, x T, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeMultScalar, "")
}

// Add implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Add(count int, lhs *backends.Buffer[T], rhs *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAdd, "")
}

// Sub implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Sub(count int, lhs *backends.Buffer[T], rhs *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeSub, "")
}

// Mult implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Mult(count int, lhs *backends.Buffer[T], rhs *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeMult, "")
}

// Div implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Div(count int, lhs *backends.Buffer[T], rhs *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeDiv, "")
}

// Pow implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Pow(count int, lhs *backends.Buffer[T], rhs *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypePow, "")
}

// Outer implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Outer(m int, n int, lhs *backends.Buffer[T], rhs *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeOuter, "")
}

// SumRows implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) SumRows(nrow int, ncol int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeSumRows, "")
}

// SumColumns implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) SumColumns(nrow int, ncol int, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeSumColumns, "")
}

// AddRow implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) AddRow(nrow int, ncol int, a *backends.Buffer[T], v *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAddRow, "")
}

// AddColumn implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) AddColumn(nrow int, ncol int, a *backends.Buffer[T], v *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAddColumn, "")
}

// Amax implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Amax(count int, input *backends.Buffer[T], ret *int, ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAmax, "")
}

// Amin implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Amin(count int, input *backends.Buffer[T], ret *int, ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAmin, "")
}

// Asum implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Asum(count int, input *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAsum, "")
}

// Axpy implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Axpy(count int, alpha T, input *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeAxpy, "")
}

// Scale implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Scale(count int, x T, ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeScale, "")
}

// Dot implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Dot(count int, lhs *backends.Buffer[T], rhs *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeDot, "")
}

// MatVec implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) MatVec(trans bool, m int, n int, alpha T, a *backends.Buffer[T], x *backends.Buffer[T], beta T, ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeMatVec, "")
}

// MatMat implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) MatMat(transA bool, transB bool, m int, n int, k int, alpha T, a *backends.Buffer[T], b *backends.Buffer[T], beta T, ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeMatMat, "")
}

// Uniform implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Uniform(count int, low T, high T, ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeUniform, "")
}

// Gaussian implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Gaussian(count int, mean T, std T, ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeGaussian, "")
}

// Bernoulli implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Bernoulli(count int, p T, ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeBernoulli, "")
}

// BernoulliPerElement implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) BernoulliPerElement(count int, p *backends.Buffer[T], ret *backends.Buffer[T], ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeBernoulliPerElement, "")
}

// Conv2D implements backends.Ops and returns an error wrapping backends.ErrNotImplemented.
func (Ops[T]) Conv2D(c int, h int, w int, numKernels int, kh int, kw int, input *backends.Buffer[T], kernel *backends.Buffer[T], ret *backends.Buffer[T], conf backends.OpConfig, ctx *backends.Context) error {
	return backends.NotImplementedErrorf[T](backends.OpTypeConv2D, "")
}
