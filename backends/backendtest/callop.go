package backendtest

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/pkg/errors"
)

// CallOp calls the operation op of the backend B with small valid arguments, and returns its error.
//
// It is used to check that operations listed in the capabilities are implemented, and that the others return an
// error wrapping backends.ErrNotImplemented.
func CallOp[B backends.Ops[T], T dtypes.GoFloat](op backends.OpType, ctx *backends.Context) error {
	const count = 4
	x := Sequence[T](count, 0.5, 0.25)
	y := Sequence[T](count, 1, 1)
	ret := backends.NewBuffer[T](count)
	var scalar T
	var index int
	switch op {
	case backends.OpTypeSum:
		return ops.Sum[B](count, x, &scalar, ctx)
	case backends.OpTypeAbs:
		return ops.Abs[B](count, x, ret, ctx)
	case backends.OpTypeSign:
		return ops.Sign[B](count, x, ret, ctx)
	case backends.OpTypeExp:
		return ops.Exp[B](count, x, ret, ctx)
	case backends.OpTypeLog:
		return ops.Log[B](count, x, ret, ctx)
	case backends.OpTypeSqrt:
		return ops.Sqrt[B](count, x, ret, ctx)
	case backends.OpTypeTanh:
		return ops.Tanh[B](count, x, ret, ctx)
	case backends.OpTypeSigmoid:
		return ops.Sigmoid[B](count, x, ret, ctx)
	case backends.OpTypePowScalar:
		return ops.PowScalar[B](count, 2, x, ret, ctx)
	case backends.OpTypeClamp:
		return ops.Clamp[B](count, 0, 1, x, ret, ctx)
	case backends.OpTypeAddScalar:
		return ops.AddScalar[B](count, 1, x, ret, ctx)
	case backends.OpTypeMultScalar:
		return ops.MultScalar[B](count, 2, x, ret, ctx)
	case backends.OpTypeAdd:
		return ops.Add[B](count, x, y, ret, ctx)
	case backends.OpTypeSub:
		return ops.Sub[B](count, x, y, ret, ctx)
	case backends.OpTypeMult:
		return ops.Mult[B](count, x, y, ret, ctx)
	case backends.OpTypeDiv:
		return ops.Div[B](count, x, y, ret, ctx)
	case backends.OpTypePow:
		return ops.Pow[B](count, x, y, ret, ctx)
	case backends.OpTypeOuter:
		return ops.Outer[B](2, 2, x, y, ret, ctx)
	case backends.OpTypeSumRows:
		return ops.SumRows[B](2, 2, x, ret, ctx)
	case backends.OpTypeSumColumns:
		return ops.SumColumns[B](2, 2, x, ret, ctx)
	case backends.OpTypeAddRow:
		return ops.AddRow[B](2, 2, x, y, ret, ctx)
	case backends.OpTypeAddColumn:
		return ops.AddColumn[B](2, 2, x, y, ret, ctx)
	case backends.OpTypeAmax:
		return ops.Amax[B](count, x, &index, ctx)
	case backends.OpTypeAmin:
		return ops.Amin[B](count, x, &index, ctx)
	case backends.OpTypeAsum:
		return ops.Asum[B](count, x, &scalar, ctx)
	case backends.OpTypeAxpy:
		return ops.Axpy[B](count, 2, x, ret, ctx)
	case backends.OpTypeScale:
		return ops.Scale[B](count, 2, ret, ctx)
	case backends.OpTypeDot:
		return ops.Dot[B](count, x, y, &scalar, ctx)
	case backends.OpTypeMatVec:
		return ops.MatVec[B](false, 2, 2, 1, x, y, 0, ret, ctx)
	case backends.OpTypeMatMat:
		return ops.MatMat[B](false, false, 2, 2, 2, 1, x, y, 0, ret, ctx)
	case backends.OpTypeUniform:
		return ops.Uniform[B](count, 0, 1, ret, ctx)
	case backends.OpTypeGaussian:
		return ops.Gaussian[B](count, 0, 1, ret, ctx)
	case backends.OpTypeBernoulli:
		return ops.Bernoulli[B](count, 0.5, ret, ctx)
	case backends.OpTypeBernoulliPerElement:
		return ops.BernoulliPerElement[B](count, Buffer[T](0, 0.25, 0.5, 1), ret, ctx)
	case backends.OpTypeConv2D:
		// 1 channel 2x2 input, 1 kernel 1x1.
		return ops.Conv2D[B](1, 2, 2, 1, 1, 1, x, y, ret, &configs.Conv2D{Stride: 1}, ctx)
	}
	return errors.Errorf("backendtest.CallOp: unknown operation %s", op)
}
