package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
)

// unaryCheck is shared by the operations reading count elements of input and writing count elements of ret.
func unaryCheck[T dtypes.GoFloat](op backends.OpType, count int, input, ret *backends.Buffer[T]) error {
	p := check(op).nonNegative("count", count)
	bufferCheck(p, "input", input, count)
	bufferCheck(p, "ret", ret, count)
	return p.Err()
}

func binaryCheck[T dtypes.GoFloat](op backends.OpType, count int, lhs, rhs, ret *backends.Buffer[T]) error {
	p := check(op).nonNegative("count", count)
	bufferCheck(p, "lhs", lhs, count)
	bufferCheck(p, "rhs", rhs, count)
	bufferCheck(p, "ret", ret, count)
	return p.Err()
}

// unary validates and dispatches one of the elementwise unary operations.
func unary[B backends.Ops[T], T dtypes.GoFloat](op backends.OpType, count int, input, ret *backends.Buffer[T],
	call func(b B) error) error {
	if err := unaryCheck(op, count, input, ret); err != nil {
		return err
	}
	return dispatch[B, T](op, call)
}

// Sum sets ret to the sum of the first count elements of input. ret is set to 0 if count is 0.
func Sum[B backends.Ops[T], T dtypes.GoFloat](count int, input *backends.Buffer[T], ret *T, ctx *backends.Context) error {
	p := check(backends.OpTypeSum).nonNegative("count", count).scalar("ret", ret == nil)
	bufferCheck(p, "input", input, count)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeSum, func(b B) error { return b.Sum(count, input, ret, ctx) })
}

// Abs sets ret[i] = |input[i]|, for i in [0, count). ret can be the same buffer as input.
func Abs[B backends.Ops[T], T dtypes.GoFloat](count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeAbs, count, input, ret,
		func(b B) error { return b.Abs(count, input, ret, ctx) })
}

// Sign sets ret[i] to -1, 0 or 1, according to the sign of input[i].
func Sign[B backends.Ops[T], T dtypes.GoFloat](count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeSign, count, input, ret,
		func(b B) error { return b.Sign(count, input, ret, ctx) })
}

// Exp sets ret[i] = e^input[i].
func Exp[B backends.Ops[T], T dtypes.GoFloat](count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeExp, count, input, ret,
		func(b B) error { return b.Exp(count, input, ret, ctx) })
}

// Log sets ret[i] = ln(input[i]).
func Log[B backends.Ops[T], T dtypes.GoFloat](count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeLog, count, input, ret,
		func(b B) error { return b.Log(count, input, ret, ctx) })
}

// Sqrt sets ret[i] = √input[i].
func Sqrt[B backends.Ops[T], T dtypes.GoFloat](count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeSqrt, count, input, ret,
		func(b B) error { return b.Sqrt(count, input, ret, ctx) })
}

// Tanh sets ret[i] = tanh(input[i]).
func Tanh[B backends.Ops[T], T dtypes.GoFloat](count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeTanh, count, input, ret,
		func(b B) error { return b.Tanh(count, input, ret, ctx) })
}

// Sigmoid sets ret[i] = 1/(1+e^-input[i]).
func Sigmoid[B backends.Ops[T], T dtypes.GoFloat](count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeSigmoid, count, input, ret,
		func(b B) error { return b.Sigmoid(count, input, ret, ctx) })
}

// PowScalar sets ret[i] = input[i]^x.
func PowScalar[B backends.Ops[T], T dtypes.GoFloat](count int, x T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypePowScalar, count, input, ret,
		func(b B) error { return b.PowScalar(count, x, input, ret, ctx) })
}

// Clamp sets ret[i] to input[i] clamped to [low, high].
//
// The result for low > high is defined by the backend.
func Clamp[B backends.Ops[T], T dtypes.GoFloat](count int, low, high T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeClamp, count, input, ret,
		func(b B) error { return b.Clamp(count, low, high, input, ret, ctx) })
}

// AddScalar sets ret[i] = input[i] + x.
func AddScalar[B backends.Ops[T], T dtypes.GoFloat](count int, x T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeAddScalar, count, input, ret,
		func(b B) error { return b.AddScalar(count, x, input, ret, ctx) })
}

// MultScalar sets ret[i] = input[i] * x.
func MultScalar[B backends.Ops[T], T dtypes.GoFloat](count int, x T, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	return unary[B, T](backends.OpTypeMultScalar, count, input, ret,
		func(b B) error { return b.MultScalar(count, x, input, ret, ctx) })
}

// Add sets ret[i] = lhs[i] + rhs[i].
func Add[B backends.Ops[T], T dtypes.GoFloat](count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	if err := binaryCheck(backends.OpTypeAdd, count, lhs, rhs, ret); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeAdd, func(b B) error { return b.Add(count, lhs, rhs, ret, ctx) })
}

// Sub sets ret[i] = lhs[i] - rhs[i].
func Sub[B backends.Ops[T], T dtypes.GoFloat](count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	if err := binaryCheck(backends.OpTypeSub, count, lhs, rhs, ret); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeSub, func(b B) error { return b.Sub(count, lhs, rhs, ret, ctx) })
}

// Mult sets ret[i] = lhs[i] * rhs[i].
func Mult[B backends.Ops[T], T dtypes.GoFloat](count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	if err := binaryCheck(backends.OpTypeMult, count, lhs, rhs, ret); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeMult, func(b B) error { return b.Mult(count, lhs, rhs, ret, ctx) })
}

// Div sets ret[i] = lhs[i] / rhs[i]. Division by zero yields ±Inf or NaN.
func Div[B backends.Ops[T], T dtypes.GoFloat](count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	if err := binaryCheck(backends.OpTypeDiv, count, lhs, rhs, ret); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeDiv, func(b B) error { return b.Div(count, lhs, rhs, ret, ctx) })
}

// Pow sets ret[i] = lhs[i]^rhs[i].
func Pow[B backends.Ops[T], T dtypes.GoFloat](count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	if err := binaryCheck(backends.OpTypePow, count, lhs, rhs, ret); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypePow, func(b B) error { return b.Pow(count, lhs, rhs, ret, ctx) })
}

// Outer sets the m x n matrix ret to the outer product of lhs (m elements) and rhs (n elements).
func Outer[B backends.Ops[T], T dtypes.GoFloat](m, n int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error {
	p := check(backends.OpTypeOuter).nonNegative("m", m).nonNegative("n", n)
	size := mulDims(p, m, n)
	bufferCheck(p, "lhs", lhs, m)
	bufferCheck(p, "rhs", rhs, n)
	bufferCheck(p, "ret", ret, size)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeOuter, func(b B) error { return b.Outer(m, n, lhs, rhs, ret, ctx) })
}
