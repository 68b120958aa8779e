package backendtest

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unaryOp is the signature shared by the elementwise unary operations, once their scalar parameters are bound.
type unaryOp[T dtypes.GoFloat] func(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error

// unaryCase describes the test of one elementwise unary operation.
type unaryCase[T dtypes.GoFloat] struct {
	call      unaryOp[T]
	reference func(x float64) float64
	inputs    []float64
}

func unaryCases[B backends.Ops[T], T dtypes.GoFloat]() map[backends.OpType]unaryCase[T] {
	mixed := []float64{-3, -1.5, -0.25, 0, 0.5, 1, 2.75, 10}
	positive := []float64{0.001, 0.25, 0.5, 1, 2, 3.5, 100, 1e4}
	return map[backends.OpType]unaryCase[T]{
		backends.OpTypeAbs:  {ops.Abs[B, T], math.Abs, mixed},
		backends.OpTypeSign: {ops.Sign[B, T], sign, mixed},
		backends.OpTypeExp:  {ops.Exp[B, T], math.Exp, mixed},
		backends.OpTypeLog:  {ops.Log[B, T], math.Log, positive},
		backends.OpTypeSqrt: {ops.Sqrt[B, T], math.Sqrt, positive},
		backends.OpTypeTanh: {ops.Tanh[B, T], math.Tanh, mixed},
		backends.OpTypeSigmoid: {ops.Sigmoid[B, T],
			func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }, append(mixed, -100, 100)},
		backends.OpTypePowScalar: {
			func(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
				return ops.PowScalar[B](count, 3, input, ret, ctx)
			},
			func(x float64) float64 { return math.Pow(x, 3) }, mixed},
		backends.OpTypeClamp: {
			func(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
				return ops.Clamp[B](count, -1, 2, input, ret, ctx)
			},
			func(x float64) float64 { return math.Min(math.Max(x, -1), 2) }, mixed},
		backends.OpTypeAddScalar: {
			func(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
				return ops.AddScalar[B](count, 1.5, input, ret, ctx)
			},
			func(x float64) float64 { return x + 1.5 }, mixed},
		backends.OpTypeMultScalar: {
			func(count int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
				return ops.MultScalar[B](count, -2, input, ret, ctx)
			},
			func(x float64) float64 { return x * -2 }, mixed},
	}
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// unaryTests checks for every unary operation f that output[i] == f(input[i]), that count 0 touches nothing,
// that elements past count are left untouched, and that the operation can be done in place.
func unaryTests[B backends.Ops[T], T dtypes.GoFloat]() map[backends.OpType]TestFn {
	tests := make(map[backends.OpType]TestFn)
	for op, tc := range unaryCases[B, T]() {
		tests[op] = func(t *testing.T, ctx *backends.Context) {
			input := Buffer[T](tc.inputs...)
			count := input.Len()
			want := make([]T, count)
			for ii, x := range input.Flat() {
				want[ii] = T(tc.reference(float64(x)))
			}

			ret := backends.NewBuffer[T](count)
			require.NoError(t, tc.call(count, input, ret, ctx))
			AssertClose(t, want, ret.Flat(), op)

			// Count 0 accepts nil buffers, and doesn't write anything.
			require.NoError(t, tc.call(0, nil, nil, ctx))
			untouched := Buffer[T](7, 7)
			require.NoError(t, tc.call(0, input, untouched, ctx))
			assert.Equal(t, Convert[T]([]float64{7, 7}), untouched.Flat())

			// Elements past count are not written.
			partial := Buffer[T](7, 7, 7, 7)
			require.NoError(t, tc.call(2, input, partial, ctx))
			AssertClose(t, want[:2], partial.Flat()[:2])
			assert.Equal(t, Convert[T]([]float64{7, 7}), partial.Flat()[2:])

			// In place.
			inPlace := clone(input)
			require.NoError(t, tc.call(count, inPlace, inPlace, ctx))
			AssertClose(t, want, inPlace.Flat(), "in place")
		}
	}
	return tests
}

func testSum[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	var sum T
	require.NoError(t, ops.Sum[B](5, Sequence[T](5, 1, 1), &sum, ctx))
	assert.InDelta(t, 15.0, float64(sum), Tolerance[T]())

	sum = 3
	require.NoError(t, ops.Sum[B, T](0, nil, &sum, ctx))
	assert.Equal(t, T(0), sum)
}

// binaryInputs returns two buffers of the same length, with mixed signs.
func binaryInputs[T dtypes.GoFloat]() (lhs, rhs *backends.Buffer[T]) {
	return Buffer[T](1, -2, 3.5, 0, -0.5, 8, 100, -7), Buffer[T](2, 4, -1, 3, -0.25, 0.5, 1e-3, -7)
}

// checkBinary compares the operation with the reference, and checks count 0 and the in place version.
func checkBinary[T dtypes.GoFloat](t *testing.T, ctx *backends.Context,
	call func(count int, lhs, rhs, ret *backends.Buffer[T], ctx *backends.Context) error,
	lhs, rhs *backends.Buffer[T], reference func(x, y float64) float64) []T {
	count := lhs.Len()
	want := make([]T, count)
	for ii := range count {
		want[ii] = T(reference(float64(lhs.Flat()[ii]), float64(rhs.Flat()[ii])))
	}
	ret := backends.NewBuffer[T](count)
	require.NoError(t, call(count, lhs, rhs, ret, ctx))
	AssertClose(t, want, ret.Flat())

	require.NoError(t, call(0, nil, nil, nil, ctx))

	inPlace := clone(lhs)
	require.NoError(t, call(count, inPlace, rhs, inPlace, ctx))
	AssertClose(t, want, inPlace.Flat(), "in place")
	return ret.Flat()
}

func testAdd[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	lhs, rhs := binaryInputs[T]()
	ab := checkBinary(t, ctx, ops.Add[B, T], lhs, rhs, func(x, y float64) float64 { return x + y })
	ba := checkBinary(t, ctx, ops.Add[B, T], rhs, lhs, func(x, y float64) float64 { return x + y })
	assert.Equal(t, ab, ba, "Add must be commutative")
}

func testMult[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	lhs, rhs := binaryInputs[T]()
	ab := checkBinary(t, ctx, ops.Mult[B, T], lhs, rhs, func(x, y float64) float64 { return x * y })
	ba := checkBinary(t, ctx, ops.Mult[B, T], rhs, lhs, func(x, y float64) float64 { return x * y })
	assert.Equal(t, ab, ba, "Mult must be commutative")
}

func testSub[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	lhs, rhs := binaryInputs[T]()
	ab := checkBinary(t, ctx, ops.Sub[B, T], lhs, rhs, func(x, y float64) float64 { return x - y })
	ba := checkBinary(t, ctx, ops.Sub[B, T], rhs, lhs, func(x, y float64) float64 { return x - y })
	for ii := range ab {
		assert.Equalf(t, ab[ii], -ba[ii], "Sub(a,b) must be -Sub(b,a), element #%d", ii)
	}
}

func testDiv[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	lhs, rhs := binaryInputs[T]()
	checkBinary(t, ctx, ops.Div[B, T], lhs, rhs, func(x, y float64) float64 { return x / y })

	// Division by zero follows IEEE-754.
	ret := backends.NewBuffer[T](3)
	require.NoError(t, ops.Div[B](3, Buffer[T](1, -1, 0), Buffer[T](0, 0, 0), ret, ctx))
	assert.True(t, math.IsInf(float64(ret.Flat()[0]), 1))
	assert.True(t, math.IsInf(float64(ret.Flat()[1]), -1))
	assert.True(t, math.IsNaN(float64(ret.Flat()[2])))
}

func testPow[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	lhs, rhs := Buffer[T](2, 3, 0.5, 4, 10, 1), Buffer[T](3, -1, 2, 0.5, 0, 7)
	checkBinary(t, ctx, ops.Pow[B, T], lhs, rhs, math.Pow)
}
