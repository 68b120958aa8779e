package ops_test

import (
	"math"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/notimplemented"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// calls counts how many times the fake backend was reached.
var calls int

// fake implements only Abs, Sum and Conv2D (as a no-op), for float64.
type fake struct {
	notimplemented.Ops[float64]
}

func (fake) Name() string { return "fake" }

func (fake) Capabilities() backends.Capabilities {
	return backends.Capabilities{
		Operations: map[backends.OpType]bool{backends.OpTypeAbs: true, backends.OpTypeSum: true},
		DTypes:     map[dtypes.DType]bool{dtypes.Float64: true},
	}
}

func (fake) Abs(count int, input, ret *backends.Buffer[float64], _ *backends.Context) error {
	calls++
	for ii, v := range input.Flat()[:count] {
		ret.Flat()[ii] = math.Abs(v)
	}
	return nil
}

func (fake) Sum(count int, input *backends.Buffer[float64], ret *float64, _ *backends.Context) error {
	calls++
	*ret = 0
	for _, v := range input.Flat()[:count] {
		*ret += v
	}
	return nil
}

func (fake) Conv2D(c, h, w, numKernels, kh, kw int, input, kernel, ret *backends.Buffer[float64],
	conf backends.OpConfig, ctx *backends.Context) error {
	calls++
	return nil
}

func TestDispatch(t *testing.T) {
	ctx := backends.NewContext(backends.WithSeed(0))
	x := backends.BufferFrom([]float64{-1, 2, -3})
	require.NoError(t, ops.Abs[fake](x.Len(), x, x, ctx))
	assert.Equal(t, []float64{1, 2, 3}, x.Flat())

	var sum float64
	require.NoError(t, ops.Sum[fake](3, x, &sum, ctx))
	assert.Equal(t, 6.0, sum)

	// Missing specialization.
	err := ops.Exp[fake](3, x, x, ctx)
	require.Error(t, err)
	assert.True(t, backends.IsNotImplemented(err))
	assert.Contains(t, err.Error(), `backend "fake"`)
	assert.Contains(t, err.Error(), "Exp")
	assert.Equal(t, []float64{1, 2, 3}, x.Flat())

	// Count 0 still dispatches.
	err = ops.Exp[fake, float64](0, nil, nil, ctx)
	assert.ErrorIs(t, err, backends.ErrNotImplemented)

	// Must.
	err = exceptions.TryCatch[error](func() { ops.Must(ops.Log[fake](3, x, x, ctx)) })
	assert.ErrorIs(t, err, backends.ErrNotImplemented)
	assert.NotPanics(t, func() { ops.Must(ops.Abs[fake](3, x, x, ctx)) })
}

func TestPreconditions(t *testing.T) {
	ctx := backends.NewContext(backends.WithSeed(0))
	short := backends.BufferFrom([]float64{1, 2})
	long := backends.BufferFrom([]float64{1, 2, 3, 4})
	calls = 0

	testCases := []struct {
		name string
		err  error
	}{
		{"negative count", ops.Abs[fake](-1, long, long, ctx)},
		{"short input", ops.Abs[fake](3, short, long, ctx)},
		{"short ret", ops.Abs[fake](3, long, short, ctx)},
		{"nil input", ops.Abs[fake](1, nil, long, ctx)},
		{"nil scalar", ops.Sum[fake](1, long, nil, ctx)},
		{"binary rhs", ops.Add[fake](3, long, short, long, ctx)},
		{"outer ret", ops.Outer[fake](2, 2, short, short, short, ctx)},
		{"sumRows ret", ops.SumRows[fake](1, 4, long, short, ctx)},
		{"sumColumns input", ops.SumColumns[fake](2, 3, long, long, ctx)},
		{"addRow v", ops.AddRow[fake](1, 4, long, short, long, ctx)},
		{"addColumn v", ops.AddColumn[fake](4, 1, long, short, long, ctx)},
		{"amax ret", ops.Amax[fake](2, short, nil, ctx)},
		{"matVec x", ops.MatVec[fake](false, 1, 4, 1, long, short, 0, long, ctx)},
		{"matVec trans x", ops.MatVec[fake](true, 4, 1, 1, long, short, 0, long, ctx)},
		{"matMat b", ops.MatMat[fake](false, false, 2, 2, 2, 1, long, short, 0, long, ctx)},
		{"uniform range", ops.Uniform[fake](2, 1, 0, short, ctx)},
		{"uniform NaN", ops.Uniform[fake](2, math.NaN(), 1, short, ctx)},
		{"gaussian std", ops.Gaussian[fake](2, 0, -1, short, ctx)},
		{"bernoulli p>1", ops.Bernoulli[fake](2, 1.5, short, ctx)},
		{"bernoulli p<0", ops.Bernoulli[fake](2, -0.1, short, ctx)},
		{"bernoulli NaN", ops.Bernoulli[fake](2, math.NaN(), short, ctx)},
		{"bernoulli per element", ops.BernoulliPerElement[fake](2, backends.BufferFrom([]float64{0.5, 2}), short, ctx)},
		{"conv zero dim", ops.Conv2D[fake](0, 2, 2, 1, 1, 1, long, long, long, nil, ctx)},
		{"conv kernel too large", ops.Conv2D[fake](1, 2, 2, 1, 3, 3, long, long, long, nil, ctx)},
		{"conv short ret", ops.Conv2D[fake](1, 2, 2, 2, 1, 1, long, short, short, nil, ctx)},
		{"conv bad config", ops.Conv2D[fake](1, 2, 2, 1, 1, 1, long, long, long, &configs.Conv2D{Padding: -1}, ctx)},
		{"reduceSum axis", ops.ReduceSum[fake](ops.Axis(7), 1, 1, long, long, ctx)},
		{"addVector axis", ops.AddVector[fake](ops.Axis(7), 1, 1, long, long, long, ctx)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			assert.Truef(t, backends.IsPrecondition(tc.err), "expected a precondition error, got %v", tc.err)
		})
	}
	assert.Equal(t, 0, calls, "backend must not be called when a precondition fails")
	assert.Equal(t, []float64{1, 2}, short.Flat())
	assert.Equal(t, []float64{1, 2, 3, 4}, long.Flat())
}

func TestConv2DDispatch(t *testing.T) {
	ctx := backends.NewContext(backends.WithSeed(0))
	buf := backends.NewBuffer[float64](16)
	calls = 0
	// 4x4 input, 3x3 kernel, padding 1, stride 2: output is 2x2.
	conf := &configs.Conv2D{Stride: 2, Padding: 1}
	require.NoError(t, ops.Conv2D[fake](1, 4, 4, 1, 3, 3, buf, buf, backends.NewBuffer[float64](4), conf, ctx))
	require.NoError(t, ops.Conv2D[fake](1, 4, 4, 1, 3, 3, buf, buf, backends.NewBuffer[float64](4), nil, ctx))
	assert.Equal(t, 2, calls)
}

func TestCapabilities(t *testing.T) {
	assert.Equal(t, "fake", ops.BackendName[fake, float64]())
	assert.True(t, ops.Supports[fake, float64](backends.OpTypeAbs))
	assert.False(t, ops.Supports[fake, float64](backends.OpTypeExp))

	require.NoError(t, ops.CheckCapabilities[fake, float64](backends.OpTypeAbs, backends.OpTypeSum))
	err := ops.CheckCapabilities[fake, float64](backends.OpTypeAbs, backends.OpTypeMatMat, backends.OpTypeDot)
	require.ErrorIs(t, err, backends.ErrNotImplemented)
	assert.Contains(t, err.Error(), "MatMat")
	assert.Contains(t, err.Error(), "Dot")
	assert.NotContains(t, err.Error(), "Abs")
}

func TestAxis(t *testing.T) {
	ctx := backends.NewContext(backends.WithSeed(0))
	m := backends.BufferFrom([]float64{1, 2, 3, 4, 5, 6})
	ret := backends.NewBuffer[float64](3)
	// fake doesn't implement the reductions: the axis selects the operation reported.
	err := ops.ReduceSum[fake](ops.Rows, 2, 3, m, ret, ctx)
	require.ErrorIs(t, err, backends.ErrNotImplemented)
	assert.Contains(t, err.Error(), "SumRows")
	err = ops.AddVector[fake](ops.Columns, 2, 3, m, ret, m, ctx)
	require.ErrorIs(t, err, backends.ErrNotImplemented)
	assert.Contains(t, err.Error(), "AddColumn")
	assert.Equal(t, "Rows", ops.Rows.String())
	assert.Equal(t, "Columns", ops.Columns.String())
}
