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

func testOuter[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	const m, n = 3, 4
	lhs, rhs := Buffer[T](1, -2, 0.5), Buffer[T](2, 3, -1, 4)
	ret := backends.NewBuffer[T](m * n)
	require.NoError(t, ops.Outer[B](m, n, lhs, rhs, ret, ctx))
	want := make([]T, 0, m*n)
	for _, x := range lhs.Flat() {
		for _, y := range rhs.Flat() {
			want = append(want, x*y)
		}
	}
	AssertClose(t, want, ret.Flat())

	// ret may be one of the inputs.
	inPlace := Buffer[T](1, -2, 0.5, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	require.NoError(t, ops.Outer[B](m, n, inPlace, rhs, inPlace, ctx))
	AssertClose(t, want, inPlace.Flat(), "in place")

	// Round trip: the rows of the outer product sum to lhs[i]*Σrhs, and the columns to Σlhs*rhs[j].
	if !ops.Supports[B, T](backends.OpTypeSumRows) || !ops.Supports[B, T](backends.OpTypeSumColumns) {
		return
	}
	rowSums := backends.NewBuffer[T](m)
	require.NoError(t, ops.SumColumns[B](m, n, ret, rowSums, ctx))
	colSums := backends.NewBuffer[T](n)
	require.NoError(t, ops.SumRows[B](m, n, ret, colSums, ctx))
	var sumLHS, sumRHS T
	for _, x := range lhs.Flat() {
		sumLHS += x
	}
	for _, y := range rhs.Flat() {
		sumRHS += y
	}
	for ii, x := range lhs.Flat() {
		assert.InDelta(t, float64(x*sumRHS), float64(rowSums.Flat()[ii]), Tolerance[T]())
	}
	for jj, y := range rhs.Flat() {
		assert.InDelta(t, float64(sumLHS*y), float64(colSums.Flat()[jj]), Tolerance[T]())
	}
}

// matrix23 is a 2x3 row-major matrix used by the row/column tests.
func matrix23[T dtypes.GoFloat]() *backends.Buffer[T] {
	return Buffer[T](1, 2, 3, 4, 5, 6)
}

func testSumRows[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	ret := backends.NewBuffer[T](3)
	require.NoError(t, ops.SumRows[B](2, 3, matrix23[T](), ret, ctx))
	AssertClose(t, Convert[T]([]float64{5, 7, 9}), ret.Flat())

	require.NoError(t, ops.ReduceSum[B](ops.Rows, 2, 3, matrix23[T](), ret, ctx))
	AssertClose(t, Convert[T]([]float64{5, 7, 9}), ret.Flat())

	// No rows: sums are 0.
	require.NoError(t, ops.SumRows[B](0, 3, nil, ret, ctx))
	AssertClose(t, Convert[T]([]float64{0, 0, 0}), ret.Flat())

	// In place.
	m := matrix23[T]()
	require.NoError(t, ops.SumRows[B](2, 3, m, m, ctx))
	AssertClose(t, Convert[T]([]float64{5, 7, 9, 4, 5, 6}), m.Flat())
}

func testSumColumns[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	ret := backends.NewBuffer[T](2)
	require.NoError(t, ops.SumColumns[B](2, 3, matrix23[T](), ret, ctx))
	AssertClose(t, Convert[T]([]float64{6, 15}), ret.Flat())

	require.NoError(t, ops.ReduceSum[B](ops.Columns, 2, 3, matrix23[T](), ret, ctx))
	AssertClose(t, Convert[T]([]float64{6, 15}), ret.Flat())

	m := matrix23[T]()
	require.NoError(t, ops.SumColumns[B](2, 3, m, m, ctx))
	AssertClose(t, Convert[T]([]float64{6, 15, 3, 4, 5, 6}), m.Flat())
}

func testAddRow[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	ret := backends.NewBuffer[T](6)
	require.NoError(t, ops.AddRow[B](2, 3, matrix23[T](), Buffer[T](10, 20, 30), ret, ctx))
	AssertClose(t, Convert[T]([]float64{11, 22, 33, 14, 25, 36}), ret.Flat())

	// In place, through AddVector.
	m := matrix23[T]()
	require.NoError(t, ops.AddVector[B](ops.Rows, 2, 3, m, Buffer[T](-1, -2, -3), m, ctx))
	AssertClose(t, Convert[T]([]float64{0, 0, 0, 3, 3, 3}), m.Flat())
}

func testAddColumn[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	ret := backends.NewBuffer[T](6)
	require.NoError(t, ops.AddColumn[B](2, 3, matrix23[T](), Buffer[T](10, 20), ret, ctx))
	AssertClose(t, Convert[T]([]float64{11, 12, 13, 24, 25, 26}), ret.Flat())

	m := matrix23[T]()
	require.NoError(t, ops.AddVector[B](ops.Columns, 2, 3, m, Buffer[T](-1, -4), m, ctx))
	AssertClose(t, Convert[T]([]float64{0, 1, 2, 0, 1, 2}), m.Flat())
}

func testAmax[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	var index int
	require.NoError(t, ops.Amax[B](5, Buffer[T](1, -7, 9, 3, 2), &index, ctx))
	assert.Equal(t, 2, index)

	// Ties are resolved by the lowest index.
	require.NoError(t, ops.Amax[B](6, Buffer[T](1, 9, 3, 9, 2, 9), &index, ctx))
	assert.Equal(t, 1, index)

	// It's the max value, not the max absolute value.
	require.NoError(t, ops.Amax[B](3, Buffer[T](1, -100, 2), &index, ctx))
	assert.Equal(t, 2, index)

	// Longer than any SIMD register.
	long := Sequence[T](100, 0, 1)
	long.Flat()[37] = 1000
	long.Flat()[80] = 1000
	require.NoError(t, ops.Amax[B](long.Len(), long, &index, ctx))
	assert.Equal(t, 37, index)

	require.NoError(t, ops.Amax[B, T](0, nil, &index, ctx))
	assert.Equal(t, -1, index)
}

func testAmin[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	var index int
	require.NoError(t, ops.Amin[B](5, Buffer[T](1, -7, 9, 3, 2), &index, ctx))
	assert.Equal(t, 1, index)

	require.NoError(t, ops.Amin[B](5, Buffer[T](4, 0, 3, 0, 0), &index, ctx))
	assert.Equal(t, 1, index)

	long := Sequence[T](100, 0, 1)
	long.Flat()[51] = -5
	long.Flat()[99] = -5
	require.NoError(t, ops.Amin[B](long.Len(), long, &index, ctx))
	assert.Equal(t, 51, index)

	require.NoError(t, ops.Amin[B, T](0, nil, &index, ctx))
	assert.Equal(t, -1, index)
}

func testAsum[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	var sum T
	require.NoError(t, ops.Asum[B](4, Buffer[T](1, -2, 3, -4), &sum, ctx))
	assert.InDelta(t, 10.0, float64(sum), Tolerance[T]())

	require.NoError(t, ops.Asum[B, T](0, nil, &sum, ctx))
	assert.Equal(t, T(0), sum)
}

func testAxpy[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	x, y := binaryInputs[T]()
	count := x.Len()

	// alpha = 0 leaves ret unchanged.
	ret := clone(y)
	require.NoError(t, ops.Axpy[B](count, 0, x, ret, ctx))
	assert.Equal(t, y.Flat(), ret.Flat())

	require.NoError(t, ops.Axpy[B](count, 2, x, ret, ctx))
	want := make([]T, count)
	for ii := range want {
		want[ii] = 2*x.Flat()[ii] + y.Flat()[ii]
	}
	AssertClose(t, want, ret.Flat())

	// ret == x: ret = (alpha+1) * x.
	inPlace := clone(x)
	require.NoError(t, ops.Axpy[B](count, 1, inPlace, inPlace, ctx))
	for ii := range want {
		want[ii] = 2 * x.Flat()[ii]
	}
	AssertClose(t, want, inPlace.Flat(), "in place")

	require.NoError(t, ops.Axpy[B, T](0, 1, nil, nil, ctx))
}

func testScale[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	x, _ := binaryInputs[T]()
	count := x.Len()
	ret := clone(x)
	require.NoError(t, ops.Scale[B](count, 1, ret, ctx))
	assert.Equal(t, x.Flat(), ret.Flat(), "Scale(1) must leave ret unchanged")

	require.NoError(t, ops.Scale[B](count, -0.5, ret, ctx))
	want := make([]T, count)
	for ii := range want {
		want[ii] = -0.5 * x.Flat()[ii]
	}
	AssertClose(t, want, ret.Flat())

	require.NoError(t, ops.Scale[B](count, 0, ret, ctx))
	for ii, v := range ret.Flat() {
		assert.Equalf(t, 0.0, math.Abs(float64(v)), "Scale(0) must zero element #%d", ii)
	}

	// Scale(0) zeroes infinities and NaNs too, and nothing past count.
	special := Buffer[T](1, math.Inf(1), math.NaN(), math.Inf(-1), 7)
	require.NoError(t, ops.Scale[B](4, 0, special, ctx))
	assert.Equal(t, Convert[T]([]float64{0, 0, 0, 0, 7}), special.Flat())
}

func testDot[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	var dot T
	require.NoError(t, ops.Dot[B](3, Buffer[T](1, 2, 3), Buffer[T](4, -5, 6), &dot, ctx))
	assert.InDelta(t, 12.0, float64(dot), Tolerance[T]())

	// Longer than any SIMD register.
	x, y := Sequence[T](67, 1, 1), Sequence[T](67, 1, 0)
	require.NoError(t, ops.Dot[B](67, x, y, &dot, ctx))
	assert.InDelta(t, 67.0*68/2, float64(dot), Tolerance[T]()*67*68/2)

	require.NoError(t, ops.Dot[B, T](0, nil, nil, &dot, ctx))
	assert.Equal(t, T(0), dot)
}

// refMatVec returns alpha*op(a)*x + beta*y computed in float64.
func refMatVec[T dtypes.GoFloat](trans bool, m, n int, alpha float64, a, x []T, beta float64, y []T) []T {
	outLen, inLen := m, n
	if trans {
		outLen, inLen = n, m
	}
	out := make([]T, outLen)
	for i := range outLen {
		var sum float64
		for j := range inLen {
			var aValue T
			if trans {
				aValue = a[j*n+i]
			} else {
				aValue = a[i*n+j]
			}
			sum += float64(aValue) * float64(x[j])
		}
		out[i] = T(alpha*sum + beta*float64(y[i]))
	}
	return out
}

func testMatVec[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	const m, n = 3, 4
	a := Sequence[T](m*n, -2, 0.5)
	for _, trans := range []bool{false, true} {
		xLen, retLen := n, m
		if trans {
			xLen, retLen = m, n
		}
		x := Sequence[T](xLen, 1, -0.75)
		y := Sequence[T](retLen, 3, 1)
		ret := clone(y)
		require.NoError(t, ops.MatVec[B](trans, m, n, 2, a, x, 0.5, ret, ctx))
		AssertClose(t, refMatVec(trans, m, n, 2, a.Flat(), x.Flat(), 0.5, y.Flat()), ret.Flat(), "trans=%v", trans)

		// With beta = 0, the previous contents of ret are ignored.
		ret = backends.NewBuffer[T](retLen)
		for ii := range ret.Flat() {
			ret.Flat()[ii] = T(math.NaN())
		}
		require.NoError(t, ops.MatVec[B](trans, m, n, 1, a, x, 0, ret, ctx))
		AssertClose(t, refMatVec(trans, m, n, 1, a.Flat(), x.Flat(), 0, make([]T, retLen)), ret.Flat(),
			"trans=%v, beta=0", trans)
	}

	// ret == x, for a square matrix.
	x := Sequence[T](n, 1, 1)
	square := Sequence[T](n*n, 0, 1)
	want := refMatVec(false, n, n, 1, square.Flat(), x.Flat(), 0, x.Flat())
	require.NoError(t, ops.MatVec[B](false, n, n, 1, square, x, 0, x, ctx))
	AssertClose(t, want, x.Flat(), "in place")
}

// refMatMat returns alpha*op(a)*op(b) + beta*c computed in float64.
func refMatMat[T dtypes.GoFloat](transA, transB bool, m, n, k int, alpha float64, a, b []T, beta float64, c []T) []T {
	out := make([]T, m*n)
	for i := range m {
		for j := range n {
			var sum float64
			for p := range k {
				var aValue, bValue T
				if transA {
					aValue = a[p*m+i]
				} else {
					aValue = a[i*k+p]
				}
				if transB {
					bValue = b[j*k+p]
				} else {
					bValue = b[p*n+j]
				}
				sum += float64(aValue) * float64(bValue)
			}
			out[i*n+j] = T(alpha*sum + beta*float64(c[i*n+j]))
		}
	}
	return out
}

func testMatMat[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	for _, dims := range [][3]int{{2, 3, 4}, {1, 1, 1}, {5, 7, 3}, {17, 9, 33}} {
		m, n, k := dims[0], dims[1], dims[2]
		a := Sequence[T](m*k, -1, 0.125)
		b := Sequence[T](k*n, 0.5, -0.0625)
		for _, transA := range []bool{false, true} {
			for _, transB := range []bool{false, true} {
				c := Sequence[T](m*n, 1, 0.5)
				want := refMatMat(transA, transB, m, n, k, 1.5, a.Flat(), b.Flat(), -1, c.Flat())
				require.NoError(t, ops.MatMat[B](transA, transB, m, n, k, 1.5, a, b, -1, c, ctx))
				AssertClose(t, want, c.Flat(), "m=%d, n=%d, k=%d, transA=%v, transB=%v", m, n, k, transA, transB)
			}
		}
	}

	// beta = 0 ignores NaN in ret.
	a, b := Buffer[T](1, 2, 3, 4), Buffer[T](5, 6, 7, 8)
	c := Buffer[T](math.NaN(), math.NaN(), math.NaN(), math.NaN())
	require.NoError(t, ops.MatMat[B](false, false, 2, 2, 2, 1, a, b, 0, c, ctx))
	AssertClose(t, Convert[T]([]float64{19, 22, 43, 50}), c.Flat())

	// ret == a.
	require.NoError(t, ops.MatMat[B](false, false, 2, 2, 2, 1, a, b, 0, a, ctx))
	AssertClose(t, Convert[T]([]float64{19, 22, 43, 50}), a.Flat(), "in place")

	// k = 0: the product is zero, ret = beta*ret.
	c = Buffer[T](1, 2)
	require.NoError(t, ops.MatMat[B, T](false, false, 1, 2, 0, 1, nil, nil, 3, c, ctx))
	AssertClose(t, Convert[T]([]float64{3, 6}), c.Flat())
}
