package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/pkg/errors"
)

// Axis of a row-major nrow x ncol matrix, used by ReduceSum and AddVector.
type Axis int

const (
	// Rows is the axis of the rows: reducing it sums all rows into one row of ncol elements, and broadcasting
	// along it adds a row vector (ncol elements) to every row.
	Rows Axis = iota

	// Columns is the axis of the columns: reducing it sums each row into one element (nrow elements), and
	// broadcasting along it adds a column vector (nrow elements) to every column.
	Columns
)

// String implements fmt.Stringer.
func (axis Axis) String() string {
	switch axis {
	case Rows:
		return "Rows"
	case Columns:
		return "Columns"
	default:
		return "Axis(invalid)"
	}
}

// matrixCheck validates the nrow x ncol matrix input, and a vector of vectorLen elements.
func matrixCheck[T dtypes.GoFloat](op backends.OpType, nrow, ncol int, matrixName string, matrix *backends.Buffer[T],
	vectorName string, vector *backends.Buffer[T], vectorLen int) *preconditions {
	p := check(op).nonNegative("nrow", nrow).nonNegative("ncol", ncol)
	size := mulDims(p, nrow, ncol)
	bufferCheck(p, matrixName, matrix, size)
	bufferCheck(p, vectorName, vector, vectorLen)
	return p
}

// SumRows sums the rows of the row-major nrow x ncol matrix input: ret[j] = Σ_i input[i*ncol+j], ret has ncol
// elements.
func SumRows[B backends.Ops[T], T dtypes.GoFloat](nrow, ncol int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	if err := matrixCheck(backends.OpTypeSumRows, nrow, ncol, "input", input, "ret", ret, ncol).Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeSumRows, func(b B) error { return b.SumRows(nrow, ncol, input, ret, ctx) })
}

// SumColumns sums the columns of the row-major nrow x ncol matrix input: ret[i] = Σ_j input[i*ncol+j], ret has
// nrow elements.
func SumColumns[B backends.Ops[T], T dtypes.GoFloat](nrow, ncol int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	if err := matrixCheck(backends.OpTypeSumColumns, nrow, ncol, "input", input, "ret", ret, nrow).Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeSumColumns, func(b B) error { return b.SumColumns(nrow, ncol, input, ret, ctx) })
}

// AddRow adds the row vector v (ncol elements) to every row of the nrow x ncol matrix a, writing to ret.
// ret can be the same buffer as a.
func AddRow[B backends.Ops[T], T dtypes.GoFloat](nrow, ncol int, a, v, ret *backends.Buffer[T], ctx *backends.Context) error {
	p := matrixCheck(backends.OpTypeAddRow, nrow, ncol, "a", a, "v", v, ncol)
	bufferCheck(p, "ret", ret, nrow*ncol)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeAddRow, func(b B) error { return b.AddRow(nrow, ncol, a, v, ret, ctx) })
}

// AddColumn adds the column vector v (nrow elements) to every column of the nrow x ncol matrix a, writing to ret.
// ret can be the same buffer as a.
func AddColumn[B backends.Ops[T], T dtypes.GoFloat](nrow, ncol int, a, v, ret *backends.Buffer[T], ctx *backends.Context) error {
	p := matrixCheck(backends.OpTypeAddColumn, nrow, ncol, "a", a, "v", v, nrow)
	bufferCheck(p, "ret", ret, nrow*ncol)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeAddColumn, func(b B) error { return b.AddColumn(nrow, ncol, a, v, ret, ctx) })
}

// ReduceSum reduces away the given axis of the nrow x ncol matrix input.
// It's the same as SumRows for Rows, and SumColumns for Columns.
func ReduceSum[B backends.Ops[T], T dtypes.GoFloat](axis Axis, nrow, ncol int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	switch axis {
	case Rows:
		return SumRows[B](nrow, ncol, input, ret, ctx)
	case Columns:
		return SumColumns[B](nrow, ncol, input, ret, ctx)
	}
	return errors.Wrapf(backends.ErrPrecondition, "ops.ReduceSum: invalid axis %d", axis)
}

// AddVector broadcasts v along the given axis of the nrow x ncol matrix a and adds it, writing to ret.
// It's the same as AddRow for Rows (v has ncol elements), and AddColumn for Columns (v has nrow elements).
func AddVector[B backends.Ops[T], T dtypes.GoFloat](axis Axis, nrow, ncol int, a, v, ret *backends.Buffer[T], ctx *backends.Context) error {
	switch axis {
	case Rows:
		return AddRow[B](nrow, ncol, a, v, ret, ctx)
	case Columns:
		return AddColumn[B](nrow, ncol, a, v, ret, ctx)
	}
	return errors.Wrapf(backends.ErrPrecondition, "ops.AddVector: invalid axis %d", axis)
}
