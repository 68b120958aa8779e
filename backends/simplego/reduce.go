package simplego

import (
	"github.com/gomlx/mathcore/backends"
)

// SumRows implements backends.Ops.
func (Backend[T]) SumRows(nrow, ncol int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	if ncol == 0 {
		return nil
	}
	scratch := getScratch[T](ncol)
	defer putScratch(scratch)
	sums := *scratch
	clear(sums)
	inputs := input.Flat()
	// Each goroutine owns a range of columns.
	ctx.Pool().ParallelFor(ncol, max(1, minParallelChunk/max(nrow, 1)), func(start, end int) {
		for row := range nrow {
			inputRow := inputs[row*ncol : (row+1)*ncol]
			for col := start; col < end; col++ {
				sums[col] += inputRow[col]
			}
		}
	})
	copy(ret.Flat()[:ncol], sums)
	return nil
}

// SumColumns implements backends.Ops.
func (Backend[T]) SumColumns(nrow, ncol int, input, ret *backends.Buffer[T], ctx *backends.Context) error {
	if nrow == 0 {
		return nil
	}
	scratch := getScratch[T](nrow)
	defer putScratch(scratch)
	sums := *scratch
	inputs := input.Flat()
	ctx.Pool().ParallelFor(nrow, max(1, minParallelChunk/max(ncol, 1)), func(start, end int) {
		for row := start; row < end; row++ {
			var sum T
			for _, v := range inputs[row*ncol : (row+1)*ncol] {
				sum += v
			}
			sums[row] = sum
		}
	})
	copy(ret.Flat()[:nrow], sums)
	return nil
}

// AddRow implements backends.Ops.
func (Backend[T]) AddRow(nrow, ncol int, a, v, ret *backends.Buffer[T], ctx *backends.Context) error {
	if nrow == 0 || ncol == 0 {
		return nil
	}
	// v is read for every row, and ret may overlap it.
	scratch := getScratch[T](ncol)
	defer putScratch(scratch)
	row := *scratch
	copy(row, v.Flat()[:ncol])
	inputs, outputs := a.Flat(), ret.Flat()
	ctx.Pool().ParallelFor(nrow, max(1, minParallelChunk/ncol), func(start, end int) {
		for rowIdx := start; rowIdx < end; rowIdx++ {
			base := rowIdx * ncol
			for col, x := range row {
				outputs[base+col] = inputs[base+col] + x
			}
		}
	})
	return nil
}

// AddColumn implements backends.Ops.
func (Backend[T]) AddColumn(nrow, ncol int, a, v, ret *backends.Buffer[T], ctx *backends.Context) error {
	if nrow == 0 || ncol == 0 {
		return nil
	}
	scratch := getScratch[T](nrow)
	defer putScratch(scratch)
	column := *scratch
	copy(column, v.Flat()[:nrow])
	inputs, outputs := a.Flat(), ret.Flat()
	ctx.Pool().ParallelFor(nrow, max(1, minParallelChunk/ncol), func(start, end int) {
		for rowIdx := start; rowIdx < end; rowIdx++ {
			x := column[rowIdx]
			base := rowIdx * ncol
			for col := range ncol {
				outputs[base+col] = inputs[base+col] + x
			}
		}
	})
	return nil
}
