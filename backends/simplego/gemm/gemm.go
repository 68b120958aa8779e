// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package gemm implements a basic general matrix multiplication in pure Go, used by the simplego backend.
package gemm

import "github.com/gomlx/gopjrt/dtypes"

// Layout of a row-major matrix operand: Transposed means the operand is stored transposed, that is, an
// m x k operand is stored as k x m.
type Layout bool

const (
	NoTrans    Layout = false
	Transposed Layout = true
)

// Basic sets the rows [rowStart, rowEnd) of the m x n matrix c to op(a) * op(b), where op(a) is m x k and
// op(b) is k x n. a, b and c are row-major, and c must not overlap a or b.
//
// Splitting the rows allows the caller to parallelize the work.
func Basic[T dtypes.GoFloat](aLayout, bLayout Layout, a, b []T, m, n, k int, c []T, rowStart, rowEnd int) {
	// Strides of op(a)[row, p] and op(b)[p, col].
	aRowStride, aColStride := k, 1
	if aLayout == Transposed {
		aRowStride, aColStride = 1, m
	}
	bRowStride, bColStride := n, 1
	if bLayout == Transposed {
		bRowStride, bColStride = 1, k
	}

	for row := rowStart; row < rowEnd; row++ {
		aRowStart := row * aRowStride
		cRow := c[row*n : (row+1)*n]
		for col := range n {
			bColStart := col * bColStride
			var sum T

			// Unrolled loop with strided access.
			p := 0
			for ; p+3 < k; p += 4 {
				sum += a[aRowStart+p*aColStride]*b[bColStart+p*bRowStride] +
					a[aRowStart+(p+1)*aColStride]*b[bColStart+(p+1)*bRowStride] +
					a[aRowStart+(p+2)*aColStride]*b[bColStart+(p+2)*bRowStride] +
					a[aRowStart+(p+3)*aColStride]*b[bColStart+(p+3)*bRowStride]
			}
			for ; p < k; p++ {
				sum += a[aRowStart+p*aColStride] * b[bColStart+p*bRowStride]
			}
			cRow[col] = sum
		}
	}
}
