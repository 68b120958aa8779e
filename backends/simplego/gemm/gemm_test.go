package gemm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasic(t *testing.T) {
	// a is 2x3, b is 3x2.
	a := []float32{1, 2, 3, 4, 5, 6}
	b := []float32{7, 8, 9, 10, 11, 12}
	c := make([]float32, 4)
	Basic(NoTrans, NoTrans, a, b, 2, 2, 3, c, 0, 2)
	assert.Equal(t, []float32{58, 64, 139, 154}, c)

	// Same product with both operands stored transposed.
	aT := []float64{1, 4, 2, 5, 3, 6}
	bT := []float64{7, 9, 11, 8, 10, 12}
	c64 := make([]float64, 4)
	Basic(Transposed, Transposed, aT, bT, 2, 2, 3, c64, 0, 1)
	Basic(Transposed, Transposed, aT, bT, 2, 2, 3, c64, 1, 2)
	assert.Equal(t, []float64{58, 64, 139, 154}, c64)

	// Contraction size that exercises the unrolled loop: (1x5) * (5x1).
	c = make([]float32, 1)
	Basic(NoTrans, NoTrans, []float32{1, 1, 1, 1, 1}, []float32{1, 2, 3, 4, 5}, 1, 1, 5, c, 0, 1)
	assert.Equal(t, []float32{15}, c)
}
