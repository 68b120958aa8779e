package notimplemented

import (
	"strings"
	"testing"

	"github.com/gomlx/mathcore/backends"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOps(t *testing.T) {
	var ops Ops[float32]
	ctx := backends.NewContext(backends.WithSeed(1))
	buf := backends.NewBuffer[float32](3)

	assert.Equal(t, BackendName, ops.Name())
	assert.Empty(t, ops.Capabilities().SupportedOps())

	err := ops.Abs(3, buf, buf, ctx)
	require.Error(t, err)
	assert.True(t, backends.IsNotImplemented(err))
	assert.Contains(t, err.Error(), "Abs")
	assert.Contains(t, strings.ToLower(err.Error()), "float32")

	var sum float32
	err = ops.Sum(0, buf, &sum, ctx)
	require.ErrorIs(t, err, backends.ErrNotImplemented)

	err = Ops[float64]{}.MatMat(false, false, 1, 1, 1, 1, nil, nil, 0, nil, ctx)
	require.ErrorIs(t, err, backends.ErrNotImplemented)
	assert.Contains(t, err.Error(), "MatMat")
	assert.Contains(t, strings.ToLower(err.Error()), "float64")
}

// partial overrides one operation, and inherits the others.
type partial struct {
	Ops[float32]
}

func (partial) Name() string { return "partial" }

func (partial) Scale(count int, x float32, ret *backends.Buffer[float32], ctx *backends.Context) error {
	flat := ret.Flat()
	for ii := range count {
		flat[ii] *= x
	}
	return nil
}

func TestEmbedding(t *testing.T) {
	var b backends.Ops[float32] = partial{}
	ctx := backends.NewContext()
	buf := backends.BufferFrom([]float32{1, 2})
	require.NoError(t, b.Scale(2, 3, buf, ctx))
	assert.Equal(t, []float32{3, 6}, buf.Flat())
	assert.ErrorIs(t, b.Axpy(2, 1, buf, buf, ctx), backends.ErrNotImplemented)
	assert.Equal(t, []float32{3, 6}, buf.Flat(), "an unimplemented operation must not touch its output")
}
