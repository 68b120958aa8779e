package configs_test

import (
	"encoding/json"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/mathcore/backends"
	. "github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tiledConv is a backend specific convolution configuration.
type tiledConv struct {
	Conv2D
	TileSize int `json:"tile_size"`
}

func (*tiledConv) OpConfigType() string { return "test.tiledConv" }

// workspace is an unrelated configuration.
type workspace struct {
	Bytes int `json:"bytes"`
}

func (*workspace) OpConfigType() string { return "test.workspace" }

func init() {
	Register(func() *tiledConv { return &tiledConv{} })
	Register(func() *workspace { return &workspace{} })
}

func TestAs(t *testing.T) {
	var conf OpConfig = &tiledConv{Conv2D: Conv2D{Stride: 2, Padding: 1}, TileSize: 8}

	tiled, err := As[*tiledConv](conf)
	require.NoError(t, err)
	assert.Equal(t, 8, tiled.TileSize)
	assert.Equal(t, 2, tiled.Stride)

	geometry, err := As[ConvGeometry](conf)
	require.NoError(t, err)
	assert.Equal(t, Conv2D{Stride: 2, Padding: 1}, geometry.ConvGeometry())

	_, err = As[*workspace](conf)
	require.Error(t, err)
	assert.True(t, backends.IsPrecondition(err))
	assert.Contains(t, err.Error(), "test.tiledConv")

	_, err = As[*tiledConv](nil)
	require.ErrorIs(t, err, backends.ErrPrecondition)

	assert.True(t, Is[ConvGeometry](conf))
	assert.False(t, Is[*workspace](conf))
	assert.False(t, Is[*workspace](nil))
}

func TestAsNilPointer(t *testing.T) {
	var conf OpConfig = (*tiledConv)(nil)
	_, err := As[*tiledConv](conf)
	require.ErrorIs(t, err, backends.ErrPrecondition)
	_, err = As[ConvGeometry](conf)
	require.ErrorIs(t, err, backends.ErrPrecondition)
	assert.False(t, Is[ConvGeometry](conf))

	// The promoted ConvGeometry method would dereference the nil embedded Conv2D.
	require.NotPanics(t, func() {
		_, err = GeometryOf(conf)
	})
	require.ErrorIs(t, err, backends.ErrPrecondition)
	assert.Contains(t, err.Error(), "nil configuration")

	err = exceptions.TryCatch[error](func() { _ = MustAs[*tiledConv](conf) })
	require.Error(t, err)
}

func TestMustAs(t *testing.T) {
	var conf OpConfig = &workspace{Bytes: 10}
	assert.Equal(t, 10, MustAs[*workspace](conf).Bytes)
	err := exceptions.TryCatch[error](func() { _ = MustAs[ConvGeometry](conf) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precondition violated")
}

func TestConv2DGeometry(t *testing.T) {
	geometry, err := GeometryOf(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConv2D, geometry)

	geometry, err = GeometryOf(&Conv2D{Padding: 1})
	require.NoError(t, err)
	assert.Equal(t, Conv2D{Stride: 1, Padding: 1}, geometry)

	_, err = GeometryOf(&workspace{})
	require.ErrorIs(t, err, backends.ErrPrecondition)

	_, err = GeometryOf(&Conv2D{Stride: -1})
	require.ErrorIs(t, err, backends.ErrPrecondition)
	assert.Contains(t, err.Error(), ">= 0 (0 means 1)")

	outH, outW, err := Conv2D{Stride: 1}.OutputSize(5, 4, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, []int{outH, outW})

	outH, outW, err = Conv2D{Stride: 2, Padding: 1}.OutputSize(5, 5, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, []int{outH, outW})

	_, _, err = Conv2D{}.OutputSize(2, 2, 3, 3)
	require.ErrorIs(t, err, backends.ErrPrecondition)
}

func TestJSON(t *testing.T) {
	original := &tiledConv{Conv2D: Conv2D{Stride: 2}, TileSize: 16}
	data, err := Marshal(original)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"config_type":"test.tiledConv"`)

	conf, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, original, conf)

	conf, err = Unmarshal([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, conf)

	_, err = Unmarshal([]byte(`{"config_type": "unknown"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")

	assert.Contains(t, RegisteredTypes(), Conv2DConfigType)
	assert.Panics(t, func() { Register(func() *Conv2D { return &Conv2D{} }) })
}

func TestWrapper(t *testing.T) {
	type job struct {
		Name string  `json:"name"`
		Conv Wrapper `json:"conv"`
	}
	original := job{Name: "edges", Conv: Wrap(&Conv2D{Stride: 1, Padding: 2})}
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var loaded job
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, "edges", loaded.Name)
	geometry, err := GeometryOf(loaded.Conv.Value)
	require.NoError(t, err)
	assert.Equal(t, Conv2D{Stride: 1, Padding: 2}, geometry)
}
