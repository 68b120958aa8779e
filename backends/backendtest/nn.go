package backendtest

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RefConv2D is a plain Go convolution, used as reference for the Conv2D tests of the backends.
// The input is c x h x w, the kernels numKernels x c x kh x kw, and the output numKernels x outH x outW.
func RefConv2D[T dtypes.GoFloat](c, h, w, numKernels, kh, kw int, input, kernel []T, geometry configs.Conv2D) (
	output []T, outH, outW int) {
	outH, outW, err := geometry.OutputSize(h, w, kh, kw)
	if err != nil {
		panic(err)
	}
	output = make([]T, numKernels*outH*outW)
	for k := range numKernels {
		for oy := range outH {
			for ox := range outW {
				var sum float64
				for ch := range c {
					for ky := range kh {
						for kx := range kw {
							y := oy*geometry.Stride + ky - geometry.Padding
							x := ox*geometry.Stride + kx - geometry.Padding
							if y < 0 || y >= h || x < 0 || x >= w {
								continue
							}
							sum += float64(input[(ch*h+y)*w+x]) * float64(kernel[((k*c+ch)*kh+ky)*kw+kx])
						}
					}
				}
				output[(k*outH+oy)*outW+ox] = T(sum)
			}
		}
	}
	return
}

func testConv2D[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	const c, h, w = 2, 5, 6
	const numKernels, kh, kw = 3, 3, 2
	input := Sequence[T](c*h*w, -1, 0.05)
	kernel := Sequence[T](numKernels*c*kh*kw, 0.5, -0.03)

	for _, conf := range []backends.OpConfig{
		nil,
		&configs.Conv2D{Stride: 1},
		&configs.Conv2D{Stride: 2},
		&configs.Conv2D{Stride: 1, Padding: 1},
		&configs.Conv2D{Stride: 3, Padding: 2},
	} {
		geometry, err := configs.GeometryOf(conf)
		require.NoError(t, err)
		want, _, _ := RefConv2D(c, h, w, numKernels, kh, kw, input.Flat(), kernel.Flat(), geometry)
		ret := backends.NewBuffer[T](len(want) + 2)
		ret.Flat()[len(want)] = 7
		ret.Flat()[len(want)+1] = 7
		require.NoError(t, ops.Conv2D[B](c, h, w, numKernels, kh, kw, input, kernel, ret, conf, ctx), "config %+v", conf)
		AssertClose(t, want, ret.Flat()[:len(want)], "config %+v", conf)
		assert.Equal(t, Convert[T]([]float64{7, 7}), ret.Flat()[len(want):], "elements past the output were written")
	}

	// Identity kernel: a single 1x1 kernel of weight 1 on a single channel.
	single := Sequence[T](h*w, 0, 1)
	ret := backends.NewBuffer[T](h * w)
	require.NoError(t, ops.Conv2D[B](1, h, w, 1, 1, 1, single, Buffer[T](1), ret, nil, ctx))
	assert.Equal(t, single.Flat(), ret.Flat())

	// Kernel larger than the input is a precondition error.
	err := ops.Conv2D[B](1, 2, 2, 1, 3, 3, Sequence[T](4, 0, 1), Sequence[T](9, 0, 1), ret, nil, ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, backends.ErrPrecondition)
}
