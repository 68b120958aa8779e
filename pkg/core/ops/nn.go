package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/pkg/core/configs"
)

// Conv2D convolves input, shaped c x h x w, with numKernels kernels, shaped numKernels x c x kh x kw, and writes
// ret shaped numKernels x outH x outW.
//
// conf configures the stride and padding (see configs.Conv2D) and possibly backend specific parameters: it must
// implement configs.ConvGeometry, or be nil for stride 1 and no padding. The output dimensions are given by
// configs.Conv2D.OutputSize.
func Conv2D[B backends.Ops[T], T dtypes.GoFloat](c, h, w, numKernels, kh, kw int, input, kernel, ret *backends.Buffer[T],
	conf configs.OpConfig, ctx *backends.Context) error {
	p := check(backends.OpTypeConv2D).
		positive("c", c).positive("h", h).positive("w", w).
		positive("numKernels", numKernels).positive("kh", kh).positive("kw", kw)
	if err := p.Err(); err != nil {
		return err
	}
	geometry, err := configs.GeometryOf(conf)
	if err == nil {
		var outH, outW int
		outH, outW, err = geometry.OutputSize(h, w, kh, kw)
		if err == nil {
			bufferCheck(p, "input", input, mulDims(p, c, h, w))
			bufferCheck(p, "kernel", kernel, mulDims(p, numKernels, c, kh, kw))
			bufferCheck(p, "ret", ret, mulDims(p, numKernels, outH, outW))
			err = p.Err()
		}
	}
	if err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeConv2D, func(b B) error {
		return b.Conv2D(c, h, w, numKernels, kh, kw, input, kernel, ret, conf, ctx)
	})
}
