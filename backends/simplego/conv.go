package simplego

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/simplego/gemm"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"k8s.io/klog/v2"
)

// ConvAlgorithm selects how Conv2D is computed.
type ConvAlgorithm string

const (
	// ConvDirect loops over the output positions, and accumulates the kernel applied at each of them.
	// It requires no extra memory.
	ConvDirect ConvAlgorithm = "direct"

	// ConvIm2Col copies the input patches to a (c*kh*kw) x (outH*outW) matrix, and multiplies it by the kernels.
	// It uses more memory, but benefits from the matrix multiplication kernel.
	ConvIm2Col ConvAlgorithm = "im2col"
)

// ConvConfigType is the OpConfigType of ConvConfig.
const ConvConfigType = "simplego.ConvConfig"

// ConvConfig is the configuration of Conv2D specific to simplego.
//
// Other configurations implementing configs.ConvGeometry are also accepted, and use ConvDirect.
type ConvConfig struct {
	configs.Conv2D

	// Algorithm used, defaults to ConvDirect.
	Algorithm ConvAlgorithm `json:"algorithm,omitempty"`
}

func init() {
	configs.Register(func() *ConvConfig { return &ConvConfig{} })
}

// OpConfigType implements configs.OpConfig.
func (*ConvConfig) OpConfigType() string { return ConvConfigType }

// Conv2D implements backends.Ops.
//
// It returns an error wrapping backends.ErrPrecondition for an unknown ConvConfig.Algorithm.
func (Backend[T]) Conv2D(c, h, w, numKernels, kh, kw int, input, kernel, ret *backends.Buffer[T],
	conf backends.OpConfig, ctx *backends.Context) error {
	geometry, err := configs.GeometryOf(conf)
	if err != nil {
		return err
	}
	algorithm := ConvDirect
	if simplegoConf, ok := conf.(*ConvConfig); ok && simplegoConf != nil && simplegoConf.Algorithm != "" {
		algorithm = simplegoConf.Algorithm
	}
	outH, outW, err := geometry.OutputSize(h, w, kh, kw)
	if err != nil {
		return err
	}
	p := convParams{
		c: c, h: h, w: w, numKernels: numKernels, kh: kh, kw: kw,
		outH: outH, outW: outW, stride: geometry.Stride, padding: geometry.Padding,
	}
	klog.V(2).Infof("simplego.Conv2D: %+v, algorithm=%s", p, algorithm)

	outputSize := numKernels * outH * outW
	scratch := getScratch[T](outputSize)
	defer putScratch(scratch)
	switch algorithm {
	case ConvDirect:
		convDirect(ctx, p, input.Flat(), kernel.Flat(), *scratch)
	case ConvIm2Col:
		convIm2Col(ctx, p, input.Flat(), kernel.Flat(), *scratch)
	default:
		return backends.PreconditionErrorf("simplego.Conv2D: unknown algorithm %q", algorithm)
	}
	copy(ret.Flat()[:outputSize], *scratch)
	return nil
}

// convParams holds the dimensions of a convolution.
type convParams struct {
	c, h, w         int
	numKernels      int
	kh, kw          int
	outH, outW      int
	stride, padding int
}

// convDirect computes the convolution, one output row per task.
func convDirect[T dtypes.GoFloat](ctx *backends.Context, p convParams, input, kernel, output []T) {
	kernelSize := p.c * p.kh * p.kw
	ctx.Pool().ParallelFor(p.numKernels*p.outH, max(1, minParallelChunk/max(p.outW*kernelSize, 1)), func(start, end int) {
		for task := start; task < end; task++ {
			kernelIdx, outY := task/p.outH, task%p.outH
			kernelFlat := kernel[kernelIdx*kernelSize : (kernelIdx+1)*kernelSize]
			outputRow := output[task*p.outW : (task+1)*p.outW]
			for outX := range p.outW {
				var sum T
				for channel := range p.c {
					for ky := range p.kh {
						y := outY*p.stride + ky - p.padding
						if y < 0 || y >= p.h {
							continue
						}
						inputRow := input[(channel*p.h+y)*p.w : (channel*p.h+y+1)*p.w]
						kernelRow := kernelFlat[(channel*p.kh+ky)*p.kw : (channel*p.kh+ky+1)*p.kw]
						for kx, weight := range kernelRow {
							x := outX*p.stride + kx - p.padding
							if x < 0 || x >= p.w {
								continue
							}
							sum += weight * inputRow[x]
						}
					}
				}
				outputRow[outX] = sum
			}
		}
	})
}

// convIm2Col computes the convolution as the product of the kernels, a numKernels x (c*kh*kw) matrix, by the
// matrix of input patches, (c*kh*kw) x (outH*outW).
func convIm2Col[T dtypes.GoFloat](ctx *backends.Context, p convParams, input, kernel, output []T) {
	patchSize := p.c * p.kh * p.kw
	numPositions := p.outH * p.outW
	scratch := getScratch[T](patchSize * numPositions)
	defer putScratch(scratch)
	im2Col(p, input, *scratch)
	matMul(ctx, gemm.NoTrans, gemm.NoTrans, kernel[:p.numKernels*patchSize], *scratch,
		p.numKernels, numPositions, patchSize, output[:p.numKernels*numPositions])
}

// Im2Col writes the patches of the c x h x w input as the columns of cols, shaped (c*kh*kw) x (outH*outW), where
// outH and outW are given by geometry.OutputSize. It is used by other backends that multiply the patches with their
// own matrix multiplication.
func Im2Col[T dtypes.GoFloat](geometry configs.Conv2D, c, h, w, kh, kw int, input, cols []T) (outH, outW int, err error) {
	outH, outW, err = geometry.OutputSize(h, w, kh, kw)
	if err != nil {
		return
	}
	p := convParams{
		c: c, h: h, w: w, kh: kh, kw: kw,
		outH: outH, outW: outW, stride: geometry.Stride, padding: geometry.Padding,
	}
	im2Col(p, input, cols)
	return
}

// im2Col writes the patches of the input as the columns of cols, shaped (c*kh*kw) x (outH*outW).
// Positions falling in the padding are set to 0.
func im2Col[T dtypes.GoFloat](p convParams, input, cols []T) {
	numPositions := p.outH * p.outW
	for channel := range p.c {
		for ky := range p.kh {
			for kx := range p.kw {
				colsRow := cols[((channel*p.kh+ky)*p.kw+kx)*numPositions:][:numPositions]
				for outY := range p.outH {
					y := outY*p.stride + ky - p.padding
					for outX := range p.outW {
						x := outX*p.stride + kx - p.padding
						var value T
						if y >= 0 && y < p.h && x >= 0 && x < p.w {
							value = input[(channel*p.h+y)*p.w+x]
						}
						colsRow[outY*p.outW+outX] = value
					}
				}
			}
		}
	}
}
