package gonumblas

import (
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/simplego"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"k8s.io/klog/v2"
)

// ConvConfigType is the OpConfigType of ConvConfig.
const ConvConfigType = "gonumblas.ConvConfig"

// ConvConfig is the configuration of Conv2D specific to gonumblas.
type ConvConfig struct {
	configs.Conv2D

	// MaxWorkspace is the maximum number of elements of the im2col matrix. Larger convolutions use the direct
	// algorithm of simplego instead. 0 means no limit.
	MaxWorkspace int `json:"max_workspace,omitempty"`
}

func init() {
	configs.Register(func() *ConvConfig { return &ConvConfig{} })
}

// OpConfigType implements configs.OpConfig.
func (*ConvConfig) OpConfigType() string { return ConvConfigType }

// Conv2D implements backends.Ops.
//
// The input patches are copied to a (c*kh*kw) x (outH*outW) matrix, which is multiplied by the kernels with Gemm.
func (b Backend[T]) Conv2D(c, h, w, numKernels, kh, kw int, input, kernel, ret *backends.Buffer[T],
	conf backends.OpConfig, ctx *backends.Context) error {
	geometry, err := configs.GeometryOf(conf)
	if err != nil {
		return err
	}
	outH, outW, err := geometry.OutputSize(h, w, kh, kw)
	if err != nil {
		return err
	}
	patchSize, numPositions := c*kh*kw, outH*outW
	if gonumConf, ok := conf.(*ConvConfig); ok && gonumConf != nil && gonumConf.MaxWorkspace > 0 &&
		patchSize*numPositions > gonumConf.MaxWorkspace {
		klog.V(1).Infof("gonumblas.Conv2D: im2col workspace of %d elements over the limit of %d, using simplego",
			patchSize*numPositions, gonumConf.MaxWorkspace)
		return b.Backend.Conv2D(c, h, w, numKernels, kh, kw, input, kernel, ret, &geometry, ctx)
	}

	cols := make([]T, patchSize*numPositions)
	if _, _, err = simplego.Im2Col(geometry, c, h, w, kh, kw, input.Flat(), cols); err != nil {
		return err
	}
	output := make([]T, numKernels*numPositions)
	gemm(false, false, numKernels, numPositions, patchSize, 1, kernel.Flat(), cols, 0, output)
	copy(ret.Flat(), output)
	return nil
}
