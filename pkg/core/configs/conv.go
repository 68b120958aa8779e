package configs

import (
	"github.com/gomlx/mathcore/backends"
)

// ConvGeometry is implemented by every convolution configuration: it exposes the stride and padding that all
// backends understand, regardless of the backend specific parameters.
type ConvGeometry interface {
	OpConfig

	// ConvGeometry returns the stride and padding of the convolution.
	ConvGeometry() Conv2D
}

// Conv2DConfigType is the OpConfigType of Conv2D.
const Conv2DConfigType = "Conv2D"

// Conv2D configures the geometry of a 2D convolution.
//
// The same stride and padding are used on both spatial axes. Backend specific configurations embed it.
type Conv2D struct {
	// Stride between consecutive kernel applications. 0 is taken as 1.
	Stride int `json:"stride,omitempty"`

	// Padding of zeros added to each side of both spatial axes.
	Padding int `json:"padding,omitempty"`
}

// DefaultConv2D is the geometry used when an operation receives a nil configuration.
var DefaultConv2D = Conv2D{Stride: 1}

func init() {
	Register(func() *Conv2D { return &Conv2D{} })
}

// OpConfigType implements OpConfig.
func (*Conv2D) OpConfigType() string { return Conv2DConfigType }

// ConvGeometry implements ConvGeometry. A nil receiver returns DefaultConv2D.
func (c *Conv2D) ConvGeometry() Conv2D {
	if c == nil {
		return DefaultConv2D
	}
	geometry := *c
	if geometry.Stride == 0 {
		geometry.Stride = 1
	}
	return geometry
}

// Validate returns an error if the stride is negative or the padding is negative.
func (c Conv2D) Validate() error {
	if c.Stride < 0 {
		return backends.PreconditionErrorf("Conv2D stride must be >= 0 (0 means 1), got %d", c.Stride)
	}
	if c.Padding < 0 {
		return backends.PreconditionErrorf("Conv2D padding must be >= 0, got %d", c.Padding)
	}
	return nil
}

// OutputSize returns the spatial dimensions of the convolution output, for an input h x w and a kernel kh x kw.
//
// It returns an error if the kernel doesn't fit the padded input.
func (c Conv2D) OutputSize(h, w, kh, kw int) (outH, outW int, err error) {
	if err = c.Validate(); err != nil {
		return
	}
	stride := max(c.Stride, 1)
	paddedH, paddedW := h+2*c.Padding, w+2*c.Padding
	if kh > paddedH || kw > paddedW {
		err = backends.PreconditionErrorf("Conv2D kernel %dx%d larger than the padded input %dx%d",
			kh, kw, paddedH, paddedW)
		return
	}
	outH = (paddedH-kh)/stride + 1
	outW = (paddedW-kw)/stride + 1
	return
}

// GeometryOf returns the convolution geometry of conf, or DefaultConv2D if conf is nil.
//
// It returns an error wrapping backends.ErrPrecondition if conf is not a ConvGeometry, if it is a nil pointer
// of a concrete configuration type, or if its geometry is invalid.
func GeometryOf(conf OpConfig) (Conv2D, error) {
	if conf == nil {
		return DefaultConv2D, nil
	}
	geometryConf, err := As[ConvGeometry](conf)
	if err != nil {
		return Conv2D{}, err
	}
	geometry := geometryConf.ConvGeometry()
	if err = geometry.Validate(); err != nil {
		return Conv2D{}, err
	}
	return geometry, nil
}
