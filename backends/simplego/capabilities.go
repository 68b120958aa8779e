package simplego

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
)

// Capabilities of the SimpleGo backend: the set of supported operations and data types.
var Capabilities = backends.Capabilities{
	Operations: map[backends.OpType]bool{
		backends.OpTypeSum: true,

		// Standard unary operations:
		backends.OpTypeAbs:     true,
		backends.OpTypeSign:    true,
		backends.OpTypeExp:     true,
		backends.OpTypeLog:     true,
		backends.OpTypeSqrt:    true,
		backends.OpTypeTanh:    true,
		backends.OpTypeSigmoid: true,

		// Operations with a scalar parameter:
		backends.OpTypePowScalar:  true,
		backends.OpTypeClamp:      true,
		backends.OpTypeAddScalar:  true,
		backends.OpTypeMultScalar: true,

		// Standard binary operations:
		backends.OpTypeAdd:  true,
		backends.OpTypeSub:  true,
		backends.OpTypeMult: true,
		backends.OpTypeDiv:  true,
		backends.OpTypePow:  true,

		// Matrices:
		backends.OpTypeOuter:      true,
		backends.OpTypeSumRows:    true,
		backends.OpTypeSumColumns: true,
		backends.OpTypeAddRow:     true,
		backends.OpTypeAddColumn:  true,

		// BLAS:
		backends.OpTypeAmax:   true,
		backends.OpTypeAmin:   true,
		backends.OpTypeAsum:   true,
		backends.OpTypeAxpy:   true,
		backends.OpTypeScale:  true,
		backends.OpTypeDot:    true,
		backends.OpTypeMatVec: true,
		backends.OpTypeMatMat: true,

		// Random numbers:
		backends.OpTypeUniform:             true,
		backends.OpTypeGaussian:            true,
		backends.OpTypeBernoulli:           true,
		backends.OpTypeBernoulliPerElement: true,

		// Neural networks:
		backends.OpTypeConv2D: true,
	},

	DTypes: map[dtypes.DType]bool{
		dtypes.Float32: true,
		dtypes.Float64: true,
	},
}
