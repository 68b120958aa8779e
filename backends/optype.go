package backends

// OpType is an enum of all operations in the catalogue a backend can implement.
//
// It is used to report Capabilities and to name the operation in errors.
type OpType int

//go:generate go tool enumer -type=OpType -trimprefix=OpType -output=gen_optype_enumer.go optype.go

const (
	OpTypeInvalid OpType = iota

	// Reduction to scalar.
	OpTypeSum

	// Elementwise unary.
	OpTypeAbs
	OpTypeSign
	OpTypeExp
	OpTypeLog
	OpTypeSqrt
	OpTypeTanh
	OpTypeSigmoid

	// Elementwise with scalar parameters.
	OpTypePowScalar
	OpTypeClamp
	OpTypeAddScalar
	OpTypeMultScalar

	// Elementwise binary.
	OpTypeAdd
	OpTypeSub
	OpTypeMult
	OpTypeDiv
	OpTypePow

	// Matrix/vector shaped.
	OpTypeOuter
	OpTypeSumRows
	OpTypeSumColumns
	OpTypeAddRow
	OpTypeAddColumn

	// BLAS level 1.
	OpTypeAmax
	OpTypeAmin
	OpTypeAsum
	OpTypeAxpy
	OpTypeScale
	OpTypeDot

	// BLAS levels 2 and 3.
	OpTypeMatVec
	OpTypeMatMat

	// Random.
	OpTypeUniform
	OpTypeGaussian
	OpTypeBernoulli
	OpTypeBernoulliPerElement

	// Neural networks.
	OpTypeConv2D
)
