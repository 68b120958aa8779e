package backends

import (
	"github.com/gomlx/gopjrt/dtypes"
)

// OpConfig is the base of operation (or backend) specific configurations, for operations whose extra parameters
// vary among backends -- e.g.: the algorithm used by Conv2D.
//
// It carries no data by itself. The backend that receives it views it as the concrete configuration it expects with
// configs.As, see package github.com/gomlx/mathcore/pkg/core/configs.
type OpConfig interface {
	// OpConfigType returns the unique name of the concrete configuration type.
	OpConfigType() string
}

// Ops is the catalogue of operations a backend implements for the element type T.
//
// All operations borrow their Buffer arguments and the Context for the duration of the call, and write their
// results only to the ret argument. Operations return an error wrapping ErrNotImplemented if the backend doesn't
// implement them, and an error wrapping ErrPrecondition for invalid arguments the backend itself can't handle.
//
// Backends should embed notimplemented.Ops[T] and override the subset of methods they implement.
type Ops[T dtypes.GoFloat] interface {
	// Name returns the short name of the backend.
	Name() string

	// Capabilities returns the set of operations and dtypes implemented by the backend.
	Capabilities() Capabilities

	// Sum sets ret to the sum of the first count elements of input. It is 0 if count is 0.
	Sum(count int, input *Buffer[T], ret *T, ctx *Context) error

	// Abs sets ret[i] = |input[i]| for i in [0, count). ret may be the same buffer as input.
	Abs(count int, input, ret *Buffer[T], ctx *Context) error

	// Sign sets ret[i] to -1, 0 or 1 according to the sign of input[i].
	Sign(count int, input, ret *Buffer[T], ctx *Context) error

	// Exp sets ret[i] = e^input[i], where e is the Neper number.
	Exp(count int, input, ret *Buffer[T], ctx *Context) error

	// Log sets ret[i] to the natural logarithm of input[i].
	Log(count int, input, ret *Buffer[T], ctx *Context) error

	// Sqrt sets ret[i] to the square root of input[i].
	Sqrt(count int, input, ret *Buffer[T], ctx *Context) error

	// Tanh sets ret[i] to the hyperbolic tangent of input[i].
	Tanh(count int, input, ret *Buffer[T], ctx *Context) error

	// Sigmoid sets ret[i] = 1/(1+e^-input[i]).
	Sigmoid(count int, input, ret *Buffer[T], ctx *Context) error

	// PowScalar sets ret[i] = input[i]^x.
	PowScalar(count int, x T, input, ret *Buffer[T], ctx *Context) error

	// Clamp sets ret[i] to input[i] clamped into [low, high].
	//
	// The behavior for low > high is backend defined, and must be documented by the backend.
	Clamp(count int, low, high T, input, ret *Buffer[T], ctx *Context) error

	// AddScalar sets ret[i] = input[i] + x.
	AddScalar(count int, x T, input, ret *Buffer[T], ctx *Context) error

	// MultScalar sets ret[i] = input[i] * x. A division can be done by multiplying by 1/x.
	MultScalar(count int, x T, input, ret *Buffer[T], ctx *Context) error

	// Add sets ret[i] = lhs[i] + rhs[i].
	Add(count int, lhs, rhs, ret *Buffer[T], ctx *Context) error

	// Sub sets ret[i] = lhs[i] - rhs[i].
	Sub(count int, lhs, rhs, ret *Buffer[T], ctx *Context) error

	// Mult sets ret[i] = lhs[i] * rhs[i].
	Mult(count int, lhs, rhs, ret *Buffer[T], ctx *Context) error

	// Div sets ret[i] = lhs[i] / rhs[i]. Division by zero follows the IEEE-754 semantics.
	Div(count int, lhs, rhs, ret *Buffer[T], ctx *Context) error

	// Pow sets ret[i] = lhs[i]^rhs[i].
	Pow(count int, lhs, rhs, ret *Buffer[T], ctx *Context) error

	// Outer sets the m x n matrix ret to the outer product of lhs (length m) and rhs (length n):
	// ret[i*n+j] = lhs[i]*rhs[j].
	Outer(m, n int, lhs, rhs, ret *Buffer[T], ctx *Context) error

	// SumRows reduces away the rows of the nrow x ncol (row-major) matrix input: ret has ncol elements, and
	// ret[j] = Σ_i input[i*ncol+j].
	SumRows(nrow, ncol int, input, ret *Buffer[T], ctx *Context) error

	// SumColumns reduces away the columns of the nrow x ncol (row-major) matrix input: ret has nrow elements, and
	// ret[i] = Σ_j input[i*ncol+j].
	SumColumns(nrow, ncol int, input, ret *Buffer[T], ctx *Context) error

	// AddRow adds the vector v (length ncol) to every row of the nrow x ncol matrix a. ret may be a.
	AddRow(nrow, ncol int, a, v, ret *Buffer[T], ctx *Context) error

	// AddColumn adds the vector v (length nrow) to every column of the nrow x ncol matrix a. ret may be a.
	AddColumn(nrow, ncol int, a, v, ret *Buffer[T], ctx *Context) error

	// Amax sets ret to the index of the element with the max value. Ties are resolved by the lowest index.
	// ret is set to -1 if count is 0.
	Amax(count int, input *Buffer[T], ret *int, ctx *Context) error

	// Amin sets ret to the index of the element with the min value. Ties are resolved by the lowest index.
	// ret is set to -1 if count is 0.
	Amin(count int, input *Buffer[T], ret *int, ctx *Context) error

	// Asum sets ret to Σ|input[i]|.
	Asum(count int, input *Buffer[T], ret *T, ctx *Context) error

	// Axpy sets ret = alpha * input + ret.
	Axpy(count int, alpha T, input, ret *Buffer[T], ctx *Context) error

	// Scale sets ret *= x.
	Scale(count int, x T, ret *Buffer[T], ctx *Context) error

	// Dot sets ret to Σ lhs[i]*rhs[i].
	Dot(count int, lhs, rhs *Buffer[T], ret *T, ctx *Context) error

	// MatVec sets ret = alpha * op(a) * x + beta * ret, where a is an m x n row-major matrix and op(a) is a if
	// trans is false, or its transpose otherwise.
	//
	// If trans is false x has n elements and ret has m, otherwise x has m elements and ret has n.
	MatVec(trans bool, m, n int, alpha T, a, x *Buffer[T], beta T, ret *Buffer[T], ctx *Context) error

	// MatMat sets ret = alpha * op(a) * op(b) + beta * ret, where op(a) is m x k, op(b) is k x n and ret is m x n,
	// all row-major.
	//
	// a is stored as m x k if transA is false, or k x m otherwise. b is stored as k x n if transB is false, or
	// n x k otherwise.
	MatMat(transA, transB bool, m, n, k int, alpha T, a, b *Buffer[T], beta T, ret *Buffer[T], ctx *Context) error

	// Uniform fills ret with samples from the uniform distribution in [low, high), drawn from the context random
	// source.
	Uniform(count int, low, high T, ret *Buffer[T], ctx *Context) error

	// Gaussian fills ret with samples from the normal distribution N(mean, std²).
	Gaussian(count int, mean, std T, ret *Buffer[T], ctx *Context) error

	// Bernoulli sets each element of ret to 1 with probability p and 0 with probability 1-p. 0 <= p <= 1.
	Bernoulli(count int, p T, ret *Buffer[T], ctx *Context) error

	// BernoulliPerElement sets ret[i] to 1 with probability p[i] and 0 with probability 1-p[i].
	BernoulliPerElement(count int, p, ret *Buffer[T], ctx *Context) error

	// Conv2D does a 2D convolution of input (shaped c x h x w) with numKernels kernels (kernel shaped
	// numKernels x c x kh x kw), writing ret shaped numKernels x outH x outW.
	//
	// Stride, padding and backend specific parameters (e.g.: the algorithm) are given by conf, which may be nil
	// for the defaults (stride 1, no padding).
	Conv2D(c, h, w, numKernels, kh, kw int, input, kernel, ret *Buffer[T], conf OpConfig, ctx *Context) error
}
