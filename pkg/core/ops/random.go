package ops

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
)

// Random operations draw from the random source of the context, so the same seed and sequence of operations
// produce the same values on the same backend.

// Uniform fills ret with count samples of the uniform distribution in [low, high). It requires low <= high.
func Uniform[B backends.Ops[T], T dtypes.GoFloat](count int, low, high T, ret *backends.Buffer[T], ctx *backends.Context) error {
	p := check(backends.OpTypeUniform).nonNegative("count", count)
	if !(low <= high) {
		p.failf("low (%g) must be <= high (%g)", low, high)
	}
	bufferCheck(p, "ret", ret, count)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeUniform, func(b B) error { return b.Uniform(count, low, high, ret, ctx) })
}

// Gaussian fills ret with count samples of the normal distribution with the given mean and standard deviation.
// It requires std >= 0.
func Gaussian[B backends.Ops[T], T dtypes.GoFloat](count int, mean, std T, ret *backends.Buffer[T], ctx *backends.Context) error {
	p := check(backends.OpTypeGaussian).nonNegative("count", count)
	if !(std >= 0) {
		p.failf("std (%g) must be >= 0", std)
	}
	bufferCheck(p, "ret", ret, count)
	if err := p.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeGaussian, func(b B) error { return b.Gaussian(count, mean, std, ret, ctx) })
}

// Bernoulli sets each of the count elements of ret to 1 with probability p, and 0 otherwise.
// It requires 0 <= p <= 1.
func Bernoulli[B backends.Ops[T], T dtypes.GoFloat](count int, p T, ret *backends.Buffer[T], ctx *backends.Context) error {
	pc := check(backends.OpTypeBernoulli).nonNegative("count", count)
	if !validProbability(p) {
		pc.failf("probability p (%g) must be in [0, 1]", p)
	}
	bufferCheck(pc, "ret", ret, count)
	if err := pc.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeBernoulli, func(b B) error { return b.Bernoulli(count, p, ret, ctx) })
}

// BernoulliPerElement sets ret[i] to 1 with probability p[i], and 0 otherwise.
// It requires every p[i] to be in [0, 1].
func BernoulliPerElement[B backends.Ops[T], T dtypes.GoFloat](count int, p, ret *backends.Buffer[T], ctx *backends.Context) error {
	pc := check(backends.OpTypeBernoulliPerElement).nonNegative("count", count)
	bufferCheck(pc, "p", p, count)
	bufferCheck(pc, "ret", ret, count)
	if pc.Err() == nil {
		for ii, probability := range p.Flat()[:count] {
			if !validProbability(probability) {
				pc.failf("probability p[%d] (%g) must be in [0, 1]", ii, probability)
				break
			}
		}
	}
	if err := pc.Err(); err != nil {
		return err
	}
	return dispatch[B, T](backends.OpTypeBernoulliPerElement, func(b B) error {
		return b.BernoulliPerElement(count, p, ret, ctx)
	})
}

// validProbability returns whether p is in [0, 1]. NaN is not.
func validProbability[T dtypes.GoFloat](p T) bool {
	return p >= 0 && p <= 1
}
