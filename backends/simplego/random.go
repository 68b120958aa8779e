package simplego

import (
	"math"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random operations are sequential: they draw from the single random source of the context, so results only
// depend on the seed and the sequence of operations.

// Uniform implements backends.Ops.
func (Backend[T]) Uniform(count int, low, high T, ret *backends.Buffer[T], ctx *backends.Context) error {
	outputs := ret.Flat()[:count]
	if low == high {
		for ii := range outputs {
			outputs[ii] = low
		}
		return nil
	}
	dist := distuv.Uniform{Min: float64(low), Max: float64(high), Src: ctx.Source()}
	for ii := range outputs {
		outputs[ii] = belowHigh(T(dist.Rand()), high)
	}
	return nil
}

// belowHigh makes sure a sample converted to T didn't round up to the open end of the interval.
func belowHigh[T dtypes.GoFloat](x, high T) T {
	if x < high {
		return x
	}
	switch any(high).(type) {
	case float32:
		return T(math.Nextafter32(float32(high), float32(math.Inf(-1))))
	default:
		return T(math.Nextafter(float64(high), math.Inf(-1)))
	}
}

// Gaussian implements backends.Ops.
func (Backend[T]) Gaussian(count int, mean, std T, ret *backends.Buffer[T], ctx *backends.Context) error {
	dist := distuv.Normal{Mu: float64(mean), Sigma: float64(std), Src: ctx.Source()}
	outputs := ret.Flat()[:count]
	for ii := range outputs {
		outputs[ii] = T(dist.Rand())
	}
	return nil
}

// Bernoulli implements backends.Ops.
func (Backend[T]) Bernoulli(count int, p T, ret *backends.Buffer[T], ctx *backends.Context) error {
	dist := distuv.Bernoulli{P: float64(p), Src: ctx.Source()}
	outputs := ret.Flat()[:count]
	for ii := range outputs {
		outputs[ii] = T(dist.Rand())
	}
	return nil
}

// BernoulliPerElement implements backends.Ops.
func (Backend[T]) BernoulliPerElement(count int, p, ret *backends.Buffer[T], ctx *backends.Context) error {
	probabilities, outputs := p.Flat()[:count], ret.Flat()[:count]
	src := ctx.Source()
	for ii, probability := range probabilities {
		outputs[ii] = T(distuv.Bernoulli{P: float64(probability), Src: src}.Rand())
	}
	return nil
}
