package backendtest

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// numSamples drawn by the random tests.
const numSamples = 10_000

// meanStd returns the sample mean and standard deviation of values.
func meanStd[T dtypes.GoFloat](values []T) (mean, std float64) {
	for _, v := range values {
		mean += float64(v)
	}
	mean /= float64(len(values))
	for _, v := range values {
		diff := float64(v) - mean
		std += diff * diff
	}
	std = math.Sqrt(std / float64(len(values)))
	return
}

func testUniform[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	ret := backends.NewBuffer[T](numSamples)
	require.NoError(t, ops.Uniform[B](numSamples, -2, 3, ret, ctx))
	for ii, v := range ret.Flat() {
		require.Truef(t, v >= -2 && v < 3, "sample #%d=%g out of [-2, 3)", ii, v)
	}
	mean, std := meanStd(ret.Flat())
	assert.InDelta(t, 0.5, mean, 0.1)
	assert.InDelta(t, 5/math.Sqrt(12), std, 0.1)

	// Same seed, same sequence of operations: same values.
	first, again := backends.NewBuffer[T](numSamples), backends.NewBuffer[T](numSamples)
	require.NoError(t, ops.Uniform[B](numSamples, -2, 3, first, backends.NewContext(backends.WithSeed(Seed))))
	require.NoError(t, ops.Uniform[B](numSamples, -2, 3, again, backends.NewContext(backends.WithSeed(Seed))))
	assert.Equal(t, first.Flat(), again.Flat())

	// A context that already drew samples continues the sequence.
	require.NoError(t, ops.Uniform[B](numSamples, -2, 3, again, ctx))
	assert.NotEqual(t, ret.Flat(), again.Flat())

	// Different seed: different values.
	require.NoError(t, ops.Uniform[B](numSamples, -2, 3, again, backends.NewContext(backends.WithSeed(Seed+1))))
	assert.NotEqual(t, first.Flat(), again.Flat())

	// Empty interval.
	require.NoError(t, ops.Uniform[B](4, 1.5, 1.5, ret, ctx))
	assert.Equal(t, Convert[T]([]float64{1.5, 1.5, 1.5, 1.5}), ret.Flat()[:4])

	require.NoError(t, ops.Uniform[B, T](0, 0, 1, nil, ctx))
}

func testGaussian[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	ret := backends.NewBuffer[T](numSamples)
	require.NoError(t, ops.Gaussian[B](numSamples, 1, 2, ret, ctx))
	mean, std := meanStd(ret.Flat())
	assert.InDelta(t, 1.0, mean, 0.1)
	assert.InDelta(t, 2.0, std, 0.1)

	first, again := backends.NewBuffer[T](numSamples), backends.NewBuffer[T](numSamples)
	require.NoError(t, ops.Gaussian[B](numSamples, 1, 2, first, backends.NewContext(backends.WithSeed(Seed))))
	require.NoError(t, ops.Gaussian[B](numSamples, 1, 2, again, backends.NewContext(backends.WithSeed(Seed))))
	assert.Equal(t, first.Flat(), again.Flat())

	// std = 0 yields the mean.
	require.NoError(t, ops.Gaussian[B](3, -4, 0, ret, ctx))
	assert.Equal(t, Convert[T]([]float64{-4, -4, -4}), ret.Flat()[:3])
}

// assertBinary checks all values are 0 or 1, and returns the number of 1s.
func assertBinary[T dtypes.GoFloat](t *testing.T, values []T) int {
	t.Helper()
	var ones int
	for ii, v := range values {
		require.Truef(t, v == 0 || v == 1, "sample #%d=%g is not 0 or 1", ii, v)
		if v == 1 {
			ones++
		}
	}
	return ones
}

func testBernoulli[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	ret := backends.NewBuffer[T](numSamples)
	require.NoError(t, ops.Bernoulli[B](numSamples, 0.3, ret, ctx))
	ones := assertBinary(t, ret.Flat())
	assert.InDelta(t, 0.3, float64(ones)/numSamples, 0.03)

	require.NoError(t, ops.Bernoulli[B](numSamples, 0, ret, ctx))
	assert.Zero(t, assertBinary(t, ret.Flat()), "p=0 must only yield 0")
	require.NoError(t, ops.Bernoulli[B](numSamples, 1, ret, ctx))
	assert.Equal(t, numSamples, assertBinary(t, ret.Flat()), "p=1 must only yield 1")
}

func testBernoulliPerElement[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, ctx *backends.Context) {
	// Each of the 4 probabilities repeated numSamples/4 times, interleaved.
	probabilities := []float64{0, 0.25, 0.75, 1}
	p := backends.NewBuffer[T](numSamples)
	for ii := range numSamples {
		p.Flat()[ii] = T(probabilities[ii%len(probabilities)])
	}
	ret := backends.NewBuffer[T](numSamples)
	require.NoError(t, ops.BernoulliPerElement[B](numSamples, p, ret, ctx))
	assertBinary(t, ret.Flat())
	ones := make([]int, len(probabilities))
	for ii, v := range ret.Flat() {
		if v == 1 {
			ones[ii%len(probabilities)]++
		}
	}
	perProbability := float64(numSamples / len(probabilities))
	assert.Zero(t, ones[0])
	assert.InDelta(t, 0.25, float64(ones[1])/perProbability, 0.05)
	assert.InDelta(t, 0.75, float64(ones[2])/perProbability, 0.05)
	assert.Equal(t, numSamples/len(probabilities), ones[3])

	// In place: ret == p.
	require.NoError(t, ops.BernoulliPerElement[B](numSamples, p, p, ctx))
	assertBinary(t, p.Flat())
}
