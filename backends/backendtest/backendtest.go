// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package backendtest holds a conformance suite every backend runs in its tests.
//
// The operations listed in the backend Capabilities are checked for correctness against plain Go references,
// and the others are checked to fail with backends.ErrNotImplemented:
//
//	func TestConformance(t *testing.T) {
//		backendtest.RunAll[mybackend.Backend[float32]](t)
//		backendtest.RunAll[mybackend.Backend[float64]](t)
//	}
package backendtest

import (
	"fmt"
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Seed used by the contexts created by the suite.
const Seed = 42

// TestFn tests one operation on a backend. The context is freshly created with Seed.
type TestFn func(t *testing.T, ctx *backends.Context)

// RunAll runs the conformance tests of every operation for the backend B and element type T.
func RunAll[B backends.Ops[T], T dtypes.GoFloat](t *testing.T) {
	dtype := dtypes.FromGenericsType[T]()
	t.Run(fmt.Sprintf("%s/%s", ops.BackendName[B, T](), dtype), func(t *testing.T) {
		for _, op := range backends.OpTypeValues() {
			if op == backends.OpTypeInvalid {
				continue
			}
			t.Run(op.String(), func(t *testing.T) {
				RunOp[B, T](t, op)
			})
		}
	})
}

// RunOp runs the conformance test of one operation for the backend B and element type T.
//
// If the backend doesn't report op as supported, it checks that calling it returns backends.ErrNotImplemented.
func RunOp[B backends.Ops[T], T dtypes.GoFloat](t *testing.T, op backends.OpType) {
	newContext := func() *backends.Context { return backends.NewContext(backends.WithSeed(Seed)) }
	if !ops.Supports[B, T](op) {
		err := CallOp[B, T](op, newContext())
		require.Errorf(t, err, "%s is not listed in the capabilities of %q, it should return an error", op,
			ops.BackendName[B, T]())
		require.Truef(t, backends.IsNotImplemented(err), "unexpected error for unsupported %s: %+v", op, err)
		return
	}
	require.NoErrorf(t, CallOp[B, T](op, newContext()), "%s is listed in the capabilities of %q", op,
		ops.BackendName[B, T]())
	testFn, found := conformanceTests[B, T]()[op]
	if !found {
		t.Skipf("no conformance test for %s", op)
		return
	}
	// Each test gets a context no other call has drawn random numbers from.
	testFn(t, newContext())
}

// conformanceTests returns the tests for each operation.
func conformanceTests[B backends.Ops[T], T dtypes.GoFloat]() map[backends.OpType]TestFn {
	tests := map[backends.OpType]TestFn{
		backends.OpTypeSum:                 testSum[B, T],
		backends.OpTypeAdd:                 testAdd[B, T],
		backends.OpTypeSub:                 testSub[B, T],
		backends.OpTypeMult:                testMult[B, T],
		backends.OpTypeDiv:                 testDiv[B, T],
		backends.OpTypePow:                 testPow[B, T],
		backends.OpTypeOuter:               testOuter[B, T],
		backends.OpTypeSumRows:             testSumRows[B, T],
		backends.OpTypeSumColumns:          testSumColumns[B, T],
		backends.OpTypeAddRow:              testAddRow[B, T],
		backends.OpTypeAddColumn:           testAddColumn[B, T],
		backends.OpTypeAmax:                testAmax[B, T],
		backends.OpTypeAmin:                testAmin[B, T],
		backends.OpTypeAsum:                testAsum[B, T],
		backends.OpTypeAxpy:                testAxpy[B, T],
		backends.OpTypeScale:               testScale[B, T],
		backends.OpTypeDot:                 testDot[B, T],
		backends.OpTypeMatVec:              testMatVec[B, T],
		backends.OpTypeMatMat:              testMatMat[B, T],
		backends.OpTypeUniform:             testUniform[B, T],
		backends.OpTypeGaussian:            testGaussian[B, T],
		backends.OpTypeBernoulli:           testBernoulli[B, T],
		backends.OpTypeBernoulliPerElement: testBernoulliPerElement[B, T],
		backends.OpTypeConv2D:              testConv2D[B, T],
	}
	for op, test := range unaryTests[B, T]() {
		tests[op] = test
	}
	return tests
}

// Tolerance returns the absolute tolerance used to compare values of type T with magnitude around 1.
func Tolerance[T dtypes.GoFloat]() float64 {
	if dtypes.FromGenericsType[T]() == dtypes.Float32 {
		return 1e-4
	}
	return 1e-9
}

// AssertClose checks want and got have the same length and every element is within a tolerance scaled by the
// magnitude of the expected value. NaN values must match NaN, and infinities must match exactly.
func AssertClose[T dtypes.GoFloat](t *testing.T, want, got []T, msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, len(want), len(got), msgAndArgs...)
	tolerance := Tolerance[T]()
	for ii := range want {
		w, g := float64(want[ii]), float64(got[ii])
		switch {
		case math.IsNaN(w):
			assert.Truef(t, math.IsNaN(g), "element #%d: want NaN, got %g -- %v", ii, g, msgAndArgs)
		case math.IsInf(w, 0):
			assert.Equalf(t, w, g, "element #%d -- %v", ii, msgAndArgs)
		default:
			assert.InDeltaf(t, w, g, tolerance*math.Max(1, math.Abs(w)), "element #%d -- %v", ii, msgAndArgs)
		}
	}
}

// Convert converts a slice of float64 values to T.
func Convert[T dtypes.GoFloat](values []float64) []T {
	converted := make([]T, len(values))
	for ii, v := range values {
		converted[ii] = T(v)
	}
	return converted
}

// Buffer returns a new buffer with the values converted to T.
func Buffer[T dtypes.GoFloat](values ...float64) *backends.Buffer[T] {
	return backends.BufferFrom(Convert[T](values))
}

// Sequence returns a buffer with count values, starting from start and incrementing by step.
func Sequence[T dtypes.GoFloat](count int, start, step float64) *backends.Buffer[T] {
	buf := backends.NewBuffer[T](count)
	for ii := range count {
		buf.Flat()[ii] = T(start + float64(ii)*step)
	}
	return buf
}

// clone returns a copy of the buffer.
func clone[T dtypes.GoFloat](buf *backends.Buffer[T]) *backends.Buffer[T] {
	return backends.BufferFrom(append([]T(nil), buf.Flat()...))
}
