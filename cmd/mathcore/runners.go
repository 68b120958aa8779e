package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/gonumblas"
	"github.com/gomlx/mathcore/backends/notimplemented"
	"github.com/gomlx/mathcore/backends/simplego"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/pkg/errors"
)

// runner binds a backend tag and an element type, so they can be selected at run time.
type runner struct {
	backend      string
	dtype        dtypes.DType
	capabilities backends.Capabilities

	// prepare allocates the inputs of op, and returns a function that runs it once, and the number of floating
	// point operations of each run.
	prepare func(op backends.OpType, sizes benchSizes, conf backends.OpConfig, ctx *backends.Context) (
		run func() error, flops float64, err error)
}

// Name of the runner, as shown in the tables.
func (r runner) Name() string {
	return fmt.Sprintf("%s/%s", r.backend, strings.ToLower(r.dtype.String()))
}

func newRunner[B backends.Ops[T], T dtypes.GoFloat]() runner {
	var tag B
	return runner{
		backend:      ops.BackendName[B, T](),
		dtype:        dtypes.FromGenericsType[T](),
		capabilities: tag.Capabilities(),
		prepare:      prepareBenchmark[B, T],
	}
}

// allRunners lists every backend and element type available.
func allRunners() []runner {
	return []runner{
		newRunner[simplego.Backend[float32]](),
		newRunner[simplego.Backend[float64]](),
		newRunner[gonumblas.Backend[float32]](),
		newRunner[gonumblas.Backend[float64]](),
		newRunner[notimplemented.Ops[float32]](),
		newRunner[notimplemented.Ops[float64]](),
	}
}

// selectRunners returns the runners matching the comma-separated list of backend names and the dtype.
// Empty values select everything.
func selectRunners(backendNames, dtype string) ([]runner, error) {
	all := allRunners()
	var known []string
	for _, r := range all {
		if !slices.Contains(known, r.backend) {
			known = append(known, r.backend)
		}
	}
	var names []string
	for name := range strings.SplitSeq(backendNames, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !slices.Contains(known, name) {
			return nil, errors.Errorf("unknown backend %q, known backends are %q", name, known)
		}
		names = append(names, name)
	}
	dtype = strings.ToLower(strings.TrimSpace(dtype))
	if dtype != "" && dtype != "float32" && dtype != "float64" {
		return nil, errors.Errorf("unsupported -dtype=%q, only float32 and float64 are supported", dtype)
	}

	var selected []runner
	for _, r := range all {
		if len(names) > 0 && !slices.Contains(names, r.backend) {
			continue
		}
		if dtype != "" && strings.ToLower(r.dtype.String()) != dtype {
			continue
		}
		selected = append(selected, r)
	}
	return selected, nil
}

// parseOps parses a comma-separated list of operation names.
func parseOps(list string) ([]backends.OpType, error) {
	var opTypes []backends.OpType
	for name := range strings.SplitSeq(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		// Also accept the name with the "OpType" prefix.
		op, err := backends.OpTypeString(strings.TrimPrefix(name, "OpType"))
		if err != nil || op == backends.OpTypeInvalid {
			return nil, errors.Errorf("unknown operation %q", name)
		}
		opTypes = append(opTypes, op)
	}
	return opTypes, nil
}
