package main

import (
	"fmt"
	"os"
	"time"

	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/simplego"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/gomlx/mathcore/pkg/core/ops"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"
)

// benchSizes holds the dimensions of the benchmark inputs.
type benchSizes struct {
	vector, matrix, image int
}

// Dimensions of the Conv2D benchmark, other than the image size.
const (
	convChannels   = 3
	convNumKernels = 16
	convKernelSize = 3
)

// prepareBenchmark allocates random inputs for op, and returns the function running it.
func prepareBenchmark[B backends.Ops[T], T dtypes.GoFloat](op backends.OpType, sizes benchSizes,
	conf backends.OpConfig, ctx *backends.Context) (run func() error, flops float64, err error) {
	// Inputs are always generated by simplego, since B may not support random operations.
	random := func(size int) *backends.Buffer[T] {
		buf := backends.NewBuffer[T](size)
		ops.Must(ops.Uniform[simplego.Backend[T]](size, -1, 1, buf, ctx))
		return buf
	}
	n, m := sizes.vector, sizes.matrix
	switch op {
	case backends.OpTypeAdd:
		x, y, ret := random(n), random(n), backends.NewBuffer[T](n)
		return func() error { return ops.Add[B](n, x, y, ret, ctx) }, float64(n), nil
	case backends.OpTypeExp:
		x, ret := random(n), backends.NewBuffer[T](n)
		return func() error { return ops.Exp[B](n, x, ret, ctx) }, float64(n), nil
	case backends.OpTypeDot:
		x, y := random(n), random(n)
		var ret T
		return func() error { return ops.Dot[B](n, x, y, &ret, ctx) }, 2 * float64(n), nil
	case backends.OpTypeAxpy:
		x, ret := random(n), random(n)
		return func() error { return ops.Axpy[B](n, 0.5, x, ret, ctx) }, 2 * float64(n), nil
	case backends.OpTypeMatVec:
		a, x, ret := random(m*m), random(m), backends.NewBuffer[T](m)
		return func() error { return ops.MatVec[B](false, m, m, 1, a, x, 0, ret, ctx) }, 2 * float64(m*m), nil
	case backends.OpTypeMatMat:
		a, b, ret := random(m*m), random(m*m), backends.NewBuffer[T](m*m)
		return func() error { return ops.MatMat[B](false, false, m, m, m, 1, a, b, 0, ret, ctx) },
			2 * float64(m) * float64(m) * float64(m), nil
	case backends.OpTypeConv2D:
		geometry, err := configs.GeometryOf(conf)
		if err != nil {
			return nil, 0, err
		}
		const c, numKernels, k = convChannels, convNumKernels, convKernelSize
		h := sizes.image
		outH, outW, err := geometry.OutputSize(h, h, k, k)
		if err != nil {
			return nil, 0, err
		}
		input, kernel := random(c*h*h), random(numKernels*c*k*k)
		ret := backends.NewBuffer[T](numKernels * outH * outW)
		return func() error { return ops.Conv2D[B](c, h, h, numKernels, k, k, input, kernel, ret, conf, ctx) },
			2 * float64(numKernels*outH*outW*c*k*k), nil
	}
	return nil, 0, errors.Errorf("no benchmark defined for %s", op)
}

// benchResult is the outcome of benchmarking one operation on one runner.
type benchResult struct {
	runner  string
	op      backends.OpType
	perRun  time.Duration
	flops   float64
	message string
}

// progressTheme returns the progress bar theme fitting the terminal.
func progressTheme() progressbar.Theme {
	if termenv.NewOutput(os.Stdout).Profile == termenv.Ascii {
		return progressbar.ThemeASCII
	}
	return progressbar.ThemeUnicode
}

// runBenchmarks runs each op on each runner the given number of iterations.
func runBenchmarks(runners []runner, opTypes []backends.OpType, sizes benchSizes, conf backends.OpConfig,
	iterations int, ctx *backends.Context) []benchResult {
	iterations = max(iterations, 1)
	theme := progressTheme()
	var results []benchResult
	for _, r := range runners {
		for _, op := range opTypes {
			result := benchResult{runner: r.Name(), op: op}
			if !r.capabilities.Supports(op, r.dtype) {
				result.message = "not implemented"
				results = append(results, result)
				continue
			}
			run, flops, err := r.prepare(op, sizes, conf, ctx)
			if err == nil {
				// Warm-up, it also checks the operation succeeds.
				err = run()
			}
			if err != nil {
				klog.Errorf("Benchmark of %s on %s failed: %+v", op, r.Name(), err)
				result.message = err.Error()
				results = append(results, result)
				continue
			}

			bar := progressbar.NewOptions(iterations,
				progressbar.OptionSetDescription(fmt.Sprintf("%-14s %-8s", r.Name(), op)),
				progressbar.OptionSetTheme(theme),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
				progressbar.OptionSetWriter(os.Stderr))
			start := time.Now()
			for range iterations {
				if err = run(); err != nil {
					break
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			if err != nil {
				result.message = err.Error()
			} else {
				result.perRun = time.Since(start) / time.Duration(iterations)
				result.flops = flops
			}
			klog.V(1).Infof("%s %s: %s per run", r.Name(), op, result.perRun)
			results = append(results, result)
		}
	}
	return results
}

// resultsTable formats the benchmark results.
func resultsTable(results []benchResult) *lgtable.Table {
	table := newTable().Headers("Backend", "Operation", "Time/Run", "Throughput", "Notes")
	for _, result := range results {
		timePerRun, throughput := "-", "-"
		if result.perRun > 0 {
			timePerRun = result.perRun.String()
			throughput = humanize.SIWithDigits(result.flops/result.perRun.Seconds(), 2, "FLOP/s")
		}
		table.Row(result.runner, result.op.String(), timePerRun, throughput, result.message)
	}
	return table
}

// capabilitiesTable formats a matrix of operations by runners, marking the supported ones.
func capabilitiesTable(runners []runner) *lgtable.Table {
	headers := []string{"Operation"}
	for _, r := range runners {
		headers = append(headers, r.Name())
	}
	table := newTable().Headers(headers...)
	totals := make([]int, len(runners))
	for _, op := range backends.OpTypeValues() {
		if op == backends.OpTypeInvalid {
			continue
		}
		row := []string{op.String()}
		for ii, r := range runners {
			mark := ""
			if r.capabilities.Supports(op, r.dtype) {
				mark = "✓"
				totals[ii]++
			}
			row = append(row, mark)
		}
		table.Row(row...)
	}
	row := []string{"Total"}
	for _, total := range totals {
		row = append(row, humanize.Comma(int64(total)))
	}
	table.Row(row...)
	return table
}
