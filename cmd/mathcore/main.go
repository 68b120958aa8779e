// mathcore lists the operations supported by each backend, and benchmarks them.
//
// Usage:
//
//	mathcore -list
//	mathcore -bench -backends=go,gonum -dtype=float32 -ops=MatMat,Conv2D
//	mathcore -bench -ops=Conv2D -conv_config='{"config_type": "simplego.ConvConfig", "config": {"algorithm": "im2col"}}'
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagList  = flag.Bool("list", false, "Lists the operations supported by each backend.")
	flagBench = flag.Bool("bench", false, "Benchmarks the operations given by -ops on the backends given by -backends.")

	flagBackends = flag.String("backends", "", "Comma-separated list of backends to use. Empty means all of them.")
	flagDType    = flag.String("dtype", "", "Element type to use, float32 or float64. Empty means both.")
	flagOps      = flag.String("ops", "Add,Exp,Dot,Axpy,MatVec,MatMat,Conv2D",
		"Comma-separated list of operations to benchmark.")

	flagSize       = flag.Int("size", 1<<20, "Number of elements of the vectors used in the benchmarks.")
	flagMatrixSize = flag.Int("matrix_size", 256, "Dimension of the square matrices used in the benchmarks.")
	flagImageSize  = flag.Int("image_size", 64, "Height and width of the images used in the Conv2D benchmark.")
	flagIterations = flag.Int("iterations", 20, "Number of times each operation is run in the benchmarks.")

	flagParallelism = flag.Int("parallelism", 0, "Maximum number of extra goroutines used by an operation: "+
		"0 disables parallelism, and -1 makes it unlimited. "+
		"If not set, $"+backends.MATHCORE_PARALLELISM+" or the number of CPUs is used.")
	flagSeed       = flag.Uint64("seed", 42, "Seed of the random number generator.")
	flagConvConfig = flag.String("conv_config", "", "Configuration of Conv2D as JSON, "+
		"or @<file_path> to read it from a file. E.g.: "+
		`{"config_type": "Conv2D", "config": {"stride": 2, "padding": 1}}`+
		fmt.Sprintf(". Registered config types: %q", configs.RegisteredTypes()))
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if !*flagList && !*flagBench {
		klog.Errorf("Nothing to do, use -list or -bench. See 'mathcore -help'.")
		os.Exit(1)
	}

	runners, err := selectRunners(*flagBackends, *flagDType)
	if err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
	if *flagList {
		fmt.Println(titleStyle.Render("Capabilities"))
		fmt.Println(capabilitiesTable(runners).Render())
	}
	if *flagBench {
		ops := must.M1(parseOps(*flagOps))
		conf := must.M1(loadConvConfig(*flagConvConfig))
		ctx := backends.NewContext(contextOptions()...)
		sizes := benchSizes{vector: *flagSize, matrix: *flagMatrixSize, image: *flagImageSize}
		results := runBenchmarks(runners, ops, sizes, conf, *flagIterations, ctx)
		fmt.Println(titleStyle.Render("Benchmarks"))
		fmt.Println(resultsTable(results).Render())
	}
}

// contextOptions returns the options of the context given by the flags.
func contextOptions() []backends.ContextOption {
	options := []backends.ContextOption{backends.WithSeed(*flagSeed)}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "parallelism" {
			options = append(options, backends.WithParallelism(*flagParallelism))
		}
	})
	return options
}

// loadConvConfig parses the -conv_config flag value: JSON, or @<file_path>. Empty returns a nil configuration.
func loadConvConfig(value string) (backends.OpConfig, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	data := []byte(value)
	if filePath, found := strings.CutPrefix(value, "@"); found {
		var err error
		data, err = os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
	}
	conf, err := configs.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if _, err = configs.GeometryOf(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)

	oddRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFF")).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999")).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

func newTable() *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row == lgtable.HeaderRow {
				return headerRowStyle
			}
			if row%2 == 0 {
				s = evenRowStyle
			} else {
				s = oddRowStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Left)
			} else {
				s = s.Align(lipgloss.Right)
			}
			return
		})
}
