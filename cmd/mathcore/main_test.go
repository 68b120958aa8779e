package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gomlx/mathcore/backends"
	"github.com/gomlx/mathcore/backends/simplego"
	"github.com/gomlx/mathcore/pkg/core/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRunners(t *testing.T) {
	all, err := selectRunners("", "")
	require.NoError(t, err)
	assert.Len(t, all, len(allRunners()))

	selected, err := selectRunners("go, gonum", "Float64")
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "go/float64", selected[0].Name())
	assert.Equal(t, "gonum/float64", selected[1].Name())

	_, err = selectRunners("cuda", "")
	require.Error(t, err)
	_, err = selectRunners("", "int32")
	require.Error(t, err)
}

func TestParseOps(t *testing.T) {
	opTypes, err := parseOps("MatMat, conv2d,OpTypeDot,")
	require.NoError(t, err)
	assert.Equal(t, []backends.OpType{backends.OpTypeMatMat, backends.OpTypeConv2D, backends.OpTypeDot}, opTypes)

	_, err = parseOps("MatMat,Softmax")
	require.Error(t, err)
	_, err = parseOps("Invalid")
	require.Error(t, err)
}

func TestLoadConvConfig(t *testing.T) {
	conf, err := loadConvConfig("")
	require.NoError(t, err)
	assert.Nil(t, conf)

	conf, err = loadConvConfig(`{"config_type": "simplego.ConvConfig", "config": {"stride": 2, "algorithm": "im2col"}}`)
	require.NoError(t, err)
	simplegoConf, err := configs.As[*simplego.ConvConfig](conf)
	require.NoError(t, err)
	assert.Equal(t, simplego.ConvIm2Col, simplegoConf.Algorithm)
	assert.Equal(t, 2, simplegoConf.Stride)

	filePath := filepath.Join(t.TempDir(), "conv.json")
	require.NoError(t, os.WriteFile(filePath, []byte(`{"config_type": "Conv2D", "config": {"padding": 1}}`), 0o644))
	conf, err = loadConvConfig("@" + filePath)
	require.NoError(t, err)
	geometry, err := configs.GeometryOf(conf)
	require.NoError(t, err)
	assert.Equal(t, configs.Conv2D{Stride: 1, Padding: 1}, geometry)

	// Invalid geometry.
	_, err = loadConvConfig(`{"config_type": "Conv2D", "config": {"stride": -1}}`)
	require.Error(t, err)
	_, err = loadConvConfig(`{"config_type": "unknown", "config": {}}`)
	require.Error(t, err)
}

func TestBenchmarks(t *testing.T) {
	runners, err := selectRunners("go,gonum,notimplemented", "float32")
	require.NoError(t, err)
	opTypes := []backends.OpType{backends.OpTypeAdd, backends.OpTypeMatMat, backends.OpTypeConv2D, backends.OpTypeSign}
	sizes := benchSizes{vector: 100, matrix: 8, image: 6}
	ctx := backends.NewContext(backends.WithSeed(1))
	results := runBenchmarks(runners, opTypes, sizes, &configs.Conv2D{Stride: 2}, 2, ctx)
	require.Len(t, results, len(runners)*len(opTypes))
	for _, result := range results {
		switch {
		case strings.HasPrefix(result.runner, "notimplemented"):
			assert.Equal(t, "not implemented", result.message)
		case result.op == backends.OpTypeSign:
			assert.Contains(t, result.message, "no benchmark defined")
		default:
			assert.Emptyf(t, result.message, "%s on %s", result.op, result.runner)
			assert.Positive(t, result.perRun)
			assert.Positive(t, result.flops)
		}
	}
	rendered := resultsTable(results).Render()
	assert.Contains(t, rendered, "gonum/float32")
	assert.Contains(t, capabilitiesTable(runners).Render(), "Conv2D")
}
