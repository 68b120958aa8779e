package backendparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOps(t *testing.T) {
	methods, err := ParseOps()
	require.NoError(t, err)

	byName := make(map[string]Method, len(methods))
	for _, method := range methods {
		byName[method.Name] = method
	}
	for _, name := range []string{"Name", "Capabilities", "Abs", "Add", "MatMat", "Bernoulli", "Conv2D"} {
		_, found := byName[name]
		assert.Truef(t, found, "method %s not found", name)
	}

	abs := byName["Abs"]
	assert.NotEmpty(t, abs.Comments)
	require.Len(t, abs.Parameters, 4)
	assert.Equal(t, NameAndType{Name: "count", Type: "int"}, abs.Parameters[0])
	assert.Equal(t, NameAndType{Name: "input", Type: "*Buffer[T]"}, abs.Parameters[1])
	assert.Equal(t, NameAndType{Name: "ret", Type: "*Buffer[T]"}, abs.Parameters[2])
	assert.Equal(t, NameAndType{Name: "ctx", Type: "*Context"}, abs.Parameters[3])
	require.Len(t, abs.Outputs, 1)
	assert.Equal(t, "error", abs.Outputs[0].Type)

	amax := byName["Amax"]
	assert.Equal(t, "*int", amax.Parameters[2].Type)
}
