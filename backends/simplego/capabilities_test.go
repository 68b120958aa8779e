package simplego

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/mathcore/backends"
	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	// Every operation but the invalid one is implemented.
	for _, op := range backends.OpTypeValues() {
		if op == backends.OpTypeInvalid {
			continue
		}
		assert.Truef(t, Capabilities.Supports(op, dtypes.Float32), "%s not listed in capabilities", op)
		assert.True(t, Capabilities.Supports(op, dtypes.Float64))
	}
	assert.False(t, Capabilities.Supports(backends.OpTypeAdd, dtypes.Int32))

	cloned := Backend[float32]{}.Capabilities().Clone()
	delete(cloned.Operations, backends.OpTypeAdd)
	assert.True(t, Capabilities.Operations[backends.OpTypeAdd], "Clone should not share the Operations map")
}
