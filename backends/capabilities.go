package backends

import (
	"maps"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
)

// Capabilities holds mappings of what is supported by a backend.
//
// Operations not listed are implemented by notimplemented.Ops and always return an error wrapping
// ErrNotImplemented.
type Capabilities struct {
	// Operations supported by a backend.
	// If not listed, it's assumed to be false, hence not supported.
	Operations map[OpType]bool

	// DTypes list the data types supported by a backend.
	// If not listed, it's assumed to be false, hence not supported.
	DTypes map[dtypes.DType]bool
}

// Clone makes a deep copy of the Capabilities.
func (c Capabilities) Clone() Capabilities {
	var c2 Capabilities
	c2.Operations = make(map[OpType]bool, len(c.Operations))
	maps.Copy(c2.Operations, c.Operations)
	c2.DTypes = make(map[dtypes.DType]bool, len(c.DTypes))
	maps.Copy(c2.DTypes, c.DTypes)
	return c2
}

// Supports returns whether the operation op is supported for the given dtype.
func (c Capabilities) Supports(op OpType, dtype dtypes.DType) bool {
	return c.Operations[op] && c.DTypes[dtype]
}

// Missing returns the operations in required that are not supported for dtype, in the order given.
func (c Capabilities) Missing(dtype dtypes.DType, required ...OpType) []OpType {
	var missing []OpType
	for _, op := range required {
		if !c.Supports(op, dtype) {
			missing = append(missing, op)
		}
	}
	return missing
}

// SupportedOps returns the list of supported operations, sorted by OpType.
func (c Capabilities) SupportedOps() []OpType {
	var ops []OpType
	for op, supported := range c.Operations {
		if supported {
			ops = append(ops, op)
		}
	}
	slices.Sort(ops)
	return ops
}
