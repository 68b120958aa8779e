package backends

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
)

// Buffer is a flat, contiguous storage of elements of type T.
//
// It is owned by the caller and only borrowed by the operations for the duration of a call: operations read and
// write existing elements, they never resize, reallocate or retain a Buffer.
//
// The element type is fixed at creation, and the compiler enforces that every operand of one operation has the
// same element type.
type Buffer[T dtypes.GoFloat] struct {
	flat []T
}

// NewBuffer allocates a zero-initialized Buffer with size elements.
func NewBuffer[T dtypes.GoFloat](size int) *Buffer[T] {
	return &Buffer[T]{flat: make([]T, size)}
}

// BufferFrom wraps the flat slice as a Buffer, without copying: changes to the buffer are visible in flat.
func BufferFrom[T dtypes.GoFloat](flat []T) *Buffer[T] {
	return &Buffer[T]{flat: flat}
}

// Len returns the number of elements in the buffer. A nil Buffer has 0 elements.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.flat)
}

// Flat returns the underlying storage.
func (b *Buffer[T]) Flat() []T {
	if b == nil {
		return nil
	}
	return b.flat
}

// DType returns the runtime identifier of the element type.
func (b *Buffer[T]) DType() dtypes.DType {
	return dtypes.FromGenericsType[T]()
}

// String implements fmt.Stringer.
func (b *Buffer[T]) String() string {
	return fmt.Sprintf("Buffer[%s](len=%d)", b.DType(), b.Len())
}
