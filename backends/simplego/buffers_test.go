package simplego

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScratch(t *testing.T) {
	s32 := getScratch[float32](3)
	require.Len(t, *s32, 3)
	(*s32)[0] = 7
	putScratch(s32)

	// Pools are separated by dtype and length.
	s64 := getScratch[float64](3)
	require.Len(t, *s64, 3)
	s32b := getScratch[float32](5)
	require.Len(t, *s32b, 5)
	putScratch(s64)
	putScratch(s32b)
	putScratch[float32](nil)
}
