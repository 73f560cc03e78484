package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitBuffer_PushPop(t *testing.T) {
	bb := NewBitBuffer(4)

	bb.Push(true)
	bb.Push(false)
	require.Equal(t, 2, bb.Len())
	require.Equal(t, []bool{true, false}, bb.Bits())

	bb.Pop()
	require.Equal(t, []bool{true}, bb.Bits())

	bb.Reset()
	require.Zero(t, bb.Len())
}

func TestBitBuffer_PopEmptyPanics(t *testing.T) {
	bb := NewBitBuffer(0)

	require.Panics(t, func() { bb.Pop() })
}

func TestGetPathBuffer(t *testing.T) {
	bb, cleanup := GetPathBuffer()
	require.Zero(t, bb.Len(), "pooled buffer must be reset")

	bb.Push(true)
	cleanup()

	// Reacquired buffers start empty regardless of prior contents.
	bb2, cleanup2 := GetPathBuffer()
	defer cleanup2()
	require.Zero(t, bb2.Len())
}

func TestBitBuffer_GrowsBeyondInitialCapacity(t *testing.T) {
	bb := NewBitBuffer(2)

	for i := 0; i < 100; i++ {
		bb.Push(i%2 == 0)
	}
	require.Equal(t, 100, bb.Len())
}
