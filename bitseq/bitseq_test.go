package bitseq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBits_String(t *testing.T) {
	tests := []struct {
		name     string
		bits     Bits
		expected string
	}{
		{name: "empty", bits: nil, expected: ""},
		{name: "single zero", bits: Bits{false}, expected: "0"},
		{name: "single one", bits: Bits{true}, expected: "1"},
		{name: "mixed", bits: Bits{true, false, true, true, false}, expected: "10110"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.bits.String())
		})
	}
}

func TestParse(t *testing.T) {
	bits, err := Parse("10110")
	require.NoError(t, err)
	require.Equal(t, Bits{true, false, true, true, false}, bits)

	bits, err = Parse("")
	require.NoError(t, err)
	require.Nil(t, bits)

	_, err = Parse("10x1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "position 2")
}

func TestParse_RoundTrip(t *testing.T) {
	const s = "0011010111"

	bits, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, s, bits.String())
}

func TestBits_HasPrefix(t *testing.T) {
	bits, err := Parse("10110")
	require.NoError(t, err)

	tests := []struct {
		name     string
		prefix   string
		expected bool
	}{
		{name: "empty prefix", prefix: "", expected: true},
		{name: "proper prefix", prefix: "101", expected: true},
		{name: "full match", prefix: "10110", expected: true},
		{name: "wrong bit", prefix: "11", expected: false},
		{name: "longer than sequence", prefix: "101101", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, err := Parse(tt.prefix)
			require.NoError(t, err)
			require.Equal(t, tt.expected, bits.HasPrefix(prefix))
		})
	}
}

func TestBits_Clone(t *testing.T) {
	original := Bits{true, false, true}
	clone := original.Clone()

	require.True(t, original.Equal(clone))

	clone[0] = false
	require.True(t, original[0], "clone must not alias the original")

	require.Nil(t, Bits(nil).Clone())
}

func TestBits_Equal(t *testing.T) {
	a := Bits{true, false}
	require.True(t, a.Equal(Bits{true, false}))
	require.False(t, a.Equal(Bits{true}))
	require.False(t, a.Equal(Bits{false, true}))
	require.True(t, Bits(nil).Equal(Bits{}))
}
