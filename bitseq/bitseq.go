// Package bitseq provides the bit sequence type shared by the huffman packages.
//
// A bit sequence is an ordered run of binary values representing either a
// single code (a root-to-leaf path in a Huffman tree) or a whole encoded
// message. Bits are kept as abstract boolean values; no byte packing is
// applied at this layer.
package bitseq

import (
	"fmt"
	"slices"
)

// Bits is an ordered sequence of bits. false is rendered as '0', true as '1'.
type Bits []bool

// String renders the sequence as a string of '0' and '1' characters.
//
// Returns:
//   - string: Textual form, e.g. "10110". Empty sequence yields "".
func (b Bits) String() string {
	buf := make([]byte, len(b))
	for i, bit := range b {
		if bit {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}

	return string(buf)
}

// Clone returns an independent copy of the sequence.
//
// The copy shares no memory with the receiver, so later appends to either
// sequence never alias the other.
func (b Bits) Clone() Bits {
	if len(b) == 0 {
		return nil
	}

	return slices.Clone(b)
}

// HasPrefix reports whether the sequence begins with prefix.
//
// The empty prefix is a prefix of every sequence.
func (b Bits) HasPrefix(prefix Bits) bool {
	if len(prefix) > len(b) {
		return false
	}

	for i, bit := range prefix {
		if b[i] != bit {
			return false
		}
	}

	return true
}

// Equal reports whether two sequences contain the same bits in the same order.
func (b Bits) Equal(other Bits) bool {
	return slices.Equal(b, other)
}

// Parse converts a string of '0' and '1' characters into a bit sequence.
//
// Parameters:
//   - s: Textual bit string, e.g. "0101". The empty string yields a nil sequence.
//
// Returns:
//   - Bits: Parsed bit sequence
//   - error: Error if s contains any character other than '0' or '1'
func Parse(s string) (Bits, error) {
	if len(s) == 0 {
		return nil, nil
	}

	bits := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = false
		case '1':
			bits[i] = true
		default:
			return nil, fmt.Errorf("invalid bit character %q at position %d", s[i], i)
		}
	}

	return bits, nil
}
