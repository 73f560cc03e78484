// Package codebook derives prefix-free codebooks from Huffman trees and
// performs the bit-level encode and decode steps of the pipeline.
//
// A codebook maps each symbol to its root-to-leaf path in the source tree,
// with a 0 bit for each left descent and a 1 bit for each right descent.
// Because paths to distinct leaves in a strict binary tree are never prefixes
// of one another, the resulting codes are prefix-free and decoding is an
// unambiguous greedy scan.
//
// The codebook owns its bit sequences and keeps no reference to the tree, so
// the tree may be discarded once derivation completes.
package codebook

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/huffman/bitseq"
	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/internal/hash"
	"github.com/arloliu/huffman/internal/pool"
	"github.com/arloliu/huffman/tree"
)

// Book maps each distinct symbol of the source tree to its code.
//
// A Book holds exactly one entry per leaf of the tree it was derived from,
// and is immutable once derived.
type Book[S cmp.Ordered] map[S]bitseq.Bits

// Derive walks the tree depth-first and records the accumulated bit path at
// every leaf.
//
// Left descents append a 0 bit, right descents a 1 bit, and siblings are
// visited left before right, so derivation is deterministic for a given tree
// shape.
//
// A tree that is a single leaf never descends, which would leave its one
// symbol with an empty code and make the encoded message unrecoverable
// (every occurrence would contribute zero bits). Such a leaf is assigned the
// one-bit code "0" instead, preserving the round-trip property for
// single-symbol alphabets.
//
// Parameters:
//   - t: Source tree, never nil (the no-tree case is handled upstream)
//
// Returns:
//   - Book[S]: Codebook with one prefix-free code per distinct symbol
func Derive[S cmp.Ordered](t *tree.Tree[S]) Book[S] {
	book := make(Book[S], t.Leaves())

	if t.IsLeaf() {
		sym, _ := t.Symbol()
		book[sym] = bitseq.Bits{false}

		return book
	}

	path, cleanup := pool.GetPathBuffer()
	defer cleanup()

	traverse(t, path, book)

	return book
}

// traverse accumulates the root-to-leaf path in a shared scratch buffer,
// cloning it at each leaf so the recorded codes never alias the scratch.
func traverse[S cmp.Ordered](t *tree.Tree[S], path *pool.BitBuffer, book Book[S]) {
	if t.IsLeaf() {
		sym, _ := t.Symbol()
		book[sym] = bitseq.Bits(slices.Clone(path.Bits()))

		return
	}

	path.Push(false)
	traverse(t.Left(), path, book)
	path.Pop()

	path.Push(true)
	traverse(t.Right(), path, book)
	path.Pop()
}

// Symbols returns the coded symbols in ascending order.
func (b Book[S]) Symbols() []S {
	symbols := make([]S, 0, len(b))
	for sym := range b {
		symbols = append(symbols, sym)
	}
	slices.Sort(symbols)

	return symbols
}

// Encode maps each message symbol, in original order, to its code and
// concatenates the results into one bit sequence.
//
// Parameters:
//   - message: Symbol sequence to encode
//
// Returns:
//   - bitseq.Bits: Concatenated codes in message order (nil for an empty message)
//   - error: errs.ErrUnknownSymbol if a message symbol has no codebook entry
//
// When the codebook was derived from the message's own frequency table the
// error is unreachable; it can only occur for externally supplied messages
// containing symbols absent from the codebook's alphabet.
func (b Book[S]) Encode(message []S) (bitseq.Bits, error) {
	if len(message) == 0 {
		return nil, nil
	}

	// Pre-size the output to the exact encoded length.
	total := 0
	for _, sym := range message {
		code, ok := b[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %v", errs.ErrUnknownSymbol, sym)
		}
		total += len(code)
	}

	encoded := make(bitseq.Bits, 0, total)
	for _, sym := range message {
		encoded = append(encoded, b[sym]...)
	}

	return encoded, nil
}

// Decode reconstructs the message from a bit sequence produced by Encode
// with the same codebook.
//
// Starting at the current position, the decoder finds the codebook entry
// whose code is a prefix of the remaining bits, emits its symbol, advances
// past the matched code, and repeats until the sequence is exhausted.
// Because codes are prefix-free, at most one entry can match at any
// position; the scan order among entries affects efficiency only, not the
// result.
//
// Parameters:
//   - bits: Encoded bit sequence
//
// Returns:
//   - []S: Reconstructed message (nil for an empty bit sequence)
//   - error: errs.ErrNoMatchingCode if no entry's code is a prefix of the
//     remaining bits, which signals a corrupted sequence or a codebook that
//     does not match the encoder's
func (b Book[S]) Decode(bits bitseq.Bits) ([]S, error) {
	if len(bits) == 0 {
		return nil, nil
	}

	// Scan entries in symbol order so error positions are deterministic.
	symbols := b.Symbols()

	var message []S
	pos := 0
	for pos < len(bits) {
		matched := false
		for _, sym := range symbols {
			code := b[sym]
			if len(code) == 0 || !bits[pos:].HasPrefix(code) {
				continue
			}
			message = append(message, sym)
			pos += len(code)
			matched = true

			break
		}
		if !matched {
			return nil, fmt.Errorf("%w: bit position %d", errs.ErrNoMatchingCode, pos)
		}
	}

	return message, nil
}

// Validate checks that the codebook is prefix-free and that every code is
// non-empty.
//
// Codebooks produced by Derive satisfy both properties by construction;
// Validate exists for codebooks reconstructed by external collaborators.
//
// Returns:
//   - error: Description of the first violation found, nil if the codebook
//     is valid
func (b Book[S]) Validate() error {
	symbols := b.Symbols()
	for i, sym := range symbols {
		code := b[sym]
		if len(code) == 0 {
			return fmt.Errorf("empty code for symbol %v", sym)
		}
		for _, other := range symbols[i+1:] {
			otherCode := b[other]
			if code.HasPrefix(otherCode) || otherCode.HasPrefix(code) {
				return fmt.Errorf("code for symbol %v is a prefix of code for symbol %v", sym, other)
			}
		}
	}

	return nil
}

// Fingerprint returns a stable 64-bit identifier of the codebook contents.
//
// Two codebooks have equal fingerprints exactly when they map the same
// symbols to the same codes (modulo hash collisions). Decoders can compare
// fingerprints before decoding to detect a codebook that does not match the
// one returned at encode time.
func (b Book[S]) Fingerprint() uint64 {
	var buf []byte
	for _, sym := range b.Symbols() {
		buf = fmt.Appendf(buf, "%v", sym)
		buf = append(buf, 0x00)
		buf = append(buf, b[sym].String()...)
		buf = append(buf, 0x00)
	}

	return hash.Sum(buf)
}
