// Package huffman computes optimal prefix-free binary codes for symbol
// streams and uses them to transform messages into compact bit sequences and
// back.
//
// The pipeline has four stages, each available as its own package for
// fine-grained use:
//
//   - freq: tally occurrences of each distinct symbol
//   - tree: greedily merge the two lowest-weight subtrees via a min-heap
//   - codebook: derive one prefix-free code per symbol by tree traversal
//     (left=0, right=1) and perform bit-level encode/decode
//   - bitseq: the shared bit sequence representation
//
// This package wraps the pipeline for the common cases.
//
// # Basic Usage
//
// Encoding and decoding a string message:
//
//	import "github.com/arloliu/huffman"
//
//	res, err := huffman.Encode("BACADAEAFABBAAAGAH")
//	if err != nil {
//	    return err
//	}
//	if res == nil {
//	    // empty message: nothing to encode
//	}
//
//	decoded, err := huffman.Decode(res.Book, res.Bits)
//	// decoded == "BACADAEAFABBAAAGAH"
//
// Arbitrary ordered symbol types work through the generic API:
//
//	res, err := huffman.EncodeSymbols([]int{1, 2, 3, 3, 2, 3, 5})
//
// # Determinism
//
// The same message always produces the same tree, codebook and bit sequence:
// equal-weight subtrees are tie-broken by creation order, with leaves created
// in ascending symbol order. See tree.Build for the full rule.
//
// # Diagnostics
//
// A structural dump of the intermediate tree can be requested per call:
//
//	res, err := huffman.Encode(msg, huffman.WithTreeTrace(os.Stderr))
//
// The library itself never writes to stdout or stderr.
package huffman

import (
	"cmp"
	"fmt"
	"io"

	"github.com/arloliu/huffman/bitseq"
	"github.com/arloliu/huffman/codebook"
	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/internal/options"
	"github.com/arloliu/huffman/tree"
)

// Result bundles the outputs of one encode call.
//
// The codebook is returned alongside the bits because it is required for
// decoding and is not recoverable from the bit sequence alone.
type Result[S cmp.Ordered] struct {
	// Book maps each distinct message symbol to its prefix-free code.
	Book codebook.Book[S]

	// Bits is the encoded message: the concatenation, in message order, of
	// each symbol's code.
	Bits bitseq.Bits

	// Fingerprint identifies Book; see DecodeVerified.
	Fingerprint uint64
}

// encodeConfig holds configuration applied by encode options.
type encodeConfig struct {
	trace io.Writer
}

// EncodeOption is a functional option for Encode and EncodeSymbols.
type EncodeOption = options.Option[*encodeConfig]

// WithTreeTrace emits a human-readable dump of the intermediate Huffman tree
// to w during encoding. Diagnostic only; the encode result is unaffected.
func WithTreeTrace(w io.Writer) EncodeOption {
	return options.NoError(func(cfg *encodeConfig) {
		cfg.trace = w
	})
}

// EncodeSymbols encodes a symbol sequence with a Huffman code derived from
// the sequence's own frequency distribution.
//
// Parameters:
//   - message: Symbol sequence to encode
//   - opts: Optional encode options
//
// Returns:
//   - *Result[S]: Codebook, encoded bits and codebook fingerprint; nil with a
//     nil error for an empty message (nothing to encode)
//   - error: Option application error or tree build error
//
// The codebook is always derived from the message itself, so every message
// symbol has an entry; a missing entry at this point denotes a defect in the
// pipeline composition and panics rather than returning an error.
func EncodeSymbols[S cmp.Ordered](message []S, opts ...EncodeOption) (*Result[S], error) {
	cfg := encodeConfig{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	table := freq.Count(message)
	if len(table) == 0 {
		return nil, nil
	}

	var buildOpts []tree.BuildOption
	if cfg.trace != nil {
		buildOpts = append(buildOpts, tree.WithTrace(cfg.trace))
	}

	root, err := tree.Build(table, buildOpts...)
	if err != nil {
		return nil, err
	}

	book := codebook.Derive(root)
	bits, err := book.Encode(message)
	if err != nil {
		// The codebook was derived from this message's own frequency table,
		// so every symbol must have an entry.
		panic(fmt.Sprintf("huffman: codebook derived from message is missing a symbol: %v", err))
	}

	return &Result[S]{
		Book:        book,
		Bits:        bits,
		Fingerprint: book.Fingerprint(),
	}, nil
}

// Encode encodes a string message, treating each Unicode code point as one
// symbol. See EncodeSymbols for the full contract.
func Encode(message string, opts ...EncodeOption) (*Result[rune], error) {
	return EncodeSymbols([]rune(message), opts...)
}

// DecodeSymbols reconstructs a symbol sequence from a bit sequence produced
// by EncodeSymbols with the same codebook.
//
// Returns errs.ErrNoMatchingCode if the bits cannot be matched against the
// codebook; see codebook.Book.Decode.
func DecodeSymbols[S cmp.Ordered](book codebook.Book[S], bits bitseq.Bits) ([]S, error) {
	return book.Decode(bits)
}

// Decode reconstructs a string message from a bit sequence produced by
// Encode with the same codebook.
func Decode(book codebook.Book[rune], bits bitseq.Bits) (string, error) {
	symbols, err := book.Decode(bits)
	if err != nil {
		return "", err
	}

	return string(symbols), nil
}

// DecodeVerified checks the codebook against the fingerprint recorded at
// encode time before decoding.
//
// Parameters:
//   - book: Codebook to decode with
//   - fingerprint: Fingerprint from the matching Result
//   - bits: Encoded bit sequence
//
// Returns:
//   - string: Decoded message
//   - error: errs.ErrFingerprintMismatch if the codebook does not match, or
//     a decode error
func DecodeVerified(book codebook.Book[rune], fingerprint uint64, bits bitseq.Bits) (string, error) {
	if book.Fingerprint() != fingerprint {
		return "", fmt.Errorf("%w: got %#x, want %#x", errs.ErrFingerprintMismatch, book.Fingerprint(), fingerprint)
	}

	return Decode(book, bits)
}
