// Package errs defines sentinel errors shared across the huffman packages.
//
// Errors are exposed as package-level variables so callers can classify
// failures with errors.Is regardless of the wrapping context added at the
// call site:
//
//	msg, err := book.Decode(bits)
//	if errors.Is(err, errs.ErrNoMatchingCode) {
//	    // corrupted bit sequence or wrong codebook
//	}
package errs

import "errors"

var (
	// ErrZeroCount indicates a frequency table entry with a zero count.
	// Zero-count symbols carry no signal and must not reach the tree builder.
	ErrZeroCount = errors.New("zero frequency count")

	// ErrNegativeCount indicates a frequency table entry with a negative count.
	ErrNegativeCount = errors.New("negative frequency count")

	// ErrUnknownSymbol indicates a message symbol with no codebook entry.
	ErrUnknownSymbol = errors.New("symbol not in codebook")

	// ErrNoMatchingCode indicates that no codebook entry is a prefix of the
	// remaining bit sequence during decoding. It signals a corrupted bit
	// sequence or a codebook that does not match the encoder's.
	ErrNoMatchingCode = errors.New("no matching code")

	// ErrFingerprintMismatch indicates that a codebook's fingerprint does not
	// match the fingerprint recorded at encode time.
	ErrFingerprintMismatch = errors.New("codebook fingerprint mismatch")

	// ErrInvalidCompressionType indicates an unsupported compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)
