// Package analysis reports how close a Huffman codebook comes to the entropy
// limit of its source frequency distribution.
//
// The Shannon entropy of a frequency table is the theoretical minimum number
// of bits per symbol any prefix-free code can achieve. Huffman codes are
// optimal among symbol codes, so their expected code length always lies
// within one bit of the entropy; the report quantifies that gap for a
// concrete message.
package analysis

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/huffman/codebook"
	"github.com/arloliu/huffman/freq"
)

// Report summarizes the coding efficiency of one codebook against the
// frequency table it was derived from.
type Report struct {
	// DistinctSymbols is the number of distinct symbols in the source table.
	DistinctSymbols int

	// TotalCount is the total number of symbol occurrences (message length).
	TotalCount int

	// Entropy is the Shannon entropy of the distribution, in bits per symbol.
	Entropy float64

	// AvgCodeLen is the expected code length under the codebook, in bits per
	// symbol, weighted by the frequency distribution.
	AvgCodeLen float64

	// Efficiency is Entropy / AvgCodeLen in [0, 1]; 1.0 means the code meets
	// the entropy limit exactly. 0 when AvgCodeLen is 0.
	Efficiency float64

	// EncodedBits is the total bit length of the encoded message.
	EncodedBits int

	// FixedWidthBits is the bit length a fixed-width code for the same
	// alphabet would need for the same message, for comparison.
	FixedWidthBits int
}

// String renders a one-line summary suitable for diagnostics.
func (r *Report) String() string {
	return fmt.Sprintf("symbols=%d count=%d entropy=%.4f avg=%.4f efficiency=%.2f%% encoded=%d fixed=%d",
		r.DistinctSymbols, r.TotalCount, r.Entropy, r.AvgCodeLen, r.Efficiency*100.0, r.EncodedBits, r.FixedWidthBits)
}

// Analyze computes the efficiency report for a codebook and the frequency
// table it was derived from.
//
// Parameters:
//   - table: Source frequency table, must be non-empty
//   - book: Codebook derived from table
//
// Returns:
//   - *Report: Efficiency report
//   - error: Error if the table is empty or a table symbol has no codebook entry
func Analyze[S cmp.Ordered](table freq.Table[S], book codebook.Book[S]) (*Report, error) {
	if len(table) == 0 {
		return nil, errors.New("empty frequency table")
	}

	total := table.Total()
	report := &Report{
		DistinctSymbols: len(table),
		TotalCount:      total,
	}

	encodedBits := 0
	entropy := 0.0
	for _, sym := range table.Symbols() {
		code, ok := book[sym]
		if !ok {
			return nil, fmt.Errorf("no codebook entry for symbol %v", sym)
		}

		count := table[sym]
		encodedBits += count * len(code)

		p := float64(count) / float64(total)
		entropy -= p * math.Log2(p)
	}

	report.Entropy = entropy
	report.EncodedBits = encodedBits
	report.AvgCodeLen = float64(encodedBits) / float64(total)
	if report.AvgCodeLen > 0 {
		report.Efficiency = entropy / report.AvgCodeLen
	}
	report.FixedWidthBits = fixedWidth(len(table)) * total

	return report, nil
}

// fixedWidth returns the bit width of a fixed-length code for an alphabet of
// n symbols, with a minimum of one bit.
func fixedWidth(n int) int {
	if n <= 2 {
		return 1
	}

	return bits.Len(uint(n - 1))
}
