// Package freq provides frequency counting over finite symbol sequences.
//
// A frequency table is the first stage of the Huffman pipeline: it tallies
// the occurrences of each distinct symbol in a message and feeds the tree
// builder. Counting is generic over any totally ordered symbol type, so the
// same machinery serves character streams and arbitrary discrete values.
package freq

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/huffman/errs"
)

// Table maps each distinct symbol to its occurrence count.
//
// Absent symbols have an implicit count of zero and are never represented;
// a table built by Count contains only strictly positive counts. The table
// is built once per message and treated as immutable afterward.
type Table[S cmp.Ordered] map[S]int

// Count tallies the occurrences of each distinct symbol in the sequence.
//
// Count is a pure function with no failure modes: an empty sequence yields
// an empty table, and the sum of all counts always equals len(symbols).
//
// Parameters:
//   - symbols: Finite sequence of symbols to tally
//
// Returns:
//   - Table[S]: Frequency table with one entry per distinct symbol
func Count[S cmp.Ordered](symbols []S) Table[S] {
	table := make(Table[S])
	for _, sym := range symbols {
		table[sym]++
	}

	return table
}

// CountString tallies the occurrences of each Unicode code point in the message.
//
// Each rune is treated as one atomic symbol; no normalization is applied.
func CountString(message string) Table[rune] {
	table := make(Table[rune])
	for _, r := range message {
		table[r]++
	}

	return table
}

// Total returns the sum of all counts, which equals the length of the
// counted sequence.
func (t Table[S]) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}

	return total
}

// Symbols returns the distinct symbols in ascending order.
//
// The sorted order makes downstream consumers deterministic regardless of
// map iteration order.
func (t Table[S]) Symbols() []S {
	symbols := make([]S, 0, len(t))
	for sym := range t {
		symbols = append(symbols, sym)
	}
	slices.Sort(symbols)

	return symbols
}

// Merge adds the counts of other into the receiver and returns the receiver.
//
// Merging is associative and commutative, so partial tables counted over
// chunks of a large message can be combined in any order.
func (t Table[S]) Merge(other Table[S]) Table[S] {
	for sym, count := range other {
		t[sym] += count
	}

	return t
}

// Validate checks that every entry carries a strictly positive count.
//
// Zero-count entries are not valid signal and must not reach the tree
// builder; negative counts are always a caller bug.
//
// Returns:
//   - error: errs.ErrZeroCount or errs.ErrNegativeCount wrapped with the
//     offending symbol, nil if the table is valid
func (t Table[S]) Validate() error {
	for sym, count := range t {
		if count == 0 {
			return fmt.Errorf("%w: symbol %v", errs.ErrZeroCount, sym)
		}
		if count < 0 {
			return fmt.Errorf("%w: symbol %v has count %d", errs.ErrNegativeCount, sym, count)
		}
	}

	return nil
}
