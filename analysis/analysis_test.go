package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/huffman/codebook"
	"github.com/arloliu/huffman/freq"
	"github.com/arloliu/huffman/tree"
)

func analyzeString(t *testing.T, message string) *Report {
	t.Helper()

	table := freq.CountString(message)
	root, err := tree.Build(table)
	require.NoError(t, err)

	report, err := Analyze(table, codebook.Derive(root))
	require.NoError(t, err)

	return report
}

func TestAnalyze_UniformDistribution(t *testing.T) {
	// Four equally likely symbols: entropy is exactly 2 bits/symbol and the
	// Huffman code meets it, so efficiency is 1.
	report := analyzeString(t, "abcd")

	require.Equal(t, 4, report.DistinctSymbols)
	require.Equal(t, 4, report.TotalCount)
	require.InDelta(t, 2.0, report.Entropy, 1e-9)
	require.InDelta(t, 2.0, report.AvgCodeLen, 1e-9)
	require.InDelta(t, 1.0, report.Efficiency, 1e-9)
	require.Equal(t, 8, report.EncodedBits)
	require.Equal(t, 8, report.FixedWidthBits)
}

func TestAnalyze_SingleSymbol(t *testing.T) {
	// Entropy of a certain outcome is zero, but the forced one-bit code still
	// costs a bit per occurrence.
	report := analyzeString(t, "AAAA")

	require.Zero(t, report.Entropy)
	require.InDelta(t, 1.0, report.AvgCodeLen, 1e-9)
	require.Zero(t, report.Efficiency)
	require.Equal(t, 4, report.EncodedBits)
	require.Equal(t, 4, report.FixedWidthBits)
}

func TestAnalyze_AvgCodeLenWithinOneBitOfEntropy(t *testing.T) {
	messages := []string{
		"BACADAEAFABBAAAGAH",
		"aardvarks ate apples around aachen",
		"Hello World",
	}

	for _, message := range messages {
		report := analyzeString(t, message)

		require.GreaterOrEqual(t, report.AvgCodeLen, report.Entropy,
			"no prefix-free code can beat the entropy of %q", message)
		require.Less(t, report.AvgCodeLen, report.Entropy+1.0,
			"a Huffman code stays within one bit of the entropy of %q", message)
	}
}

func TestAnalyze_EmptyTable(t *testing.T) {
	_, err := Analyze(freq.Table[rune]{}, codebook.Book[rune]{})
	require.ErrorContains(t, err, "empty frequency table")
}

func TestAnalyze_MissingEntry(t *testing.T) {
	table := freq.CountString("ab")

	_, err := Analyze(table, codebook.Book[rune]{})
	require.ErrorContains(t, err, "no codebook entry")
}

func TestReport_String(t *testing.T) {
	report := analyzeString(t, "abcd")

	require.Contains(t, report.String(), "symbols=4")
	require.Contains(t, report.String(), "efficiency=100.00%")
}
