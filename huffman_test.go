package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/huffman/errs"
)

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "reference message", message: "BACADAEAFABBAAAGAH"},
		{name: "english text", message: "aardvarks ate apples around aachen"},
		{name: "two symbols", message: "ababab"},
		{name: "all distinct", message: "abcdefgh"},
		{name: "unicode", message: "héllo wörld héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Encode(tt.message)
			require.NoError(t, err)
			require.NotNil(t, res)
			require.NoError(t, res.Book.Validate())

			decoded, err := Decode(res.Book, res.Bits)
			require.NoError(t, err)
			require.Equal(t, tt.message, decoded)
		})
	}
}

func TestEncode_EmptyMessage(t *testing.T) {
	res, err := Encode("")

	require.NoError(t, err)
	require.Nil(t, res, "empty message is a nothing-to-encode outcome, not an error")
}

func TestEncode_SingleSymbolMessage(t *testing.T) {
	res, err := Encode("AAAA")
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Len(t, res.Book, 1)
	require.Equal(t, "0", res.Book['A'].String())
	require.Equal(t, "0000", res.Bits.String())

	decoded, err := Decode(res.Book, res.Bits)
	require.NoError(t, err)
	require.Equal(t, "AAAA", decoded)
}

func TestEncode_Deterministic(t *testing.T) {
	const message = "BACADAEAFABBAAAGAH"

	first, err := Encode(message)
	require.NoError(t, err)

	second, err := Encode(message)
	require.NoError(t, err)

	require.Equal(t, first.Book, second.Book)
	require.Equal(t, first.Bits, second.Bits)
	require.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestEncode_BitsConcatenateInMessageOrder(t *testing.T) {
	res, err := Encode("aabc")
	require.NoError(t, err)

	var expected strings.Builder
	for _, r := range "aabc" {
		expected.WriteString(res.Book[r].String())
	}
	require.Equal(t, expected.String(), res.Bits.String())
}

func TestEncode_WithTreeTrace(t *testing.T) {
	var trace strings.Builder

	res, err := Encode("aabc", WithTreeTrace(&trace))
	require.NoError(t, err)
	require.NotNil(t, res)

	require.Contains(t, trace.String(), "left:")
	require.Contains(t, trace.String(), "right:")
	require.Contains(t, trace.String(), "a: 2")
}

func TestDecode_NoMatchingCode(t *testing.T) {
	res, err := Encode("aabc")
	require.NoError(t, err)

	// Corrupt the sequence with a stray bit no code can match.
	corrupted := append(res.Bits.Clone(), true)

	_, err = Decode(res.Book, corrupted)
	require.ErrorIs(t, err, errs.ErrNoMatchingCode)
}

func TestDecode_WrongCodebook(t *testing.T) {
	res, err := Encode("BACADAEAFABBAAAGAH")
	require.NoError(t, err)

	other, err := Encode("xy")
	require.NoError(t, err)

	// The wrong codebook must fail loudly, never return a silent wrong answer...
	decoded, err := Decode(other.Book, res.Bits)
	if err == nil {
		// ...unless the bits happen to decode; a two-symbol book decodes any
		// sequence, which is exactly what DecodeVerified exists to catch.
		require.NotEqual(t, "BACADAEAFABBAAAGAH", decoded)
	}

	_, err = DecodeVerified(other.Book, res.Fingerprint, res.Bits)
	require.ErrorIs(t, err, errs.ErrFingerprintMismatch)
}

func TestDecodeVerified_Match(t *testing.T) {
	res, err := Encode("aardvarks ate apples around aachen")
	require.NoError(t, err)

	decoded, err := DecodeVerified(res.Book, res.Fingerprint, res.Bits)
	require.NoError(t, err)
	require.Equal(t, "aardvarks ate apples around aachen", decoded)
}

func TestEncodeSymbols_RoundTrip(t *testing.T) {
	message := []int{1, 2, 3, 3, 2, 3, 5}

	res, err := EncodeSymbols(message)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Book, 4)

	decoded, err := DecodeSymbols(res.Book, res.Bits)
	require.NoError(t, err)
	require.Equal(t, message, decoded)
}

func TestEncode_CompressionBeatsFixedWidth(t *testing.T) {
	// 8 distinct symbols but heavily skewed toward 'A': the Huffman code must
	// beat the 3 bits/symbol a fixed-width code would need.
	const message = "BACADAEAFABBAAAGAH"

	res, err := Encode(message)
	require.NoError(t, err)
	require.Less(t, len(res.Bits), 3*len([]rune(message)))
}
