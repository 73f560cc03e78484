// Package compress provides byte-level reference codecs for sizing Huffman
// output against general-purpose compressors.
//
// The Huffman pipeline itself produces abstract bit sequences, not packed
// bytes. This package exists beside it as a measurement aid: given the raw
// bytes of a message, the reference codecs (LZ4, S2, Zstandard) report how
// much a general-purpose algorithm would shrink the same input, which puts a
// Huffman code's bit count in context.
//
// All codecs implement the Codec interface:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, err := codec.Compress(data)
//	original, err := codec.Decompress(compressed)
package compress

import (
	"fmt"

	"github.com/arloliu/huffman/errs"
	"github.com/arloliu/huffman/format"
)

// Compressor compresses a byte payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload compressed by the matching Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Returns an error if the data is corrupted or was compressed with an
	// incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats reports the outcome of one reference compression measurement.
type Stats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression, in bytes.
	OriginalSize int64

	// CompressedSize is the size of data after compression, in bytes.
	CompressedSize int64
}

// Ratio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression; values greater than
// 1.0 indicate compression overhead.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// Measure compresses data with the given codec and reports the size outcome.
//
// Parameters:
//   - algorithm: Compression type for the report
//   - codec: Codec to measure
//   - data: Input payload
//
// Returns:
//   - Stats: Measurement result
//   - error: Compression error if any
func Measure(algorithm format.CompressionType, codec Codec, data []byte) (Stats, error) {
	compressed, err := codec.Compress(data)
	if err != nil {
		return Stats{}, fmt.Errorf("%s compression failed: %w", algorithm, err)
	}

	return Stats{
		Algorithm:      algorithm,
		OriginalSize:   int64(len(data)),
		CompressedSize: int64(len(compressed)),
	}, nil
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
}
