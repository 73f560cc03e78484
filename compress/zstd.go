package compress

// ZstdCompressor provides Zstandard compression.
//
// Zstandard delivers the best ratio among the reference codecs and is the
// most interesting comparison point for Huffman output: like Huffman it
// includes an entropy-coding stage, but it also exploits repetition that a
// pure symbol code cannot.
//
// Two implementations exist behind build tags: a cgo binding (valyala/gozstd)
// when cgo is available, and a pure-Go fallback (klauspost/compress/zstd)
// otherwise. Both produce interoperable Zstandard frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
