package pool

import "sync"

// pathBufferDefaultSize is the initial capacity of pooled path buffers.
// Deep codebooks are rare; 64 bits covers any tree with up to 2^64 leaves.
const pathBufferDefaultSize = 64

// BitBuffer is a reusable bit accumulator backed by a bool slice.
//
// It is used as scratch space for root-to-leaf path accumulation during
// codebook derivation, where the same buffer grows and shrinks as the
// traversal descends and backtracks.
type BitBuffer struct {
	// B is the underlying bit slice.
	B []bool
}

// NewBitBuffer creates a new BitBuffer with the specified initial capacity.
func NewBitBuffer(capacity int) *BitBuffer {
	return &BitBuffer{B: make([]bool, 0, capacity)}
}

// Bits returns the underlying bit slice.
func (bb *BitBuffer) Bits() []bool {
	return bb.B
}

// Len returns the number of bits in the buffer.
func (bb *BitBuffer) Len() int {
	return len(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *BitBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Push appends a single bit to the buffer.
func (bb *BitBuffer) Push(bit bool) {
	bb.B = append(bb.B, bit)
}

// Pop removes the last bit from the buffer. Panics if the buffer is empty.
func (bb *BitBuffer) Pop() {
	if len(bb.B) == 0 {
		panic("Pop: empty bit buffer")
	}
	bb.B = bb.B[:len(bb.B)-1]
}

var pathBufferPool = sync.Pool{
	New: func() any {
		return NewBitBuffer(pathBufferDefaultSize)
	},
}

// GetPathBuffer retrieves an empty BitBuffer from the pool.
//
// The caller must call the returned cleanup function (typically with defer)
// to return the buffer to the pool once the accumulated bits are no longer
// referenced.
//
// Example:
//
//	path, cleanup := pool.GetPathBuffer()
//	defer cleanup()
//	// Use path as traversal scratch...
func GetPathBuffer() (*BitBuffer, func()) {
	bb, _ := pathBufferPool.Get().(*BitBuffer)
	bb.Reset()

	return bb, func() { pathBufferPool.Put(bb) }
}
