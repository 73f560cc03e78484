// Package tree provides Huffman tree construction from frequency tables.
//
// A Huffman tree is a strict binary tree: every internal node has exactly two
// children, which guarantees that every leaf's root-to-leaf path has length
// at least one and that paths to distinct leaves are never prefixes of one
// another. Leaves carry symbols and their occurrence counts; internal nodes
// carry the sum of their subtrees' weights.
//
// Construction is greedy: the two lowest-weight subtrees are merged until a
// single tree remains. See Build for the deterministic tie-break rule.
package tree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// Tree is a node of a Huffman tree, either a leaf or an internal node.
//
// A leaf holds one symbol and its occurrence count. An internal node owns
// exactly two child subtrees and caches the sum of their weights. Trees are
// immutable after Build returns.
type Tree[S cmp.Ordered] struct {
	left   *Tree[S]
	right  *Tree[S]
	symbol S
	weight int
}

// newLeaf creates a leaf holding one symbol and its occurrence count.
func newLeaf[S cmp.Ordered](symbol S, count int) *Tree[S] {
	return &Tree[S]{symbol: symbol, weight: count}
}

// merge combines two subtrees under a new internal node.
// The first argument becomes the left child.
func merge[S cmp.Ordered](left, right *Tree[S]) *Tree[S] {
	return &Tree[S]{
		left:   left,
		right:  right,
		weight: left.weight + right.weight,
	}
}

// IsLeaf reports whether the node is a leaf.
func (t *Tree[S]) IsLeaf() bool {
	return t.left == nil
}

// Weight returns the total occurrence count of all symbols in the subtree.
func (t *Tree[S]) Weight() int {
	return t.weight
}

// Symbol returns the leaf's symbol. The second result is false for internal
// nodes, whose symbol field is meaningless.
func (t *Tree[S]) Symbol() (S, bool) {
	if !t.IsLeaf() {
		var zero S
		return zero, false
	}

	return t.symbol, true
}

// Left returns the left child, or nil for a leaf.
func (t *Tree[S]) Left() *Tree[S] {
	return t.left
}

// Right returns the right child, or nil for a leaf.
func (t *Tree[S]) Right() *Tree[S] {
	return t.right
}

// Symbols returns the leaf symbols in left-to-right tree order.
func (t *Tree[S]) Symbols() []S {
	if t.IsLeaf() {
		return []S{t.symbol}
	}

	return append(t.left.Symbols(), t.right.Symbols()...)
}

// Leaves returns the number of leaves in the subtree.
func (t *Tree[S]) Leaves() int {
	if t.IsLeaf() {
		return 1
	}

	return t.left.Leaves() + t.right.Leaves()
}

// dumpIndent is the per-depth indentation of the Dump format.
const dumpIndent = "  "

// Dump writes a human-readable rendering of the tree to w.
//
// Leaves render as "<symbol>: <weight>"; internal nodes render their children
// under "left:" and "right:" labels, indented two spaces per depth. The
// format is a diagnostic aid, not a stable machine-readable contract.
func (t *Tree[S]) Dump(w io.Writer) error {
	return t.dump(w, 0)
}

func (t *Tree[S]) dump(w io.Writer, depth int) error {
	indent := strings.Repeat(dumpIndent, depth)
	if t.IsLeaf() {
		_, err := fmt.Fprintf(w, "%s%s: %d\n", indent, formatSymbol(t.symbol), t.weight)
		return err
	}

	if _, err := fmt.Fprintf(w, "%sleft:\n", indent); err != nil {
		return err
	}
	if err := t.left.dump(w, depth+1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%sright:\n", indent); err != nil {
		return err
	}

	return t.right.dump(w, depth+1)
}

// formatSymbol renders a symbol for the dump. Rune symbols render as
// characters rather than code-point integers.
func formatSymbol[S cmp.Ordered](sym S) string {
	if r, ok := any(sym).(rune); ok {
		return string(r)
	}

	return fmt.Sprint(sym)
}
