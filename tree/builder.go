package tree

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/arloliu/huffman/freq"
)

// heapItem pairs a subtree with its creation sequence number.
// The sequence number is the deterministic tie-break for equal weights.
type heapItem[S cmp.Ordered] struct {
	tree *Tree[S]
	seq  int
}

// treeHeap is a min-heap of subtrees ordered by (weight asc, sequence asc).
type treeHeap[S cmp.Ordered] []heapItem[S]

func (h treeHeap[S]) Len() int { return len(h) }

func (h treeHeap[S]) Less(i, j int) bool {
	if h[i].tree.weight != h[j].tree.weight {
		return h[i].tree.weight < h[j].tree.weight
	}

	return h[i].seq < h[j].seq
}

func (h treeHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *treeHeap[S]) Push(x any) {
	item, ok := x.(heapItem[S])
	if !ok {
		panic(fmt.Sprintf("treeHeap: unexpected element type %T", x))
	}
	*h = append(*h, item)
}

func (h *treeHeap[S]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Build constructs a Huffman tree from the frequency table.
//
// Each (symbol, count) entry becomes a single-leaf tree; all leaves enter a
// min-priority queue ordered by weight. The two lowest-weight trees are
// repeatedly popped and merged under a new internal node, with the first pop
// becoming the left child, until one tree remains.
//
// The build is fully deterministic: equal weights are tie-broken by creation
// order, and leaves are created in ascending symbol order before any merged
// node. The same frequency table therefore always yields the same tree shape
// and, downstream, the same codebook.
//
// Parameters:
//   - table: Frequency table; every entry must carry a strictly positive count
//   - opts: Optional build options, e.g. WithTrace for a structural dump
//
// Returns:
//   - *Tree[S]: The finished tree, or nil when the table is empty ("no tree")
//   - error: errs.ErrZeroCount or errs.ErrNegativeCount for degenerate
//     entries, or an option application error
//
// A single-entry table yields a lone leaf with no internal nodes; see
// codebook.Derive for how that degenerate tree is coded.
func Build[S cmp.Ordered](table freq.Table[S], opts ...BuildOption) (*Tree[S], error) {
	cfg := buildConfig{}
	if err := applyBuildOptions(&cfg, opts); err != nil {
		return nil, err
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, nil
	}

	// Ascending symbol order fixes the leaf sequence numbers; merged nodes
	// continue the sequence from there.
	symbols := table.Symbols()
	forest := make(treeHeap[S], 0, len(symbols))
	for i, sym := range symbols {
		forest = append(forest, heapItem[S]{tree: newLeaf(sym, table[sym]), seq: i})
	}
	heap.Init(&forest)

	seq := len(symbols)
	for forest.Len() > 1 {
		first, _ := heap.Pop(&forest).(heapItem[S])
		second, _ := heap.Pop(&forest).(heapItem[S])
		heap.Push(&forest, heapItem[S]{tree: merge(first.tree, second.tree), seq: seq})
		seq++
	}

	root := forest[0].tree
	if cfg.trace != nil {
		if err := root.Dump(cfg.trace); err != nil {
			return nil, fmt.Errorf("failed to write tree trace: %w", err)
		}
	}

	return root, nil
}
