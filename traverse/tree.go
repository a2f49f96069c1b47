package traverse

import (
	"github.com/viant/linkology"
)

// Tree traversals run on an explicit frame stack with child-index cursors
// instead of native recursion, so stack usage stays bounded regardless of
// input depth. Each frame holds the ordered subtree sequence of one node and
// the position at which the node's own value is emitted: position 0 for
// pre-order, after the left side (or first child) for in-order, after every
// child for post-order. The visiting order is identical to the recursive
// formulation.

type frame struct {
	seq     []linkology.Handle
	emitAt  int
	value   string
	addr    uint64
	idx     int
	emitted bool
}

type treeWalker struct {
	order     Order
	fields    *linkology.Fields
	visited   map[uint64]struct{}
	addrMode  bool
	maxItems  int
	values    []string
	addresses []uint64
}

func (t *Traversal) tree(root linkology.Handle, maxItems int) Result {
	w := &treeWalker{
		order:    t.order,
		fields:   t.fields,
		visited:  map[uint64]struct{}{},
		maxItems: maxItems,
	}
	w.walk(root)
	return Result{
		Values:   w.values,
		Metadata: Metadata{Truncated: len(w.values) >= maxItems},
	}
}

func (t *Traversal) treeAddresses(root linkology.Handle) []uint64 {
	w := &treeWalker{
		order:    t.order,
		fields:   t.fields,
		visited:  map[uint64]struct{}{},
		addrMode: true,
	}
	w.walk(root)
	return w.addresses
}

// bounded reports whether the value bound has been reached. Every append is
// guarded by it, so once the bound is hit the whole walk can stop: the
// recursive formulation would keep unwinding without any further output.
func (w *treeWalker) bounded() bool {
	return !w.addrMode && len(w.values) >= w.maxItems
}

func (w *treeWalker) walk(root linkology.Handle) {
	var stack []frame
	if !w.enter(&stack, root) {
		return
	}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if !top.emitted && top.idx == top.emitAt {
			top.emitted = true
			if w.bounded() {
				return
			}
			w.emit(top)
			continue
		}
		if top.idx >= len(top.seq) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.seq[top.idx]
		top.idx++
		if !w.enter(&stack, child) {
			return
		}
	}
}

func (w *treeWalker) emit(f *frame) {
	if w.addrMode {
		w.addresses = append(w.addresses, f.addr)
		return
	}
	w.values = append(w.values, f.value)
}

// enter begins the subtree rooted at h, pushing a frame when the node is
// fresh and readable. It returns false when the bound has been reached and
// the walk must stop.
func (w *treeWalker) enter(stack *[]frame, h linkology.Handle) bool {
	if h == nil {
		return true
	}
	addr := linkology.Address(h)
	if addr == 0 {
		return true
	}
	if w.bounded() {
		return false
	}
	if _, seen := w.visited[addr]; seen {
		if !w.addrMode {
			w.values = append(w.values, CycleMarker)
		}
		return true
	}
	w.visited[addr] = struct{}{}

	// Pre-order address collection records the address before the record is
	// read, so an unreadable node still contributes its address; post-order
	// records it after, in-order not at all.
	if w.addrMode && w.order == PreOrder {
		w.addresses = append(w.addresses, addr)
	}
	node := linkology.Dereference(h)
	if node == nil || !node.IsValid() {
		if w.addrMode && w.order == PostOrder {
			w.addresses = append(w.addresses, addr)
		}
		return true
	}

	f := frame{addr: addr}
	f.seq, f.emitAt = w.layout(node)
	if !w.addrMode {
		f.value = linkology.Summarize(w.fields.Value.Field(node))
	}
	if w.addrMode && w.order == PreOrder {
		f.emitted = true
	}
	*stack = append(*stack, f)
	return true
}

// layout computes the ordered subtree sequence of a node and the emit
// position of the node's own value within it.
func (w *treeWalker) layout(node linkology.Handle) ([]linkology.Handle, int) {
	switch w.order {
	case InOrder:
		return w.inOrderLayout(node)
	case PostOrder:
		seq := w.fields.ChildrenOf(node)
		return seq, len(seq)
	default:
		return w.fields.ChildrenOf(node), 0
	}
}

// inOrderLayout distinguishes strict binary semantics from the n-ary
// generalization. A children collection decides n-ary (first child, root,
// remaining children); otherwise structural presence of a left or right
// member, even a null one, decides binary (left, root, right).
func (w *treeWalker) inOrderLayout(node linkology.Handle) ([]linkology.Handle, int) {
	if w.fields.ChildCollection(node) != nil {
		seq := w.fields.ChildrenOf(node)
		if len(seq) == 0 {
			return nil, 0
		}
		return seq, 1
	}
	left, right, isBinary := w.fields.BinarySides(node)
	if !isBinary {
		return nil, 0
	}
	var seq []linkology.Handle
	emitAt := 0
	if left != nil && linkology.Address(left) != 0 {
		seq = append(seq, left)
		emitAt = 1
	}
	if right != nil && linkology.Address(right) != 0 {
		seq = append(seq, right)
	}
	return seq, emitAt
}
