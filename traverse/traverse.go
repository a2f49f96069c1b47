// Package traverse implements the traversal strategies over pointer-linked
// structures reached through the linkology.Handle capability set. Every
// traversal is cycle safe: a visited set keyed by canonical address gates
// each node visit, so traversal terminates on arbitrary cyclic input.
package traverse

import (
	"github.com/viant/linkology"
)

// Control markers surfaced in-band inside result values. By convention every
// marker is prefixed with '[' so callers can tell them from data.
const (
	//CycleMarker is appended when a tree traversal revisits a node
	CycleMarker = "[CYCLE]"
	//LinearCycleMarker is appended when a linear walk revisits a node
	LinearCycleMarker = "[CYCLE DETECTED]"
	//UnresolvedMarker is returned alone when next/value cannot be located
	//on the first node of a linear structure
	UnresolvedMarker = "[UNRESOLVED: could not determine node structure (value/next)]"
)

// Order identifies a traversal strategy.
type Order int

const (
	//Linear iterates a next-pointer chain
	Linear Order = iota
	//PreOrder visits root, then each child's subtree
	PreOrder
	//InOrder visits left (or first child), root, right (or remaining children)
	InOrder
	//PostOrder visits every child's subtree, then the root
	PostOrder
)

type (
	//Metadata describes how a traversal ended
	Metadata struct {
		//Truncated is set when the maxItems bound stopped the walk
		Truncated bool
		//DoublyLinked is set when the first node structurally owns a
		//prev-shaped field; meaningful for Linear only
		DoublyLinked bool
	}

	//Result holds an ordered sequence of value summaries plus traversal
	//metadata. Control markers appear in-band among the values.
	Result struct {
		Values   []string
		Metadata Metadata
	}

	//Traversal binds an order to the candidate field sets it probes with
	Traversal struct {
		order  Order
		fields *linkology.Fields
	}

	//Option customizes a traversal
	Option func(t *Traversal)
)

// WithFields overrides the candidate field sets.
func WithFields(fields *linkology.Fields) Option {
	return func(t *Traversal) {
		t.fields = fields
	}
}

// New creates a traversal with the supplied order.
func New(order Order, opts ...Option) *Traversal {
	t := &Traversal{order: order, fields: linkology.DefaultFields()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ForStrategy maps a configured tree strategy to a traversal order,
// defaulting to pre-order.
func ForStrategy(strategy linkology.Strategy) Order {
	switch strategy {
	case linkology.InOrder:
		return InOrder
	case linkology.PostOrder:
		return PostOrder
	}
	return PreOrder
}

// Order returns the traversal order.
func (t *Traversal) Order() Order {
	return t.order
}

// Fields returns the candidate field sets the traversal probes with.
func (t *Traversal) Fields() *linkology.Fields {
	return t.fields
}

// Traverse walks the structure rooted at root and returns at most maxItems
// value summaries plus metadata. A nil or null root returns an empty result.
func (t *Traversal) Traverse(root linkology.Handle, maxItems int) Result {
	if t.order == Linear {
		return t.linear(root, maxItems)
	}
	return t.tree(root, maxItems)
}

// OrderedAddresses performs the identical walk recording canonical addresses
// instead of values, with no bound and no cycle markers: a revisited node
// simply stops descent. Defined for tree orders; Linear returns nil.
func (t *Traversal) OrderedAddresses(root linkology.Handle) []uint64 {
	if t.order == Linear {
		return nil
	}
	return t.treeAddresses(root)
}
