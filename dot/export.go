package dot

import (
	"fmt"

	"github.com/viant/linkology"
	"github.com/viant/linkology/traverse"
)

// chainMaxItems bounds the linear fallback export.
const chainMaxItems = 1000

// Export builds a structural graph for the structure rooted at root. Tree
// orders walk the real parent/child structure; a linear traversal falls back
// to a sequential chain of its values. When annotate is set, each node label
// is prefixed with the node's 1-based position in the traversal order.
func Export(root linkology.Handle, trav *traverse.Traversal, annotate bool) *Graph {
	if trav.Order() == traverse.Linear {
		result := trav.Traverse(root, chainMaxItems)
		return Chain(result.Values)
	}
	return Tree(root, trav, annotate)
}

// Chain exports traversal values as a sequential chain: one node per value
// in traversal order, keyed by ordinal, with an edge between consecutive
// nodes.
func Chain(values []string) *Graph {
	g := &Graph{Name: "G", Attrs: []string{`rankdir="LR";`, "node [shape=box];"}}
	for i, value := range values {
		g.Nodes = append(g.Nodes, Node{ID: uint64(i), Label: value})
		if i > 0 {
			g.Edges = append(g.Edges, Edge{From: uint64(i - 1), To: uint64(i)})
		}
	}
	return g
}

// Tree exports the tree rooted at root with a single visited-guarded
// depth-first walk: each newly visited node is declared once, each edge is
// emitted before descending into its child.
func Tree(root linkology.Handle, trav *traverse.Traversal, annotate bool) *Graph {
	g := &Graph{Name: "Tree", Attrs: []string{"node [shape=circle];"}}
	fields := trav.Fields()

	var positions map[uint64]int
	if annotate {
		ordered := trav.OrderedAddresses(root)
		positions = make(map[uint64]int, len(ordered))
		for i, addr := range ordered {
			positions[addr] = i + 1
		}
	}

	type frame struct {
		addr uint64
		kids []linkology.Handle
		idx  int
	}
	visited := map[uint64]struct{}{}
	var stack []frame

	enter := func(h linkology.Handle) {
		addr := linkology.Address(h)
		if addr == 0 {
			return
		}
		if _, seen := visited[addr]; seen {
			return
		}
		visited[addr] = struct{}{}
		node := linkology.Dereference(h)
		if node == nil || !node.IsValid() {
			return
		}
		label := linkology.Summarize(fields.Value.Field(node))
		if position, ok := positions[addr]; ok {
			label = fmt.Sprintf("%d: %s", position, label)
		}
		g.Nodes = append(g.Nodes, Node{ID: addr, Label: label})
		stack = append(stack, frame{addr: addr, kids: fields.ChildrenOf(node)})
	}

	enter(root)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.idx >= len(top.kids) {
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.kids[top.idx]
		top.idx++
		childAddr := linkology.Address(child)
		if childAddr == 0 {
			continue
		}
		g.Edges = append(g.Edges, Edge{From: top.addr, To: childAddr})
		enter(child)
	}
	return g
}

// Adjacency exports an adjacency-list graph given the handle of its node
// container. Node declarations and edges are deduped, preserving first-seen
// order.
func Adjacency(container linkology.Handle, fields *linkology.Fields) *Graph {
	g := &Graph{Name: "G", Attrs: []string{`rankdir="LR";`, "node [shape=circle];"}}
	if container == nil || !container.IsValid() {
		return g
	}
	if fields == nil {
		fields = linkology.DefaultFields()
	}
	declared := map[uint64]struct{}{}
	seenEdges := map[Edge]struct{}{}

	for i := 0; i < container.NumChildren(); i++ {
		node := container.ChildAt(i)
		if node != nil && node.IsPointer() {
			node = node.Dereference()
		}
		if node == nil || !node.IsValid() {
			continue
		}
		addr := linkology.Address(node)
		if _, ok := declared[addr]; !ok {
			declared[addr] = struct{}{}
			g.Nodes = append(g.Nodes, Node{ID: addr, Label: linkology.Summarize(fields.Value.Field(node))})
		}
		neighbors := fields.Neighbors.Field(node)
		if neighbors == nil || !neighbors.IsValid() {
			continue
		}
		for j := 0; j < neighbors.NumChildren(); j++ {
			neighbor := neighbors.ChildAt(j)
			if neighbor != nil && neighbor.IsPointer() {
				neighbor = neighbor.Dereference()
			}
			if neighbor == nil || !neighbor.IsValid() {
				continue
			}
			edge := Edge{From: addr, To: linkology.Address(neighbor)}
			if _, ok := seenEdges[edge]; ok {
				continue
			}
			seenEdges[edge] = struct{}{}
			g.Edges = append(g.Edges, edge)
		}
	}
	return g
}
