// Package summary renders one-line, human-readable summaries of linear,
// tree and graph containers on top of the traversal engine. Output is plain
// text; coloring belongs to the host presentation layer.
package summary

import (
	"fmt"
	"strings"

	"github.com/viant/linkology"
	"github.com/viant/linkology/traverse"
)

// Linear summarizes a linear container (list, stack, queue): resolves the
// head pointer, walks the chain and joins the bounded values, separating
// with <-> for doubly-linked chains.
func Linear(container linkology.Handle, config linkology.Config) string {
	fields := linkology.DefaultFields()
	head := fields.Head.Field(container)
	if head == nil {
		return "[no head pointer member]"
	}
	if linkology.Address(head) == 0 {
		return "size = 0, []"
	}
	result := traverse.New(traverse.Linear, traverse.WithFields(fields)).Traverse(head, config.MaxSummaryItems)

	separator := " -> "
	if result.Metadata.DoublyLinked {
		separator = " <-> "
	}
	joined := strings.Join(result.Values, separator)
	if result.Metadata.Truncated {
		joined += separator + "..."
	}
	return fmt.Sprintf("%v, [%v]", sizeOf(container, fields), joined)
}

// Tree summarizes a tree container using the configured traversal strategy.
func Tree(container linkology.Handle, config linkology.Config) string {
	fields := linkology.DefaultFields()
	root := fields.Root.Field(container)
	if root == nil || linkology.Address(root) == 0 {
		return "Tree is empty"
	}
	strategy := config.TreeStrategy
	if !strategy.IsValid() {
		strategy = linkology.PreOrder
	}
	order := traverse.ForStrategy(strategy)
	result := traverse.New(order, traverse.WithFields(fields)).Traverse(root, config.MaxSummaryItems)

	joined := strings.Join(result.Values, " -> ")
	if result.Metadata.Truncated {
		joined += " ..."
	}
	prefix := ""
	if size := sizeOf(container, fields); size != "" {
		prefix = size + ", "
	}
	return fmt.Sprintf("%v[%v] (%v)", prefix, joined, strategy)
}

// GraphNode summarizes a single graph node: its value followed by up to
// MaxGraphNeighbors neighbor values.
func GraphNode(node linkology.Handle, config linkology.Config) string {
	fields := linkology.DefaultFields()
	result := linkology.Summarize(fields.Value.Field(node))

	neighbors := fields.Neighbors.Field(node)
	if neighbors == nil || !neighbors.IsValid() || !neighbors.MightHaveChildren() {
		return result
	}
	count := neighbors.NumChildren()
	limit := count
	if limit > config.MaxGraphNeighbors {
		limit = config.MaxGraphNeighbors
	}
	var values []string
	for i := 0; i < limit; i++ {
		neighbor := neighbors.ChildAt(i)
		if neighbor != nil && neighbor.IsPointer() {
			neighbor = neighbor.Dereference()
		}
		if neighbor == nil || !neighbor.IsValid() {
			continue
		}
		values = append(values, linkology.Summarize(fields.Value.Field(neighbor)))
	}
	if len(values) > 0 {
		result += fmt.Sprintf(" -> [%v]", strings.Join(values, ", "))
	}
	if count > config.MaxGraphNeighbors {
		result += " ..."
	}
	return result
}

// GraphHeader summarizes a whole graph object from its node/edge counters.
func GraphHeader(graph linkology.Handle) string {
	fields := linkology.DefaultFields()
	result := "Graph"
	if nodes := fields.NodeCount.Field(graph); nodes != nil && nodes.IsValid() {
		result += fmt.Sprintf(" | V = %d", nodes.Uint())
	}
	if edges := fields.EdgeCount.Field(graph); edges != nil && edges.IsValid() {
		result += fmt.Sprintf(" | E = %d", edges.Uint())
	}
	return result
}

func sizeOf(container linkology.Handle, fields *linkology.Fields) string {
	size := fields.Size.Field(container)
	if size == nil || !size.IsValid() {
		return ""
	}
	return fmt.Sprintf("size = %d", size.Uint())
}
