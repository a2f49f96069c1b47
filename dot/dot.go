// Package dot exports pointer-linked structures as Graphviz dot graphs.
// The node/edge line shapes are a boundary contract consumed by downstream
// renderers: `Node_<address> [label="<escaped>"];` and
// `Node_<parent> -> Node_<child>;`.
package dot

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type (
	//Node is a single node declaration keyed by canonical address
	Node struct {
		ID    uint64
		Label string
	}

	//Edge connects two declared nodes
	Edge struct {
		From uint64
		To   uint64
	}

	//Graph holds a structural export: an ordered sequence of node
	//declarations and an ordered sequence of edges. A node appears at most
	//once as a declaration even when reached via multiple paths.
	Graph struct {
		Name  string
		Attrs []string
		Nodes []Node
		Edges []Edge
	}
)

// Escape escapes embedded quotes so a summary can be emitted as a label.
func Escape(label string) string {
	return strings.ReplaceAll(label, `"`, `\"`)
}

// NodeLines returns the node declarations in emission order.
func (g *Graph) NodeLines() []string {
	result := make([]string, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		result = append(result, fmt.Sprintf(`  Node_%d [label="%s"];`, node.ID, Escape(node.Label)))
	}
	return result
}

// EdgeLines returns the edge declarations in emission order.
func (g *Graph) EdgeLines() []string {
	result := make([]string, 0, len(g.Edges))
	for _, edge := range g.Edges {
		result = append(result, fmt.Sprintf("  Node_%d -> Node_%d;", edge.From, edge.To))
	}
	return result
}

// WriteTo renders the graph in Graphviz dot format.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	var builder strings.Builder
	name := g.Name
	if name == "" {
		name = "G"
	}
	builder.WriteString("digraph " + name + " {\n")
	for _, attr := range g.Attrs {
		builder.WriteString("  " + attr + "\n")
	}
	for _, line := range g.NodeLines() {
		builder.WriteString(line + "\n")
	}
	for _, line := range g.EdgeLines() {
		builder.WriteString(line + "\n")
	}
	builder.WriteString("}\n")
	n, err := io.WriteString(w, builder.String())
	return int64(n), err
}

// WriteFile renders the graph to a dot file. A write failure is a distinct
// outcome originating in the downstream writer, never in traversal.
func (g *Graph) WriteFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", filename, err)
	}
	defer file.Close()
	if _, err = g.WriteTo(file); err != nil {
		return fmt.Errorf("failed to write %v: %w", filename, err)
	}
	return nil
}
