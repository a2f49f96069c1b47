// Package graphjson renders a structural graph export as JSON consumable by
// browser-based graph renderers: nodes carry hex-formatted identity and a
// display label, edges reference node identities.
package graphjson

import (
	"fmt"

	"github.com/francoispqt/gojay"
	"github.com/viant/linkology/dot"
)

type (
	node  dot.Node
	edge  dot.Edge
	nodes []dot.Node
	edges []dot.Edge

	envelope struct {
		graph *dot.Graph
	}
)

// MarshalJSONObject encodes a single node declaration.
func (n *node) MarshalJSONObject(enc *gojay.Encoder) {
	id := fmt.Sprintf("0x%x", n.ID)
	enc.AddStringKey("id", id)
	enc.AddStringKey("label", n.Label)
	enc.AddStringKey("address", id)
}

// IsNil implements gojay.MarshalerJSONObject.
func (n *node) IsNil() bool {
	return n == nil
}

// MarshalJSONObject encodes a single edge.
func (e *edge) MarshalJSONObject(enc *gojay.Encoder) {
	enc.AddStringKey("from", fmt.Sprintf("0x%x", e.From))
	enc.AddStringKey("to", fmt.Sprintf("0x%x", e.To))
}

// IsNil implements gojay.MarshalerJSONObject.
func (e *edge) IsNil() bool {
	return e == nil
}

// MarshalJSONArray encodes the node declarations in emission order.
func (n nodes) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range n {
		item := node(n[i])
		enc.AddObject(&item)
	}
}

// IsNil implements gojay.MarshalerJSONArray.
func (n nodes) IsNil() bool {
	return len(n) == 0
}

// MarshalJSONArray encodes the edges in emission order.
func (e edges) MarshalJSONArray(enc *gojay.Encoder) {
	for i := range e {
		item := edge(e[i])
		enc.AddObject(&item)
	}
}

// IsNil implements gojay.MarshalerJSONArray.
func (e edges) IsNil() bool {
	return len(e) == 0
}

// MarshalJSONObject encodes the whole graph.
func (e *envelope) MarshalJSONObject(enc *gojay.Encoder) {
	enc.AddArrayKey("nodes", nodes(e.graph.Nodes))
	enc.AddArrayKey("edges", edges(e.graph.Edges))
}

// IsNil implements gojay.MarshalerJSONObject.
func (e *envelope) IsNil() bool {
	return e == nil || e.graph == nil
}

// Marshal renders the graph as JSON.
func Marshal(graph *dot.Graph) ([]byte, error) {
	if graph == nil {
		return nil, fmt.Errorf("failed to marshal graph: graph was nil")
	}
	return gojay.MarshalJSONObject(&envelope{graph: graph})
}
