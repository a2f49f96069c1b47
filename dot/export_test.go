package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/linkology"
	"github.com/viant/linkology/mock"
	"github.com/viant/linkology/traverse"
)

func listNode(value string, next *mock.Value) *mock.Value {
	if next == nil {
		next = mock.NullPointer()
	}
	return mock.NewNode(value, map[string]*mock.Value{
		"value": mock.NewScalar(value),
		"next":  next,
	})
}

func treeNode(value string, left, right *mock.Value) *mock.Value {
	if left == nil {
		left = mock.NullPointer()
	}
	if right == nil {
		right = mock.NullPointer()
	}
	return mock.NewNode(value, map[string]*mock.Value{
		"value": mock.NewScalar(value),
		"left":  left,
		"right": right,
	})
}

func TestChain(t *testing.T) {
	g := Chain([]string{"10", "20", "30"})
	assert.Equal(t, "G", g.Name)
	assert.Equal(t, []string{`rankdir="LR";`, "node [shape=box];"}, g.Attrs)
	assert.Equal(t, []Node{{ID: 0, Label: "10"}, {ID: 1, Label: "20"}, {ID: 2, Label: "30"}}, g.Nodes)
	assert.Equal(t, []Edge{{From: 0, To: 1}, {From: 1, To: 2}}, g.Edges)

	assert.Empty(t, Chain(nil).Nodes, "empty chain has no nodes")
}

func TestExport_Linear(t *testing.T) {
	head := listNode("10", listNode("20", nil))
	g := Export(head, traverse.New(traverse.Linear), false)
	assert.Equal(t, []Node{{ID: 0, Label: "10"}, {ID: 1, Label: "20"}}, g.Nodes)
	assert.Equal(t, []Edge{{From: 0, To: 1}}, g.Edges)
}

func TestTree_Export(t *testing.T) {
	left := treeNode("2", nil, nil)
	right := treeNode("3", nil, nil)
	root := treeNode("1", left, right)

	g := Tree(root, traverse.New(traverse.PreOrder), false)
	assert.Equal(t, "Tree", g.Name)
	assert.Equal(t, []string{"node [shape=circle];"}, g.Attrs)
	assert.Equal(t, []Node{
		{ID: linkology.Address(root), Label: "1"},
		{ID: linkology.Address(left), Label: "2"},
		{ID: linkology.Address(right), Label: "3"},
	}, g.Nodes)
	assert.Equal(t, []Edge{
		{From: linkology.Address(root), To: linkology.Address(left)},
		{From: linkology.Address(root), To: linkology.Address(right)},
	}, g.Edges)
}

func TestTree_SharedNodeDeclaredOnce(t *testing.T) {
	shared := treeNode("s", nil, nil)
	left := treeNode("a", nil, shared)
	right := treeNode("b", shared, nil)
	root := treeNode("r", left, right)

	g := Tree(root, traverse.New(traverse.PreOrder), false)
	assert.Len(t, g.Nodes, 4, "shared node is declared once")
	assert.Equal(t, []Edge{
		{From: linkology.Address(root), To: linkology.Address(left)},
		{From: linkology.Address(left), To: linkology.Address(shared)},
		{From: linkology.Address(root), To: linkology.Address(right)},
		{From: linkology.Address(right), To: linkology.Address(shared)},
	}, g.Edges, "every edge is kept even when its target was already visited")
}

func TestTree_Annotated(t *testing.T) {
	left := treeNode("2", nil, nil)
	right := treeNode("3", nil, nil)
	root := treeNode("1", left, right)

	g := Tree(root, traverse.New(traverse.InOrder), true)
	assert.Equal(t, []Node{
		{ID: linkology.Address(root), Label: "2: 1"},
		{ID: linkology.Address(left), Label: "1: 2"},
		{ID: linkology.Address(right), Label: "3: 3"},
	}, g.Nodes, "labels carry 1-based in-order positions")
}

func TestAdjacency(t *testing.T) {
	nodeA := mock.NewNode("A", map[string]*mock.Value{"value": mock.NewScalar("A")})
	nodeB := mock.NewNode("B", map[string]*mock.Value{"value": mock.NewScalar("B")})
	nodeC := mock.NewNode("C", map[string]*mock.Value{"value": mock.NewScalar("C")})
	nodeA.SetField("neighbors", mock.NewCollection(nodeB, nodeC, nodeB))
	nodeB.SetField("neighbors", mock.NewCollection(nodeA))
	nodeC.SetField("neighbors", mock.NewCollection())

	g := Adjacency(mock.NewCollection(nodeA, nodeB, nodeC), nil)
	assert.Equal(t, []Node{
		{ID: linkology.Address(nodeA), Label: "A"},
		{ID: linkology.Address(nodeB), Label: "B"},
		{ID: linkology.Address(nodeC), Label: "C"},
	}, g.Nodes)
	assert.Equal(t, []Edge{
		{From: linkology.Address(nodeA), To: linkology.Address(nodeB)},
		{From: linkology.Address(nodeA), To: linkology.Address(nodeC)},
		{From: linkology.Address(nodeB), To: linkology.Address(nodeA)},
	}, g.Edges, "duplicate neighbor edges are deduped")
}

func TestAdjacency_EmptyContainer(t *testing.T) {
	assert.Empty(t, Adjacency(nil, nil).Nodes)
	assert.Empty(t, Adjacency(mock.Invalid(), nil).Nodes)
	assert.Empty(t, Adjacency(mock.NewCollection(), nil).Nodes)
}
