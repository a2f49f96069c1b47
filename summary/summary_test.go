package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/linkology"
	"github.com/viant/linkology/mock"
)

func chainNode(value string, next *mock.Value) *mock.Value {
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

func TestLinear(t *testing.T) {
	config := linkology.DefaultConfig()

	var testCases = []struct {
		description string
		container   *mock.Value
		config      linkology.Config
		expect      string
	}{
		{
			description: "no head member",
			container:   mock.NewNode("", map[string]*mock.Value{"value": mock.NewScalar("x")}),
			config:      config,
			expect:      "[no head pointer member]",
		},
		{
			description: "empty list",
			container: mock.NewNode("", map[string]*mock.Value{
				"head":  mock.NullPointer(),
				"count": mock.NewUint(0),
			}),
			config: config,
			expect: "size = 0, []",
		},
		{
			description: "sized chain",
			container: mock.NewNode("", map[string]*mock.Value{
				"head":  chainNode("10", chainNode("20", chainNode("30", nil))),
				"count": mock.NewUint(3),
			}),
			config: config,
			expect: "size = 3, [10 -> 20 -> 30]",
		},
		{
			description: "no size member keeps the layout",
			container: mock.NewNode("", map[string]*mock.Value{
				"head": chainNode("10", chainNode("20", nil)),
			}),
			config: config,
			expect: ", [10 -> 20]",
		},
		{
			description: "truncation",
			container: mock.NewNode("", map[string]*mock.Value{
				"head":  chainNode("10", chainNode("20", chainNode("30", nil))),
				"count": mock.NewUint(3),
			}),
			config: linkology.Config{MaxSummaryItems: 2, MaxGraphNeighbors: 10, TreeStrategy: linkology.PreOrder},
			expect: "size = 3, [10 -> 20 -> ...]",
		},
		{
			description: "doubly linked separator",
			container: mock.NewNode("", map[string]*mock.Value{
				"head": chainNode("10", chainNode("20", nil)).
					SetField("prev", mock.NullPointer()),
				"count": mock.NewUint(2),
			}),
			config: config,
			expect: "size = 2, [10 <-> 20]",
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Linear(testCase.container, testCase.config), testCase.description)
	}
}

func TestTree(t *testing.T) {
	root := treeNode("2", treeNode("1", nil, nil), treeNode("3", nil, nil))

	var testCases = []struct {
		description string
		container   *mock.Value
		config      linkology.Config
		expect      string
	}{
		{
			description: "empty tree",
			container: mock.NewNode("", map[string]*mock.Value{
				"root": mock.NullPointer(),
			}),
			config: linkology.DefaultConfig(),
			expect: "Tree is empty",
		},
		{
			description: "no root member",
			container:   mock.NewNode("", map[string]*mock.Value{"value": mock.NewScalar("x")}),
			config:      linkology.DefaultConfig(),
			expect:      "Tree is empty",
		},
		{
			description: "sized pre-order",
			container: mock.NewNode("", map[string]*mock.Value{
				"root": root,
				"size": mock.NewUint(3),
			}),
			config: linkology.DefaultConfig(),
			expect: "size = 3, [2 -> 1 -> 3] (preorder)",
		},
		{
			description: "in-order without size",
			container:   mock.NewNode("", map[string]*mock.Value{"root": root}),
			config:      linkology.Config{MaxSummaryItems: 30, MaxGraphNeighbors: 10, TreeStrategy: linkology.InOrder},
			expect:      "[1 -> 2 -> 3] (inorder)",
		},
		{
			description: "invalid strategy falls back to pre-order",
			container:   mock.NewNode("", map[string]*mock.Value{"root": root}),
			config:      linkology.Config{MaxSummaryItems: 30, MaxGraphNeighbors: 10, TreeStrategy: linkology.Strategy("sideways")},
			expect:      "[2 -> 1 -> 3] (preorder)",
		},
		{
			description: "truncation",
			container:   mock.NewNode("", map[string]*mock.Value{"root": root}),
			config:      linkology.Config{MaxSummaryItems: 2, MaxGraphNeighbors: 10, TreeStrategy: linkology.PreOrder},
			expect:      "[2 -> 1 ...] (preorder)",
		},
	}

	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Tree(testCase.container, testCase.config), testCase.description)
	}
}

func TestGraphNode(t *testing.T) {
	config := linkology.DefaultConfig()

	nodeB := mock.NewNode("B", map[string]*mock.Value{"value": mock.NewScalar("B")})
	nodeC := mock.NewNode("C", map[string]*mock.Value{"value": mock.NewScalar("C")})
	nodeA := mock.NewNode("A", map[string]*mock.Value{
		"value":     mock.NewScalar("A"),
		"neighbors": mock.NewCollection(nodeB, nodeC),
	})

	assert.Equal(t, "A -> [B, C]", GraphNode(nodeA, config))
	assert.Equal(t, "B", GraphNode(nodeB, config), "no neighbors member")

	small := config
	small.MaxGraphNeighbors = 1
	assert.Equal(t, "A -> [B] ...", GraphNode(nodeA, small), "neighbor overflow")
}

func TestGraphHeader(t *testing.T) {
	graph := mock.NewNode("", map[string]*mock.Value{
		"num_nodes": mock.NewUint(5),
		"num_edges": mock.NewUint(7),
	})
	assert.Equal(t, "Graph | V = 5 | E = 7", GraphHeader(graph))

	nodesOnly := mock.NewNode("", map[string]*mock.Value{"num_nodes": mock.NewUint(5)})
	assert.Equal(t, "Graph | V = 5", GraphHeader(nodesOnly))

	assert.Equal(t, "Graph", GraphHeader(mock.NewNode("", nil)))
}
