package linkology

// Strategy selects the traversal order used for tree summaries.
type Strategy string

const (
	//PreOrder visits root, then each child's subtree
	PreOrder Strategy = "preorder"
	//InOrder visits left (or first child), root, right (or remaining children)
	InOrder Strategy = "inorder"
	//PostOrder visits every child's subtree, then the root
	PostOrder Strategy = "postorder"
)

// IsValid reports whether the strategy is one of the supported orders.
func (s Strategy) IsValid() bool {
	switch s {
	case PreOrder, InOrder, PostOrder:
		return true
	}
	return false
}

// Config carries the caller-supplied limits and strategy selection. It is a
// plain value threaded into every traversal/export call; the engine reads it
// once per call and never mutates it.
type Config struct {
	//MaxSummaryItems bounds list/tree summary length
	MaxSummaryItems int
	//MaxGraphNeighbors bounds neighbors shown in a graph node summary
	MaxGraphNeighbors int
	//TreeStrategy selects the traversal order for tree summaries
	TreeStrategy Strategy
}

// DefaultConfig returns the default limits and strategy.
func DefaultConfig() Config {
	return Config{
		MaxSummaryItems:   30,
		MaxGraphNeighbors: 10,
		TreeStrategy:      PreOrder,
	}
}
