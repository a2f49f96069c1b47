package summary

import (
	"fmt"
	"io"

	"github.com/viant/linkology"
)

// WriteTree draws the tree rooted at root as an indented ASCII sketch, one
// node per line, pre-order, cycle safe. The walk runs on an explicit stack
// so sketch depth never depends on the call stack.
func WriteTree(w io.Writer, root linkology.Handle, fields *linkology.Fields) error {
	if fields == nil {
		fields = linkology.DefaultFields()
	}
	type entry struct {
		handle linkology.Handle
		prefix string
		isLast bool
	}
	visited := map[uint64]struct{}{}
	stack := []entry{{handle: root, prefix: "", isLast: true}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		addr := linkology.Address(current.handle)
		if addr == 0 {
			continue
		}
		connector := "├── "
		if current.isLast {
			connector = "└── "
		}
		if _, seen := visited[addr]; seen {
			if _, err := fmt.Fprintf(w, "%v%v[CYCLE]\n", current.prefix, connector); err != nil {
				return fmt.Errorf("failed to write tree sketch: %w", err)
			}
			continue
		}
		visited[addr] = struct{}{}

		node := linkology.Dereference(current.handle)
		if node == nil || !node.IsValid() {
			continue
		}
		value := linkology.Summarize(fields.Value.Field(node))
		if _, err := fmt.Fprintf(w, "%v%v%v\n", current.prefix, connector, value); err != nil {
			return fmt.Errorf("failed to write tree sketch: %w", err)
		}

		childPrefix := current.prefix + "│   "
		if current.isLast {
			childPrefix = current.prefix + "    "
		}
		children := fields.ChildrenOf(node)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, entry{
				handle: children[i],
				prefix: childPrefix,
				isLast: i == len(children)-1,
			})
		}
	}
	return nil
}
