package traverse

import (
	"github.com/viant/linkology"
)

// linear iterates a next-pointer chain. The next and value field names are
// resolved once, on the first node, and reused for the whole walk. The walk
// stops when the next pointer becomes null, when maxItems is reached
// (truncated, no cycle marker), or when an address repeats (single cycle
// marker, not counted against the bound).
func (t *Traversal) linear(root linkology.Handle, maxItems int) Result {
	if linkology.Address(root) == 0 {
		return Result{}
	}
	first := linkology.Dereference(root)
	if first == nil || !first.IsValid() {
		return Result{}
	}

	nextName, hasNext := t.fields.Next.Resolve(first)
	valueName, hasValue := t.fields.Value.Resolve(first)
	_, doublyLinked := t.fields.Prev.Resolve(first)
	if !hasNext || !hasValue {
		return Result{Values: []string{UnresolvedMarker}}
	}

	var values []string
	visited := map[uint64]struct{}{}
	current := root
	truncated := false

	for linkology.Address(current) != 0 {
		if len(values) >= maxItems {
			truncated = true
			break
		}
		addr := linkology.Address(current)
		if _, seen := visited[addr]; seen {
			values = append(values, LinearCycleMarker)
			break
		}
		visited[addr] = struct{}{}

		node := linkology.Dereference(current)
		if node == nil || !node.IsValid() {
			break
		}
		values = append(values, linkology.Summarize(node.Field(valueName)))
		current = node.Field(nextName)
	}

	return Result{
		Values:   values,
		Metadata: Metadata{Truncated: truncated, DoublyLinked: doublyLinked},
	}
}
