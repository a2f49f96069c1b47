package linkology

// ChildCollection returns the children-collection field when the record is
// n-ary shaped, nil otherwise. Collection presence decides the shape before
// any left/right probing.
func (f *Fields) ChildCollection(record Handle) Handle {
	if record == nil || !record.IsValid() {
		return nil
	}
	container := f.Children.Field(record)
	if container == nil || !container.IsValid() || !container.MightHaveChildren() {
		return nil
	}
	return container
}

// ChildrenOf adaptively enumerates the ordered child handles of a
// dereferenced node record. A children-collection field decides the n-ary
// shape and is returned in collection order; otherwise left/right members
// decide the binary shape. Children with a zero address are omitted. A
// record with neither shape is a leaf.
func (f *Fields) ChildrenOf(record Handle) []Handle {
	if record == nil || !record.IsValid() {
		return nil
	}
	if container := f.ChildCollection(record); container != nil {
		var result []Handle
		for i := 0; i < container.NumChildren(); i++ {
			if child := container.ChildAt(i); child != nil && Address(child) != 0 {
				result = append(result, child)
			}
		}
		return result
	}
	var result []Handle
	if left := f.Left.Field(record); left != nil && Address(left) != 0 {
		result = append(result, left)
	}
	if right := f.Right.Field(record); right != nil && Address(right) != 0 {
		result = append(result, right)
	}
	return result
}

// BinarySides probes the structural presence of left/right members on a
// record. A record owning either member is treated as a strict binary node
// even when one side is null; this is what lets in-order traversal
// distinguish binary semantics from the n-ary generalization.
func (f *Fields) BinarySides(record Handle) (left, right Handle, isBinary bool) {
	if record == nil || !record.IsValid() {
		return nil, nil, false
	}
	left = f.Left.Field(record)
	right = f.Right.Field(record)
	return left, right, left != nil || right != nil
}
