package linkology

type (
	//FieldSet is an ordered list of acceptable names for one logical field.
	//Order encodes priority: the first name structurally present on a record
	//wins and no later candidate is consulted.
	FieldSet []string

	//Fields groups the candidate sets for every logical field the engine
	//probes. The sets are plain configuration data; hosts and callers may
	//replace any of them.
	Fields struct {
		Next      FieldSet
		Prev      FieldSet
		Value     FieldSet
		Left      FieldSet
		Right     FieldSet
		Children  FieldSet
		Neighbors FieldSet
		Head      FieldSet
		Root      FieldSet
		Size      FieldSet
		NodeCount FieldSet
		EdgeCount FieldSet
	}
)

// Resolve returns the first candidate present on the record's shape.
// Presence is structural, a field holding a null pointer still resolves.
func (s FieldSet) Resolve(record Handle) (string, bool) {
	if record == nil || !record.IsValid() {
		return "", false
	}
	for _, name := range s {
		if record.HasField(name) {
			return name, true
		}
	}
	return "", false
}

// Field returns a handle to the first candidate present on the record,
// or nil when no candidate matches.
func (s FieldSet) Field(record Handle) Handle {
	name, ok := s.Resolve(record)
	if !ok {
		return nil
	}
	return record.Field(name)
}

// DefaultFields returns the candidate sets for the common naming
// conventions of pointer-linked node types.
func DefaultFields() *Fields {
	return &Fields{
		Next:      FieldSet{"next", "m_next", "_next", "pNext"},
		Prev:      FieldSet{"prev", "m_prev", "_prev", "pPrev"},
		Value:     FieldSet{"value", "val", "data", "m_data", "key"},
		Left:      FieldSet{"left", "m_left", "_left"},
		Right:     FieldSet{"right", "m_right", "_right"},
		Children:  FieldSet{"children", "m_children"},
		Neighbors: FieldSet{"neighbors", "adj", "edges"},
		Head:      FieldSet{"head", "m_head", "_head", "top"},
		Root:      FieldSet{"root", "m_root", "_root"},
		Size:      FieldSet{"count", "size", "m_size", "_size"},
		NodeCount: FieldSet{"num_nodes", "V", "node_count"},
		EdgeCount: FieldSet{"num_edges", "E", "edge_count"},
	}
}
