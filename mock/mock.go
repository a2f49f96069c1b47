// Package mock provides a deterministic in-memory implementation of the
// linkology.Handle capability set, used by the module's own tests and by
// downstream consumers that need to fake a host. Nodes carry explicit
// fields; a field holding a null pointer stays structurally present with
// address zero, matching real host semantics.
package mock

import (
	"strconv"
	"sync/atomic"

	"github.com/viant/linkology"
)

// Value is an in-memory handle. A node value acts both as a pointer to
// itself and as the dereferenced record, the way a debugger host folds the
// two for synthetic data.
type Value struct {
	id         uint64
	summary    string
	uintValue  uint64
	hasUint    bool
	valid      bool
	pointer    bool
	collection bool
	typeName   string
	fields     map[string]*Value
	items      []*Value
}

var nextID uint64 = 0x1000

func allocateID() uint64 {
	return atomic.AddUint64(&nextID, 0x10)
}

// NewNode creates a node with the supplied fields. The node is pointer
// shaped with a unique non-zero address.
func NewNode(summary string, fields map[string]*Value) *Value {
	return &Value{
		id:       allocateID(),
		summary:  summary,
		valid:    true,
		pointer:  true,
		typeName: "MockNode<int>",
		fields:   fields,
	}
}

// NewScalar creates a plain value with the supplied summary.
func NewScalar(summary string) *Value {
	return &Value{id: allocateID(), summary: summary, valid: true}
}

// NewUint creates a numeric scalar.
func NewUint(value uint64) *Value {
	return &Value{
		id:        allocateID(),
		summary:   strconv.FormatUint(value, 10),
		uintValue: value,
		hasUint:   true,
		valid:     true,
	}
}

// NewCollection creates a collection shaped value holding the supplied
// elements in order.
func NewCollection(items ...*Value) *Value {
	return &Value{id: allocateID(), valid: true, collection: true, items: items}
}

// NewSmart wraps a node the way a smart pointer does: a non-pointer record
// exposing the raw pointer under an internal member name.
func NewSmart(target *Value) *Value {
	return &Value{
		id:     allocateID(),
		valid:  true,
		fields: map[string]*Value{"_M_ptr": target},
	}
}

// NullPointer creates a valid pointer handle with address zero.
func NullPointer() *Value {
	return &Value{valid: true, pointer: true}
}

// Invalid creates an unreadable handle.
func Invalid() *Value {
	return &Value{}
}

// SetField adds or replaces a field after construction, e.g. to close a
// cycle.
func (v *Value) SetField(name string, field *Value) *Value {
	if v.fields == nil {
		v.fields = map[string]*Value{}
	}
	v.fields[name] = field
	return v
}

// SetTypeName overrides the reported type name.
func (v *Value) SetTypeName(name string) *Value {
	v.typeName = name
	return v
}

// IsValid implements linkology.Handle.
func (v *Value) IsValid() bool {
	return v != nil && v.valid
}

// IsPointer implements linkology.Handle.
func (v *Value) IsPointer() bool {
	return v.IsValid() && v.pointer
}

// Uint implements linkology.Handle.
func (v *Value) Uint() uint64 {
	if !v.IsValid() {
		return 0
	}
	if v.hasUint {
		return v.uintValue
	}
	if v.pointer {
		return v.id
	}
	return 0
}

// Address implements linkology.Handle.
func (v *Value) Address() uint64 {
	if !v.IsValid() {
		return 0
	}
	return v.id
}

// Dereference implements linkology.Handle.
func (v *Value) Dereference() linkology.Handle {
	if !v.IsPointer() || v.id == 0 {
		return nil
	}
	return v
}

// HasField implements linkology.Handle.
func (v *Value) HasField(name string) bool {
	if !v.IsValid() {
		return false
	}
	_, ok := v.fields[name]
	return ok
}

// Field implements linkology.Handle.
func (v *Value) Field(name string) linkology.Handle {
	if !v.IsValid() {
		return nil
	}
	field, ok := v.fields[name]
	if !ok {
		return nil
	}
	return field
}

// MightHaveChildren implements linkology.Handle.
func (v *Value) MightHaveChildren() bool {
	return v.IsValid() && v.collection && len(v.items) > 0
}

// NumChildren implements linkology.Handle.
func (v *Value) NumChildren() int {
	if !v.IsValid() {
		return 0
	}
	return len(v.items)
}

// ChildAt implements linkology.Handle.
func (v *Value) ChildAt(i int) linkology.Handle {
	if !v.IsValid() || i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i]
}

// ValueSummary implements linkology.Handle.
func (v *Value) ValueSummary() string {
	if !v.IsValid() {
		return ""
	}
	return v.summary
}

// TypeName implements linkology.Handle.
func (v *Value) TypeName() string {
	if !v.IsValid() {
		return ""
	}
	return v.typeName
}
