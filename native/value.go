// Package native implements the linkology.Handle capability set over
// in-process Go values using reflection, letting the engine walk real Go
// data structures. Logical candidate names resolve Go field names through a
// case-format transform (next -> Next); a `linkology` struct tag supplies an
// explicit alias when naming diverges.
package native

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/linkology"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	//Value is a borrowed handle over one in-process Go value
	Value struct {
		rType reflect.Type
		ptr   unsafe.Pointer
	}

	structInfo struct {
		xStruct *xunsafe.Struct
		index   map[string]*xunsafe.Field
	}
)

var (
	structCache = NewSyncMap[reflect.Type, *structInfo]()
	sliceCache  = NewSyncMap[reflect.Type, *xunsafe.Slice]()
)

// ValueOf creates a handle borrowing the supplied value. Pass a pointer
// (e.g. the root of a list or tree) to traverse the pointed-to structure.
func ValueOf(value interface{}) *Value {
	if value == nil {
		return nil
	}
	rType := reflect.TypeOf(value)
	holder := reflect.New(rType)
	holder.Elem().Set(reflect.ValueOf(value))
	return &Value{rType: rType, ptr: unsafe.Pointer(holder.Pointer())}
}

// IsValid reports whether the handle refers to a readable value.
func (v *Value) IsValid() bool {
	return v != nil && v.rType != nil && v.ptr != nil
}

// IsPointer reports whether the underlying value is pointer typed.
func (v *Value) IsPointer() bool {
	return v.IsValid() && v.rType.Kind() == reflect.Ptr
}

// Uint returns the numeric value of the handle: the pointee address for a
// pointer, the scalar value for integer kinds, zero otherwise.
func (v *Value) Uint() uint64 {
	if !v.IsValid() {
		return 0
	}
	switch v.rType.Kind() {
	case reflect.Ptr, reflect.UnsafePointer:
		return uint64(uintptr(*(*unsafe.Pointer)(v.ptr)))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(reflect.NewAt(v.rType, v.ptr).Elem().Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return reflect.NewAt(v.rType, v.ptr).Elem().Uint()
	}
	return 0
}

// Address returns the address of the handle's own storage.
func (v *Value) Address() uint64 {
	if !v.IsValid() {
		return 0
	}
	return uint64(uintptr(v.ptr))
}

// Dereference returns the pointed-to record, or nil for a non-pointer or a
// null pointer.
func (v *Value) Dereference() linkology.Handle {
	if !v.IsPointer() {
		return nil
	}
	elemPtr := *(*unsafe.Pointer)(v.ptr)
	if elemPtr == nil {
		return nil
	}
	return &Value{rType: v.rType.Elem(), ptr: elemPtr}
}

// HasField reports structural presence of a logical field name on the
// record's shape.
func (v *Value) HasField(name string) bool {
	return v.lookup(name) != nil
}

// Field returns a handle to the named field; the handle is valid even when
// the field holds a null pointer.
func (v *Value) Field(name string) linkology.Handle {
	field := v.lookup(name)
	if field == nil {
		return nil
	}
	return &Value{rType: field.Type, ptr: field.Pointer(v.ptr)}
}

// MightHaveChildren reports whether the value is collection shaped.
func (v *Value) MightHaveChildren() bool {
	if !v.IsValid() {
		return false
	}
	switch v.rType.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

// NumChildren returns the element count of a collection shaped value.
func (v *Value) NumChildren() int {
	if !v.IsValid() {
		return 0
	}
	switch v.rType.Kind() {
	case reflect.Slice:
		return sliceOf(v.rType).Len(v.ptr)
	case reflect.Array:
		return v.rType.Len()
	}
	return 0
}

// ChildAt returns a handle to the i-th collection element.
func (v *Value) ChildAt(i int) linkology.Handle {
	if i < 0 || i >= v.NumChildren() {
		return nil
	}
	switch v.rType.Kind() {
	case reflect.Slice:
		return &Value{rType: v.rType.Elem(), ptr: sliceOf(v.rType).PointerAt(v.ptr, uintptr(i))}
	case reflect.Array:
		elemType := v.rType.Elem()
		return &Value{rType: elemType, ptr: unsafe.Add(v.ptr, i*int(elemType.Size()))}
	}
	return nil
}

// ValueSummary prefers the value's own Stringer formatting, falling back to
// the raw scalar representation.
func (v *Value) ValueSummary() string {
	if !v.IsValid() {
		return ""
	}
	if v.rType.Kind() == reflect.String {
		return *(*string)(v.ptr)
	}
	value := reflect.NewAt(v.rType, v.ptr).Elem().Interface()
	if stringer, ok := value.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%v", value)
}

// TypeName returns the Go type name of the value.
func (v *Value) TypeName() string {
	if !v.IsValid() {
		return ""
	}
	return v.rType.String()
}

func (v *Value) lookup(name string) *xunsafe.Field {
	if !v.IsValid() || v.rType.Kind() != reflect.Struct {
		return nil
	}
	info := infoOf(v.rType)
	if field, ok := info.index[name]; ok {
		return field
	}
	if field, ok := info.index[exportedName(name)]; ok {
		return field
	}
	return nil
}

func infoOf(structType reflect.Type) *structInfo {
	if info, ok := structCache.Get(structType); ok {
		return info
	}
	xStruct := xunsafe.NewStruct(structType)
	index := make(map[string]*xunsafe.Field, len(xStruct.Fields))
	for i := range xStruct.Fields {
		field := &xStruct.Fields[i]
		index[field.Name] = field
		if alias, ok := field.Tag.Lookup("linkology"); ok && alias != "" {
			index[alias] = field
		}
	}
	info := &structInfo{xStruct: xStruct, index: index}
	structCache.Put(structType, info)
	return info
}

func sliceOf(sliceType reflect.Type) *xunsafe.Slice {
	if xSlice, ok := sliceCache.Get(sliceType); ok {
		return xSlice
	}
	xSlice := xunsafe.NewSlice(sliceType)
	sliceCache.Put(sliceType, xSlice)
	return xSlice
}

// exportedName maps a logical candidate (next, m_next) to the Go exported
// spelling (Next, MNext).
func exportedName(name string) string {
	caseFormat := text.DetectCaseFormat(name)
	if !caseFormat.IsDefined() {
		return name
	}
	return caseFormat.Format(name, text.CaseFormatUpperCamel)
}
