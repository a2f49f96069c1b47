package linkology

import "strings"

// smartPointerFields is the fixed candidate set for the internal raw pointer
// member of smart-pointer shaped wrappers (libstdc++, libc++ and the common
// hand-rolled spelling).
var smartPointerFields = FieldSet{"_M_ptr", "__ptr_", "pointer"}

// InvalidMarker is emitted in place of a payload that cannot be resolved.
const InvalidMarker = "[invalid]"

// Address computes the canonical address of a handle, the identity used for
// visited tracking and cycle detection. A pointer-typed handle contributes
// its pointee address, a smart-pointer shaped handle the wrapped pointer's
// value, anything else the address of its own storage. Two handles referring
// to the same record normalize to the same address.
func Address(h Handle) uint64 {
	if h == nil || !h.IsValid() {
		return 0
	}
	if h.IsPointer() {
		return h.Uint()
	}
	if wrapped := smartPointerFields.Field(h); wrapped != nil && wrapped.IsValid() {
		return wrapped.Uint()
	}
	return h.Address()
}

// Dereference unwraps one level of indirection and returns the pointed-to
// record. Smart-pointer unwrap takes priority over plain pointer
// dereference. Returns nil when the handle is invalid, the address is zero,
// or the record is unreachable.
func Dereference(h Handle) Handle {
	if h == nil || !h.IsValid() {
		return nil
	}
	if wrapped := smartPointerFields.Field(h); wrapped != nil && wrapped.IsValid() {
		return wrapped.Dereference()
	}
	return h.Dereference()
}

// Summarize applies the shared value-extraction rule: the host's summary
// with surrounding quotes stripped, or the InvalidMarker when the payload
// handle cannot be read.
func Summarize(value Handle) string {
	if value == nil || !value.IsValid() {
		return InvalidMarker
	}
	return strings.Trim(value.ValueSummary(), `"`)
}
