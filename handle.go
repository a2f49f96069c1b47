package linkology

// Handle is an opaque, borrowed reference to one externally owned value.
// The engine never owns a handle; it reads through it for the duration of a
// single traversal call. Every read may fail (absent field, unreadable
// record) and the engine treats any such failure as the natural end of the
// current branch. A host supplies this capability set and nothing else is
// ever called on it.
type Handle interface {
	//IsValid reports whether the handle refers to a readable value
	IsValid() bool

	//IsPointer reports whether the underlying value is pointer typed
	IsPointer() bool

	//Uint returns the numeric value of the handle, i.e. the pointee address
	//for a pointer typed value, zero when no numeric reading exists
	Uint() uint64

	//Address returns the address of the handle's own storage
	Address() uint64

	//Dereference returns the record the handle points to, or nil when the
	//handle is not a pointer or the record is unreachable
	Dereference() Handle

	//HasField reports structural presence of a named field on the record's
	//shape, independent of the field value
	HasField(name string) bool

	//Field returns a handle to the named field, or nil when absent
	Field(name string) Handle

	//MightHaveChildren reports whether the value is collection shaped
	MightHaveChildren() bool

	//NumChildren returns the element count of a collection shaped value
	NumChildren() int

	//ChildAt returns a handle to the i-th collection element
	ChildAt(i int) Handle

	//ValueSummary returns a displayable representation, rich formatting
	//when the host can produce one, otherwise the raw scalar
	ValueSummary() string

	//TypeName returns the host side type name of the value
	TypeName() string
}
