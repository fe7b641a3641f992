// Package typegraph models native program type information — the basic
// types, bitfields, pointers, and user-defined aggregates recovered from a
// binary's debug metadata — as an immutable, structurally comparable object
// graph.
//
// A producer (a symbol-file reader, say) builds the graph bottom-up: scalars
// first, then composites referencing them. Children are shared freely; many
// fields may point at the same *BasicType instance. Once a root is handed
// out, no node is ever mutated, so a graph is safe for concurrent readers
// without locking.
//
// Consumers narrow a generic Type with CastTo, and use Hash and Identical as
// the key functions of hashed containers. Both are structural: two
// independently built graphs with the same shape hash and compare equal.
package typegraph

// Kind identifies the concrete variant of a Type.
type Kind int

const (
	BasicKind       Kind = iota // terminal scalar type
	BitfieldKind                // bit-packed sub-field of a storage unit
	PointerKind                 // pointer to one target type
	UserDefinedKind             // aggregate with ordered, offset-tagged fields
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case BasicKind:
		return "Basic"
	case BitfieldKind:
		return "Bitfield"
	case PointerKind:
		return "Pointer"
	case UserDefinedKind:
		return "UserDefined"
	default:
		return "Unknown"
	}
}

// Flags describe const/volatile qualification of a pointer or a field.
type Flags uint32

const (
	FlagConst Flags = 1 << iota
	FlagVolatile
)

// Type is the interface implemented by all type nodes.
//
// Name is a display identifier and need not be unique: a forward-declared
// and a defined rendition of the same struct may share it. Size is the
// storage size in bytes; for bitfields it describes the containing storage
// unit, not the bit width.
type Type interface {
	// Kind returns the variant tag, fixed at construction.
	Kind() Kind

	// Name returns the display name.
	Name() string

	// Size returns the storage size in bytes.
	Size() uint32

	// String returns a compact human-readable representation.
	String() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typeBase carries the attributes common to all variants.
type typeBase struct {
	name string
	size uint32
}

func (t *typeBase) Name() string { return t.name }
func (t *typeBase) Size() uint32 { return t.size }
func (*typeBase) aType()         {}

// CastTo narrows a generic type handle to the concrete variant V.
// It succeeds iff t's kind matches V, returning the narrowed handle sharing
// the underlying node. On failure it returns the zero V and false; t is
// unaffected either way. This is the sole narrowing mechanism.
func CastTo[V Type](t Type) (V, bool) {
	v, ok := t.(V)
	return v, ok
}
