package typegraph

// PointerType represents a pointer to one target type, with optional
// const/volatile qualification of the pointee.
//
// The target is shared: many pointers (and fields) may reference the same
// node.
type PointerType struct {
	typeBase
	flags Flags
	elem  Type
}

// NewPointerType creates a new pointer type referencing elem.
func NewPointerType(name string, size uint32, flags Flags, elem Type) *PointerType {
	return &PointerType{
		typeBase: typeBase{name: name, size: size},
		flags:    flags,
		elem:     elem,
	}
}

// Elem returns the target type the pointer references.
func (p *PointerType) Elem() Type {
	return p.elem
}

// SetElem resolves the pointer's target.
// This is for graph builders closing forward references (a struct pointing
// at itself through a pointer field): construct the pointer with a nil or
// placeholder target, then resolve it once the target node exists. A graph
// that has been handed to consumers must not be mutated.
func (p *PointerType) SetElem(elem Type) {
	p.elem = elem
}

// Flags returns the qualifier bitmask.
func (p *PointerType) Flags() Flags {
	return p.flags
}

// IsConst reports whether the pointee is const-qualified.
func (p *PointerType) IsConst() bool {
	return p.flags&FlagConst != 0
}

// IsVolatile reports whether the pointee is volatile-qualified.
func (p *PointerType) IsVolatile() bool {
	return p.flags&FlagVolatile != 0
}

// Kind implements Type.
func (*PointerType) Kind() Kind {
	return PointerKind
}

// String implements Type.
func (p *PointerType) String() string {
	if p.name != "" {
		return p.name
	}
	if p.elem != nil {
		return "*" + p.elem.String()
	}
	return "*<unresolved>"
}
