package typegraph

// BasicType represents a terminal scalar type such as int or void.
type BasicType struct {
	typeBase
}

// NewBasicType creates a new basic type with the given name and byte size.
func NewBasicType(name string, size uint32) *BasicType {
	return &BasicType{typeBase{name: name, size: size}}
}

// Kind implements Type.
func (*BasicType) Kind() Kind {
	return BasicKind
}

// String implements Type.
func (b *BasicType) String() string {
	return b.name
}
