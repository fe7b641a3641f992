package typegraph

// Field is one named, offset-tagged member of a user-defined type.
// Fields are values; the referenced type is shared.
type Field struct {
	name   string
	offset uint32 // byte offset into the aggregate
	flags  Flags
	typ    Type
}

// NewField creates a new field.
func NewField(name string, offset uint32, flags Flags, typ Type) Field {
	return Field{name: name, offset: offset, flags: flags, typ: typ}
}

// Name returns the field name.
func (f Field) Name() string { return f.name }

// Offset returns the field's byte offset into the aggregate.
func (f Field) Offset() uint32 { return f.offset }

// Flags returns the qualifier bitmask.
func (f Field) Flags() Flags { return f.flags }

// IsConst reports whether the field is const-qualified.
func (f Field) IsConst() bool { return f.flags&FlagConst != 0 }

// IsVolatile reports whether the field is volatile-qualified.
func (f Field) IsVolatile() bool { return f.flags&FlagVolatile != 0 }

// Type returns the field's type.
func (f Field) Type() Type { return f.typ }

// UserDefinedType represents an aggregate with an ordered field sequence.
//
// Field order is preserved exactly as supplied and is part of the type's
// identity: two aggregates with the same fields in a different order are not
// structurally equal.
type UserDefinedType struct {
	typeBase
	fields []Field
}

// NewUserDefinedType creates a new user-defined type. The field slice is
// copied; later changes to the caller's slice do not affect the node.
func NewUserDefinedType(name string, size uint32, fields []Field) *UserDefinedType {
	var copied []Field
	if len(fields) > 0 {
		copied = make([]Field, len(fields))
		copy(copied, fields)
	}
	return &UserDefinedType{
		typeBase: typeBase{name: name, size: size},
		fields:   copied,
	}
}

// NumFields returns the number of fields.
func (u *UserDefinedType) NumFields() int {
	return len(u.fields)
}

// Field returns the field at the given index, in construction order.
func (u *UserDefinedType) Field(i int) Field {
	return u.fields[i]
}

// Fields returns all fields in construction order.
// The returned slice is the node's own storage; callers must not modify it.
func (u *UserDefinedType) Fields() []Field {
	return u.fields
}

// Kind implements Type.
func (*UserDefinedType) Kind() Kind {
	return UserDefinedKind
}

// String implements Type.
func (u *UserDefinedType) String() string {
	return u.name
}
