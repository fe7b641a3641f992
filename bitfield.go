package typegraph

import "fmt"

// BitfieldType represents a bit-packed sub-field of a storage unit.
//
// Size describes the containing storage unit in bytes; the bit width and
// starting bit are independent attributes. Consistency of the pair with the
// unit size is not enforced at construction — see Validate.
type BitfieldType struct {
	typeBase
	bitLength uint32 // width in bits
	bitOffset uint32 // starting bit within the storage unit
}

// NewBitfieldType creates a new bitfield type. size is the byte size of the
// storage unit the field is packed into.
func NewBitfieldType(name string, size, bitLength, bitOffset uint32) *BitfieldType {
	return &BitfieldType{
		typeBase:  typeBase{name: name, size: size},
		bitLength: bitLength,
		bitOffset: bitOffset,
	}
}

// BitLength returns the field's width in bits.
func (b *BitfieldType) BitLength() uint32 {
	return b.bitLength
}

// BitOffset returns the field's starting bit within the storage unit.
func (b *BitfieldType) BitOffset() uint32 {
	return b.bitOffset
}

// Kind implements Type.
func (*BitfieldType) Kind() Kind {
	return BitfieldKind
}

// String implements Type.
func (b *BitfieldType) String() string {
	return fmt.Sprintf("%s:%d@%d", b.name, b.bitLength, b.bitOffset)
}
