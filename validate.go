package typegraph

import "github.com/pkg/errors"

// Validate checks the graph rooted at t for the inconsistencies the
// constructors deliberately accept: unresolved (nil) pointer targets, nil
// field types, zero-width bitfields, and bitfields whose bit range exceeds
// their storage unit. It returns nil if the graph is well formed, and an
// error naming the offending node otherwise.
//
// Validation is opt-in for producing collaborators; nothing else in this
// package calls it, and consumers may freely traverse graphs that would not
// pass.
func Validate(t Type) error {
	if t == nil {
		return errors.New("nil type")
	}
	return validate(t, make(map[Type]bool))
}

func validate(t Type, seen map[Type]bool) error {
	if seen[t] {
		return nil
	}
	seen[t] = true

	switch t := t.(type) {
	case *BitfieldType:
		if t.bitLength == 0 {
			return errors.Errorf("bitfield %q: zero bit length", t.name)
		}
		if t.bitOffset+t.bitLength > t.size*8 {
			return errors.Errorf("bitfield %q: bits [%d, %d) exceed %d-byte storage unit",
				t.name, t.bitOffset, t.bitOffset+t.bitLength, t.size)
		}

	case *PointerType:
		if t.elem == nil {
			return errors.Errorf("pointer %q: unresolved target", t.name)
		}
		if err := validate(t.elem, seen); err != nil {
			return errors.Wrapf(err, "target of pointer %q", t.name)
		}

	case *UserDefinedType:
		for _, f := range t.fields {
			if f.typ == nil {
				return errors.Errorf("field %q of %q: nil type", f.name, t.name)
			}
			if err := validate(f.typ, seen); err != nil {
				return errors.Wrapf(err, "field %q of %q", f.name, t.name)
			}
		}
	}
	return nil
}
