package typegraph

// Identical reports whether x and y are structurally identical: same kind,
// same name, same size, and recursively the same variant attributes and the
// same children in the same order. Instance identity is irrelevant — two
// graphs built independently from the same definition compare equal.
//
// Identical is a pure function of graph structure and never mutates its
// arguments, so it is safe as the equality function of a hashed container
// and safe to call concurrently over shared graphs. Self-referential graphs
// terminate: a pair of nodes already being compared further up the call path
// is treated as equal-so-far, consistent with Hash's cycle handling.
func Identical(x, y Type) bool {
	return identical(x, y, nil)
}

// typePair is a node-identity pair on the active comparison path.
type typePair struct {
	x, y Type
}

func identical(x, y Type, active map[typePair]bool) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	if x.Kind() != y.Kind() || x.Name() != y.Name() || x.Size() != y.Size() {
		return false
	}

	pair := typePair{x, y}
	if active[pair] {
		// Already comparing this pair further up the path; recursing again
		// would not terminate. The non-recursive attributes matched above.
		return true
	}
	if active == nil {
		active = make(map[typePair]bool)
	}
	active[pair] = true
	defer delete(active, pair)

	switch x := x.(type) {
	case *BasicType:
		return true
	case *BitfieldType:
		y := y.(*BitfieldType)
		return x.bitLength == y.bitLength && x.bitOffset == y.bitOffset
	case *PointerType:
		y := y.(*PointerType)
		return x.flags == y.flags && identical(x.elem, y.elem, active)
	case *UserDefinedType:
		return identicalUserDefined(x, y.(*UserDefinedType), active)
	}
	return false
}

func identicalUserDefined(x, y *UserDefinedType, active map[typePair]bool) bool {
	if len(x.fields) != len(y.fields) {
		return false
	}
	for i := range x.fields {
		fx, fy := x.fields[i], y.fields[i]
		if fx.name != fy.name || fx.offset != fy.offset || fx.flags != fy.flags {
			return false
		}
		if !identical(fx.typ, fy.typ, active) {
			return false
		}
	}
	return true
}
