package typegraph

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(t Type) bool

// Walk traverses a type graph in depth-first order, visiting each node at
// most once. Shared children are visited on first encounter only, and cycles
// terminate. If visitor returns false, children are not visited.
func Walk(t Type, v Visitor) {
	walk(t, v, make(map[Type]bool))
}

func walk(t Type, v Visitor, seen map[Type]bool) {
	if t == nil || seen[t] {
		return
	}
	seen[t] = true
	if !v(t) {
		return
	}

	switch t := t.(type) {
	case *PointerType:
		walk(t.elem, v, seen)

	case *UserDefinedType:
		for _, f := range t.fields {
			walk(f.typ, v, seen)
		}

		// Leaf nodes: BasicType, BitfieldType
		// No children to visit
	}
}

// Inspect traverses a type graph and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(t Type, f func(Type) bool) {
	Walk(t, Visitor(f))
}
