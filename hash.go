package typegraph

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a structural hash of t. It is sensitive to every attribute
// Identical considers — kind, name, size, variant attributes, and the full
// structure of children in order — so Identical(a, b) implies
// Hash(a) == Hash(b), making Hash/Identical a consistent key-function pair
// for hashed containers.
//
// The hash is unseeded and therefore stable across processes for a given
// graph shape. Self-referential graphs terminate: a node re-encountered on
// the active recursion path contributes only its kind, name, and size and is
// not entered again.
func Hash(t Type) uint64 {
	d := xxhash.New()
	hashType(d, t, make(map[Type]bool))
	return d.Sum64()
}

func hashType(d *xxhash.Digest, t Type, active map[Type]bool) {
	if t == nil {
		// Unresolved child; distinct from every real node.
		hashUint(d, ^uint64(0))
		return
	}

	hashUint(d, uint64(t.Kind()))
	hashString(d, t.Name())
	hashUint(d, uint64(t.Size()))

	if active[t] {
		return
	}
	active[t] = true
	defer delete(active, t)

	switch t := t.(type) {
	case *BitfieldType:
		hashUint(d, uint64(t.bitLength))
		hashUint(d, uint64(t.bitOffset))
	case *PointerType:
		hashUint(d, uint64(t.flags))
		hashType(d, t.elem, active)
	case *UserDefinedType:
		hashUint(d, uint64(len(t.fields)))
		for _, f := range t.fields {
			hashString(d, f.name)
			hashUint(d, uint64(f.offset))
			hashUint(d, uint64(f.flags))
			hashType(d, f.typ, active)
		}
	}
}

func hashUint(d *xxhash.Digest, v uint64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	d.Write(buf[:n])
}

// hashString writes a length-prefixed string so adjacent names cannot run
// together in the byte stream.
func hashString(d *xxhash.Digest, s string) {
	hashUint(d, uint64(len(s)))
	d.WriteString(s)
}
