package typegraph

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the type graph rooted
// at t to w. Every node is printed in full once; a node reached again
// (shared or through a cycle) is printed as a back-reference, so the output
// is finite for any graph.
func Fprint(w io.Writer, t Type) {
	p := &printer{w: w, seen: make(map[Type]bool)}
	p.print(t)
}

// Sprint returns the Fprint rendering of t as a string.
func Sprint(t Type) string {
	var sb strings.Builder
	Fprint(&sb, t)
	return sb.String()
}

type printer struct {
	w      io.Writer
	indent int
	seen   map[Type]bool
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(t Type) {
	if t == nil {
		p.printf("<unresolved>\n")
		return
	}
	if p.seen[t] {
		p.printf("%s %q (see above)\n", t.Kind(), t.Name())
		return
	}
	p.seen[t] = true

	switch n := t.(type) {
	case *BasicType:
		p.printf("Basic %q size=%d\n", n.name, n.size)

	case *BitfieldType:
		p.printf("Bitfield %q size=%d bits=%d@%d\n", n.name, n.size, n.bitLength, n.bitOffset)

	case *PointerType:
		p.printf("Pointer %q size=%d%s\n", n.name, n.size, qualifiers(n.flags))
		p.indent++
		p.print(n.elem)
		p.indent--

	case *UserDefinedType:
		p.printf("UserDefined %q size=%d\n", n.name, n.size)
		p.indent++
		for _, f := range n.fields {
			p.printf("field %q @%d%s\n", f.name, f.offset, qualifiers(f.flags))
			p.indent++
			p.print(f.typ)
			p.indent--
		}
		p.indent--
	}
}

func qualifiers(f Flags) string {
	var sb strings.Builder
	if f&FlagConst != 0 {
		sb.WriteString(" const")
	}
	if f&FlagVolatile != 0 {
		sb.WriteString(" volatile")
	}
	return sb.String()
}
