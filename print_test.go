package typegraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{NewBasicType("int", 4), "int"},
		{NewBitfieldType("flags", 4, 3, 1), "flags:3@1"},
		{NewPointerType("void*", 8, 0, Void), "void*"},
		{NewPointerType("", 8, 0, Void), "*void"},
		{NewPointerType("", 8, 0, nil), "*<unresolved>"},
		{NewUserDefinedType("foo", 10, nil), "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestSprint(t *testing.T) {
	udt := NewUserDefinedType("foo", 10, []Field{
		NewField("one", 0, FlagConst, NewBasicType("int", 4)),
		NewField("two", 4, 0, NewPointerType("void*", 4, FlagVolatile, Void)),
	})

	got := Sprint(udt)
	want := strings.Join([]string{
		`UserDefined "foo" size=10`,
		`  field "one" @0 const`,
		`    Basic "int" size=4`,
		`  field "two" @4`,
		`    Pointer "void*" size=4 volatile`,
		`      Basic "void" size=0`,
		``,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestSprintCyclic(t *testing.T) {
	node := selfRefList(Int32)

	got := Sprint(node)
	// The back edge is rendered as a reference, not expanded again.
	assert.Contains(t, got, `UserDefined "node" (see above)`)
	assert.Equal(t, 1, strings.Count(got, `field "next"`))
}

func TestSprintSharedNode(t *testing.T) {
	shared := NewBasicType("int", 4)
	pair := NewUserDefinedType("pair", 8, []Field{
		NewField("first", 0, 0, shared),
		NewField("second", 4, 0, shared),
	})

	got := Sprint(pair)
	assert.Equal(t, 1, strings.Count(got, `Basic "int" size=4`))
	assert.Contains(t, got, `Basic "int" (see above)`)
}

func TestDump(t *testing.T) {
	out := Dump(NewBasicType("int", 4))
	assert.Contains(t, out, "BasicType")
	assert.Contains(t, out, "int")

	// Cyclic graphs must not hang the dumper.
	assert.NotEmpty(t, Dump(selfRefList(Int32)))
}
