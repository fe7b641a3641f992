package typegraph

// Predeclared basic types for the scalars most symbol sources produce, with
// conventional C sizes. The singletons are immutable and safe to share as
// children across any number of graphs and goroutines.
var (
	Void    = NewBasicType("void", 0)
	Bool    = NewBasicType("bool", 1)
	Char    = NewBasicType("char", 1)
	WChar   = NewBasicType("wchar_t", 2)
	Int8    = NewBasicType("int8_t", 1)
	Int16   = NewBasicType("int16_t", 2)
	Int32   = NewBasicType("int32_t", 4)
	Int64   = NewBasicType("int64_t", 8)
	UInt8   = NewBasicType("uint8_t", 1)
	UInt16  = NewBasicType("uint16_t", 2)
	UInt32  = NewBasicType("uint32_t", 4)
	UInt64  = NewBasicType("uint64_t", 8)
	Float32 = NewBasicType("float", 4)
	Float64 = NewBasicType("double", 8)
)

var builtins = map[string]*BasicType{}

func init() {
	for _, b := range []*BasicType{
		Void, Bool, Char, WChar,
		Int8, Int16, Int32, Int64,
		UInt8, UInt16, UInt32, UInt64,
		Float32, Float64,
	} {
		builtins[b.Name()] = b
	}
}

// Builtin looks up a predeclared basic type by its display name.
func Builtin(name string) (*BasicType, bool) {
	b, ok := builtins[name]
	return b, ok
}
