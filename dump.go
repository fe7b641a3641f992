package typegraph

import "github.com/sanity-io/litter"

// Dump returns a deep, Go-syntax-like dump of the node for debugging.
// litter tracks pointer revisits, so dumping cyclic graphs is safe.
// For a stable, presentation-oriented rendering use Sprint instead.
func Dump(t Type) string {
	opts := litter.Options{
		HidePrivateFields: false,
		Compact:           false,
	}
	return opts.Sdump(t)
}
