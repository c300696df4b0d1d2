package el

import "github.com/vango-dev/htmlelem/pkg/elem"

// Type aliases for the elem primitives used by the DSL.
type Node = elem.Node
type Child = elem.Child
type Text = elem.Text
type Nodes = elem.Nodes
type Lazy = elem.Lazy
type Attr = elem.Attr
type Attrs = elem.Attrs
type EscapeFunc = elem.EscapeFunc

// Elem creates a node from positional arguments. See elem.Elem for the rule
// that tells attributes from children.
func Elem(tag string, args ...any) *Node {
	return elem.Elem(tag, args...)
}

// Attributes builds Attrs from alternating names and values.
func Attributes(pairs ...string) Attrs {
	return elem.A(pairs...)
}
