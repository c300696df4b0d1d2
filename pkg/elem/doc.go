// Package elem provides the in-memory HTML element tree.
//
// A Node is one HTML element: a tag name, an ordered set of attributes, a
// class list and an ordered list of children. Children are either text
// leaves or other nodes. Trees are assembled directly in memory and
// serialized to HTML any number of times.
//
// # Construction
//
// Nodes are created with options:
//
//	list := elem.New("ul",
//	    elem.WithAttributes(elem.A("id", "mylist")),
//	    elem.WithChildren(
//	        elem.New("li", elem.WithChildren("Item 1")),
//	        elem.New("li", elem.WithChildren("Item 2")),
//	    ),
//	)
//
// or positionally with Elem, where the second argument is treated as
// children unless it is a keyed mapping:
//
//	elem.Elem("ul", elem.A("id", "mylist"), []any{
//	    elem.Elem("li", "Item 1"),
//	    elem.Elem("li", "Item 2"),
//	})
//
// # Attributes
//
// Only allow-listed attribute names and names prefixed with "data-" or "on"
// are stored; every other SetAttribute call is a no-op. Attribute values are
// escaped when they are set, not when they are rendered. The id and class
// attributes are always rendered first.
//
// # Escaping
//
// Text leaves are passed through an EscapeFunc at render time. The function
// is resolved once per render pass: an explicit argument wins over the
// node's own function, which wins over the fallback and then the
// process-wide default. The resolved function is used unchanged for the
// whole subtree. Nodes created WithoutEscape never escape.
package elem
