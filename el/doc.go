// Package el provides the shorthand DSL for building element trees.
//
// It re-exports the positional constructor from
// github.com/vango-dev/htmlelem/pkg/elem as Elem, and adds one constructor
// per common HTML tag with the same argument rules.
//
// Typical usage:
//
//	import . "github.com/vango-dev/htmlelem/el"
//
//	list := Ul(Attrs{{Key: "id", Value: "mylist"}}, []any{
//	    Li("Item 1"),
//	    Li("Item 2"),
//	})
//	list.Append(Li("Item 3"))
//
// Conditional and repeated children are expressed with If, When and Range,
// which return values Append understands.
package el
