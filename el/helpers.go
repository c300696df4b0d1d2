package el

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vango-dev/htmlelem/pkg/elem"
)

// Textf creates a formatted text leaf.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Group collects children into a single sequence. It is flattened when
// appended.
func Group(children ...any) Nodes {
	nodes := make(Nodes, 0, len(children))
	for _, c := range children {
		if child, ok := elem.ToChild(c); ok {
			nodes = append(nodes, child)
		}
	}
	return nodes
}

// If returns child if condition is true, nil otherwise. A nil child is
// ignored by Append.
func If(condition bool, child any) any {
	if condition {
		return child
	}
	return nil
}

// IfElse returns ifTrue if condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse any) any {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Unless is the inverse of If.
func Unless(condition bool, child any) any {
	return If(!condition, child)
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true, when the result is
// appended.
func When(condition bool, fn func() *Node) any {
	if !condition {
		return nil
	}
	return Lazy(func() Child { return fn() })
}

// Case represents a case in a Switch statement.
type Case[T comparable] struct {
	Value     T
	Child     any
	IsDefault bool
}

// Case_ creates a case for Switch.
func Case_[T comparable](value T, child any) Case[T] {
	return Case[T]{Value: value, Child: child}
}

// Default creates a default case for Switch.
func Default[T comparable](child any) Case[T] {
	return Case[T]{Child: child, IsDefault: true}
}

// Switch returns the child for the matching case value.
// If no case matches and there's a default, the default child is returned.
func Switch[T comparable](value T, cases ...Case[T]) any {
	for _, c := range cases {
		if !c.IsDefault && c.Value == value {
			return c.Child
		}
	}
	for _, c := range cases {
		if c.IsDefault {
			return c.Child
		}
	}
	return nil
}

// Range maps a slice to nodes. Nil results are skipped.
func Range[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// RangeMap maps a map to nodes in ascending key order.
func RangeMap[K cmp.Ordered, V any](m map[K]V, fn func(key K, value V) *Node) []*Node {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	result := make([]*Node, 0, len(m))
	for _, k := range keys {
		if node := fn(k, m[k]); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *Node) []*Node {
	if n <= 0 {
		return nil
	}
	result := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() any {
	return nil
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second *Node) *Node {
	if first != nil {
		return first
	}
	return second
}
