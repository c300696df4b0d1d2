package elem

import (
	"reflect"

	"github.com/spf13/cast"
)

// Child is a value that can be added to a Node's children. It is
// implemented only by Text, Nodes, Lazy and *Node.
type Child interface {
	isChild()
}

// Text is a raw text leaf. It is escaped at render time.
type Text string

// Nodes is a sequence of children. It is flattened when added, never
// stored as a nested group.
type Nodes []Child

// Lazy is a deferred child. It is invoked once, when added, and its result
// is added in its place.
type Lazy func() Child

func (Text) isChild()  {}
func (Nodes) isChild() {}
func (Lazy) isChild()  {}
func (*Node) isChild() {}

// ToChild converts a dynamic value into a Child.
//
// Strings and numbers become Text, slices and arrays become Nodes, *Node is
// kept as is, and zero-argument functions returning a single value become
// Lazy. It returns false for every other value, including nil.
func ToChild(v any) (Child, bool) {
	switch c := v.(type) {
	case nil:
		return nil, false
	case *Node:
		if c == nil {
			return nil, false
		}
		return c, true
	case Child:
		return c, true
	case string:
		return Text(c), true
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Text(cast.ToString(c)), true
	case []any:
		nodes := make(Nodes, 0, len(c))
		for _, item := range c {
			if child, ok := ToChild(item); ok {
				nodes = append(nodes, child)
			}
		}
		return nodes, true
	case []string:
		nodes := make(Nodes, len(c))
		for i, s := range c {
			nodes[i] = Text(s)
		}
		return nodes, true
	case []*Node:
		nodes := make(Nodes, 0, len(c))
		for _, node := range c {
			if node != nil {
				nodes = append(nodes, node)
			}
		}
		return nodes, true
	case []Child:
		return Nodes(c), true
	case []byte:
		return Text(c), true
	case func() Child:
		return Lazy(c), true
	case func() *Node:
		return Lazy(func() Child { return c() }), true
	case func() string:
		return Lazy(func() Child { return Text(c()) }), true
	case func() any:
		return Lazy(func() Child {
			child, _ := ToChild(c())
			return child
		}), true
	}
	return reflectChild(reflect.ValueOf(v))
}

// reflectChild handles the sequence and callable shapes ToChild has no
// case for, such as []int, []Text or func() Nodes.
func reflectChild(rv reflect.Value) (Child, bool) {
	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String()), true
	case reflect.Slice, reflect.Array:
		nodes := make(Nodes, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			if child, ok := ToChild(rv.Index(i).Interface()); ok {
				nodes = append(nodes, child)
			}
		}
		return nodes, true
	case reflect.Func:
		t := rv.Type()
		if rv.IsNil() || t.NumIn() != 0 || t.NumOut() != 1 {
			return nil, false
		}
		return Lazy(func() Child {
			child, _ := ToChild(rv.Call(nil)[0].Interface())
			return child
		}), true
	}
	return nil, false
}

// flatten appends the leaves of c to out in order. Nodes are flattened
// recursively and Lazy values are invoked.
func flatten(out []Child, c Child) []Child {
	switch v := c.(type) {
	case Text:
		return append(out, v)
	case *Node:
		if v != nil {
			out = append(out, v)
		}
		return out
	case Nodes:
		for _, item := range v {
			out = flatten(out, item)
		}
		return out
	case Lazy:
		if v != nil {
			return flatten(out, v())
		}
	}
	return out
}

func normalize(items []any) []Child {
	var out []Child
	for _, item := range items {
		if c, ok := ToChild(item); ok {
			out = flatten(out, c)
		}
	}
	return out
}

// Append adds items after the existing children. Each item may be a string,
// a number, a *Node, a Child, a slice of those, or a zero-argument function
// returning one of them. Other values are ignored.
func (n *Node) Append(items ...any) {
	n.children = append(n.children, normalize(items)...)
}

// Prepend adds items before the existing children. The added items keep
// the order in which they were given.
func (n *Node) Prepend(items ...any) {
	added := normalize(items)
	if len(added) == 0 {
		return
	}
	n.children = append(added, n.children...)
}

// Child returns the i-th child.
func (n *Node) Child(i int) (Child, bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// Children returns a copy of the children.
func (n *Node) Children() []Child {
	out := make([]Child, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}
