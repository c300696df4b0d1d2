package elem

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is one HTML element.
//
// A Node owns its attributes and its list of children. Children hold no
// reference to their parent, so the same Node may be appended to several
// parents and is rendered once per occurrence.
type Node struct {
	tag        string
	id         string
	attributes *orderedmap.OrderedMap[string, string]

	// classList is the single source of truth for the class attribute.
	// classSet records whether a class attribute is present at all.
	classList []string
	classSet  bool

	// children are Text and *Node values only.
	children []Child

	escape       EscapeFunc
	ignoreEscape bool
}

// Option configures a Node created by New.
type Option func(*options)

type options struct {
	attrs        []any
	children     []any
	escape       EscapeFunc
	ignoreEscape bool
}

// WithAttributes sets attributes from a keyed mapping (Attrs, []Attr,
// map[string]string, map[string]any or an ordered map). Anything else is
// ignored.
func WithAttributes(attrs any) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs)
	}
}

// WithChildren appends children after the attributes are applied.
func WithChildren(items ...any) Option {
	return func(o *options) {
		o.children = append(o.children, items...)
	}
}

// WithEscape sets the node's own escape function.
func WithEscape(fn EscapeFunc) Option {
	return func(o *options) {
		o.escape = fn
	}
}

// WithoutEscape disables escaping for the node and everything it renders.
func WithoutEscape() Option {
	return func(o *options) {
		o.ignoreEscape = true
	}
}

// WithEscapeIfPossible is the boolean form of WithoutEscape: false disables
// escaping.
func WithEscapeIfPossible(escape bool) Option {
	return func(o *options) {
		o.ignoreEscape = !escape
	}
}

// New creates a Node with the given tag name.
//
// The escape policy is applied first, then attributes, then children, so
// attribute values are escaped with the node's own function. New panics if
// tag is empty.
func New(tag string, opts ...Option) *Node {
	if tag == "" {
		panic("elem: empty tag name")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := &Node{
		tag:          tag,
		attributes:   orderedmap.New[string, string](),
		escape:       o.escape,
		ignoreEscape: o.ignoreEscape,
	}
	for _, attrs := range o.attrs {
		n.SetAttributes(attrs)
	}
	n.Append(o.children...)
	return n
}

// Elem creates a Node from positional arguments:
//
//	Elem(tag, attributes, children, escapeIfPossible)
//
// Attributes and children are both optional. If the second argument is
// present, the third is absent or a bool, and the second is not a keyed
// mapping, the second argument is taken as children and a bool third
// argument as escapeIfPossible. This allows both Elem("li", attrs, "text")
// and Elem("li", "text").
//
// A bool is read as escapeIfPossible only in the fourth position, or in the
// third when the swap applies. Elem("p", attrs, false) takes false as the
// children, which are dropped, and keeps escaping; use
// Elem("p", attrs, nil, false) instead.
func Elem(tag string, args ...any) *Node {
	var (
		attrs    any
		children any
		escape   = true
	)

	switch {
	case len(args) == 0:
	case (len(args) == 1 || isBool(args[1])) && !IsKeyed(args[0]):
		children = args[0]
		if len(args) > 1 {
			escape = args[1].(bool)
		}
	default:
		attrs = args[0]
		if len(args) > 1 {
			children = args[1]
		}
		if len(args) > 2 {
			if b, ok := args[2].(bool); ok {
				escape = b
			}
		}
	}

	opts := []Option{WithEscapeIfPossible(escape)}
	if attrs != nil {
		opts = append(opts, WithAttributes(attrs))
	}
	if children != nil {
		opts = append(opts, WithChildren(children))
	}
	return New(tag, opts...)
}

func isBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// TagName returns the element's tag name.
func (n *Node) TagName() string {
	return n.tag
}

// ID returns the value of the id attribute, or "" if unset.
func (n *Node) ID() string {
	return n.id
}

// SelfClosing reports whether n renders as a single tag.
func (n *Node) SelfClosing() bool {
	return IsSelfClosing(n.tag)
}
