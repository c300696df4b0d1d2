package elem

import (
	"sync/atomic"

	"golang.org/x/net/html"
)

// EscapeFunc transforms a raw text leaf before it is written.
type EscapeFunc func(string) string

// EscapeHTML escapes the five characters significant in HTML markup:
// <, >, &, ' and ".
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// NoEscape returns s unchanged.
func NoEscape(s string) string {
	return s
}

var defaultEscape atomic.Pointer[EscapeFunc]

// SetDefaultEscape sets the process-wide default escape function.
// A nil fn clears it. The last writer wins.
func SetDefaultEscape(fn EscapeFunc) {
	if fn == nil {
		defaultEscape.Store(nil)
		return
	}
	defaultEscape.Store(&fn)
}

// DefaultEscape returns the process-wide default escape function, or nil.
func DefaultEscape() EscapeFunc {
	if p := defaultEscape.Load(); p != nil {
		return *p
	}
	return nil
}

// ResolveEscape returns the escape function a render pass rooted at n uses.
//
// Priority, highest first: explicit, the node's own function, fallback, the
// process-wide default. A node that ignores escaping always resolves to nil,
// which means text is written as is.
func (n *Node) ResolveEscape(explicit, fallback EscapeFunc) EscapeFunc {
	if n.ignoreEscape {
		return nil
	}
	switch {
	case explicit != nil:
		return explicit
	case n.escape != nil:
		return n.escape
	case fallback != nil:
		return fallback
	}
	return DefaultEscape()
}

// SetEscape sets the node's own escape function. It has no effect on a node
// that ignores escaping.
func (n *Node) SetEscape(fn EscapeFunc) {
	n.escape = fn
}

// IgnoresEscape reports whether escaping is disabled for n.
func (n *Node) IgnoresEscape() bool {
	return n.ignoreEscape
}

func escapeWith(fn EscapeFunc, s string) string {
	if fn == nil {
		return s
	}
	return fn(s)
}
