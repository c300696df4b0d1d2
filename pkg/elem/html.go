package elem

import (
	"io"
	"os"
	"strings"
)

// htmlWriter accumulates a byte count and keeps the first write error.
// Writes after an error are dropped.
type htmlWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (hw *htmlWriter) str(s string) {
	if hw.err != nil {
		return
	}
	k, err := io.WriteString(hw.w, s)
	hw.n += int64(k)
	hw.err = err
}

// OpeningTag renders the opening tag with all attributes: id first, then
// class, then the rest in insertion order. Self-closing tags end in " />".
func (n *Node) OpeningTag() string {
	var b strings.Builder
	n.writeOpeningTag(&htmlWriter{w: &b})
	return b.String()
}

// ClosingTag renders the closing tag, or "" for a self-closing tag.
func (n *Node) ClosingTag() string {
	if n.SelfClosing() {
		return ""
	}
	return "</" + n.tag + ">"
}

// InnerHTML renders the children. Text leaves are escaped with the function
// resolved from fn (see ResolveEscape). A non-nil resolved function is used
// for every descendant; otherwise each child node resolves its own.
func (n *Node) InnerHTML(fn EscapeFunc) string {
	var b strings.Builder
	n.writeInner(&htmlWriter{w: &b}, n.passEscape(fn, nil))
	return b.String()
}

// OuterHTML renders the whole element. Self-closing tags render only their
// opening tag.
func (n *Node) OuterHTML(fn EscapeFunc) string {
	var b strings.Builder
	n.writeOuter(&htmlWriter{w: &b}, n.passEscape(fn, nil))
	return b.String()
}

// String renders the element with no explicit escape function.
func (n *Node) String() string {
	return n.OuterHTML(nil)
}

// Render writes the element to w. The escape function is resolved from
// explicit and fallback at n; if that yields a function it is used for the
// whole tree.
func (n *Node) Render(w io.Writer, explicit, fallback EscapeFunc) (int64, error) {
	hw := &htmlWriter{w: w}
	n.writeOuter(hw, n.passEscape(explicit, fallback))
	return hw.n, hw.err
}

// WriteHTML writes OuterHTML(fn) to w.
func (n *Node) WriteHTML(w io.Writer, fn EscapeFunc) error {
	_, err := n.Render(w, fn, nil)
	return err
}

// WriteTo implements io.WriterTo.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	return n.Render(w, nil, nil)
}

// Output writes OuterHTML(fn) to standard output.
func (n *Node) Output(fn EscapeFunc) error {
	return n.WriteHTML(os.Stdout, fn)
}

func (n *Node) writeOpeningTag(hw *htmlWriter) {
	hw.str("<")
	hw.str(n.tag)

	if id, ok := n.attributes.Get("id"); ok {
		writeAttr(hw, "id", id)
	}
	if len(n.classList) > 0 {
		writeAttr(hw, "class", strings.Join(n.classList, " "))
	}
	for pair := n.attributes.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == "id" {
			continue
		}
		writeAttr(hw, pair.Key, pair.Value)
	}

	if n.SelfClosing() {
		hw.str(" />")
		return
	}
	hw.str(">")
}

func writeAttr(hw *htmlWriter, name, value string) {
	hw.str(" ")
	hw.str(name)
	hw.str(`="`)
	hw.str(value)
	hw.str(`"`)
}

// passState is the escape state handed down a render pass. raw is set
// below a node that ignores escaping; fn is then nil.
type passState struct {
	fn  EscapeFunc
	raw bool
}

func (n *Node) passEscape(explicit, fallback EscapeFunc) passState {
	return passState{fn: n.ResolveEscape(explicit, fallback), raw: n.ignoreEscape}
}

func (n *Node) writeOuter(hw *htmlWriter, pe passState) {
	n.writeOpeningTag(hw)
	if n.SelfClosing() {
		return
	}
	n.writeInner(hw, pe)
	hw.str("</")
	hw.str(n.tag)
	hw.str(">")
}

// writeInner renders the children. A resolved function is passed down
// unchanged and a child's own function is not consulted. Without one, each
// child node resolves its own. A child that ignores escaping, or any node
// under one, renders unescaped.
func (n *Node) writeInner(hw *htmlWriter, pe passState) {
	for _, c := range n.children {
		switch v := c.(type) {
		case Text:
			hw.str(escapeWith(pe.fn, string(v)))
		case *Node:
			switch {
			case pe.raw || v.ignoreEscape:
				v.writeOuter(hw, passState{raw: true})
			case pe.fn != nil:
				v.writeOuter(hw, pe)
			default:
				v.writeOuter(hw, v.passEscape(nil, nil))
			}
		}
	}
}
