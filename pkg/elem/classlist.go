package elem

import (
	"slices"
	"strings"
)

// AddClass adds each whitespace-separated token in classes that is not already
// present. New tokens are escaped with the node's active escape function.
func (n *Node) AddClass(classes string) {
	n.classSet = true
	n.addTokens(classes, n.ResolveEscape(nil, nil))
}

// RemoveClass removes each whitespace-separated token in classes.
func (n *Node) RemoveClass(classes string) {
	n.classSet = true
	for _, token := range strings.Fields(classes) {
		if i := slices.Index(n.classList, token); i >= 0 {
			n.classList = slices.Delete(n.classList, i, i+1)
		}
	}
}

// HasClass reports whether token is in the class list.
func (n *Node) HasClass(token string) bool {
	return slices.Contains(n.classList, token)
}

// ClassList returns a copy of the class tokens in order.
func (n *Node) ClassList() []string {
	return slices.Clone(n.classList)
}

func (n *Node) addTokens(classes string, fn EscapeFunc) {
	for _, token := range strings.Fields(classes) {
		if slices.Contains(n.classList, token) {
			continue
		}
		token = escapeWith(fn, token)
		if slices.Contains(n.classList, token) {
			continue
		}
		n.classList = append(n.classList, token)
	}
}
