package elem

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Attr is a single attribute name and value.
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered list of attributes. It is a keyed mapping for
// SetAttributes and Elem.
type Attrs []Attr

// A builds Attrs from alternating names and values. A trailing name
// without a value is dropped.
func A(pairs ...string) Attrs {
	attrs := make(Attrs, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs = append(attrs, Attr{Key: pairs[i], Value: pairs[i+1]})
	}
	return attrs
}

// IsKeyed reports whether v is a keyed mapping accepted as attributes.
func IsKeyed(v any) bool {
	_, ok := keyedPairs(v)
	return ok
}

// keyedPairs flattens a keyed mapping into attributes. Go maps are applied
// in sorted key order.
func keyedPairs(v any) ([]Attr, bool) {
	switch m := v.(type) {
	case Attrs:
		return m, true
	case []Attr:
		return m, true
	case map[string]string:
		attrs := make([]Attr, 0, len(m))
		for _, k := range sortedKeys(m) {
			attrs = append(attrs, Attr{Key: k, Value: m[k]})
		}
		return attrs, true
	case map[string]any:
		attrs := make([]Attr, 0, len(m))
		for _, k := range sortedKeys(m) {
			attrs = append(attrs, Attr{Key: k, Value: m[k]})
		}
		return attrs, true
	case *orderedmap.OrderedMap[string, string]:
		if m == nil {
			return nil, true
		}
		attrs := make([]Attr, 0, m.Len())
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			attrs = append(attrs, Attr{Key: pair.Key, Value: pair.Value})
		}
		return attrs, true
	case *orderedmap.OrderedMap[string, any]:
		if m == nil {
			return nil, true
		}
		attrs := make([]Attr, 0, m.Len())
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			attrs = append(attrs, Attr{Key: pair.Key, Value: pair.Value})
		}
		return attrs, true
	}
	return nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetAttribute returns the stored value of the named attribute.
func (n *Node) GetAttribute(name string) (string, bool) {
	if name == "class" {
		if !n.classSet {
			return "", false
		}
		return strings.Join(n.classList, " "), true
	}
	return n.attributes.Get(name)
}

// HasAttribute reports whether the named attribute is present.
func (n *Node) HasAttribute(name string) bool {
	_, ok := n.GetAttribute(name)
	return ok
}

// SetAttribute stores an attribute and reports whether it was accepted.
//
// Names that are not allow-listed and not prefixed with "data-" or "on" are
// ignored. The value is converted to a string and escaped with the node's
// active escape function; []string and []any values are escaped element by
// element and joined with spaces. Setting "class" replaces the class list.
func (n *Node) SetAttribute(name string, value any) bool {
	if !IsAllowedAttribute(name) {
		return false
	}

	s := n.attributeValue(value)
	switch name {
	case "class":
		n.classList = nil
		n.classSet = true
		n.addTokens(s, nil)
		return true
	case "id":
		n.id = s
	}
	n.attributes.Set(name, s)
	return true
}

// SetAttributes applies a keyed mapping of attributes in order. The key
// "+class" adds classes instead of replacing them. It returns false, and
// changes nothing, if attrs is not a keyed mapping.
func (n *Node) SetAttributes(attrs any) bool {
	pairs, ok := keyedPairs(attrs)
	if !ok {
		return false
	}
	for _, a := range pairs {
		if a.Key == "+class" {
			n.AddClass(classValue(a.Value))
			continue
		}
		n.SetAttribute(a.Key, a.Value)
	}
	return true
}

// RemoveAttribute deletes the named attribute.
func (n *Node) RemoveAttribute(name string) {
	switch name {
	case "class":
		n.classList = nil
		n.classSet = false
		return
	case "id":
		n.id = ""
	}
	n.attributes.Delete(name)
}

// SetID sets the id attribute.
func (n *Node) SetID(id string) {
	n.SetAttribute("id", id)
}

// AttributeNames returns the attribute names in render order.
func (n *Node) AttributeNames() []string {
	names := make([]string, 0, n.attributes.Len()+1)
	if _, ok := n.attributes.Get("id"); ok {
		names = append(names, "id")
	}
	if len(n.classList) > 0 {
		names = append(names, "class")
	}
	for pair := n.attributes.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != "id" {
			names = append(names, pair.Key)
		}
	}
	return names
}

func (n *Node) attributeValue(value any) string {
	fn := n.ResolveEscape(nil, nil)
	switch v := value.(type) {
	case []string:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = escapeWith(fn, s)
		}
		return strings.Join(parts, " ")
	case []any:
		parts := make([]string, len(v))
		for i, s := range v {
			parts[i] = escapeWith(fn, cast.ToString(s))
		}
		return strings.Join(parts, " ")
	}
	return escapeWith(fn, cast.ToString(value))
}

func classValue(value any) string {
	switch v := value.(type) {
	case []string:
		return strings.Join(v, " ")
	case []any:
		return strings.Join(cast.ToStringSlice(v), " ")
	}
	return cast.ToString(value)
}
