package elem

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// selfClosing are the tags rendered without inner content or closing tag.
var selfClosing = map[atom.Atom]bool{
	atom.Base:  true,
	atom.Meta:  true,
	atom.Link:  true,
	atom.Input: true,
	atom.Img:   true,
}

// IsSelfClosing returns true if tag is rendered as a single " />" tag.
func IsSelfClosing(tag string) bool {
	return selfClosing[atom.Lookup([]byte(tag))]
}

// allowedAttributes are the attribute names SetAttribute accepts, in
// addition to any "data-" or "on" prefixed name.
var allowedAttributes = map[string]bool{
	"id":          true,
	"class":       true,
	"style":       true,
	"title":       true,
	"hidden":      true,
	"src":         true,
	"alt":         true,
	"href":        true,
	"target":      true,
	"type":        true,
	"name":        true,
	"readonly":    true,
	"accept":      true,
	"for":         true,
	"value":       true,
	"placeholder": true,
	"method":      true,
	"action":      true,
	"selected":    true,
	"disabled":    true,
	"multiple":    true,
	"min":         true,
	"max":         true,
	"step":        true,
	"content":     true,
	"rel":         true,
	"charset":     true,
	"lang":        true,
	"colspan":     true,
	"rowspan":     true,
	"onclick":     true,
}

// IsAllowedAttribute returns true if name may be stored on a Node.
func IsAllowedAttribute(name string) bool {
	if allowedAttributes[name] {
		return true
	}
	return strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "on")
}
