// Package document builds the element tree shown on screen.
//
// The tree is a pure projection of application state. Every interactive
// element carries a stable TestID so that automation can find it without
// depending on terminal layout.
package document

import (
	"slices"
	"strings"
)

// Element tags.
const (
	TagRoot     = "root"
	TagHeading  = "h1"
	TagCard     = "card"
	TagForm     = "form"
	TagLabel    = "label"
	TagTextarea = "textarea"
	TagSelect   = "select"
	TagOption   = "option"
	TagButton   = "button"
	TagList     = "ul"
	TagItem     = "li"
	TagCheckbox = "checkbox"
	TagSpan     = "span"
	TagGroup    = "div"
)

// Node is one element of the rendered document.
type Node struct {
	Tag      string
	TestID   string
	Classes  []string
	Text     string
	Value    string
	Checked  bool
	Disabled bool
	Focused  bool
	Children []*Node
}

// HasClass reports whether the node carries class c.
func (n *Node) HasClass(c string) bool {
	if n == nil {
		return false
	}
	return slices.Contains(n.Classes, c)
}

// TextContent returns the concatenated text of the node and its
// descendants, separated by single spaces. Form fields contribute their
// value; options contribute nothing.
func (n *Node) TextContent() string {
	var parts []string
	n.walk(func(c *Node) bool {
		if c.Tag == TagOption {
			return false
		}
		switch {
		case c.Text != "":
			parts = append(parts, c.Text)
		case c.Tag == TagTextarea && c.Value != "":
			parts = append(parts, c.Value)
		}
		return true
	})
	return strings.Join(parts, " ")
}

// ByTestID returns the first node in document order with the given id.
func (n *Node) ByTestID(id string) *Node {
	var found *Node
	n.walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.TestID == id {
			found = c
			return false
		}
		return true
	})
	return found
}

// AllByTestID returns every node with the given id in document order.
func (n *Node) AllByTestID(id string) []*Node {
	var out []*Node
	n.walk(func(c *Node) bool {
		if c.TestID == id {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Options returns the option children of a select node.
func (n *Node) Options() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Tag == TagOption {
			out = append(out, c)
		}
	}
	return out
}

// walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn)
	}
}
