// Package view provides a small DOM-like render tree.
//
// A tree of *Node values stands in for the browser document: elements have a
// tag, optional text, a class list, string attributes, and event listeners.
// The widget builds its visual state here and front ends (the terminal UI,
// the ls command) project the tree however they like. Nothing in the tree is
// tied to a real rendering environment, which keeps it usable as a test
// double.
package view

import (
	"slices"
	"strings"
)

// Common attribute names.
const (
	AttrDisabled    = "disabled"
	AttrPlaceholder = "placeholder"
	AttrType        = "type"
)

// Node is an element in the render tree.
type Node struct {
	Tag string

	text      string
	value     string
	classes   []string
	attrs     map[string]string
	parent    *Node
	children  []*Node
	listeners map[string][]Listener
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Node {
	return &Node{Tag: tag}
}

// SetText sets the node's own text (not its descendants').
func (n *Node) SetText(text string) {
	n.text = text
}

// Text returns the node's own text.
func (n *Node) Text() string {
	return n.text
}

// TextContent returns the node's text followed by that of every descendant,
// depth first.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		b.WriteString(c.text)
		return true
	})
	return b.String()
}

// SetValue sets the current value of an input element.
func (n *Node) SetValue(v string) {
	n.value = v
}

// Value returns the current value of an input element.
func (n *Node) Value() string {
	return n.value
}

// AddClass adds classes not already present, keeping insertion order.
func (n *Node) AddClass(classes ...string) {
	for _, c := range classes {
		if c == "" || n.HasClass(c) {
			continue
		}
		n.classes = append(n.classes, c)
	}
}

// RemoveClass removes the given classes if present.
func (n *Node) RemoveClass(classes ...string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool {
		return slices.Contains(classes, c)
	})
}

// ToggleClass flips a class and reports whether it is now present.
func (n *Node) ToggleClass(class string) bool {
	if n.HasClass(class) {
		n.RemoveClass(class)
		return false
	}
	n.AddClass(class)
	return true
}

// HasClass reports whether the class is present.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

// Classes returns a copy of the class list.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

// SetAttr sets an attribute.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// Attr returns an attribute value and whether it is set.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// RemoveAttr removes an attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// SetDisabled sets or clears the disabled attribute.
func (n *Node) SetDisabled(disabled bool) {
	if disabled {
		n.SetAttr(AttrDisabled, AttrDisabled)
		return
	}
	n.RemoveAttr(AttrDisabled)
}

// Disabled reports whether the disabled attribute is set.
func (n *Node) Disabled() bool {
	_, ok := n.Attr(AttrDisabled)
	return ok
}

// Append adds children at the end, detaching each from any previous parent.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.Remove()
		c.parent = n
		n.children = append(n.children, c)
	}
}

// Remove detaches the node from its parent. A detached node is left as is.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool {
		return c == n
	})
	n.parent = nil
}

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// FindAll returns every node in the subtree (n included) with the given tag.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c.Tag == tag {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first node in the subtree with the given tag, or nil.
func (n *Node) Find(tag string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Tag == tag {
			found = c
			return false
		}
		return true
	})
	return found
}
