// Package dom is a small element tree on top of golang.org/x/net/html.
//
// It covers the subset of the browser DOM the accordion needs: building
// elements, class lists, inline styles, lookups and fragment parsing.
package dom

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is the x/net/html node; the alias keeps callers off that import
// when they only pass nodes around.
type Node = html.Node

// Attr is shorthand for an attribute without a namespace.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Element returns a detached element node.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(attrs) > 0 {
		n.Attr = append([]html.Attribute(nil), attrs...)
	}
	return n
}

// Text returns a detached text node. Render escapes it.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Append attaches children to parent in order, skipping nils.
func Append(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		parent.AppendChild(c)
	}
	return parent
}

// RemoveChildren detaches every child of n.
func RemoveChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// ReplaceChildren swaps the whole content of n for children.
func ReplaceChildren(n *html.Node, children ...*html.Node) {
	RemoveChildren(n)
	Append(n, children...)
}

func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

func GetAttr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, Attr(key, val))
}

func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
	if len(n.Attr) == 0 {
		n.Attr = nil
	}
}
