package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

func Classes(n *html.Node) []string {
	v, _ := GetAttr(n, "class")
	return strings.Fields(v)
}

func HasClass(n *html.Node, class string) bool {
	return slices.Contains(Classes(n), class)
}

// AddClass appends class if it is not already present.
func AddClass(n *html.Node, class string) {
	classes := Classes(n)
	if slices.Contains(classes, class) {
		return
	}
	SetAttr(n, "class", strings.Join(append(classes, class), " "))
}

// RemoveClass drops class, and the attribute itself once it is empty.
func RemoveClass(n *html.Node, class string) {
	classes := Classes(n)
	i := slices.Index(classes, class)
	if i < 0 {
		return
	}
	classes = slices.Delete(classes, i, i+1)
	if len(classes) == 0 {
		RemoveAttr(n, "class")
		return
	}
	SetAttr(n, "class", strings.Join(classes, " "))
}

// ReplaceClass swaps from for to in place, keeping the class order stable.
// If from is absent, to is appended.
func ReplaceClass(n *html.Node, from, to string) {
	classes := Classes(n)
	i := slices.Index(classes, from)
	if i < 0 {
		AddClass(n, to)
		return
	}
	if slices.Contains(classes, to) {
		RemoveClass(n, from)
		return
	}
	classes[i] = to
	SetAttr(n, "class", strings.Join(classes, " "))
}
