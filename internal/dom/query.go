package dom

import "golang.org/x/net/html"

// Walk visits n and its descendants depth-first until visit returns false.
func Walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !Walk(c, visit) {
			return false
		}
	}
	return true
}

func Find(root *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	Walk(root, func(n *html.Node) bool {
		if match(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func FindByID(root *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	return Find(root, func(n *html.Node) bool {
		v, ok := GetAttr(n, "id")
		return IsElement(n) && ok && v == id
	})
}

func FindByClass(root *html.Node, class string) *html.Node {
	return Find(root, func(n *html.Node) bool {
		return IsElement(n) && HasClass(n, class)
	})
}

func FindAllByClass(root *html.Node, class string) []*html.Node {
	return FindAll(root, func(n *html.Node) bool {
		return IsElement(n) && HasClass(n, class)
	})
}

// Closest walks from n up through its ancestors, stopping at (and
// including) limit. A nil limit means the document root.
func Closest(n, limit *html.Node, match func(*html.Node) bool) *html.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if IsElement(cur) && match(cur) {
			return cur
		}
		if cur == limit {
			break
		}
	}
	return nil
}

// Contains reports whether n is root or one of its descendants.
func Contains(root, n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == root {
			return true
		}
	}
	return false
}
