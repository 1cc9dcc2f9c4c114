package dom

import (
	"strings"

	"golang.org/x/net/html"
)

type declaration struct {
	prop  string
	value string
}

func parseStyle(n *html.Node) []declaration {
	raw, _ := GetAttr(n, "style")
	var decls []declaration
	for part := range strings.SplitSeq(raw, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		decls = append(decls, declaration{prop: prop, value: strings.TrimSpace(value)})
	}
	return decls
}

func writeStyle(n *html.Node, decls []declaration) {
	if len(decls) == 0 {
		RemoveAttr(n, "style")
		return
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.value
	}
	SetAttr(n, "style", strings.Join(parts, "; ")+";")
}

// Style returns the inline value of prop.
func Style(n *html.Node, prop string) (string, bool) {
	prop = strings.ToLower(prop)
	for _, d := range parseStyle(n) {
		if d.prop == prop {
			return d.value, true
		}
	}
	return "", false
}

func SetStyle(n *html.Node, prop, value string) {
	prop = strings.ToLower(prop)
	decls := parseStyle(n)
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			writeStyle(n, decls)
			return
		}
	}
	writeStyle(n, append(decls, declaration{prop: prop, value: value}))
}

// RemoveStyle clears prop. The style attribute goes away with its last
// declaration so a cleared element serialises like a fresh one.
func RemoveStyle(n *html.Node, prop string) {
	prop = strings.ToLower(prop)
	decls := parseStyle(n)
	out := decls[:0]
	for _, d := range decls {
		if d.prop != prop {
			out = append(out, d)
		}
	}
	writeStyle(n, out)
}
