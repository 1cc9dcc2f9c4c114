// Package measure supplies the natural height of a panel's content region.
//
// There is no layout engine on this side of the wire, so the default
// Estimator approximates what a browser would lay out from the content's
// text and block structure. Callers with real metrics plug in a Func.
package measure

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

type Measurer interface {
	// Measure returns the expanded height of region in CSS pixels.
	Measure(region *html.Node) int
}

type Func func(region *html.Node) int

func (f Func) Measure(region *html.Node) int { return f(region) }

// Fixed reports the same height for every region.
func Fixed(px int) Measurer {
	return Func(func(*html.Node) int { return px })
}

type Estimator struct {
	LineHeight   int
	CharsPerLine int
	BlockGap     int
	Padding      int
	ImageHeight  int
}

// DefaultEstimator matches the spacing constants in accordion.css.
func DefaultEstimator() Estimator {
	return Estimator{
		LineHeight:   24,
		CharsPerLine: 80,
		BlockGap:     16,
		Padding:      32,
		ImageHeight:  160,
	}
}

var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "details": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hr": true, "li": true, "main": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "tr": true, "ul": true,
}

type estimate struct {
	e      Estimator
	lines  int
	blocks int
	extra  int
	run    int
}

func (s *estimate) flush() {
	if s.run == 0 {
		return
	}
	cpl := max(s.e.CharsPerLine, 1)
	s.lines += (s.run + cpl - 1) / cpl
	s.run = 0
}

func (s *estimate) visit(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		text := strings.Join(strings.Fields(n.Data), " ")
		s.run += utf8.RuneCountInString(text)
		return
	case html.ElementNode:
	default:
		return
	}

	switch {
	case n.Data == "br":
		if s.run == 0 {
			s.lines++
		}
		s.flush()
		return
	case n.Data == "img":
		s.flush()
		s.extra += s.e.ImageHeight
		return
	case n.Data == "pre":
		s.flush()
		s.blocks++
		s.lines += strings.Count(strings.TrimRight(textOf(n), "\n"), "\n") + 1
		return
	case blockElements[n.Data]:
		s.flush()
		s.blocks++
		s.children(n)
		s.flush()
		return
	}
	s.children(n)
}

func (s *estimate) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		s.visit(c)
	}
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return sb.String()
}

// Measure estimates the laid-out height of region's children.
func (e Estimator) Measure(region *html.Node) int {
	if region == nil {
		return 0
	}
	s := &estimate{e: e}
	s.children(region)
	s.flush()

	height := e.Padding + s.lines*e.LineHeight + s.extra
	if s.blocks > 1 {
		height += (s.blocks - 1) * e.BlockGap
	}
	return height
}
