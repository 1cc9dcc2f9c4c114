package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document owns a parsed page. Widgets render into elements found by id.
type Document struct {
	root *html.Node
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root}, nil
}

func ParseString(src string) (*Document, error) {
	return Parse(strings.NewReader(src))
}

// NewDocument returns an empty page whose body holds a single <div> with
// the given id, ready to host a widget.
func NewDocument(containerID string) *Document {
	doc, err := ParseString(`<!doctype html><html><head></head><body></body></html>`)
	if err != nil {
		panic(fmt.Sprintf("dom: parse empty document: %v", err))
	}
	if containerID != "" {
		Append(doc.Body(), Element("div", Attr("id", containerID)))
	}
	return doc
}

func (d *Document) Root() *html.Node {
	return d.root
}

func (d *Document) Body() *html.Node {
	return Find(d.root, func(n *html.Node) bool {
		return IsElement(n) && n.Data == "body"
	})
}

func (d *Document) GetElementByID(id string) *html.Node {
	return FindByID(d.root, id)
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}
