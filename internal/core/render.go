package core

import (
	"fmt"
	"strconv"

	"github.com/3-lines-studio/accordion/internal/content"
	"github.com/3-lines-studio/accordion/internal/dom"
)

// RenderPanel builds the markup for one closed panel. The title is
// inserted as text. The content is converted according to format and
// parsed as a fragment without escaping.
func RenderPanel(p Panel, index int, format content.Format) (*dom.Node, error) {
	markup, err := content.Render(format, p.Content)
	if err != nil {
		return nil, fmt.Errorf("panel %d: %w", index, err)
	}
	body, err := dom.ParseFragment(markup)
	if err != nil {
		return nil, fmt.Errorf("panel %d: %w", index, err)
	}

	headerClass := ClassHeader + " " + ClassWithoutDescription
	var description *dom.Node
	if p.HasDescription() {
		headerClass = ClassHeader + " " + ClassWithDescription
		description = dom.Append(
			dom.Element("div", dom.Attr("class", ClassDescription)),
			dom.Text(p.Summary()),
		)
	}

	header := dom.Append(
		dom.Element("div", dom.Attr("class", headerClass)),
		dom.Append(dom.Element("div", dom.Attr("class", ClassTitle)), dom.Text(p.Title)),
		description,
		dom.Element("div", dom.Attr("class", ClassToggle)),
	)

	region := dom.Append(
		dom.Element("div", dom.Attr("class", ClassContent)),
		dom.Append(dom.Element("div", dom.Attr("class", ClassInner)), body...),
	)

	return dom.Append(
		dom.Element("div",
			dom.Attr("class", ClassPanel+" "+ClassClosed),
			dom.Attr(AttrIndex, strconv.Itoa(index)),
		),
		header,
		region,
	), nil
}

// RenderHeader returns the main title block, or nil without a title.
func RenderHeader(mainTitle string) *dom.Node {
	if mainTitle == "" {
		return nil
	}
	return dom.Append(
		dom.Element("div", dom.Attr("class", ClassAccordionHeader)),
		dom.Append(dom.Element("h2", dom.Attr("class", ClassMainTitle)), dom.Text(mainTitle)),
	)
}

// RenderAccordion returns the optional header followed by one node per
// panel, in input order.
func RenderAccordion(opts Options) ([]*dom.Node, error) {
	nodes := make([]*dom.Node, 0, len(opts.Panels)+1)
	if header := RenderHeader(opts.MainTitle); header != nil {
		nodes = append(nodes, header)
	}
	for i, p := range opts.Panels {
		n, err := RenderPanel(p, i, opts.Format)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
