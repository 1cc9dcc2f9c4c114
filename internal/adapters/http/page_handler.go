package http

import (
	"bytes"
	"net/http"

	"github.com/3-lines-studio/accordion/internal/assets"
	"github.com/3-lines-studio/accordion/internal/page"
)

type PageHandler struct {
	widget Widget
	title  string
}

func NewPageHandler(widget Widget, title string) http.Handler {
	return &PageHandler{widget: widget, title: title}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	host, err := h.widget.OuterHTML()
	if err != nil {
		panic(err)
	}

	var body bytes.Buffer
	body.WriteString(`<div data-accordion="" data-toggle-url="/toggle">`)
	body.WriteString(host)
	body.WriteString(`</div>`)

	html, err := page.RenderHTMLShell(
		body.String(),
		h.title,
		assets.Href(assetPrefix, assets.Stylesheet),
		assets.Href(assetPrefix, assets.Script),
	)
	if err != nil {
		panic(err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(html))
}
