// Package content decides how caller-supplied panel content becomes markup.
//
// The default format passes HTML through untouched: the caller owns the
// content and is trusted. Sanitized and markdown are opt-in.
package content

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

type Format string

const (
	FormatHTML      Format = "html"
	FormatSanitized Format = "sanitized"
	FormatMarkdown  Format = "markdown"
)

func Formats() []Format {
	return []Format{FormatHTML, FormatSanitized, FormatMarkdown}
}

// ParseFormat accepts the format names case-insensitively. An empty name
// selects FormatHTML.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatSanitized:
		return FormatSanitized, nil
	case FormatMarkdown, "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown content format %q", name)
}

var (
	markdownOnce     sync.Once
	markdownInstance goldmark.Markdown

	policyOnce     sync.Once
	policyInstance *bluemonday.Policy
)

func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		)
	})
	return markdownInstance
}

func policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policyInstance = bluemonday.UGCPolicy()
	})
	return policyInstance
}

// Render converts src to panel markup according to f.
func Render(f Format, src string) (string, error) {
	switch f {
	case "", FormatHTML:
		return src, nil
	case FormatSanitized:
		return policy().Sanitize(src), nil
	case FormatMarkdown:
		var buf bytes.Buffer
		if err := markdown().Convert([]byte(src), &buf); err != nil {
			return "", fmt.Errorf("render markdown: %w", err)
		}
		return buf.String(), nil
	}
	return "", fmt.Errorf("unknown content format %q", string(f))
}
