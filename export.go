package accordion

import (
	"fmt"
	"slices"

	"github.com/3-lines-studio/accordion/internal/assets"
	"github.com/3-lines-studio/accordion/internal/dom"
	"github.com/3-lines-studio/accordion/internal/page"
)

// ExportOptions controls ExportStatic.
type ExportOptions struct {
	Title string
	// Open is the index of a panel rendered expanded. Nil renders every
	// panel closed.
	Open *int
	// Fragment returns only the host element instead of a full page.
	Fragment bool
}

// ExportStatic renders opts into a fresh document and returns the
// resulting markup. The stylesheet is inlined so the page works without a
// server; without the script panels stay in the state they were exported
// in.
func ExportStatic(opts Options, export ExportOptions, options ...Option) (string, error) {
	doc := dom.NewDocument(opts.Container)
	a, err := New(doc, opts, append(slices.Clone(options), WithTransition(0))...)
	if err != nil {
		return "", err
	}
	defer a.Stop()

	if export.Open != nil {
		if err := a.Toggle(*export.Open); err != nil {
			return "", fmt.Errorf("open panel: %w", err)
		}
	}

	body, err := a.OuterHTML()
	if err != nil {
		return "", fmt.Errorf("serialise accordion: %w", err)
	}
	if export.Fragment {
		return body, nil
	}

	css, err := assets.Read(assets.Stylesheet)
	if err != nil {
		return "", err
	}
	title := export.Title
	if title == "" {
		title = opts.MainTitle
	}
	return page.RenderStandalone(body, title, string(css))
}
