package core

import "github.com/3-lines-studio/accordion/internal/content"

type Panel struct {
	Title       string
	Subtitle    string
	Description string
	Content     string
}

// Summary is the text shown under the title. Subtitle wins when both are
// set.
func (p Panel) Summary() string {
	if p.Subtitle != "" {
		return p.Subtitle
	}
	return p.Description
}

func (p Panel) HasDescription() bool {
	return p.Summary() != ""
}

type Options struct {
	// Container is the id of the host element.
	Container string
	MainTitle string
	// Panels must be non-nil. An empty, non-nil slice renders no panels.
	Panels []Panel
	Format content.Format
}
