// Package config reads accordion options from YAML or JSON files.
package config

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/3-lines-studio/accordion/internal/content"
	"github.com/3-lines-studio/accordion/internal/core"
)

// Decode parses an options document. Structural problems come back as
// core.ValidationErrors listing every violation; syntax errors are
// wrapped.
func Decode(data []byte) (core.Options, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return core.Options{}, fmt.Errorf("decode options: %w", err)
	}

	if err := core.ValidateDocument(doc).Err(); err != nil {
		return core.Options{}, err
	}

	return fromDocument(doc)
}

type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

func Load(files FileReader, path string) (core.Options, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return core.Options{}, fmt.Errorf("read options %s: %w", path, err)
	}
	opts, err := Decode(data)
	if err != nil {
		return core.Options{}, err
	}
	return opts, nil
}

func fromDocument(doc map[string]any) (core.Options, error) {
	format, err := content.ParseFormat(stringField(doc, core.FieldFormat))
	if err != nil {
		return core.Options{}, err
	}

	opts := core.Options{
		Container: stringField(doc, core.FieldContainer),
		MainTitle: stringField(doc, core.FieldMainTitle),
		Format:    format,
	}
	if opts.MainTitle == "" {
		opts.MainTitle = stringField(doc, "main_title")
	}

	raw, _ := doc[core.FieldPanels].([]any)
	opts.Panels = make([]core.Panel, 0, len(raw))
	for _, item := range raw {
		p, _ := item.(map[string]any)
		opts.Panels = append(opts.Panels, core.Panel{
			Title:       stringField(p, core.FieldTitle),
			Subtitle:    stringField(p, core.FieldSubtitle),
			Description: stringField(p, "description"),
			Content:     stringField(p, core.FieldContent),
		})
	}
	return opts, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
