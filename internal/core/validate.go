package core

import (
	"fmt"
	"strings"

	"github.com/3-lines-studio/accordion/internal/content"
)

const (
	FieldContainer = "container"
	FieldMainTitle = "mainTitle"
	FieldPanels    = "panels"
	FieldTitle     = "title"
	FieldContent   = "content"
	FieldSubtitle  = "subtitle"
	FieldFormat    = "format"
)

// ValidationError is a single violation. Index is the panel position, or
// -1 for options-level fields.
type ValidationError struct {
	Field   string
	Index   int
	Message string
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		if e.Field == "" {
			return fmt.Sprintf("panels[%d]: %s", e.Index, e.Message)
		}
		return fmt.Sprintf("panels[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

// Error lists every violation, one per line.
func (e ValidationErrors) Error() string {
	lines := make([]string, len(e))
	for i, err := range e {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

type Result struct {
	OK     bool
	Errors ValidationErrors
}

// Err returns the violations as an error, or nil when the input is valid.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	return r.Errors
}

type validator struct {
	errs ValidationErrors
}

func (v *validator) add(field string, index int, format string, args ...any) {
	v.errs = append(v.errs, ValidationError{
		Field:   field,
		Index:   index,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) missing(field string) {
	v.add(field, -1, "is required")
}

func (v *validator) panelMissing(index int, field string) {
	v.add(field, index, "is required")
}

func (v *validator) result() Result {
	return Result{OK: len(v.errs) == 0, Errors: v.errs}
}

// Validate checks typed options. It never stops at the first violation.
func Validate(opts Options) Result {
	var v validator

	if opts.Container == "" {
		v.missing(FieldContainer)
	}
	if opts.Panels == nil {
		v.missing(FieldPanels)
	}
	for i, p := range opts.Panels {
		if p.Title == "" {
			v.panelMissing(i, FieldTitle)
		}
		if p.Content == "" {
			v.panelMissing(i, FieldContent)
		}
	}
	if _, err := content.ParseFormat(string(opts.Format)); err != nil {
		v.add(FieldFormat, -1, "%v", err)
	}

	return v.result()
}

// ValidateDocument checks an untyped options document, as decoded from
// YAML or JSON, including the shape of each value.
func ValidateDocument(doc map[string]any) Result {
	var v validator

	switch c := doc[FieldContainer].(type) {
	case nil:
		v.missing(FieldContainer)
	case string:
		if c == "" {
			v.missing(FieldContainer)
		}
	default:
		v.add(FieldContainer, -1, "must be a string (got %s)", kindOf(c))
	}

	for _, key := range []string{FieldMainTitle, "main_title"} {
		if t, ok := doc[key]; ok && t != nil {
			if _, isString := t.(string); !isString {
				v.add(key, -1, "must be a string (got %s)", kindOf(t))
			}
		}
	}

	switch panels := doc[FieldPanels].(type) {
	case nil:
		v.missing(FieldPanels)
	case []any:
		for i, raw := range panels {
			validatePanelDocument(&v, i, raw)
		}
	default:
		v.add(FieldPanels, -1, "must be a sequence (got %s)", kindOf(panels))
	}

	if f, ok := doc[FieldFormat]; ok && f != nil {
		name, isString := f.(string)
		if !isString {
			v.add(FieldFormat, -1, "must be a string (got %s)", kindOf(f))
		} else if _, err := content.ParseFormat(name); err != nil {
			v.add(FieldFormat, -1, "%v", err)
		}
	}

	return v.result()
}

func validatePanelDocument(v *validator, index int, raw any) {
	panel, ok := raw.(map[string]any)
	if !ok {
		v.add("", index, "must be a mapping (got %s)", kindOf(raw))
		return
	}

	for _, field := range []string{FieldTitle, FieldContent} {
		switch val := panel[field].(type) {
		case nil:
			v.panelMissing(index, field)
		case string:
			if val == "" {
				v.panelMissing(index, field)
			}
		default:
			v.add(field, index, "must be a string (got %s)", kindOf(val))
		}
	}

	for _, field := range []string{FieldSubtitle, "description"} {
		if val, ok := panel[field]; ok && val != nil {
			if _, isString := val.(string); !isString {
				v.add(field, index, "must be a string (got %s)", kindOf(val))
			}
		}
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
