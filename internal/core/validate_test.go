package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationErrorFormat(t *testing.T) {
	tests := []struct {
		err  ValidationError
		want string
	}{
		{ValidationError{Field: "container", Index: -1, Message: "is required"}, "container: is required"},
		{ValidationError{Field: "title", Index: 2, Message: "is required"}, "panels[2].title: is required"},
		{ValidationError{Index: 0, Message: "must be a mapping (got string)"}, "panels[0]: must be a mapping (got string)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestValidationErrorsOnePerLine(t *testing.T) {
	errs := ValidationErrors{
		{Field: FieldContainer, Index: -1, Message: "is required"},
		{Field: FieldPanels, Index: -1, Message: "is required"},
	}
	want := "container: is required\npanels: is required"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}

func TestValidateReportsAllMissingFields(t *testing.T) {
	result := Validate(Options{})

	if result.OK {
		t.Fatal("expected validation to fail")
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if result.Errors[0].Field != FieldContainer || result.Errors[1].Field != FieldPanels {
		t.Errorf("unexpected fields: %v", result.Errors)
	}
}

func TestValidatePanelIndex(t *testing.T) {
	result := Validate(Options{
		Container: "host",
		Panels: []Panel{
			{Title: "A", Content: "<p>a</p>"},
			{Content: "<p>b</p>"},
			{Title: "C"},
		},
	})

	if result.OK {
		t.Fatal("expected validation to fail")
	}
	msg := result.Errors.Error()
	for _, want := range []string{"panels[1].title: is required", "panels[2].content: is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
	if strings.Contains(msg, "panels[0]") {
		t.Errorf("valid panel reported: %q", msg)
	}
}

func TestValidateAcceptsEmptyPanels(t *testing.T) {
	result := Validate(Options{Container: "host", Panels: []Panel{}})
	if !result.OK {
		t.Errorf("expected ok, got %v", result.Errors)
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, want nil", result.Err())
	}
}

func TestValidateUnknownFormat(t *testing.T) {
	result := Validate(Options{Container: "host", Panels: []Panel{}, Format: "rst"})
	if result.OK || len(result.Errors) != 1 || result.Errors[0].Field != FieldFormat {
		t.Errorf("expected a single format error, got %v", result.Errors)
	}
}

func TestResultErrUnwrapsToValidationErrors(t *testing.T) {
	err := Validate(Options{}).Err()
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d", len(errs))
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want []string
	}{
		{
			name: "empty document reports both required fields",
			doc:  map[string]any{},
			want: []string{"container: is required", "panels: is required"},
		},
		{
			name: "nil document",
			doc:  nil,
			want: []string{"container: is required", "panels: is required"},
		},
		{
			name: "panels not a sequence",
			doc:  map[string]any{"container": "host", "panels": "not-an-array"},
			want: []string{"panels: must be a sequence (got string)"},
		},
		{
			name: "container wrong type",
			doc:  map[string]any{"container": uint64(3), "panels": []any{}},
			want: []string{"container: must be a string (got number)"},
		},
		{
			name: "panel entries",
			doc: map[string]any{
				"container": "host",
				"panels": []any{
					map[string]any{"title": "A", "content": "<p>a</p>"},
					"oops",
					map[string]any{"title": "", "content": true, "subtitle": []any{}},
				},
			},
			want: []string{
				"panels[1]: must be a mapping (got string)",
				"panels[2].title: is required",
				"panels[2].content: must be a string (got boolean)",
				"panels[2].subtitle: must be a string (got sequence)",
			},
		},
		{
			name: "format and main title",
			doc: map[string]any{
				"container": "host",
				"panels":    []any{},
				"mainTitle": 1.5,
				"format":    "rst",
			},
			want: []string{
				"mainTitle: must be a string (got number)",
				`format: unknown content format "rst"`,
			},
		},
		{
			name: "valid",
			doc: map[string]any{
				"container": "host",
				"mainTitle": "FAQ",
				"format":    "markdown",
				"panels":    []any{map[string]any{"title": "A", "description": "d", "content": "x"}},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateDocument(tt.doc)
			if len(tt.want) == 0 {
				if !result.OK {
					t.Fatalf("expected ok, got %v", result.Errors)
				}
				return
			}
			if result.OK {
				t.Fatal("expected validation to fail")
			}
			if len(result.Errors) != len(tt.want) {
				t.Fatalf("expected %d errors, got %d: %v", len(tt.want), len(result.Errors), result.Errors)
			}
			for i, want := range tt.want {
				if got := result.Errors[i].Error(); got != want {
					t.Errorf("error %d = %q, want %q", i, got, want)
				}
			}
		})
	}
}
