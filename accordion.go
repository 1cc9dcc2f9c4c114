// Package accordion renders a list of collapsible panels into a host
// element and runs the single-open toggle behaviour on top of it.
//
// The host lives in a dom.Document. Rendering happens once, in New; after
// that every click mutates class lists and inline heights in place.
package accordion

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/3-lines-studio/accordion/internal/clock"
	"github.com/3-lines-studio/accordion/internal/config"
	"github.com/3-lines-studio/accordion/internal/content"
	"github.com/3-lines-studio/accordion/internal/core"
	"github.com/3-lines-studio/accordion/internal/dom"
	"github.com/3-lines-studio/accordion/internal/measure"
)

type Options = core.Options

type Panel = core.Panel

type ValidationError = core.ValidationError

type ValidationErrors = core.ValidationErrors

type Format = content.Format

type PanelState = core.PanelState

const (
	StateClosed = core.StateClosed
	StateOpen   = core.StateOpen
)

const (
	FormatHTML      = content.FormatHTML
	FormatSanitized = content.FormatSanitized
	FormatMarkdown  = content.FormatMarkdown
)

const DefaultTransition = 300 * time.Millisecond

var ErrNoSuchPanel = errors.New("no such panel")

// OptionsError is returned when construction input is invalid. Nothing is
// rendered in that case.
type OptionsError struct {
	Errors ValidationErrors
}

func (e *OptionsError) Error() string {
	return "invalid options:\n" + e.Errors.Error()
}

func (e *OptionsError) Unwrap() error {
	return e.Errors
}

type Accordion struct {
	mu sync.Mutex

	container string
	host      *dom.Node
	panels    []*panel
	current   *panel

	measurer   measure.Measurer
	clock      clock.Clock
	transition time.Duration
	logger     *slog.Logger
	stopped    bool
}

type panel struct {
	index   int
	node    *dom.Node
	toggle  *dom.Node
	content *dom.Node

	cleanup *clock.Timer
	gen     int
}

// New validates opts, renders the panels into the element of doc whose id
// is opts.Container and returns the live widget.
func New(doc *dom.Document, opts Options, options ...Option) (*Accordion, error) {
	if result := core.Validate(opts); !result.OK {
		return nil, &OptionsError{Errors: result.Errors}
	}

	var host *dom.Node
	if doc != nil {
		host = doc.GetElementByID(opts.Container)
	}
	if host == nil {
		return nil, &OptionsError{Errors: ValidationErrors{{
			Field:   core.FieldContainer,
			Index:   -1,
			Message: fmt.Sprintf("no element with id %q", opts.Container),
		}}}
	}

	nodes, err := core.RenderAccordion(opts)
	if err != nil {
		return nil, fmt.Errorf("render accordion: %w", err)
	}

	s := defaultSettings()
	for _, opt := range options {
		opt(&s)
	}

	a := &Accordion{
		container:  opts.Container,
		host:       host,
		measurer:   s.measurer,
		clock:      s.clock,
		transition: s.transition,
		logger:     s.logger,
	}

	dom.AddClass(host, core.ClassAccordion)
	dom.ReplaceChildren(host, nodes...)

	for _, n := range nodes {
		if !dom.HasClass(n, core.ClassPanel) {
			continue
		}
		a.panels = append(a.panels, &panel{
			index:   len(a.panels),
			node:    n,
			toggle:  dom.FindByClass(dom.FindByClass(n, core.ClassHeader), core.ClassToggle),
			content: dom.FindByClass(n, core.ClassContent),
		})
	}

	a.logger.Debug("accordion rendered", "container", opts.Container, "panels", len(a.panels), "format", string(opts.Format))
	return a, nil
}

// MustNew is New for options known to be valid. It panics otherwise.
func MustNew(doc *dom.Document, opts Options, options ...Option) *Accordion {
	a, err := New(doc, opts, options...)
	if err != nil {
		panic(fmt.Sprintf("accordion: %v", err))
	}
	return a
}

// NewFromConfig decodes a YAML or JSON options document and constructs
// the accordion from it.
func NewFromConfig(doc *dom.Document, data []byte, options ...Option) (*Accordion, error) {
	opts, err := config.Decode(data)
	if err != nil {
		var errs ValidationErrors
		if errors.As(err, &errs) {
			return nil, &OptionsError{Errors: errs}
		}
		return nil, err
	}
	return New(doc, opts, options...)
}

func (a *Accordion) Container() string {
	return a.container
}

// Host returns the element the accordion rendered into. Reading it while
// other goroutines click is not safe; use HTML or Panels instead.
func (a *Accordion) Host() *dom.Node {
	return a.host
}

func (a *Accordion) Len() int {
	return len(a.panels)
}

func (a *Accordion) TransitionDuration() time.Duration {
	return a.transition
}

// HTML serialises the current contents of the host element.
func (a *Accordion) HTML() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return dom.InnerHTML(a.host)
}

// OuterHTML serialises the host element itself.
func (a *Accordion) OuterHTML() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return dom.OuterHTML(a.host)
}

// Stop cancels pending transition cleanups. Clicks still work afterwards
// but no marker is scheduled for removal.
func (a *Accordion) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopped = true
	for _, p := range a.panels {
		p.cleanup.Stop()
		p.cleanup = nil
	}
}
