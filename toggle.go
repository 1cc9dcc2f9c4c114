package accordion

import (
	"fmt"
	"strconv"
	"time"

	"github.com/3-lines-studio/accordion/internal/core"
	"github.com/3-lines-studio/accordion/internal/dom"
)

// Snapshot is a consistent view of the whole accordion.
type Snapshot struct {
	Open       int
	Panels     []PanelView
	Transition time.Duration
}

// PanelView is the presentation of one panel at a point in time.
type PanelView struct {
	Index  int
	State  PanelState
	Class  string
	Height string
}

// Toggle flips the panel at index, closing any other open panel first.
func (a *Accordion) Toggle(index int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index >= len(a.panels) {
		return fmt.Errorf("%w: %d (have %d)", ErrNoSuchPanel, index, len(a.panels))
	}
	a.toggleLocked(a.panels[index])
	return nil
}

// Click dispatches a click on target the way a delegated listener on the
// host would: only targets inside the header toggle of one of this
// accordion's panels do anything. Elements in panel content that happen to
// carry the toggle class are ignored. It reports whether a panel was
// toggled.
func (a *Accordion) Click(target *dom.Node) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if target == nil || !dom.Contains(a.host, target) {
		return false
	}
	node := dom.Closest(target, a.host, func(n *dom.Node) bool {
		return dom.HasClass(n, core.ClassPanel)
	})
	p := a.panelFor(node)
	if p == nil || p.toggle == nil || !dom.Contains(p.toggle, target) {
		return false
	}
	a.toggleLocked(p)
	return true
}

// OpenIndex returns the recorded open panel, or -1.
func (a *Accordion) OpenIndex() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return -1
	}
	return a.current.index
}

// IsOpen reports the state the panel's markup shows.
func (a *Accordion) IsOpen(index int) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if index < 0 || index >= len(a.panels) {
		return false
	}
	return core.StateOf(a.panels[index].node) == core.StateOpen
}

// ToggleSnapshot toggles the panel at index and returns the resulting
// state, taken before any other caller can click.
func (a *Accordion) ToggleSnapshot(index int) (Snapshot, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index < 0 || index >= len(a.panels) {
		return Snapshot{}, fmt.Errorf("%w: %d (have %d)", ErrNoSuchPanel, index, len(a.panels))
	}
	a.toggleLocked(a.panels[index])
	return a.snapshotLocked(), nil
}

func (a *Accordion) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

func (a *Accordion) snapshotLocked() Snapshot {
	open := -1
	if a.current != nil {
		open = a.current.index
	}
	return Snapshot{
		Open:       open,
		Panels:     a.panelsLocked(),
		Transition: a.transition,
	}
}

func (a *Accordion) Panels() []PanelView {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.panelsLocked()
}

func (a *Accordion) panelsLocked() []PanelView {
	views := make([]PanelView, len(a.panels))
	for i, p := range a.panels {
		class, _ := dom.GetAttr(p.node, "class")
		height, _ := dom.Style(p.content, "height")
		views[i] = PanelView{
			Index:  p.index,
			State:  core.StateOf(p.node),
			Class:  class,
			Height: height,
		}
	}
	return views
}

func (a *Accordion) panelFor(node *dom.Node) *panel {
	if node == nil {
		return nil
	}
	raw, ok := dom.GetAttr(node, core.AttrIndex)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 || i >= len(a.panels) || a.panels[i].node != node {
		return nil
	}
	return a.panels[i]
}

func (a *Accordion) toggleLocked(p *panel) {
	if core.StateOf(p.node) == core.StateOpen {
		a.closeLocked(p)
		return
	}
	a.openLocked(p)
}

func (a *Accordion) openLocked(p *panel) {
	if a.current != nil {
		a.closeLocked(a.current)
	}

	dom.ReplaceClass(p.node, core.ClassClosed, core.ClassOpen)
	height := a.measurer.Measure(p.content)
	dom.SetStyle(p.content, "height", strconv.Itoa(height)+"px")
	a.current = p

	if a.transition > 0 && !a.stopped {
		dom.AddClass(p.node, core.ClassTransitioning)
		p.gen++
		gen := p.gen
		p.cleanup.Stop()
		p.cleanup = a.clock.AfterFunc(a.transition, func() {
			a.finishTransition(p, gen)
		})
	}

	a.logger.Debug("panel transition",
		"panel", p.index,
		"transition", core.TransitionName(core.StateClosed, core.StateOpen),
		"height", height,
	)
}

func (a *Accordion) closeLocked(p *panel) {
	if a.current != p {
		recorded := "none"
		if a.current != nil {
			recorded = strconv.Itoa(a.current.index)
		}
		panic(fmt.Sprintf("accordion: close requested for panel %d but recorded open panel is %s", p.index, recorded))
	}

	dom.ReplaceClass(p.node, core.ClassOpen, core.ClassClosed)
	dom.RemoveClass(p.node, core.ClassTransitioning)
	dom.RemoveStyle(p.content, "height")
	p.cleanup.Stop()
	p.cleanup = nil
	p.gen++
	a.current = nil

	a.logger.Debug("panel transition",
		"panel", p.index,
		"transition", core.TransitionName(core.StateOpen, core.StateClosed),
	)
}

func (a *Accordion) finishTransition(p *panel, gen int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped || p.gen != gen {
		return
	}
	dom.RemoveClass(p.node, core.ClassTransitioning)
	p.cleanup = nil
}
