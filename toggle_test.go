package accordion

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/3-lines-studio/accordion/internal/core"
	"github.com/3-lines-studio/accordion/internal/dom"
	"github.com/3-lines-studio/accordion/internal/measure"
)

func openCount(a *Accordion) int {
	n := 0
	for i := range a.Len() {
		if a.IsOpen(i) {
			n++
		}
	}
	return n
}

func contentHeight(t *testing.T, a *Accordion, index int) (string, bool) {
	t.Helper()
	panels := dom.FindAllByClass(a.Host(), core.ClassPanel)
	return dom.Style(dom.FindByClass(panels[index], core.ClassContent), "height")
}

func TestToggleOpensPanel(t *testing.T) {
	a, _ := newTestAccordion(t, twoPanels())

	if err := a.Toggle(0); err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}

	if !a.IsOpen(0) {
		t.Error("Expected panel 0 to be open")
	}
	if a.OpenIndex() != 0 {
		t.Errorf("Expected open index 0, got %d", a.OpenIndex())
	}
	if h, ok := contentHeight(t, a, 0); !ok || h != "120px" {
		t.Errorf("Expected explicit height 120px, got %q (%v)", h, ok)
	}

	view := a.Panels()[0]
	if view.State != StateOpen || !strings.Contains(view.Class, "open") || view.Height != "120px" {
		t.Errorf("Unexpected panel view %+v", view)
	}
}

func TestOpeningAnotherPanelClosesTheFirst(t *testing.T) {
	var openWhileMeasuring []int
	probe := measure.Func(func(region *dom.Node) int {
		self := region.Parent
		for i, p := range dom.FindAllByClass(self.Parent, core.ClassPanel) {
			if p != self && dom.HasClass(p, core.ClassOpen) {
				openWhileMeasuring = append(openWhileMeasuring, i)
			}
		}
		return 80
	})
	a, _ := newTestAccordion(t, twoPanels(), WithMeasurer(probe))

	if err := a.Toggle(0); err != nil {
		t.Fatalf("Toggle(0) failed: %v", err)
	}
	if err := a.Toggle(1); err != nil {
		t.Fatalf("Toggle(1) failed: %v", err)
	}

	if len(openWhileMeasuring) != 0 {
		t.Errorf("Panels %v were still open while another expanded", openWhileMeasuring)
	}
	if a.IsOpen(0) {
		t.Error("Expected panel 0 to be closed")
	}
	if !a.IsOpen(1) {
		t.Error("Expected panel 1 to be open")
	}
	if a.OpenIndex() != 1 {
		t.Errorf("Expected open index 1, got %d", a.OpenIndex())
	}
	if _, ok := contentHeight(t, a, 0); ok {
		t.Error("Expected panel 0 height to be cleared")
	}
	if h, _ := contentHeight(t, a, 1); h != "80px" {
		t.Errorf("Expected panel 1 height 80px, got %q", h)
	}
	if openCount(a) != 1 {
		t.Errorf("Expected exactly one open panel, got %d", openCount(a))
	}
}

func TestClickingOpenPanelClosesIt(t *testing.T) {
	a, _ := newTestAccordion(t, twoPanels())

	_ = a.Toggle(1)
	if err := a.Toggle(1); err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}

	if a.IsOpen(1) {
		t.Error("Expected panel 1 to be closed")
	}
	if a.OpenIndex() != -1 {
		t.Errorf("Expected no recorded open panel, got %d", a.OpenIndex())
	}
}

func TestToggleRoundTripRestoresMarkup(t *testing.T) {
	a, fake := newTestAccordion(t, twoPanels())

	before, err := a.HTML()
	if err != nil {
		t.Fatalf("HTML() failed: %v", err)
	}

	_ = a.Toggle(0)
	mid, _ := a.HTML()
	if mid == before {
		t.Fatal("Expected markup to change while open")
	}
	_ = a.Toggle(0)

	after, _ := a.HTML()
	if after != before {
		t.Errorf("Round trip changed markup:\nbefore %s\nafter  %s", before, after)
	}

	fake.Advance(time.Second)
	after, _ = a.HTML()
	if after != before {
		t.Errorf("Late cleanup changed markup:\nbefore %s\nafter  %s", before, after)
	}
}

func TestTransitionMarkerCleared(t *testing.T) {
	a, fake := newTestAccordion(t, twoPanels(), WithTransition(300*time.Millisecond))
	panel := dom.FindAllByClass(a.Host(), core.ClassPanel)[0]

	_ = a.Toggle(0)
	if !dom.HasClass(panel, core.ClassTransitioning) {
		t.Fatal("Expected transitioning marker right after opening")
	}

	fake.Advance(299 * time.Millisecond)
	if !dom.HasClass(panel, core.ClassTransitioning) {
		t.Error("Marker removed before the transition finished")
	}

	fake.Advance(time.Millisecond)
	if dom.HasClass(panel, core.ClassTransitioning) {
		t.Error("Expected marker to be removed after the transition")
	}
	if !a.IsOpen(0) {
		t.Error("Cleanup must not change the open state")
	}
	if h, _ := contentHeight(t, a, 0); h != "120px" {
		t.Errorf("Cleanup must keep the explicit height, got %q", h)
	}
}

func TestReopenDuringTransitionKeepsNewMarker(t *testing.T) {
	a, fake := newTestAccordion(t, twoPanels(), WithTransition(300*time.Millisecond))
	panel := dom.FindAllByClass(a.Host(), core.ClassPanel)[0]

	_ = a.Toggle(0)
	fake.Advance(200 * time.Millisecond)
	_ = a.Toggle(0)
	_ = a.Toggle(0)

	fake.Advance(150 * time.Millisecond)
	if !dom.HasClass(panel, core.ClassTransitioning) {
		t.Error("Stale cleanup removed the marker of the second opening")
	}

	fake.Advance(150 * time.Millisecond)
	if dom.HasClass(panel, core.ClassTransitioning) {
		t.Error("Expected marker to be removed after the second transition")
	}
}

func TestStopCancelsCleanup(t *testing.T) {
	a, fake := newTestAccordion(t, twoPanels())
	_ = a.Toggle(0)
	a.Stop()

	if fake.Pending() != 0 {
		t.Errorf("Expected no pending timers after Stop, got %d", fake.Pending())
	}

	_ = a.Toggle(1)
	if fake.Pending() != 0 {
		t.Error("No cleanup should be scheduled after Stop")
	}
	if !a.IsOpen(1) {
		t.Error("Toggling must keep working after Stop")
	}
}

func TestToggleOutOfRange(t *testing.T) {
	a, _ := newTestAccordion(t, twoPanels())

	for _, i := range []int{-1, 2} {
		err := a.Toggle(i)
		if !errors.Is(err, ErrNoSuchPanel) {
			t.Errorf("Toggle(%d) = %v, want ErrNoSuchPanel", i, err)
		}
	}
	if a.IsOpen(5) {
		t.Error("IsOpen out of range should be false")
	}
}

func TestClickDelegation(t *testing.T) {
	a, _ := newTestAccordion(t, twoPanels())
	panels := dom.FindAllByClass(a.Host(), core.ClassPanel)

	toggle := dom.FindByClass(panels[1], core.ClassToggle)
	if !a.Click(toggle) {
		t.Fatal("Expected click on toggle to be handled")
	}
	if !a.IsOpen(1) {
		t.Error("Expected panel 1 to open on toggle click")
	}

	title := dom.FindByClass(panels[0], core.ClassTitle)
	if a.Click(title) {
		t.Error("Click on the title must not toggle")
	}
	if a.Click(dom.FindByClass(panels[0], core.ClassInner).FirstChild) {
		t.Error("Click inside content must not toggle")
	}
	if a.Click(dom.Element("div", dom.Attr("class", "toggle"))) {
		t.Error("Click outside the host must not toggle")
	}
	if a.Click(nil) {
		t.Error("Nil target must not toggle")
	}

	if !a.Click(toggle) {
		t.Fatal("Expected second click to be handled")
	}
	if a.OpenIndex() != -1 {
		t.Errorf("Expected panel 1 closed after second click, got open index %d", a.OpenIndex())
	}
}

func TestClickIgnoresToggleClassInContent(t *testing.T) {
	opts := Options{
		Container: "faq",
		Panels: []Panel{
			{Title: "Player", Content: `<button class="toggle">play</button>`},
		},
	}
	a, _ := newTestAccordion(t, opts)
	panel := dom.FindAllByClass(a.Host(), core.ClassPanel)[0]
	button := dom.FindByClass(dom.FindByClass(panel, core.ClassContent), core.ClassToggle)
	if button == nil || button.Data != "button" {
		t.Fatal("Expected the content button to be rendered")
	}

	if a.Click(button) {
		t.Error("Click on a content element with the toggle class must not toggle")
	}
	if a.Click(button.FirstChild) {
		t.Error("Click inside a content toggle must not toggle")
	}
	if a.IsOpen(0) {
		t.Error("Expected panel 0 to stay closed")
	}

	header := dom.FindByClass(panel, core.ClassHeader)
	if !a.Click(dom.FindByClass(header, core.ClassToggle)) {
		t.Fatal("Expected the header toggle to still work")
	}
	if !a.IsOpen(0) {
		t.Error("Expected panel 0 open")
	}
}

func TestToggleSnapshot(t *testing.T) {
	a, _ := newTestAccordion(t, twoPanels())

	snap, err := a.ToggleSnapshot(1)
	if err != nil {
		t.Fatalf("ToggleSnapshot() failed: %v", err)
	}
	if snap.Open != 1 || snap.Transition != DefaultTransition {
		t.Errorf("Unexpected snapshot %+v", snap)
	}
	if len(snap.Panels) != 2 || snap.Panels[1].State != StateOpen || snap.Panels[1].Height != "120px" {
		t.Errorf("Unexpected panels %+v", snap.Panels)
	}

	if _, err := a.ToggleSnapshot(2); !errors.Is(err, ErrNoSuchPanel) {
		t.Errorf("Expected ErrNoSuchPanel, got %v", err)
	}
	if got := a.Snapshot(); got.Open != 1 {
		t.Errorf("Expected failed toggle to leave panel 1 open, got %d", got.Open)
	}
}

func TestClickOnNestedToggleElement(t *testing.T) {
	opts := twoPanels()
	a, _ := newTestAccordion(t, opts)
	toggle := dom.FindByClass(dom.FindAllByClass(a.Host(), core.ClassPanel)[0], core.ClassToggle)
	icon := dom.Element("span")
	dom.Append(toggle, icon)

	if !a.Click(icon) {
		t.Fatal("Expected click on an element inside the toggle to be handled")
	}
	if !a.IsOpen(0) {
		t.Error("Expected panel 0 open")
	}
}

func TestCloseAssertionOnDesync(t *testing.T) {
	a, _ := newTestAccordion(t, twoPanels())
	panel := dom.FindAllByClass(a.Host(), core.ClassPanel)[0]
	dom.ReplaceClass(panel, core.ClassClosed, core.ClassOpen)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic when markup and bookkeeping disagree")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "close requested for panel 0") || !strings.Contains(msg, "none") {
			t.Errorf("Unexpected panic message %q", msg)
		}
	}()
	_ = a.Toggle(0)
}

func TestAtMostOneOpenUnderConcurrentClicks(t *testing.T) {
	opts := twoPanels()
	opts.Panels = append(opts.Panels, Panel{Title: "C", Content: "c"}, Panel{Title: "D", Content: "d"})
	a, _ := newTestAccordion(t, opts)

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				_ = a.Toggle((g + i) % a.Len())
			}
		}()
	}
	wg.Wait()

	open := 0
	for _, v := range a.Panels() {
		if v.State == StateOpen {
			open++
		}
	}
	if open > 1 {
		t.Errorf("Expected at most one open panel, got %d", open)
	}
	if (open == 1) != (a.OpenIndex() >= 0) {
		t.Errorf("Bookkeeping disagrees with markup: open=%d index=%d", open, a.OpenIndex())
	}
}
