package core

import "github.com/3-lines-studio/accordion/internal/dom"

type PanelState int

const (
	StateClosed PanelState = iota
	StateOpen
)

func (s PanelState) String() string {
	if s == StateOpen {
		return ClassOpen
	}
	return ClassClosed
}

// StateOf reads the state a rendered panel reports through its classes.
func StateOf(panel *dom.Node) PanelState {
	if dom.HasClass(panel, ClassOpen) {
		return StateOpen
	}
	return StateClosed
}

// TransitionName names the move from one state to the other for logs.
func TransitionName(from, to PanelState) string {
	switch {
	case from == StateClosed && to == StateOpen:
		return "expand"
	case from == StateOpen && to == StateClosed:
		return "collapse"
	default:
		return "noop"
	}
}
