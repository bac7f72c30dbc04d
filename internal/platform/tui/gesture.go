package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide, so vertical
// drag distance is scaled before the axes are compared.
const cellAspect = 2

// DefaultMinSwipe is the shortest drag, in column-equivalents, that counts
// as a swipe.
const DefaultMinSwipe = 3

// SwipeDirection turns a drag from (x0, y0) to (x1, y1) into a move action.
// The axis with the larger (aspect-corrected) distance wins; ties count as
// horizontal. Drags shorter than minDist on both axes are ignored.
func SwipeDirection(x0, y0, x1, y1, minDist int) (core.Action, bool) {
	dx := x1 - x0
	dy := (y1 - y0) * cellAspect

	if core.Abs(dx) < minDist && core.Abs(dy) < minDist {
		return core.ActionNone, false
	}

	if core.Abs(dx) >= core.Abs(dy) {
		if dx > 0 {
			return core.ActionRight, true
		}
		return core.ActionLeft, true
	}
	if dy > 0 {
		return core.ActionDown, true
	}
	return core.ActionUp, true
}

// GestureTracker follows mouse press/release pairs and reports swipes.
type GestureTracker struct {
	MinDist int

	pressed bool
	startX  int
	startY  int
}

// NewGestureTracker creates a tracker with the default swipe distance.
func NewGestureTracker() *GestureTracker {
	return &GestureTracker{MinDist: DefaultMinSwipe}
}

// Handle consumes a mouse message. On release of the left button after a
// long enough drag it returns the swipe action.
func (g *GestureTracker) Handle(msg tea.MouseMsg) (core.Action, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.ActionNone, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		g.pressed = true
		g.startX, g.startY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !g.pressed {
			return core.ActionNone, false
		}
		g.pressed = false
		return SwipeDirection(g.startX, g.startY, msg.X, msg.Y, g.MinDist)
	}
	return core.ActionNone, false
}
