package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestSwipeDirection(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           core.Action
		ok             bool
	}{
		{"right", 10, 5, 20, 5, core.ActionRight, true},
		{"left", 20, 5, 10, 6, core.ActionLeft, true},
		{"down", 10, 5, 11, 9, core.ActionDown, true},
		{"up", 10, 9, 10, 5, core.ActionUp, true},
		// Two rows count as four columns.
		{"vertical wins after aspect correction", 10, 5, 13, 7, core.ActionDown, true},
		{"tie is horizontal", 10, 5, 14, 7, core.ActionRight, true},
		{"too short", 10, 5, 12, 5, core.ActionNone, false},
		{"no movement", 10, 5, 10, 5, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SwipeDirection(tt.x0, tt.y0, tt.x1, tt.y1, DefaultMinSwipe)
			if got != tt.want || ok != tt.ok {
				t.Errorf("SwipeDirection() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestGestureTracker(t *testing.T) {
	g := NewGestureTracker()

	if _, ok := g.Handle(mouse(5, 5, tea.MouseActionPress, tea.MouseButtonLeft)); ok {
		t.Fatal("press should not report a swipe")
	}
	if _, ok := g.Handle(mouse(8, 5, tea.MouseActionMotion, tea.MouseButtonLeft)); ok {
		t.Fatal("motion should not report a swipe")
	}
	action, ok := g.Handle(mouse(5, 1, tea.MouseActionRelease, tea.MouseButtonNone))
	if !ok || action != core.ActionUp {
		t.Errorf("release = (%v, %v), want (Up, true)", action, ok)
	}

	// A release without a press is ignored.
	if _, ok := g.Handle(mouse(30, 1, tea.MouseActionRelease, tea.MouseButtonNone)); ok {
		t.Error("release without press should be ignored")
	}

	// Other buttons do not start a drag.
	g.Handle(mouse(0, 0, tea.MouseActionPress, tea.MouseButtonRight))
	if _, ok := g.Handle(mouse(30, 0, tea.MouseActionRelease, tea.MouseButtonNone)); ok {
		t.Error("right button drag should be ignored")
	}
}
