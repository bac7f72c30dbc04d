package t2048

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func TestReplay(t *testing.T) {
	settings := config.GameSettings{BoardSize: 2, FourTilePercent: 25}

	// The source always picks the first empty cell and rolls a 2.
	m, err := Replay(settings, &fakeSource{}, []string{"left", "right", "LEFT"})
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	want := []GameState{
		{Board: Board{{2, 0}, {0, 0}}, Score: 0},
		{Board: Board{{2, 2}, {0, 0}}, Score: 0},
		{Board: Board{{4, 2}, {0, 0}}, Score: 4},
	}
	hist := m.History()
	if len(hist) != len(want) {
		t.Fatalf("history length = %d, want %d (the blocked left is skipped)", len(hist), len(want))
	}
	for i := range want {
		if !hist[i].Equal(want[i]) {
			t.Errorf("history[%d] = %v, want %v", i, hist[i], want[i])
		}
	}
}

func TestReplayErrors(t *testing.T) {
	tests := []struct {
		name     string
		settings config.GameSettings
		moves    []string
		want     error
	}{
		{"unknown move", config.DefaultGameSettings(), []string{"up", "sideways"}, ErrInvalidDirection},
		{"invalid settings", config.GameSettings{BoardSize: 1}, []string{"up"}, config.ErrInvalidBoardSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Replay(tt.settings, &fakeSource{}, tt.moves); !errors.Is(err, tt.want) {
				t.Errorf("Replay() error = %v, want %v", err, tt.want)
			}
		})
	}
}
