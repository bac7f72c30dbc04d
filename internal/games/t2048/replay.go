package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Replay starts a fresh game and applies the named moves in order.
// Moves that change nothing are skipped, so the machine's history holds the
// opening state plus one state per move that took effect.
func Replay(settings config.GameSettings, src Source, moves []string) (*Machine, error) {
	dirs := make([]Direction, 0, len(moves))
	for i, name := range moves {
		d, err := ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		dirs = append(dirs, d)
	}

	m, err := NewMachine(settings, src)
	if err != nil {
		return nil, err
	}
	for _, d := range dirs {
		if _, err := m.ApplyMove(d); err != nil {
			return nil, err
		}
	}
	return m, nil
}
