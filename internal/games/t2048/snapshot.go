package t2048

import "github.com/vovakirdan/tui-2048/internal/config"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	ID           string
	Settings     config.GameSettings
	Score        int
	Best         int
	Board        Board
	MaxTile      int
	HistoryDepth int
	LastOutcome  Outcome
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.Current()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.machine != nil && g.machine.IsGameOver():
		state = StateGameOver
	}

	depth := 0
	if g.machine != nil {
		depth = g.machine.Depth()
	}

	return Snapshot{
		Tick:         g.tick,
		ID:           g.id,
		Settings:     g.Settings(),
		Score:        st.Score,
		Best:         g.Best(),
		Board:        st.Board,
		MaxTile:      st.Board.MaxTile(),
		HistoryDepth: depth,
		LastOutcome:  g.lastOutcome,
		State:        state,
	}
}
