package t2048

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Outcome is the result of a move attempt.
type Outcome int

const (
	Moved      Outcome = iota // Board changed, a tile was spawned
	NotMovable                // Direction does not change the board
	GameOver                  // No direction changes the board
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case NotMovable:
		return "not_movable"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MoveResult describes what ApplyMove did.
type MoveResult struct {
	Outcome Outcome
	State   GameState // Current state after the attempt
	Gained  int       // Score gained by merges
	Spawned *Tile     // Nil if nothing was spawned
	Over    bool      // No direction is movable from the resulting state
}

// Machine is the game state machine: it validates and applies moves, keeps
// undo history, and notifies an observer whenever the current state changes.
// A Machine is not safe for concurrent use.
type Machine struct {
	settings config.GameSettings
	spawner  *Spawner
	history  []GameState
	onChange func(GameState)
}

// NewMachine creates a machine and starts a fresh game.
func NewMachine(settings config.GameSettings, src Source) (*Machine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		settings: settings,
		spawner:  NewSpawner(src, settings.FourTilePercent),
	}
	if _, err := m.fresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// OnChange registers fn to be called with every new current state.
// Passing nil removes the observer.
func (m *Machine) OnChange(fn func(GameState)) {
	m.onChange = fn
}

// Current returns a copy of the current state.
func (m *Machine) Current() GameState {
	return m.history[len(m.history)-1].Clone()
}

// Depth returns the number of states in history (at least 1).
func (m *Machine) Depth() int {
	return len(m.history)
}

// History returns a copy of all states, oldest first.
func (m *Machine) History() []GameState {
	out := make([]GameState, len(m.history))
	for i, s := range m.history {
		out[i] = s.Clone()
	}
	return out
}

// Settings returns the settings in effect.
func (m *Machine) Settings() config.GameSettings {
	return m.settings
}

// IsGameOver reports whether the current board has no legal move.
func (m *Machine) IsGameOver() bool {
	return IsGameOver(m.current().Board)
}

// ApplyMove attempts a move in direction d.
// NotMovable and GameOver are reported through the result, not as errors;
// the only error is an invalid direction.
func (m *Machine) ApplyMove(d Direction) (MoveResult, error) {
	if !d.Valid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}

	cur := m.current()
	if !CanMove(d, cur.Board) {
		outcome := NotMovable
		if IsGameOver(cur.Board) {
			outcome = GameOver
		}
		return MoveResult{
			Outcome: outcome,
			State:   cur.Clone(),
			Over:    outcome == GameOver,
		}, nil
	}

	board, gained := MoveBoard(d, cur.Board)
	result := MoveResult{Outcome: Moved, Gained: gained}

	tile, err := m.spawner.Spawn(board)
	switch {
	case err == nil:
		result.Spawned = &tile
	case errors.Is(err, ErrNoEmptyCells):
		// A legal move always frees a cell, but a full board is still a no-op.
	default:
		return MoveResult{}, err
	}

	next := GameState{Board: board, Score: cur.Score + gained}
	m.push(next)

	result.State = next.Clone()
	result.Over = IsGameOver(board)
	return result, nil
}

// Undo reverts the last move. Returns false if only the initial state remains.
func (m *Machine) Undo() bool {
	if len(m.history) <= 1 {
		return false
	}
	m.history = m.history[:len(m.history)-1]
	m.notify()
	return true
}

// Reset clears history and starts a fresh game: an empty board with one tile.
// On error the current game is kept.
func (m *Machine) Reset() (GameState, error) {
	st, err := m.fresh()
	if err != nil {
		return GameState{}, err
	}
	return st.Clone(), nil
}

// ResetWith clears history and makes seed the current state, exactly as
// given. No tile is spawned.
func (m *Machine) ResetWith(seed GameState) error {
	if err := seed.Validate(); err != nil {
		return err
	}
	m.history = nil
	m.push(seed.Clone())
	return nil
}

// ApplySettings switches to new settings. A different board size starts a
// fresh game at that size; a probability change only affects future spawns.
// Returns true if the game was reset.
func (m *Machine) ApplySettings(s config.GameSettings) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	m.settings = s
	m.spawner.SetFourPercent(s.FourTilePercent)

	if s.BoardSize == m.current().Board.Size() {
		return false, nil
	}
	if _, err := m.fresh(); err != nil {
		return false, err
	}
	return true, nil
}

func (m *Machine) current() GameState {
	return m.history[len(m.history)-1]
}

func (m *Machine) fresh() (GameState, error) {
	board, err := NewEmpty(m.settings.BoardSize)
	if err != nil {
		return GameState{}, err
	}
	if _, err := m.spawner.Spawn(board); err != nil {
		return GameState{}, err
	}

	st := GameState{Board: board, Score: 0}
	m.history = nil
	m.push(st)
	return st, nil
}

func (m *Machine) push(s GameState) {
	m.history = append(m.history, s)
	m.notify()
}

func (m *Machine) notify() {
	if m.onChange != nil {
		m.onChange(m.Current())
	}
}
