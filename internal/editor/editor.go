// Package editor builds custom starting boards that can be played with
// Machine.ResetWith.
package editor

import (
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// MaxValue is the largest tile the editor produces. Incrementing it wraps to empty.
const MaxValue = 1 << 20

// Editor holds an editable board. The score of an edited state is always 0.
type Editor struct {
	board t2048.Board
}

// New creates an editor with an empty size×size board.
func New(size int) (*Editor, error) {
	b, err := t2048.NewEmpty(size)
	if err != nil {
		return nil, err
	}
	return &Editor{board: b}, nil
}

// Size returns the board dimension.
func (e *Editor) Size() int {
	return e.board.Size()
}

// Value returns the tile at (x, y), or 0 outside the board.
func (e *Editor) Value(x, y int) int {
	if !e.inBounds(x, y) {
		return 0
	}
	return e.board[y][x]
}

// Increment steps the tile at (x, y): empty becomes 2, anything else doubles.
// Out-of-range coordinates are ignored.
func (e *Editor) Increment(x, y int) {
	if !e.inBounds(x, y) {
		return
	}
	v := e.board[y][x]
	switch {
	case v == 0:
		v = 2
	case v < 0, v >= MaxValue:
		v = 0
	default:
		v *= 2
	}
	e.board[y][x] = v
}

// Clear empties the tile at (x, y). Out-of-range coordinates are ignored.
func (e *Editor) Clear(x, y int) {
	if !e.inBounds(x, y) {
		return
	}
	e.board[y][x] = 0
}

// Reset empties the whole board.
func (e *Editor) Reset() {
	for y := range e.board {
		clear(e.board[y])
	}
}

// Resize replaces the board with an empty one of a new size.
func (e *Editor) Resize(size int) error {
	b, err := t2048.NewEmpty(size)
	if err != nil {
		return err
	}
	e.board = b
	return nil
}

// State returns the edited board as a game state with score 0.
func (e *Editor) State() t2048.GameState {
	return t2048.GameState{Board: e.board.Clone(), Score: 0}
}

func (e *Editor) inBounds(x, y int) bool {
	n := e.board.Size()
	return x >= 0 && x < n && y >= 0 && y < n
}
