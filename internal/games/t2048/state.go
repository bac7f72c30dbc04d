package t2048

import (
	"encoding/json"
	"fmt"
)

// GameState is an immutable snapshot of a game: the board and the score.
// The JSON shape {"board": [[...]], "score": n} is what storage persists.
type GameState struct {
	Board Board `json:"board"`
	Score int   `json:"score"`
}

// Clone returns a deep copy.
func (s GameState) Clone() GameState {
	return GameState{Board: s.Board.Clone(), Score: s.Score}
}

// Equal reports whether two states have identical boards and scores.
func (s GameState) Equal(other GameState) bool {
	return s.Score == other.Score && s.Board.Equal(other.Board)
}

// Validate checks the board shape and score.
func (s GameState) Validate() error {
	if _, err := FromRows(s.Board); err != nil {
		return err
	}
	if s.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidBoard, s.Score)
	}
	return nil
}

// MarshalState encodes a state as JSON.
func MarshalState(s GameState) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalState decodes and validates a JSON state.
func UnmarshalState(data []byte) (GameState, error) {
	var s GameState
	if err := json.Unmarshal(data, &s); err != nil {
		return GameState{}, fmt.Errorf("t2048: cannot decode state: %w", err)
	}
	if err := s.Validate(); err != nil {
		return GameState{}, err
	}
	return s, nil
}
