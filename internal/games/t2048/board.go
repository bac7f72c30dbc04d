// Package t2048 implements the 2048 sliding-tile puzzle: a pure board engine
// (slide, merge, spawn, terminal detection), a state machine with undo history,
// and the platform game adapter that drives it.
package t2048

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSize  = errors.New("t2048: board size must be at least 2")
	ErrInvalidBoard = errors.New("t2048: invalid board")
)

// MinBoardSize is the smallest playable board dimension.
const MinBoardSize = 2

// Board is an N×N row-major grid of cell values. Zero is an empty cell.
type Board [][]int

// NewEmpty creates a size×size board filled with zeros.
func NewEmpty(size int) (Board, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	b := make(Board, size)
	for y := range b {
		b[y] = make([]int, size)
	}
	return b, nil
}

// FromRows validates rows and returns a board copied from them.
func FromRows(rows [][]int) (Board, error) {
	n := len(rows)
	if n < MinBoardSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	b := make(Board, n)
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, y, len(row), n)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: negative value %d at (%d,%d)", ErrInvalidBoard, v, x, y)
			}
		}
		b[y] = append([]int(nil), row...)
	}
	return b, nil
}

// Size returns the board dimension N.
func (b Board) Size() int {
	return len(b)
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	c := make(Board, len(b))
	for y, row := range b {
		c[y] = append([]int(nil), row...)
	}
	return c
}

// Equal reports whether both boards have the same dimensions and cell values.
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for y := range b {
		if len(b[y]) != len(other[y]) {
			return false
		}
		for x := range b[y] {
			if b[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// CountEmptyCells returns the number of zero cells.
func (b Board) CountEmptyCells() int {
	count := 0
	for _, row := range b {
		for _, v := range row {
			if v == 0 {
				count++
			}
		}
	}
	return count
}

// Sum returns the total of all cell values.
func (b Board) Sum() int {
	total := 0
	for _, row := range b {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// MaxTile returns the maximum tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// String renders the board as space-separated rows, mainly for test output.
func (b Board) String() string {
	var sb strings.Builder
	for y, row := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
	}
	return sb.String()
}
