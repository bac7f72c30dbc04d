package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDirection is returned for values outside the Direction enum.
var ErrInvalidDirection = errors.New("t2048: invalid direction")

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Directions lists every move direction in a fixed order.
var Directions = [...]Direction{DirLeft, DirRight, DirUp, DirDown}

// axis selects which board dimension a line runs along.
type axis int

const (
	alongRow    axis = iota // fix the row, vary the column
	alongColumn             // fix the column, vary the row
)

// orientation maps a direction onto the canonical collapse-left resolve.
type orientation struct {
	axis    axis
	reverse bool // line is read from the far end (Right/Down)
}

var orientations = [...]orientation{
	DirLeft:  {axis: alongRow, reverse: false},
	DirRight: {axis: alongRow, reverse: true},
	DirUp:    {axis: alongColumn, reverse: false},
	DirDown:  {axis: alongColumn, reverse: true},
}

var directionNames = [...]string{
	DirLeft:  "left",
	DirRight: "right",
	DirUp:    "up",
	DirDown:  "down",
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirDown
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection parses a direction name (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, directionNames[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) orientation() orientation {
	if !d.Valid() {
		panic(fmt.Sprintf("t2048: invalid direction %d", int(d)))
	}
	return orientations[d]
}

// cell returns the board coordinates of the i-th cell of line n,
// counted from the edge tiles move toward.
func (o orientation) cell(size, n, i int) (y, x int) {
	if o.reverse {
		i = size - 1 - i
	}
	if o.axis == alongRow {
		return n, i
	}
	return i, n
}

// line extracts line n in collapse order.
func (o orientation) line(b Board, n int) []int {
	size := b.Size()
	out := make([]int, size)
	for i := range size {
		y, x := o.cell(size, n, i)
		out[i] = b[y][x]
	}
	return out
}

// MoveBoard slides and merges every line of b in direction d.
// Returns a freshly allocated board and the score gained; b is not modified.
// Panics if d is not a valid direction.
func MoveBoard(d Direction, b Board) (Board, int) {
	o := d.orientation()
	size := b.Size()

	result := make(Board, size)
	for y := range result {
		result[y] = make([]int, size)
	}

	totalScore := 0
	for n := range size {
		resolved, score := ResolveLine(o.line(b, n))
		totalScore += score

		for i, v := range resolved {
			y, x := o.cell(size, n, i)
			result[y][x] = v
		}
	}

	return result, totalScore
}
