package t2048

import (
	"math/rand"
	"slices"
	"testing"
)

// randomBoard fills a board with zeros and small powers of two, dense enough
// that blocked directions show up often.
func randomBoard(rng *rand.Rand, size int) Board {
	values := []int{0, 0, 2, 4, 8, 16, 32}
	b, _ := NewEmpty(size)
	for y := range b {
		for x := range b[y] {
			b[y][x] = values[rng.Intn(len(values))]
		}
	}
	return b
}

func TestCanMoveMatchesMoveBoard(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for i := range 2000 {
		size := 2 + i%5
		b := randomBoard(rng, size)

		for _, d := range Directions {
			moved, _ := MoveBoard(d, b)
			changed := !moved.Equal(b)
			if got := CanMove(d, b); got != changed {
				t.Fatalf("CanMove(%s) = %v but board changed = %v for\n%v", d, got, changed, b)
			}
		}
	}
}

func TestMoveBoardPreservesSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 500 {
		b := randomBoard(rng, 4)
		for _, d := range Directions {
			moved, _ := MoveBoard(d, b)
			if moved.Sum() != b.Sum() {
				t.Fatalf("MoveBoard(%s) changed sum %d -> %d for\n%v", d, b.Sum(), moved.Sum(), b)
			}
		}
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  []Direction
	}{
		{
			name: "single tile in corner",
			board: Board{
				{2, 0},
				{0, 0},
			},
			want: []Direction{DirRight, DirDown},
		},
		{
			name: "full row merge only horizontal",
			board: Board{
				{2, 2},
				{4, 8},
			},
			want: []Direction{DirLeft, DirRight},
		},
		{
			name: "column merge only vertical",
			board: Board{
				{2, 4},
				{2, 8},
			},
			want: []Direction{DirUp, DirDown},
		},
		{
			name: "empty board",
			board: Board{
				{0, 0},
				{0, 0},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovableDirections(tt.board)
			if !slices.Equal(got, tt.want) {
				t.Errorf("MovableDirections = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsGameOver(t *testing.T) {
	terminal := Board{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}

	if !IsGameOver(terminal) {
		t.Error("checkerboard should be game over")
	}
	for _, d := range Directions {
		if CanMove(d, terminal) {
			t.Errorf("CanMove(%s) should be false on a terminal board", d)
		}
	}

	open := terminal.Clone()
	open[3][3] = 0
	if IsGameOver(open) {
		t.Error("board with an empty cell should not be game over")
	}

	merge := terminal.Clone()
	merge[3][3] = 4
	if IsGameOver(merge) {
		t.Error("board with an adjacent pair should not be game over")
	}
}
