package t2048

import "errors"

// ErrNoEmptyCells is returned by Spawn when the board is full.
// The board is left untouched; callers treat this as a no-op.
var ErrNoEmptyCells = errors.New("t2048: no empty cells")

// Source is the randomness used for spawning. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Tile describes a spawned tile.
type Tile struct {
	X, Y  int
	Value int
}

// Spawner places new tiles on a board.
type Spawner struct {
	src         Source
	fourPercent float64
}

// NewSpawner creates a spawner that produces a 4 with probability
// fourPercent/100 and a 2 otherwise.
func NewSpawner(src Source, fourPercent float64) *Spawner {
	return &Spawner{src: src, fourPercent: fourPercent}
}

// SetFourPercent changes the probability used for future spawns.
func (s *Spawner) SetFourPercent(p float64) {
	s.fourPercent = p
}

// Spawn writes one new tile into a random empty cell of b, in place.
// The cell is the k-th empty cell in row-major order for a uniform k.
func (s *Spawner) Spawn(b Board) (Tile, error) {
	count := b.CountEmptyCells()
	if count == 0 {
		return Tile{}, ErrNoEmptyCells
	}

	k := s.src.Intn(count)
	value := 2
	if s.src.Float64()*100 < s.fourPercent {
		value = 4
	}

	for y, row := range b {
		for x, v := range row {
			if v != 0 {
				continue
			}
			if k == 0 {
				b[y][x] = value
				return Tile{X: x, Y: y, Value: value}, nil
			}
			k--
		}
	}

	// Unreachable: count guarantees k lands on an empty cell.
	return Tile{}, ErrNoEmptyCells
}
