package t2048

// CanMove reports whether moving in direction d would change the board,
// without resolving the move. Each line is scanned from the edge tiles move
// toward: a tile after an empty cell can slide, and two equal tiles with
// nothing but each other between them can merge.
// Panics if d is not a valid direction.
func CanMove(d Direction, b Board) bool {
	o := d.orientation()
	size := b.Size()

	for n := range size {
		seenEmpty := false
		previous := 0 // last non-zero value in scan order

		for i := range size {
			y, x := o.cell(size, n, i)
			v := b[y][x]

			if v == 0 {
				seenEmpty = true
				continue
			}
			if seenEmpty || v == previous {
				return true
			}
			previous = v
		}
	}
	return false
}

// MovableDirections returns every direction that would change the board.
func MovableDirections(b Board) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if CanMove(d, b) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// IsGameOver returns true if no direction can change the board.
func IsGameOver(b Board) bool {
	for _, d := range Directions {
		if CanMove(d, b) {
			return false
		}
	}
	return true
}
