package core

// Color represents a style for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Predefined colors. The Tile* entries are background-filled styles used
// for numbered tiles, from the smallest value upward.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorYellow
	ColorRed
	ColorBrightWhite
	TileEmpty
	Tile2
	Tile4
	Tile8
	Tile16
	Tile32
	Tile64
	Tile128
	Tile256
	Tile512
	Tile1024
	Tile2048
	TileSuper // Anything above 2048
)

// TileColor returns the tile style for a tile value.
// Zero maps to TileEmpty; values that are not powers of two use the closest
// lower style.
func TileColor(value int) Color {
	if value <= 0 {
		return TileEmpty
	}
	c := Tile2
	for v := 2; v*2 <= value && c < TileSuper; v *= 2 {
		c++
	}
	return c
}
