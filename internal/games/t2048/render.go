package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	minCellWidth = 5 // Width of each cell including its left border
	cellHeight   = 2 // Height of each cell including its top border
	hudHeight    = 3
	footerHeight = 2
)

// layout holds the board geometry for the current board and screen.
type layout struct {
	size       int
	cellW      int
	boardW     int
	boardH     int
	boardX     int
	boardY     int
	minW, minH int
}

// layout sizes cells to fit the widest tile.
func (g *Game) layout() layout {
	size := g.settings.BoardSize
	widest := 4
	if g.machine != nil {
		b := g.machine.Current().Board
		size = b.Size()
		widest = max(widest, len(strconv.Itoa(b.MaxTile())))
	}

	l := layout{size: size, cellW: max(minCellWidth, widest+3)}
	l.boardW = size*l.cellW + 1 // +1 for right border
	l.boardH = size*cellHeight + 1
	l.boardX = (g.screenW - l.boardW) / 2
	l.boardY = hudHeight + 1
	l.minW = max(l.boardW+2, 30)
	l.minH = l.boardY + l.boardH + footerHeight
	return l
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.machine == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	st := g.machine.Current()

	g.renderHUD(dst, l, st)
	g.renderGrid(dst, l)
	g.renderTiles(dst, l, st.Board)
	g.renderOverlays(dst, l)

	dst.DrawTextCentered(l.boardY+l.boardH+1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	l := g.layout()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", l.minW, l.minH))
}

// renderHUD draws the title, score, best score and undo depth.
func (g *Game) renderHUD(dst *core.Screen, l layout, st GameState) {
	dst.DrawTextColor(l.boardX+(l.boardW-len(g.title))/2, 0, g.title, core.ColorBrightWhite)

	dst.DrawText(l.boardX, 1, fmt.Sprintf("Score: %d", st.Score))

	bestStr := fmt.Sprintf("Best: %d", g.Best())
	dst.DrawTextColor(max(l.boardX, l.boardX+l.boardW-len(bestStr)), 1, bestStr, core.ColorYellow)

	s := g.Settings()
	info := fmt.Sprintf("%dx%d  4s: %s%%  Undo: %d", s.BoardSize, s.BoardSize,
		strconv.FormatFloat(s.FourTilePercent, 'f', -1, 64), g.machine.Depth()-1)
	if g.lastOutcome == NotMovable {
		var names []string
		for _, d := range MovableDirections(st.Board) {
			names = append(names, d.String())
		}
		info = "Blocked. Try " + strings.Join(names, "/")
	}
	dst.DrawTextColor(l.boardX+(l.boardW-len(info))/2, 2, info, core.ColorGray)
}

// renderGrid draws the N×N cell borders.
func (g *Game) renderGrid(dst *core.Screen, l layout) {
	n := l.size
	for y := range n + 1 {
		for x := range n + 1 {
			px := l.boardX + x*l.cellW
			py := l.boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < l.cellW; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles fills each cell with its tile color and centered value.
func (g *Game) renderTiles(dst *core.Screen, l layout, b Board) {
	inner := l.cellW - 1
	for y, row := range b {
		for x, v := range row {
			cellX := l.boardX + x*l.cellW + 1
			cellY := l.boardY + y*cellHeight + 1
			color := core.TileColor(v)

			dst.FillRect(core.NewRect(cellX, cellY, inner, cellHeight-1), ' ', color)
			if v == 0 {
				continue
			}

			valStr := strconv.Itoa(v)
			padLeft := max((inner-len(valStr))/2, 0)
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// renderOverlays draws pause and game-over boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, l layout) {
	centerX := l.boardX + l.boardW/2
	centerY := l.boardY + l.boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.machine.IsGameOver() {
		maxStr := fmt.Sprintf("Max tile: %d", g.machine.Current().Board.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "R: restart  U: undo")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColor(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | U: Undo | R: Restart | P: Pause | Q: Quit"
}
