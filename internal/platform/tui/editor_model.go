package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/editor"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// CustomGameID is the game ID of boards started from the editor.
const CustomGameID = "2048_custom"

// EditorKeyMap defines the key bindings for the board editor.
type EditorKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Increment key.Binding
	Clear     key.Binding
	Reset     key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Play      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Clear, k.Reset, k.Play, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Increment, k.Clear, k.Reset},
		{k.Grow, k.Shrink, k.Play, k.Back, k.Quit},
	}
}

// DefaultEditorKeyMap returns default key bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k", "w"), key.WithHelp("up/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j", "s"), key.WithHelp("down/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h", "a"), key.WithHelp("left/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l", "d"), key.WithHelp("right/l", "right")),
		Increment: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "double")),
		Clear:     key.NewBinding(key.WithKeys("x", "backspace", "delete"), key.WithHelp("x", "clear")),
		Reset:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Grow:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger board")),
		Shrink:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "smaller board")),
		Play:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// EditorModel is the Bubble Tea model for the board editor.
type EditorModel struct {
	editor   *editor.Editor
	four     float64 // Four tile percent of the played game
	cursorX  int
	cursorY  int
	keys     EditorKeyMap
	help     help.Model
	width    int
	height   int
	status   string
	quitting bool
	back     bool
	play     bool
}

// NewEditorModel creates an editor with an empty board of the session's size.
func NewEditorModel(sess *Session, width, height int) EditorModel {
	s := sess.GameSettings()
	ed, err := editor.New(s.BoardSize)
	if err != nil {
		s = config.DefaultGameSettings()
		ed, _ = editor.New(s.BoardSize)
	}

	h := help.New()
	h.Width = width

	return EditorModel{
		editor: ed,
		four:   s.FourTilePercent,
		keys:   DefaultEditorKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.editor.Size()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
	case key.Matches(msg, m.keys.Up):
		m.cursorY = (m.cursorY + n - 1) % n
	case key.Matches(msg, m.keys.Down):
		m.cursorY = (m.cursorY + 1) % n
	case key.Matches(msg, m.keys.Left):
		m.cursorX = (m.cursorX + n - 1) % n
	case key.Matches(msg, m.keys.Right):
		m.cursorX = (m.cursorX + 1) % n
	case key.Matches(msg, m.keys.Increment):
		m.editor.Increment(m.cursorX, m.cursorY)
	case key.Matches(msg, m.keys.Clear):
		m.editor.Clear(m.cursorX, m.cursorY)
	case key.Matches(msg, m.keys.Reset):
		m.editor.Reset()
	case key.Matches(msg, m.keys.Grow):
		m.resize(n + 1)
	case key.Matches(msg, m.keys.Shrink):
		m.resize(n - 1)
	case key.Matches(msg, m.keys.Play):
		if m.editor.State().Board.CountEmptyCells() == n*n {
			m.status = "Place at least one tile first"
			break
		}
		m.play = true
	}
	return m, nil
}

func (m *EditorModel) resize(size int) {
	if err := m.editor.Resize(size); err != nil {
		m.status = fmt.Sprintf("Board size must be %d-%d", config.MinBoardSize, config.MaxBoardSize)
		return
	}
	m.cursorX = min(m.cursorX, size-1)
	m.cursorY = min(m.cursorY, size-1)
}

// View renders the editor.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText("B O A R D   E D I T O R", m.width))
	b.WriteString("\n\n")

	grid := m.renderGrid()
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, grid))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderGrid draws the board with the cursor cell in brackets.
func (m EditorModel) renderGrid() string {
	n := m.editor.Size()
	cellW := 6
	for y := range n {
		for x := range n {
			cellW = max(cellW, len(strconv.Itoa(m.editor.Value(x, y)))+4)
		}
	}

	rows := make([]string, n)
	for y := range n {
		cells := make([]string, n)
		for x := range n {
			v := m.editor.Value(x, y)
			label := ""
			if v != 0 {
				label = strconv.Itoa(v)
			}
			if x == m.cursorX && y == m.cursorY {
				label = "[" + label + "]"
			}
			style, ok := colorStyles[core.TileColor(v)]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			cells[x] = style.Width(cellW).Align(lipgloss.Center).Render(label)
		}
		rows[y] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "\n\n")
}

// IsQuitting returns true if user requested to quit.
func (m EditorModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user wants to go back to menu.
func (m EditorModel) IsGoingBack() bool {
	return m.back
}

// WantsPlay returns true if user wants to play the edited board.
func (m EditorModel) WantsPlay() bool {
	return m.play
}

// Edited returns the edited board and the settings to play it with.
func (m EditorModel) Edited() (t2048.GameState, config.GameSettings) {
	return m.editor.State(), config.GameSettings{
		BoardSize:       m.editor.Size(),
		FourTilePercent: m.four,
	}
}

// NewEditedGame creates the game that plays an edited board.
func NewEditedGame(settings config.GameSettings) (*t2048.Game, error) {
	return t2048.NewWithSettings(CustomGameID, "2048 (custom)", settings)
}
