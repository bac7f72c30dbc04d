package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// ErrReporter is implemented by games that keep the error of their last
// Reset or Step.
type ErrReporter interface {
	Err() error
}

// GameModel is the Bubble Tea model for running a game, locally or over SSH.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	session    *Session
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	gestures   *GestureTracker
	quitting   bool
	backToMenu bool
	canGoBack  bool // Esc returns to a menu instead of quitting
}

// NewGameModel creates a model for the given game and attaches it to the session.
func NewGameModel(game registry.Game, sess *Session, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	sess.Attach(game)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		session:    sess,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gestures:   NewGestureTracker(),
	}
}

// Start resets the game. Called once before the program runs, since Init
// has a value receiver and cannot keep state.
func (m *GameModel) Start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logGameError()
}

// logGameError logs what a game reports through Err, such as a saved state
// that could not be restored.
func (m *GameModel) logGameError() {
	if r, ok := m.game.(ErrReporter); ok {
		if err := r.Err(); err != nil {
			m.session.logger().Warn("game error", "game", m.game.ID(), "error", err)
		}
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action, ok := m.gestures.Handle(msg); ok {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.canGoBack && m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events without restarting the game.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick applies buffered input.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.inputFrame.Empty() {
		result := m.game.Step(m.inputFrame)
		m.gameState = result.State
		m.inputFrame.Clear()
		m.logGameError()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.session.logger().Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".t2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.session.logger().Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	content := m.screen.String()
	if tg, ok := m.game.(*t2048.Game); ok {
		snap := tg.Snapshot()
		header := fmt.Sprintf("# %s %s score=%d best=%d max=%d undo=%d state=%s tick=%d\n",
			snap.ID, snap.Settings.ID(), snap.Score, snap.Best, snap.MaxTile, snap.HistoryDepth, snap.State, snap.Tick)
		content = header + content
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.session.logger().Warn("screenshot failed", "error", err)
		return
	}
	m.session.logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, sess *Session, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, sess, cfg)
	model.Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Mouse drags become swipes
	)

	_, err := p.Run()
	return err
}
