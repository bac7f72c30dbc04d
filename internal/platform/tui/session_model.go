package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Screen identifies what a SessionModel is showing.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
	ScreenEditor
	ScreenScores
	ScreenSettings
)

// SessionModel manages the full session flow: menu -> game/editor/scores/settings -> menu.
// It is the top-level model for both the local menu and SSH sessions.
type SessionModel struct {
	session   *Session
	config    core.RuntimeConfig
	screen    Screen
	menu      MenuModel
	gameModel *GameModel
	editor    EditorModel
	scores    ScoreboardModel
	settings  SettingsModel
	lastGame  string // Settings ID of the last game played, focused in the scoreboard
	quitting  bool
}

// NewSessionModel creates a session model starting at the given screen.
// ScreenGame is not a valid start; use Run for a single game.
func NewSessionModel(sess *Session, cfg core.RuntimeConfig, start Screen) SessionModel {
	m := SessionModel{
		session: sess,
		config:  cfg,
		menu:    NewMenuModel(sess, cfg),
	}
	m.open(start)
	return m
}

// open switches to a screen other than the game.
func (m *SessionModel) open(s Screen) {
	switch s {
	case ScreenEditor:
		m.editor = NewEditorModel(m.session, m.config.ScreenW, m.config.ScreenH)
	case ScreenScores:
		m.scores = NewScoreboardModel(m.session.store(), m.lastGame, m.config.ScreenW, m.config.ScreenH)
	case ScreenSettings:
		m.settings = NewSettingsModel(m.session, m.config.ScreenW, m.config.ScreenH)
	default:
		s = ScreenMenu
		m.menu = NewMenuModel(m.session, m.config)
	}
	m.screen = s
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case ScreenGame:
		return m.updateGame(msg)
	case ScreenEditor:
		return m.updateEditor(msg)
	case ScreenScores:
		return m.updateScores(msg)
	case ScreenSettings:
		return m.updateSettings(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}
	m.config = m.menu.Config()

	switch selected.Kind {
	case MenuKindGame:
		game, err := m.session.NewGame(selected.GameID)
		if err != nil {
			// Menu only shows registered games
			m.session.logger().Error("cannot create game", "game", selected.GameID, "error", err)
			m.open(ScreenMenu)
			return m, nil
		}
		gm := NewGameModel(game, m.session, m.config)
		return m.startGame(gm)
	case MenuKindEditor:
		m.open(ScreenEditor)
	case MenuKindScores:
		m.open(ScreenScores)
	case MenuKindSettings:
		m.open(ScreenSettings)
	}
	return m, nil
}

// startGame resets the game and hands the screen to it.
func (m SessionModel) startGame(gm GameModel) (tea.Model, tea.Cmd) {
	gm.canGoBack = true
	gm.Start()
	m.lastGame = gameSettingsID(gm.game)
	m.gameModel = &gm
	m.screen = ScreenGame
	return m, gm.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.open(ScreenMenu)
		// The pending tick is dropped by the menu.
		return m, nil
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateEditor handles updates in the board editor.
func (m SessionModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.editor.Update(msg)
	if em, ok := newModel.(EditorModel); ok {
		m.editor = em
	}

	switch {
	case m.editor.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.editor.IsGoingBack():
		m.open(ScreenMenu)
		return m, nil
	case m.editor.WantsPlay():
		state, settings := m.editor.Edited()
		game, err := NewEditedGame(settings)
		if err != nil {
			m.session.logger().Error("cannot create edited game", "error", err)
			m.open(ScreenMenu)
			return m, nil
		}
		gm := NewGameModel(game, m.session, m.config)
		// Replaces any saved custom game queued by the session.
		if err := game.Restore(state); err != nil {
			m.session.logger().Warn("edited board rejected", "error", err)
		}
		return m.startGame(gm)
	}
	return m, cmd
}

// updateScores handles updates in the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scores = sm
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.open(ScreenMenu)
		return m, nil
	}
	return m, cmd
}

// updateSettings handles updates in the settings menu.
func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if sm, ok := newModel.(SettingsModel); ok {
		m.settings = sm
	}

	switch {
	case m.settings.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.settings.IsGoingBack():
		m.open(ScreenMenu)
		return m, nil
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case ScreenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case ScreenEditor:
		return m.editor.View()
	case ScreenScores:
		return m.scores.View()
	case ScreenSettings:
		return m.settings.View()
	}
	return m.menu.View()
}

// Current returns the screen being shown.
func (m SessionModel) Current() Screen {
	return m.screen
}

// RunSession runs the interactive menu in the local terminal.
func RunSession(sess *Session, cfg core.RuntimeConfig, start Screen) error {
	p := tea.NewProgram(
		NewSessionModel(sess, cfg, start),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
