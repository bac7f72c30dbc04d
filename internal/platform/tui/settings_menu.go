package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Step sizes for the settings menu.
const (
	fourPercentStep = 5
	minScoreStep    = 100
)

const (
	settingBoardSize = iota
	settingFourPercent
	settingMinScore
	settingSave
	settingCount
)

// SettingsModel lets users change the board size, the share of four tiles
// and the smallest recorded score.
type SettingsModel struct {
	session   *Session
	settings  config.GameSettings
	minScore  int
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	status    string
	quitting  bool
	back      bool
}

// NewSettingsModel creates a settings menu showing the session's settings.
func NewSettingsModel(sess *Session, width, height int) SettingsModel {
	minScore := 0
	if sess != nil {
		minScore = sess.MinScore
	}
	return SettingsModel{
		session:   sess,
		settings:  sess.GameSettings(),
		minScore:  minScore,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < settingCount-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor == settingSave {
			m.apply()
		}
	}
	return m, nil
}

// adjust moves the selected value by one step in direction dir.
func (m *SettingsModel) adjust(dir int) {
	m.status = ""
	switch m.cursor {
	case settingBoardSize:
		m.settings.BoardSize = core.Clamp(m.settings.BoardSize+dir, config.MinBoardSize, config.MaxBoardSize)
	case settingFourPercent:
		p := m.settings.FourTilePercent + float64(dir*fourPercentStep)
		m.settings.FourTilePercent = core.ClampF(p, 0, 100)
	case settingMinScore:
		m.minScore = max(m.minScore+dir*minScoreStep, 0)
	}
}

// apply stores the settings in the session and, when a settings file is
// configured, writes them there too.
func (m *SettingsModel) apply() {
	if m.session == nil {
		m.status = "Nothing to save to"
		return
	}
	s := m.settings
	m.session.DiscardStaleGames(m.session.GameSettings(), s)
	m.session.Settings = &s
	m.session.MinScore = m.minScore

	if m.session.ConfigPath == "" {
		m.status = "Applied for this session"
		return
	}

	cfg := config.Config{
		Game:   s,
		Scores: config.ScoresConfig{MinRecorded: m.minScore},
	}
	if err := config.Save(m.session.ConfigPath, cfg); err != nil {
		m.session.logger().Warn("could not save settings", "path", m.session.ConfigPath, "error", err)
		m.status = "Save failed: " + err.Error()
		return
	}
	m.session.logger().Info("settings saved", "path", m.session.ConfigPath, "settings", s.ID())
	m.status = "Saved"
}

// View renders the settings.
func (m SettingsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("S E T T I N G S", m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Board size:       < %dx%d >", m.settings.BoardSize, m.settings.BoardSize),
		fmt.Sprintf("Four tiles:       < %v%% >", m.settings.FourTilePercent),
		fmt.Sprintf("Min recorded:     < %d >", m.minScore),
		"Save",
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText("Left/Right: Change  |  Enter: Save  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Settings returns the settings currently shown.
func (m SettingsModel) Settings() config.GameSettings {
	return m.settings
}

// IsQuitting returns true if user requested to quit.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SettingsModel) IsGoingBack() bool {
	return m.back
}

// currentSettingsLabel describes the settings used by the default preset.
func currentSettingsLabel(sess *Session) string {
	return sess.GameSettings().String()
}
