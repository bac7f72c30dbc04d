package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/scores"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Session holds what every game in one terminal session shares.
// A nil Store runs the game without persistence.
type Session struct {
	Store      *storage.Store
	Logger     *log.Logger
	MinScore   int
	ConfigPath string // Where the settings menu saves; empty disables saving
	Owner      string // Prefixes saved game keys, so SSH users do not share boards

	// Settings used by presets that follow the settings file. Nil means
	// the built-in defaults.
	Settings *config.GameSettings
}

// GameSettings returns the settings used by presets that follow the settings file.
func (s *Session) GameSettings() config.GameSettings {
	if s != nil && s.Settings != nil {
		return *s.Settings
	}
	return config.DefaultGameSettings()
}

// NewGame creates a registered game, applying the session's settings to
// presets that follow the settings file.
func (s *Session) NewGame(id string) (registry.Game, error) {
	if p, ok := t2048.GetPreset(id); ok && p.UserSettings {
		return t2048.NewWithSettings(p.ID, p.Name, p.SettingsFor(s.GameSettings()))
	}
	return registry.Create(id)
}

// DiscardStaleGames deletes the saved games of presets that follow the
// settings file when the board size changes from prev to next.
func (s *Session) DiscardStaleGames(prev, next config.GameSettings) {
	if s.store() == nil || prev.BoardSize == next.BoardSize {
		return
	}
	for _, p := range t2048.Presets {
		if !p.UserSettings {
			continue
		}
		if err := s.Store.DeleteGame(s.gameKey(p.ID)); err != nil {
			s.logger().Warn("could not delete saved game", "game", p.ID, "error", err)
			continue
		}
		s.logger().Debug("saved game discarded", "game", p.ID, "board_size", next.BoardSize)
	}
}

func (s *Session) logger() *log.Logger {
	if s == nil || s.Logger == nil {
		return log.Default()
	}
	return s.Logger
}

func (s *Session) store() *storage.Store {
	if s == nil {
		return nil
	}
	return s.Store
}

// gameSettingsID returns the settings ID of a 2048 game, or empty for other games.
func gameSettingsID(g registry.Game) string {
	if tg, ok := g.(*t2048.Game); ok {
		return tg.Settings().ID()
	}
	return ""
}

func (s *Session) gameKey(id string) string {
	if s.Owner == "" {
		return id
	}
	return s.Owner + "/" + id
}

// Attach wires a game to storage: the saved game is restored, the best
// score is loaded, and every new state is saved and fed to a score recorder.
// Must be called before the game's first Reset.
func (s *Session) Attach(g registry.Game) {
	tg, ok := g.(*t2048.Game)
	if !ok || s == nil {
		return
	}
	logger := s.logger().With("game", tg.ID())

	var sink scores.Sink
	if s.Store != nil {
		sink = s.Store
		s.restore(tg, logger)
	}
	recorder := scores.NewRecorder(sink, s.MinScore)

	tg.OnChange(func(st t2048.GameState) {
		settings := tg.Settings()

		if s.Store != nil {
			if err := s.Store.SaveGame(s.gameKey(tg.ID()), st, settings); err != nil {
				logger.Warn("could not save game", "error", err)
			}
		}

		if tg.State().GameOver {
			logger.Debug("game over", "score", st.Score, "max_tile", st.Board.MaxTile())
		}

		rec, recorded, err := recorder.Observe(st, settings)
		if err != nil {
			logger.Warn("could not record score", "error", err)
			return
		}
		if recorded {
			logger.Info("score recorded", "score", rec.Value, "settings", rec.Settings.ID())
			if rec.Settings.ID() == settings.ID() {
				tg.SetBest(max(tg.Best(), rec.Value))
			}
		}
	})
}

// restore loads the best score and the saved game for tg.
func (s *Session) restore(tg *t2048.Game, logger *log.Logger) {
	best, err := s.Store.HighScore(tg.Settings().ID())
	if err != nil {
		logger.Warn("could not load high score", "error", err)
	}
	tg.SetBest(best)

	st, found, err := s.Store.LoadGame(s.gameKey(tg.ID()))
	switch {
	case err != nil:
		logger.Warn("could not load saved game", "error", err)
	case !found:
		logger.Debug("no saved game")
	default:
		if err := tg.Restore(st); err != nil {
			// Saved with another board size; start fresh.
			logger.Debug("saved game not restored", "reason", err)
			return
		}
		logger.Info("restored saved game", "score", st.Score)
	}
}
