// t2048 is the 2048 sliding-tile game for the terminal.
//
// Usage:
//
//	t2048 list                  - List the game presets
//	t2048 play [preset]         - Play a preset (default: 2048)
//	t2048 menu                  - Start the interactive menu
//	t2048 edit                  - Build a starting board and play it
//	t2048 scores [settings-id]  - Show high scores
//	t2048 settings              - Show or change the settings
//	t2048 serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible tile spawns
//	--db <path>         - Set database path (default: ~/.t2048/t2048.db)
//	--config <path>     - Use a specific settings file
//	--log-level <level> - debug, info, warn or error (default: info)
//
// The environment variables T2048_DB, T2048_CONFIG and T2048_LOG_LEVEL,
// also read from a .env file, are used when the flag is not given.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const defaultDBPath = "~/.t2048/t2048.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Loaded before every command
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile game for the terminal.

Slide the tiles with the arrow keys, WASD, HJKL or a mouse drag.
Equal tiles merge and add their value to your score.

Available commands:
  list      - Show the game presets
  play      - Play a preset directly
  menu      - Interactive menu (presets, editor, scores, settings)
  edit      - Build a starting board and play it
  scores    - View high scores, grouped by settings
  settings  - Show or change board size and four tile chance
  serve     - Start SSH server for remote play

Examples:
  t2048 play
  t2048 play 2048_5x5
  t2048 play --size 6 --four 10
  t2048 scores 4x4-25
  t2048 serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database [T2048_DB]")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings file [T2048_CONFIG]")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error [T2048_LOG_LEVEL]")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup applies environment defaults, builds the logger and loads the settings.
func setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	envDefault(flags.Changed("db"), &flagDBPath, "T2048_DB")
	envDefault(flags.Changed("config"), &flagConfig, "T2048_CONFIG")
	envDefault(flags.Changed("log-level"), &flagLogLevel, "T2048_LOG_LEVEL")

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	appConfig = cfg
	logger.Debug("settings loaded", "settings", cfg.Game.ID(), "min_score", cfg.Scores.MinRecorded)
	return nil
}

// envDefault replaces an unset flag with the environment variable, if any.
func envDefault(changed bool, flag *string, env string) {
	if changed {
		return
	}
	if v := os.Getenv(env); v != "" {
		*flag = v
	}
}

// configPath is where settings changes are written.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.UserConfigPath()
}

// runtimeConfig builds the game config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// localSession builds the session for a terminal UI run. While the UI owns
// the terminal, logs go to a file next to the settings.
func localSession(store *storage.Store) (*tui.Session, func()) {
	settings := appConfig.Game
	sess := &tui.Session{
		Store:      store,
		Logger:     logger,
		MinScore:   appConfig.Scores.MinRecorded,
		ConfigPath: configPath(),
		Settings:   &settings,
	}

	closeLog := func() {}
	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".t2048", "t2048.log")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				sess.Logger = log.NewWithOptions(f, log.Options{
					ReportTimestamp: true,
					Prefix:          "t2048",
					Level:           logger.GetLevel(),
				})
				closeLog = func() { f.Close() }
			}
		}
	}

	return sess, func() {
		closeLog()
		if store != nil {
			store.Close()
		}
	}
}
