package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagSize  int
	flagFour  float64
	flagMoves []string
)

var playCmd = &cobra.Command{
	Use:   "play [preset]",
	Short: "Play a game",
	Long: `Start playing the given preset, or the default one.

Controls:
  Arrows/WASD/HJKL  - Slide tiles (a mouse drag works too)
  U/Z/Backspace     - Undo
  R                 - Restart
  P                 - Pause
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Your game is saved after every move and restored next time.
Finished games above the minimum score are recorded as high scores.

Examples:
  t2048 play
  t2048 play 2048_hard
  t2048 play --size 5
  t2048 play 2048_3x3 --four 50
  t2048 play --seed 7 --moves left,up,up,right`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Override the board size")
	playCmd.Flags().Float64Var(&flagFour, "four", 0, "Override the chance of a new tile being a 4, in percent")
	playCmd.Flags().StringSliceVar(&flagMoves, "moves", nil, "Replay moves (left,right,up,down) without the UI and print every board")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := t2048.Presets[0].ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown preset %q, run 't2048 list' to see them", gameID)
	}

	if len(flagMoves) > 0 {
		return replay(cmd, gameID)
	}

	sess, cleanup := localSession(openStore())
	defer cleanup()

	game, err := newGame(cmd, sess, gameID)
	if err != nil {
		return err
	}
	return tui.Run(game, sess, runtimeConfig())
}

// presetSettings returns the preset's settings with --size and --four applied,
// and whether any override was given.
func presetSettings(cmd *cobra.Command, gameID string) (config.GameSettings, bool) {
	p, _ := t2048.GetPreset(gameID)
	settings := p.SettingsFor(appConfig.Game)

	overridden := false
	if cmd.Flags().Changed("size") {
		settings.BoardSize = flagSize
		overridden = true
	}
	if cmd.Flags().Changed("four") {
		settings.FourTilePercent = flagFour
		overridden = true
	}
	return settings, overridden
}

// newGame creates the preset, applying --size and --four when given.
func newGame(cmd *cobra.Command, sess *tui.Session, gameID string) (registry.Game, error) {
	settings, overridden := presetSettings(cmd, gameID)
	if !overridden {
		return sess.NewGame(gameID)
	}

	// Overridden games are saved apart from the preset.
	p, _ := t2048.GetPreset(gameID)
	id := fmt.Sprintf("%s@%s", gameID, settings.ID())
	return t2048.NewWithSettings(id, fmt.Sprintf("%s (%s)", p.Name, settings.ID()), settings)
}

// replay plays --moves on a fresh board and prints each state that resulted.
// Nothing is saved or recorded.
func replay(cmd *cobra.Command, gameID string) error {
	settings, _ := presetSettings(cmd, gameID)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := t2048.Replay(settings, rand.New(rand.NewSource(seed)), flagMoves)
	if err != nil {
		return err
	}

	for i, st := range m.History() {
		fmt.Printf("State %d  score %d\n%s\n\n", i, st.Score, st.Board)
	}
	skipped := len(flagMoves) - (m.Depth() - 1)
	fmt.Printf("%d moves, %d had no effect. Final score: %d", len(flagMoves), skipped, m.Current().Score)
	if m.IsGameOver() {
		fmt.Print(" (game over)")
	}
	fmt.Println()
	return nil
}
