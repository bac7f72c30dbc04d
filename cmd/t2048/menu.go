package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start 2048 in interactive menu mode.

Pick a preset to play, build a board in the editor, browse the high
scores or change the settings. Esc returns to the menu from anywhere.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  E            - Board editor
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 60
  t2048 menu --db ./scores.db`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSession(tui.ScreenMenu)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Build a starting board and play it",
	Long: `Open the board editor.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Space/Enter       - Place a 2, or double the tile
  X                 - Clear the tile
  C                 - Clear the board
  +/-               - Change the board size
  P                 - Play the board
  Esc               - Back to the menu`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runSession(tui.ScreenEditor)
	},
}

func runSession(start tui.Screen) error {
	sess, cleanup := localSession(openStore())
	defer cleanup()

	return tui.RunSession(sess, runtimeConfig(), start)
}
