package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSetSize     int
	flagSetFour     float64
	flagSetMinScore int
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the settings",
	Long: `Show the settings used by the default preset and by score recording.

Settings are read from --config, ~/.t2048/settings.yaml or
./configs/settings.yaml, in that order.`,
	Args: cobra.NoArgs,
	Run:  runSettings,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the settings",
	Long: `Change the settings and write them to the settings file.
Only the given flags change. Changing the board size discards the
saved game of the default preset.

Examples:
  t2048 settings set --size 5
  t2048 settings set --four 10 --min-score 1000`,
	Args: cobra.NoArgs,
	RunE: runSettingsSet,
}

func init() {
	settingsSetCmd.Flags().IntVar(&flagSetSize, "size", 0, "Board size")
	settingsSetCmd.Flags().Float64Var(&flagSetFour, "four", 0, "Chance of a new tile being a 4, in percent")
	settingsSetCmd.Flags().IntVar(&flagSetMinScore, "min-score", 0, "Smallest finished score that gets recorded")
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettings(_ *cobra.Command, _ []string) {
	printSettings(appConfig)
	fmt.Println()
	fmt.Printf("File: %s\n", configPath())
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	cfg := appConfig
	flags := cmd.Flags()
	if !flags.Changed("size") && !flags.Changed("four") && !flags.Changed("min-score") {
		return fmt.Errorf("nothing to change, see 't2048 settings set --help'")
	}
	if flags.Changed("size") {
		cfg.Game.BoardSize = flagSetSize
	}
	if flags.Changed("four") {
		cfg.Game.FourTilePercent = flagSetFour
	}
	if flags.Changed("min-score") {
		cfg.Scores.MinRecorded = flagSetMinScore
	}

	path := configPath()
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	logger.Info("settings saved", "path", path)

	// A saved board of the old size can no longer be restored.
	if store := openStore(); store != nil {
		(&tui.Session{Store: store, Logger: logger}).DiscardStaleGames(appConfig.Game, cfg.Game)
		store.Close()
	}

	printSettings(cfg)
	return nil
}

func printSettings(cfg config.Config) {
	fmt.Printf("Board size:          %dx%d\n", cfg.Game.BoardSize, cfg.Game.BoardSize)
	fmt.Printf("Four tile chance:    %v%%\n", cfg.Game.FourTilePercent)
	fmt.Printf("Min recorded score:  %d\n", cfg.Scores.MinRecorded)
	fmt.Printf("Settings ID:         %s\n", cfg.Game.ID())
}
