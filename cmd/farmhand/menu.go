package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/farmhand/internal/games/farm"
	"github.com/vovakirdan/farmhand/internal/platform/tui"
	"github.com/vovakirdan/farmhand/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and level interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc          - Back
  Q            - Quit

Examples:
  farmhand menu
  farmhand menu --fps 30
  farmhand menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	levelNames := farm.New().Levels().Names()
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg, levelNames)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit || result.GameID == "" {
			return nil
		}

		farm.SetStartLevel(result.Level)
		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		logger.Info("menu selection", "game", result.GameID, "level", result.Level)
		if err := tui.Run(game, cfg, logger); err != nil {
			return err
		}
	}
}
