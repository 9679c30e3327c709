package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/farmhand/internal/games/farm"
	"github.com/vovakirdan/farmhand/internal/platform/tui"
	"github.com/vovakirdan/farmhand/internal/registry"
)

var (
	flagMode  string
	flagLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing directly.

Controls:
  Click      - Send the farmer after an item
  P/Esc      - Pause
  R          - Restart
  ?          - More keys
  Q/Ctrl+C   - Quit

Modes:
  endless  - Levels repeat forever with more items each lap (default)
  campaign - Clear every level once to win

Difficulty options:
  easy   - More time, faster farmer, calmer animals
  normal - Default tuning
  hard   - Less time, slower farmer, livelier animals
  fixed  - No progression, every level spawns like the first

Examples:
  farmhand play
  farmhand play --mode campaign
  farmhand play --level 3 --difficulty hard
  farmhand play --config ./my-farm.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "endless", "Game mode: endless, campaign")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (1-based, 0 = first)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameID, err := gameIDForMode(flagMode)
	if err != nil {
		return err
	}
	if flagLevel < 0 {
		return fmt.Errorf("--level must not be negative, got %d", flagLevel)
	}

	if err := applyGameFlags(); err != nil {
		return err
	}
	farm.SetStartLevel(flagLevel)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	return tui.Run(game, runtimeConfig(), logger)
}
