package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/farmhand/internal/games/farm"
)

var flagLaps int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Prints each level with its target time, wander speed and spawn range.
Endless mode repeats the table; --laps shows how spawn ranges keep growing.

Examples:
  farmhand levels
  farmhand levels --laps 2 --difficulty hard
  farmhand levels --config ./my-farm.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom farm config YAML")
	levelsCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	levelsCmd.Flags().IntVar(&flagLaps, "laps", 1, "Number of passes through the table to show")
}

func runLevels(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	g := farm.New()
	g.SetLogger(logger)
	table := g.Levels()

	if table.Count() == 0 {
		return fmt.Errorf("config has no levels")
	}

	maxName := len("Name")
	for _, name := range table.Names() {
		maxName = max(maxName, len(name))
	}

	fmt.Printf("  %3s  %-*s  %7s  %7s  %7s  %s\n", "#", maxName, "Name", "Target", "Wander", "Items", "Item")
	for i := range table.Count() * max(flagLaps, 1) {
		l := table.Level(i)
		r := table.SpawnRange(i)
		wander := "-"
		if l.Wandering {
			wander = fmt.Sprintf("%.1f", l.WanderSpeed)
		}
		fmt.Printf("  %3d  %-*s  %6.0fs  %7s  %7s  %s\n",
			l.Number(), maxName, l.Name, l.TargetTime, wander,
			fmt.Sprintf("%d-%d", r.Min, r.Max), l.Emoji)
	}
	return nil
}
