// farmhand is a terminal farm game: click animals and crops, and the farmer
// carries them home before the clock runs out.
//
// Usage:
//
//	farmhand play            - Play a game
//	farmhand menu            - Pick a mode and level interactively
//	farmhand list            - List available game modes
//	farmhand levels          - Show the level table
//	farmhand simulate        - Run a headless autopilot game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/farmhand/internal/config"
	"github.com/vovakirdan/farmhand/internal/core"
	"github.com/vovakirdan/farmhand/internal/games/farm"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	// Shared by play, menu and levels
	flagConfig     string
	flagDifficulty string

	logger  *log.Logger
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "farmhand",
	Short: "Farmhand - round up the farm in your terminal",
	Long: `Farmhand is a terminal game: click items in the field and the farmer
fetches them and carries them back to the farm. Clear the field before the
target time for a bonus.

Available commands:
  play      - Play directly
  menu      - Interactive mode and level picker
  list      - Show game modes
  levels    - Show the level table
  simulate  - Headless autopilot run

Examples:
  farmhand play
  farmhand play --mode campaign --difficulty easy
  farmhand menu --log-file farmhand.log --log-level debug
  farmhand simulate --ticks 3600 --seed 7`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close() //nolint:errcheck // Best-effort close on exit
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setupLogging builds the root logger. The TUI owns the terminal, so logs go
// to a file or nowhere.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "farmhand",
		Level:           level,
	})
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// applyGameFlags checks the config and difficulty flags and hands them to
// the game package before any game is created.
func applyGameFlags() error {
	if flagConfig != "" {
		if _, err := config.LoadFarm(flagConfig); err != nil {
			return err
		}
	}
	farm.SetConfigPath(flagConfig)
	farm.SetDifficultyPreset(flagDifficulty)
	return nil
}

// gameIDForMode maps a --mode value to a registered game ID.
func gameIDForMode(mode string) (string, error) {
	switch mode {
	case "", string(farm.ModeEndless):
		return "farm", nil
	case string(farm.ModeCampaign):
		return "farm_campaign", nil
	default:
		return "", fmt.Errorf("unknown mode %q (want endless or campaign)", mode)
	}
}
