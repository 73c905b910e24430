// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play a variant (picker when omitted)
//	snake play --plain       - Play on the raw terminal without the TUI
//	snake replay [id]        - Browse, verify or watch journaled sessions
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate from the config
//	--speed <preset>     - Pace preset: slow, normal, fast
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set journal path (default: ~/.snake/journal.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSpeed    string
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake in the terminal: steer the snake, eat the food, avoid the walls
and your own tail. Every finished session is journaled and can be replayed.

Available commands:
  list     - Show all available variants
  play     - Play a variant
  replay   - Browse, verify or watch journaled sessions
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play snake_strict --seed 42
  snake play --plain
  snake replay --list
  snake replay 12 --watch
  snake serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake",
			Level:           level,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config interval)")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Pace preset: slow, normal, fast")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/journal.db", "Path to session journal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(serveCmd)
}

// settings is the resolved configuration for one command run.
type settings struct {
	file     config.SnakeConfig
	runtime  core.RuntimeConfig
	interval time.Duration
}

// loadSettings merges the config file, presets and global flags.
func loadSettings() (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return settings{}, err
	}

	rc := cfg.Runtime()
	rc.Seed = flagSeed
	interval := cfg.Interval()
	if flagFPS > 0 {
		rc.TickRate = flagFPS
		interval = time.Second / time.Duration(flagFPS)
	}

	// Terminal size, with defaults when stdout is not a terminal
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	logger.Debug("settings resolved", "board", fmt.Sprintf("%dx%d", rc.BoardW, rc.BoardH),
		"interval", interval, "start", rc.StartDir, "reversal", cfg.Snake.Reversal)
	return settings{file: cfg, runtime: rc, interval: interval}, nil
}

// defaultVariant picks the variant matching the configured reversal policy.
func (s settings) defaultVariant() (string, error) {
	policy, err := snake.ParseReversalPolicy(s.file.Snake.Reversal)
	if err != nil {
		return "", err
	}
	return snake.VariantID(policy), nil
}
