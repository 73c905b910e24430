package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/journal"
	"github.com/vovakirdan/tui-snake/internal/platform/console"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagPlain bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing snake. Without a variant a picker is shown.

Controls:
  Arrows/WASD/HJKL - Steer
  P/Space          - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Variants:
  snake         - Turning straight back bites the neck and ends the game
  snake_strict  - Turning straight back is ignored

The --plain mode drives the raw terminal directly, one frame per tick,
and has no pause or restart.

Examples:
  snake play
  snake play snake_strict
  snake play --seed 42 --speed fast
  snake play --plain --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagPlain, "plain", false, "Play on the raw terminal without the full-screen UI")
}

func runPlay(_ *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	variant := ""
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("unknown variant %q, run 'snake list' to see available variants", variant)
		}
	}

	if variant == "" {
		if flagPlain {
			if variant, err = s.defaultVariant(); err != nil {
				return err
			}
		} else {
			if variant, err = tui.RunPicker(s.runtime); err != nil {
				return err
			}
			if variant == "" {
				return nil // User quit the picker
			}
		}
	}

	// Open the journal; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session journal", "path", flagDBPath, "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var final core.GameState
	if flagPlain {
		final, err = playPlain(variant, s, store)
	} else {
		final, err = playTUI(variant, s, store)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Total score is: %d\n", final.Score)
	return nil
}

// playTUI runs the full-screen Bubble Tea game.
func playTUI(variant string, s settings, store *storage.Store) (core.GameState, error) {
	game, err := registry.Create(variant)
	if err != nil {
		return core.GameState{}, err
	}

	opts := []tui.GameOption{tui.WithLogger(logger), tui.WithInterval(s.interval)}
	if store != nil {
		opts = append(opts, tui.WithJournal(store))
	}
	return tui.Run(game, s.runtime, opts...)
}

// playPlain runs one session on the raw terminal.
func playPlain(variant string, s settings, store *storage.Store) (core.GameState, error) {
	rc := s.runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	policy, err := snake.PolicyFor(variant)
	if err != nil {
		return core.GameState{}, err
	}
	cfg, err := snake.ConfigFromRuntime(rc, policy)
	if err != nil {
		return core.GameState{}, err
	}

	out := console.NewOutput(os.Stdout, rc.ScreenW, rc.ScreenH)
	g, err := snake.NewGame(cfg, out)
	if err != nil {
		return core.GameState{}, err
	}

	in, err := console.NewInput(os.Stdin)
	if err != nil {
		return core.GameState{}, fmt.Errorf("cannot switch terminal to raw mode: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := snake.NewRecorder(in)
	runErr := snake.Run(ctx, g, rec, s.interval)

	if err := in.Close(); err != nil {
		logger.Warn("could not restore terminal", "error", err)
	}
	if err := out.Restore(); err != nil {
		logger.Warn("could not restore cursor", "error", err)
	}

	final := g.State()
	if runErr != nil {
		return final, runErr
	}

	if store != nil {
		r := journal.Recording{Variant: variant, Config: rc, Actions: rec.Actions()}
		id, err := r.Save(store, final)
		if err != nil {
			logger.Warn("could not journal session", "error", err)
		} else {
			logger.Info("session journaled", "id", id, "score", final.Score, "reason", final.Reason)
		}
	}
	return final, nil
}
