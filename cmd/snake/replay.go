package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/journal"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagReplayList    bool
	flagReplayWatch   bool
	flagReplayDelete  bool
	flagReplayVariant string
	flagReplayLimit   int
)

var replayCmd = &cobra.Command{
	Use:   "replay [id]",
	Short: "Browse, verify or watch journaled sessions",
	Long: `Every finished session is journaled with its seed, board and the input
of each tick. A replay re-runs the simulation from that record and checks
that it reaches the same score, tick count and ending.

Without an id an interactive journal browser is shown; picking a row
watches that session.

Examples:
  snake replay                 # Browse the journal
  snake replay --list          # Print recent sessions
  snake replay 12              # Verify session 12
  snake replay 12 --watch      # Watch session 12 play back
  snake replay 12 --delete     # Remove session 12 from the journal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayList, "list", false, "Print recent sessions and exit")
	replayCmd.Flags().BoolVar(&flagReplayWatch, "watch", false, "Watch the replay instead of only verifying it")
	replayCmd.Flags().BoolVar(&flagReplayDelete, "delete", false, "Remove the session from the journal")
	replayCmd.Flags().StringVar(&flagReplayVariant, "variant", "", "Only list sessions of this variant")
	replayCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of sessions to list")
}

func runReplay(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReplayList {
		return printSessions(store)
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if flagReplayDelete {
			return fmt.Errorf("--delete needs a session id")
		}
		sess, err := tui.RunJournal(store, flagReplayVariant, s.runtime.ScreenW, s.runtime.ScreenH)
		if err != nil || sess == nil {
			return err
		}
		return watchSession(*sess, s)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid session id %q", args[0])
	}
	if flagReplayDelete {
		if err := store.DeleteSession(id); err != nil {
			return err
		}
		fmt.Printf("Session %d deleted\n", id)
		return nil
	}

	sess, err := store.Session(id)
	if err != nil {
		return err
	}

	if flagReplayWatch {
		return watchSession(sess, s)
	}
	return verifySession(sess)
}

// printSessions lists recent journal entries.
func printSessions(store *storage.Store) error {
	sessions, err := store.RecentSessions(flagReplayVariant, flagReplayLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions journaled yet.")
		return nil
	}

	fmt.Printf("  %-6s  %-14s  %6s  %7s  %-5s  %s\n", "ID", "Variant", "Score", "Ticks", "End", "Date")
	fmt.Printf("  %-6s  %-14s  %6s  %7s  %-5s  %s\n", "--", "-------", "-----", "-----", "---", "----")
	for _, sess := range sessions {
		fmt.Printf("  %-6d  %-14s  %6d  %7d  %-5s  %s\n",
			sess.ID, sess.Variant, sess.Score, sess.Ticks, sess.EndReason, sess.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// verifySession re-runs a session and reports whether it matches.
func verifySession(sess storage.Session) error {
	got, err := journal.Verify(context.Background(), sess)
	if errors.Is(err, journal.ErrMismatch) {
		logger.Error("replay diverged", "id", sess.ID, "error", err)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("Session %d verified: %s, %d ticks, ended by %s\n", sess.ID, sess.Variant, got.Ticks, got.Reason)
	fmt.Printf("Total score is: %d\n", got.Score)
	return nil
}

// watchSession plays a session back in the TUI.
func watchSession(sess storage.Session, s settings) error {
	actions, err := core.DecodeActions(sess.Inputs)
	if err != nil {
		return err
	}
	game, err := journal.NewGame(sess, nil)
	if err != nil {
		return err
	}

	rc := s.runtime
	rc.BoardW = sess.Width
	rc.BoardH = sess.Height

	title := fmt.Sprintf("Replay #%d (%s)", sess.ID, sess.Variant)
	if err := tui.RunReplay(game, title, actions, rc, s.interval); err != nil {
		return err
	}

	fmt.Printf("Total score is: %d\n", game.State().Score)
	return nil
}
