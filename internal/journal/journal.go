// Package journal turns finished sessions into replayable storage records
// and re-runs them to check that the simulation reproduces the outcome.
package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ErrMismatch is returned when a replay ends differently than recorded.
var ErrMismatch = errors.New("journal: replay does not match the recorded outcome")

// Recording collects the per-tick actions of one session.
type Recording struct {
	Variant string
	Config  core.RuntimeConfig
	Actions []core.Action
}

// NewRecording starts an empty recording for a variant and config.
func NewRecording(variant string, cfg core.RuntimeConfig) *Recording {
	return &Recording{Variant: variant, Config: cfg}
}

// Add records the action consumed by one step. Actions without a journal
// code reached the game as no input and are stored that way.
func (r *Recording) Add(a core.Action) {
	if _, ok := a.Code(); !ok {
		a = core.ActionNone
	}
	r.Actions = append(r.Actions, a)
}

// Reset drops recorded actions and switches to a new config.
func (r *Recording) Reset(cfg core.RuntimeConfig) {
	r.Config = cfg
	r.Actions = r.Actions[:0]
}

// Session builds the storage record for a finished session.
func (r *Recording) Session(final core.GameState) (storage.Session, error) {
	inputs, err := core.EncodeActions(r.Actions)
	if err != nil {
		return storage.Session{}, err
	}
	return storage.Session{
		Variant:      r.Variant,
		Seed:         r.Config.Seed,
		Width:        r.Config.BoardW,
		Height:       r.Config.BoardH,
		StartDir:     r.Config.StartDir,
		FoodAttempts: r.Config.FoodAttempts,
		Inputs:       inputs,
		Score:        final.Score,
		Ticks:        final.Ticks,
		EndReason:    final.Reason,
	}, nil
}

// Saver persists finished sessions. *storage.Store satisfies it.
type Saver interface {
	SaveSession(sess storage.Session) (int64, error)
}

// Save stores a finished session and returns its journal ID.
func (r *Recording) Save(s Saver, final core.GameState) (int64, error) {
	sess, err := r.Session(final)
	if err != nil {
		return 0, err
	}
	return s.SaveSession(sess)
}

// RuntimeConfig rebuilds the config a session was played with.
func RuntimeConfig(sess storage.Session) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.BoardW = sess.Width
	rc.BoardH = sess.Height
	rc.Seed = sess.Seed
	rc.StartDir = sess.StartDir
	rc.FoodAttempts = sess.FoodAttempts
	return rc
}

// NewGame recreates the session's starting position reporting to sink.
func NewGame(sess storage.Session, sink snake.RenderSink) (*snake.Game, error) {
	policy, err := snake.PolicyFor(sess.Variant)
	if err != nil {
		return nil, err
	}
	cfg, err := snake.ConfigFromRuntime(RuntimeConfig(sess), policy)
	if err != nil {
		return nil, err
	}
	return snake.NewGame(cfg, sink)
}

// Replay re-runs a journaled session, pacing ticks by interval.
// A zero interval replays as fast as possible.
func Replay(ctx context.Context, sess storage.Session, sink snake.RenderSink, interval time.Duration) (core.GameState, error) {
	actions, err := core.DecodeActions(sess.Inputs)
	if err != nil {
		return core.GameState{}, err
	}
	g, err := NewGame(sess, sink)
	if err != nil {
		return core.GameState{}, err
	}
	if err := snake.Run(ctx, g, snake.NewScript(actions), interval); err != nil {
		return g.State(), err
	}
	return g.State(), nil
}

// Verify replays a session without rendering and checks the outcome.
func Verify(ctx context.Context, sess storage.Session) (core.GameState, error) {
	got, err := Replay(ctx, sess, nil, 0)
	if err != nil {
		return got, err
	}
	if got.Score != sess.Score || got.Ticks != sess.Ticks || got.Reason != sess.EndReason {
		return got, fmt.Errorf("%w: recorded score %d after %d ticks (%s), replay gave %d after %d ticks (%s)",
			ErrMismatch, sess.Score, sess.Ticks, sess.EndReason, got.Score, got.Ticks, got.Reason)
	}
	return got, nil
}
