package snake

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// InputSource delivers at most one action per poll. Poll waits no longer
// than wait and returns core.ActionNone when nothing arrived.
type InputSource interface {
	Poll(ctx context.Context, wait time.Duration) (core.Action, error)
}

// Run drives g at a fixed pace until the session ends, the source asks to
// quit, the context is canceled, or a sink or source fails. Each tick waits
// for input for at most one interval and then sleeps out the remainder,
// so the speed does not depend on how fast keys arrive.
func Run(ctx context.Context, g *Game, src InputSource, interval time.Duration) error {
	if err := g.sink.Clear(); err != nil {
		return fmt.Errorf("snake: clear: %w", err)
	}
	if err := g.sink.Draw(g.Snapshot()); err != nil {
		return fmt.Errorf("snake: draw: %w", err)
	}

	for !g.Over() {
		start := time.Now()

		a, err := src.Poll(ctx, interval)
		if err != nil {
			return fmt.Errorf("snake: poll input: %w", err)
		}
		if a == core.ActionQuit {
			return g.Quit()
		}

		if err := sleep(ctx, interval-time.Since(start)); err != nil {
			return err
		}

		if _, err := g.Step(a); err != nil {
			return err
		}
	}
	return nil
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Recorder wraps an InputSource and keeps the action each poll produced,
// so a finished session can be journaled and replayed.
type Recorder struct {
	src     InputSource
	actions []core.Action
}

// NewRecorder wraps src.
func NewRecorder(src InputSource) *Recorder {
	return &Recorder{src: src}
}

// Poll forwards to the wrapped source and records what reached the game.
func (r *Recorder) Poll(ctx context.Context, wait time.Duration) (core.Action, error) {
	a, err := r.src.Poll(ctx, wait)
	if err != nil {
		return a, err
	}
	if _, ok := a.Code(); ok {
		r.actions = append(r.actions, a)
	} else {
		r.actions = append(r.actions, core.ActionNone)
	}
	return a, nil
}

// Actions returns the recorded sequence.
func (r *Recorder) Actions() []core.Action {
	return r.actions
}

// Script replays a fixed action sequence, then asks to quit.
type Script struct {
	actions []core.Action
	next    int
}

// NewScript creates a source that yields actions in order.
func NewScript(actions []core.Action) *Script {
	return &Script{actions: actions}
}

// Poll returns the next scripted action without waiting.
func (s *Script) Poll(ctx context.Context, _ time.Duration) (core.Action, error) {
	if err := ctx.Err(); err != nil {
		return core.ActionNone, err
	}
	if s.next >= len(s.actions) {
		return core.ActionQuit, nil
	}
	a := s.actions[s.next]
	s.next++
	return a, nil
}
