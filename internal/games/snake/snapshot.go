package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures everything a renderer or a determinism check needs.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int
	Head   core.Coord
	Body   []core.Coord // Newest segment first
	Dir    Direction
	Food   core.Coord
	Score  int
	Over   bool
	Reason EndReason
}

// Len returns the number of occupied cells, head included.
func (s Snapshot) Len() int {
	return len(s.Body) + 1
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	if g.snake == nil {
		return Snapshot{}
	}
	return Snapshot{
		Tick:   g.tick,
		Width:  g.board.Width(),
		Height: g.board.Height(),
		Head:   g.snake.Head(),
		Body:   g.snake.Body(),
		Dir:    g.snake.Direction(),
		Food:   g.food.Position(),
		Score:  g.score,
		Over:   g.over,
		Reason: g.reason,
	}
}

// RenderSink receives render requests from the game.
type RenderSink interface {
	// Clear wipes the output.
	Clear() error
	// Draw shows the state after a tick.
	Draw(snap Snapshot) error
	// SessionEnd reports the final score once the session stops.
	SessionEnd(score int, reason EndReason) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Clear() error                    { return nil }
func (NopSink) Draw(Snapshot) error             { return nil }
func (NopSink) SessionEnd(int, EndReason) error { return nil }

// ScreenSink paints into a screen buffer.
type ScreenSink struct {
	Screen *core.Screen
	last   Snapshot
}

// NewScreenSink creates a sink drawing into dst.
func NewScreenSink(dst *core.Screen) *ScreenSink {
	return &ScreenSink{Screen: dst}
}

// Clear blanks the screen.
func (s *ScreenSink) Clear() error {
	s.Screen.Clear()
	return nil
}

// Draw renders the snapshot.
func (s *ScreenSink) Draw(snap Snapshot) error {
	s.last = snap
	RenderSnapshot(s.Screen, snap)
	return nil
}

// SessionEnd redraws the last frame with the game-over banner.
func (s *ScreenSink) SessionEnd(score int, reason EndReason) error {
	s.last.Score = score
	s.last.Over = true
	s.last.Reason = reason
	RenderSnapshot(s.Screen, s.last)
	return nil
}
