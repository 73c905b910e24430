package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGameOver is returned by Tick once the session has ended.
var ErrGameOver = errors.New("snake: game is over")

// ErrNotStarted is returned by Tick on a game that was never reset.
var ErrNotStarted = errors.New("snake: game not started")

// ErrInvalidStart is returned when a fixed start cell is not in the interior.
var ErrInvalidStart = errors.New("snake: start position must be inside the wall")

// ReversalPolicy decides what happens when the player steers straight back.
type ReversalPolicy int

const (
	// ReversalCollide accepts the new heading; the head then runs into the neck.
	ReversalCollide ReversalPolicy = iota
	// ReversalReject ignores a 180° turn while the snake has a body.
	ReversalReject
)

func (p ReversalPolicy) String() string {
	if p == ReversalReject {
		return "reject"
	}
	return "collide"
}

// ParseReversalPolicy accepts "collide" or "reject".
func ParseReversalPolicy(s string) (ReversalPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "collide":
		return ReversalCollide, nil
	case "reject":
		return ReversalReject, nil
	default:
		return ReversalCollide, fmt.Errorf("snake: unknown reversal policy %q", s)
	}
}

// EndReason records why a session stopped.
type EndReason string

const (
	EndNone EndReason = ""
	EndWall EndReason = "wall" // head entered the wall ring
	EndSelf EndReason = "self" // head entered a body segment
	EndFull EndReason = "full" // no interior cell left for food
	EndQuit EndReason = "quit" // player quit
)

// Config describes one session.
type Config struct {
	Width          int
	Height         int
	Seed           int64
	StartDirection Direction
	Start          *core.Coord // nil picks a random interior cell
	Reversal       ReversalPolicy
	FoodAttempts   int
}

// ConfigFromRuntime builds a session config from the platform config.
func ConfigFromRuntime(rc core.RuntimeConfig, policy ReversalPolicy) (Config, error) {
	dir := DirUp
	if rc.StartDir != "" {
		d, err := ParseDirection(rc.StartDir)
		if err != nil {
			return Config{}, err
		}
		dir = d
	}
	return Config{
		Width:          rc.BoardW,
		Height:         rc.BoardH,
		Seed:           rc.Seed,
		StartDirection: dir,
		Reversal:       policy,
		FoodAttempts:   rc.FoodAttempts,
	}, nil
}

// Game owns the board, snake, food and score and advances them one tick
// at a time. It is not safe for concurrent use.
type Game struct {
	policy ReversalPolicy
	sink   RenderSink

	cfg    Config
	rng    *rand.Rand
	board  Board
	snake  *Snake
	food   Food
	score  int
	tick   uint64
	over   bool
	reason EndReason
}

// NewGame creates a live session that reports to sink.
// A nil sink discards render requests.
func NewGame(cfg Config, sink RenderSink) (*Game, error) {
	g := &Game{policy: cfg.Reversal, sink: sink}
	if g.sink == nil {
		g.sink = NopSink{}
	}
	if err := g.init(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// init places the snake and the first food.
func (g *Game) init(cfg Config) error {
	board, err := NewBoard(cfg.Height, cfg.Width)
	if err != nil {
		return err
	}
	if cfg.Start != nil && !board.IsInterior(*cfg.Start) {
		return fmt.Errorf("%w: %v on a %dx%d board", ErrInvalidStart, *cfg.Start, cfg.Width, cfg.Height)
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = board
	g.score = 0
	g.tick = 0
	g.over = false
	g.reason = EndNone

	head := board.RandomInteriorPosition(g.rng)
	if cfg.Start != nil {
		head = *cfg.Start
	}
	g.snake = NewSnake(head, cfg.StartDirection)

	g.food = Food{}
	if err := g.food.Relocate(board, g.snake, g.rng, cfg.FoodAttempts); err != nil {
		return fmt.Errorf("snake: place first food: %w", err)
	}
	return nil
}

// Tick runs one simulation step with at most one steering input.
func (g *Game) Tick(in Input) error {
	if g.snake == nil {
		return ErrNotStarted
	}
	if g.over {
		return ErrGameOver
	}
	g.tick++

	if d, ok := in.Direction(); ok {
		g.steer(d)
	}

	g.snake.Advance()
	g.assertOnGrid()

	switch {
	case g.snake.HasWallCollision(g.board):
		return g.end(EndWall)
	case g.snake.HasSelfCollision():
		return g.end(EndSelf)
	}

	if g.snake.Head() == g.food.Position() {
		g.score++
		g.snake.Grow()
		if err := g.food.Relocate(g.board, g.snake, g.rng, g.cfg.FoodAttempts); err != nil {
			if errors.Is(err, ErrBoardFull) {
				return g.end(EndFull)
			}
			return err
		}
	}

	if err := g.sink.Draw(g.Snapshot()); err != nil {
		return fmt.Errorf("snake: draw tick %d: %w", g.tick, err)
	}
	return nil
}

// steer applies a heading change according to the reversal policy.
func (g *Game) steer(d Direction) {
	if g.cfg.Reversal == ReversalReject && g.snake.Len() > 1 && d == g.snake.Direction().Opposite() {
		return
	}
	g.snake.SetDirection(d)
}

// assertOnGrid panics if the head left the modeled grid. A single step
// from the interior can reach the wall ring but never beyond it.
func (g *Game) assertOnGrid() {
	if !g.board.Contains(g.snake.Head()) {
		panic(fmt.Sprintf("snake: head %v outside the %dx%d grid", g.snake.Head(), g.board.Width(), g.board.Height()))
	}
}

// Quit ends a live session at the player's request. Quitting a finished
// session is a no-op.
func (g *Game) Quit() error {
	if g.over {
		return nil
	}
	return g.end(EndQuit)
}

// end moves the session to its terminal state and reports the final score.
func (g *Game) end(reason EndReason) error {
	if reason == EndSelf && g.snake.Len() == 1 {
		panic("snake: self collision reported for a snake without a body")
	}
	g.over = true
	g.reason = reason
	if err := g.sink.SessionEnd(g.score, reason); err != nil {
		return fmt.Errorf("snake: report session end: %w", err)
	}
	return nil
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.over
}

// Score returns the number of food cells eaten.
func (g *Game) Score() int {
	return g.score
}

// Reason returns why the session ended, or EndNone while live.
func (g *Game) Reason() EndReason {
	return g.reason
}

// Board returns the playing field.
func (g *Game) Board() Board {
	return g.board
}

// --- registry.Game ---

// ID returns the variant identifier.
func (g *Game) ID() string {
	return VariantID(g.policy)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.policy == ReversalReject {
		return "Snake (Strict)"
	}
	return "Snake"
}

// Reset starts a new session on the same variant and sink.
func (g *Game) Reset(rc core.RuntimeConfig) error {
	cfg, err := ConfigFromRuntime(rc, g.policy)
	if err != nil {
		return err
	}
	if g.sink == nil {
		g.sink = NopSink{}
	}
	return g.init(cfg)
}

// Step maps a platform action onto one tick. Quit ends the session
// without advancing; platform-only actions count as no input.
func (g *Game) Step(a core.Action) (core.StepResult, error) {
	var err error
	switch {
	case a == core.ActionQuit:
		err = g.Quit()
	case a.IsDirection():
		d, _ := directionFor(a)
		err = g.Tick(Steer(d))
	default:
		err = g.Tick(NoInput)
	}
	return core.StepResult{State: g.State()}, err
}

// Render draws the current state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Ticks:    g.tick,
		GameOver: g.over,
		Reason:   string(g.reason),
	}
}

// Input is the per-tick steering event: a heading or nothing.
type Input struct {
	dir Direction
	ok  bool
}

// NoInput keeps the current heading.
var NoInput = Input{}

// Steer returns an input that turns the snake to d.
func Steer(d Direction) Input {
	return Input{dir: d, ok: true}
}

// Direction returns the requested heading, if any.
func (in Input) Direction() (Direction, bool) {
	return in.dir, in.ok
}
