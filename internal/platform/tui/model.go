package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/journal"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// GameModel is the Bubble Tea model for one running game.
// Key presses are buffered and the latest one is applied on the next tick.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	saver     journal.Saver
	logger    *log.Logger
	config    core.RuntimeConfig
	interval  time.Duration
	gen       uint64
	rec       *journal.Recording
	pending   core.Action
	gameState core.GameState
	keys      GameKeyMap
	help      help.Model
	paused    bool
	saved     bool
	allowBack bool // Esc returns to the picker instead of doing nothing
	quitting  bool
	back      bool
	err       error
}

// GameOption configures a GameModel.
type GameOption func(*GameModel)

// WithJournal saves every finished session to s.
func WithJournal(s journal.Saver) GameOption {
	return func(m *GameModel) { m.saver = s }
}

// WithLogger sets the logger for journal and simulation errors.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) { m.logger = l }
}

// WithInterval sets the tick interval, overriding the config's tick rate.
func WithInterval(d time.Duration) GameOption {
	return func(m *GameModel) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithBackToMenu lets Esc leave a finished or paused game.
func WithBackToMenu() GameOption {
	return func(m *GameModel) { m.allowBack = true }
}

// NewGameModel resets game with cfg and wraps it in a model.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts ...GameOption) (GameModel, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return GameModel{}, err
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		logger:    log.Default(),
		config:    cfg,
		interval:  intervalFor(cfg.TickRate),
		gen:       nextGen(),
		rec:       journal.NewRecording(game.ID(), cfg),
		gameState: game.State(),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m, nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.interval, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The board size is fixed for the session; only the viewport changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.allowBack && (m.gameState.GameOver || m.paused) && key.Matches(msg, m.keys.Back) {
		if !m.gameState.GameOver {
			m.step(core.ActionQuit)
		}
		m.back = true
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		if !m.gameState.GameOver {
			m.step(core.ActionQuit)
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !m.gameState.GameOver {
			m.paused = !m.paused
		}

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.restart()
		}

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.pending = a
		}
	}

	return m, nil
}

// handleTick processes simulation ticks. The simulation is frozen while
// the board does not fit the window.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused && !m.gameState.GameOver && m.boardVisible() {
		a := m.pending
		m.pending = core.ActionNone
		m.step(a)
	}
	return m, tickCmd(m.interval, m.gen)
}

// boardVisible reports whether the screen can show the whole board.
func (m GameModel) boardVisible() bool {
	return snake.Fits(m.screen.Width(), m.screen.Height(), m.config.BoardW, m.config.BoardH)
}

// step runs one simulation step and journals the session once it ends.
func (m *GameModel) step(a core.Action) {
	result, err := m.game.Step(a)
	m.rec.Add(a)
	m.gameState = result.State
	if err != nil {
		m.logger.Error("simulation step failed", "game", m.game.ID(), "tick", m.gameState.Ticks, "error", err)
		m.err = err
		m.gameState.GameOver = true
	}
	if m.gameState.GameOver {
		m.save()
	}
}

// save journals the finished session once.
func (m *GameModel) save() {
	if m.saved || m.saver == nil {
		return
	}
	m.saved = true
	id, err := m.rec.Save(m.saver, m.gameState)
	if err != nil {
		m.logger.Warn("could not journal session", "game", m.game.ID(), "error", err)
		return
	}
	m.logger.Debug("session journaled", "id", id, "game", m.game.ID(), "score", m.gameState.Score, "reason", m.gameState.Reason)
}

// restart begins a new session with a fresh seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("restart failed", "game", m.game.ID(), "error", err)
		m.err = err
		return
	}
	m.rec.Reset(m.config)
	m.gameState = m.game.State()
	m.pending = core.ActionNone
	m.paused = false
	m.saved = false
	m.err = nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorCyan)
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the state after the last step.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Err returns the simulation error that stopped the game, if any.
func (m GameModel) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the picker.
func (m GameModel) BackToMenu() bool {
	return m.back
}

// Run plays game in the terminal until the player quits and returns the
// state of the last session.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...GameOption) (core.GameState, error) {
	model, err := NewGameModel(game, cfg, opts...)
	if err != nil {
		return core.GameState{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	m, ok := finalModel.(GameModel)
	if !ok {
		return game.State(), nil
	}
	return m.State(), m.Err()
}
