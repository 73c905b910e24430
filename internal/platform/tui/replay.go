package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ReplayModel plays back journaled actions one per tick.
type ReplayModel struct {
	game     registry.Game
	title    string
	actions  []core.Action
	next     int
	screen   *core.Screen
	boardW   int
	boardH   int
	interval time.Duration
	gen      uint64
	keys     GameKeyMap
	paused   bool
	quitting bool
	err      error
}

// NewReplayModel wraps an already reset game and its recorded actions.
// cfg supplies the screen and board sizes.
func NewReplayModel(game registry.Game, title string, actions []core.Action, cfg core.RuntimeConfig, interval time.Duration) ReplayModel {
	return ReplayModel{
		game:     game,
		title:    title,
		actions:  actions,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		boardW:   cfg.BoardW,
		boardH:   cfg.BoardH,
		interval: interval,
		gen:      nextGen(),
		keys:     DefaultGameKeyMap(),
	}
}

// Init starts the tick loop.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.interval, m.gen)
}

// Update handles messages.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		visible := snake.Fits(m.screen.Width(), m.screen.Height(), m.boardW, m.boardH)
		if visible && !m.paused && !m.game.State().GameOver && m.next < len(m.actions) {
			a := m.actions[m.next]
			m.next++
			if _, err := m.game.Step(a); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, tickCmd(m.interval, m.gen)
	}
	return m, nil
}

// View renders the replayed game with a status line.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	status := fmt.Sprintf(" %s  step %d/%d", m.title, m.next, len(m.actions))
	if m.paused {
		status += "  [paused]"
	}
	return RenderScreen(m.screen) + "\n" + status
}

// Err returns the error that stopped playback, if any.
func (m ReplayModel) Err() error {
	return m.err
}

// RunReplay watches a replay in the terminal until it ends and the user quits.
func RunReplay(game registry.Game, title string, actions []core.Action, cfg core.RuntimeConfig, interval time.Duration) error {
	if interval <= 0 {
		interval = intervalFor(cfg.TickRate)
	}
	p := tea.NewProgram(
		NewReplayModel(game, title, actions, cfg, interval),
		tea.WithAltScreen(),
	)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(ReplayModel); ok {
		return m.Err()
	}
	return nil
}
