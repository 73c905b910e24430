package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type memSaver struct {
	sessions []storage.Session
}

func (s *memSaver) SaveSession(sess storage.Session) (int64, error) {
	s.sessions = append(s.sessions, sess)
	return int64(len(s.sessions)), nil
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, saver *memSaver, opts ...GameOption) GameModel {
	t.Helper()
	g, err := registry.Create("snake")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	cfg := core.DefaultConfig()
	cfg.ScreenH = 40 // Room for the 24x24 board, the HUD and help
	cfg.Seed = 99
	m, err := NewGameModel(g, cfg, append([]GameOption{WithJournal(saver)}, opts...)...)
	if err != nil {
		t.Fatalf("NewGameModel() failed: %v", err)
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return gm
}

func TestLatestKeyWinsWithinTick(t *testing.T) {
	m := newTestModel(t, &memSaver{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, TickMsg{Gen: m.gen})

	if m.State().Ticks != 1 {
		t.Fatalf("Ticks = %d, expected 1", m.State().Ticks)
	}
	if got := m.rec.Actions; len(got) != 1 || got[0] != core.ActionRight {
		t.Errorf("recorded %v, expected [Right]", got)
	}
	if m.pending != core.ActionNone {
		t.Errorf("pending = %v, expected None after the tick", m.pending)
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t, &memSaver{})

	m = update(t, m, TickMsg{Gen: m.gen + 1000})
	if m.State().Ticks != 0 {
		t.Errorf("Ticks = %d, a foreign tick must not step the game", m.State().Ticks)
	}
}

func TestPauseStopsTicks(t *testing.T) {
	m := newTestModel(t, &memSaver{})

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{Gen: m.gen})
	if m.State().Ticks != 0 {
		t.Errorf("Ticks = %d while paused, expected 0", m.State().Ticks)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say so")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{Gen: m.gen})
	if m.State().Ticks != 1 {
		t.Errorf("Ticks = %d after resume, expected 1", m.State().Ticks)
	}
}

func TestSmallWindowFreezesSimulation(t *testing.T) {
	saver := &memSaver{}
	m := newTestModel(t, saver)

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	for range 40 {
		m = update(t, m, TickMsg{Gen: m.gen})
	}

	if m.State().Ticks != 0 || m.State().GameOver {
		t.Errorf("state = %+v, the game must not advance while the board is hidden", m.State())
	}
	if len(saver.sessions) != 0 {
		t.Errorf("saved %d sessions while hidden, expected none", len(saver.sessions))
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("view should ask for a bigger window")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	m = update(t, m, TickMsg{Gen: m.gen})
	if m.State().Ticks != 1 {
		t.Errorf("Ticks = %d after enlarging, expected 1", m.State().Ticks)
	}
}

func TestBackFromPauseJournalsQuit(t *testing.T) {
	saver := &memSaver{}
	m := newTestModel(t, saver, WithBackToMenu())

	m = update(t, m, runeKey('p'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.BackToMenu() {
		t.Fatal("esc on a paused game should go back")
	}
	if len(saver.sessions) != 1 {
		t.Fatalf("saved %d sessions, expected 1", len(saver.sessions))
	}
	sess := saver.sessions[0]
	if sess.Inputs != "Q" || sess.EndReason != "quit" || sess.Ticks != 0 {
		t.Errorf("journaled %+v", sess)
	}
}

func TestReplayFreezesInSmallWindow(t *testing.T) {
	g, err := registry.Create("snake")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 5
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	m := NewReplayModel(g, "test", []core.Action{core.ActionNone, core.ActionNone}, cfg, 0)
	next, _ := m.Update(TickMsg{Gen: m.gen})
	m = next.(ReplayModel)
	if m.next != 0 || g.State().Ticks != 0 {
		t.Errorf("replay advanced to step %d in a %dx%d window", m.next, cfg.ScreenW, cfg.ScreenH)
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	next, _ = next.Update(TickMsg{Gen: m.gen})
	m = next.(ReplayModel)
	if m.next != 1 || g.State().Ticks != 1 {
		t.Errorf("replay at step %d, ticks %d, expected 1", m.next, g.State().Ticks)
	}
}

func TestQuitJournalsSession(t *testing.T) {
	saver := &memSaver{}
	m := newTestModel(t, saver)

	m = update(t, m, runeKey('q'))

	if !m.IsQuitting() {
		t.Fatal("q should quit")
	}
	if len(saver.sessions) != 1 {
		t.Fatalf("saved %d sessions, expected 1", len(saver.sessions))
	}
	sess := saver.sessions[0]
	if sess.Inputs != "Q" || sess.EndReason != "quit" || sess.Ticks != 0 || sess.Seed != 99 {
		t.Errorf("journaled %+v", sess)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	saver := &memSaver{}
	m := newTestModel(t, saver)

	// Restart is ignored while the game is live.
	m = update(t, m, runeKey('r'))
	if m.config.Seed != 99 {
		t.Fatal("restart should wait for game over")
	}

	for i := 0; i < 100 && !m.State().GameOver; i++ {
		m = update(t, m, TickMsg{Gen: m.gen})
	}
	if !m.State().GameOver {
		t.Fatal("heading straight on should reach a wall within 100 ticks")
	}
	if len(saver.sessions) != 1 {
		t.Fatalf("saved %d sessions, expected 1", len(saver.sessions))
	}

	m = update(t, m, runeKey('r'))
	if m.State().GameOver || m.State().Ticks != 0 {
		t.Errorf("state after restart = %+v", m.State())
	}
	if len(m.rec.Actions) != 0 {
		t.Errorf("recording should be cleared, has %d actions", len(m.rec.Actions))
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, '*', core.ColorRed)
	s.SetColored(1, 0, '*', core.ColorRed)
	s.Set(2, 0, 'x')

	out := RenderScreen(s)
	if !strings.Contains(out, "**") || !strings.Contains(out, "x") {
		t.Errorf("RenderScreen() = %q", out)
	}
}

func TestPickerSelects(t *testing.T) {
	m := NewPickerModel(80, 24)
	if len(m.items) < 2 {
		t.Fatalf("picker lists %d variants, expected both snake variants", len(m.items))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pm := next.(PickerModel)

	if pm.Selected() != m.items[1].ID {
		t.Errorf("Selected() = %q, expected %q", pm.Selected(), m.items[1].ID)
	}
}

func TestSessionUsesServerInterval(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenH = 40
	m := NewSessionModel(nil, cfg, 150*time.Millisecond, "tester", log.Default())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := next.(SessionModel)
	if sm.gameModel == nil {
		t.Fatal("enter should start the selected variant")
	}
	if sm.gameModel.interval != 150*time.Millisecond {
		t.Errorf("interval = %v, expected 150ms", sm.gameModel.interval)
	}
	if sm.gameModel.saver != nil {
		t.Error("a session without a store should not journal")
	}
}
