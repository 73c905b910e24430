// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// model that armed it, so a model replaced mid-session does not keep
// ticking its successor.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var lastGen atomic.Uint64

// nextGen returns a fresh tick generation.
func nextGen() uint64 {
	return lastGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the interval. Each handler re-arms it, so pacing is fixed.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// intervalFor converts a tick rate to an interval, treating non-positive
// rates as one tick per second.
func intervalFor(tickRate int) time.Duration {
	if tickRate <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(tickRate)
}
