// Package console runs the game straight on a raw terminal without
// Bubble Tea: stdin is switched to raw mode and frames are written as
// ANSI text.
package console

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Input reads key presses from a raw terminal. It implements
// snake.InputSource.
type Input struct {
	fd      int
	state   *term.State
	actions chan core.Action
	errc    chan error
	err     error // Set once the reader stops
}

// NewInput switches f to raw mode and starts reading keys from it.
// Close restores the terminal.
func NewInput(f *os.File) (*Input, error) {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	in := newInput(f)
	in.fd = fd
	in.state = state
	return in, nil
}

// newInput starts the reader goroutine on r.
func newInput(r io.Reader) *Input {
	in := &Input{
		fd:      -1,
		actions: make(chan core.Action, 64),
		errc:    make(chan error, 1),
	}
	go in.read(r)
	return in
}

func (in *Input) read(r io.Reader) {
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, a := range ParseKeys(buf[:n]) {
			in.actions <- a
		}
		if err != nil {
			in.errc <- err
			return
		}
	}
}

// Poll waits for the whole interval and returns the latest steering key
// pressed during it. Quit returns at once.
func (in *Input) Poll(ctx context.Context, wait time.Duration) (core.Action, error) {
	if in.err != nil {
		if errors.Is(in.err, io.EOF) {
			return core.ActionQuit, nil
		}
		return core.ActionNone, in.err
	}

	timer := time.NewTimer(max(wait, 0))
	defer timer.Stop()

	latest := core.ActionNone
	for {
		select {
		case <-ctx.Done():
			return core.ActionNone, ctx.Err()
		case a := <-in.actions:
			if a == core.ActionQuit {
				return a, nil
			}
			latest = a
		case err := <-in.errc:
			// Everything read before the error is already queued.
			in.err = err
			for {
				select {
				case a := <-in.actions:
					if a == core.ActionQuit {
						return a, nil
					}
					latest = a
				default:
					if latest != core.ActionNone {
						return latest, nil
					}
					return in.Poll(ctx, 0)
				}
			}
		case <-timer.C:
			return latest, nil
		}
	}
}

// Close restores the terminal state.
func (in *Input) Close() error {
	if in.state == nil {
		return nil
	}
	return term.Restore(in.fd, in.state)
}

// ParseKeys maps raw terminal bytes to actions. Arrow keys arrive as
// ESC [ A..D; wasd and vim keys are accepted too. Unknown bytes are dropped.
func ParseKeys(b []byte) []core.Action {
	var out []core.Action
	for i := 0; i < len(b); i++ {
		if b[i] == 0x1b && i+2 < len(b) && (b[i+1] == '[' || b[i+1] == 'O') {
			switch b[i+2] {
			case 'A':
				out = append(out, core.ActionUp)
			case 'B':
				out = append(out, core.ActionDown)
			case 'C':
				out = append(out, core.ActionRight)
			case 'D':
				out = append(out, core.ActionLeft)
			}
			i += 2
			continue
		}
		switch b[i] {
		case 'w', 'W', 'k':
			out = append(out, core.ActionUp)
		case 's', 'S', 'j':
			out = append(out, core.ActionDown)
		case 'a', 'A', 'h':
			out = append(out, core.ActionLeft)
		case 'd', 'D', 'l':
			out = append(out, core.ActionRight)
		case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
			out = append(out, core.ActionQuit)
		}
	}
	return out
}
