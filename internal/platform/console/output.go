package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Output writes frames to a terminal. It implements snake.RenderSink.
type Output struct {
	w    io.Writer
	sink *snake.ScreenSink
}

// NewOutput creates a sink painting a width x height screen to w.
func NewOutput(w io.Writer, width, height int) *Output {
	return &Output{w: w, sink: snake.NewScreenSink(core.NewScreen(width, height))}
}

// Clear wipes the terminal and hides the cursor.
func (o *Output) Clear() error {
	_, err := io.WriteString(o.w, hideCursor+clearScreen+cursorHome)
	return err
}

// Draw paints one frame.
func (o *Output) Draw(snap snake.Snapshot) error {
	if err := o.sink.Draw(snap); err != nil {
		return err
	}
	return o.flush()
}

// SessionEnd paints the final frame with the score banner.
func (o *Output) SessionEnd(score int, reason snake.EndReason) error {
	if err := o.sink.SessionEnd(score, reason); err != nil {
		return err
	}
	return o.flush()
}

// Restore shows the cursor again and moves below the frame.
func (o *Output) Restore() error {
	_, err := fmt.Fprintf(o.w, "\x1b[%d;1H%s\r\n", o.sink.Screen.Height(), showCursor)
	return err
}

func (o *Output) flush() error {
	// Raw mode does not translate \n into \r\n.
	frame := strings.ReplaceAll(tui.RenderScreen(o.sink.Screen), "\n", "\r\n")
	_, err := io.WriteString(o.w, cursorHome+frame)
	return err
}
