package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // Score line plus separator

	wallRune = '*'
	bodyRune = 'o'
	foodRune = '@'
)

// RenderSnapshot draws the HUD, the board and, once the session is over,
// a banner with the final score. The board is centered horizontally.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if snap.Width == 0 {
		return
	}

	renderHUD(dst, snap)

	if !Fits(dst.Width(), dst.Height(), snap.Width, snap.Height) {
		needW, needH := MinScreen(snap.Width, snap.Height)
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	offX := (dst.Width() - snap.Width) / 2
	offY := hudHeight

	for y := range snap.Height {
		for x := range snap.Width {
			if x == 0 || y == 0 || x == snap.Width-1 || y == snap.Height-1 {
				dst.SetColored(offX+x, offY+y, wallRune, core.ColorRed)
			}
		}
	}

	dst.SetColored(offX+snap.Food.X, offY+snap.Food.Y, foodRune, core.ColorYellow)
	for _, seg := range snap.Body {
		dst.SetColored(offX+seg.X, offY+seg.Y, bodyRune, core.ColorGreen)
	}
	dst.SetColored(offX+snap.Head.X, offY+snap.Head.Y, snap.Dir.Glyph(), core.ColorBrightGreen)

	if snap.Over {
		renderOverlay(dst, endMessage(snap.Reason), fmt.Sprintf("Total score is: %d", snap.Score))
	}
}

// MinScreen returns the smallest screen that shows a board of the given
// size together with the HUD.
func MinScreen(boardW, boardH int) (w, h int) {
	return boardW, boardH + hudHeight
}

// Fits reports whether a screen of screenW x screenH can show the board.
func Fits(screenW, screenH, boardW, boardH int) bool {
	w, h := MinScreen(boardW, boardH)
	return screenW >= w && screenH >= h
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake - Score: %d  Length: %d", snap.Score, snap.Len())
	dst.DrawText(0, 0, hud, core.ColorWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorCyan)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}

func endMessage(r EndReason) string {
	switch r {
	case EndWall:
		return "Game Over - hit the wall"
	case EndSelf:
		return "Game Over - bit your tail"
	case EndFull:
		return "You filled the board!"
	case EndQuit:
		return "Quit"
	default:
		return "Game Over"
	}
}
