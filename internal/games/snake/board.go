package snake

import (
	"errors"
	"fmt"
	"iter"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidBoard is returned when a board is too small to have an interior.
var ErrInvalidBoard = errors.New("snake: board needs at least 3 rows and 3 columns")

// Board is the fixed rectangular playing field. The outermost ring of
// cells is the wall; everything inside it is the interior.
// Immutable after creation.
type Board struct {
	height int
	width  int
}

// NewBoard creates a height x width board.
func NewBoard(height, width int) (Board, error) {
	if height < 3 || width < 3 {
		return Board{}, fmt.Errorf("%w: got %dx%d", ErrInvalidBoard, width, height)
	}
	return Board{height: height, width: width}, nil
}

// Height returns the number of rows, wall included.
func (b Board) Height() int {
	return b.height
}

// Width returns the number of columns, wall included.
func (b Board) Width() int {
	return b.width
}

// Bounds returns the whole modeled grid.
func (b Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.width, b.height)
}

func (b Board) interior() core.Rect {
	return b.Bounds().Inset(1)
}

// Contains reports whether c lies on the modeled grid, wall included.
func (b Board) Contains(c core.Coord) bool {
	return b.Bounds().Contains(c)
}

// IsInterior reports whether 0 < x < width-1 and 0 < y < height-1.
func (b Board) IsInterior(c core.Coord) bool {
	return b.interior().Contains(c)
}

// IsWall reports whether c lies on the outer ring.
func (b Board) IsWall(c core.Coord) bool {
	return b.Contains(c) && !b.IsInterior(c)
}

// InteriorSize returns the number of interior cells.
func (b Board) InteriorSize() int {
	return b.interior().Area()
}

// RandomInteriorPosition samples an interior cell uniformly.
func (b Board) RandomInteriorPosition(rng *rand.Rand) core.Coord {
	r := b.interior()
	return core.C(r.X+rng.Intn(r.W), r.Y+rng.Intn(r.H))
}

// Interior yields every interior cell in row-major order.
func (b Board) Interior() iter.Seq[core.Coord] {
	r := b.interior()
	return func(yield func(core.Coord) bool) {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if !yield(core.C(x, y)) {
					return
				}
			}
		}
	}
}
