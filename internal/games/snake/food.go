package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is returned by Relocate when the snake covers the interior.
var ErrBoardFull = errors.New("snake: no free interior cell for food")

// DefaultFoodAttempts bounds random placement before falling back to a scan.
const DefaultFoodAttempts = 64

// Food is the single edible cell on the board.
type Food struct {
	pos core.Coord
}

// Position returns the food cell.
func (f Food) Position() core.Coord {
	return f.pos
}

// Relocate moves the food to an interior cell the snake does not occupy.
// It samples up to maxAttempts random interior cells, then scans the
// interior in row-major order and picks one of the free cells found.
// The food is left untouched when ErrBoardFull is returned.
func (f *Food) Relocate(b Board, s *Snake, rng *rand.Rand, maxAttempts int) error {
	for range maxAttempts {
		p := b.RandomInteriorPosition(rng)
		if !s.Occupies(p) {
			f.pos = p
			return nil
		}
	}

	free := make([]core.Coord, 0, max(b.InteriorSize()-s.Len(), 0))
	for p := range b.Interior() {
		if !s.Occupies(p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return ErrBoardFull
	}
	f.pos = free[rng.Intn(len(free))]
	return nil
}
