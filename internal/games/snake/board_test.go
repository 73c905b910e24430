package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewBoardRejectsSmallDimensions(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		wantErr       bool
	}{
		{"minimum", 3, 3, false},
		{"original size", 24, 24, false},
		{"too short", 2, 10, true},
		{"too narrow", 10, 2, true},
		{"zero", 0, 0, true},
		{"negative", -5, 24, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := NewBoard(tc.height, tc.width)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidBoard) {
					t.Errorf("NewBoard(%d, %d) error = %v, expected ErrInvalidBoard", tc.height, tc.width, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBoard(%d, %d) failed: %v", tc.height, tc.width, err)
			}
			if b.Height() != tc.height || b.Width() != tc.width {
				t.Errorf("board = %dx%d, expected %dx%d", b.Width(), b.Height(), tc.width, tc.height)
			}
		})
	}
}

func TestBoardIsInterior(t *testing.T) {
	b, err := NewBoard(24, 24)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	tests := []struct {
		name     string
		c        core.Coord
		interior bool
		wall     bool
	}{
		{"center", core.C(12, 12), true, false},
		{"top-left interior", core.C(1, 1), true, false},
		{"bottom-right interior", core.C(22, 22), true, false},
		{"left wall", core.C(0, 5), false, true},
		{"right wall", core.C(23, 5), false, true},
		{"top wall", core.C(5, 0), false, true},
		{"bottom wall", core.C(5, 23), false, true},
		{"corner", core.C(0, 0), false, true},
		{"off grid", core.C(24, 5), false, false},
		{"negative", core.C(-1, -1), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.IsInterior(tc.c); got != tc.interior {
				t.Errorf("IsInterior(%v) = %v, expected %v", tc.c, got, tc.interior)
			}
			if got := b.IsWall(tc.c); got != tc.wall {
				t.Errorf("IsWall(%v) = %v, expected %v", tc.c, got, tc.wall)
			}
			// Classification is a pure function of (board, position).
			for range 3 {
				if b.IsInterior(tc.c) != tc.interior {
					t.Fatalf("IsInterior(%v) changed between calls", tc.c)
				}
			}
		})
	}
}

func TestBoardRandomInteriorPosition(t *testing.T) {
	b, err := NewBoard(5, 7)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	rng := rand.New(rand.NewSource(7))

	seen := make(map[core.Coord]bool)
	for range 2000 {
		p := b.RandomInteriorPosition(rng)
		if !b.IsInterior(p) {
			t.Fatalf("RandomInteriorPosition() = %v, not interior", p)
		}
		seen[p] = true
	}

	if len(seen) != b.InteriorSize() {
		t.Errorf("sampled %d distinct cells, expected all %d interior cells", len(seen), b.InteriorSize())
	}
}

func TestBoardInteriorIteration(t *testing.T) {
	b, err := NewBoard(4, 5)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}

	var cells []core.Coord
	for c := range b.Interior() {
		cells = append(cells, c)
	}

	expected := []core.Coord{core.C(1, 1), core.C(2, 1), core.C(3, 1), core.C(1, 2), core.C(2, 2), core.C(3, 2)}
	if len(cells) != len(expected) {
		t.Fatalf("Interior() yielded %d cells, expected %d", len(cells), len(expected))
	}
	for i := range cells {
		if cells[i] != expected[i] {
			t.Errorf("Interior()[%d] = %v, expected %v", i, cells[i], expected[i])
		}
	}

	// Early break must stop the iteration.
	n := 0
	for range b.Interior() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("break after 2 cells, counted %d", n)
	}
}
