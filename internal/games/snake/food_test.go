package snake

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRelocateAvoidsSnakeAndWall(t *testing.T) {
	b, err := NewBoard(24, 24)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	s := &Snake{
		head: core.C(5, 5),
		body: []core.Coord{core.C(5, 6), core.C(5, 7), core.C(6, 7), core.C(7, 7)},
	}

	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		var f Food
		if err := f.Relocate(b, s, rng, DefaultFoodAttempts); err != nil {
			t.Fatalf("seed %d: Relocate() failed: %v", seed, err)
		}
		p := f.Position()
		if !b.IsInterior(p) {
			t.Errorf("seed %d: food %v on the wall", seed, p)
		}
		if s.Occupies(p) {
			t.Errorf("seed %d: food %v on the snake", seed, p)
		}
	}
}

func TestRelocateFallsBackToScan(t *testing.T) {
	// 5x5 board: 9 interior cells, the snake covers all but (3,3).
	b, err := NewBoard(5, 5)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	s := &Snake{head: core.C(1, 1)}
	for c := range b.Interior() {
		if c != core.C(1, 1) && c != core.C(3, 3) {
			s.body = append(s.body, c)
		}
	}

	var f Food
	// Zero attempts skips sampling entirely.
	if err := f.Relocate(b, s, rand.New(rand.NewSource(1)), 0); err != nil {
		t.Fatalf("Relocate() failed: %v", err)
	}
	if f.Position() != core.C(3, 3) {
		t.Errorf("food = %v, expected the only free cell (3,3)", f.Position())
	}
}

func TestRelocateBoardFull(t *testing.T) {
	b, err := NewBoard(3, 4)
	if err != nil {
		t.Fatalf("NewBoard() failed: %v", err)
	}
	s := &Snake{head: core.C(1, 1), body: []core.Coord{core.C(2, 1)}}

	f := Food{pos: core.C(2, 1)}
	err = f.Relocate(b, s, rand.New(rand.NewSource(1)), DefaultFoodAttempts)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("Relocate() error = %v, expected ErrBoardFull", err)
	}
	if f.Position() != core.C(2, 1) {
		t.Error("food should stay put when the board is full")
	}
}
