package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the head, its heading and the trailing body segments.
// body[0] is the cell the head vacated most recently; the last element is
// the oldest segment.
type Snake struct {
	head    core.Coord
	dir     Direction
	body    []core.Coord
	growing bool // If true, keep the tail on the next Advance
}

// NewSnake creates a body-less snake.
func NewSnake(head core.Coord, dir Direction) *Snake {
	return &Snake{head: head, dir: dir}
}

// Head returns the head position.
func (s *Snake) Head() core.Coord {
	return s.head
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Body returns a copy of the trailing segments, newest first.
func (s *Snake) Body() []core.Coord {
	return slices.Clone(s.body)
}

// Len returns the number of occupied cells, head included.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

// Occupies reports whether the head or any body segment is at c.
func (s *Snake) Occupies(c core.Coord) bool {
	return s.head == c || slices.Contains(s.body, c)
}

// SetDirection reassigns the heading unconditionally. A reversal into the
// body is not rejected here; the next Advance runs the head into the neck.
func (s *Snake) SetDirection(d Direction) {
	s.dir = d
}

// Advance moves the head one cell along the heading. The old head becomes
// the newest body segment and the oldest segment is dropped, unless a
// growth is pending, in which case the body gets one longer.
func (s *Snake) Advance() {
	prev := s.head
	s.head = s.head.Add(s.dir.Delta())

	s.body = slices.Insert(s.body, 0, prev)
	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow makes the next Advance keep the trailing segment.
func (s *Snake) Grow() {
	s.growing = true
}

// HasWallCollision reports whether the head is outside the board interior.
func (s *Snake) HasWallCollision(b Board) bool {
	return !b.IsInterior(s.head)
}

// HasSelfCollision reports whether the head sits on a body segment.
func (s *Snake) HasSelfCollision() bool {
	return slices.Contains(s.body, s.head)
}
