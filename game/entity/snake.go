package entity

import (
	"snake-infinity/game/types"
)

// Snake is the player's body. Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Point // unit vector scaled by cell size
	Score     int
	capacity  int
	lastMove  types.Point
}

// NewSnake builds a vertical snake of the given length with its head at head,
// tail trailing below it, heading up.
func NewSnake(grid types.Grid, head types.Point, length, capacity int) *Snake {
	if length < 1 {
		length = 1
	}
	if capacity < length {
		capacity = length
	}
	body := make([]types.Point, length, capacity)
	for i := range body {
		body[i] = types.Point{X: head.X, Y: head.Y + i*grid.CellSize}
	}
	dir := types.Point{X: 0, Y: -grid.CellSize}
	return &Snake{
		Body:      body,
		Direction: dir,
		capacity:  capacity,
		lastMove:  dir,
	}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Cap returns the maximum number of segments.
func (s *Snake) Cap() int {
	return s.capacity
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// SetHead replaces the head position, used by edge wraparound.
func (s *Snake) SetHead(p types.Point) {
	s.Body[0] = p
}

// Move shifts every segment one index toward the tail and advances the head.
func (s *Snake) Move() {
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = s.Body[0].Add(s.Direction)
	s.lastMove = s.Direction
}

// Grow duplicates the last segment. It returns false when the snake is at capacity.
func (s *Snake) Grow() bool {
	if len(s.Body) >= s.capacity {
		return false
	}
	s.Body = append(s.Body, s.Body[len(s.Body)-1])
	return true
}

// SetDirection changes heading. Zero vectors and reversals of the last
// executed move are ignored.
func (s *Snake) SetDirection(dir types.Point) bool {
	if dir.IsZero() || dir == s.lastMove.Neg() {
		return false
	}
	s.Direction = dir
	return true
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
