package entity

import (
	"caneat/game/types"
)

// Snake is the chain of occupied cells, head first. Directions runs parallel
// to Body and records the heading each segment last moved in; it only feeds
// sprite orientation.
type Snake struct {
	Body       []types.Point
	Directions []types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:       []types.Point{startPos},
		Directions: []types.Direction{dir},
	}
}

// Move prepends a new head moving in dir.
func (s *Snake) Move(newHead types.Point, dir types.Direction) {
	s.Body = append([]types.Point{newHead}, s.Body...)
	s.Directions = append([]types.Direction{dir}, s.Directions...)
}

// RemoveTail drops the last segment. The head is never removed.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
		s.Directions = s.Directions[:len(s.Directions)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
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

// Clone returns a deep copy safe to hand to the renderer.
func (s *Snake) Clone() *Snake {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	dirs := make([]types.Direction, len(s.Directions))
	copy(dirs, s.Directions)
	return &Snake{Body: body, Directions: dirs}
}
