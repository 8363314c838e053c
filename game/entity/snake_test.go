package entity

import (
	"testing"

	"caneat/game/types"
)

func TestSnakeMoveKeepsHistoryParallel(t *testing.T) {
	s := NewSnake(types.Point{X: 10, Y: 10}, types.RIGHT)

	s.Move(types.Point{X: 11, Y: 10}, types.RIGHT)
	s.Move(types.Point{X: 11, Y: 9}, types.UP)

	if s.Len() != 3 || len(s.Directions) != 3 {
		t.Fatalf("Expected 3 segments and 3 headings, got %d and %d", s.Len(), len(s.Directions))
	}
	if s.GetHead() != (types.Point{X: 11, Y: 9}) {
		t.Errorf("Unexpected head %v", s.GetHead())
	}
	if s.Directions[0] != types.UP || s.Directions[1] != types.RIGHT {
		t.Errorf("Unexpected headings %v", s.Directions)
	}

	s.RemoveTail()
	if s.Len() != 2 || len(s.Directions) != 2 {
		t.Fatalf("Expected 2 segments after RemoveTail, got %d/%d", s.Len(), len(s.Directions))
	}
	if s.Occupies(types.Point{X: 10, Y: 10}) {
		t.Errorf("Tail cell should be free after RemoveTail")
	}
}

func TestSnakeRemoveTailKeepsHead(t *testing.T) {
	s := NewSnake(types.Point{X: 3, Y: 3}, types.LEFT)
	s.RemoveTail()
	if s.Len() != 1 || len(s.Directions) != 1 {
		t.Errorf("Head must survive RemoveTail, got len %d", s.Len())
	}
}

func TestSnakeCloneDoesNotAlias(t *testing.T) {
	s := NewSnake(types.Point{X: 1, Y: 1}, types.DOWN)
	c := s.Clone()
	c.Body[0] = types.Point{X: 7, Y: 7}
	c.Directions[0] = types.UP
	if s.Body[0] != (types.Point{X: 1, Y: 1}) || s.Directions[0] != types.DOWN {
		t.Errorf("Clone shares storage with the original")
	}
}
