package manager

import (
	"caneat/game/entity"
	"caneat/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks a candidate head against the walls and the chain as it
// is before the move. The current tail counts: it has not been trimmed yet.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if snake != nil && snake.Occupies(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
