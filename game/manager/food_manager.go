package manager

import (
	"caneat/game/entity"
	"caneat/game/types"

	"golang.org/x/exp/rand"
)

// spawnAttemptsPerCell bounds rejection sampling before falling back to a scan.
const spawnAttemptsPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a uniformly random free cell. It returns false only when
// every cell is occupied by the snake.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	attempts := fm.grid.Cells() * spawnAttemptsPerCell
	for i := 0; i < attempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
	return fm.firstFreeCell(snake)
}

func (fm *FoodManager) firstFreeCell(snake *entity.Snake) (types.Point, bool) {
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				return p, true
			}
		}
	}
	return types.Point{}, false
}
