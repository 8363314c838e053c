package game

import (
	"caneat/game/entity"
	"caneat/game/manager"
	"caneat/game/types"

	"github.com/charmbracelet/log"
)

// Snapshot is a copy of everything the renderer and HUD read.
type Snapshot struct {
	Body       []types.Point
	Directions []types.Direction
	Food       types.Point
	Score      int
	Status     types.GameStatus
	RoundID    string
}

// Game is the simulation engine. All mutation happens in Reset and Tick; the
// host calls both from a single goroutine.
type Game struct {
	Grid         types.Grid
	snake        *entity.Snake
	food         types.Point
	score        int
	nextDir      types.Direction // pending intent
	lastDir      types.Direction // applied on the latest tick
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	state        *manager.StateManager
	logger       *log.Logger
}

// NewGame builds an engine in START status. seed drives food placement.
func NewGame(logger *log.Logger, seed uint64) *Game {
	grid := types.NewGrid()
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		Grid:         grid,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, seed),
		logger:       logger,
	}
	g.state = manager.NewStateManager(g, logger)
	g.Reset()
	return g
}

// State exposes the lifecycle controller the UI layer drives.
func (g *Game) State() *manager.StateManager {
	return g.state
}

// Reset restores the starting layout and announces a zero score.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(types.StartPosition, types.StartDirection)
	g.food = types.StartFood
	g.score = 0
	g.nextDir = types.StartDirection
	g.lastDir = types.StartDirection
	g.state.UpdateScore(0)
}

// SetIntent buffers the direction for the next tick. Unknown values and
// reversals of the last applied direction are ignored.
func (g *Game) SetIntent(dir types.Direction) bool {
	if !dir.Valid() || dir == g.lastDir.Opposite() {
		return false
	}
	g.nextDir = dir
	return true
}

// Tick advances the chain by one cell. It is a no-op outside PLAYING.
func (g *Game) Tick() {
	if !g.state.IsPlaying() {
		return
	}

	dir := g.nextDir
	g.lastDir = dir
	newHead := g.snake.GetHead().Add(dir.ToPoint())

	if collision := g.collisionMgr.CheckCollision(newHead, g.snake); collision != types.NoCollision {
		g.logger.Debug("Collision", "round", g.state.RoundID(), "type", collision, "at", newHead)
		g.state.SetStatus(types.StatusGameOver)
		return
	}

	g.snake.Move(newHead, dir)

	if !g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.snake.RemoveTail()
		return
	}

	g.score++
	g.state.UpdateScore(g.score)
	if g.score >= types.WinScore {
		g.state.SetStatus(types.StatusWin)
		return
	}

	food, ok := g.foodMgr.GenerateFood(g.snake)
	if !ok {
		g.logger.Warn("No free cell for food, ending round", "round", g.state.RoundID(), "length", g.snake.Len())
		g.state.SetStatus(types.StatusWin)
		return
	}
	g.food = food
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.food
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Status() types.GameStatus {
	return g.state.Status()
}

// PendingDirection is the buffered intent the next tick will apply.
func (g *Game) PendingDirection() types.Direction {
	return g.nextDir
}

// LastDirection is the direction applied on the most recent tick.
func (g *Game) LastDirection() types.Direction {
	return g.lastDir
}

func (g *Game) Snapshot() Snapshot {
	s := g.snake.Clone()
	return Snapshot{
		Body:       s.Body,
		Directions: s.Directions,
		Food:       g.food,
		Score:      g.score,
		Status:     g.state.Status(),
		RoundID:    g.state.RoundID(),
	}
}
