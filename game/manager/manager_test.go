package manager

import (
	"io"
	"testing"
	"time"

	"caneat/game/entity"
	"caneat/game/types"

	"github.com/charmbracelet/log"
)

func TestCheckCollision(t *testing.T) {
	cm := NewCollisionManager(types.NewGrid())
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.RIGHT)
	snake.Move(types.Point{X: 6, Y: 5}, types.RIGHT)

	tests := []struct {
		name string
		pos  types.Point
		want types.CollisionType
	}{
		{"free cell", types.Point{X: 7, Y: 5}, types.NoCollision},
		{"right wall", types.Point{X: 20, Y: 5}, types.WallCollision},
		{"top wall", types.Point{X: 3, Y: -1}, types.WallCollision},
		{"body", types.Point{X: 6, Y: 5}, types.SelfCollision},
		{"tail still counts", types.Point{X: 5, Y: 5}, types.SelfCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckCollision(tt.pos, snake); got != tt.want {
				t.Errorf("CheckCollision(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestGenerateFoodAvoidsSnake(t *testing.T) {
	grid := types.NewGrid()
	fm := NewFoodManager(grid, NewCollisionManager(grid), 42)
	snake := entity.NewSnake(types.Point{X: 0, Y: 0}, types.RIGHT)
	for x := 1; x < grid.Width; x++ {
		snake.Move(types.Point{X: x, Y: 0}, types.RIGHT)
	}

	for i := 0; i < 500; i++ {
		food, ok := fm.GenerateFood(snake)
		if !ok {
			t.Fatalf("Expected a free cell")
		}
		if snake.Occupies(food) || !grid.InBounds(food) {
			t.Fatalf("Food placed on %v", food)
		}
	}
}

func TestGenerateFoodFindsLastFreeCell(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	fm := NewFoodManager(grid, NewCollisionManager(grid), 1)
	snake := &entity.Snake{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 1 {
				continue
			}
			snake.Body = append(snake.Body, types.Point{X: x, Y: y})
			snake.Directions = append(snake.Directions, types.RIGHT)
		}
	}

	food, ok := fm.GenerateFood(snake)
	if !ok || food != (types.Point{X: 2, Y: 1}) {
		t.Errorf("Expected (2,1), got %v ok=%v", food, ok)
	}

	snake.Body = append(snake.Body, types.Point{X: 2, Y: 1})
	if _, ok := fm.GenerateFood(snake); ok {
		t.Errorf("Full grid must report no free cell")
	}
}

type countingResetter struct{ n int }

func (r *countingResetter) Reset() { r.n++ }

func newTestStateManager() (*StateManager, *countingResetter, *[]types.GameStatus) {
	r := &countingResetter{}
	sm := NewStateManager(r, log.New(io.Discard))
	var seen []types.GameStatus
	sm.AddListener(ListenerFuncs{Status: func(s types.GameStatus) { seen = append(seen, s) }})
	return sm, r, &seen
}

func TestStateManagerTransitions(t *testing.T) {
	sm, r, seen := newTestStateManager()

	if sm.Status() != types.StatusStart {
		t.Fatalf("Initial status should be START, got %v", sm.Status())
	}
	if sm.SetStatus(types.StatusGameOver) {
		t.Errorf("GAMEOVER must not be reachable from START")
	}
	if !sm.Start() {
		t.Fatalf("Start should be accepted")
	}
	if r.n != 1 {
		t.Errorf("Entering PLAYING should reset once, got %d", r.n)
	}
	if sm.RoundID() == "" {
		t.Errorf("Round id should be set on start")
	}
	firstRound := sm.RoundID()

	if sm.SetStatus(types.StatusPlaying) {
		t.Errorf("PLAYING -> PLAYING is not a transition")
	}
	if r.n != 1 {
		t.Errorf("Re-entering PLAYING must not reset, got %d resets", r.n)
	}

	sm.UpdateScore(3)
	if !sm.SetStatus(types.StatusGameOver) {
		t.Fatalf("PLAYING -> GAMEOVER should be accepted")
	}
	if sm.SetStatus(types.StatusWin) {
		t.Errorf("GAMEOVER -> WIN must be rejected")
	}
	if !sm.Restart() {
		t.Fatalf("Restart should be accepted")
	}
	if r.n != 2 || sm.RoundID() == firstRound {
		t.Errorf("Restart should reset and mint a new round id")
	}

	want := []types.GameStatus{types.StatusPlaying, types.StatusGameOver, types.StatusPlaying}
	if len(*seen) != len(want) {
		t.Fatalf("Expected %d notifications, got %v", len(want), *seen)
	}
	for i := range want {
		if (*seen)[i] != want[i] {
			t.Errorf("Notification %d = %v, want %v", i, (*seen)[i], want[i])
		}
	}
}

func TestStateManagerSessionStats(t *testing.T) {
	sm, _, _ := newTestStateManager()
	var scores []int
	sm.AddListener(ListenerFuncs{Score: func(s int) { scores = append(scores, s) }})

	sm.Start()
	sm.UpdateScore(1)
	sm.UpdateScore(5)
	sm.SetStatus(types.StatusGameOver)
	sm.Restart()
	sm.UpdateScore(2)
	sm.SetStatus(types.StatusWin)

	if sm.GetHighScore() != 5 {
		t.Errorf("Expected high score 5, got %d", sm.GetHighScore())
	}
	history := sm.GetScoreHistory()
	if len(history) != 2 || history[0] != 5 || history[1] != 2 {
		t.Errorf("Unexpected history %v", history)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 score notifications, got %v", scores)
	}
}

func TestTickManagerSchedule(t *testing.T) {
	base := time.Unix(0, 0)
	tm := NewTickManager(150 * time.Millisecond)

	if tm.Due(base.Add(time.Second)) {
		t.Fatalf("Stopped scheduler must not fire")
	}

	tm.Start(base)
	if tm.Due(base.Add(100 * time.Millisecond)) {
		t.Errorf("Tick fired before the interval elapsed")
	}
	if !tm.Due(base.Add(150 * time.Millisecond)) {
		t.Errorf("Tick should fire at the interval")
	}
	if tm.Due(base.Add(160 * time.Millisecond)) {
		t.Errorf("Only one tick per interval")
	}
	if !tm.Due(base.Add(300 * time.Millisecond)) {
		t.Errorf("Second tick should fire at 300ms")
	}

	// A long stall yields one tick, then the schedule resyncs.
	stall := base.Add(2 * time.Second)
	if !tm.Due(stall) {
		t.Errorf("Tick should fire after a stall")
	}
	if tm.Due(stall.Add(10 * time.Millisecond)) {
		t.Errorf("Stall must not produce a burst of ticks")
	}
	if tm.Count() != 3 {
		t.Errorf("Expected 3 ticks, got %d", tm.Count())
	}

	tm.Stop()
	if tm.Due(stall.Add(time.Second)) {
		t.Errorf("Stopped scheduler must not fire")
	}
}

func TestTickManagerSetIntervalRearms(t *testing.T) {
	base := time.Unix(0, 0)
	tm := NewTickManager(500 * time.Millisecond)
	tm.Start(base)

	tm.SetInterval(50*time.Millisecond, base.Add(400*time.Millisecond))
	if tm.Interval() != 50*time.Millisecond {
		t.Fatalf("Interval not updated")
	}
	if tm.Due(base.Add(440 * time.Millisecond)) {
		t.Errorf("Re-armed schedule fired early")
	}
	if !tm.Due(base.Add(450 * time.Millisecond)) {
		t.Errorf("Re-armed schedule should fire one new interval after the change")
	}
}
