package game

import (
	"time"

	"caneat/game/manager"
)

// Loop drives Game ticks from the host frame callback. The tick task runs only
// while the round is PLAYING and is cancelled as soon as it leaves it.
type Loop struct {
	game  *Game
	ticks *manager.TickManager
	round string
}

func NewLoop(g *Game, speedMs int) *Loop {
	return &Loop{
		game:  g,
		ticks: manager.NewTickManager(time.Duration(speedMs) * time.Millisecond),
	}
}

// SetSpeed re-arms the tick task with a new interval. Game state is untouched.
func (l *Loop) SetSpeed(speedMs int, now time.Time) {
	l.ticks.SetInterval(time.Duration(speedMs)*time.Millisecond, now)
}

func (l *Loop) Interval() time.Duration {
	return l.ticks.Interval()
}

// Update runs at most one tick and reports whether one ran.
func (l *Loop) Update(now time.Time) bool {
	if !l.game.state.IsPlaying() {
		l.ticks.Stop()
		return false
	}
	// A restart between two updates must not inherit the old deadline.
	if round := l.game.state.RoundID(); round != l.round {
		l.round = round
		l.ticks.Stop()
	}
	if !l.ticks.Running() {
		l.ticks.Start(now)
		return false
	}
	if !l.ticks.Due(now) {
		return false
	}
	l.game.Tick()
	return true
}

// Close cancels the tick task.
func (l *Loop) Close() {
	l.ticks.Stop()
}
