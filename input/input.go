// Package input turns keyboard and swipe gestures into direction intents.
package input

import (
	"math"

	"caneat/game/types"
)

// MinSwipeDistance is the smallest displacement, in surface units, that counts
// as a swipe rather than a tap.
const MinSwipeDistance = 30

// Key is a host-independent key code.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// IntentSink is the engine side of the adapter.
type IntentSink interface {
	SetIntent(dir types.Direction) bool
	Status() types.GameStatus
}

// Adapter feeds keyboard and touch input into one buffered intent.
type Adapter struct {
	sink     IntentSink
	minSwipe float32
	touching bool
	startX   float32
	startY   float32
}

func NewAdapter(sink IntentSink) *Adapter {
	return &Adapter{sink: sink, minSwipe: MinSwipeDistance}
}

// KeyDirection maps arrow keys to directions.
func KeyDirection(k Key) (types.Direction, bool) {
	switch k {
	case KeyUp:
		return types.UP, true
	case KeyDown:
		return types.DOWN, true
	case KeyLeft:
		return types.LEFT, true
	case KeyRight:
		return types.RIGHT, true
	}
	return types.NONE, false
}

// ClassifySwipe maps a displacement to a direction. The larger axis wins and
// ties go vertical; nothing is returned below the threshold.
func ClassifySwipe(dx, dy, minDistance float32) (types.Direction, bool) {
	absDx := float32(math.Abs(float64(dx)))
	absDy := float32(math.Abs(float64(dy)))
	if absDx <= minDistance && absDy <= minDistance {
		return types.NONE, false
	}
	if absDx > absDy {
		if dx > 0 {
			return types.RIGHT, true
		}
		return types.LEFT, true
	}
	if dy > 0 {
		return types.DOWN, true
	}
	return types.UP, true
}

func (a *Adapter) playing() bool {
	return a.sink.Status() == types.StatusPlaying
}

// Key handles a key press.
func (a *Adapter) Key(k Key) bool {
	if !a.playing() {
		return false
	}
	dir, ok := KeyDirection(k)
	if !ok {
		return false
	}
	return a.sink.SetIntent(dir)
}

// TouchStart records where a gesture began.
func (a *Adapter) TouchStart(x, y float32) {
	if !a.playing() {
		return
	}
	a.touching = true
	a.startX, a.startY = x, y
}

// TouchEnd classifies the finished gesture. The recorded start is always cleared.
func (a *Adapter) TouchEnd(x, y float32) bool {
	if !a.touching {
		return false
	}
	a.touching = false
	if !a.playing() {
		return false
	}
	dir, ok := ClassifySwipe(x-a.startX, y-a.startY, a.minSwipe)
	if !ok {
		return false
	}
	return a.sink.SetIntent(dir)
}
