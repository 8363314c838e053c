package input

import (
	"testing"

	"caneat/game/types"
)

type fakeSink struct {
	status  types.GameStatus
	last    types.Direction
	applied types.Direction
	calls   int
}

func (f *fakeSink) SetIntent(dir types.Direction) bool {
	f.calls++
	if dir == f.last.Opposite() {
		return false
	}
	f.applied = dir
	return true
}

func (f *fakeSink) Status() types.GameStatus { return f.status }

func TestClassifySwipe(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float32
		want   types.Direction
		ok     bool
	}{
		{"tap", 10, -12, types.NONE, false},
		{"exactly threshold", 30, 0, types.NONE, false},
		{"right", 80, 10, types.RIGHT, true},
		{"left", -31, 5, types.LEFT, true},
		{"down", 3, 45, types.DOWN, true},
		{"up", -20, -60, types.UP, true},
		{"tie goes vertical", 40, -40, types.UP, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifySwipe(tt.dx, tt.dy, MinSwipeDistance)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ClassifySwipe(%v,%v) = %v,%v want %v,%v", tt.dx, tt.dy, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestAdapterKeys(t *testing.T) {
	sink := &fakeSink{status: types.StatusPlaying, last: types.RIGHT}
	a := NewAdapter(sink)

	if !a.Key(KeyUp) || sink.applied != types.UP {
		t.Errorf("Arrow up should set UP, got %v", sink.applied)
	}
	if a.Key(KeyLeft) {
		t.Errorf("Reversal must be refused by the sink")
	}
	if a.Key(KeyNone) {
		t.Errorf("Unknown keys are ignored")
	}
}

func TestAdapterIgnoresInputOutsidePlaying(t *testing.T) {
	sink := &fakeSink{status: types.StatusGameOver, last: types.RIGHT}
	a := NewAdapter(sink)

	a.Key(KeyDown)
	a.TouchStart(0, 0)
	a.TouchEnd(0, 100)
	if sink.calls != 0 {
		t.Errorf("Sink called %d times while not playing", sink.calls)
	}
}

func TestAdapterSwipe(t *testing.T) {
	sink := &fakeSink{status: types.StatusPlaying, last: types.RIGHT}
	a := NewAdapter(sink)

	if a.TouchEnd(10, 10) {
		t.Errorf("TouchEnd without TouchStart must be ignored")
	}

	a.TouchStart(100, 100)
	if a.TouchEnd(110, 105) {
		t.Errorf("A tap must not change direction")
	}

	a.TouchStart(100, 100)
	if !a.TouchEnd(100, 200) || sink.applied != types.DOWN {
		t.Errorf("Downward swipe should set DOWN, got %v", sink.applied)
	}

	a.TouchStart(100, 100)
	if a.TouchEnd(20, 100) {
		t.Errorf("Leftward swipe reverses RIGHT and must be refused")
	}
}
