package ui

import (
	"caneat/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Commands are the host actions requested during one frame.
type Commands struct {
	Start       bool
	SpeedUp     bool
	SpeedDown   bool
	ToggleMusic bool
	Reload      bool
}

var arrowKeys = map[int32]input.Key{
	rl.KeyUp:    input.KeyUp,
	rl.KeyDown:  input.KeyDown,
	rl.KeyLeft:  input.KeyLeft,
	rl.KeyRight: input.KeyRight,
}

// Controls polls raylib keyboard and pointer state. Pointer presses stand in
// for touches; raylib maps the first touch to the left mouse button.
type Controls struct {
	adapter  *input.Adapter
	pressing bool
	pressX   float32
	pressY   float32
}

func NewControls(adapter *input.Adapter) *Controls {
	return &Controls{adapter: adapter}
}

// Poll forwards direction input to the adapter and returns host commands.
// playing is the round status at the start of the frame.
func (c *Controls) Poll(playing bool) Commands {
	for key, k := range arrowKeys {
		if rl.IsKeyPressed(key) {
			c.adapter.Key(k)
		}
	}

	var cmd Commands
	if !playing && (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace)) {
		cmd.Start = true
	}
	if rl.IsKeyPressed(rl.KeyPageUp) || rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		cmd.SpeedUp = true
	}
	if rl.IsKeyPressed(rl.KeyPageDown) || rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		cmd.SpeedDown = true
	}
	if rl.IsKeyPressed(rl.KeyM) {
		cmd.ToggleMusic = true
	}
	if rl.IsKeyPressed(rl.KeyR) {
		cmd.Reload = true
	}

	pos := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		c.pressing = true
		c.pressX, c.pressY = pos.X, pos.Y
		c.adapter.TouchStart(pos.X, pos.Y)
	}
	if c.pressing && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		c.pressing = false
		c.adapter.TouchEnd(pos.X, pos.Y)
		if !playing {
			if _, swipe := input.ClassifySwipe(pos.X-c.pressX, pos.Y-c.pressY, input.MinSwipeDistance); !swipe {
				cmd.Start = true
			}
		}
	}
	return cmd
}
