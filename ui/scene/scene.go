// Package scene turns a game snapshot into a draw plan. It holds all the
// geometry so the raylib layer only issues draw calls.
package scene

import (
	"caneat/game"
	"caneat/game/types"
)

// Segment art is 40 x 71.5 on an 800 px board, i.e. one cell wide.
const (
	assetWidth    = 40
	assetHeight   = 71.5
	foodRadiusDiv = 2.5
)

type Kind int

const (
	Background Kind = iota
	Food
	Head
	Body
)

func (k Kind) String() string {
	switch k {
	case Background:
		return "background"
	case Food:
		return "food"
	case Head:
		return "head"
	case Body:
		return "body"
	default:
		return "unknown"
	}
}

// Ready records which textures finished loading.
type Ready struct {
	Background bool
	Food       bool
	Head       bool
	Body       bool
}

func (r Ready) For(k Kind) bool {
	switch k {
	case Background:
		return r.Background
	case Food:
		return r.Food
	case Head:
		return r.Head
	case Body:
		return r.Body
	default:
		return false
	}
}

// Sprite is one item to draw. X and Y are the centre in screen pixels;
// Rotation is clockwise degrees around that centre.
type Sprite struct {
	Kind     Kind
	X, Y     float32
	W, H     float32
	Rotation float32
	Fallback bool
}

// Scene is the ordered draw plan for one frame.
type Scene struct {
	OriginX, OriginY float32
	Surface          float32
	Cell             float32
	Sprites          []Sprite
}

// Layout fits the square board into a width x height viewport, centred.
func Layout(width, height int) (originX, originY, surface, cell float32) {
	surface = float32(max(0, min(width, height)))
	originX = (float32(width) - surface) / 2
	originY = (float32(height) - surface) / 2
	cell = surface / types.GridSize
	return originX, originY, surface, cell
}

// Build lays out background, food, then the chain head first.
func Build(snap game.Snapshot, width, height int, ready Ready) Scene {
	ox, oy, surface, cell := Layout(width, height)
	sc := Scene{
		OriginX: ox,
		OriginY: oy,
		Surface: surface,
		Cell:    cell,
		Sprites: make([]Sprite, 0, len(snap.Body)+2),
	}

	sc.Sprites = append(sc.Sprites, Sprite{
		Kind:     Background,
		X:        ox + surface/2,
		Y:        oy + surface/2,
		W:        surface,
		H:        surface,
		Fallback: !ready.Background,
	})

	food := Sprite{
		Kind:     Food,
		X:        sc.centerX(snap.Food.X),
		Y:        sc.centerY(snap.Food.Y),
		W:        cell,
		H:        cell,
		Fallback: !ready.Food,
	}
	if food.Fallback {
		d := 2 * cell / foodRadiusDiv
		food.W, food.H = d, d
	}
	sc.Sprites = append(sc.Sprites, food)

	for i, p := range snap.Body {
		kind := Body
		if i == 0 {
			kind = Head
		}
		dir := types.NONE
		if i < len(snap.Directions) {
			dir = snap.Directions[i]
		}
		sc.Sprites = append(sc.Sprites, Sprite{
			Kind:     kind,
			X:        sc.centerX(p.X),
			Y:        sc.centerY(p.Y),
			W:        cell,
			H:        cell * assetHeight / assetWidth,
			Rotation: dir.Angle(),
			Fallback: !ready.For(kind),
		})
	}
	return sc
}

// FoodRadius is the fallback circle radius.
func (s Scene) FoodRadius() float32 {
	return s.Cell / foodRadiusDiv
}

func (s Scene) centerX(x int) float32 {
	return s.OriginX + (float32(x)+0.5)*s.Cell
}

func (s Scene) centerY(y int) float32 {
	return s.OriginY + (float32(y)+0.5)*s.Cell
}
