package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

// Game constants
const (
	GridSize = 20 // Cells per side
	WinScore = 12 // Food items needed to win a round
)

// Starting layout applied on every reset
var (
	StartPosition  = Point{X: 10, Y: 10}
	StartFood      = Point{X: 5, Y: 5}
	StartDirection = RIGHT
)

// NewGrid returns the fixed square play field.
func NewGrid() Grid {
	return Grid{Width: GridSize, Height: GridSize}
}

// InBounds reports whether p lies inside the grid.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Add offsets p by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction rappresenta una direzione cardinale
type Direction int

const (
	NONE  Direction = iota // 0, never a valid heading
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= UP && d <= LEFT
}

// ToPoint converte una Direction in un vettore di spostamento
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the 180 degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return NONE
	}
}

// Angle returns the clockwise sprite rotation in degrees for d.
// Sprites are authored facing up.
func (d Direction) Angle() float32 {
	switch d {
	case RIGHT:
		return 90
	case DOWN:
		return 180
	case LEFT:
		return -90
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "UP"
	case RIGHT:
		return "RIGHT"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	default:
		return "NONE"
	}
}

// GameStatus is the round state shared between the engine and the UI layer
type GameStatus int

const (
	StatusStart GameStatus = iota
	StatusPlaying
	StatusGameOver
	StatusWin
)

func (s GameStatus) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusGameOver:
		return "GAMEOVER"
	case StatusWin:
		return "WIN"
	default:
		return "UNKNOWN"
	}
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
