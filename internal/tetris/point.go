package tetris

import "fmt"

// Point is a cell coordinate on the grid. X grows rightward, Y grows
// downward. Cells with negative Y sit above the visible grid; they are
// legal piece positions and are simply not painted.
type Point struct {
	X int
	Y int
}

// NullPoint marks the position of an absent piece.
var NullPoint = Point{-1, -1}

// IsNull reports whether p is the null sentinel.
func (p Point) IsNull() bool {
	return p == NullPoint
}

func (p Point) String() string {
	return fmt.Sprintf("[%d, %d]", p.X, p.Y)
}

// Direction is a single-cell translation.
type Direction int

const (
	// Left moves one cell toward x=0.
	Left Direction = iota
	// Right moves one cell away from x=0.
	Right
	// Down moves one cell toward the floor.
	Down
)

// Traverse returns the point one cell away in the direction d.
func (d Direction) Traverse(p Point) Point {
	switch d {
	case Left:
		return Point{p.X - 1, p.Y}
	case Right:
		return Point{p.X + 1, p.Y}
	case Down:
		return Point{p.X, p.Y + 1}
	}
	return p
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "unknown"
}
