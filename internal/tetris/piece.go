package tetris

// Piece is an immutable falling-block value: a shape at an orientation
// and reference point, a color resolved from the active palette, the
// stable color code it was spawned with, and the depth it has fallen.
// Every transformation returns a new value; the zero-ish NullPiece maps
// every transformation to itself. A ghost piece is a visually flagged
// copy that cannot act as the active piece until it is manifested.
type Piece struct {
	shape       Shape
	orientation Orientation
	ref         Point
	color       Color
	colorCode   int
	depth       int
	isGhost     bool
}

// NullPiece is the absent-piece sentinel.
var NullPiece = Piece{shape: ShapeNull, ref: NullPoint, colorCode: -1, depth: -1}

// NewPiece spawns a concrete piece of the given shape at its spawn point,
// orientation 0, depth 1.
func NewPiece(shape Shape, color Color, colorCode int) Piece {
	if shape == ShapeNull {
		return NullPiece
	}
	return Piece{
		shape:       shape,
		orientation: Spawn,
		ref:         shape.SpawnPoint(),
		color:       color,
		colorCode:   colorCode,
		depth:       1,
	}
}

// IsNull reports whether this is the null piece.
func (p Piece) IsNull() bool {
	return p.shape == ShapeNull
}

// IsGhost reports whether this piece is a landing preview.
func (p Piece) IsGhost() bool {
	return p.isGhost
}

// Shape returns the piece's shape.
func (p Piece) Shape() Shape {
	return p.shape
}

// Orientation returns the piece's rotation index.
func (p Piece) Orientation() Orientation {
	return p.orientation
}

// Ref returns the piece's reference point.
func (p Piece) Ref() Point {
	return p.ref
}

// Color returns the piece's current color under the palette it was last
// colored with.
func (p Piece) Color() Color {
	return p.color
}

// ColorCode returns the stable per-spawn color identifier.
func (p Piece) ColorCode() int {
	return p.colorCode
}

// Depth returns how many rows the piece has fallen since spawn.
func (p Piece) Depth() int {
	return p.depth
}

// Cells returns the four cells the piece occupies, nil for the null piece.
func (p Piece) Cells() []Point {
	return Assemble(p.shape, p.orientation, p.ref)
}

// Rotate returns the piece advanced one orientation step clockwise.
// Legality is the field's concern, not the piece's.
func (p Piece) Rotate() Piece {
	if p.IsNull() {
		return NullPiece
	}
	p.orientation = p.orientation.RotateClockwise()
	return p
}

// Translate returns the piece moved one cell in the direction d. Moving
// down counts toward the fall depth.
func (p Piece) Translate(d Direction) Piece {
	if p.IsNull() {
		return NullPiece
	}
	p.ref = d.Traverse(p.ref)
	if d == Down {
		p.depth++
	}
	return p
}

// CopyAt returns a concrete copy of the piece relocated to (x, y), with
// depth recomputed from y. Negative coordinates fail closed to the null
// piece; callers use that to project pieces into display space safely.
func (p Piece) CopyAt(x, y int) Piece {
	if x < 0 || y < 0 || p.IsNull() {
		return NullPiece
	}
	p.ref = Point{x, y}
	p.depth = y + 1
	p.isGhost = false
	return p
}

// Respawn returns the piece reset to its spawn point, orientation 0,
// depth 1. Used when a piece leaves the hold slot and re-enters play.
func (p Piece) Respawn() Piece {
	if p.IsNull() {
		return NullPiece
	}
	p.ref = p.shape.SpawnPoint()
	p.orientation = Spawn
	p.depth = 1
	p.isGhost = false
	return p
}

// Recolor returns the piece with its color re-resolved from the palette
// through the stable color code. Shape and position are untouched.
func (p Piece) Recolor(pal Palette) Piece {
	if p.IsNull() {
		return NullPiece
	}
	p.color = pal.Color(p.colorCode)
	return p
}

// Ghost wraps the piece as a non-committing landing preview.
func (p Piece) Ghost() Piece {
	if p.IsNull() {
		return NullPiece
	}
	p.isGhost = true
	return p
}

// Manifest unwraps a ghost back into a concrete piece. It is a no-op on
// non-ghosts.
func (p Piece) Manifest() Piece {
	p.isGhost = false
	return p
}
