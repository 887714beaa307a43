package tetris

import (
	"errors"

	"golang.org/x/exp/slices"
)

const (
	// FieldWidth and FieldHeight are the playing field dimensions in cells.
	FieldWidth  = 10
	FieldHeight = 20

	// maxPieceHeight is the most rows a single piece can contribute.
	maxPieceHeight = 4
)

// ErrNotAdjacent reports a merge contract violation: the piece handed to
// Merge was not resting against the field surface.
var ErrNotAdjacent = errors.New("tetris: piece must be adjacent to the field")

// Cell is one settled block.
type Cell struct {
	Point Point
	Color Color
	Code  int
}

// boundaryRow is the fixed set of points just under the grid floor. It
// seeds every occupancy set so that pieces land on row FieldHeight-1
// without special-casing the floor.
var boundaryRow = func() map[Point]struct{} {
	m := make(map[Point]struct{}, FieldWidth+1)
	for x := 0; x <= FieldWidth; x++ {
		m[Point{x, FieldHeight}] = struct{}{}
	}
	return m
}()

// Field is an immutable value holding the settled blocks and the score.
// history stores rows bottom-to-top: row r holds the cells at
// y = FieldHeight-1-r, and an empty row terminates the meaningful prefix.
// occupancy is exactly the union of history cells and the boundary row.
type Field struct {
	history   [][]Cell
	occupancy map[Point]struct{}
	score     int
}

// NewField returns an empty field with score zero.
func NewField() Field {
	return Field{
		history:   nil,
		occupancy: boundaryRow,
		score:     0,
	}
}

// Score returns the field's score.
func (f Field) Score() int {
	return f.score
}

// Cells returns every settled block, bottom rows first. The result is a
// fresh slice the caller may keep.
func (f Field) Cells() []Cell {
	var out []Cell
	for _, row := range f.history {
		out = append(out, row...)
	}
	return out
}

// Occupied reports whether the given point holds a settled block or lies
// on the floor boundary.
func (f Field) Occupied(p Point) bool {
	_, ok := f.occupancy[p]
	return ok
}

// IsImpactedBy reports whether the piece is resting on the field: one
// more step down would overlap a settled block or the floor.
func (f Field) IsImpactedBy(p Piece) bool {
	for _, c := range p.Cells() {
		if f.Occupied(Point{c.X, c.Y + 1}) {
			return true
		}
	}
	return false
}

// Contains reports whether any of the piece's cells is already settled.
// A spawn piece contained by the field means the game is over.
func (f Field) Contains(p Piece) bool {
	for _, c := range p.Cells() {
		if f.Occupied(c) {
			return true
		}
	}
	return false
}

// legal reports whether every cell is unoccupied and inside the
// horizontal bounds. Cells above the grid are legal.
func (f Field) legal(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= FieldWidth {
			return false
		}
		if f.Occupied(c) {
			return false
		}
	}
	return true
}

// TryMove returns the piece moved one cell in the direction d, or the
// piece unchanged if the move would collide or leave the field. Rejection
// is silent; it is not an error.
func (f Field) TryMove(p Piece, d Direction) Piece {
	if p.IsNull() {
		return p
	}
	candidate := p.Translate(d)
	if !f.legal(candidate) {
		return p
	}
	return candidate
}

// TryRotate returns the piece rotated one step clockwise under the same
// rejection policy as TryMove. There are no wall kicks: a rotation that
// does not fit is discarded.
func (f Field) TryRotate(p Piece) Piece {
	if p.IsNull() {
		return p
	}
	candidate := p.Rotate()
	if !f.legal(candidate) {
		return p
	}
	return candidate
}

// Merge commits the piece into the field, clears any completed rows, and
// scores the result. The returned field is a new value; the receiver is
// unchanged. Merge fails only when the piece is not adjacent to the field
// surface, which indicates a caller invariant breach.
func (f Field) Merge(p Piece, level int) (Field, error) {
	// Clone the meaningful history prefix and leave room for the tallest
	// possible piece on top.
	rows := make([][]Cell, 0, len(f.history)+maxPieceHeight)
	for _, row := range f.history {
		if len(row) == 0 {
			break
		}
		rows = append(rows, slices.Clone(row))
	}
	for i := 0; i < maxPieceHeight; i++ {
		rows = append(rows, nil)
	}

	// Bucket the piece's cells into rows. Cells outside the vertical grid
	// range fall into an out-of-range bucket that is only reachable when
	// the piece sits directly on top of the current stack.
	for _, c := range p.Cells() {
		r := FieldHeight
		if c.Y >= 0 && c.Y < FieldHeight {
			r = FieldHeight - 1 - c.Y
		}
		if r >= len(rows) {
			return Field{}, ErrNotAdjacent
		}
		rows[r] = append(rows[r], Cell{Point: c, Color: p.Color(), Code: p.ColorCode()})
	}

	// Compact: drop full rows, shift survivors down by the number of
	// cleared rows beneath them, and rebuild occupancy from scratch.
	occupancy := make(map[Point]struct{}, len(boundaryRow)+len(rows)*FieldWidth)
	for pt := range boundaryRow {
		occupancy[pt] = struct{}{}
	}
	lines := 0
	compacted := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		if len(row) >= FieldWidth {
			lines++
			continue
		}
		if len(row) == 0 {
			continue
		}
		shifted := make([]Cell, 0, len(row))
		for _, c := range row {
			moved := Point{c.Point.X, c.Point.Y + lines}
			shifted = append(shifted, Cell{Point: moved, Color: c.Color, Code: c.Code})
			occupancy[moved] = struct{}{}
		}
		compacted = append(compacted, shifted)
	}

	return Field{
		history:   compacted,
		occupancy: occupancy,
		score:     f.score + p.Depth() + lineBonus(lines, level),
	}, nil
}

// lineBonus applies the classic tiered table, multiplied by level+1.
func lineBonus(lines, level int) int {
	var bonus int
	switch lines {
	case 1:
		bonus = 40
	case 2:
		bonus = 100
	case 3:
		bonus = 300
	case 4:
		bonus = 1200
	default:
		return 0
	}
	return bonus * (level + 1)
}

// Recolor returns a field with every settled block's color re-resolved
// from the palette through its stable color code. Geometry and score are
// preserved.
func (f Field) Recolor(pal Palette) Field {
	rows := make([][]Cell, 0, len(f.history))
	for _, row := range f.history {
		if len(row) == 0 {
			break
		}
		recolored := make([]Cell, 0, len(row))
		for _, c := range row {
			recolored = append(recolored, Cell{Point: c.Point, Color: pal.Color(c.Code), Code: c.Code})
		}
		rows = append(rows, recolored)
	}
	return Field{history: rows, occupancy: f.occupancy, score: f.score}
}
