package tetris

import (
	"sort"
	"testing"

	qt "github.com/frankban/quicktest"
)

var concreteShapes = []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

func sortedCells(s Shape, o Orientation, ref Point) []Point {
	cells := Assemble(s, o, ref)
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}

func TestAssembleFourCells(t *testing.T) {
	c := qt.New(t)
	for _, s := range concreteShapes {
		for o := Orientation(0); o < 4; o++ {
			cells := Assemble(s, o, Point{5, 5})
			c.Assert(cells, qt.HasLen, 4)
		}
	}
}

func TestAssembleNullShape(t *testing.T) {
	c := qt.New(t)
	c.Assert(Assemble(ShapeNull, Spawn, Point{5, 5}), qt.IsNil)
}

func TestOrientationsDistinctExceptO(t *testing.T) {
	c := qt.New(t)
	ref := Point{5, 5}
	for _, s := range concreteShapes {
		seen := map[string]Orientation{}
		for o := Orientation(0); o < 4; o++ {
			key := ""
			for _, p := range sortedCells(s, o, ref) {
				key += p.String()
			}
			prev, dup := seen[key]
			if s == ShapeO {
				continue
			}
			c.Assert(dup, qt.IsFalse, qt.Commentf("shape %v: orientation %d repeats %d", s, o, prev))
			seen[key] = o
		}
	}
}

func TestOShapeRotationIsNoop(t *testing.T) {
	c := qt.New(t)
	base := sortedCells(ShapeO, Spawn, Point{5, 5})
	for o := Orientation(1); o < 4; o++ {
		c.Assert(sortedCells(ShapeO, o, Point{5, 5}), qt.DeepEquals, base)
	}
}

func TestSpawnPoints(t *testing.T) {
	c := qt.New(t)
	c.Assert(ShapeI.SpawnPoint(), qt.Equals, Point{5, 1})
	c.Assert(ShapeO.SpawnPoint(), qt.Equals, Point{5, 0})
	for _, s := range []Shape{ShapeJ, ShapeL, ShapeS, ShapeT, ShapeZ} {
		c.Assert(s.SpawnPoint(), qt.Equals, Point{5, 0})
	}
	c.Assert(ShapeNull.SpawnPoint(), qt.Equals, NullPoint)
}

func TestSpawnCellsInsideWidthAndAboveFold(t *testing.T) {
	c := qt.New(t)
	for _, s := range concreteShapes {
		for _, cell := range Assemble(s, Spawn, s.SpawnPoint()) {
			c.Assert(cell.X >= 0 && cell.X < FieldWidth, qt.IsTrue,
				qt.Commentf("shape %v spawn cell %v outside width", s, cell))
			c.Assert(cell.Y <= 0, qt.IsTrue,
				qt.Commentf("shape %v spawn cell %v below top row", s, cell))
		}
	}
}

func TestOrientationCycle(t *testing.T) {
	c := qt.New(t)
	o := Spawn
	for i := 0; i < 4; i++ {
		o = o.RotateClockwise()
	}
	c.Assert(o, qt.Equals, Spawn)
}

func TestDirectionTraverse(t *testing.T) {
	c := qt.New(t)
	p := Point{3, 7}
	c.Assert(Left.Traverse(p), qt.Equals, Point{2, 7})
	c.Assert(Right.Traverse(p), qt.Equals, Point{4, 7})
	c.Assert(Down.Traverse(p), qt.Equals, Point{3, 8})
}
