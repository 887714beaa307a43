package tetris

// Shape identifies one of the seven piece shapes. ShapeNull backs the
// null piece used wherever "no piece" must flow through piece-typed code.
type Shape int

const (
	ShapeNull Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// NumShapes is the count of concrete (non-null) shapes.
const NumShapes = 7

// Orientation is a clockwise rotation index, cyclic over four steps.
type Orientation int

const (
	Spawn Orientation = iota
	Clockwise
	Flipped
	CounterClockwise
)

// RotateClockwise advances the orientation by one step.
func (o Orientation) RotateClockwise() Orientation {
	return (o + 1) % 4
}

// Spawn reference points. I and O carry their reference point on a cell
// boundary ("on-axis"); the rest center it inside a cell ("off-axis").
// All of them place the piece fully inside the grid width with its top
// visible cells at or above row 0.
var (
	spawnPointI       = Point{5, 1}
	spawnPointO       = Point{5, 0}
	spawnPointOffAxis = Point{5, 0}
)

// SpawnPoint returns the fixed spawn reference point for the shape.
func (s Shape) SpawnPoint() Point {
	switch s {
	case ShapeI:
		return spawnPointI
	case ShapeO:
		return spawnPointO
	case ShapeNull:
		return NullPoint
	}
	return spawnPointOffAxis
}

func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	}
	return "null"
}

// offsets is the per-shape, per-orientation cell table, relative to the
// reference point. The I tables differ across all four orientations
// because the reference point sits on a cell corner rather than inside a
// cell; O is the same in every orientation.
var offsets = map[Shape][4][4]Point{
	ShapeI: {
		{{0, -1}, {1, -1}, {-1, -1}, {-2, -1}},
		{{0, 0}, {0, -2}, {0, -1}, {0, 1}},
		{{0, 0}, {1, 0}, {-1, 0}, {-2, 0}},
		{{-1, 0}, {-1, -2}, {-1, -1}, {-1, 1}},
	},
	ShapeJ: {
		{{0, 0}, {-1, 0}, {-1, -1}, {1, 0}},
		{{0, 0}, {0, 1}, {0, -1}, {1, -1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {0, -1}, {-1, 1}},
	},
	ShapeL: {
		{{0, 0}, {-1, 0}, {1, -1}, {1, 0}},
		{{0, 0}, {0, 1}, {0, -1}, {1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
		{{0, 0}, {0, 1}, {0, -1}, {-1, -1}},
	},
	ShapeO: {
		{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}},
		{{0, 0}, {-1, 0}, {0, -1}, {-1, -1}},
	},
	ShapeS: {
		{{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
		{{0, 0}, {1, 0}, {1, 1}, {0, -1}},
		{{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
		{{0, 0}, {-1, 0}, {-1, -1}, {0, 1}},
	},
	ShapeT: {
		{{0, 0}, {0, -1}, {-1, 0}, {1, 0}},
		{{0, 0}, {1, 0}, {0, -1}, {0, 1}},
		{{0, 0}, {0, 1}, {-1, 0}, {1, 0}},
		{{0, 0}, {-1, 0}, {0, -1}, {0, 1}},
	},
	ShapeZ: {
		{{0, 0}, {0, -1}, {-1, -1}, {1, 0}},
		{{0, 0}, {0, 1}, {1, 0}, {1, -1}},
		{{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {-1, 0}, {-1, 1}, {0, -1}},
	},
}

// Assemble maps (shape, orientation, reference point) to the four cells
// the piece occupies. It is pure and deterministic. ShapeNull assembles
// to no cells.
func Assemble(s Shape, o Orientation, ref Point) []Point {
	table, ok := offsets[s]
	if !ok {
		return nil
	}
	cells := make([]Point, 4)
	for i, d := range table[o%4] {
		cells[i] = Point{ref.X + d.X, ref.Y + d.Y}
	}
	return cells
}
