package tetris

import (
	"math/rand"

	"golang.org/x/exp/slices"
)

// refillThreshold is the lineup size at or below which a fresh batch is
// appended after advancing.
const refillThreshold = 5

// Lineup is the ordered queue of upcoming pieces. Every element is a
// concrete piece at its spawn location. The value is immutable; Advance
// returns a replacement.
type Lineup struct {
	pieces []Piece
}

// NewLineup builds a lineup seeded with one shuffled batch.
func NewLineup(rng *rand.Rand, pal Palette) Lineup {
	return Lineup{pieces: generateBatch(rng, pal)}
}

// generateBatch returns one piece of each of the seven shapes in uniform
// random order, each with a random color from the palette.
func generateBatch(rng *rand.Rand, pal Palette) []Piece {
	shapes := [NumShapes]Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
	batch := make([]Piece, 0, NumShapes)
	for _, s := range shapes {
		code := rng.Intn(PaletteSize)
		batch = append(batch, NewPiece(s, pal.Color(code), code))
	}
	rng.Shuffle(len(batch), func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})
	return batch
}

// Len returns the number of queued pieces.
func (l Lineup) Len() int {
	return len(l.pieces)
}

// Peek returns the piece that the next Advance will produce, or the null
// piece if the lineup is empty.
func (l Lineup) Peek() Piece {
	if len(l.pieces) == 0 {
		return NullPiece
	}
	return l.pieces[0]
}

// Pieces returns a copy of the queued pieces in order.
func (l Lineup) Pieces() []Piece {
	return slices.Clone(l.pieces)
}

// Advance pops the front piece and returns it with the successor lineup.
// When the remainder shrinks to the refill threshold, a freshly shuffled
// batch is appended behind it.
func (l Lineup) Advance(rng *rand.Rand, pal Palette) (Piece, Lineup) {
	if len(l.pieces) == 0 {
		return NullPiece, l
	}
	next := l.pieces[0]
	rest := slices.Clone(l.pieces[1:])
	if len(rest) <= refillThreshold {
		rest = append(rest, generateBatch(rng, pal)...)
	}
	return next, Lineup{pieces: rest}
}

// Recolor returns the lineup with every queued piece recolored through
// the palette.
func (l Lineup) Recolor(pal Palette) Lineup {
	pieces := make([]Piece, len(l.pieces))
	for i, p := range l.pieces {
		pieces[i] = p.Recolor(pal)
	}
	return Lineup{pieces: pieces}
}
