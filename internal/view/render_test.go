package view

import (
	"strings"
	"testing"

	"github.com/blockfall/blockfall-cli/internal/tetris"
	qt "github.com/frankban/quicktest"
)

func emptySnapshot() tetris.Snapshot {
	return tetris.Snapshot{
		Active:  tetris.NullPiece,
		Ghost:   tetris.NullPiece,
		Hold:    tetris.NullPiece,
		Palette: tetris.Palettes[0],
		State:   tetris.StateRunning,
	}
}

func TestRenderBoardDimensions(t *testing.T) {
	c := qt.New(t)
	board := renderBoard(emptySnapshot())
	lines := strings.Split(board, "\n")
	c.Assert(lines, qt.HasLen, tetris.FieldHeight+2)
}

func TestRenderBoardDrawsSettledCells(t *testing.T) {
	c := qt.New(t)
	snap := emptySnapshot()
	snap.Cells = []tetris.Cell{
		{Point: tetris.Point{X: 0, Y: 19}, Color: tetris.Palettes[0].Color(0), Code: 0},
		{Point: tetris.Point{X: 3, Y: -1}, Color: tetris.Palettes[0].Color(0), Code: 0},
	}
	board := renderBoard(snap)
	c.Assert(strings.Contains(board, string(tetris.Palettes[0].Color(0))), qt.IsFalse,
		qt.Commentf("colors should be escape sequences, not literal hex"))
	c.Assert(strings.Split(board, "\n"), qt.HasLen, tetris.FieldHeight+2)
}

func TestRenderMiniPiece(t *testing.T) {
	c := qt.New(t)
	p := tetris.NewPiece(tetris.ShapeO, tetris.Palettes[0].Color(1), 1)
	mini := renderMiniPiece(p)
	c.Assert(strings.Split(mini, "\n"), qt.HasLen, 4)
	c.Assert(renderMiniPiece(tetris.NullPiece), qt.Equals, "(empty)")
}

func TestStatusLine(t *testing.T) {
	c := qt.New(t)

	snap := emptySnapshot()
	c.Assert(statusLine(snap), qt.Equals, "")

	snap.State = tetris.StatePaused
	c.Assert(statusLine(snap), qt.Equals, "Paused")

	snap.State = tetris.StateGameOver
	c.Assert(strings.Contains(statusLine(snap), "GAME OVER"), qt.IsTrue)

	snap.State = tetris.StateRunning
	snap.LevelingUp = true
	snap.Level = 2
	c.Assert(statusLine(snap), qt.Equals, "Level 2!")
}
