package view

import (
	"fmt"
	"strings"

	"github.com/blockfall/blockfall-cli/internal/tetris"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	cellText     = "  "
	ghostText    = "··"
	previewCount = 3
)

func (m Model) View() string {
	snap := m.session.Snapshot()
	board := renderBoard(snap)
	panel := renderPanel(snap, m.help.View(m.keys))
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, panel)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

type boardCell struct {
	color tetris.Color
	ghost bool
	set   bool
}

// renderBoard paints the settled cells, the ghost landing preview and
// the active piece into the bordered grid. Cells above row zero exist
// but are not drawn.
func renderBoard(snap tetris.Snapshot) string {
	var grid [tetris.FieldHeight][tetris.FieldWidth]boardCell

	for _, cell := range snap.Cells {
		if cell.Point.Y < 0 || cell.Point.Y >= tetris.FieldHeight {
			continue
		}
		grid[cell.Point.Y][cell.Point.X] = boardCell{color: cell.Color, set: true}
	}
	if !snap.Ghost.IsNull() {
		for _, p := range snap.Ghost.Cells() {
			if p.Y < 0 || p.Y >= tetris.FieldHeight || grid[p.Y][p.X].set {
				continue
			}
			grid[p.Y][p.X] = boardCell{color: snap.Ghost.Color(), ghost: true, set: true}
		}
	}
	if !snap.Active.IsNull() {
		for _, p := range snap.Active.Cells() {
			if p.Y < 0 || p.Y >= tetris.FieldHeight {
				continue
			}
			grid[p.Y][p.X] = boardCell{color: snap.Active.Color(), set: true}
		}
	}

	borderColor := lipgloss.Color("250")
	if snap.LevelingUp {
		borderColor = lipgloss.Color(string(snap.Palette.Color(0)))
	}
	border := lipgloss.NewStyle().Foreground(borderColor)

	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", tetris.FieldWidth*len(cellText)) + "+"))
	b.WriteString("\n")
	for y := 0; y < tetris.FieldHeight; y++ {
		b.WriteString(border.Render("|"))
		for x := 0; x < tetris.FieldWidth; x++ {
			cell := grid[y][x]
			switch {
			case !cell.set:
				b.WriteString(cellText)
			case cell.ghost:
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(string(cell.color))).
					Faint(true).
					Render(ghostText))
			default:
				b.WriteString(lipgloss.NewStyle().
					Background(lipgloss.Color(string(cell.color))).
					Render(cellText))
			}
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", tetris.FieldWidth*len(cellText)) + "+"))
	return b.String()
}

func renderPanel(snap tetris.Snapshot, helpView string) string {
	pad := lipgloss.NewStyle().PaddingLeft(2)
	title := lipgloss.NewStyle().Bold(true)

	var b strings.Builder
	b.WriteString(pad.Render(title.Render("Next")))
	b.WriteString("\n")
	count := previewCount
	if len(snap.Lineup) < count {
		count = len(snap.Lineup)
	}
	for i := 0; i < count; i++ {
		b.WriteString(pad.Render(renderMiniPiece(snap.Lineup[i])))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(pad.Render(title.Render("Hold")))
	b.WriteString("\n")
	b.WriteString(pad.Render(renderMiniPiece(snap.Hold)))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(fmt.Sprintf("Score: %s", humanize.Comma(int64(snap.Score)))))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Level: %d", snap.Level)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Theme: %s", snap.Palette.Name())))
	b.WriteString("\n\n")
	if status := statusLine(snap); status != "" {
		accent := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(string(snap.Palette.Color(0))))
		b.WriteString(pad.Render(accent.Render(status)))
		b.WriteString("\n\n")
	}
	b.WriteString(pad.Render(helpView))
	return b.String()
}

// renderMiniPiece projects the piece into a 4x4 box for the side panel.
func renderMiniPiece(p tetris.Piece) string {
	if p.IsNull() {
		return "(empty)"
	}
	var grid [4][4]bool
	for _, c := range p.CopyAt(2, 2).Cells() {
		if c.X >= 0 && c.X < 4 && c.Y >= 0 && c.Y < 4 {
			grid[c.Y][c.X] = true
		}
	}
	fill := lipgloss.NewStyle().Background(lipgloss.Color(string(p.Color())))
	var b strings.Builder
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if grid[y][x] {
				b.WriteString(fill.Render(cellText))
			} else {
				b.WriteString(cellText)
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func statusLine(snap tetris.Snapshot) string {
	switch {
	case snap.State == tetris.StatePaused:
		return "Paused"
	case snap.State == tetris.StateGameOver:
		return "GAME OVER - press r to restart"
	case snap.LevelingUp:
		return fmt.Sprintf("Level %d!", snap.Level)
	}
	return ""
}
