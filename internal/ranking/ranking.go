package ranking

import (
	"io"
	"time"

	"github.com/athoscouto/codename"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rodaine/table"
)

// DefaultSize is how many finished games a board remembers.
const DefaultSize = 9

// Entry is one finished game on the board.
type Entry struct {
	ID     uuid.UUID
	Player string
	Score  int
	Level  int
	When   time.Time
}

// Board ranks finished games by score, best first. It lives for the
// process only; nothing is persisted.
type Board struct {
	entries []Entry
	size    int
}

// NewBoard returns an empty board that keeps at most size entries.
func NewBoard(size int) *Board {
	if size <= 0 {
		size = DefaultSize
	}
	return &Board{size: size}
}

// Record inserts a finished game, generating a player codename and a game
// id for it, and returns the new entry. Scores that do not make the board
// are still returned but not kept.
func (b *Board) Record(score, level int) (Entry, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return Entry{}, err
	}
	entry := Entry{
		ID:     uuid.New(),
		Player: codename.Generate(rng, 0),
		Score:  score,
		Level:  level,
		When:   time.Now(),
	}
	b.insert(entry)
	return entry, nil
}

func (b *Board) insert(entry Entry) {
	for i, e := range b.entries {
		if entry.Score > e.Score {
			b.entries = append(b.entries[:i], append([]Entry{entry}, b.entries[i:]...)...)
			if len(b.entries) > b.size {
				b.entries = b.entries[:b.size]
			}
			return
		}
	}
	if len(b.entries) < b.size {
		b.entries = append(b.entries, entry)
	}
}

// Entries returns the ranked entries, best first.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Print writes the board as a table.
func (b *Board) Print(w io.Writer) {
	headerFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
	tbl := table.New("RANK", "PLAYER", "SCORE", "LEVEL")
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)
	for i, e := range b.entries {
		tbl.AddRow(i+1, e.Player, humanize.Comma(int64(e.Score)), e.Level)
	}
	tbl.Print()
}
