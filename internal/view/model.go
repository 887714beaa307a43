package view

import (
	"log"
	"time"

	"github.com/blockfall/blockfall-cli/internal/ranking"
	"github.com/blockfall/blockfall-cli/internal/settings"
	"github.com/blockfall/blockfall-cli/internal/tetris"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// UpdateMsg carries a side-panel notification pumped into the program
// from Session.Updates.
type UpdateMsg tetris.Update

// Model renders a running Session and translates key presses into game
// actions. The session owns all game state; the model only reads
// snapshots.
type Model struct {
	session *tetris.Session
	board   *ranking.Board
	keys    keyMap
	help    help.Model
	logger  *log.Logger
	width   int
	height  int
}

func NewModel(session *tetris.Session, bindings settings.KeyBindings, board *ranking.Board, logger *log.Logger) Model {
	return Model{
		session: session,
		board:   board,
		keys:    newKeyMap(bindings),
		help:    help.New(),
		logger:  logger,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tetris.TickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if err := m.session.Tick(); err != nil {
			m.logger.Printf("tick failed: %v", err)
			return m, tea.Quit
		}
		return m, tickCmd()

	case UpdateMsg:
		m.logger.Printf("score=%d level=%d lineup=%d", msg.Score, msg.Level, len(msg.Lineup))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			if snap := m.session.Snapshot(); snap.State == tetris.StateGameOver {
				if entry, err := m.board.Record(snap.Score, snap.Level); err == nil {
					m.logger.Printf("game over: %s scored %d at level %d", entry.Player, entry.Score, entry.Level)
				}
				m.session.Reset()
			}
			return m, nil
		}
		action, ok := m.actionFor(msg)
		if !ok {
			return m, nil
		}
		if err := m.session.Do(action); err != nil {
			m.logger.Printf("%s failed: %v", action, err)
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m Model) actionFor(msg tea.KeyMsg) (tetris.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Left):
		return tetris.ActionLeft, true
	case key.Matches(msg, m.keys.Right):
		return tetris.ActionRight, true
	case key.Matches(msg, m.keys.Rotate):
		return tetris.ActionRotate, true
	case key.Matches(msg, m.keys.SoftDrop):
		return tetris.ActionSoftDrop, true
	case key.Matches(msg, m.keys.HardDrop):
		return tetris.ActionHardDrop, true
	case key.Matches(msg, m.keys.Hold):
		return tetris.ActionHold, true
	case key.Matches(msg, m.keys.Pause):
		return tetris.ActionPause, true
	}
	return 0, false
}
