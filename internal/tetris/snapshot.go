package tetris

// State is the top-level session state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Action is a discrete, already-resolved input event. The presentation
// layer owns the mapping from raw input to actions, so the core never
// sees a device API.
type Action int

const (
	ActionRotate Action = iota
	ActionLeft
	ActionRight
	ActionSoftDrop
	ActionHardDrop
	ActionHold
	ActionPause
)

func (a Action) String() string {
	switch a {
	case ActionRotate:
		return "rotate"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionSoftDrop:
		return "soft drop"
	case ActionHardDrop:
		return "hard drop"
	case ActionHold:
		return "hold"
	case ActionPause:
		return "pause"
	}
	return "unknown"
}

// Snapshot is a complete, immutable view of the session published after
// every mutation. Readers always observe a whole snapshot, never a
// partially updated one.
type Snapshot struct {
	Active     Piece
	Ghost      Piece
	Cells      []Cell
	Score      int
	Lineup     []Piece
	Hold       Piece
	Level      int
	State      State
	Palette    Palette
	LevelingUp bool
}

// Update is the side-panel notification fired whenever lineup, hold,
// level or score change, decoupled from the snapshot used for drawing
// the main grid.
type Update struct {
	Lineup []Piece
	Hold   Piece
	Level  int
	Score  int
}
