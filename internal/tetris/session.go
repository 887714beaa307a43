package tetris

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// TickInterval is the period the external clock is expected to drive
	// Tick at. The core only counts ticks; it owns no timer.
	TickInterval = 10 * time.Millisecond

	initialScrollLimit  = 64
	scrollStepPerLevel  = 8
	minScrollLimit      = 4
	settleDelayTicks    = 35
	levelAnimationTicks = 200
	initialLevelLimit   = 2048
	secondLevelLimit    = 8192

	updateBuffer = 8
)

// Session drives the drop/lock/clear/level-up/game-over state machine
// over Field, Piece and Lineup values. Exactly one tick source and one
// input source may mutate it; Tick, Do and Reset are mutually exclusive.
// Renderers read published snapshots concurrently via Snapshot.
type Session struct {
	mu  sync.Mutex
	rng *rand.Rand

	palette Palette
	field   Field
	lineup  Lineup
	active  Piece
	ghost   Piece
	hold    Piece
	held    bool

	state       State
	level       int
	startLevel  int
	levelLimit  int
	scrollLimit int

	scrollCount int
	settleCount int
	animCount   int
	settling    bool
	animating   bool

	snapshot atomic.Pointer[Snapshot]
	updates  chan Update
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithSeed fixes the random source so that a session replays identically
// for the same input script.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPalette selects the starting theme by name.
func WithPalette(name string) Option {
	return func(s *Session) {
		s.palette, _ = PaletteByName(name)
	}
}

// WithStartLevel starts the session at the given level, with the score
// threshold and scroll speed that level would have reached.
func WithStartLevel(level int) Option {
	return func(s *Session) {
		if level > 0 {
			s.startLevel = level
		}
	}
}

// NewSession constructs a session in the Running state with an empty
// field, a fresh shuffled lineup and an empty hold slot.
func NewSession(opts ...Option) *Session {
	s := &Session{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		palette: Palettes[0],
		updates: make(chan Update, updateBuffer),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.init()
	return s
}

// init resets every gameplay value to its start state. Callers hold mu
// (or no reference has escaped yet).
func (s *Session) init() {
	s.field = NewField()
	s.lineup = NewLineup(s.rng, s.palette)
	s.active = NullPiece
	s.ghost = NullPiece
	s.hold = NullPiece
	s.held = false
	s.level = s.startLevel
	s.levelLimit = levelLimit(s.startLevel)
	s.scrollLimit = scrollLimit(s.startLevel)
	s.scrollCount = 0
	s.settleCount = 0
	s.animCount = 0
	s.settling = true
	s.animating = false
	s.state = StateRunning
	s.publish()
	s.notify()
}

// levelLimit returns the score threshold that ends the given level. The
// threshold jumps from 2048 to 8192 at the first level-up and doubles on
// every one after that.
func levelLimit(level int) int {
	if level == 0 {
		return initialLevelLimit
	}
	return secondLevelLimit << (level - 1)
}

// scrollLimit returns the tick count between automatic falls at a level.
func scrollLimit(level int) int {
	limit := initialScrollLimit - scrollStepPerLevel*level
	if limit < minScrollLimit {
		return minScrollLimit
	}
	return limit
}

// Reset reinitializes the session to its start values. It is the only
// way out of the GameOver state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.init()
}

// Snapshot returns the most recently published whole-session view.
func (s *Session) Snapshot() Snapshot {
	return *s.snapshot.Load()
}

// Updates delivers side-panel notifications. Sends never block; a slow
// consumer misses intermediate updates, not the final state.
func (s *Session) Updates() <-chan Update {
	return s.updates
}

// Tick advances the state machine by one external clock period. The
// returned error is reserved for core invariant breaches surfacing from
// a merge; gameplay outcomes are never errors.
func (s *Session) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return nil
	}

	switch {
	case s.animating:
		s.animCount++
		if s.animCount >= levelAnimationTicks {
			s.animCount = 0
			s.applyNextPalette()
			s.animating = false
		}

	case s.field.Score() >= s.levelLimit:
		if s.level == 0 {
			s.levelLimit = secondLevelLimit
		} else {
			s.levelLimit <<= 1
		}
		s.level++
		s.scrollLimit = scrollLimit(s.level)
		s.animating = true
		s.notify()

	case s.settling:
		s.settleCount++
		if s.settleCount >= settleDelayTicks {
			s.settleCount = 0
			s.scrollCount = 0
			s.settling = false
			if s.field.Contains(s.lineup.Peek()) {
				s.active = NullPiece
				s.ghost = NullPiece
				s.state = StateGameOver
			} else {
				s.spawn()
				s.notify()
			}
		}

	default:
		s.scrollCount++
		if s.scrollCount >= s.scrollLimit {
			s.scrollCount = 0
			if s.field.IsImpactedBy(s.active) {
				if err := s.lock(); err != nil {
					return err
				}
				break
			}
			s.active = s.active.Translate(Down)
			s.ghost = s.findGhost(s.active)
		}
	}

	s.publish()
	return nil
}

// Do applies a discrete input action. Illegal moves and rotations are
// silently rejected; only a merge contract breach returns an error.
func (s *Session) Do(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a == ActionPause {
		switch s.state {
		case StateRunning:
			s.state = StatePaused
		case StatePaused:
			s.state = StateRunning
		}
		s.publish()
		return nil
	}
	if s.state != StateRunning || s.animating {
		return nil
	}

	switch a {
	case ActionHardDrop:
		if !s.ghost.IsNull() {
			s.active = s.ghost.Manifest()
			s.ghost = NullPiece
			if err := s.lock(); err != nil {
				return err
			}
		}

	case ActionRotate:
		if r := s.field.TryRotate(s.active); r != s.active {
			s.active = r
			s.ghost = s.findGhost(s.active)
		}

	case ActionLeft:
		if r := s.field.TryMove(s.active, Left); r != s.active {
			s.active = r
			s.ghost = s.findGhost(s.active)
		}

	case ActionRight:
		if r := s.field.TryMove(s.active, Right); r != s.active {
			s.active = r
			s.ghost = s.findGhost(s.active)
		}

	case ActionSoftDrop:
		if r := s.field.TryMove(s.active, Down); r != s.active {
			s.active = r
			s.ghost = s.findGhost(s.active)
		}

	case ActionHold:
		s.holdSwap()
	}

	s.publish()
	return nil
}

// holdSwap implements the single-slot hold with its once-per-drop gate.
// The piece entering the slot is always respawned, so whatever comes
// back out re-enters play at its spawn point and orientation.
func (s *Session) holdSwap() {
	if s.held || s.active.IsNull() {
		return
	}
	if s.hold.IsNull() {
		s.hold = s.active.Respawn()
		s.spawn()
	} else {
		s.active, s.hold = s.hold, s.active.Respawn()
		s.ghost = s.findGhost(s.active)
	}
	s.held = true
	s.notify()
}

// spawn takes the next piece from the lineup as the active piece and
// computes its ghost.
func (s *Session) spawn() {
	s.active, s.lineup = s.lineup.Advance(s.rng, s.palette)
	s.ghost = s.findGhost(s.active)
}

// lock merges the active piece into the field and begins the settle
// delay. Shared by hard drops and scroll-driven impacts.
func (s *Session) lock() error {
	merged, err := s.field.Merge(s.active, s.level)
	if err != nil {
		return err
	}
	s.field = merged
	s.active = NullPiece
	s.ghost = NullPiece
	s.held = false
	s.settling = true
	s.notify()
	return nil
}

// findGhost drops a copy of the piece straight down until it rests on
// the field, then flags it as a ghost.
func (s *Session) findGhost(p Piece) Piece {
	if p.IsNull() {
		return p
	}
	g := p.CopyAt(p.Ref().X, p.Ref().Y)
	for !s.field.IsImpactedBy(g) {
		g = g.Translate(Down)
	}
	return g.Ghost()
}

// applyNextPalette advances the theme cycle and recolors every live
// piece and the field through their stable color codes.
func (s *Session) applyNextPalette() {
	s.palette = s.palette.Next()
	s.field = s.field.Recolor(s.palette)
	s.lineup = s.lineup.Recolor(s.palette)
	s.active = s.active.Recolor(s.palette)
	if !s.ghost.IsNull() {
		s.ghost = s.ghost.Recolor(s.palette).Ghost()
	}
	s.hold = s.hold.Recolor(s.palette)
	s.notify()
}

// publish replaces the snapshot readers see. Mutators call it after
// every state change so a render never observes partial state.
func (s *Session) publish() {
	snap := &Snapshot{
		Active:     s.active,
		Ghost:      s.ghost,
		Cells:      s.field.Cells(),
		Score:      s.field.Score(),
		Lineup:     s.lineup.Pieces(),
		Hold:       s.hold,
		Level:      s.level,
		State:      s.state,
		Palette:    s.palette,
		LevelingUp: s.animating,
	}
	s.snapshot.Store(snap)
}

// notify fires a side-panel update without ever blocking the mutator.
func (s *Session) notify() {
	u := Update{
		Lineup: s.lineup.Pieces(),
		Hold:   s.hold,
		Level:  s.level,
		Score:  s.field.Score(),
	}
	select {
	case s.updates <- u:
	default:
	}
}
