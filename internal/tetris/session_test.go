package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickN drives the session clock n periods, failing the test on any core
// invariant breach.
func tickN(t *testing.T, s *Session, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, s.Tick())
	}
}

// spawnFirst ticks through the initial settle delay so the first piece is
// in play.
func spawnFirst(t *testing.T, s *Session) Snapshot {
	t.Helper()
	tickN(t, s, settleDelayTicks)
	snap := s.Snapshot()
	require.False(t, snap.Active.IsNull())
	return snap
}

func TestNewSessionStartState(t *testing.T) {
	s := NewSession(WithSeed(1))
	snap := s.Snapshot()

	assert.Equal(t, StateRunning, snap.State)
	assert.True(t, snap.Active.IsNull())
	assert.True(t, snap.Hold.IsNull())
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Level)
	assert.Len(t, snap.Lineup, NumShapes)
	assert.Equal(t, Palettes[0].Name(), snap.Palette.Name())

	select {
	case u := <-s.Updates():
		assert.Len(t, u.Lineup, NumShapes)
		assert.Equal(t, 0, u.Score)
	default:
		t.Fatal("expected an initial update")
	}
}

func TestFirstSpawnAfterSettleDelay(t *testing.T) {
	s := NewSession(WithSeed(1))

	tickN(t, s, settleDelayTicks-1)
	assert.True(t, s.Snapshot().Active.IsNull())

	tickN(t, s, 1)
	snap := s.Snapshot()
	require.False(t, snap.Active.IsNull())
	assert.False(t, snap.Ghost.IsNull())
	assert.True(t, snap.Ghost.IsGhost())
	assert.Equal(t, snap.Active.Shape(), snap.Ghost.Shape())
	assert.Len(t, snap.Lineup, NumShapes-1)
}

func TestScrollMovesActiveDown(t *testing.T) {
	s := NewSession(WithSeed(1))
	before := spawnFirst(t, s).Active

	tickN(t, s, initialScrollLimit-1)
	assert.Equal(t, before, s.Snapshot().Active)

	tickN(t, s, 1)
	after := s.Snapshot().Active
	assert.Equal(t, before.Ref().Y+1, after.Ref().Y)
	assert.Equal(t, before.Depth()+1, after.Depth())
}

func TestDoMovesAndRotations(t *testing.T) {
	s := NewSession(WithSeed(1))
	before := spawnFirst(t, s).Active

	require.NoError(t, s.Do(ActionLeft))
	assert.Equal(t, before.Ref().X-1, s.Snapshot().Active.Ref().X)

	require.NoError(t, s.Do(ActionRight))
	assert.Equal(t, before.Ref().X, s.Snapshot().Active.Ref().X)

	require.NoError(t, s.Do(ActionSoftDrop))
	assert.Equal(t, before.Ref().Y+1, s.Snapshot().Active.Ref().Y)

	require.NoError(t, s.Do(ActionRotate))
	if s.Snapshot().Active.Shape() != ShapeO {
		assert.Equal(t, before.Orientation().RotateClockwise(),
			s.Snapshot().Active.Orientation())
	}
}

func TestActionsWithoutActivePieceAreHarmless(t *testing.T) {
	s := NewSession(WithSeed(1))
	require.True(t, s.Snapshot().Active.IsNull())

	for _, a := range []Action{ActionLeft, ActionRight, ActionRotate, ActionSoftDrop, ActionHardDrop, ActionHold} {
		require.NoError(t, s.Do(a))
	}
	snap := s.Snapshot()
	assert.True(t, snap.Active.IsNull())
	assert.Equal(t, 0, snap.Score)
}

func TestHardDropScoresGhostDepth(t *testing.T) {
	s := NewSession(WithSeed(1))
	snap := spawnFirst(t, s)
	depth := snap.Ghost.Depth()

	require.NoError(t, s.Do(ActionHardDrop))
	after := s.Snapshot()
	assert.True(t, after.Active.IsNull())
	assert.True(t, after.Ghost.IsNull())
	assert.Equal(t, depth, after.Score)
	assert.Len(t, after.Cells, 4)
}

func TestScrollLocksRestingPiece(t *testing.T) {
	s := NewSession(WithSeed(1))
	spawnFirst(t, s)

	// Soft drop to the floor, then let the next scroll commit the lock.
	for i := 0; i < FieldHeight; i++ {
		require.NoError(t, s.Do(ActionSoftDrop))
	}
	depth := s.Snapshot().Active.Depth()
	tickN(t, s, initialScrollLimit)

	after := s.Snapshot()
	assert.True(t, after.Active.IsNull())
	assert.Equal(t, depth, after.Score)
}

func TestHoldOncePerDrop(t *testing.T) {
	s := NewSession(WithSeed(1))
	first := spawnFirst(t, s).Active

	require.NoError(t, s.Do(ActionHold))
	snap := s.Snapshot()
	require.False(t, snap.Hold.IsNull())
	assert.Equal(t, first.Shape(), snap.Hold.Shape())
	assert.Equal(t, first.Shape().SpawnPoint(), snap.Hold.Ref())
	require.False(t, snap.Active.IsNull())
	second := snap.Active

	// The gate blocks a second hold before the next lock.
	require.NoError(t, s.Do(ActionHold))
	assert.Equal(t, second, s.Snapshot().Active)
	assert.Equal(t, first.Shape(), s.Snapshot().Hold.Shape())

	// After a lock the gate reopens and the held piece swaps back out.
	require.NoError(t, s.Do(ActionHardDrop))
	tickN(t, s, settleDelayTicks)
	require.False(t, s.Snapshot().Active.IsNull())
	require.NoError(t, s.Do(ActionHold))
	assert.Equal(t, first.Shape(), s.Snapshot().Active.Shape())
}

func TestPauseFreezesEverything(t *testing.T) {
	s := NewSession(WithSeed(1))
	active := spawnFirst(t, s).Active

	require.NoError(t, s.Do(ActionPause))
	assert.Equal(t, StatePaused, s.Snapshot().State)

	tickN(t, s, initialScrollLimit*2)
	require.NoError(t, s.Do(ActionLeft))
	assert.Equal(t, active, s.Snapshot().Active)

	require.NoError(t, s.Do(ActionPause))
	assert.Equal(t, StateRunning, s.Snapshot().State)
}

func TestLevelUpStartsAnimationAndCyclesPalette(t *testing.T) {
	s := NewSession(WithSeed(1))
	spawnFirst(t, s)
	active := s.Snapshot().Active

	s.mu.Lock()
	s.field = Field{occupancy: boundaryRow, score: initialLevelLimit + 52}
	s.mu.Unlock()

	tickN(t, s, 1)
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.Level)
	assert.True(t, snap.LevelingUp)
	assert.Equal(t, secondLevelLimit, s.levelLimit)
	assert.Equal(t, initialScrollLimit-scrollStepPerLevel, s.scrollLimit)

	// Input is ignored while the transition plays out.
	require.NoError(t, s.Do(ActionLeft))
	assert.Equal(t, active.Ref(), s.Snapshot().Active.Ref())

	tickN(t, s, levelAnimationTicks-1)
	assert.True(t, s.Snapshot().LevelingUp)
	tickN(t, s, 1)
	snap = s.Snapshot()
	assert.False(t, snap.LevelingUp)
	assert.Equal(t, Palettes[1].Name(), snap.Palette.Name())
	assert.Equal(t, Palettes[1].Color(active.ColorCode()), snap.Active.Color())
	for _, p := range snap.Lineup {
		assert.Equal(t, Palettes[1].Color(p.ColorCode()), p.Color())
	}
}

func TestLevelLimitDoubling(t *testing.T) {
	assert.Equal(t, initialLevelLimit, levelLimit(0))
	assert.Equal(t, secondLevelLimit, levelLimit(1))
	assert.Equal(t, secondLevelLimit*2, levelLimit(2))
	assert.Equal(t, secondLevelLimit*8, levelLimit(4))
}

func TestScrollLimitFloor(t *testing.T) {
	assert.Equal(t, initialScrollLimit, scrollLimit(0))
	assert.Equal(t, initialScrollLimit-scrollStepPerLevel, scrollLimit(1))
	assert.Equal(t, minScrollLimit, scrollLimit(8))
	assert.Equal(t, minScrollLimit, scrollLimit(50))
}

func TestWithStartLevel(t *testing.T) {
	s := NewSession(WithSeed(1), WithStartLevel(3))
	assert.Equal(t, 3, s.Snapshot().Level)
	assert.Equal(t, secondLevelLimit<<2, s.levelLimit)
	assert.Equal(t, initialScrollLimit-3*scrollStepPerLevel, s.scrollLimit)
}

func TestWithPalette(t *testing.T) {
	s := NewSession(WithSeed(1), WithPalette("gold"))
	snap := s.Snapshot()
	assert.Equal(t, "gold", snap.Palette.Name())
	for _, p := range snap.Lineup {
		assert.Equal(t, snap.Palette.Color(p.ColorCode()), p.Color())
	}
}

func TestSameSeedReplaysIdentically(t *testing.T) {
	script := []Action{ActionLeft, ActionRotate, ActionSoftDrop, ActionHardDrop}
	run := func() Snapshot {
		s := NewSession(WithSeed(99))
		spawnFirst(t, s)
		for _, a := range script {
			require.NoError(t, s.Do(a))
		}
		tickN(t, s, settleDelayTicks)
		return s.Snapshot()
	}
	a, b := run(), run()
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Active, b.Active)
	assert.Equal(t, a.Lineup, b.Lineup)
	assert.Equal(t, a.Cells, b.Cells)
}

func TestGameOverAndReset(t *testing.T) {
	s := NewSession(WithSeed(5))

	// Hard-dropping every spawn in place stacks the middle columns until
	// a spawn no longer fits.
	for i := 0; i < 5000; i++ {
		require.NoError(t, s.Tick())
		snap := s.Snapshot()
		if snap.State == StateGameOver {
			break
		}
		if !snap.Active.IsNull() {
			require.NoError(t, s.Do(ActionHardDrop))
		}
	}

	snap := s.Snapshot()
	require.Equal(t, StateGameOver, snap.State)
	assert.True(t, snap.Active.IsNull())
	assert.Greater(t, snap.Score, 0)

	// Ticks and inputs are inert until a reset.
	tickN(t, s, initialScrollLimit)
	require.NoError(t, s.Do(ActionHardDrop))
	assert.Equal(t, StateGameOver, s.Snapshot().State)

	s.Reset()
	snap = s.Snapshot()
	assert.Equal(t, StateRunning, snap.State)
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, snap.Cells)
	assert.True(t, snap.Hold.IsNull())
	assert.Len(t, snap.Lineup, NumShapes)
}

func TestUpdatesNeverBlock(t *testing.T) {
	s := NewSession(WithSeed(1))
	// Nobody drains the channel; locks must still go through.
	for i := 0; i < updateBuffer*4; i++ {
		tickN(t, s, settleDelayTicks)
		if s.Snapshot().State != StateRunning {
			break
		}
		if !s.Snapshot().Active.IsNull() {
			require.NoError(t, s.Do(ActionHardDrop))
		}
	}
	assert.NotNil(t, s.Snapshot())
}
