package followline_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/followparty/followline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackedPair builds the standard 100px/1000ms pair and hands both entries to
// a fresh scheduler. The first entry's window is [680, +Inf).
func trackedPair(t *testing.T) (*followline.LifetimeScheduler, *followline.Entry, *followline.Entry) {
	t.Helper()
	seq := followline.NewEntrySequence()
	ea := seq.Insert(circleAt(1000, 0, 0))
	eb := seq.Insert(circleAt(2000, 100, 0))

	sched := followline.NewLifetimeScheduler()
	sched.AddEntry(ea)
	sched.AddEntry(eb)
	return sched, ea, eb
}

// Seeking in either direction lands on the alive set for that time; the path
// taken doesn't matter.
func TestEvaluateIsPureSeek(t *testing.T) {
	sched, ea, eb := trackedPair(t)
	ea.SetLifetimeEnd(1500)

	assert.False(t, sched.Evaluate(600))
	assert.Empty(t, sched.Active())

	assert.True(t, sched.Evaluate(700))
	assert.True(t, sched.IsActive(ea))
	assert.False(t, sched.IsActive(eb))

	// quiet frame
	assert.False(t, sched.Evaluate(700))

	assert.True(t, sched.Evaluate(1600))
	assert.Empty(t, sched.Active())

	// seeking backwards revives
	assert.True(t, sched.Evaluate(700))
	assert.True(t, sched.IsActive(ea))
}

// The window's end is exclusive and the start inclusive.
func TestWindowIsHalfOpen(t *testing.T) {
	sched, ea, _ := trackedPair(t)
	ea.SetLifetimeEnd(1500)

	sched.Evaluate(680)
	assert.True(t, sched.IsActive(ea))

	sched.Evaluate(1500)
	assert.False(t, sched.IsActive(ea))
}

// An entry added while the cursor is already inside its window comes alive
// before AddEntry returns.
func TestAddEntryInsideWindow(t *testing.T) {
	seq := followline.NewEntrySequence()
	ea := seq.Insert(circleAt(1000, 0, 0))
	seq.Insert(circleAt(2000, 100, 0))

	sched := followline.NewLifetimeScheduler()
	births := 0
	sched.OnBecameAlive = func(*followline.Entry) { births++ }
	sched.Evaluate(700)

	sched.AddEntry(ea)
	assert.Equal(t, 1, births)
	assert.True(t, sched.IsActive(ea))
}

// Removing an active entry fires its death synchronously.
func TestRemoveEntryFiresDeath(t *testing.T) {
	sched, ea, _ := trackedPair(t)

	deaths := 0
	sched.OnBecameDead = func(*followline.Entry) { deaths++ }

	sched.Evaluate(700)
	sched.RemoveEntry(ea)
	assert.Equal(t, 1, deaths)
	assert.False(t, sched.IsActive(ea))

	// a second add is legal once untracked
	sched.AddEntry(ea)
	assert.True(t, sched.IsActive(ea))
}

func TestAddEntryTwicePanics(t *testing.T) {
	sched, ea, _ := trackedPair(t)
	assert.Panics(t, func() {
		sched.AddEntry(ea)
	})
}

// Shrinking a window under a fixed cursor kills the entry without the cursor
// moving at all.
func TestWindowShrinkKillsInPlace(t *testing.T) {
	sched, ea, _ := trackedPair(t)

	deaths := 0
	sched.OnBecameDead = func(*followline.Entry) { deaths++ }

	sched.Evaluate(700)
	require.True(t, sched.IsActive(ea))

	ea.SetLifetimeEnd(690)
	assert.Equal(t, 1, deaths)
	assert.False(t, sched.IsActive(ea))
}

// Within one pass all deaths dispatch before any birth, so pooled instances
// freed by the dying side are available to the newborn side.
func TestDeathsDispatchBeforeBirths(t *testing.T) {
	seq := followline.NewEntrySequence()
	ea := seq.Insert(circleAt(1000, 0, 0))
	eb := seq.Insert(circleAt(2000, 100, 0))
	seq.Insert(circleAt(3000, 200, 0))
	ea.SetLifetimeEnd(1500)

	sched := followline.NewLifetimeScheduler()
	var log []string
	sched.OnBecameAlive = func(e *followline.Entry) {
		log = append(log, fmt.Sprintf("alive:%d", e.ID()))
	}
	sched.OnBecameDead = func(e *followline.Entry) {
		log = append(log, fmt.Sprintf("dead:%d", e.ID()))
	}
	sched.AddEntry(ea)
	sched.AddEntry(eb)

	sched.Evaluate(700)
	log = log[:0]

	// eb's window opens at 1680; ea's closed at 1500
	sched.Evaluate(1700)
	require.Len(t, log, 2)
	assert.Equal(t, fmt.Sprintf("dead:%d", ea.ID()), log[0])
	assert.Equal(t, fmt.Sprintf("alive:%d", eb.ID()), log[1])
}

// A listener that shifts the window it was told about re-enters Evaluate; the
// pass loops until the alive set is stable.
func TestReentrantListenerSettles(t *testing.T) {
	sched, ea, _ := trackedPair(t)

	births, deaths := 0, 0
	sched.OnBecameAlive = func(e *followline.Entry) {
		births++
		e.SetLifetimeEnd(e.LifetimeStart() + 10)
	}
	sched.OnBecameDead = func(*followline.Entry) { deaths++ }

	// the bound written at birth is already behind the cursor
	assert.True(t, sched.Evaluate(780))
	assert.Equal(t, 1, births)
	assert.Equal(t, 1, deaths)
	assert.False(t, sched.IsActive(ea))
}
