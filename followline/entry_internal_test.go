package followline

import (
	"testing"

	"github.com/delaneyj/followparty/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refresh notifies even when the recomputed window is numerically identical,
// so listeners re-check state they may have derived from it.
func TestRefreshNotifiesUnconditionally(t *testing.T) {
	seq := NewEntrySequence()
	a := chart.NewHitObject(chart.KindCircle, 1000, chart.Vec2{})
	b := chart.NewHitObject(chart.KindCircle, 2000, chart.Vec2{X: 100})

	ea := seq.Insert(a)
	calls := 0
	ea.onInvalidated = func(*Entry) { calls++ }

	// relinking the predecessor fires once
	seq.Insert(b)
	require.Equal(t, 1, calls)
	before := ea.LifetimeStart()

	// same inputs, same window, still a notification
	a.ApplyDefaults()
	assert.Equal(t, 2, calls)
	assert.Equal(t, before, ea.LifetimeStart())

	b.ApplyDefaults()
	assert.Equal(t, 3, calls)
}

// SetLifetimeEnd is deduped; refresh is not.
func TestSetLifetimeEndDedupes(t *testing.T) {
	seq := NewEntrySequence()
	ea := seq.Insert(chart.NewHitObject(chart.KindCircle, 1000, chart.Vec2{}))
	seq.Insert(chart.NewHitObject(chart.KindCircle, 2000, chart.Vec2{X: 100}))

	calls := 0
	ea.onInvalidated = func(*Entry) { calls++ }

	ea.SetLifetimeEnd(2200)
	assert.Equal(t, 1, calls)
	ea.SetLifetimeEnd(2200)
	assert.Equal(t, 1, calls)
	ea.SetLifetimeEnd(2300)
	assert.Equal(t, 2, calls)
}

// dispose unsubscribes from both endpoints; later changes don't reach the
// dead entry.
func TestDisposeStopsNotifications(t *testing.T) {
	seq := NewEntrySequence()
	a := chart.NewHitObject(chart.KindCircle, 1000, chart.Vec2{})
	b := chart.NewHitObject(chart.KindCircle, 2000, chart.Vec2{X: 100})
	ea := seq.Insert(a)
	seq.Insert(b)

	calls := 0
	ea.onInvalidated = func(*Entry) { calls++ }

	seq.Remove(a)
	b.MoveTo(chart.Vec2{X: 300})
	a.MoveTo(chart.Vec2{X: 50})
	assert.Equal(t, 0, calls)
}
