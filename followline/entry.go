package followline

import (
	"math"

	"github.com/delaneyj/followparty/chart"
	"github.com/delaneyj/followparty/signals"
)

const (
	// PointSpacing is the gap between follow points along a connection.
	PointSpacing = 32.0
	// Preempt is how long before its fade-out a point starts fading in.
	Preempt = 800.0
	// FadeDuration is the render-side fade animation length.
	FadeDuration = 400.0

	distanceEpsilon = 1e-9
)

// Entry pairs a hit object with the next one in time and derives the
// half-open [LifetimeStart, LifetimeEnd) window in which the connection
// between them is visible. The start object never changes for the life of
// the entry; the end object is reassigned by the sequence as neighbors come
// and go.
//
// The entry only ever computes LifetimeStart. On a non-degenerate refresh
// LifetimeEnd resets to an unbounded sentinel; the true upper bound depends
// on the render-side fade animation and is written back by the Connection
// when it is applied.
type Entry struct {
	start *chart.HitObject
	end   *chart.HitObject

	lifetimeStart float64
	lifetimeEnd   float64

	onInvalidated func(*Entry)

	startStops []func()
	endStops   []func()
}

func newEntry(start *chart.HitObject) *Entry {
	e := &Entry{start: start}
	e.startStops = append(e.startStops,
		signals.Effect2(start.Position, start.EndPosition, func(_, _ chart.Vec2) {
			e.refresh()
		}),
		start.Events.On(chart.EventDefaultsApplied, e.refresh),
	)
	e.refresh()
	return e
}

func (e *Entry) Start() *chart.HitObject {
	return e.start
}

func (e *Entry) End() *chart.HitObject {
	return e.end
}

// ID is stable for the life of the entry. Entries are unique per start
// object, so the start object's ID serves.
func (e *Entry) ID() uint64 {
	return e.start.ID()
}

func (e *Entry) LifetimeStart() float64 {
	return e.lifetimeStart
}

func (e *Entry) LifetimeEnd() float64 {
	return e.lifetimeEnd
}

// SetLifetimeEnd is for the render side; the entry itself never computes an
// upper bound. The next refresh resets it.
func (e *Entry) SetLifetimeEnd(t float64) {
	if e.lifetimeEnd == t {
		return
	}
	e.lifetimeEnd = t
	e.notify()
}

func (e *Entry) setEnd(end *chart.HitObject) {
	for _, stop := range e.endStops {
		stop()
	}
	e.endStops = e.endStops[:0]
	e.end = end
	if end != nil {
		e.endStops = append(e.endStops,
			signals.Effect1(end.Position, func(_ chart.Vec2) {
				e.refresh()
			}),
			end.Events.On(chart.EventDefaultsApplied, e.refresh),
		)
	}
	e.refresh()
}

// refresh recomputes the window and notifies the listener unconditionally,
// even when nothing moved numerically. refresh is idempotent for fixed
// inputs, which keeps re-entrant notification chains finite.
func (e *Entry) refresh() {
	startTime := e.start.StartTime.Value()

	if e.end == nil || e.end.NewCombo || !e.start.Connectable() || !e.end.Connectable() {
		e.lifetimeStart = startTime
		e.lifetimeEnd = startTime
		e.notify()
		return
	}

	distance := e.start.EndPosition.Value().Dist(e.end.Position.Value())
	fraction := 0.0
	if distance > distanceEpsilon {
		fraction = math.Floor(PointSpacing*1.5) / distance
	}
	gap := e.end.StartTime.Value() - e.start.EndTime()
	if gap < 0 {
		gap = 0
	}

	fadeOutTime := startTime + fraction*gap
	e.lifetimeStart = fadeOutTime - Preempt
	e.lifetimeEnd = math.Inf(1)
	e.notify()
}

func (e *Entry) notify() {
	if e.onInvalidated != nil {
		e.onInvalidated(e)
	}
}

func (e *Entry) contains(now float64) bool {
	return now >= e.lifetimeStart && now < e.lifetimeEnd
}

func (e *Entry) dispose() {
	for _, stop := range e.startStops {
		stop()
	}
	for _, stop := range e.endStops {
		stop()
	}
	e.startStops = nil
	e.endStops = nil
	e.onInvalidated = nil
}
