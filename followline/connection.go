package followline

import (
	"math"

	"github.com/delaneyj/followparty/chart"
)

// FollowPoint is one pooled point sprite along a connection.
type FollowPoint struct {
	Position    chart.Vec2
	FadeInTime  float64
	FadeOutTime float64
}

// Connection is the pooled render instance for one entry. apply fully
// overwrites its state, so an instance handed back dirty from the pool is
// safe to reuse.
type Connection struct {
	entry  *Entry
	pool   PointPool
	Points []*FollowPoint
}

func (c *Connection) Entry() *Entry {
	return c.entry
}

// apply configures the connection for e: one point every PointSpacing along
// the path starting at floor(PointSpacing*1.5), each fading in Preempt
// before its fade-out moment. It also writes the entry's true upper bound,
// last fade-out plus FadeDuration, which the entry itself leaves unbounded.
func (c *Connection) apply(e *Entry, points PointPool) {
	end := e.End()
	if end == nil {
		panic("followline: connection applied to entry without end")
	}

	c.entry = e
	c.pool = points
	c.Points = c.Points[:0]

	start := e.Start()
	startTime := start.StartTime.Value()
	startPos := start.EndPosition.Value()
	endPos := end.Position.Value()
	distance := startPos.Dist(endPos)
	gap := end.StartTime.Value() - start.EndTime()
	if gap < 0 {
		gap = 0
	}

	lifetimeEnd := startTime
	for d := math.Floor(PointSpacing * 1.5); d < distance; d += PointSpacing {
		fraction := d / distance
		fadeOut := startTime + fraction*gap
		fadeIn := fadeOut - Preempt
		pos := startPos.Lerp(endPos, fraction)

		c.Points = append(c.Points, points.Acquire(func(p *FollowPoint) {
			p.Position = pos
			p.FadeInTime = fadeIn
			p.FadeOutTime = fadeOut
		}))
		lifetimeEnd = fadeOut + FadeDuration
	}
	e.SetLifetimeEnd(lifetimeEnd)
}

func (c *Connection) free() {
	for _, p := range c.Points {
		c.pool.Release(p)
	}
	c.Points = c.Points[:0]
	c.entry = nil
	c.pool = nil
}
