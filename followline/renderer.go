package followline

import (
	"github.com/delaneyj/followparty/chart"
	"github.com/delaneyj/followparty/signals"
)

// Renderer is the host facade: it owns the sequence, the scheduler and the
// render binding, and keeps them consistent as objects are added, removed
// and moved. All calls belong on the single update loop.
type Renderer struct {
	sequence  *EntrySequence
	scheduler *LifetimeScheduler
	binding   *ConnectionRenderBinding

	// stop functions for the per-object start time watches
	tracked map[uint64]func()
}

func NewRenderer(connections ConnectionPool, points PointPool) *Renderer {
	r := &Renderer{
		sequence:  NewEntrySequence(),
		scheduler: NewLifetimeScheduler(),
		binding:   NewConnectionRenderBinding(connections, points),
		tracked:   map[uint64]func(){},
	}
	r.scheduler.OnBecameAlive = r.binding.BecameAlive
	r.scheduler.OnBecameDead = r.binding.BecameDead
	return r
}

func (r *Renderer) AddObject(obj *chart.HitObject) {
	if _, ok := r.tracked[obj.ID()]; ok {
		panic("followline: hit object already added")
	}
	entry := r.sequence.Insert(obj)
	r.scheduler.AddEntry(entry)
	r.tracked[obj.ID()] = signals.Effect1(obj.StartTime, func(float64) {
		r.moveObject(obj)
	})
}

func (r *Renderer) RemoveObject(obj *chart.HitObject) {
	stop, ok := r.tracked[obj.ID()]
	if !ok {
		panic("followline: hit object was never added")
	}
	stop()
	delete(r.tracked, obj.ID())
	r.detach(obj)
}

// Update advances the time cursor and reports whether any activation state
// changed, so a host loop can skip render work on quiet frames.
func (r *Renderer) Update(now float64) bool {
	return r.scheduler.Evaluate(now)
}

// Entries is the ordered read-only view.
func (r *Renderer) Entries() []*Entry {
	return r.sequence.Entries()
}

func (r *Renderer) Binding() *ConnectionRenderBinding {
	return r.binding
}

func (r *Renderer) Scheduler() *LifetimeScheduler {
	return r.scheduler
}

// A start time change invalidates the object's position in the sequence, so
// the entry is rebuilt: fully detached from the scheduler first (firing any
// becameDead), then reinserted. The scheduler never sees two entries for
// the same object at once.
func (r *Renderer) moveObject(obj *chart.HitObject) {
	r.detach(obj)
	entry := r.sequence.Insert(obj)
	r.scheduler.AddEntry(entry)
}

func (r *Renderer) detach(obj *chart.HitObject) {
	entry, ok := r.sequence.entryFor(obj)
	if !ok {
		panic("followline: tracked object missing from sequence")
	}
	r.scheduler.RemoveEntry(entry)
	r.sequence.Remove(obj)
}
