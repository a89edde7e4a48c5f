package chart

import (
	"sync/atomic"

	"github.com/delaneyj/followparty/signals"
)

type Kind uint8

const (
	KindCircle Kind = iota
	KindSlider
	KindSpinner
)

// EventDefaultsApplied fires after deferred difficulty defaults have been
// applied to an object. Timing and positions may shift as part of it, so
// anything derived from them has to recompute.
var EventDefaultsApplied = signals.Symbol("CHART_DEFAULTS_APPLIED")

var nextID atomic.Uint64

// HitObject is a timed object on the playfield. Start time and both
// positions are observable; everything derived from them subscribes rather
// than polling. Identity is the stable ID, not the field values.
type HitObject struct {
	id       uint64
	Kind     Kind
	NewCombo bool

	// Duration is 0 for anything that isn't held; EndTime follows StartTime.
	Duration float64

	StartTime   *signals.Value[float64]
	Position    *signals.Value[Vec2]
	EndPosition *signals.Value[Vec2]

	Events *signals.Events
}

func NewHitObject(kind Kind, startTime float64, pos Vec2) *HitObject {
	return &HitObject{
		id:          nextID.Add(1),
		Kind:        kind,
		StartTime:   signals.NewValue(startTime),
		Position:    signals.NewValue(pos),
		EndPosition: signals.NewValue(pos),
		Events:      signals.NewEvents(),
	}
}

func (h *HitObject) ID() uint64 {
	return h.id
}

func (h *HitObject) EndTime() float64 {
	return h.StartTime.Value() + h.Duration
}

// Connectable reports whether a connector may attach to this object.
// Spinners never connect on either side.
func (h *HitObject) Connectable() bool {
	return h.Kind != KindSpinner
}

// SetPath gives the object an end position and a hold duration, as for a
// slider body.
func (h *HitObject) SetPath(end Vec2, duration float64) {
	h.Duration = duration
	h.EndPosition.SetValue(end)
}

// MoveTo repositions the object, carrying the end position along.
func (h *HitObject) MoveTo(pos Vec2) {
	delta := pos.Sub(h.Position.Value())
	h.Position.SetValue(pos)
	h.EndPosition.SetValue(h.EndPosition.Value().Add(delta))
}

// ApplyDefaults announces that deferred derived stats are in place.
func (h *HitObject) ApplyDefaults() {
	h.Events.Emit(EventDefaultsApplied)
}
