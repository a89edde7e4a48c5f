package followline

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// LifetimeScheduler tracks entry windows against a time cursor and fires
// OnBecameAlive/OnBecameDead on transitions. Evaluate is a pure function of
// (now, windows), so seeking in either direction lands on the correct alive
// set; nothing depends on the path the cursor took to get there.
//
// A single entry never sees two births without a death in between: births
// only fire for entries absent from the active set.
type LifetimeScheduler struct {
	entries  []*Entry
	active   mapset.Set[*Entry]
	sorted   bool
	lastTime float64

	evaluating bool
	pending    bool

	OnBecameAlive func(*Entry)
	OnBecameDead  func(*Entry)
}

func NewLifetimeScheduler() *LifetimeScheduler {
	return &LifetimeScheduler{
		active:   mapset.NewSet[*Entry](),
		sorted:   true,
		lastTime: math.Inf(-1),
	}
}

// AddEntry starts tracking e and immediately re-evaluates at the last seen
// time, so an entry whose window already contains the cursor comes alive
// before the call returns.
func (s *LifetimeScheduler) AddEntry(e *Entry) {
	if e.onInvalidated != nil {
		panic("followline: entry is already tracked")
	}
	e.onInvalidated = s.entryInvalidated
	s.entries = append(s.entries, e)
	s.sorted = false
	s.Evaluate(s.lastTime)
}

// RemoveEntry stops tracking e. A currently active entry receives its
// becameDead synchronously before this returns, so no render binding can
// outlive its entry.
func (s *LifetimeScheduler) RemoveEntry(e *Entry) {
	if e.onInvalidated == nil {
		panic("followline: entry is not tracked")
	}
	e.onInvalidated = nil
	if s.active.Contains(e) {
		s.active.Remove(e)
		if s.OnBecameDead != nil {
			s.OnBecameDead(e)
		}
	}
	for i, cur := range s.entries {
		if cur == e {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
	panic("followline: tracked entry missing from index")
}

// Active returns a snapshot of the currently alive entries.
func (s *LifetimeScheduler) Active() []*Entry {
	return s.active.ToSlice()
}

func (s *LifetimeScheduler) IsActive(e *Entry) bool {
	return s.active.Contains(e)
}

// A window moved under a fixed cursor, so the alive set may be wrong even
// though time hasn't advanced.
func (s *LifetimeScheduler) entryInvalidated(*Entry) {
	s.sorted = false
	s.Evaluate(s.lastTime)
}

// Evaluate moves the cursor to now and fires transitions until the alive
// set is stable. Deaths dispatch before births within a pass, so a pooled
// instance freed by a dying connection can immediately back a new one.
// Listener side effects that shift windows (the binding writing an entry's
// LifetimeEnd) re-enter here; the guard folds them into the running pass.
func (s *LifetimeScheduler) Evaluate(now float64) bool {
	s.lastTime = now
	if s.evaluating {
		s.pending = true
		return false
	}
	s.evaluating = true
	defer func() { s.evaluating = false }()

	changed := false
	for {
		s.pending = false
		if !s.sorted {
			sort.SliceStable(s.entries, func(i, j int) bool {
				return s.entries[i].lifetimeStart < s.entries[j].lifetimeStart
			})
			s.sorted = true
		}

		for _, e := range s.active.ToSlice() {
			if !e.contains(now) {
				s.active.Remove(e)
				changed = true
				if s.OnBecameDead != nil {
					s.OnBecameDead(e)
				}
			}
		}

		// Entries past the cutoff can't contain now; the sort order makes
		// the prefix the only candidates.
		cutoff := sort.Search(len(s.entries), func(i int) bool {
			return s.entries[i].lifetimeStart > now
		})
		for _, e := range s.entries[:cutoff] {
			if e.contains(now) && !s.active.Contains(e) {
				s.active.Add(e)
				changed = true
				if s.OnBecameAlive != nil {
					s.OnBecameAlive(e)
				}
			}
		}

		if !s.pending {
			return changed
		}
	}
}
