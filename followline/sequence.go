package followline

import (
	"sort"

	"github.com/delaneyj/followparty/chart"
)

// EntrySequence keeps one entry per hit object, ordered by start time.
// Neighboring entries are chained: every entry's end object is the next
// entry's start object, and the last entry has no end.
type EntrySequence struct {
	entries []*Entry
	byStart map[uint64]*Entry
}

func NewEntrySequence() *EntrySequence {
	return &EntrySequence{
		byStart: map[uint64]*Entry{},
	}
}

func (s *EntrySequence) Len() int {
	return len(s.entries)
}

// Entries returns the ordered entries as a copy.
func (s *EntrySequence) Entries() []*Entry {
	return append([]*Entry(nil), s.entries...)
}

// Insert creates an entry for obj at its sorted position and relinks the
// immediate neighbors. Equal start times order after existing entries, so
// links already established churn as little as possible. Non-adjacent
// entries are untouched.
func (s *EntrySequence) Insert(obj *chart.HitObject) *Entry {
	if _, ok := s.byStart[obj.ID()]; ok {
		panic("followline: hit object already has an entry")
	}

	entry := newEntry(obj)
	key := obj.StartTime.Value()
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].start.StartTime.Value() > key
	})

	s.entries = append(s.entries, nil)
	copy(s.entries[idx+1:], s.entries[idx:])
	s.entries[idx] = entry
	s.byStart[obj.ID()] = entry

	if idx+1 < len(s.entries) {
		entry.setEnd(s.entries[idx+1].start)
	}
	if idx > 0 {
		s.entries[idx-1].setEnd(obj)
	}
	return entry
}

// Remove drops obj's entry, bridging the predecessor over to whatever the
// removed entry pointed at, and unsubscribes the entry's listeners. The
// returned entry is disposed and must not be reused.
func (s *EntrySequence) Remove(obj *chart.HitObject) *Entry {
	entry, ok := s.byStart[obj.ID()]
	if !ok {
		panic("followline: hit object was never added")
	}

	idx := s.indexOf(entry)
	if idx > 0 {
		s.entries[idx-1].setEnd(entry.end)
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	delete(s.byStart, obj.ID())
	entry.dispose()
	return entry
}

func (s *EntrySequence) entryFor(obj *chart.HitObject) (*Entry, bool) {
	entry, ok := s.byStart[obj.ID()]
	return entry, ok
}

func (s *EntrySequence) indexOf(entry *Entry) int {
	for i, cur := range s.entries {
		if cur == entry {
			return i
		}
	}
	panic("followline: entry map and slice out of sync")
}
