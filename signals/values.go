package signals

// Subscriber is notified when a dependency it watches changes.
type Subscriber interface {
	Invalidate()
}

// Dependency is anything an effect can watch.
type Dependency interface {
	value() any
	addSubs(...Subscriber)
	removeSub(Subscriber)
}

// Value is an observable cell. Writes that don't change the stored value are
// dropped before any subscriber is notified. Not safe for concurrent use; the
// whole graph is driven from a single update loop.
type Value[T comparable] struct {
	val  T
	ver  uint32
	subs []Subscriber
}

func NewValue[T comparable](val T) *Value[T] {
	return &Value[T]{
		val: val,
		ver: 1,
	}
}

func (s *Value[T]) Value() T {
	return s.val
}

func (s *Value[T]) SetValue(val T) {
	if s.val == val {
		return
	}
	s.val = val
	s.ver++
	for _, sub := range s.subs {
		sub.Invalidate()
	}
}

// Version increments on every effective write.
func (s *Value[T]) Version() uint32 {
	return s.ver
}

func (s *Value[T]) value() any {
	return s.val
}

func (s *Value[T]) addSubs(subs ...Subscriber) {
	s.subs = append(s.subs, subs...)
}

func (s *Value[T]) removeSub(sub Subscriber) {
	for i, cur := range s.subs {
		if cur == sub {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}
