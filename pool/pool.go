package pool

import "sync"

// Pool hands out reusable instances, running configure on each before it is
// returned. Instances are not zeroed between uses; configure is expected to
// overwrite everything it cares about.
type Pool[T any] struct {
	p sync.Pool
}

func New[T any]() *Pool[T] {
	return &Pool[T]{
		p: sync.Pool{
			New: func() any { return new(T) },
		},
	}
}

func (p *Pool[T]) Acquire(configure func(*T)) *T {
	v := p.p.Get().(*T)
	if configure != nil {
		configure(v)
	}
	return v
}

func (p *Pool[T]) Release(v *T) {
	if v == nil {
		return
	}
	p.p.Put(v)
}
