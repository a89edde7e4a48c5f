package signals

import (
	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// Symbol derives a stable event key from a name, so packages can declare
// well-known keys without a central registry.
func Symbol(name string) int64 {
	return int64(xxhash.Sum64String(name) & 0x7fffffffffffffff)
}

type handler struct {
	fn func()
}

// Events is a keyed synchronous event bus. Handlers run on the emitter's
// goroutine, in no particular order.
type Events struct {
	handlers map[int64]mapset.Set[*handler]
}

func NewEvents() *Events {
	return &Events{
		handlers: map[int64]mapset.Set[*handler]{},
	}
}

// On registers fn for key and returns a function that unregisters it.
// Every registration must eventually be released or the handler will keep
// firing into whatever captured state fn closes over.
func (e *Events) On(key int64, fn func()) (off func()) {
	hs, ok := e.handlers[key]
	if !ok {
		hs = mapset.NewSet[*handler]()
		e.handlers[key] = hs
	}
	h := &handler{fn: fn}
	hs.Add(h)
	return func() {
		hs.Remove(h)
	}
}

func (e *Events) Emit(key int64) {
	hs, ok := e.handlers[key]
	if !ok {
		return
	}
	for _, h := range hs.ToSlice() {
		h.fn()
	}
}
