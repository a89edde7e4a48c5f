package signals_test

import (
	"testing"

	"github.com/delaneyj/followparty/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Writes that don't change the stored value are dropped entirely.
func TestValueDedupesWrites(t *testing.T) {
	v := signals.NewValue(3)
	assert.Equal(t, 3, v.Value())
	assert.Equal(t, uint32(1), v.Version())

	v.SetValue(3)
	assert.Equal(t, uint32(1), v.Version())

	v.SetValue(4)
	assert.Equal(t, 4, v.Value())
	assert.Equal(t, uint32(2), v.Version())
}

func TestEffect1FiresOnChangeOnly(t *testing.T) {
	v := signals.NewValue(1)

	callCount := 0
	last := 0
	stop := signals.Effect1(v, func(x int) {
		callCount++
		last = x
	})
	assert.Equal(t, 0, callCount)

	v.SetValue(1)
	assert.Equal(t, 0, callCount)

	v.SetValue(2)
	assert.Equal(t, 1, callCount)
	assert.Equal(t, 2, last)

	stop()
	v.SetValue(3)
	assert.Equal(t, 1, callCount)
}

func TestEffect2SeesBothCurrentArgs(t *testing.T) {
	a := signals.NewValue(1)
	b := signals.NewValue("x")

	callCount := 0
	var gotA int
	var gotB string
	stop := signals.Effect2(a, b, func(x int, y string) {
		callCount++
		gotA, gotB = x, y
	})
	defer stop()

	a.SetValue(5)
	require.Equal(t, 1, callCount)
	assert.Equal(t, 5, gotA)
	assert.Equal(t, "x", gotB)

	b.SetValue("y")
	require.Equal(t, 2, callCount)
	assert.Equal(t, 5, gotA)
	assert.Equal(t, "y", gotB)
}

func TestEventsOnEmitOff(t *testing.T) {
	e := signals.NewEvents()
	key := signals.Symbol("TEST_EVENT")

	callCount := 0
	off := e.On(key, func() {
		callCount++
	})

	e.Emit(key)
	e.Emit(key)
	assert.Equal(t, 2, callCount)

	// unknown keys are a no-op
	e.Emit(signals.Symbol("NEVER_REGISTERED"))
	assert.Equal(t, 2, callCount)

	off()
	e.Emit(key)
	assert.Equal(t, 2, callCount)
}

func TestSymbolIsStable(t *testing.T) {
	assert.Equal(t, signals.Symbol("A"), signals.Symbol("A"))
	assert.NotEqual(t, signals.Symbol("A"), signals.Symbol("B"))
	assert.GreaterOrEqual(t, signals.Symbol("A"), int64(0))
}
