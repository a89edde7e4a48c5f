package pool_test

import (
	"testing"

	"github.com/delaneyj/followparty/pool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sprite struct {
	x, y float64
}

func TestAcquireRunsConfigure(t *testing.T) {
	p := pool.New[sprite]()

	s := p.Acquire(func(s *sprite) {
		s.x, s.y = 3, 4
	})
	require.NotNil(t, s)
	assert.Equal(t, 3.0, s.x)
	assert.Equal(t, 4.0, s.y)

	p.Release(s)
}

func TestAcquireWithoutConfigure(t *testing.T) {
	p := pool.New[sprite]()
	assert.NotNil(t, p.Acquire(nil))
}

// Recycled instances come back dirty; configure has to overwrite what it
// needs.
func TestReleasedInstancesAreNotZeroed(t *testing.T) {
	p := pool.New[sprite]()

	s := p.Acquire(func(s *sprite) { s.x = 7 })
	p.Release(s)

	got := p.Acquire(nil)
	if got == s {
		assert.Equal(t, 7.0, got.x)
	}
}

func TestReleaseNilIsNoop(t *testing.T) {
	p := pool.New[sprite]()
	assert.NotPanics(t, func() {
		p.Release(nil)
	})
}
