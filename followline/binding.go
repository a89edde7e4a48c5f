package followline

import "fmt"

// ConnectionPool hands out connection render instances. Acquire must run
// configure on the instance before returning it; instances come back in
// whatever state Release left them.
type ConnectionPool interface {
	Acquire(configure func(*Connection)) *Connection
	Release(*Connection)
}

// PointPool does the same for individual point sprites.
type PointPool interface {
	Acquire(configure func(*FollowPoint)) *FollowPoint
	Release(*FollowPoint)
}

// ConnectionRenderBinding maps alive entries to pooled connections, 1:1 by
// stable entry ID. Both pools are injected; the binding has no say in their
// capacity.
type ConnectionRenderBinding struct {
	connections ConnectionPool
	points      PointPool
	live        map[uint64]*Connection
}

func NewConnectionRenderBinding(connections ConnectionPool, points PointPool) *ConnectionRenderBinding {
	return &ConnectionRenderBinding{
		connections: connections,
		points:      points,
		live:        map[uint64]*Connection{},
	}
}

// BecameAlive acquires and configures a connection for e. Acquiring twice
// without an intervening BecameDead is a caller bug and panics rather than
// leaking the first instance.
func (b *ConnectionRenderBinding) BecameAlive(e *Entry) {
	if _, ok := b.live[e.ID()]; ok {
		panic(fmt.Sprintf("followline: connection already acquired for entry %d", e.ID()))
	}
	c := b.connections.Acquire(func(c *Connection) {
		c.apply(e, b.points)
	})
	b.live[e.ID()] = c
}

// BecameDead releases e's connection and its points back to their pools.
func (b *ConnectionRenderBinding) BecameDead(e *Entry) {
	c, ok := b.live[e.ID()]
	if !ok {
		panic(fmt.Sprintf("followline: no connection acquired for entry %d", e.ID()))
	}
	delete(b.live, e.ID())
	c.free()
	b.connections.Release(c)
}

// Live returns the connection currently bound to e, if any.
func (b *ConnectionRenderBinding) Live(e *Entry) (*Connection, bool) {
	c, ok := b.live[e.ID()]
	return c, ok
}

func (b *ConnectionRenderBinding) LiveCount() int {
	return len(b.live)
}
