package engine

import "time"

// System is the interface tick-driven game logic implements.
// Systems on the same cadence run in ascending Priority order.
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}
