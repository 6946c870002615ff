package system

import "time"

// tickEvents advances the world tick counter and delivers last tick's
// events. Registered first in the sim category so every other Simulate
// system sees a drained, current bus.
func tickEvents(deps *Deps) func(time.Duration) {
	return func(_ time.Duration) {
		deps.World.Tick++
		deps.Bus.Swap()
		deps.Bus.Dispatch()
	}
}

// tickCleanup flushes the deferred entity destruction queue at tick end.
// Registered last in the sim category.
func tickCleanup(deps *Deps) func(time.Duration) {
	return func(_ time.Duration) {
		deps.World.ECS.Flush()
	}
}
