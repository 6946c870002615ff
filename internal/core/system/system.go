package system

import "time"

// System is the interface every system instance implements. Name is the
// stable identity used for idempotent placement; Update runs once per tick
// of the owning phase group.
type System interface {
	Name() string
	Update(dt time.Duration)
}

// Ordered is an optional hint consulted only by groups constructed with
// dependency ordering enabled (NewOrderedGroup). Groups built by the
// composition engine never consult it.
type Ordered interface {
	Order() int
}

// Shutdowner is implemented by managed systems that hold resources needing
// release when the owning runtime is closed.
type Shutdowner interface {
	Shutdown()
}

// funcSystem is the lightweight handle form of an unmanaged system: a name
// bound to a bare tick function, with no persistent state of its own.
// Always held by pointer so handles of the same identity compare equal
// through the System interface.
type funcSystem struct {
	name string
	fn   func(dt time.Duration)
}

func (s *funcSystem) Name() string { return s.name }

func (s *funcSystem) Update(dt time.Duration) { s.fn(dt) }
