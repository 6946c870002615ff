package system

import "time"

// recordSystem counts its updates and optionally appends its name to a
// shared trace so tests can assert execution order.
type recordSystem struct {
	name  string
	ticks int
	trace *[]string
}

func (s *recordSystem) Name() string { return s.name }

func (s *recordSystem) Update(time.Duration) {
	s.ticks++
	if s.trace != nil {
		*s.trace = append(*s.trace, s.name)
	}
}

type shutdownSystem struct {
	recordSystem
	closed *[]string
}

func (s *shutdownSystem) Shutdown() {
	*s.closed = append(*s.closed, s.name)
}

type rankedSystem struct {
	recordSystem
	order int
}

func (s *rankedSystem) Order() int { return s.order }

func managedDesc(name, category string, phase Phase) Descriptor {
	return Descriptor{
		Name:     name,
		Category: category,
		Kind:     Managed,
		Phase:    phase,
		New:      func() System { return &recordSystem{name: name} },
	}
}

func unmanagedDesc(name, category string, phase Phase) Descriptor {
	return Descriptor{
		Name:     name,
		Category: category,
		Kind:     Unmanaged,
		Phase:    phase,
		Run:      func(time.Duration) {},
	}
}

func newTestCatalog(ds ...Descriptor) *Catalog {
	c := NewCatalog()
	for _, d := range ds {
		if err := c.Register(d); err != nil {
			panic(err)
		}
	}
	return c
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
