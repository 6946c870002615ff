package system

import (
	"sort"
	"time"
)

// Group is an ordered container of system instances for one phase. Iteration
// order is first-successful-append order; Append is idempotent per name.
//
// The general scheduler behavior of ordering members by their declared Order
// hint is available via NewOrderedGroup (members are stable-sorted lazily
// before each tick, so registration order breaks ties). Groups built by the
// composition engine always have that disabled: manual/automatic placement
// order is itself the intended execution order and is never second-guessed.
type Group struct {
	phase   Phase
	ordered bool
	sorted  bool
	members []System
	present map[string]struct{}
}

// NewGroup creates a group that runs its members in strict append order.
func NewGroup(phase Phase) *Group {
	return &Group{
		phase:   phase,
		members: make([]System, 0, 16),
		present: make(map[string]struct{}, 16),
	}
}

// NewOrderedGroup creates a group that honors Order hints.
func NewOrderedGroup(phase Phase) *Group {
	g := NewGroup(phase)
	g.ordered = true
	return g
}

func (g *Group) Phase() Phase { return g.phase }

func (g *Group) Len() int { return len(g.members) }

func (g *Group) Contains(name string) bool {
	_, ok := g.present[name]
	return ok
}

// Append adds a system to the end of the group. Re-adding a system whose
// name is already present is a no-op; the first occurrence keeps its
// position. Returns false when the append was collapsed.
func (g *Group) Append(s System) bool {
	if _, ok := g.present[s.Name()]; ok {
		return false
	}
	g.members = append(g.members, s)
	g.present[s.Name()] = struct{}{}
	g.sorted = false
	return true
}

// Systems returns the members in iteration order. The slice is a copy.
func (g *Group) Systems() []System {
	g.ensureSorted()
	out := make([]System, len(g.members))
	copy(out, g.members)
	return out
}

// Names returns the member names in iteration order.
func (g *Group) Names() []string {
	g.ensureSorted()
	out := make([]string, len(g.members))
	for i, s := range g.members {
		out[i] = s.Name()
	}
	return out
}

// Tick runs every member once, in iteration order.
func (g *Group) Tick(dt time.Duration) {
	g.ensureSorted()
	for _, s := range g.members {
		s.Update(dt)
	}
}

func (g *Group) ensureSorted() {
	if !g.ordered || g.sorted {
		return
	}
	sort.SliceStable(g.members, func(i, j int) bool {
		return orderHint(g.members[i]) < orderHint(g.members[j])
	})
	g.sorted = true
}

func orderHint(s System) int {
	if o, ok := s.(Ordered); ok {
		return o.Order()
	}
	return 0
}
