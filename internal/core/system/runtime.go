package system

import (
	"time"

	"go.uber.org/zap"
)

// Runtime is the product of one build: up to three phase groups populated in
// final order, plus the name-keyed instance table backing get-or-create
// materialization. It is exclusively owned by whichever driver ticks it; no
// internal locking — the whole configure/build sequence runs on one call
// stack before the runtime is handed to any consumer.
type Runtime struct {
	log       *zap.Logger
	groups    [phaseCount]*Group
	instances map[string]System
	created   []string // instantiation order, for deterministic teardown
	roots     []System // root-level auto-placement order
	rooted    map[string]struct{}
}

func NewRuntime(log *zap.Logger) *Runtime {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runtime{
		log:       log,
		instances: make(map[string]System, 32),
		rooted:    make(map[string]struct{}, 32),
	}
}

// Group returns the phase's group, or nil when the phase was not requested.
func (r *Runtime) Group(p Phase) *Group {
	if !p.valid() {
		return nil
	}
	return r.groups[p]
}

func (r *Runtime) HasPhase(p Phase) bool {
	return r.Group(p) != nil
}

// Roots returns the root-level placements in catalog order.
func (r *Runtime) Roots() []System {
	out := make([]System, len(r.roots))
	copy(out, r.roots)
	return out
}

// System looks up a materialized instance by name.
func (r *Runtime) System(name string) (System, bool) {
	s, ok := r.instances[name]
	return s, ok
}

// Instance materializes a descriptor with get-or-create semantics: the same
// name always yields the same logical instance within one runtime. Managed
// descriptors invoke their factory once; unmanaged descriptors get a cached
// lightweight handle around their tick function.
func (r *Runtime) Instance(d Descriptor) System {
	if s, ok := r.instances[d.Name]; ok {
		return s
	}
	var s System
	if d.Kind == Managed {
		s = d.New()
	} else {
		s = &funcSystem{name: d.Name, fn: d.Run}
	}
	r.instances[d.Name] = s
	r.created = append(r.created, d.Name)
	return s
}

// TickPhase ticks one phase group. A phase without a group is a no-op.
func (r *Runtime) TickPhase(p Phase, dt time.Duration) {
	if g := r.Group(p); g != nil {
		g.Tick(dt)
	}
}

// Close tears down every instance the runtime owns, newest first. Managed
// systems implementing Shutdowner get their Shutdown hook; groups and the
// instance table are released.
func (r *Runtime) Close() {
	for i := len(r.created) - 1; i >= 0; i-- {
		if s, ok := r.instances[r.created[i]].(Shutdowner); ok {
			s.Shutdown()
		}
	}
	for p := range r.groups {
		r.groups[p] = nil
	}
	r.instances = make(map[string]System)
	r.created = nil
	r.roots = nil
	r.rooted = make(map[string]struct{})
}

func (r *Runtime) addRoot(s System) {
	if _, ok := r.rooted[s.Name()]; ok {
		return
	}
	r.roots = append(r.roots, s)
	r.rooted[s.Name()] = struct{}{}
}

func (r *Runtime) ensureGroup(p Phase) *Group {
	if r.groups[p] == nil {
		r.groups[p] = NewGroup(p)
	}
	return r.groups[p]
}

func (r *Runtime) dropGroup(p Phase) {
	if r.groups[p] != nil {
		r.log.Debug("phase group torn down", zap.Stringer("phase", p))
		r.groups[p] = nil
	}
}
