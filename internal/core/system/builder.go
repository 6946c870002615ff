package system

import (
	"fmt"

	"go.uber.org/zap"
)

// Built-in categories registered by Defaults, one per phase.
const (
	CategoryBoot = "boot" // world seeding, Initialize affinity
	CategorySim  = "sim"  // per-tick simulation, Simulate affinity
	CategoryView = "view" // observation and export, Present affinity
)

// Builder accumulates one runtime composition: which phases are requested,
// which catalog categories are auto-included, and which systems are manually
// appended to each phase. Configuration calls chain and are commutative
// except for manual append order within one phase, which is preserved
// exactly. Build is terminal — the builder is spent afterwards; callers
// wanting a different composition construct a new one.
//
// Single-owner, single-use, not safe for concurrent configuration.
type Builder struct {
	source Source
	placer Placer
	driver Driver
	log    *zap.Logger
	flags  DiscoverFlags
	phases [phaseCount]bool
	rules  Rules
	manual [phaseCount][]manualEntry
	built  bool
}

type manualEntry struct {
	desc     Descriptor
	declared Kind
}

func NewBuilder(source Source, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{
		source: source,
		placer: AffinityPlacer{},
		log:    log,
	}
}

// SelectPhase marks one phase as requested. Idempotent.
func (b *Builder) SelectPhase(p Phase) *Builder {
	if p.valid() {
		b.phases[p] = true
	}
	return b
}

// Defaults requests all three phases and opts in the three built-in
// categories in one call.
func (b *Builder) Defaults() *Builder {
	b.SelectPhase(PhaseInitialize)
	b.SelectPhase(PhaseSimulate)
	b.SelectPhase(PhasePresent)
	b.IncludeCategory(CategoryBoot)
	b.IncludeCategory(CategorySim)
	b.IncludeCategory(CategoryView)
	return b
}

// IncludeCategory opts one category in for automatic inclusion. A category
// absent from the catalog matches nothing.
func (b *Builder) IncludeCategory(name string) *Builder {
	b.rules.IncludeCategory(name)
	return b
}

// ExcludeName blacklists one system identity from automatic inclusion.
func (b *Builder) ExcludeName(name string) *Builder {
	b.rules.ExcludeName(name)
	return b
}

// ExcludeDescriptor blacklists one system by descriptor reference.
func (b *Builder) ExcludeDescriptor(d Descriptor) *Builder {
	b.rules.ExcludeDescriptor(d)
	return b
}

func (b *Builder) ExcludeDescriptors(ds ...Descriptor) *Builder {
	for _, d := range ds {
		b.rules.ExcludeDescriptor(d)
	}
	return b
}

// Flags sets the discovery flags passed to the catalog source.
func (b *Builder) Flags(flags DiscoverFlags) *Builder {
	b.flags = flags
	return b
}

// AppendManaged appends a managed system to the phase's manual list, after
// everything automatic inclusion placed there. Call order within one phase
// is the execution order. The descriptor must actually be classified
// Managed; a mismatch fails the build.
func (b *Builder) AppendManaged(p Phase, d Descriptor) *Builder {
	return b.append(p, d, Managed)
}

// AppendUnmanaged is the unmanaged counterpart of AppendManaged.
func (b *Builder) AppendUnmanaged(p Phase, d Descriptor) *Builder {
	return b.append(p, d, Unmanaged)
}

func (b *Builder) append(p Phase, d Descriptor, declared Kind) *Builder {
	if !p.valid() {
		return b
	}
	b.manual[p] = append(b.manual[p], manualEntry{desc: d, declared: declared})
	return b
}

// PlaceWith overrides the auto-placement collaborator.
func (b *Builder) PlaceWith(p Placer) *Builder {
	if p != nil {
		b.placer = p
	}
	return b
}

// AttachTo hands the finished runtime to the given driver at the end of a
// successful build.
func (b *Builder) AttachTo(d Driver) *Builder {
	b.driver = d
	return b
}

// Build composes a fresh runtime. Terminal.
func (b *Builder) Build() (*Runtime, error) {
	return b.BuildInto(NewRuntime(b.log))
}

// BuildInto composes into an existing runtime: phase groups of unrequested
// phases are torn down, requested ones are created or reused. Terminal.
//
// Order of operations: validate, resolve the catalog through the filter
// once, materialize candidates at root level, settle phase groups, delegate
// auto-placement, then manual appends in declared order. Validation runs
// fully up front so a failed build leaves the target untouched.
func (b *Builder) BuildInto(rt *Runtime) (*Runtime, error) {
	if b.built {
		return nil, ErrBuilderSpent
	}
	for p := PhaseInitialize; p < phaseCount; p++ {
		entries := b.manual[p]
		if len(entries) > 0 && !b.phases[p] {
			return nil, fmt.Errorf("append %s to %s: %w", entries[0].desc.Name, p, ErrPhaseNotRequested)
		}
		for _, e := range entries {
			if err := e.desc.validate(); err != nil {
				return nil, fmt.Errorf("append to %s: %w", p, err)
			}
			if e.desc.Kind != e.declared {
				return nil, &ClassificationError{Name: e.desc.Name, Declared: e.declared, Actual: e.desc.Kind}
			}
		}
	}
	b.built = true

	// One filter pass over the whole catalog; the same candidate subset
	// feeds root placement for every phase.
	candidates := Select(b.source.DiscoverAll(b.flags), b.rules)
	for _, d := range candidates {
		rt.addRoot(rt.Instance(d))
	}

	// Groups are settled unconditionally per phase, before any placement
	// targets them.
	for p := PhaseInitialize; p < phaseCount; p++ {
		if b.phases[p] {
			rt.ensureGroup(p)
		} else {
			rt.dropGroup(p)
		}
	}

	for _, d := range candidates {
		b.placer.Place(rt, d)
	}

	for p := PhaseInitialize; p < phaseCount; p++ {
		g := rt.Group(p)
		if g == nil {
			continue
		}
		for _, e := range b.manual[p] {
			if !g.Append(rt.Instance(e.desc)) {
				b.log.Debug("duplicate append collapsed",
					zap.String("system", e.desc.Name),
					zap.Stringer("phase", p))
			}
		}
	}

	b.log.Debug("runtime composed",
		zap.Int("auto_included", len(candidates)),
		zap.Bool("initialize", rt.HasPhase(PhaseInitialize)),
		zap.Bool("simulate", rt.HasPhase(PhaseSimulate)),
		zap.Bool("present", rt.HasPhase(PhasePresent)))

	if b.driver != nil {
		b.driver.Attach(rt)
	}
	return rt, nil
}
