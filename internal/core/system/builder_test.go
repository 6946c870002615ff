package system

import (
	"errors"
	"testing"
	"time"
)

func TestBuilderAutomaticInclusion(t *testing.T) {
	catalog := newTestCatalog(
		unmanagedDesc("catA.sys1", "catA", PhaseSimulate),
		unmanagedDesc("catA.sys2", "catA", PhaseSimulate),
		unmanagedDesc("catB.sys3", "catB", PhasePresent),
	)

	rt, err := NewBuilder(catalog, nil).
		SelectPhase(PhaseSimulate).
		IncludeCategory("catA").
		ExcludeName("catA.sys2").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	roots := rt.Roots()
	if len(roots) != 1 || roots[0].Name() != "catA.sys1" {
		t.Fatalf("root placement = %v, want [catA.sys1]", rootNames(rt))
	}
	g := rt.Group(PhaseSimulate)
	if g == nil {
		t.Fatal("Simulate group missing")
	}
	if !equalNames(g.Names(), []string{"catA.sys1"}) {
		t.Fatalf("Simulate group = %v", g.Names())
	}
}

func TestBuilderManualOrderAndDuplicates(t *testing.T) {
	sysX := unmanagedDesc("manual.x", "manual", PhaseSimulate)
	sysY := managedDesc("manual.y", "manual", PhaseSimulate)
	catalog := newTestCatalog(sysX, sysY)

	rt, err := NewBuilder(catalog, nil).
		SelectPhase(PhaseSimulate).
		AppendUnmanaged(PhaseSimulate, sysX).
		AppendManaged(PhaseSimulate, sysY).
		AppendUnmanaged(PhaseSimulate, sysX).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	g := rt.Group(PhaseSimulate)
	if !equalNames(g.Names(), []string{"manual.x", "manual.y"}) {
		t.Fatalf("order %v, want duplicate collapsed to first position", g.Names())
	}
	if rt.HasPhase(PhaseInitialize) || rt.HasPhase(PhasePresent) {
		t.Fatal("unselected phases have groups")
	}
}

func TestBuilderAutomaticBeforeManual(t *testing.T) {
	auto := unmanagedDesc("sim.auto", CategorySim, PhaseSimulate)
	manual := unmanagedDesc("extra.manual", "extra", PhaseSimulate)
	catalog := newTestCatalog(auto, manual)

	rt, err := NewBuilder(catalog, nil).
		SelectPhase(PhaseSimulate).
		IncludeCategory(CategorySim).
		AppendUnmanaged(PhaseSimulate, manual).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := rt.Group(PhaseSimulate).Names()
	if !equalNames(got, []string{"sim.auto", "extra.manual"}) {
		t.Fatalf("order %v, want automatic placement first", got)
	}
}

func TestBuilderAppendToUnselectedPhase(t *testing.T) {
	sys := unmanagedDesc("boot.seed", CategoryBoot, PhaseInitialize)
	catalog := newTestCatalog(sys)

	_, err := NewBuilder(catalog, nil).
		SelectPhase(PhaseSimulate).
		AppendUnmanaged(PhaseInitialize, sys).
		Build()
	if !errors.Is(err, ErrPhaseNotRequested) {
		t.Fatalf("err = %v, want ErrPhaseNotRequested", err)
	}
}

func TestBuilderClassificationMismatch(t *testing.T) {
	unmanaged := unmanagedDesc("sim.value", CategorySim, PhaseSimulate)
	catalog := newTestCatalog(unmanaged)

	rt := NewRuntime(nil)
	seeded := NewGroup(PhasePresent)
	seeded.Append(&recordSystem{name: "pre.existing"})
	rt.groups[PhasePresent] = seeded

	_, err := NewBuilder(catalog, nil).
		SelectPhase(PhaseSimulate).
		SelectPhase(PhasePresent).
		AppendManaged(PhaseSimulate, unmanaged). // wrong variant on purpose
		BuildInto(rt)

	var ce *ClassificationError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want ClassificationError", err)
	}
	if ce.Declared != Managed || ce.Actual != Unmanaged {
		t.Fatalf("classification detail = %+v", ce)
	}
	// Atomic abort: the target runtime must be untouched.
	if rt.HasPhase(PhaseSimulate) {
		t.Fatal("failed build mutated phase groups")
	}
	if g := rt.Group(PhasePresent); g == nil || g.Len() != 1 {
		t.Fatal("failed build touched pre-existing group")
	}
}

func TestBuilderTearsDownUnrequestedPhase(t *testing.T) {
	catalog := newTestCatalog(unmanagedDesc("sim.only", CategorySim, PhaseSimulate))

	rt := NewRuntime(nil)
	stale := NewGroup(PhaseInitialize)
	stale.Append(&recordSystem{name: "stale.boot"})
	rt.groups[PhaseInitialize] = stale

	out, err := NewBuilder(catalog, nil).
		SelectPhase(PhaseSimulate).
		IncludeCategory(CategorySim).
		BuildInto(rt)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if out.HasPhase(PhaseInitialize) {
		t.Fatal("pre-existing Initialize group survived an unrequesting build")
	}
	if !out.HasPhase(PhaseSimulate) {
		t.Fatal("Simulate group missing")
	}
}

func TestBuilderDeterministicAcrossEngines(t *testing.T) {
	build := func() *Runtime {
		catalog := newTestCatalog(
			unmanagedDesc("sim.a", CategorySim, PhaseSimulate),
			managedDesc("sim.b", CategorySim, PhaseSimulate),
			unmanagedDesc("view.c", CategoryView, PhasePresent),
		)
		rt, err := NewBuilder(catalog, nil).
			Defaults().
			ExcludeName("sim.b").
			AppendManaged(PhaseSimulate, managedDesc("manual.m", "manual", PhaseSimulate)).
			Build()
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		return rt
	}

	first, second := build(), build()
	for p := PhaseInitialize; p < phaseCount; p++ {
		a, b := first.Group(p), second.Group(p)
		if (a == nil) != (b == nil) {
			t.Fatalf("phase %s presence differs", p)
		}
		if a != nil && !equalNames(a.Names(), b.Names()) {
			t.Fatalf("phase %s order differs: %v vs %v", p, a.Names(), b.Names())
		}
	}
}

func TestBuilderSpent(t *testing.T) {
	b := NewBuilder(newTestCatalog(), nil).SelectPhase(PhaseSimulate)
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderSpent) {
		t.Fatalf("second build err = %v, want ErrBuilderSpent", err)
	}
}

func TestBuilderDefaults(t *testing.T) {
	catalog := newTestCatalog(
		managedDesc("boot.seed", CategoryBoot, PhaseInitialize),
		unmanagedDesc("sim.step", CategorySim, PhaseSimulate),
		unmanagedDesc("view.show", CategoryView, PhasePresent),
		unmanagedDesc("other.off", "other", PhaseSimulate),
	)

	rt, err := NewBuilder(catalog, nil).Defaults().Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for p := PhaseInitialize; p < phaseCount; p++ {
		if !rt.HasPhase(p) {
			t.Fatalf("phase %s missing after Defaults", p)
		}
	}
	if !equalNames(rootNames(rt), []string{"boot.seed", "sim.step", "view.show"}) {
		t.Fatalf("roots = %v; non-default category leaked in", rootNames(rt))
	}
	if !equalNames(rt.Group(PhaseInitialize).Names(), []string{"boot.seed"}) {
		t.Fatalf("Initialize group = %v", rt.Group(PhaseInitialize).Names())
	}
}

func TestBuilderAutoAndManualSameIdentity(t *testing.T) {
	d := managedDesc("sim.shared", CategorySim, PhaseSimulate)
	catalog := newTestCatalog(d)

	rt, err := NewBuilder(catalog, nil).
		SelectPhase(PhaseSimulate).
		IncludeCategory(CategorySim).
		AppendManaged(PhaseSimulate, d).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	g := rt.Group(PhaseSimulate)
	if g.Len() != 1 {
		t.Fatalf("identity placed twice: %v", g.Names())
	}
	auto, _ := rt.System("sim.shared")
	if auto != g.Systems()[0] {
		t.Fatal("auto and manual placement materialized different instances")
	}
}

func TestBuilderAttachesDriver(t *testing.T) {
	d := &fakeDriver{}
	rt, err := NewBuilder(newTestCatalog(), nil).
		SelectPhase(PhaseSimulate).
		AttachTo(d).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if d.attached != rt {
		t.Fatal("driver did not receive the built runtime")
	}
	d.attached.TickPhase(PhaseSimulate, time.Millisecond)
}

type fakeDriver struct {
	attached *Runtime
}

func (d *fakeDriver) Attach(rt *Runtime) { d.attached = rt }

func rootNames(rt *Runtime) []string {
	roots := rt.Roots()
	out := make([]string, len(roots))
	for i, s := range roots {
		out[i] = s.Name()
	}
	return out
}
