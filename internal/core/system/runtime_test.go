package system

import (
	"testing"
	"time"
)

func TestRuntimeInstanceGetOrCreate(t *testing.T) {
	t.Run("managed singleton", func(t *testing.T) {
		rt := NewRuntime(nil)
		created := 0
		d := Descriptor{
			Name: "sim.counter", Category: CategorySim, Kind: Managed, Phase: PhaseSimulate,
			New: func() System {
				created++
				return &recordSystem{name: "sim.counter"}
			},
		}
		first := rt.Instance(d)
		second := rt.Instance(d)
		if first != second {
			t.Fatal("same identity yielded two instances")
		}
		if created != 1 {
			t.Fatalf("factory invoked %d times, want 1", created)
		}
	})

	t.Run("unmanaged handle cached by name", func(t *testing.T) {
		rt := NewRuntime(nil)
		ticks := 0
		d := Descriptor{
			Name: "sim.fn", Category: CategorySim, Kind: Unmanaged, Phase: PhaseSimulate,
			Run: func(time.Duration) { ticks++ },
		}
		a := rt.Instance(d)
		b := rt.Instance(d)
		if a != b {
			t.Fatal("handle not cached per identity")
		}
		other := d
		other.Name = "sim.other"
		if rt.Instance(other) == a {
			t.Fatal("distinct identities share a handle")
		}
		a.Update(time.Millisecond)
		if ticks != 1 {
			t.Fatalf("handle did not reach the tick function, ticks=%d", ticks)
		}
	})
}

func TestRuntimeTickPhase(t *testing.T) {
	rt := NewRuntime(nil)
	g := rt.ensureGroup(PhaseSimulate)
	s := &recordSystem{name: "sim.s"}
	g.Append(s)

	rt.TickPhase(PhaseSimulate, time.Millisecond)
	rt.TickPhase(PhaseInitialize, time.Millisecond) // absent phase: no-op
	if s.ticks != 1 {
		t.Fatalf("ticks = %d, want 1", s.ticks)
	}
}

func TestRuntimeClose(t *testing.T) {
	rt := NewRuntime(nil)
	var closed []string
	mk := func(name string) Descriptor {
		return Descriptor{
			Name: name, Category: CategorySim, Kind: Managed, Phase: PhaseSimulate,
			New: func() System {
				return &shutdownSystem{recordSystem: recordSystem{name: name}, closed: &closed}
			},
		}
	}
	rt.Instance(mk("sim.first"))
	rt.Instance(mk("sim.second"))

	rt.Close()
	if !equalNames(closed, []string{"sim.second", "sim.first"}) {
		t.Fatalf("shutdown order %v, want newest first", closed)
	}
	if _, ok := rt.System("sim.first"); ok {
		t.Fatal("instance table survived Close")
	}
}
