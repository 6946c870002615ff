package system

import (
	"testing"
	"time"
)

func TestGroupAppendOrder(t *testing.T) {
	var trace []string
	g := NewGroup(PhaseSimulate)
	g.Append(&recordSystem{name: "a", trace: &trace})
	g.Append(&recordSystem{name: "b", trace: &trace})
	g.Append(&recordSystem{name: "c", trace: &trace})

	g.Tick(time.Millisecond)
	if !equalNames(trace, []string{"a", "b", "c"}) {
		t.Fatalf("execution order %v, want append order", trace)
	}
}

func TestGroupIdempotentAppend(t *testing.T) {
	g := NewGroup(PhaseSimulate)
	a := &recordSystem{name: "a"}
	if !g.Append(a) {
		t.Fatal("first append reported as duplicate")
	}
	g.Append(&recordSystem{name: "b"})
	if g.Append(&recordSystem{name: "a"}) {
		t.Fatal("duplicate append not collapsed")
	}
	if g.Len() != 2 {
		t.Fatalf("len = %d, want 2", g.Len())
	}
	if !equalNames(g.Names(), []string{"a", "b"}) {
		t.Fatalf("order %v; duplicate must keep first position", g.Names())
	}

	g.Tick(time.Millisecond)
	if a.ticks != 1 {
		t.Fatalf("first instance ticked %d times, want 1", a.ticks)
	}
}

func TestGroupNeverSorts(t *testing.T) {
	var trace []string
	g := NewGroup(PhaseSimulate)
	// Order hints present but the group was not built ordered; append
	// order must win.
	g.Append(&rankedSystem{recordSystem: recordSystem{name: "late", trace: &trace}, order: 99})
	g.Append(&rankedSystem{recordSystem: recordSystem{name: "early", trace: &trace}, order: -5})

	g.Tick(time.Millisecond)
	if !equalNames(trace, []string{"late", "early"}) {
		t.Fatalf("unordered group re-sorted: %v", trace)
	}
}

func TestOrderedGroupHonorsHints(t *testing.T) {
	var trace []string
	g := NewOrderedGroup(PhaseSimulate)
	g.Append(&rankedSystem{recordSystem: recordSystem{name: "late", trace: &trace}, order: 10})
	g.Append(&recordSystem{name: "plain", trace: &trace}) // no hint = 0
	g.Append(&rankedSystem{recordSystem: recordSystem{name: "early", trace: &trace}, order: -1})

	g.Tick(time.Millisecond)
	if !equalNames(trace, []string{"early", "plain", "late"}) {
		t.Fatalf("ordered group ran %v", trace)
	}

	// Appending resets the lazy sort.
	trace = trace[:0]
	g.Append(&rankedSystem{recordSystem: recordSystem{name: "first", trace: &trace}, order: -100})
	g.Tick(time.Millisecond)
	if trace[0] != "first" {
		t.Fatalf("late append not re-sorted: %v", trace)
	}
}
