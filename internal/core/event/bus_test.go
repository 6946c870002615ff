package event

import "testing"

type ping struct{ n int }
type pong struct{ n int }

func TestBusDoubleBuffer(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(p ping) { got = append(got, p.n) })

	Emit(b, ping{n: 1})
	b.Dispatch()
	if len(got) != 0 {
		t.Fatal("event delivered in the tick it was emitted")
	}

	b.Swap()
	b.Dispatch()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %v, want [1]", got)
	}

	// Drained events do not re-deliver.
	b.Swap()
	b.Dispatch()
	if len(got) != 1 {
		t.Fatalf("event re-delivered: %v", got)
	}
}

func TestBusTypedDelivery(t *testing.T) {
	b := NewBus()
	var pings, pongs int
	Subscribe(b, func(ping) { pings++ })
	Subscribe(b, func(pong) { pongs++ })

	Emit(b, ping{})
	Emit(b, ping{})
	Emit(b, pong{})
	b.Swap()
	b.Dispatch()

	if pings != 2 || pongs != 1 {
		t.Fatalf("pings=%d pongs=%d", pings, pongs)
	}
}

func TestBusNoSubscribers(t *testing.T) {
	b := NewBus()
	Emit(b, ping{})
	b.Swap()
	b.Dispatch() // must not panic
}
