package glimmer

import (
	"testing"
)

func TestInjectQueueOrder(t *testing.T) {
	e := New(Config{})

	e.InjectPress(1, 1)
	e.InjectMove(2, 2)
	e.InjectRelease(3, 3)

	if len(e.injectQueue) != 3 {
		t.Fatalf("queue length = %d, want 3", len(e.injectQueue))
	}
	wantPressed := []bool{true, true, false}
	for i, ev := range e.injectQueue {
		if ev.pressed != wantPressed[i] {
			t.Errorf("event %d pressed = %v, want %v", i, ev.pressed, wantPressed[i])
		}
	}
}

func TestInjectConsumesOnePerTick(t *testing.T) {
	e := New(Config{})
	e.Start()

	e.InjectPress(10, 10)
	e.InjectRelease(10, 10)

	if consumed := e.processInjected(); !consumed {
		t.Fatal("first event not consumed")
	}
	if len(e.injectQueue) != 1 {
		t.Errorf("queue length = %d after one tick, want 1", len(e.injectQueue))
	}
	if consumed := e.processInjected(); !consumed {
		t.Fatal("second event not consumed")
	}
	if consumed := e.processInjected(); consumed {
		t.Error("empty queue reported a consumed event")
	}
}

func TestInjectDragSequence(t *testing.T) {
	e := New(Config{})
	e.Start()

	e.InjectDrag(0, 0, 100, 0, 7)
	if len(e.injectQueue) != 7 {
		t.Fatalf("queue length = %d, want 7", len(e.injectQueue))
	}

	for e.processInjected() {
	}

	tr, ok := e.registry.Trail(1)
	if !ok {
		t.Fatal("drag created no trail")
	}
	// Press seeds 2 points; the 5 intermediate moves are evenly spaced
	// (100/6 ≈ 16.7px apart, well past MinDistance) so each lands a point.
	// The release only unbinds: it never appends.
	if tr.Len() != 7 {
		t.Errorf("point count = %d, want 7", tr.Len())
	}
	want := 500.0 / 6 // five moves of 100/6 px each
	if diff := tr.Distance - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Distance = %v, want %v", tr.Distance, want)
	}
	if e.sampler.Drawing() {
		t.Error("Drawing() = true after drag release")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	e := New(Config{})
	e.InjectDrag(0, 0, 10, 10, 0)
	if len(e.injectQueue) != 2 {
		t.Errorf("queue length = %d, want 2 (press + release)", len(e.injectQueue))
	}
}
