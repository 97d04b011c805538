package glimmer

import (
	"testing"
)

// tick advances an Effect by one frame the way Update does, minus the real
// device polling (tests inject their own events instead of depending on
// hardware state).
func tick(e *Effect) {
	if !e.running {
		return
	}
	e.processInjected()
	e.registry.AdvanceFrame(e.cfg.FadeSpeed)
}

func TestNewAppliesDefaults(t *testing.T) {
	e := New(Config{})

	if e.cfg.FadeSpeed != DefaultFadeSpeed {
		t.Errorf("FadeSpeed = %v, want %v", e.cfg.FadeSpeed, DefaultFadeSpeed)
	}
	if e.cfg.MinDistance != DefaultMinDistance {
		t.Errorf("MinDistance = %v, want %v", e.cfg.MinDistance, DefaultMinDistance)
	}
	if e.cfg.ColorPhaseDistance != DefaultColorPhaseDistance {
		t.Errorf("ColorPhaseDistance = %v, want %v", e.cfg.ColorPhaseDistance, DefaultColorPhaseDistance)
	}
	if e.cfg.SubSteps != DefaultSubSteps {
		t.Errorf("SubSteps = %d, want %d", e.cfg.SubSteps, DefaultSubSteps)
	}
	if e.cfg.StrokeWidth != DefaultStrokeWidth {
		t.Errorf("StrokeWidth = %v, want %v", e.cfg.StrokeWidth, DefaultStrokeWidth)
	}
	if e.cfg.HueStep != DefaultHueStep {
		t.Errorf("HueStep = %v, want %v", e.cfg.HueStep, DefaultHueStep)
	}
	if e.cfg.MaxPoints != 0 {
		t.Errorf("MaxPoints = %d, want 0 (uncapped)", e.cfg.MaxPoints)
	}
	if e.cfg.Blend != BlendAdd {
		t.Errorf("Blend = %d, want BlendAdd", e.cfg.Blend)
	}
	if e.cfg.Saturation != 1 || e.cfg.Value != 1 {
		t.Errorf("Saturation, Value = %v, %v, want 1, 1", e.cfg.Saturation, e.cfg.Value)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	e := New(Config{FadeSpeed: 0.01, MaxPoints: 150, Blend: BlendScreen})
	if e.cfg.FadeSpeed != 0.01 {
		t.Errorf("FadeSpeed = %v, want 0.01", e.cfg.FadeSpeed)
	}
	if e.registry.maxPoints != 150 {
		t.Errorf("registry maxPoints = %d, want 150", e.registry.maxPoints)
	}
	if e.cfg.Blend != BlendScreen {
		t.Errorf("Blend = %d, want BlendScreen", e.cfg.Blend)
	}
}

func TestEffectStartStop(t *testing.T) {
	e := New(Config{})
	if e.Running() {
		t.Error("Running() = true before Start")
	}

	e.Start()
	if !e.Running() {
		t.Error("Running() = false after Start")
	}

	e.InjectPress(10, 10)
	e.Stop()
	if e.Running() {
		t.Error("Running() = true after Stop")
	}
	if len(e.injectQueue) != 0 {
		t.Errorf("inject queue length = %d after Stop, want 0 (pending events discarded)", len(e.injectQueue))
	}
}

func TestEffectStoppedTickIsNoop(t *testing.T) {
	e := New(Config{})
	e.InjectPress(10, 10)

	// Not started: nothing fires after teardown/before startup.
	tick(e)
	if e.registry.Len() != 0 {
		t.Errorf("Len() = %d, want 0 while stopped", e.registry.Len())
	}
}

func TestEffectPressCreatesVisibleMark(t *testing.T) {
	e := New(Config{})
	e.Start()

	e.PointerStart(PointerEvent{X: 10, Y: 10})

	if e.registry.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", e.registry.Len())
	}
	tr, _ := e.registry.Trail(1)
	if tr.Len() != 2 {
		t.Fatalf("point count = %d, want 2 coincident points", tr.Len())
	}
	for i, p := range tr.Points() {
		if p.X != 10 || p.Y != 10 || p.Alpha != 1 {
			t.Errorf("point %d = %+v, want (10, 10) at alpha 1", i, p)
		}
	}
}

func TestEffectEndToEndFadeLifecycle(t *testing.T) {
	// Pointer-down at (10,10), release, then fade at the default 0.006:
	// alpha after N ticks = max(1 - 0.006*N, 0). 166 full decrements leave
	// a tiny positive remainder; the trail is removed on tick 167.
	e := New(Config{})
	e.Start()

	e.InjectPress(10, 10)
	e.InjectRelease(10, 10)
	tick(e) // consumes press; first fade tick
	tick(e) // consumes release; second fade tick

	tr, ok := e.registry.Trail(1)
	if !ok {
		t.Fatal("trail missing after press")
	}
	for _, p := range tr.Points() {
		want := 1 - 0.006*2
		if diff := p.Alpha - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("alpha after 2 ticks = %v, want %v", p.Alpha, want)
		}
	}

	for n := 2; n < 166; n++ {
		tick(e)
	}
	if _, ok := e.registry.Trail(1); !ok {
		t.Fatal("trail removed before tick 167")
	}

	tick(e) // tick 167 drives alpha to zero and prunes the trail
	if _, ok := e.registry.Trail(1); ok {
		t.Error("trail still present after tick 167")
	}
}

func TestEffectReleaseKeepsTrailFading(t *testing.T) {
	e := New(Config{})
	e.Start()

	e.PointerStart(PointerEvent{X: 0, Y: 0})
	e.PointerMove(PointerEvent{X: 50, Y: 0})
	e.PointerEnd(PointerEvent{})

	if e.sampler.Drawing() {
		t.Error("Drawing() = true after release")
	}
	tr, ok := e.registry.Trail(1)
	if !ok {
		t.Fatal("trail removed by pointer end; fading is the sole removal mechanism")
	}
	if tr.Len() != 3 {
		t.Errorf("point count = %d, want 3", tr.Len())
	}

	e.registry.AdvanceFrame(e.cfg.FadeSpeed)
	for _, p := range tr.Points() {
		if p.Alpha >= 1 {
			t.Errorf("alpha = %v, want < 1 (still fading after release)", p.Alpha)
		}
	}
}

func TestEffectFeedMouseStateMachine(t *testing.T) {
	e := New(Config{})
	e.Start()

	e.feedMouse(10, 10, false) // hover, no binding
	if e.registry.Len() != 0 {
		t.Fatalf("hover created a trail")
	}

	e.feedMouse(10, 10, true) // press
	if !e.mouseDown || e.registry.Len() != 1 {
		t.Fatalf("press: mouseDown = %v, trails = %d, want true, 1", e.mouseDown, e.registry.Len())
	}

	e.feedMouse(30, 10, true) // drag
	tr, _ := e.registry.Trail(1)
	if tr.Len() != 3 {
		t.Errorf("point count after drag = %d, want 3", tr.Len())
	}

	e.feedMouse(30, 10, false) // release
	if e.mouseDown {
		t.Error("mouseDown = true after release")
	}
	if e.sampler.Drawing() {
		t.Error("Drawing() = true after release")
	}
}

func TestEffectColorPhaseEndToEnd(t *testing.T) {
	e := New(Config{})
	e.Start()

	e.PointerStart(PointerEvent{X: 0, Y: 0})
	e.PointerMove(PointerEvent{X: 850, Y: 0})

	tr, _ := e.registry.Trail(1)
	pts := tr.Points()
	want := normHue(tr.BaseHue + 22.5)
	if got := pts[len(pts)-1].Hue; got != want {
		t.Errorf("hue after 850px = %v, want %v", got, want)
	}
}
