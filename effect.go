package glimmer

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Default tuning values, applied by [New] for zero Config fields.
const (
	DefaultFadeSpeed          = 0.006
	DefaultMinDistance        = 2.0
	DefaultColorPhaseDistance = 800.0
	DefaultSubSteps           = 8
	DefaultStrokeWidth        = 6.0
	DefaultHueStep            = 30.0
)

// Config controls how an [Effect] samples, fades, and draws trails.
// The zero value selects the stock defaults.
type Config struct {
	// FadeSpeed is the alpha removed from every point each tick.
	// Default 0.006 (a point lives about 167 ticks).
	FadeSpeed float64
	// MinDistance is the minimum movement in pixels before a new point is
	// stored. Default 2.
	MinDistance float64
	// ColorPhaseDistance is the gesture distance in pixels of one full hue
	// cycle. Default 800.
	ColorPhaseDistance float64
	// SubSteps is the number of micro-segments each stored segment is
	// subdivided into when drawing the smoothed curve. Default 8.
	SubSteps int
	// StrokeWidth is the trail stroke width in pixels. Default 6.
	StrokeWidth float64
	// HueStep is the hue advance in degrees between successive trails.
	// Default 30.
	HueStep float64
	// MaxPoints caps the stored points per trail, evicting oldest-first
	// when full. 0 (the default) disables the cap: fading alone bounds
	// memory, since every point is pruned within 1/FadeSpeed ticks.
	MaxPoints int
	// Blend is the compositing mode for trail strokes. Default BlendAdd.
	Blend BlendMode
	// Saturation and Value are the fixed S and V of the HSV trail colors.
	// Defaults 1 (fully saturated, full brightness).
	Saturation float64
	Value      float64
}

// withDefaults returns cfg with zero fields replaced by the stock values.
func (cfg Config) withDefaults() Config {
	if cfg.FadeSpeed == 0 {
		cfg.FadeSpeed = DefaultFadeSpeed
	}
	if cfg.MinDistance == 0 {
		cfg.MinDistance = DefaultMinDistance
	}
	if cfg.ColorPhaseDistance == 0 {
		cfg.ColorPhaseDistance = DefaultColorPhaseDistance
	}
	if cfg.SubSteps == 0 {
		cfg.SubSteps = DefaultSubSteps
	}
	if cfg.StrokeWidth == 0 {
		cfg.StrokeWidth = DefaultStrokeWidth
	}
	if cfg.HueStep == 0 {
		cfg.HueStep = DefaultHueStep
	}
	if cfg.Saturation == 0 {
		cfg.Saturation = 1
	}
	if cfg.Value == 0 {
		cfg.Value = 1
	}
	return cfg
}

// Effect is the top-level light-trail effect. It owns the trail registry,
// the input sampler, and the renderer, and bridges them to the Ebitengine
// game loop: call [Effect.Update] once per tick and [Effect.Draw] once per
// frame. Everything runs on the game loop's goroutine; there is no locking
// because there is no parallelism.
type Effect struct {
	cfg      Config
	registry *Registry
	sampler  *Sampler
	renderer *renderer

	running   bool
	mouseDown bool

	injectQueue  []syntheticPointerEvent
	prevTouchIDs []ebiten.TouchID

	debug bool
}

// New creates an Effect with the given configuration. Zero Config fields
// take their documented defaults.
func New(cfg Config) *Effect {
	cfg = cfg.withDefaults()
	reg := NewRegistry(cfg.MaxPoints)
	return &Effect{
		cfg:      cfg,
		registry: reg,
		sampler:  NewSampler(reg, cfg.MinDistance, cfg.ColorPhaseDistance, cfg.HueStep),
		renderer: newRenderer(cfg.SubSteps, cfg.StrokeWidth, cfg.Blend, cfg.Saturation, cfg.Value),
	}
}

// Start enables the effect. Until Start is called (and after Stop), Update
// and Draw are no-ops.
func (e *Effect) Start() {
	e.running = true
}

// Stop tears the effect down: pending injected events are discarded and no
// further tick mutates or draws anything. Live trails are kept and resume
// fading if Start is called again.
func (e *Effect) Stop() {
	e.running = false
	e.injectQueue = e.injectQueue[:0]
	e.mouseDown = false
}

// Running reports whether the effect is started.
func (e *Effect) Running() bool {
	return e.running
}

// Registry returns the effect's trail registry for inspection. The registry
// and its trails MUST NOT be retained across frames.
func (e *Effect) Registry() *Registry {
	return e.registry
}

// SetDebugMode toggles the stats overlay drawn by [Effect.Draw].
func (e *Effect) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Update runs one cooperative tick: it feeds pending synthetic events and
// polled mouse/touch input through the sampler, then applies one frame of
// fading and cleanup. Call exactly once per ebiten Update.
func (e *Effect) Update() {
	if !e.running {
		return
	}
	injected := e.processInjected()
	if !injected {
		e.pollMouse()
	}
	e.pollTouches()
	e.registry.AdvanceFrame(e.cfg.FadeSpeed)
}

// Draw renders all live trails onto dst. A nil dst is ignored: with no
// surface the effect simply never appears.
func (e *Effect) Draw(dst *ebiten.Image) {
	if !e.running || dst == nil {
		return
	}
	e.renderer.Draw(dst, e.registry)
	if e.debug {
		e.drawDebugOverlay(dst)
	}
}

// PointerStart begins a trail for the event's pointer. Exposed for hosts
// that deliver their own pointer events instead of relying on Update's
// polling; polled and host-delivered events share one code path.
func (e *Effect) PointerStart(ev PointerEvent) {
	e.sampler.PointerStart(ev)
}

// PointerMove extends the trail bound to the event's pointer, if any.
func (e *Effect) PointerMove(ev PointerEvent) {
	e.sampler.PointerMove(ev)
}

// PointerEnd releases the event's pointer binding; the trail fades out on
// its own. Also serves as the cancel path: cancellation and release are
// indistinguishable to a trail.
func (e *Effect) PointerEnd(ev PointerEvent) {
	e.sampler.PointerEnd(ev)
}

// pollMouse reads the real mouse and synthesizes start/move/end events.
// The mouse is a singleton pointer channel with no contact identifier.
func (e *Effect) pollMouse() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	e.feedMouse(float64(mx), float64(my), pressed)
}

// feedMouse runs the mouse press state machine shared by real and injected
// input.
func (e *Effect) feedMouse(x, y float64, pressed bool) {
	ev := PointerEvent{X: x, Y: y}
	switch {
	case pressed && !e.mouseDown:
		e.mouseDown = true
		e.sampler.PointerStart(ev)
	case pressed && e.mouseDown:
		e.sampler.PointerMove(ev)
	case !pressed && e.mouseDown:
		e.mouseDown = false
		e.sampler.PointerEnd(ev)
	}
}

// pollTouches reads all active touch contacts, synthesizing a start for each
// new contact, a move for each known one, and an end for every bound contact
// that disappeared this tick.
func (e *Effect) pollTouches() {
	e.prevTouchIDs = ebiten.AppendTouchIDs(e.prevTouchIDs[:0])

	for _, tid := range e.prevTouchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		ev := PointerEvent{X: float64(tx), Y: float64(ty), Touch: tid, IsTouch: true}
		if _, bound := e.sampler.touchTrails[tid]; bound {
			e.sampler.PointerMove(ev)
		} else {
			e.sampler.PointerStart(ev)
		}
	}

	// Release bindings for contacts that lifted. Collect first: PointerEnd
	// mutates the map being ranged over.
	var ended []ebiten.TouchID
	for tid := range e.sampler.touchTrails {
		if !containsTouchID(e.prevTouchIDs, tid) {
			ended = append(ended, tid)
		}
	}
	for _, tid := range ended {
		e.sampler.PointerEnd(PointerEvent{Touch: tid, IsTouch: true})
	}
}

func containsTouchID(ids []ebiten.TouchID, tid ebiten.TouchID) bool {
	for _, id := range ids {
		if id == tid {
			return true
		}
	}
	return false
}
