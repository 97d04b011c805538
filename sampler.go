package glimmer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerEvent is one pointer input event in surface coordinates. Touch
// events carry the contact's stable ebiten.TouchID with IsTouch set; mouse
// events leave IsTouch false (the mouse is a singleton channel and needs
// no identifier).
type PointerEvent struct {
	X, Y    float64
	Touch   ebiten.TouchID
	IsTouch bool
}

// Sampler converts pointer events into registry mutations. It owns the
// pointer-to-trail bindings (one per touch contact plus one mouse slot), the
// global hue anchor that staggers successive trails by HueStep degrees, and
// the sampling policy: near-duplicate positions inside MinDistance are
// dropped, and each accepted sample's hue advances along a sawtooth cycle
// keyed to the distance traveled rather than to time, so color motion tracks
// gesture speed.
type Sampler struct {
	registry *Registry

	minDistance   float64
	phaseDistance float64
	hueStep       float64

	touchTrails map[ebiten.TouchID]TrailID
	mouseTrail  TrailID
	mouseActive bool
	hueAnchor   float64
}

// NewSampler creates a sampler driving the given registry.
func NewSampler(reg *Registry, minDistance, phaseDistance, hueStep float64) *Sampler {
	return &Sampler{
		registry:      reg,
		minDistance:   minDistance,
		phaseDistance: phaseDistance,
		hueStep:       hueStep,
		touchTrails:   make(map[ebiten.TouchID]TrailID),
	}
}

// PointerStart begins a new trail for the event's pointer and binds the
// pointer to it. Each call advances the global hue anchor so successive
// trails get visibly distinct base hues.
func (s *Sampler) PointerStart(ev PointerEvent) {
	s.hueAnchor = normHue(s.hueAnchor + s.hueStep)
	id := s.registry.CreateTrail(ev.X, ev.Y, s.hueAnchor)
	if ev.IsTouch {
		s.touchTrails[ev.Touch] = id
	} else {
		s.mouseTrail = id
		s.mouseActive = true
	}
}

// PointerMove extends the trail bound to the event's pointer. Moves with no
// binding are ignored. A binding whose trail has already fully faded is
// cleared lazily and the move is ignored. Moves shorter than MinDistance
// from the trail's last captured position are dropped to suppress
// near-duplicate samples from high-frequency pointer events.
func (s *Sampler) PointerMove(ev PointerEvent) {
	id, ok := s.binding(ev)
	if !ok {
		return
	}
	tr, ok := s.registry.Trail(id)
	if !ok {
		s.unbind(ev)
		return
	}

	d := tr.DistanceFromLast(ev.X, ev.Y)
	if d < s.minDistance {
		return
	}

	// Sawtooth hue cycle over the cumulative distance including this move.
	total := tr.Distance + d
	progress := math.Mod(total, s.phaseDistance) / s.phaseDistance
	hue := normHue(tr.BaseHue + 360*progress)

	s.registry.AppendPoint(id, ev.X, ev.Y, hue)
}

// PointerEnd releases the event's pointer binding. The trail itself is left
// untouched: fading is the sole removal mechanism, so a released trail keeps
// dissolving on screen instead of vanishing.
func (s *Sampler) PointerEnd(ev PointerEvent) {
	s.unbind(ev)
}

// Drawing reports whether any pointer is currently bound to a trail.
func (s *Sampler) Drawing() bool {
	return s.mouseActive || len(s.touchTrails) > 0
}

// HueAnchor returns the current global hue anchor (the base hue of the most
// recently created trail).
func (s *Sampler) HueAnchor() float64 {
	return s.hueAnchor
}

func (s *Sampler) binding(ev PointerEvent) (TrailID, bool) {
	if ev.IsTouch {
		id, ok := s.touchTrails[ev.Touch]
		return id, ok
	}
	if s.mouseActive {
		return s.mouseTrail, true
	}
	return 0, false
}

func (s *Sampler) unbind(ev PointerEvent) {
	if ev.IsTouch {
		delete(s.touchTrails, ev.Touch)
		return
	}
	s.mouseActive = false
	s.mouseTrail = 0
}
