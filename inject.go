package glimmer

// syntheticPointerEvent is a single injected mouse-channel pointer event in
// surface coordinates. Injected events run through the exact same sampler
// path as real input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given surface coordinates. The
// event is consumed on the next Update tick.
func (e *Effect) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (e *Effect) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given surface coordinates.
func (e *Effect) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full drag gesture: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). The whole sequence consumes frames ticks; the minimum is 2
// (press + release).
func (e *Effect) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// processInjected pops one queued event and feeds it through the mouse state
// machine. Returns true if an event was consumed, in which case real mouse
// polling is skipped this tick.
func (e *Effect) processInjected() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	ev := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	e.feedMouse(ev.x, ev.y, ev.pressed)
	return true
}
