// Package glimmer renders fading, color-shifting light trails that follow
// pointer movement, for [Ebitengine] games and toys.
//
// Each continuous gesture (a mouse drag or an individual touch contact)
// leaves its own trail: a sequence of sampled points smoothed into a curve
// with Catmull-Rom interpolation, colored by a hue that cycles with the
// distance traveled, and faded out a little more on every tick until the
// trail dissolves. Multiple touches and the mouse can draw simultaneously,
// each on an independent trail.
//
// # Quick start
//
// Create an [Effect], start it, and call [Effect.Update] and [Effect.Draw]
// from your game loop:
//
//	type Game struct{ fx *glimmer.Effect }
//
//	func (g *Game) Update() error        { g.fx.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.fx.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
//	func main() {
//		fx := glimmer.New(glimmer.Config{})
//		fx.Start()
//		ebiten.RunGame(&Game{fx: fx})
//	}
//
// Update polls the mouse and all active touches automatically. Hosts that
// deliver their own pointer events (or tests) can instead feed
// [Effect.PointerStart], [Effect.PointerMove], and [Effect.PointerEnd]
// directly, or queue synthetic gestures with [Effect.InjectDrag].
//
// All tuning knobs live in [Config]; the zero value gives the stock look:
// additive blending, 0.006 alpha fade per tick, a 30° hue step between
// trails, and a full hue cycle every 800 pixels of travel.
//
// [Ebitengine]: https://ebitengine.org
package glimmer
