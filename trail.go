package glimmer

import (
	"math"
	"time"
)

// TrailID identifies a trail for the duration of its lifetime.
// IDs are sequential and never reused within a session.
type TrailID uint64

// TrailPoint is one sample on a trail's path.
type TrailPoint struct {
	X, Y  float64
	Hue   float64 // degrees, [0, 360)
	Alpha float64 // [0, 1]; only ever decreases after creation
}

// Trail is the path left by one continuous pointer gesture. Points are in
// capture order, oldest first. Trails are owned exclusively by a [Registry];
// callers must not hold a *Trail across frames (the registry may prune it).
type Trail struct {
	ID        TrailID
	BaseHue   float64 // hue anchor assigned at creation, never mutated
	Distance  float64 // cumulative gesture distance in pixels, never decreases
	CreatedAt time.Time

	points []TrailPoint
	lastX  float64 // last captured position, for distance filtering
	lastY  float64
}

// newTrail creates a trail with two coincident full-alpha points at (x, y),
// so a bare tap leaves an immediately visible mark.
func newTrail(id TrailID, x, y, hue float64) *Trail {
	return &Trail{
		ID:        id,
		BaseHue:   hue,
		CreatedAt: time.Now(),
		points: []TrailPoint{
			{X: x, Y: y, Hue: hue, Alpha: 1},
			{X: x, Y: y, Hue: hue, Alpha: 1},
		},
		lastX: x,
		lastY: y,
	}
}

// Points returns the trail's point sequence. The returned slice MUST NOT be
// mutated or retained across frames.
func (tr *Trail) Points() []TrailPoint {
	return tr.points
}

// Len returns the number of stored points.
func (tr *Trail) Len() int {
	return len(tr.points)
}

// LastPosition returns the most recently captured position.
func (tr *Trail) LastPosition() (x, y float64) {
	return tr.lastX, tr.lastY
}

// DistanceFromLast returns the distance from the last captured position
// to (x, y).
func (tr *Trail) DistanceFromLast(x, y float64) float64 {
	dx := x - tr.lastX
	dy := y - tr.lastY
	return math.Sqrt(dx*dx + dy*dy)
}

// append adds a full-alpha point at (x, y), accumulates the distance from
// the last captured position, and moves the capture cursor. maxPoints > 0
// evicts the oldest point first when the trail is at capacity.
func (tr *Trail) append(x, y, hue float64, maxPoints int) {
	tr.Distance += tr.DistanceFromLast(x, y)
	if maxPoints > 0 && len(tr.points) >= maxPoints {
		copy(tr.points, tr.points[1:])
		tr.points = tr.points[:len(tr.points)-1]
	}
	tr.points = append(tr.points, TrailPoint{X: x, Y: y, Hue: hue, Alpha: 1})
	tr.lastX = x
	tr.lastY = y
}

// fade decreases every point's alpha by amount (floor 0), then drops points
// whose alpha reached 0. Insertion order is preserved.
func (tr *Trail) fade(amount float64) {
	keep := tr.points[:0]
	for _, p := range tr.points {
		p.Alpha -= amount
		if p.Alpha <= 0 {
			continue
		}
		keep = append(keep, p)
	}
	tr.points = keep
}

// dead reports whether the trail should be removed: with one point or fewer
// there is no segment left to draw.
func (tr *Trail) dead() bool {
	return len(tr.points) <= 1
}
