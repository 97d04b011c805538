package glimmer

// catmullRom evaluates a scalar cubic Catmull-Rom curve segment at t in [0, 1].
// The curve passes through p1 at t=0 and p2 at t=1, with tangents derived from
// the neighboring values p0 and p3, giving C1 continuity across segment joins.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	v0 := (p2 - p0) / 2
	v1 := (p3 - p1) / 2
	t2 := t * t
	t3 := t2 * t
	return (2*p1-2*p2+v0+v1)*t3 + (-3*p1+3*p2-2*v0-v1)*t2 + v0*t + p1
}

// interpolatedPoint returns a smoothed sample between points[i] and
// points[i+1] at parameter t in [0, 1]. The four control points are
// points[i-1] through points[i+2], clamped to the valid index range so that
// trail endpoints reuse their boundary point rather than extrapolating
// (which would overshoot past the gesture's actual start and end).
//
// Position and hue follow the cubic. Alpha is interpolated linearly: running
// the cubic over a rapidly fading alpha channel can overshoot outside [0, 1],
// which shows up as bright flashes at the trail tail.
func interpolatedPoint(points []TrailPoint, i int, t float64) TrailPoint {
	last := len(points) - 1

	i0 := i - 1
	if i0 < 0 {
		i0 = 0
	}
	i2 := i + 1
	if i2 > last {
		i2 = last
	}
	i3 := i + 2
	if i3 > last {
		i3 = last
	}

	p0, p1, p2, p3 := points[i0], points[i], points[i2], points[i3]

	return TrailPoint{
		X:     catmullRom(p0.X, p1.X, p2.X, p3.X, t),
		Y:     catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
		Hue:   normHue(catmullRom(p0.Hue, p1.Hue, p2.Hue, p3.Hue, t)),
		Alpha: clamp01(lerp(p1.Alpha, p2.Alpha, t)),
	}
}
