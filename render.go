package glimmer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// capSegments is the number of triangles in an end-cap disc.
	capSegments = 8
	// maxRunPoints bounds a single ribbon run; longer runs are split at a
	// shared boundary point so vertex counts stay within uint16 indices.
	maxRunPoints = 4096
	// maxBatchVerts triggers a draw submission before the vertex buffer
	// outgrows what a single DrawTriangles call can index.
	maxBatchVerts = 50000
)

// renderer turns trails into ribbon triangle strips and submits them.
//
// Every stored segment is subdivided into subSteps micro-segments via the
// Catmull-Rom interpolator; the resulting sub-point chain is extruded to a
// ribbon of width strokeWidth along averaged perpendicular normals (the same
// construction as a rope mesh), with each vertex pair carrying its
// sub-point's hue and alpha as a premultiplied vertex color. The GPU's
// linear color interpolation across each micro-segment produces the
// start-to-end gradient, and disc end caps round off the stroke — which is
// also what makes a freshly tapped two-coincident-point trail visible as a
// dot. Buffers are reused across frames and grow to a high-water mark.
type renderer struct {
	subSteps    int
	strokeWidth float64
	blend       BlendMode
	saturation  float64
	value       float64

	verts []ebiten.Vertex
	inds  []uint16
	run   []TrailPoint

	dst   *ebiten.Image
	triOp ebiten.DrawTrianglesOptions

	// Stats from the most recent Draw, for the debug overlay.
	vertsSubmitted int
	drawCalls      int
}

func newRenderer(subSteps int, strokeWidth float64, blend BlendMode, saturation, value float64) *renderer {
	return &renderer{
		subSteps:    subSteps,
		strokeWidth: strokeWidth,
		blend:       blend,
		saturation:  saturation,
		value:       value,
	}
}

// Draw renders every trail with at least two points onto dst.
func (r *renderer) Draw(dst *ebiten.Image, reg *Registry) {
	r.vertsSubmitted = 0
	r.drawCalls = 0
	if dst == nil {
		return
	}

	r.dst = dst
	r.triOp = ebiten.DrawTrianglesOptions{
		Blend:          r.blend.EbitenBlend(),
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	reg.Each(r.drawTrail)
	r.submit()
	r.dst = nil
}

// drawTrail subdivides the trail into micro-segments and collects them into
// ribbon runs. A run breaks where a stored point or an interpolated endpoint
// has faded to zero alpha, so fully transparent stretches emit no geometry.
func (r *renderer) drawTrail(tr *Trail) {
	pts := tr.Points()
	if len(pts) < 2 {
		return
	}

	r.run = r.run[:0]
	var prev TrailPoint
	havePrev := false

	for i := 0; i < len(pts)-1; i++ {
		if pts[i].Alpha <= 0 {
			r.flushRun()
			havePrev = false
			continue
		}
		if !havePrev {
			prev = interpolatedPoint(pts, i, 0)
			havePrev = true
		}
		for s := 1; s <= r.subSteps; s++ {
			t := float64(s) / float64(r.subSteps)
			q := interpolatedPoint(pts, i, t)
			if prev.Alpha <= 0 || q.Alpha <= 0 {
				r.flushRun()
			} else {
				if len(r.run) == 0 {
					r.run = append(r.run, prev)
				}
				r.run = append(r.run, q)
				if len(r.run) >= maxRunPoints {
					r.flushRun()
					r.run = append(r.run[:0], q)
				}
			}
			prev = q
		}
	}
	r.flushRun()
}

// flushRun converts the pending run into ribbon geometry and clears it.
func (r *renderer) flushRun() {
	if len(r.run) >= 2 {
		r.appendRibbon(r.run)
	}
	r.run = r.run[:0]
}

// appendRibbon extrudes a sub-point chain into a 2N-vertex triangle strip
// plus disc end caps, appending to the shared vertex/index buffers.
func (r *renderer) appendRibbon(run []TrailPoint) {
	n := len(run)
	needed := n*2 + 2*(capSegments+2)
	if len(r.verts)+needed > maxBatchVerts {
		r.submit()
	}

	// A gesture that has not moved yet (two coincident points) has no
	// extrudable direction; a single cap dot is its visible mark.
	if runLength(run) < 1e-9 {
		r.appendCap(run[0])
		return
	}

	base := uint16(len(r.verts))
	halfW := r.strokeWidth / 2

	for i := 0; i < n; i++ {
		var nx, ny float64
		if i == 0 {
			nx, ny = perpendicular(run[0], run[1])
		} else if i == n-1 {
			nx, ny = perpendicular(run[n-2], run[n-1])
		} else {
			// Average adjacent segment normals for a rounded-off join.
			nx0, ny0 := perpendicular(run[i-1], run[i])
			nx1, ny1 := perpendicular(run[i], run[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
		}

		cr, cg, cb, ca := r.vertexColor(run[i])
		r.verts = append(r.verts,
			ebiten.Vertex{
				DstX: float32(run[i].X + nx*halfW), DstY: float32(run[i].Y + ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
			ebiten.Vertex{
				DstX: float32(run[i].X - nx*halfW), DstY: float32(run[i].Y - ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			},
		)
	}

	for i := 0; i < n-1; i++ {
		v := base + uint16(i*2)
		r.inds = append(r.inds,
			v, v+1, v+2,
			v+1, v+3, v+2,
		)
	}

	r.appendCap(run[0])
	r.appendCap(run[n-1])
}

// appendCap appends a filled disc of the stroke's radius at the point,
// rounding off a run end.
func (r *renderer) appendCap(p TrailPoint) {
	base := uint16(len(r.verts))
	cr, cg, cb, ca := r.vertexColor(p)
	radius := r.strokeWidth / 2

	r.verts = append(r.verts, ebiten.Vertex{
		DstX: float32(p.X), DstY: float32(p.Y),
		SrcX: 0.5, SrcY: 0.5,
		ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
	})
	for s := 0; s <= capSegments; s++ {
		a := 2 * math.Pi * float64(s) / float64(capSegments)
		r.verts = append(r.verts, ebiten.Vertex{
			DstX: float32(p.X + math.Cos(a)*radius), DstY: float32(p.Y + math.Sin(a)*radius),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	for s := 0; s < capSegments; s++ {
		r.inds = append(r.inds, base, base+1+uint16(s), base+2+uint16(s))
	}
}

// submit flushes the accumulated geometry in one DrawTriangles call.
func (r *renderer) submit() {
	if r.dst == nil || len(r.inds) == 0 {
		return
	}
	r.dst.DrawTriangles(r.verts, r.inds, ensureWhitePixel(), &r.triOp)
	r.vertsSubmitted += len(r.verts)
	r.drawCalls++
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

// vertexColor converts a point's hue and alpha to a premultiplied vertex color.
func (r *renderer) vertexColor(p TrailPoint) (cr, cg, cb, ca float32) {
	c := colorful.Hsv(p.Hue, r.saturation, r.value)
	a := clamp01(p.Alpha)
	return float32(c.R * a), float32(c.G * a), float32(c.B * a), float32(a)
}

// runLength returns the total polyline length of a sub-point chain.
func runLength(run []TrailPoint) float64 {
	total := 0.0
	for i := 1; i < len(run); i++ {
		dx := run[i].X - run[i-1].X
		dy := run[i].Y - run[i-1].Y
		total += math.Sqrt(dx*dx + dy*dy)
	}
	return total
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b TrailPoint) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
