package glimmer

// Registry owns the set of live trails. All creation, mutation, and removal
// of trails goes through it; AdvanceFrame is the single authority for
// destroying points and trails. Like the rest of the package it is
// single-threaded: event handling and frame ticks run on the same goroutine.
type Registry struct {
	trails    map[TrailID]*Trail
	order     []TrailID // insertion order, for deterministic draw order
	nextID    TrailID   // plain counter, no atomic (single-threaded)
	maxPoints int       // 0 = uncapped; >0 = hard cap with oldest-first eviction
}

// NewRegistry creates an empty registry. maxPoints limits the stored points
// per trail (0 disables the cap; fading alone then bounds memory, since every
// point is pruned within 1/fadeSpeed ticks of its capture).
func NewRegistry(maxPoints int) *Registry {
	return &Registry{
		trails:    make(map[TrailID]*Trail),
		maxPoints: maxPoints,
	}
}

// CreateTrail allocates a new trail with two coincident points at (x, y)
// and the given base hue, registers it, and returns its id.
func (r *Registry) CreateTrail(x, y, hue float64) TrailID {
	r.nextID++
	id := r.nextID
	r.trails[id] = newTrail(id, x, y, hue)
	r.order = append(r.order, id)
	return id
}

// AppendPoint appends a full-alpha point to the identified trail. If the
// trail no longer exists the call is a no-op: a move event racing against
// the frame that fully faded its trail is expected, not an error.
func (r *Registry) AppendPoint(id TrailID, x, y, hue float64) {
	tr, ok := r.trails[id]
	if !ok {
		return
	}
	tr.append(x, y, hue, r.maxPoints)
}

// Trail looks up a trail by id. Absence is a normal outcome.
func (r *Registry) Trail(id TrailID) (*Trail, bool) {
	tr, ok := r.trails[id]
	return tr, ok
}

// Len returns the number of live trails.
func (r *Registry) Len() int {
	return len(r.trails)
}

// Each calls fn for every live trail in creation order.
func (r *Registry) Each(fn func(*Trail)) {
	for _, id := range r.order {
		if tr, ok := r.trails[id]; ok {
			fn(tr)
		}
	}
}

// PointCount returns the total number of stored points across all trails.
func (r *Registry) PointCount() int {
	n := 0
	for _, tr := range r.trails {
		n += len(tr.points)
	}
	return n
}

// AdvanceFrame applies one tick of fading: every point's alpha drops by
// fadeSpeed, zero-alpha points are removed, and trails left with one point
// or fewer are destroyed. A point is removed on the same tick its alpha
// reaches zero, so a displayed alpha is always the post-fade value.
func (r *Registry) AdvanceFrame(fadeSpeed float64) {
	keep := r.order[:0]
	for _, id := range r.order {
		tr, ok := r.trails[id]
		if !ok {
			continue
		}
		tr.fade(fadeSpeed)
		if tr.dead() {
			delete(r.trails, id)
			continue
		}
		keep = append(keep, id)
	}
	r.order = keep
}
