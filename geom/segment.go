package geom

// Point is an integer-valued 2-D point.
type Point struct {
	X, Y int64
}

// Segment is a line segment with integer endpoints.
type Segment struct {
	P, Q Point
}

// orientation classifies the turn from p->q->r.
type orientation int

const (
	collinear orientation = iota
	clockwise
	counterClockwise
)

// orient computes the sign of (q.y-p.y)(r.x-q.x) - (q.x-p.x)(r.y-q.y),
// classifying the turn p->q->r.
func orient(p, q, r Point) orientation {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case val == 0:
		return collinear
	case val > 0:
		return clockwise
	default:
		return counterClockwise
	}
}

// onSegment reports whether q lies within the bounding box of segment p-r,
// given that p, q, r are already known collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= max64(p.X, r.X) && q.X >= min64(p.X, r.X) &&
		q.Y <= max64(p.Y, r.Y) && q.Y >= min64(p.Y, r.Y)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Intersect reports whether segments a and b properly intersect. A shared
// endpoint is not a conflict unless the two segments are also collinear and
// overlap on a positive length; otherwise the classical four-orientation test applies, with the
// degenerate (collinear) cases resolved via bounding-box containment. All
// arithmetic stays in int64, exact for coordinates up to ~10^6.
func Intersect(a, b Segment) bool {
	p1, q1 := a.P, a.Q
	p2, q2 := b.P, b.Q

	o1 := orient(p1, q1, p2)
	o2 := orient(p1, q1, q2)

	if p1 == p2 || p1 == q2 || q1 == p2 || q1 == q2 {
		// Shared endpoint: conflict only if also collinear and overlapping.
		if !((o1 == collinear && p1 != p2 && q1 != p2) ||
			(o2 == collinear && p1 != q2 && q1 != q2)) {
			return false
		}
		// s is the shared endpoint, ra and rb the other endpoints of a and b;
		// the overlap has positive length iff ra and rb lie on the same side
		// of s.
		var s, ra, rb Point
		switch {
		case p1 == p2:
			s, ra, rb = p1, q1, q2
		case p1 == q2:
			s, ra, rb = p1, q1, p2
		case q1 == p2:
			s, ra, rb = q1, p1, q2
		default:
			s, ra, rb = q1, p1, p2
		}
		return (ra.X-s.X)*(rb.X-s.X)+(ra.Y-s.Y)*(rb.Y-s.Y) > 0
	}

	o3 := orient(p2, q2, p1)
	o4 := orient(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}
	if o1 == collinear && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == collinear && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == collinear && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == collinear && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// Angle returns a deterministic, exact-comparable key for the segment's
// slope, used by the orientation-sorted greedy seed heuristic.
// It returns (dy, dx) normalized into the
// half-plane dx>0 || (dx==0 && dy>0), so two segments with the same slope
// always compare equal regardless of endpoint order, without resorting to
// floating-point atan2.
func Angle(s Segment) (dy, dx int64) {
	dx = s.Q.X - s.P.X
	dy = s.Q.Y - s.P.Y
	if dx < 0 || (dx == 0 && dy < 0) {
		dx, dy = -dx, -dy
	}
	return dy, dx
}

// quadrant buckets a normalized (dy,dx) direction into [0,2): 0 for the
// upper half-plane (dy>=0), 1 for the lower half-plane (dy<0). Angles are
// then compared within a quadrant via the exact cross product, giving a
// total order equivalent to sorting by the slope angle taken modulo pi, in
// [0, pi), without floats.
func quadrant(dy int64) int {
	if dy >= 0 {
		return 0
	}
	return 1
}

// AngleLess reports whether segment a's slope angle (in [0, pi), since
// Angle already normalizes direction into one half-plane) is strictly less
// than segment b's, using only exact int64 arithmetic (a cross product).
func AngleLess(a, b Segment) bool {
	dya, dxa := Angle(a)
	dyb, dxb := Angle(b)
	qa, qb := quadrant(dya), quadrant(dyb)
	if qa != qb {
		return qa < qb
	}
	// Within the same half-plane, compare via cross product: a has the
	// smaller angle exactly when (dxa,dya) x (dxb,dyb) = dxa*dyb - dxb*dya is
	// positive.
	cross := dxa*dyb - dxb*dya
	if cross != 0 {
		return cross > 0
	}
	return false
}
