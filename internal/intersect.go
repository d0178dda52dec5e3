package internal

// Exact intersection predicates used for collision detection. All of them are
// boundary inclusive: touching counts as intersecting.

// Barycentric sign test. With v0 = C-A, v1 = B-A and v2 = P-A, the point is
// A + s*v1 + t*v0 where s = (v2×v0)/d and t = (v1×v2)/d, d = v1×v0. Rather
// than divide, scale everything by d after forcing it positive.
func PointInTriangle(p Point, t Triangle) bool {
	v0 := t.C.Sub(t.A)
	v1 := t.B.Sub(t.A)
	v2 := p.Sub(t.A)

	u := v2.Cross(v0)
	v := v1.Cross(v2)
	d := v1.Cross(v0)
	if d < 0 {
		u, v, d = -u, -v, -d
	}
	return u >= 0 && v >= 0 && u+v <= d
}

// Segment p1p2 against segment p3p4, solving p1 + t*r = p3 + u*s.
//
// Parallel segments (r×s == 0) are reported as intersecting whenever they lie
// on the same line, whether or not their extents overlap. Collision results
// depend on this, so it is kept as is.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	r := p2.Sub(p1)
	s := p4.Sub(p3)
	qp := p3.Sub(p1)

	rxs := r.Cross(s)
	if rxs == 0 {
		return qp.Cross(r) == 0
	}

	t := qp.Cross(s) / rxs
	u := qp.Cross(r) / rxs
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// Two triangles intersect when any pair of edges crosses, or when one contains
// the other outright (no edges cross then).
func TrianglesIntersect(t1, t2 Triangle) bool {
	for _, e1 := range t1.Edges() {
		for _, e2 := range t2.Edges() {
			if SegmentsIntersect(e1.P, e1.Q, e2.P, e2.Q) {
				return true
			}
		}
	}
	return containsAll(t1, t2) || containsAll(t2, t1)
}

// Whether every vertex of inner lies in outer.
func containsAll(outer, inner Triangle) bool {
	for _, v := range inner.Vertices() {
		if !PointInTriangle(v, outer) {
			return false
		}
	}
	return true
}
