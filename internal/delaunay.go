package internal

import "math"

// Incremental Bowyer-Watson Delaunay triangulation.
//
// The working triangulation is an ordered slice rather than a hash set, and
// every circumcircle is computed once on the triangle's canonical vertex order.
// Together that makes the output, including its order, a pure function of the
// input.

// A triangle in the working set, with its circumcircle cached.
type cell struct {
	Triangle
	circle Circle
}

func newCell(a, b, c Point) cell {
	t := Triangle{a, b, c}
	circle, err := t.Circumcircle()
	if err != nil {
		fatalf(err, "triangulation cell")
	}
	return cell{t, circle}
}

// The equilateral triangle circumscribing the circle of radius
// enclosing.Radius+margin around enclosing.Center. Its vertices sit at twice
// that radius, at 0, 120 and 240 degrees.
func Supertriangle(enclosing Circle, margin float64) Triangle {
	d := 2 * (enclosing.Radius + margin)
	var v [3]Point
	for i := range v {
		angle := float64(i) * 2 * math.Pi / 3
		v[i] = enclosing.Center.Add(Rotate(Point{X: d}, angle))
	}
	return Triangle{v[0], v[1], v[2]}
}

// The supertriangle margin never drops below this multiple of the enclosing
// radius. Hull triangles of thin, wall-like point sets have circumcircles far
// larger than the points themselves, and a supertriangle vertex inside one of
// them cuts that triangle out of the result.
const supertriangleScale = 1e4

func supertriangleMargin(enclosing Circle, margin float64) float64 {
	return math.Max(margin, supertriangleScale*enclosing.Radius)
}

// Triangulate a point set. Fewer than three distinct points is not an error;
// it just has no triangles. Exact duplicates are dropped, keeping the first.
//
// margin pads the enclosing circle the supertriangle is built around. It is a
// floor: the padding grows with the size of the point set. It must be positive
// so that no input point lies on the supertriangle's edges.
func Triangulate(points []Point, margin float64) (triangles []Triangle, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			triangles = nil
			err = recoveredErr
		}
	}()

	unique := dedupe(points)
	if len(unique) < 3 {
		return nil, nil
	}

	enclosing, err := SmallestEnclosingCircle(unique)
	if err != nil {
		return nil, err
	}
	super := Supertriangle(enclosing, supertriangleMargin(enclosing, margin))

	triangulation := []cell{newCell(super.A, super.B, super.C)}
	for _, p := range unique {
		triangulation = insert(triangulation, p)
	}

	for _, c := range triangulation {
		if c.HasVertex(super.A) || c.HasVertex(super.B) || c.HasVertex(super.C) {
			continue
		}
		triangles = append(triangles, c.Triangle)
	}
	return triangles, nil
}

// Insert a single point, returning the new triangulation.
func insert(triangulation []cell, p Point) []cell {
	// Find the bad triangles, whose circumcircle contains the point. Points on
	// the circle count, so ties favor retriangulation.
	var bad, kept []cell
	for _, c := range triangulation {
		if c.circle.Contains(p) {
			bad = append(bad, c)
		} else {
			kept = append(kept, c)
		}
	}

	// The boundary of the polygonal hole is every edge used by exactly one bad
	// triangle. Edges shared by two bad triangles are inside the hole.
	counts := make(map[EdgeKey]int, 3*len(bad))
	for _, c := range bad {
		for _, e := range c.Edges() {
			counts[e.Key()]++
		}
	}

	// Fan the hole out from the new point
	for _, c := range bad {
		for _, e := range c.Edges() {
			if counts[e.Key()] == 1 {
				kept = append(kept, newCell(e.P, p, e.Q))
			}
		}
	}
	return kept
}

func dedupe(points []Point) []Point {
	seen := make(map[Point]struct{}, len(points))
	unique := make([]Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
