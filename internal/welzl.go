package internal

// Welzl's algorithm for the smallest circle enclosing a point set.
//
// Points are processed in input order rather than shuffled. That gives up the
// expected linear running time, but keeps the result deterministic, and
// obstacle point sets are small. Recursion depth is bounded by the number of
// points.
func SmallestEnclosingCircle(points []Point) (circle Circle, err error) {
	defer func() {
		if recoveredErr := HandlePanicRecover(recover()); recoveredErr != nil {
			circle = Circle{}
			err = recoveredErr
		}
	}()
	p := make([]Point, len(points))
	copy(p, points)
	return welzl(p, make([]Point, 0, 3)), nil
}

// p is the set still to be processed, r the points known to lie on the
// boundary of the answer.
func welzl(p []Point, r []Point) Circle {
	if len(p) == 0 || len(r) == 3 {
		return mustCircleFrom(r...)
	}

	first := p[0]
	candidate := welzl(p[1:], r)
	if candidate.Encloses(first) {
		return candidate
	}

	// first is outside the circle of the others, so it must be on the boundary
	// of the true minimal circle. The three-index slice keeps sibling calls from
	// overwriting each other's boundary sets.
	return welzl(p[1:], append(r[:len(r):len(r)], first))
}

func mustCircleFrom(points ...Point) Circle {
	circle, err := CircleFrom(points...)
	if err != nil {
		fatalf(err, "enclosing circle")
	}
	return circle
}
