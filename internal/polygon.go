package internal

// Even-odd point-in-polygon. This is provided primarily for validating
// boundary reconstruction in tests; collision checks go through the triangles.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of polygon edges crossed by a ray from p towards +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		// Half open in Y, so a ray through a vertex counts once
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Shoelace area, positive for counterclockwise loops.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += vertex.Cross(nextVertex)
	}
	return sum / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Whether two polygons trace the same loop, regardless of the starting vertex
// or winding direction.
func (poly Polygon) SameLoop(other Polygon) bool {
	n := len(poly.Points)
	if n != len(other.Points) {
		return false
	}
	if n == 0 {
		return true
	}
	for start, p := range other.Points {
		if p != poly.Points[0] {
			continue
		}
		forward, backward := true, true
		for i := 1; i < n && (forward || backward); i++ {
			q := poly.Points[i]
			forward = forward && q == other.Points[CircularIndex(start+i, n)]
			backward = backward && q == other.Points[CircularIndex(start-i, n)]
		}
		if forward || backward {
			return true
		}
	}
	return false
}
