package internal

import "github.com/pkg/errors"

// Reconstruct the outline of a triangle set.
//
// An edge used by exactly one triangle is on the boundary; an edge used by two
// is interior. The boundary edges are then walked end to end into a single
// closed loop. Only a boundary forming exactly one simple cycle is accepted:
// disjoint loops, or loops pinched together at a vertex, return
// ErrInvalidBoundaryTopology rather than a partial polygon.
//
// The result winds counterclockwise. An empty triangle set has an empty
// boundary.
func BoundaryPolygon(triangles []Triangle) (Polygon, error) {
	counts := make(map[EdgeKey]int, 3*len(triangles))
	for _, t := range triangles {
		for _, e := range t.Edges() {
			counts[e.Key()]++
		}
	}

	// Collect in triangle order, so the walk is deterministic
	var boundary []Edge
	for _, t := range triangles {
		for _, e := range t.Edges() {
			if counts[e.Key()] == 1 {
				boundary = append(boundary, e)
			}
		}
	}
	if len(boundary) == 0 {
		return Polygon{}, nil
	}

	// Every vertex on a simple loop touches exactly two boundary edges
	incident := make(map[Point][]int, len(boundary))
	for i, e := range boundary {
		incident[e.P] = append(incident[e.P], i)
		incident[e.Q] = append(incident[e.Q], i)
	}
	for p, edges := range incident {
		if len(edges) != 2 {
			return Polygon{}, errors.Wrapf(ErrInvalidBoundaryTopology, "vertex %v has %d boundary edges", p, len(edges))
		}
	}

	used := make([]bool, len(boundary))
	used[0] = true
	points := []Point{boundary[0].P, boundary[0].Q}
	for {
		last := points[len(points)-1]
		next := -1
		for _, i := range incident[last] {
			if !used[i] {
				next = i
				break
			}
		}
		if next < 0 {
			break
		}
		used[next] = true
		e := boundary[next]
		if e.P == last {
			points = append(points, e.Q)
		} else {
			points = append(points, e.P)
		}
	}

	// The walk ends by stepping back onto the start point
	if len(points) != len(boundary)+1 || points[len(points)-1] != points[0] {
		return Polygon{}, errors.Wrapf(ErrInvalidBoundaryTopology, "walk closed after %d of %d boundary edges", len(points)-1, len(boundary))
	}

	polygon := Polygon{Points: points[:len(points)-1]}
	if !polygon.IsCCW() {
		polygon = polygon.Reverse()
	}
	return polygon, nil
}
