package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of points is a valid Delaunay
// triangulation. The rules are:
// 1. Every triangle vertex is one of the input points.
// 2. No triangle appears twice, in any vertex order.
// 3. No triangle has zero area.
// 4. No input point lies strictly inside any triangle's circumcircle.
func AssertValidDelaunay(t *testing.T, points []Point, triangles []Triangle) {
	inputs := make(map[Point]struct{}, len(points))
	for _, p := range points {
		inputs[p] = struct{}{}
	}

	seen := make(map[TriangleKey]struct{}, len(triangles))
	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			_, ok := inputs[v]
			require.True(t, ok, "vertex %v of %v is not an input point", v, tri)
		}

		key := tri.Key()
		_, dup := seen[key]
		require.False(t, dup, "duplicate triangle %v", tri)
		seen[key] = struct{}{}

		require.NotZero(t, tri.SignedArea2(), "zero area triangle %v", tri)

		circle, err := tri.Circumcircle()
		require.NoError(t, err)
		// Relative slack, so points that are cocircular up to rounding pass
		limit := circle.Radius * circle.Radius * (1 - 1e-9)
		for _, p := range points {
			if tri.HasVertex(p) {
				continue
			}
			d := p.Sub(circle.Center)
			require.GreaterOrEqual(t, d.Dot(d), limit, "point %v is inside the circumcircle of %v", p, tri)
		}
	}
}

// Sample a grid over the polygon's bounding box, and check that a point is
// covered by some triangle exactly when it is inside the polygon. The grid is
// offset by an irrational fraction of a step so samples stay off of edges.
func validateCoverageBySampling(t *testing.T, triangles []Triangle, polygon Polygon) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step / math.Pi

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			covered := false
			for _, tri := range triangles {
				if PointInTriangle(p, tri) {
					covered = true
					break
				}
			}
			if polygon.ContainsPointByEvenOdd(p) {
				assert.True(t, covered, "point %v is in the polygon but no triangle", p)
			} else {
				assert.False(t, covered, "point %v is in a triangle but not the polygon", p)
			}
		}
	}
}

func triangleAreaSum(triangles []Triangle) float64 {
	var sum float64
	for _, tri := range triangles {
		sum += math.Abs(tri.SignedArea2()) / 2
	}
	return sum
}
