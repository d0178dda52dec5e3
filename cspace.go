// Geometry for planning the motion of a two-link planar arm among polygonal
// obstacles.
//
// Obstacles are point sets, turned into Delaunay triangulations and outline
// polygons. The arm's configuration space (its pair of joint angles) is then
// sampled on a grid, marking every configuration where the arm's links
// intersect an obstacle triangle.
//
// The package does no I/O. See the store and render packages for persistence
// and drawing.
package cspace

import (
	"go.uber.org/zap"

	"github.com/osuushi/cspace/internal"
)

type Point = internal.Point
type Edge = internal.Edge
type Triangle = internal.Triangle
type EdgeKey = internal.EdgeKey
type TriangleKey = internal.TriangleKey
type Circle = internal.Circle
type Polygon = internal.Polygon
type Range = internal.Range
type LinkGeometry = internal.LinkGeometry
type ArmLink = internal.ArmLink
type TwoLinkArm = internal.TwoLinkArm
type Grid = internal.Grid
type SamplerOptions = internal.SamplerOptions
type Obstacle = internal.Obstacle
type ObstacleSet = internal.ObstacleSet

const DefaultSupertriangleMargin = internal.DefaultSupertriangleMargin

var (
	ErrDegenerateTriangle      = internal.ErrDegenerateTriangle
	ErrInvalidBoundaryTopology = internal.ErrInvalidBoundaryTopology
	ErrInvalidSampleCount      = internal.ErrInvalidSampleCount
	ErrNilArm                  = internal.ErrNilArm
)

// The circle through three points. Collinear points fail with
// ErrDegenerateTriangle.
func Circumcircle(a, b, c Point) (Circle, error) {
	return internal.Circumcircle(a, b, c)
}

func SmallestEnclosingCircle(points []Point) (Circle, error) {
	return internal.SmallestEnclosingCircle(points)
}

// Delaunay triangulation of a point set, using DefaultSupertriangleMargin.
// Fewer than three points give no triangles and no error.
func Triangulate(points []Point) ([]Triangle, error) {
	return internal.Triangulate(points, DefaultSupertriangleMargin)
}

// The counterclockwise outline of a triangle set. The boundary must be a
// single simple loop, otherwise ErrInvalidBoundaryTopology is returned.
func BoundaryPolygon(triangles []Triangle) (Polygon, error) {
	return internal.BoundaryPolygon(triangles)
}

// Whether two triangle sets hold the same triangles, ignoring vertex and
// triangle order.
func SameTriangles(a, b []Triangle) bool {
	return internal.SameTriangles(a, b)
}

func PointInTriangle(p Point, t Triangle) bool {
	return internal.PointInTriangle(p, t)
}

// Note that collinear segments on the same line always intersect, even when
// their extents are disjoint.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	return internal.SegmentsIntersect(p1, p2, p3, p4)
}

func TrianglesIntersect(t1, t2 Triangle) bool {
	return internal.TrianglesIntersect(t1, t2)
}

func NewTwoLinkArm(base Point, theta1, theta2 float64, link1, link2 LinkGeometry) *TwoLinkArm {
	return internal.NewTwoLinkArm(base, theta1, theta2, link1, link2)
}

// Sample the arm's configuration space over samples x samples joint angle
// pairs. The arm itself is left as it was.
func ComputeConfigurationSpace(arm *TwoLinkArm, theta1, theta2 Range, samples int, obstacles []Triangle, opts SamplerOptions) (*Grid, error) {
	return internal.ComputeConfigurationSpace(arm, theta1, theta2, samples, obstacles, opts)
}

func NewObstacle(points []Point) (*Obstacle, error) {
	return internal.NewObstacle(points)
}

// An empty scene. A nil logger discards log output.
func NewObstacleSet(logger *zap.Logger) *ObstacleSet {
	return internal.NewObstacleSet(logger)
}
