package internal

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
	"golang.org/x/exp/constraints"
)

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. This is
// only used where a decision must not flip on rounding noise (enclosing circle
// membership, tests). The Delaunay predicates themselves stay exact.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func PointsEqual(a, b Point) bool {
	return Equal(a.X, b.X) && Equal(a.Y, b.Y)
}

// Total order on points: by X, then by Y. Used to build canonical keys.
func Less(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Rotate p counterclockwise about the origin.
func Rotate(p Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Evenly spaced values from lo to hi, both ends included. A single sample is
// lo.
func Linspace[F constraints.Float](lo, hi F, n int) []F {
	if n <= 0 {
		return nil
	}
	values := make([]F, n)
	if n == 1 {
		values[0] = lo
		return values
	}
	step := (hi - lo) / F(n-1)
	for i := range values {
		values[i] = lo + F(i)*step
	}
	// Pin the end so that rounding never leaves it short of hi.
	values[n-1] = hi
	return values
}

func (e Edge) Key() EdgeKey {
	if Less(e.Q, e.P) {
		return EdgeKey{e.Q, e.P}
	}
	return EdgeKey{e.P, e.Q}
}

func (e Edge) Reverse() Edge {
	return Edge{e.Q, e.P}
}

func (t Triangle) Vertices() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) Key() TriangleKey {
	key := TriangleKey{t.A, t.B, t.C}
	sort.Slice(key[:], func(i, j int) bool { return Less(key[i], key[j]) })
	return key
}

func (t Triangle) HasVertex(p Point) bool {
	return t.A == p || t.B == p || t.C == p
}

// Twice the signed area; positive when A, B, C wind counterclockwise.
func (t Triangle) SignedArea2() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

func (t Triangle) Bounds() r2.Rect {
	return r2.RectFromPoints(t.A, t.B, t.C)
}

// Compare two triangle sets by identity, ignoring order within and between
// triangles.
func SameTriangles(a, b []Triangle) bool {
	if len(a) != len(b) {
		return false
	}
	keys := make(map[TriangleKey]int, len(a))
	for _, t := range a {
		keys[t.Key()]++
	}
	for _, t := range b {
		k := t.Key()
		if keys[k] == 0 {
			return false
		}
		keys[k]--
	}
	return true
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
