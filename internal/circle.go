package internal

import (
	"math"

	"github.com/pkg/errors"
)

// The circle through three points, from the determinant form of the circle
// equation:
//
//	a  = |Ax Ay 1|      Sx = 1/2 |A² Ay 1|   Sy = 1/2 |Ax A² 1|   b = |Ax Ay A²|
//	     |Bx By 1|               |B² By 1|            |Bx B² 1|       |Bx By B²|
//	     |Cx Cy 1|               |C² Cy 1|            |Cx C² 1|       |Cx Cy C²|
//
// center = S/a, radius = sqrt(b/a + |S|²/a²). Collinear points (a == 0) have
// no circumcircle.
func Circumcircle(a, b, c Point) (Circle, error) {
	am, bm, cm := a.Dot(a), b.Dot(b), c.Dot(c)

	det := det3([3][3]float64{
		{a.X, a.Y, 1},
		{b.X, b.Y, 1},
		{c.X, c.Y, 1},
	})
	if det == 0 {
		return Circle{}, errors.Wrapf(ErrDegenerateTriangle, "no circumcircle through collinear points %v, %v, %v", a, b, c)
	}

	s := Point{
		X: 0.5 * det3([3][3]float64{
			{am, a.Y, 1},
			{bm, b.Y, 1},
			{cm, c.Y, 1},
		}),
		Y: 0.5 * det3([3][3]float64{
			{a.X, am, 1},
			{b.X, bm, 1},
			{c.X, cm, 1},
		}),
	}
	bDet := det3([3][3]float64{
		{a.X, a.Y, am},
		{b.X, b.Y, bm},
		{c.X, c.Y, cm},
	})

	// Rounding can take a near zero radius slightly negative
	r2 := bDet/det + s.Dot(s)/(det*det)
	return Circle{
		Center: s.Mul(1 / det),
		Radius: math.Sqrt(math.Max(r2, 0)),
	}, nil
}

// The smallest circle through up to three points. Fewer than three points give
// the degenerate circles Welzl's base case needs.
func CircleFrom(points ...Point) (Circle, error) {
	switch len(points) {
	case 0:
		return Circle{}, nil
	case 1:
		return Circle{Center: points[0]}, nil
	case 2:
		return Circle{
			Center: points[0].Add(points[1]).Mul(0.5),
			Radius: points[0].Sub(points[1]).Norm() / 2,
		}, nil
	case 3:
		return Circumcircle(points[0], points[1], points[2])
	}
	return Circle{}, errors.Errorf("cannot make a circle from %d points", len(points))
}

// Closed disk membership: points on the circle are inside.
func (c Circle) Contains(p Point) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// Like Contains, but forgiving of rounding noise at the rim.
func (c Circle) Encloses(p Point) bool {
	return p.Sub(c.Center).Norm() <= c.Radius+Tolerance
}

// The circumcircle of t, computed on the canonical vertex order so that the
// same triangle always gets the same circle regardless of how it was built.
func (t Triangle) Circumcircle() (Circle, error) {
	k := t.Key()
	return Circumcircle(k[0], k[1], k[2])
}
