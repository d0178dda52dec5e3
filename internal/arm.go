package internal

import "github.com/golang/geo/r2"

// Geometry of a rectangular link in its own unrotated frame. The rectangle
// spans (0,0) to Size; the link rotates about PivotOffset and the next link
// attaches at AttachOffset.
type LinkGeometry struct {
	Size         r2.Point
	PivotOffset  Point
	AttachOffset Point
}

// A link placed in the world. Corners and the attach point are never stored;
// they are derived from Pivot and Theta whenever asked for.
type ArmLink struct {
	LinkGeometry
	Pivot Point
	Theta float64
}

func (l *ArmLink) Update(pivot Point, theta float64) {
	l.Pivot = pivot
	l.Theta = theta
}

// Map a point relative to the pivot, in the link frame, to the world.
func (l ArmLink) ToGlobal(local Point) Point {
	return l.Pivot.Add(Rotate(local, l.Theta))
}

func (l ArmLink) AttachPosition() Point {
	return l.ToGlobal(l.AttachOffset.Sub(l.PivotOffset))
}

// The rectangle's corners, going around it: top left, top right, bottom
// right, bottom left in the link frame.
func (l ArmLink) Corners() [4]Point {
	return [4]Point{
		l.ToGlobal(Point{Y: l.Size.Y}.Sub(l.PivotOffset)),
		l.ToGlobal(l.Size.Sub(l.PivotOffset)),
		l.ToGlobal(Point{X: l.Size.X}.Sub(l.PivotOffset)),
		l.ToGlobal(Point{}.Sub(l.PivotOffset)),
	}
}

// The link's quad, split along the A-C diagonal.
func (l ArmLink) Triangles() [2]Triangle {
	c := l.Corners()
	return [2]Triangle{
		{c[0], c[1], c[2]},
		{c[0], c[2], c[3]},
	}
}

// Two links chained at a revolute joint. Theta2 is relative to the first link,
// so the second link's world orientation is Theta1+Theta2, and its pivot is
// always the first link's attach point.
//
// The arm is a plain value with no pointers inside, so copying it gives an
// independent arm.
type TwoLinkArm struct {
	Base           Point
	Theta1, Theta2 float64
	links          [2]ArmLink
}

func NewTwoLinkArm(base Point, theta1, theta2 float64, link1, link2 LinkGeometry) *TwoLinkArm {
	arm := &TwoLinkArm{
		Base:  base,
		links: [2]ArmLink{{LinkGeometry: link1}, {LinkGeometry: link2}},
	}
	arm.UpdateAngles(theta1, theta2)
	return arm
}

// Set both joint angles and recompute the chain.
func (a *TwoLinkArm) UpdateAngles(theta1, theta2 float64) {
	a.Theta1 = theta1
	a.Theta2 = theta2
	a.links[0].Update(a.Base, theta1)
	a.links[1].Update(a.links[0].AttachPosition(), theta1+theta2)
}

func (a *TwoLinkArm) Angles() (theta1, theta2 float64) {
	return a.Theta1, a.Theta2
}

func (a *TwoLinkArm) Links() [2]ArmLink {
	return a.links
}

// Both links' triangles, first link first.
func (a *TwoLinkArm) Triangles() []Triangle {
	t1 := a.links[0].Triangles()
	t2 := a.links[1].Triangles()
	return []Triangle{t1[0], t1[1], t2[0], t2[1]}
}

// The end of the second link.
func (a *TwoLinkArm) EndEffector() Point {
	return a.links[1].AttachPosition()
}

// Whether any triangle of the arm intersects any obstacle triangle.
func (a *TwoLinkArm) Collides(obstacles []Triangle) bool {
	return collides(a.Triangles(), obstacles, false)
}

func collides(arm, obstacles []Triangle, cull bool) bool {
	for _, at := range arm {
		var bounds r2.Rect
		if cull {
			bounds = at.Bounds()
		}
		for _, ot := range obstacles {
			if cull && !bounds.Intersects(ot.Bounds()) {
				continue
			}
			if TrianglesIntersect(at, ot) {
				return true
			}
		}
	}
	return false
}
