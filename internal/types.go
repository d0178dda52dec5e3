package internal

import (
	"github.com/golang/geo/r2"
	"github.com/google/uuid"
)

// Points are plain values. Triangulation bookkeeping never hashes them
// directly; it goes through the canonical keys below so that the vertex order
// of a triangle or edge never matters.
type Point = r2.Point

type Edge struct {
	P, Q Point
}

type Triangle struct {
	A, B, C Point
}

type Circle struct {
	Center Point
	Radius float64
}

// A closed loop. The last point connects back to the first, which is not
// repeated.
type Polygon struct {
	Points []Point
}

// Canonical, order independent identity of an edge: endpoints sorted by Less.
type EdgeKey [2]Point

// Canonical, order independent identity of a triangle: vertices sorted by Less.
type TriangleKey [3]Point

type Range struct {
	Min, Max float64
}

type Obstacle struct {
	ID        uuid.UUID
	Points    []Point
	Triangles []Triangle
	Polygon   Polygon
	DrawMesh  bool
}
