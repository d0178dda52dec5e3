package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(0, 3))
	assert.Equal(t, 2, CircularIndex(2, 3))
	assert.Equal(t, 0, CircularIndex(3, 3))
	assert.Equal(t, 2, CircularIndex(-1, 3))
	assert.Equal(t, 1, CircularIndex(-5, 3))
}

func TestLinspace(t *testing.T) {
	t.Run("ends included", func(t *testing.T) {
		values := Linspace(-math.Pi, math.Pi, 5)
		assert.Len(t, values, 5)
		assert.Equal(t, -math.Pi, values[0])
		assert.Equal(t, math.Pi, values[4])
		assert.InDelta(t, 0, values[2], 1e-12)
	})

	t.Run("single sample", func(t *testing.T) {
		assert.Equal(t, []float64{2}, Linspace(2.0, 5.0, 1))
	})

	t.Run("no samples", func(t *testing.T) {
		assert.Nil(t, Linspace(0.0, 1.0, 0))
	})

	t.Run("float32", func(t *testing.T) {
		assert.Equal(t, []float32{0, 0.5, 1}, Linspace(float32(0), float32(1), 3))
	})
}

func TestRotate(t *testing.T) {
	p := Rotate(Point{X: 1, Y: 0}, math.Pi/2)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)

	p = Rotate(Point{X: 2, Y: 1}, 0)
	assert.Equal(t, Point{X: 2, Y: 1}, p)
}

func TestEdgeKey(t *testing.T) {
	a, b := Point{X: 1, Y: 5}, Point{X: 0, Y: 9}
	assert.Equal(t, Edge{a, b}.Key(), Edge{b, a}.Key())
	assert.Equal(t, EdgeKey{b, a}, Edge{a, b}.Key())

	// Ties on X fall back to Y
	c := Point{X: 1, Y: 2}
	assert.Equal(t, EdgeKey{c, a}, Edge{a, c}.Key())
}

func TestTriangleKey(t *testing.T) {
	a, b, c := Point{X: 0, Y: 0}, Point{X: 4, Y: 0}, Point{X: 0, Y: 4}
	key := Triangle{a, b, c}.Key()
	for _, tri := range []Triangle{{b, c, a}, {c, a, b}, {a, c, b}, {c, b, a}} {
		assert.Equal(t, key, tri.Key())
	}
	assert.Equal(t, TriangleKey{a, c, b}, key)
}

func TestSameTriangles(t *testing.T) {
	a, b, c, d := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}, Point{X: 1, Y: 1}
	first := []Triangle{{a, b, c}, {b, d, c}}
	assert.True(t, SameTriangles(first, []Triangle{{c, d, b}, {c, a, b}}))
	assert.False(t, SameTriangles(first, []Triangle{{a, b, c}}))
	assert.False(t, SameTriangles(first, []Triangle{{a, b, c}, {a, b, c}}))
	assert.True(t, SameTriangles(nil, nil))
}

func TestTriangleSignedArea(t *testing.T) {
	a, b, c := Point{X: 0, Y: 0}, Point{X: 4, Y: 0}, Point{X: 0, Y: 4}
	assert.Equal(t, 16.0, Triangle{a, b, c}.SignedArea2())
	assert.Equal(t, -16.0, Triangle{a, c, b}.SignedArea2())
	assert.Equal(t, 0.0, Triangle{a, b, Point{X: 8}}.SignedArea2())
}
