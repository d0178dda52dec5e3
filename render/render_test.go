package render

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/cspace"
)

var testLink = cspace.LinkGeometry{
	Size:         cspace.Point{X: 30, Y: 4},
	PivotOffset:  cspace.Point{X: 2, Y: 2},
	AttachOffset: cspace.Point{X: 28, Y: 2},
}

func testScene(t *testing.T) (*cspace.TwoLinkArm, []*cspace.Obstacle) {
	arm := cspace.NewTwoLinkArm(cspace.Point{}, 0, 0, testLink, testLink)
	o, err := cspace.NewObstacle([]cspace.Point{{X: -30, Y: 20}, {X: -10, Y: 20}, {X: -20, Y: 35}, {X: -20, Y: 25}})
	require.NoError(t, err)
	mesh, err := cspace.NewObstacle([]cspace.Point{{X: -30, Y: -20}, {X: -10, Y: -20}, {X: -20, Y: -35}})
	require.NoError(t, err)
	mesh.DrawMesh = true
	return arm, []*cspace.Obstacle{o, mesh}
}

func brightness(img image.Image, x, y int) uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return (r + g + b) / 3 >> 8
}

func TestViewport(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100, Scale: 4}
	x, y := vp.ToDraw(cspace.Point{})
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	// Y points up in the world and down in the image
	x, y = vp.ToDraw(cspace.Point{X: 5, Y: 5})
	assert.Equal(t, 120.0, x)
	assert.Equal(t, 30.0, y)

	assert.Equal(t, cspace.Point{X: 5, Y: 5}, vp.ToWorld(120, 30))
}

func TestDrawScene(t *testing.T) {
	arm, obstacles := testScene(t)
	vp := Viewport{Width: 200, Height: 200, Scale: 2}
	img := DrawScene(vp, arm, obstacles)
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	// Background, arm, obstacle
	assert.Equal(t, uint32(255), brightness(img, 5, 5))
	x, y := vp.ToDraw(cspace.Point{X: 15, Y: 0})
	assert.Less(t, brightness(img, int(x), int(y)), uint32(100))
	x, y = vp.ToDraw(cspace.Point{X: -20, Y: 23})
	assert.Less(t, brightness(img, int(x), int(y)), uint32(200))
}

func TestDrawGrid(t *testing.T) {
	grid := &cspace.Grid{
		Samples:  2,
		Occupied: [][]bool{{true, false}, {false, false}},
	}
	img := DrawGrid(grid, 3)
	assert.Equal(t, image.Rect(0, 0, 6, 6), img.Bounds())

	// (0, 0) is the bottom left cell
	assert.Less(t, brightness(img, 1, 4), uint32(100))
	assert.Greater(t, brightness(img, 1, 1), uint32(200))
	assert.Greater(t, brightness(img, 4, 4), uint32(200))

	assert.Equal(t, image.Rect(0, 0, 2, 2), DrawGrid(grid, 0).Bounds())
}

func TestWritePNG(t *testing.T) {
	arm, obstacles := testScene(t)
	img := DrawScene(Viewport{Width: 64, Height: 48, Scale: 1}, arm, obstacles)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, SavePNG(path, img))
}

func TestWriteSceneSVG(t *testing.T) {
	arm, obstacles := testScene(t)
	var buf bytes.Buffer
	require.NoError(t, WriteSceneSVG(&buf, Viewport{Width: 300, Height: 300, Scale: 3}, arm, obstacles))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "</svg>")
	// Two obstacle outlines, one mesh triangle, two links
	assert.Equal(t, 5, strings.Count(out, "<polygon"))
	// A pivot and an attach marker per link
	assert.Equal(t, 4, strings.Count(out, "<circle"))
}

// Accepts a fixed number of bytes, then fails every write.
type failingWriter struct {
	remaining          int
	failed             bool
	writesAfterFailure int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.failed {
		f.writesAfterFailure++
		return 0, io.ErrShortWrite
	}
	if len(p) > f.remaining {
		f.failed = true
		return f.remaining, io.ErrShortWrite
	}
	f.remaining -= len(p)
	return len(p), nil
}

func TestWriteSceneSVGReportsWriteErrors(t *testing.T) {
	arm, obstacles := testScene(t)
	w := &failingWriter{remaining: 64}
	err := WriteSceneSVG(w, Viewport{Width: 300, Height: 300, Scale: 3}, arm, obstacles)
	assert.True(t, errors.Is(err, io.ErrShortWrite), "got %v", err)
	assert.True(t, w.failed)
	assert.Zero(t, w.writesAfterFailure)
}
