// Package render draws scenes and configuration space grids. It only consumes
// geometry computed by the cspace package; nothing here feeds back into it.
package render

import (
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"

	"github.com/osuushi/cspace"
)

// Maps world coordinates onto an image. The world origin is the center of the
// image, Y points up, and one world unit is Scale pixels.
type Viewport struct {
	Width, Height int
	Scale         float64
}

func (vp Viewport) ToDraw(p cspace.Point) (x, y float64) {
	return p.X*vp.Scale + float64(vp.Width)/2, -p.Y*vp.Scale + float64(vp.Height)/2
}

func (vp Viewport) ToWorld(x, y float64) cspace.Point {
	return cspace.Point{
		X: (x - float64(vp.Width)/2) / vp.Scale,
		Y: -(y - float64(vp.Height)/2) / vp.Scale,
	}
}

type rgb struct{ r, g, b float64 }

var (
	background    = rgb{1, 1, 1}
	armFill       = rgb{70. / 255, 70. / 255, 70. / 255}
	armOutline    = rgb{40. / 255, 40. / 255, 40. / 255}
	obstacleFill  = rgb{120. / 255, 120. / 255, 120. / 255}
	obstacleEdge  = rgb{80. / 255, 80. / 255, 80. / 255}
	pointColor    = rgb{0, 0, 0}
	pivotColor    = rgb{1, 0, 0}
	attachColor   = rgb{0, 0, 1}
	freeColor     = rgb{0.95, 0.95, 0.95}
	occupiedColor = rgb{0.2, 0.2, 0.2}
)

func setColor(c *gg.Context, col rgb) {
	c.SetRGB(col.r, col.g, col.b)
}

func tracePath(c *gg.Context, vp Viewport, points []cspace.Point) {
	for i, p := range points {
		x, y := vp.ToDraw(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
}

// Draw obstacles and the arm. Obstacles with DrawMesh set show their
// triangulation; the others only their filled outline.
func DrawScene(vp Viewport, arm *cspace.TwoLinkArm, obstacles []*cspace.Obstacle) image.Image {
	c := gg.NewContext(vp.Width, vp.Height)
	setColor(c, background)
	c.DrawRectangle(0, 0, float64(vp.Width), float64(vp.Height))
	c.Fill()

	for _, o := range obstacles {
		drawObstacle(c, vp, o)
	}
	if arm != nil {
		drawArm(c, vp, arm)
	}
	return c.Image()
}

func drawObstacle(c *gg.Context, vp Viewport, o *cspace.Obstacle) {
	setColor(c, obstacleFill)
	for _, t := range o.Triangles {
		v := t.Vertices()
		tracePath(c, vp, v[:])
		c.Fill()
	}

	c.SetLineWidth(2)
	setColor(c, obstacleEdge)
	if o.DrawMesh {
		for _, t := range o.Triangles {
			v := t.Vertices()
			tracePath(c, vp, v[:])
			c.Stroke()
		}
	} else if len(o.Polygon.Points) > 1 {
		tracePath(c, vp, o.Polygon.Points)
		c.Stroke()
	}

	// An obstacle still being drawn has points but no triangles yet
	points := o.Polygon.Points
	if o.DrawMesh || len(o.Triangles) == 0 {
		points = o.Points
	}
	setColor(c, pointColor)
	for _, p := range points {
		x, y := vp.ToDraw(p)
		c.DrawCircle(x, y, 3)
		c.Fill()
	}
}

func drawArm(c *gg.Context, vp Viewport, arm *cspace.TwoLinkArm) {
	for _, link := range arm.Links() {
		corners := link.Corners()
		setColor(c, armFill)
		tracePath(c, vp, corners[:])
		c.Fill()

		c.SetLineWidth(2)
		setColor(c, armOutline)
		for _, t := range link.Triangles() {
			v := t.Vertices()
			tracePath(c, vp, v[:])
			c.Stroke()
		}

		for _, marker := range []struct {
			p   cspace.Point
			col rgb
		}{{link.Pivot, pivotColor}, {link.AttachPosition(), attachColor}} {
			x, y := vp.ToDraw(marker.p)
			setColor(c, marker.col)
			c.DrawCircle(x, y, 2)
			c.Fill()
		}
	}
}

// One cell pixels square per sample, Theta1 along X and Theta2 up Y.
func DrawGrid(grid *cspace.Grid, cell int) image.Image {
	if cell < 1 {
		cell = 1
	}
	size := grid.Samples * cell
	c := gg.NewContext(size, size)
	setColor(c, freeColor)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	setColor(c, occupiedColor)
	for i := 0; i < grid.Samples; i++ {
		for j := 0; j < grid.Samples; j++ {
			if !grid.At(i, j) {
				continue
			}
			y := grid.Samples - 1 - j
			c.DrawRectangle(float64(i*cell), float64(y*cell), float64(cell), float64(cell))
		}
	}
	c.Fill()
	return c.Image()
}

func WritePNG(w io.Writer, img image.Image) error {
	return errors.Wrap(png.Encode(w, img), "encode png")
}

func SavePNG(path string, img image.Image) error {
	return errors.Wrap(gg.SavePNG(path, img), "save png")
}
