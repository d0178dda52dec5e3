package render

import (
	"io"

	"github.com/pkg/errors"
	svg "github.com/ajstarks/svgo/float"

	"github.com/osuushi/cspace"
)

const (
	svgObstacleStyle = "fill:#787878;stroke:#505050;stroke-width:2"
	svgMeshStyle     = "fill:none;stroke:#505050;stroke-width:1"
	svgArmStyle      = "fill:#464646;stroke:#282828;stroke-width:2"
	svgPivotStyle    = "fill:red;stroke:none"
	svgAttachStyle   = "fill:blue;stroke:none"
)

// svgo ignores write errors, so remember the first one and drop the rest.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// The same scene DrawScene paints, as vector graphics. Returns the first
// error from w.
func WriteSceneSVG(w io.Writer, vp Viewport, arm *cspace.TwoLinkArm, obstacles []*cspace.Obstacle) error {
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(float64(vp.Width), float64(vp.Height))

	for _, o := range obstacles {
		if len(o.Polygon.Points) > 2 {
			xs, ys := drawCoords(vp, o.Polygon.Points)
			s.Polygon(xs, ys, svgObstacleStyle)
		}
		if o.DrawMesh {
			for _, t := range o.Triangles {
				v := t.Vertices()
				xs, ys := drawCoords(vp, v[:])
				s.Polygon(xs, ys, svgMeshStyle)
			}
		}
	}

	if arm != nil {
		for _, link := range arm.Links() {
			corners := link.Corners()
			xs, ys := drawCoords(vp, corners[:])
			s.Polygon(xs, ys, svgArmStyle)

			x, y := vp.ToDraw(link.Pivot)
			s.Circle(x, y, 2, svgPivotStyle)
			x, y = vp.ToDraw(link.AttachPosition())
			s.Circle(x, y, 2, svgAttachStyle)
		}
	}
	s.End()
	return errors.Wrap(ew.err, "write svg")
}

func drawCoords(vp Viewport, points []cspace.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = vp.ToDraw(p)
	}
	return xs, ys
}
