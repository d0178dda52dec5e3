package internal

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/osuushi/cspace/internal/dbg"
)

// Minimum padding added to the enclosing circle of an obstacle's points before
// the supertriangle is built around it, in world units. Larger point sets get
// proportionally more.
const DefaultSupertriangleMargin = 10.0

// The radius RemoveLatest uses around the most recently added point.
const latestPointRadius = 0.1

// A new obstacle from a point set. The points are copied.
func NewObstacle(points []Point) (*Obstacle, error) {
	o := &Obstacle{Points: append([]Point(nil), points...)}
	return o, o.Rebuild()
}

// Recompute triangles and outline from the points. There is no incremental
// update: every edit retriangulates from scratch. Stale geometry is never
// kept: if triangulation fails the obstacle has no triangles, and if only the
// outline fails it keeps its triangles with an empty polygon.
func (o *Obstacle) Rebuild() error {
	o.Triangles = nil
	o.Polygon = Polygon{}
	if len(o.Points) < 3 {
		return nil
	}
	triangles, err := Triangulate(o.Points, DefaultSupertriangleMargin)
	if err != nil {
		return err
	}
	o.Triangles = triangles
	return o.rebuildPolygon()
}

// The outline is only for drawing. Collisions go through the triangles, so
// they stay in place when the boundary cannot be walked.
func (o *Obstacle) rebuildPolygon() error {
	polygon, err := BoundaryPolygon(o.Triangles)
	if err != nil {
		o.Polygon = Polygon{}
		return err
	}
	o.Polygon = polygon
	return nil
}

func (o *Obstacle) AddPoint(p Point) error {
	o.Points = append(o.Points, p)
	return o.Rebuild()
}

// Remove every point within radius of p. Only rebuilds if something was
// removed.
func (o *Obstacle) RemovePointsNear(p Point, radius float64) (bool, error) {
	kept := o.Points[:0]
	for _, q := range o.Points {
		if q.Sub(p).Norm() > radius {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(o.Points) {
		return false, nil
	}
	o.Points = kept
	return true, o.Rebuild()
}

// The obstacles of a scene, plus the one currently being drawn. Each
// obstacle's geometry is independent of the others; a failed rebuild only
// affects the obstacle being edited.
type ObstacleSet struct {
	obstacles []*Obstacle
	current   *Obstacle
	lastAdded *Point
	logger    *zap.Logger
}

func NewObstacleSet(logger *zap.Logger) *ObstacleSet {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ObstacleSet{current: &Obstacle{}, logger: logger}
}

func (s *ObstacleSet) Obstacles() []*Obstacle {
	return s.obstacles
}

func (s *ObstacleSet) Current() *Obstacle {
	return s.current
}

func (s *ObstacleSet) Add(o *Obstacle) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.obstacles = append(s.obstacles, o)
}

func (s *ObstacleSet) AddPointToCurrent(p Point) error {
	s.lastAdded = &p
	err := s.current.AddPoint(p)
	s.logRebuild("added point", p, err)
	return err
}

func (s *ObstacleSet) RemovePointFromCurrent(p Point, radius float64) (bool, error) {
	removed, err := s.current.RemovePointsNear(p, radius)
	if removed {
		s.logRebuild("removed point", p, err)
	}
	return removed, err
}

// Undo the most recent AddPointToCurrent.
func (s *ObstacleSet) RemoveLatest() (bool, error) {
	if s.lastAdded == nil {
		return false, nil
	}
	p := *s.lastAdded
	s.lastAdded = nil
	return s.RemovePointFromCurrent(p, latestPointRadius)
}

// Move the current obstacle into the set and start a new one.
func (s *ObstacleSet) ConfirmCurrent() *Obstacle {
	confirmed := s.current
	s.Add(confirmed)
	s.logger.Info("confirmed obstacle",
		zap.String("obstacle", dbg.Name(confirmed)),
		zap.Stringer("id", confirmed.ID),
		zap.Int("points", len(confirmed.Points)),
		zap.Int("triangles", len(confirmed.Triangles)),
	)
	s.ResetCurrent()
	return confirmed
}

func (s *ObstacleSet) ResetCurrent() {
	s.current = &Obstacle{}
	s.lastAdded = nil
}

func (s *ObstacleSet) Clear() {
	s.obstacles = nil
	s.ResetCurrent()
}

// Triangles of every confirmed obstacle. The obstacle being drawn is not an
// obstacle yet and is left out.
func (s *ObstacleSet) AllTriangles() []Triangle {
	var out []Triangle
	for _, o := range s.obstacles {
		out = append(out, o.Triangles...)
	}
	return out
}

func (s *ObstacleSet) logRebuild(msg string, p Point, err error) {
	if err != nil {
		s.logger.Warn(msg, zap.String("obstacle", dbg.Name(s.current)), zap.Stringer("point", p), zap.Error(err))
		return
	}
	s.logger.Debug(msg,
		zap.String("obstacle", dbg.Name(s.current)),
		zap.Stringer("point", p),
		zap.Int("triangles", len(s.current.Triangles)),
	)
}
