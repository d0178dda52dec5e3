// Package store reads and writes scenes: obstacle sets as JSON, and arm
// configurations as YAML.
package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/cspace"
)

// On disk, triangles and polygons are cached alongside the points they were
// derived from. Only the points are trusted; the rest is recomputed on load.
type document struct {
	Obstacles []obstacleRecord `json:"obstacles"`
}

type obstacleRecord struct {
	ID        uuid.UUID       `json:"id"`
	Points    []pointRecord   `json:"points"`
	Triangles [][]pointRecord `json:"triangles"`
	Polygon   []pointRecord   `json:"polygon"`
	DrawMesh  bool            `json:"draw_mesh"`
}

type pointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func dumpPoints(points []cspace.Point) []pointRecord {
	out := make([]pointRecord, len(points))
	for i, p := range points {
		out[i] = pointRecord{p.X, p.Y}
	}
	return out
}

func loadPoints(records []pointRecord) []cspace.Point {
	out := make([]cspace.Point, len(records))
	for i, r := range records {
		out[i] = cspace.Point{X: r.X, Y: r.Y}
	}
	return out
}

func Save(w io.Writer, obstacles []*cspace.Obstacle) error {
	doc := document{Obstacles: make([]obstacleRecord, 0, len(obstacles))}
	for _, o := range obstacles {
		record := obstacleRecord{
			ID:        o.ID,
			Points:    dumpPoints(o.Points),
			Triangles: make([][]pointRecord, 0, len(o.Triangles)),
			Polygon:   dumpPoints(o.Polygon.Points),
			DrawMesh:  o.DrawMesh,
		}
		for _, t := range o.Triangles {
			v := t.Vertices()
			record.Triangles = append(record.Triangles, dumpPoints(v[:]))
		}
		doc.Obstacles = append(doc.Obstacles, record)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(doc), "encode obstacles")
}

func SaveFile(path string, obstacles []*cspace.Obstacle) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create obstacles file")
	}
	if err := Save(file, obstacles); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close obstacles file")
}

// Rebuilds an obstacle's geometry from its points. Replaced in tests.
var newObstacle = cspace.NewObstacle

// Read obstacles, rebuilding each one's geometry from its points. Cached
// triangles or outlines that disagree with the rebuilt ones are logged and
// discarded. An obstacle whose rebuild fails is logged and kept with whatever
// geometry it has, so one bad obstacle never drops the rest of the document.
// Only a malformed document fails the load.
func Load(r io.Reader, logger *zap.Logger) ([]*cspace.Obstacle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode obstacles")
	}

	obstacles := make([]*cspace.Obstacle, 0, len(doc.Obstacles))
	for i, record := range doc.Obstacles {
		o, err := newObstacle(loadPoints(record.Points))
		o.ID = record.ID
		if o.ID == uuid.Nil {
			o.ID = uuid.New()
		}
		o.DrawMesh = record.DrawMesh
		if err != nil {
			logger.Warn("rebuilding obstacle failed",
				zap.Int("index", i),
				zap.Stringer("id", o.ID),
				zap.Int("triangles", len(o.Triangles)),
				zap.Error(err),
			)
		}

		cached := make([]cspace.Triangle, 0, len(record.Triangles))
		for _, t := range record.Triangles {
			if len(t) != 3 {
				cached = nil
				break
			}
			cached = append(cached, cspace.Triangle{
				A: cspace.Point{X: t[0].X, Y: t[0].Y},
				B: cspace.Point{X: t[1].X, Y: t[1].Y},
				C: cspace.Point{X: t[2].X, Y: t[2].Y},
			})
		}
		if cached == nil || !cspace.SameTriangles(cached, o.Triangles) {
			logger.Warn("cached triangles do not match points, using rebuilt geometry",
				zap.Stringer("id", o.ID),
				zap.Int("cached", len(record.Triangles)),
				zap.Int("rebuilt", len(o.Triangles)),
			)
		}
		cachedPolygon := cspace.Polygon{Points: loadPoints(record.Polygon)}
		if !cachedPolygon.SameLoop(o.Polygon) {
			logger.Warn("cached polygon does not match points, using rebuilt outline",
				zap.Stringer("id", o.ID),
				zap.Int("cached", len(record.Polygon)),
				zap.Int("rebuilt", len(o.Polygon.Points)),
			)
		}
		obstacles = append(obstacles, o)
	}
	return obstacles, nil
}

func LoadFile(path string, logger *zap.Logger) ([]*cspace.Obstacle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open obstacles file")
	}
	defer file.Close()
	return Load(file, logger)
}
