package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point sets. This is not a full (or
// even correct) svg parser. The single polygon gives the convex hull of the
// set, and every circle center is an interior point. The radius of a circle is
// only there to make the point visible in a viewer. If anything goes wrong,
// it bails.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type Fixture struct {
	Hull     Polygon
	Interior []Point
}

// Hull points first, then interior points, in document order.
func (f Fixture) Points() []Point {
	points := append([]Point(nil), f.Hull.Points...)
	return append(points, f.Interior...)
}

func LoadFixture(name string) Fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer file.Close()
	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Fixture %q needs exactly one polygon, found %d", name, len(polygons))
	}

	var hull []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		hull = append(hull, Point{X: parseCoord(coords[0]), Y: parseCoord(coords[1])})
	}

	var interior []Point
	for _, circleEl := range rootEl.FindAll("circle") {
		interior = append(interior, Point{
			X: parseCoord(circleEl.Attributes["cx"]),
			Y: parseCoord(circleEl.Attributes["cy"]),
		})
	}

	// Ensure that the hull is CCW
	fixture := Fixture{Hull: Polygon{Points: hull}, Interior: interior}
	if !fixture.Hull.IsCCW() {
		fixture.Hull = fixture.Hull.Reverse()
	}
	return fixture
}

func parseCoord(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return v
}
