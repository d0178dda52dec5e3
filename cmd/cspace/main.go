package main

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/cspace"
	"github.com/osuushi/cspace/render"
	"github.com/osuushi/cspace/store"
)

var (
	app     = kingpin.New("cspace", "Obstacle triangulation and configuration space sampling for a two-link arm.")
	verbose = app.Flag("verbose", "Log debug output and dump the resolved configuration.").Short('v').Bool()

	triangulateCmd = app.Command("triangulate", `Triangulate obstacles read from stdin as "x y" lines, one blank line between obstacles.`)
	triangulateOut = triangulateCmd.Flag("out", "Save the obstacles as JSON here instead of printing them.").String()

	spaceCmd       = app.Command("space", "Sample the arm's configuration space against saved obstacles.")
	spaceObstacles = spaceCmd.Flag("obstacles", "Obstacles JSON file.").Required().ExistingFile()
	spaceArm       = spaceCmd.Flag("arm", "Arm YAML file. The default arm is used when omitted.").ExistingFile()
	spaceSamples   = spaceCmd.Flag("samples", "Samples per joint.").Default("100").Int()
	spaceWorkers   = spaceCmd.Flag("workers", "Sampling goroutines, 0 for one per CPU.").Default("0").Int()
	spaceCull      = spaceCmd.Flag("cull", "Skip triangle pairs with disjoint bounding boxes.").Bool()
	spacePNG       = spaceCmd.Flag("png", "Write the grid as a PNG.").String()
	spaceCell      = spaceCmd.Flag("cell", "Pixels per grid cell in the PNG.").Default("4").Int()

	sceneCmd       = app.Command("scene", "Draw the arm and obstacles.")
	sceneObstacles = sceneCmd.Flag("obstacles", "Obstacles JSON file.").ExistingFile()
	sceneArm       = sceneCmd.Flag("arm", "Arm YAML file. The default arm is used when omitted.").ExistingFile()
	scenePNG       = sceneCmd.Flag("png", "Write the scene as a PNG.").String()
	sceneSVG       = sceneCmd.Flag("svg", "Write the scene as an SVG.").String()
	sceneScale     = sceneCmd.Flag("scale", "Pixels per world unit.").Default("10").Float64()
	sceneSize      = sceneCmd.Flag("size", "Image width and height in pixels.").Default("800").Int()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	var err error
	switch command {
	case triangulateCmd.FullCommand():
		err = runTriangulate(os.Stdin, os.Stdout, logger)
	case spaceCmd.FullCommand():
		err = runSpace(os.Stdout, logger)
	case sceneCmd.FullCommand():
		err = runScene(logger)
	}
	app.FatalIfError(err, "%s", command)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func runTriangulate(in io.Reader, out io.Writer, logger *zap.Logger) error {
	pointSets, err := readPointSets(in)
	if err != nil {
		return err
	}

	// Each obstacle is built from its complete point list. A failed rebuild
	// keeps whatever geometry it produced.
	set := cspace.NewObstacleSet(logger)
	for i, points := range pointSets {
		o, err := cspace.NewObstacle(points)
		if err != nil {
			logger.Warn("rebuilding obstacle failed",
				zap.Int("index", i),
				zap.Int("points", len(points)),
				zap.Int("triangles", len(o.Triangles)),
				zap.Error(err),
			)
		}
		set.Add(o)
	}

	if *triangulateOut != "" {
		return store.SaveFile(*triangulateOut, set.Obstacles())
	}
	au := aurora.NewAurora(isTerminal(os.Stdout))
	for i, o := range set.Obstacles() {
		fmt.Fprintf(out, "%s %d: %d points, %d triangles\n", au.Bold("obstacle"), i, len(o.Points), len(o.Triangles))
		for _, t := range o.Triangles {
			fmt.Fprintf(out, "  %v\n", t)
		}
		fmt.Fprintf(out, "  %s %v\n", au.Cyan("outline"), o.Polygon.Points)
	}
	return nil
}

// Newline separated "x y" points, each obstacle separated by an extra
// newline.
func readPointSets(in io.Reader) ([][]cspace.Point, error) {
	var sets [][]cspace.Point
	var points []cspace.Point
	scanner := bufio.NewScanner(in)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the obstacle
		if text == "" {
			if len(points) > 0 {
				sets = append(sets, points)
				points = nil
			}
			continue
		}

		p, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}

	// Handle trailing obstacle if any
	if len(points) > 0 {
		sets = append(sets, points)
	}
	return sets, nil
}

func parsePoint(line string) (cspace.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return cspace.Point{}, errors.Errorf("want 2 coordinates, got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return cspace.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return cspace.Point{}, errors.Wrap(err, "y")
	}
	return cspace.Point{X: x, Y: y}, nil
}

func loadArm(path string) (*cspace.TwoLinkArm, error) {
	cfg := store.DefaultArmConfig()
	if path != "" {
		var err error
		if cfg, err = store.LoadArmConfigFile(path); err != nil {
			return nil, err
		}
	}
	if *verbose {
		pretty.Println(cfg)
	}
	return cfg.Arm(), nil
}

func runSpace(out io.Writer, logger *zap.Logger) error {
	arm, err := loadArm(*spaceArm)
	if err != nil {
		return err
	}
	obstacles, err := store.LoadFile(*spaceObstacles, logger)
	if err != nil {
		return err
	}
	var triangles []cspace.Triangle
	for _, o := range obstacles {
		triangles = append(triangles, o.Triangles...)
	}

	full := cspace.Range{Min: -math.Pi, Max: math.Pi}
	grid, err := cspace.ComputeConfigurationSpace(arm, full, full, *spaceSamples, triangles, cspace.SamplerOptions{
		Workers: *spaceWorkers,
		Cull:    *spaceCull,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, grid)
	if *spacePNG == "" {
		fmt.Fprint(out, grid.Render(isTerminal(os.Stdout)))
		return nil
	}
	return savePreview(*spacePNG, render.DrawGrid(grid, *spaceCell), logger)
}

func runScene(logger *zap.Logger) error {
	arm, err := loadArm(*sceneArm)
	if err != nil {
		return err
	}
	var obstacles []*cspace.Obstacle
	if *sceneObstacles != "" {
		if obstacles, err = store.LoadFile(*sceneObstacles, logger); err != nil {
			return err
		}
	}

	vp := render.Viewport{Width: *sceneSize, Height: *sceneSize, Scale: *sceneScale}
	if *sceneSVG != "" {
		file, err := os.Create(*sceneSVG)
		if err != nil {
			return errors.Wrap(err, "create svg")
		}
		if err := render.WriteSceneSVG(file, vp, arm, obstacles); err != nil {
			file.Close()
			return errors.Wrap(err, "write svg")
		}
		if err := file.Close(); err != nil {
			return errors.Wrap(err, "close svg")
		}
	}
	if *scenePNG != "" {
		return savePreview(*scenePNG, render.DrawScene(vp, arm, obstacles), logger)
	}
	return nil
}

// Save a PNG, and show it inline when stdout is a terminal that can take it.
// The PNG on disk is the result; a failed inline preview is only logged.
func savePreview(path string, img image.Image, logger *zap.Logger) error {
	if err := render.SavePNG(path, img); err != nil {
		return err
	}
	if isTerminal(os.Stdout) {
		if err := imgcat.CatFile(path, os.Stdout); err != nil {
			logger.Debug("inline preview failed", zap.String("path", path), zap.Error(err))
		}
	}
	return nil
}
