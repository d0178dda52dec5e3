package internal

import (
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Occupancy of the arm's joint space, sampled on a Samples x Samples grid.
// Occupied[i][j] is true when the arm collides at (Theta1At(i), Theta2At(j)).
type Grid struct {
	Theta1, Theta2 Range
	Samples        int
	Occupied       [][]bool
}

type SamplerOptions struct {
	// Number of goroutines filling rows. Zero means GOMAXPROCS.
	Workers int
	// Skip exact tests for triangle pairs with disjoint bounding boxes. This is
	// faster, but it also drops the far apart collinear edge hits that
	// SegmentsIntersect reports, so it can change results.
	Cull   bool
	Logger *zap.Logger
}

func (o SamplerOptions) workers(rows int) int {
	n := o.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > rows {
		n = rows
	}
	return n
}

func (o SamplerOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Sample the arm's configuration space against a set of obstacle triangles.
//
// Rows are spread over worker goroutines. Each worker moves its own copy of
// the arm, and obstacles are only read, so the arm passed in is never touched:
// its angles are the same after the call as before it.
func ComputeConfigurationSpace(arm *TwoLinkArm, theta1, theta2 Range, samples int, obstacles []Triangle, opts SamplerOptions) (*Grid, error) {
	if arm == nil {
		return nil, ErrNilArm
	}
	if samples < 1 {
		return nil, errors.Wrapf(ErrInvalidSampleCount, "got %d", samples)
	}
	logger := opts.logger()
	start := time.Now()

	grid := &Grid{
		Theta1:   theta1,
		Theta2:   theta2,
		Samples:  samples,
		Occupied: make([][]bool, samples),
	}
	theta1s := Linspace(theta1.Min, theta1.Max, samples)
	theta2s := Linspace(theta2.Min, theta2.Max, samples)

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := opts.workers(samples); w > 0; w-- {
		wg.Add(1)
		local := *arm
		go func() {
			defer wg.Done()
			for i := range rows {
				row := make([]bool, samples)
				for j, t2 := range theta2s {
					local.UpdateAngles(theta1s[i], t2)
					row[j] = collides(local.Triangles(), obstacles, opts.Cull)
				}
				grid.Occupied[i] = row
			}
		}()
	}
	for i := 0; i < samples; i++ {
		rows <- i
	}
	close(rows)
	wg.Wait()

	logger.Debug("sampled configuration space",
		zap.Int("samples", samples),
		zap.Int("obstacleTriangles", len(obstacles)),
		zap.Int("occupied", grid.OccupiedCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return grid, nil
}

func (g *Grid) At(i, j int) bool {
	return g.Occupied[i][j]
}

func (g *Grid) Theta1At(i int) float64 {
	return sampleAt(g.Theta1, g.Samples, i)
}

func (g *Grid) Theta2At(j int) float64 {
	return sampleAt(g.Theta2, g.Samples, j)
}

func (g *Grid) OccupiedCount() int {
	count := 0
	for _, row := range g.Occupied {
		for _, occupied := range row {
			if occupied {
				count++
			}
		}
	}
	return count
}

func sampleAt(r Range, n, i int) float64 {
	if n == 1 {
		return r.Min
	}
	if i == n-1 {
		return r.Max
	}
	step := (r.Max - r.Min) / float64(n-1)
	return r.Min + float64(i)*step
}
