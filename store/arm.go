package store

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/cspace"
)

// An arm as written in a YAML file. Angles are in degrees; everything else is
// in world units.
//
//	base: [0, 0]
//	theta1: 10
//	theta2: -20
//	links:
//	  - size: [30, 4]
//	    pivot: [2, 2]
//	    attach: [28, 2]
//	  - size: [30, 4]
//	    pivot: [2, 2]
//	    attach: [28, 2]
type ArmConfig struct {
	Base   [2]float64   `yaml:"base"`
	Theta1 float64      `yaml:"theta1"`
	Theta2 float64      `yaml:"theta2"`
	Links  []LinkConfig `yaml:"links"`
}

type LinkConfig struct {
	Size   [2]float64 `yaml:"size"`
	Pivot  [2]float64 `yaml:"pivot"`
	Attach [2]float64 `yaml:"attach"`
}

// Two identical 30x4 links pivoting 2 units in from one end and attaching 2
// units in from the other.
func DefaultArmConfig() ArmConfig {
	link := LinkConfig{
		Size:   [2]float64{30, 4},
		Pivot:  [2]float64{2, 2},
		Attach: [2]float64{28, 2},
	}
	return ArmConfig{
		Theta1: 10,
		Theta2: -20,
		Links:  []LinkConfig{link, link},
	}
}

// Parse an arm configuration. Fields missing from the document keep their
// DefaultArmConfig values.
func LoadArmConfig(r io.Reader) (ArmConfig, error) {
	cfg := DefaultArmConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return ArmConfig{}, errors.Wrap(err, "decode arm config")
	}
	if err := cfg.Validate(); err != nil {
		return ArmConfig{}, err
	}
	return cfg, nil
}

func LoadArmConfigFile(path string) (ArmConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return ArmConfig{}, errors.Wrap(err, "open arm config")
	}
	defer file.Close()
	return LoadArmConfig(file)
}

func (cfg ArmConfig) Validate() error {
	if len(cfg.Links) != 2 {
		return errors.Errorf("arm config needs exactly 2 links, got %d", len(cfg.Links))
	}
	for i, link := range cfg.Links {
		if link.Size[0] <= 0 || link.Size[1] <= 0 {
			return errors.Errorf("link %d has non-positive size %v", i+1, link.Size)
		}
	}
	return nil
}

func (cfg ArmConfig) Arm() *cspace.TwoLinkArm {
	return cspace.NewTwoLinkArm(
		vec(cfg.Base),
		radians(cfg.Theta1),
		radians(cfg.Theta2),
		cfg.Links[0].geometry(),
		cfg.Links[1].geometry(),
	)
}

func (link LinkConfig) geometry() cspace.LinkGeometry {
	return cspace.LinkGeometry{
		Size:         vec(link.Size),
		PivotOffset:  vec(link.Pivot),
		AttachOffset: vec(link.Attach),
	}
}

func vec(v [2]float64) cspace.Point {
	return cspace.Point{X: v[0], Y: v[1]}
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
