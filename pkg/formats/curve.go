package formats

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/curvetube/pkg/curve"
	"github.com/Faultbox/curvetube/pkg/math"
)

var (
	ErrInvalidCurvePoint = errors.New("invalid curve point: expected [x, y, z]")
	ErrInvalidProfile    = errors.New("invalid profile point")
)

// CurveDoc is a YAML curve document:
//
//	name: rope
//	bake_interval: 0.1
//	points:
//	  - [0, 0, 0]
//	  - [1, 0.5, 0]
//	profile:
//	  - {offset: 0, value: 1}
//	  - {offset: 1, value: 0.2}
type CurveDoc struct {
	Name         string               `yaml:"name"`
	BakeInterval float32              `yaml:"bake_interval"`
	Points       [][]float32          `yaml:"points"`
	Profile      []curve.ProfilePoint `yaml:"profile"`
}

// ParseCurve decodes and validates a curve document.
func ParseCurve(data []byte) (*CurveDoc, error) {
	var doc CurveDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding curve: %w", err)
	}
	for i, p := range doc.Points {
		if len(p) != 3 {
			return nil, fmt.Errorf("%w: point %d has %d components", ErrInvalidCurvePoint, i, len(p))
		}
	}
	for i, p := range doc.Profile {
		if p.Offset < 0 || p.Offset > 1 {
			return nil, fmt.Errorf("%w: %d has offset %g outside [0, 1]", ErrInvalidProfile, i, p.Offset)
		}
	}
	return &doc, nil
}

// LoadCurve reads a curve document from disk.
func LoadCurve(path string) (*CurveDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseCurve(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Path returns the control points as a curve.Path.
func (d *CurveDoc) Path() curve.Path {
	points := make([]math.Vec3, len(d.Points))
	for i, p := range d.Points {
		points[i] = math.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	return curve.Path{Points: points}
}

// Baked returns the path baked at the document's interval.
func (d *CurveDoc) Baked() []math.Vec3 {
	return d.Path().Bake(d.BakeInterval)
}

// RadiusProfile returns the profile, or nil when the document has none.
func (d *CurveDoc) RadiusProfile() *curve.Profile {
	if len(d.Profile) == 0 {
		return nil
	}
	return curve.NewProfile(d.Profile...)
}
