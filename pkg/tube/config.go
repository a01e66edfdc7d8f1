package tube

import (
	"errors"
	"fmt"

	"github.com/Faultbox/curvetube/pkg/math"
)

// Limits below which generation degenerates.
const (
	MinRadialResolution = 4
	MinCapRings         = 1
)

var (
	ErrRadialResolution = errors.New("radial resolution below minimum")
	ErrCapRings         = errors.New("cap rings below minimum")
	ErrRadius           = errors.New("radius must be positive")
)

// Config holds the scalar settings for one generation pass.
type Config struct {
	Radius           float32
	RadialResolution int // sides per ring
	CapStart         bool
	CapEnd           bool
	CapRings         int // subdivisions per cap
	CapUVScale       float32
	CapUVOffset      math.Vec2

	// Up is the reference axis the cross-section plane is aligned from.
	// A zero value means +Y.
	Up math.Vec3

	Material *Material
}

// DefaultConfig returns a capped 16-sided tube of radius 0.5.
func DefaultConfig() Config {
	return Config{
		Radius:           0.5,
		RadialResolution: 16,
		CapStart:         true,
		CapEnd:           true,
		CapRings:         4,
		CapUVScale:       1,
		Up:               math.UnitY,
	}
}

// Validate reports every setting that would produce degenerate geometry.
func (c Config) Validate() error {
	var errs []error
	if c.RadialResolution < MinRadialResolution {
		errs = append(errs, fmt.Errorf("%w: %d < %d", ErrRadialResolution, c.RadialResolution, MinRadialResolution))
	}
	if (c.CapStart || c.CapEnd) && c.CapRings < MinCapRings {
		errs = append(errs, fmt.Errorf("%w: %d < %d", ErrCapRings, c.CapRings, MinCapRings))
	}
	if c.Radius <= 0 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrRadius, c.Radius))
	}
	return errors.Join(errs...)
}

// Clamped returns a copy with resolution and cap rings raised to their
// minimums and a zero Up replaced by +Y. Radius is left untouched.
func (c Config) Clamped() Config {
	c.RadialResolution = max(c.RadialResolution, MinRadialResolution)
	c.CapRings = max(c.CapRings, MinCapRings)
	if c.Up == (math.Vec3{}) {
		c.Up = math.UnitY
	}
	return c
}
