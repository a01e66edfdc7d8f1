// Package config handles tubegen configuration loading and management.
package config

import (
	"go.uber.org/zap"

	"github.com/Faultbox/curvetube/pkg/math"
	"github.com/Faultbox/curvetube/pkg/tube"
)

// Config holds all tubegen settings.
type Config struct {
	Tube    TubeConfig    `yaml:"tube"`
	Curve   CurveConfig   `yaml:"curve"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TubeConfig holds the mesh generation settings.
type TubeConfig struct {
	Radius           float32 `yaml:"radius"`
	RadialResolution int     `yaml:"radial_resolution"`
	CapStart         bool    `yaml:"cap_start"`
	CapEnd           bool    `yaml:"cap_end"`
	CapRings         int     `yaml:"cap_rings"`
	CapUVScale       float32 `yaml:"cap_uv_scale"`
	CapUVOffset      UV      `yaml:"cap_uv_offset"`
	Up               XYZ     `yaml:"up"`
	Material         string  `yaml:"material"`
}

// UV is a texture-space offset.
type UV struct {
	U float32 `yaml:"u"`
	V float32 `yaml:"v"`
}

// XYZ is a direction in world space.
type XYZ struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// CurveConfig holds input curve settings.
type CurveConfig struct {
	Path         string  `yaml:"path"`          // YAML curve document
	BakeInterval float32 `yaml:"bake_interval"` // overrides the document's interval when > 0
}

// OutputConfig holds mesh output settings.
type OutputConfig struct {
	Path string `yaml:"path"` // empty writes to stdout
	Name string `yaml:"name"` // OBJ object name
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	d := tube.DefaultConfig()
	return &Config{
		Tube: TubeConfig{
			Radius:           d.Radius,
			RadialResolution: d.RadialResolution,
			CapStart:         d.CapStart,
			CapEnd:           d.CapEnd,
			CapRings:         d.CapRings,
			CapUVScale:       d.CapUVScale,
			Up:               XYZ{X: d.Up.X, Y: d.Up.Y, Z: d.Up.Z},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ToTube converts the settings into a generation config. Degenerate values
// are reported on log and clamped; a non-positive radius is only reported.
func (c TubeConfig) ToTube(log *zap.Logger) tube.Config {
	cfg := tube.Config{
		Radius:           c.Radius,
		RadialResolution: c.RadialResolution,
		CapStart:         c.CapStart,
		CapEnd:           c.CapEnd,
		CapRings:         c.CapRings,
		CapUVScale:       c.CapUVScale,
		CapUVOffset:      math.Vec2{X: c.CapUVOffset.U, Y: c.CapUVOffset.V},
		Up:               math.Vec3{X: c.Up.X, Y: c.Up.Y, Z: c.Up.Z},
	}
	if c.Material != "" {
		cfg.Material = &tube.Material{Name: c.Material}
	}

	if err := cfg.Validate(); err != nil {
		log.Warn("degenerate tube settings",
			zap.Error(err),
			zap.Int("radial_resolution", cfg.RadialResolution),
			zap.Int("cap_rings", cfg.CapRings),
			zap.Float32("radius", cfg.Radius))
	}
	return cfg.Clamped()
}
