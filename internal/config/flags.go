package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagCurve      = flag.String("curve", "", "Path to curve YAML document")
	flagOut        = flag.String("out", "", "Output OBJ path (default stdout)")
	flagRadius     = flag.Float64("radius", 0, "Tube radius")
	flagSides      = flag.Int("sides", 0, "Sides per ring")
	flagCapRings   = flag.Int("cap-rings", 0, "Rings per hemispherical cap")
	flagNoCapStart = flag.Bool("no-cap-start", false, "Leave the start of the tube open")
	flagNoCapEnd   = flag.Bool("no-cap-end", false, "Leave the end of the tube open")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCurve != "" {
		cfg.Curve.Path = *flagCurve
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
	}
	if *flagRadius > 0 {
		cfg.Tube.Radius = float32(*flagRadius)
	}
	if *flagSides > 0 {
		cfg.Tube.RadialResolution = *flagSides
	}
	if *flagCapRings > 0 {
		cfg.Tube.CapRings = *flagCapRings
	}
	if *flagNoCapStart {
		cfg.Tube.CapStart = false
	}
	if *flagNoCapEnd {
		cfg.Tube.CapEnd = false
	}
}
