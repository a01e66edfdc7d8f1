// tubegen sweeps a tube mesh along a curve document and writes it as OBJ.
//
// Usage:
//
//	tubegen -curve rope.yaml -out rope.obj [-radius 0.2] [-sides 24] [-cap-rings 6]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/curvetube/internal/config"
	"github.com/Faultbox/curvetube/internal/logger"
	"github.com/Faultbox/curvetube/internal/tubenode"
	"github.com/Faultbox/curvetube/pkg/formats"
)

var errNoCurve = errors.New("no curve given (use -curve or curve.path)")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg, os.Stdout); err != nil {
		logger.Error("tubegen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run generates the mesh described by cfg. Output goes to cfg.Output.Path,
// or to stdout when it is empty.
func run(cfg *config.Config, stdout io.Writer) error {
	if cfg.Curve.Path == "" {
		return errNoCurve
	}

	doc, err := formats.LoadCurve(cfg.Curve.Path)
	if err != nil {
		return fmt.Errorf("loading curve: %w", err)
	}
	if cfg.Curve.BakeInterval > 0 {
		doc.BakeInterval = cfg.Curve.BakeInterval
	}

	points := doc.Baked()
	logger.Info("curve loaded",
		zap.String("path", cfg.Curve.Path),
		zap.Int("control_points", len(doc.Points)),
		zap.Int("baked_points", len(points)),
		zap.Float32("length", doc.Path().Length()))

	node := tubenode.New(logger.Named("tubenode"))
	surface := node.Update(points, doc.RadiusProfile(), cfg.Tube.ToTube(logger.Log))
	if surface.Mesh.IsEmpty() {
		logger.Warn("curve has fewer than two baked points, writing empty mesh")
	}

	name := cfg.Output.Name
	if name == "" {
		name = doc.Name
	}

	if cfg.Output.Path == "" {
		return formats.WriteOBJ(stdout, surface.Mesh, name)
	}

	f, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := formats.WriteOBJ(f, surface.Mesh, name); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", cfg.Output.Path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("mesh written",
		zap.String("path", cfg.Output.Path),
		zap.Int("vertices", surface.Mesh.VertexCount()),
		zap.Int("triangles", surface.Mesh.TriangleCount()))
	return nil
}
