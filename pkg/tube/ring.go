package tube

import (
	gomath "math"

	"github.com/Faultbox/curvetube/pkg/math"
)

// RingGenerator emits tube and cap rings for one configuration.
type RingGenerator struct {
	Sampler          Sampler
	RadialResolution int
	CapRings         int
	CapUVScale       float32
	CapUVOffset      math.Vec2
}

// NewRingGenerator returns a generator for cfg, which should already be
// clamped.
func NewRingGenerator(cfg Config, profile RadiusProfile) RingGenerator {
	return RingGenerator{
		Sampler:          Sampler{Radius: cfg.Radius, Profile: profile},
		RadialResolution: cfg.RadialResolution,
		CapRings:         cfg.CapRings,
		CapUVScale:       cfg.CapUVScale,
		CapUVOffset:      cfg.CapUVOffset,
	}
}

// RingSize returns the number of vertices per ring.
func (g RingGenerator) RingSize() int {
	return g.RadialResolution + 1
}

// Ring emits a body ring of radius EffectiveRadius(t) around f.Origin.
// Normals point away from the origin; UV is (i/RadialResolution, t).
func (g RingGenerator) Ring(f Frame, t float32) Ring {
	n := g.RadialResolution
	r := g.Sampler.EffectiveRadius(t)
	ring := newRing(RingBody, t, f.Origin, n+1)

	for i := 0; i <= n; i++ {
		cosA, sinA := g.angle(i)
		p := f.Transform(math.Vec3{X: r * cosA, Z: r * sinA})
		ring.Positions = append(ring.Positions, p)
		ring.Normals = append(ring.Normals, p.Sub(f.Origin).Normalize())
		ring.UVs = append(ring.UVs, math.Vec2{X: float32(i) / float32(n), Y: t})
	}
	return ring
}

// angle returns the cosine and sine for ring slot i. Slot RadialResolution
// wraps to slot 0 so the seam vertex matches bit for bit.
func (g RingGenerator) angle(i int) (cosA, sinA float32) {
	k := i % g.RadialResolution
	a := float64(k) * (2 * gomath.Pi / float64(g.RadialResolution))
	return float32(gomath.Cos(a)), float32(gomath.Sin(a))
}

func newRing(kind RingKind, t float32, center math.Vec3, size int) Ring {
	return Ring{
		T:         t,
		Kind:      kind,
		Center:    center,
		Positions: make([]math.Vec3, 0, size),
		Normals:   make([]math.Vec3, 0, size),
		UVs:       make([]math.Vec2, 0, size),
	}
}
