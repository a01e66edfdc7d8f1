package tube

import (
	gomath "math"

	"github.com/Faultbox/curvetube/pkg/math"
)

// Cap emits CapRings+1 rings tracing a hemisphere centred on f.Origin.
//
// The start cap bulges against the tangent and runs pole first, ending at
// the equator next to the first body ring. The end cap bulges along the
// tangent and runs equator first, ending at the pole. The equator radius is
// the effective radius at t=0 or t=1 so it meets the body.
func (g RingGenerator) Cap(f Frame, start bool) []Ring {
	kind, t, sign := RingEndCap, float32(1), float32(1)
	if start {
		kind, t, sign = RingStartCap, 0, -1
	}

	n := g.RadialResolution
	r := g.Sampler.EffectiveRadius(t)
	rings := make([]Ring, 0, g.CapRings+1)

	for j := 0; j <= g.CapRings; j++ {
		step := j
		if !start {
			step = g.CapRings - j
		}
		beta := float64(step) * (gomath.Pi / 2) / float64(g.CapRings)
		sinB := float32(gomath.Sin(beta))
		cosB := float32(gomath.Cos(beta))

		ring := newRing(kind, t, f.Origin, n+1)
		for i := 0; i <= n; i++ {
			cosA, sinA := g.angle(i)
			local := math.Vec3{
				X: r * sinB * cosA,
				Y: sign * r * cosB,
				Z: r * sinB * sinA,
			}
			p := f.Transform(local)
			uv := math.Vec2{X: float32(i) / float32(n), Y: 1}.
				Scale(sinB).
				Scale(g.CapUVScale).
				Add(g.CapUVOffset)

			ring.Positions = append(ring.Positions, p)
			ring.Normals = append(ring.Normals, p.Sub(f.Origin).Normalize())
			ring.UVs = append(ring.UVs, uv)
		}
		rings = append(rings, ring)
	}
	return rings
}
