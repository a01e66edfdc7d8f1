package tube

// RadiusProfile maps a curve parameter in [0,1] to a radius multiplier.
// A profile with zero points is ignored.
type RadiusProfile interface {
	PointCount() int
	Sample(t float32) float32
}

// ProfileFunc adapts a plain function to RadiusProfile.
type ProfileFunc func(t float32) float32

// PointCount always reports one point so the function is sampled.
func (f ProfileFunc) PointCount() int { return 1 }

// Sample calls f(t).
func (f ProfileFunc) Sample(t float32) float32 { return f(t) }

// Sampler resolves the effective tube radius along the curve.
type Sampler struct {
	Radius  float32
	Profile RadiusProfile
}

// EffectiveRadius returns Radius scaled by the profile at t. The result is
// not clamped, so a negative profile value inverts the ring.
func (s Sampler) EffectiveRadius(t float32) float32 {
	if s.Profile == nil || s.Profile.PointCount() == 0 {
		return s.Radius
	}
	return s.Radius * s.Profile.Sample(t)
}
