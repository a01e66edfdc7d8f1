// Package curve provides simple radius profiles and baked polylines to feed
// the tube builder.
package curve

import "sort"

// ProfilePoint is one control point of a Profile.
type ProfilePoint struct {
	Offset float32 `yaml:"offset"` // position along the curve, 0..1
	Value  float32 `yaml:"value"`
}

// Profile is a piecewise-linear scalar curve over [0,1].
type Profile struct {
	points []ProfilePoint
}

// NewProfile returns a profile with the given control points, sorted by
// offset.
func NewProfile(points ...ProfilePoint) *Profile {
	p := &Profile{}
	for _, pt := range points {
		p.AddPoint(pt.Offset, pt.Value)
	}
	return p
}

// AddPoint inserts a control point, keeping offsets ordered. Points with
// equal offsets keep insertion order.
func (p *Profile) AddPoint(offset, value float32) {
	i := sort.Search(len(p.points), func(i int) bool {
		return p.points[i].Offset > offset
	})
	p.points = append(p.points, ProfilePoint{})
	copy(p.points[i+1:], p.points[i:])
	p.points[i] = ProfilePoint{Offset: offset, Value: value}
}

// Points returns a copy of the control points.
func (p *Profile) Points() []ProfilePoint {
	if p == nil {
		return nil
	}
	return append([]ProfilePoint(nil), p.points...)
}

// PointCount returns the number of control points. A nil profile has none.
func (p *Profile) PointCount() int {
	if p == nil {
		return 0
	}
	return len(p.points)
}

// Sample interpolates the profile at t. Values outside the control point
// range hold the nearest end value.
func (p *Profile) Sample(t float32) float32 {
	n := p.PointCount()
	switch {
	case n == 0:
		return 1
	case t <= p.points[0].Offset:
		return p.points[0].Value
	case t >= p.points[n-1].Offset:
		return p.points[n-1].Value
	}

	i := sort.Search(n, func(i int) bool {
		return p.points[i].Offset > t
	})
	a, b := p.points[i-1], p.points[i]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Value
	}
	f := (t - a.Offset) / span
	return a.Value + f*(b.Value-a.Value)
}
