package curve

import "github.com/Faultbox/curvetube/pkg/math"

// Path is a 3D polyline of control points.
type Path struct {
	Points []math.Vec3
}

// Length returns the total arc length.
func (p Path) Length() float32 {
	var total float32
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i-1].Distance(p.Points[i])
	}
	return total
}

// Bake samples the path every interval units of arc length. The first and
// last control points are always included. A non-positive interval returns
// the control points unchanged.
func (p Path) Bake(interval float32) []math.Vec3 {
	if len(p.Points) < 2 || interval <= 0 {
		return append([]math.Vec3(nil), p.Points...)
	}

	baked := []math.Vec3{p.Points[0]}
	next := interval // arc length of the next sample
	var walked float32
	for i := 1; i < len(p.Points); i++ {
		from, to := p.Points[i-1], p.Points[i]
		seg := from.Distance(to)
		for seg > 0 && next < walked+seg {
			baked = append(baked, from.Lerp(to, (next-walked)/seg))
			next += interval
		}
		walked += seg
	}

	last := p.Points[len(p.Points)-1]
	// Drop a sample that landed on top of the final point.
	if tail := baked[len(baked)-1]; len(baked) > 1 && tail.Distance(last) < interval*1e-3 {
		baked = baked[:len(baked)-1]
	}
	return append(baked, last)
}
