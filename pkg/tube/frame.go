package tube

import (
	gomath "math"

	"github.com/Faultbox/curvetube/pkg/math"
)

// parallelEpsilon is the cross-product length below which a direction is
// treated as parallel to the up axis.
const parallelEpsilon = 1e-6

// Frame places the canonical cross-section (the local XZ plane) in world
// space. Local +Y maps onto the direction of travel.
type Frame struct {
	Basis  math.Quat
	Origin math.Vec3
}

// Transform maps a local point into world space.
func (f Frame) Transform(p math.Vec3) math.Vec3 {
	return f.Basis.Rotate(p).Add(f.Origin)
}

// Tangent returns the world direction of local +Y.
func (f Frame) Tangent() math.Vec3 {
	return f.Basis.Rotate(math.UnitY)
}

// Matrix returns the frame as an affine transform.
func (f Frame) Matrix() math.Mat4 {
	return math.Translate(f.Origin).Mul(f.Basis.ToMat4())
}

// AlignFrame builds the frame at lerp(from, to, tLocal) whose cross-section
// plane is perpendicular to to-from.
//
// When the segment runs along up the rotation is the identity; when it runs
// against up it is a half turn about a fixed axis perpendicular to up, so
// ring winding stays outward. A zero-length segment yields the identity.
func AlignFrame(from, to, up math.Vec3, tLocal float32) Frame {
	basis, _ := alignBasis(to.Sub(from), up)
	return Frame{Basis: basis, Origin: from.Lerp(to, tLocal)}
}

// alignBasis returns the rotation carrying local +Y onto direction, going
// through up. ok is false when direction has zero length.
func alignBasis(direction, up math.Vec3) (q math.Quat, ok bool) {
	up = up.Normalize()
	if up == (math.Vec3{}) {
		up = math.UnitY
	}
	canonical := rotationBetween(math.UnitY, up)

	direction = direction.Normalize()
	if direction == (math.Vec3{}) {
		return canonical, false
	}
	return rotationBetween(up, direction).Mul(canonical), true
}

// rotationBetween rotates unit vector from onto unit vector to about
// normalize(cross(to, from)) by the angle between them.
func rotationBetween(from, to math.Vec3) math.Quat {
	axis := to.Cross(from)
	if axis.Length() < parallelEpsilon {
		if to.Dot(from) > 0 {
			return math.QuatIdentity()
		}
		return math.QuatFromAxisAngle(perpendicular(from), gomath.Pi)
	}
	return math.QuatFromAxisAngle(axis.Normalize(), -to.AngleTo(from))
}

// perpendicular returns a deterministic unit vector orthogonal to v.
func perpendicular(v math.Vec3) math.Vec3 {
	p := v.Cross(math.UnitX)
	if p.Length() < parallelEpsilon {
		p = v.Cross(math.UnitZ)
	}
	return p.Normalize()
}
