package tube

import "github.com/Faultbox/curvetube/pkg/math"

// Triangulator stitches consecutive rings into quad strips.
//
// Triangles are front facing when wound clockwise: FaceNormal gives the
// outward normal for the emitted vertex order.
type Triangulator struct {
	RadialResolution int
}

// RingSize returns the number of vertices per ring.
func (tr Triangulator) RingSize() int {
	return tr.RadialResolution + 1
}

// ConnectRings appends 2*RadialResolution triangles joining the ring at
// base to the ring right after it.
func (tr Triangulator) ConnectRings(dst []uint32, base uint32) []uint32 {
	size := uint32(tr.RingSize())
	for k := uint32(0); k < uint32(tr.RadialResolution); k++ {
		a := base + k
		b := a + 1
		d := a + size
		c := d + 1
		dst = append(dst, a, b, c, a, c, d)
	}
	return dst
}

// ConnectRingRange connects pairs consecutive ring pairs starting at ring
// startRing and returns the index of the ring following the range.
func (tr Triangulator) ConnectRingRange(dst []uint32, startRing, pairs int) ([]uint32, int) {
	size := tr.RingSize()
	for p := 0; p < pairs; p++ {
		dst = tr.ConnectRings(dst, uint32((startRing+p)*size))
	}
	return dst, startRing + pairs + 1
}

// FaceNormal returns the unit normal of a clockwise triangle a, b, c.
func FaceNormal(a, b, c math.Vec3) math.Vec3 {
	return c.Sub(a).Cross(b.Sub(a)).Normalize()
}
