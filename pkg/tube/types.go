// Package tube sweeps circular cross-sections along a baked 3D polyline and
// stitches them into a closed triangle mesh, optionally capped with
// hemispheres at either end.
package tube

import (
	"github.com/Faultbox/curvetube/pkg/math"
)

// RingKind tells which part of the tube a ring belongs to.
type RingKind uint8

const (
	RingBody RingKind = iota
	RingStartCap
	RingEndCap
)

func (k RingKind) String() string {
	switch k {
	case RingBody:
		return "body"
	case RingStartCap:
		return "start-cap"
	case RingEndCap:
		return "end-cap"
	default:
		return "unknown"
	}
}

// Ring is one closed loop of RadialResolution+1 vertices. The last vertex
// repeats the first position and normal with U = 1.
type Ring struct {
	T         float32 // curve parameter the ring was generated at
	Kind      RingKind
	Center    math.Vec3
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
}

// Len returns the number of vertices in the ring.
func (r Ring) Len() int {
	return len(r.Positions)
}

// RingInfo records where a ring landed in the assembled vertex buffer.
type RingInfo struct {
	T    float32
	Kind RingKind
	Base uint32 // index of the ring's first vertex
}

// Material is an opaque reference handed through to the renderer.
type Material struct {
	Name string
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// MeshBuffers holds one generated triangle-list surface. Positions, Normals
// and UVs are index-aligned; Indices come in groups of three.
type MeshBuffers struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Indices   []uint32
	Rings     []RingInfo
	Material  *Material
	Bounds    Bounds
}

// VertexCount returns the number of vertices.
func (m *MeshBuffers) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *MeshBuffers) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty reports whether the mesh has no geometry.
func (m *MeshBuffers) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Triangle returns the vertex indices of triangle i.
func (m *MeshBuffers) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]}
}

// appendRing copies a ring's vertices to the end of the buffers.
func (m *MeshBuffers) appendRing(r Ring) {
	if len(m.Positions) == 0 && len(r.Positions) > 0 {
		m.Bounds = Bounds{Min: r.Positions[0], Max: r.Positions[0]}
	}
	m.Rings = append(m.Rings, RingInfo{T: r.T, Kind: r.Kind, Base: uint32(len(m.Positions))})
	for _, p := range r.Positions {
		m.Bounds.Min = m.Bounds.Min.Min(p)
		m.Bounds.Max = m.Bounds.Max.Max(p)
	}
	m.Positions = append(m.Positions, r.Positions...)
	m.Normals = append(m.Normals, r.Normals...)
	m.UVs = append(m.UVs, r.UVs...)
}
