package tube

import "github.com/Faultbox/curvetube/pkg/math"

// Stage is a step of one generation pass.
type Stage uint8

const (
	StageEmpty Stage = iota
	StageVerticesGenerated
	StageFacesGenerated
	StageCommitted
)

func (s Stage) String() string {
	switch s {
	case StageEmpty:
		return "empty"
	case StageVerticesGenerated:
		return "vertices-generated"
	case StageFacesGenerated:
		return "faces-generated"
	case StageCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Builder runs generation passes. The zero value is ready to use.
type Builder struct {
	// OnStage, if set, is called after each stage transition.
	OnStage func(from, to Stage)
}

// Build generates the tube mesh for a baked curve. See Builder.Build.
func Build(points []math.Vec3, profile RadiusProfile, cfg Config) *MeshBuffers {
	return Builder{}.Build(points, profile, cfg)
}

// Build sweeps rings along points and returns fresh buffers. Fewer than two
// points yield an empty mesh. cfg is clamped before use.
//
// The tube body gets one ring per point. Cap rings and body rings never
// share vertices, so the start cap, body and end cap are triangulated as
// separate ranges.
func (b Builder) Build(points []math.Vec3, profile RadiusProfile, cfg Config) *MeshBuffers {
	cfg = cfg.Clamped()
	mesh := &MeshBuffers{Material: cfg.Material}
	if len(points) < 2 {
		return mesh
	}

	gen := NewRingGenerator(cfg, profile)
	capRings := 0
	if cfg.CapStart {
		capRings += cfg.CapRings + 1
	}
	if cfg.CapEnd {
		capRings += cfg.CapRings + 1
	}
	ringCount := len(points) + capRings
	mesh.Positions = make([]math.Vec3, 0, ringCount*gen.RingSize())
	mesh.Normals = make([]math.Vec3, 0, ringCount*gen.RingSize())
	mesh.UVs = make([]math.Vec2, 0, ringCount*gen.RingSize())
	mesh.Rings = make([]RingInfo, 0, ringCount)

	b.generateVertices(mesh, points, gen, cfg)
	b.transition(StageEmpty, StageVerticesGenerated)

	b.generateFaces(mesh, len(points), cfg)
	b.transition(StageVerticesGenerated, StageFacesGenerated)

	return mesh
}

func (b Builder) transition(from, to Stage) {
	if b.OnStage != nil {
		b.OnStage(from, to)
	}
}

func (b Builder) generateVertices(mesh *MeshBuffers, points []math.Vec3, gen RingGenerator, cfg Config) {
	frame := Frame{Basis: firstBasis(points, cfg.Up), Origin: points[0]}

	if cfg.CapStart {
		for _, r := range gen.Cap(frame, true) {
			mesh.appendRing(r)
		}
	}
	mesh.appendRing(gen.Ring(frame, 0))

	total := polylineLength(points)
	var walked float32
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		walked += from.Distance(to)

		// Zero-length segments keep the previous orientation.
		if basis, ok := alignBasis(to.Sub(from), cfg.Up); ok {
			frame.Basis = basis
		}
		frame.Origin = to

		var t float32
		if total > 0 {
			t = min(walked/total, 1)
		}
		mesh.appendRing(gen.Ring(frame, t))
	}

	if cfg.CapEnd {
		for _, r := range gen.Cap(frame, false) {
			mesh.appendRing(r)
		}
	}
}

func (b Builder) generateFaces(mesh *MeshBuffers, bodyRings int, cfg Config) {
	tri := Triangulator{RadialResolution: cfg.RadialResolution}

	pairs := bodyRings - 1
	if cfg.CapStart {
		pairs += cfg.CapRings
	}
	if cfg.CapEnd {
		pairs += cfg.CapRings
	}
	mesh.Indices = make([]uint32, 0, pairs*cfg.RadialResolution*6)

	ring := 0
	if cfg.CapStart {
		mesh.Indices, ring = tri.ConnectRingRange(mesh.Indices, ring, cfg.CapRings)
	}
	mesh.Indices, ring = tri.ConnectRingRange(mesh.Indices, ring, bodyRings-1)
	if cfg.CapEnd {
		mesh.Indices, _ = tri.ConnectRingRange(mesh.Indices, ring, cfg.CapRings)
	}
}

// firstBasis orients the first ring along the first segment of non-zero
// length. A curve whose points all coincide gets the up-aligned basis.
func firstBasis(points []math.Vec3, up math.Vec3) math.Quat {
	for i := 1; i < len(points); i++ {
		if basis, ok := alignBasis(points[i].Sub(points[0]), up); ok {
			return basis
		}
	}
	basis, _ := alignBasis(math.Vec3{}, up)
	return basis
}

func polylineLength(points []math.Vec3) float32 {
	var total float32
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
