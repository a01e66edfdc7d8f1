// Package tubenode hosts tube generation for one scene node. It tracks the
// inputs, rebuilds the mesh when they change and publishes the result as a
// single committed surface.
package tubenode

import (
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Faultbox/curvetube/internal/logger"
	"github.com/Faultbox/curvetube/pkg/math"
	"github.com/Faultbox/curvetube/pkg/tube"
)

// Surface is a committed mesh. It is never modified after commit.
type Surface struct {
	Mesh       *tube.MeshBuffers
	Generation uint64 // increments with every commit
}

// Node owns the committed surface of one tube.
type Node struct {
	mu      sync.Mutex // serializes input changes and rebuilds
	points  []math.Vec3
	profile tube.RadiusProfile
	cfg     tube.Config
	dirty   bool

	surface atomic.Pointer[Surface]
	log     *zap.Logger
}

// New returns a node with an empty surface and the default configuration.
// A nil log uses the global logger.
func New(log *zap.Logger) *Node {
	if log == nil {
		log = logger.Named("tubenode")
	}
	n := &Node{cfg: tube.DefaultConfig(), log: log}
	n.surface.Store(&Surface{Mesh: &tube.MeshBuffers{}})
	return n
}

// Surface returns the last committed surface. Safe for concurrent use.
func (n *Node) Surface() *Surface {
	return n.surface.Load()
}

// SetCurve replaces the baked curve points. The slice is copied.
func (n *Node) SetCurve(points []math.Vec3) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if slices.Equal(n.points, points) && n.points != nil {
		return
	}
	n.points = slices.Clone(points)
	n.dirty = true
}

// SetProfile replaces the radius profile.
func (n *Node) SetProfile(profile tube.RadiusProfile) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.profile = profile
	n.dirty = true
}

// SetConfig replaces the generation settings. Identical settings do not
// trigger a rebuild.
func (n *Node) SetConfig(cfg tube.Config) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if cfg == n.cfg {
		return
	}
	n.cfg = cfg
	n.dirty = true
}

// Invalidate forces the next Flush to rebuild, for collaborators whose
// changes are not visible through the setters (a profile edited in place).
func (n *Node) Invalidate() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.dirty = true
}

// Flush rebuilds and commits the surface if any input changed since the
// last commit. It reports whether a rebuild ran.
func (n *Node) Flush() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.dirty {
		return false
	}
	n.rebuild()
	n.dirty = false
	return true
}

// Update replaces all inputs and rebuilds immediately.
func (n *Node) Update(points []math.Vec3, profile tube.RadiusProfile, cfg tube.Config) *Surface {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.points = slices.Clone(points)
	n.profile = profile
	n.cfg = cfg
	n.rebuild()
	n.dirty = false
	return n.surface.Load()
}

// rebuild runs one full generation pass and commits it. Callers hold mu.
func (n *Node) rebuild() {
	b := tube.Builder{OnStage: func(from, to tube.Stage) {
		n.log.Debug("stage", zap.Stringer("from", from), zap.Stringer("to", to))
	}}
	mesh := b.Build(n.points, n.profile, n.cfg)

	last := tube.StageFacesGenerated
	if mesh.IsEmpty() {
		last = tube.StageEmpty
		n.log.Debug("curve too short, committing empty surface", zap.Int("points", len(n.points)))
	}

	prev := n.surface.Load()
	next := &Surface{Mesh: mesh, Generation: prev.Generation + 1}
	n.surface.Store(next)

	n.log.Debug("stage", zap.Stringer("from", last), zap.Stringer("to", tube.StageCommitted))
	n.log.Info("surface committed",
		zap.Uint64("generation", next.Generation),
		zap.Int("points", len(n.points)),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()))
}
