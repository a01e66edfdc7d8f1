package formats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/curvetube/pkg/tube"
)

// WriteOBJ writes mesh as a Wavefront OBJ object. Faces are written
// counter-clockwise, reversing the mesh's clockwise winding. V is flipped
// so textures keep their orientation.
func WriteOBJ(w io.Writer, mesh *tube.MeshBuffers, name string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", mesh.VertexCount(), mesh.TriangleCount())
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	if mesh.Material != nil && mesh.Material.Name != "" {
		fmt.Fprintf(bw, "usemtl %s\n", mesh.Material.Name)
	}

	for _, p := range mesh.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for _, uv := range mesh.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, 1-uv.Y)
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}

	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		// OBJ indices are 1-based
		a, b, c := tri[0]+1, tri[2]+1, tri[1]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}
