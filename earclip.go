// Polygon triangulation by ear clipping, with optional grid re-tessellation.
//
// A polygon is given as rings of coordinate arrays. The first ring is the
// outer boundary and every following ring is a hole. Rings may wind either
// way. Points are 2D ([x, y]) or 3D ([x, y, z]); the third coordinate is
// carried through to the output but ignored by the triangulation itself.
//
// The result is a Mesh: a flat vertex buffer plus three vertex indices per
// triangle. See the advanced package for working on flat buffers directly.
package earclip

import (
	"math"

	"github.com/Open-S2/earclip/advanced"
	"github.com/pkg/errors"
)

type Polygon = [][][]float64
type Point2D = advanced.Point2D
type Point3D = advanced.Point3D

// A triangle mesh. Vertices has Dim values per vertex, and every three
// entries of Indices form a triangle.
type Mesh struct {
	Vertices []float64 `json:"vertices" yaml:"vertices"`
	Indices  []int     `json:"indices" yaml:"indices"`
	Dim      int       `json:"dim" yaml:"dim"`
}

// Number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	if m.Dim == 0 {
		return 0
	}
	return len(m.Vertices) / m.Dim
}

// Number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// NoModulo disables re-tessellation.
var NoModulo = math.Inf(1)

// Triangulate the polygon. If modulo is finite, the triangles are then cut
// along every multiple of modulo on each axis. Every output index is shifted
// by offset, which lets several meshes share one vertex buffer.
func Earclip(polygon Polygon, modulo float64, offset int) (result *Mesh, err error) {
	vertices, holeIndices, dim, err := advanced.Flatten(polygon)
	if err != nil {
		return nil, err
	}
	return earclip(vertices, holeIndices, dim, modulo, offset)
}

// Earclip for rings of point values. If the first point implements Point3D,
// the mesh is 3D.
func EarclipPoints(rings [][]Point2D, modulo float64, offset int) (result *Mesh, err error) {
	vertices, holeIndices, dim, err := advanced.FlattenPoints(rings)
	if err != nil {
		return nil, err
	}
	return earclip(vertices, holeIndices, dim, modulo, offset)
}

// Triangulate several polygons into one mesh. The vertex buffers are
// concatenated in order, and each polygon's indices are offset by the number
// of vertices before it. All polygons must have the same dimension.
func EarclipMulti(polygons []Polygon, modulo float64) (*Mesh, error) {
	result := &Mesh{Vertices: []float64{}, Indices: []int{}, Dim: 2}
	for i, polygon := range polygons {
		mesh, err := Earclip(polygon, modulo, result.VertexCount())
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		if len(mesh.Vertices) == 0 {
			continue
		}
		if len(result.Vertices) == 0 {
			result.Dim = mesh.Dim
		} else if mesh.Dim != result.Dim {
			return nil, errors.Errorf("polygon %d has dimension %d, want %d", i, mesh.Dim, result.Dim)
		}
		result.Vertices = append(result.Vertices, mesh.Vertices...)
		result.Indices = append(result.Indices, mesh.Indices...)
	}
	return result, nil
}

func earclip(vertices []float64, holeIndices []int, dim int, modulo float64, offset int) (*Mesh, error) {
	if offset < 0 {
		return nil, errors.Errorf("offset must not be negative, got %d", offset)
	}
	indices, err := advanced.Triangulate(vertices, holeIndices, dim)
	if err != nil {
		return nil, err
	}

	if !math.IsInf(modulo, 1) {
		vertices, indices, err = advanced.Tessellate(vertices, indices, modulo, dim)
		if err != nil {
			return nil, err
		}
	}

	if offset != 0 {
		for i := range indices {
			indices[i] += offset
		}
	}
	return &Mesh{Vertices: vertices, Indices: indices, Dim: dim}, nil
}
