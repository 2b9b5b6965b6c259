// Lower level entry points working directly on flat vertex buffers.
//
// Every function here validates its input and returns an error instead of
// panicking. Geometry that can't be triangulated is not an error: the result
// is simply partial. Use SetTraceOutput to see why.
package advanced

import (
	"io"

	"github.com/Open-S2/earclip/internal"
)

type Point2D = internal.Point2D
type Point3D = internal.Point3D

// Re-exported so callers can build their own recovering wrappers.
var HandleTriangulatePanicRecover = internal.HandleTriangulatePanicRecover

func recoverInto(err *error) {
	if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
		*err = recoveredErr
	}
}

// Triangulate a flat buffer of vertices with stride dim. holeIndices gives the
// starting vertex index of every hole ring, in ascending order. The result
// lists three vertex indices per triangle.
func Triangulate(vertices []float64, holeIndices []int, dim int) (result []int, err error) {
	defer recoverInto(&err)
	return internal.Earcut(vertices, holeIndices, dim), nil
}

// Re-tessellate a mesh along a grid of spacing modulo on every axis. The
// inputs are not modified; grown copies are returned.
func Tessellate(vertices []float64, indices []int, modulo float64, dim int) (outVertices []float64, outIndices []int, err error) {
	defer recoverInto(&err)
	v := append(make([]float64, 0, len(vertices)), vertices...)
	i := append(make([]int, 0, len(indices)), indices...)
	outVertices, outIndices = internal.Tessellate(v, i, modulo, dim)
	return outVertices, outIndices, nil
}

// Flatten nested coordinate rings into a flat buffer with hole indices.
func Flatten(rings [][][]float64) (vertices []float64, holeIndices []int, dim int, err error) {
	defer recoverInto(&err)
	vertices, holeIndices, dim = internal.Flatten(rings)
	return vertices, holeIndices, dim, nil
}

// Flatten rings of point values into a flat buffer with hole indices.
func FlattenPoints(rings [][]Point2D) (vertices []float64, holeIndices []int, dim int, err error) {
	defer recoverInto(&err)
	vertices, holeIndices, dim = internal.FlattenPoints(rings)
	return vertices, holeIndices, dim, nil
}

// Relative difference between the triangulated area and the polygon's area.
func Deviation(vertices []float64, holeIndices []int, indices []int, dim int) (result float64, err error) {
	defer recoverInto(&err)
	return internal.Deviation(vertices, holeIndices, indices, dim), nil
}

// Twice the signed area of the ring stored at vertices[start:end], where start
// and end are buffer offsets. Positive for counterclockwise rings with y up.
func SignedArea(vertices []float64, start, end, dim int) float64 {
	return internal.SignedArea(vertices, start, end, dim)
}

// Send the engine trace to w, or turn it off with nil. The trace is shared by
// all calls in the process.
func SetTraceOutput(w io.Writer) {
	internal.SetTraceOutput(w)
}
