package export

import (
	"io"

	"github.com/Open-S2/earclip"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Document builds a glTF document with a single mesh node holding the
// triangles. 2D meshes are placed in the z = 0 plane.
func Document(mesh *earclip.Mesh, name string) (*gltf.Document, error) {
	if mesh.Dim != 2 && mesh.Dim != 3 {
		return nil, errors.Errorf("mesh dimension %d can't be exported", mesh.Dim)
	}

	count := mesh.VertexCount()
	positions := make([][3]float32, count)
	for i := range positions {
		v := mesh.Vertices[i*mesh.Dim:]
		positions[i][0] = float32(v[0])
		positions[i][1] = float32(v[1])
		if mesh.Dim == 3 {
			positions[i][2] = float32(v[2])
		}
	}

	indices := make([]uint32, len(mesh.Indices))
	for i, index := range mesh.Indices {
		if index < 0 || index >= count {
			return nil, errors.Errorf("index %d at position %d is outside the %d vertices", index, i, count)
		}
		indices[i] = uint32(index)
	}

	doc := gltf.NewDocument()
	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(doc, positions),
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices:    gltf.Index(modeler.WriteIndices(doc, indices)),
			Attributes: attributes,
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	return doc, nil
}

// SaveGLB writes the mesh as a binary glTF file.
func SaveGLB(path string, mesh *earclip.Mesh) error {
	doc, err := Document(mesh, "polygon")
	if err != nil {
		return err
	}
	return errors.Wrapf(gltf.SaveBinary(doc, path), "saving %s", path)
}

// WriteGLB encodes the mesh as binary glTF to w.
func WriteGLB(w io.Writer, mesh *earclip.Mesh) error {
	doc, err := Document(mesh, "polygon")
	if err != nil {
		return err
	}
	e := gltf.NewEncoder(w)
	e.AsBinary = true
	return errors.Wrap(e.Encode(doc), "encoding glb")
}
