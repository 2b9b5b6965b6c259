// Output sinks for triangle meshes: PNG images, terminal previews and binary
// glTF.
package export

import (
	"image"
	"io"
	"math"

	"github.com/Open-S2/earclip"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Padding around the mesh, in pixels
const drawPadding = 20

// Render draws the mesh's triangles, filled and outlined, with y pointing up.
// scale is pixels per unit.
func Render(mesh *earclip.Mesh, scale float64) (image.Image, error) {
	c, err := draw(mesh, scale)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// WritePNG renders the mesh and encodes it as PNG to w.
func WritePNG(w io.Writer, mesh *earclip.Mesh, scale float64) error {
	c, err := draw(mesh, scale)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

// SavePNG renders the mesh to a PNG file.
func SavePNG(path string, mesh *earclip.Mesh, scale float64) error {
	c, err := draw(mesh, scale)
	if err != nil {
		return err
	}
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

func draw(mesh *earclip.Mesh, scale float64) (*gg.Context, error) {
	if scale <= 0 || math.IsNaN(scale) {
		return nil, errors.Errorf("scale must be positive, got %v", scale)
	}
	if mesh.Dim < 2 {
		return nil, errors.Errorf("mesh dimension %d can't be drawn", mesh.Dim)
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i+1 < len(mesh.Vertices); i += mesh.Dim {
		minX = math.Min(minX, mesh.Vertices[i])
		minY = math.Min(minY, mesh.Vertices[i+1])
		maxX = math.Max(maxX, mesh.Vertices[i])
		maxY = math.Max(maxY, mesh.Vertices[i+1])
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	vertex := func(i int) (float64, float64) {
		return mesh.Vertices[i*mesh.Dim], mesh.Vertices[i*mesh.Dim+1]
	}
	count := mesh.VertexCount()
	for _, stroke := range []bool{false, true} {
		for t := 0; t+2 < len(mesh.Indices); t += 3 {
			a, b, cc := mesh.Indices[t], mesh.Indices[t+1], mesh.Indices[t+2]
			if a >= count || b >= count || cc >= count || a < 0 || b < 0 || cc < 0 {
				return nil, errors.Errorf("triangle %d references a vertex outside the mesh", t/3)
			}
			ax, ay := vertex(a)
			bx, by := vertex(b)
			cx, cy := vertex(cc)
			c.MoveTo(ax, ay)
			c.LineTo(bx, by)
			c.LineTo(cx, cy)
			c.ClosePath()
			if stroke {
				c.SetRGB(0, 1, 0)
				c.SetLineWidth(1)
				c.Stroke()
			} else {
				c.SetRGBA(0.3, 0.2, 1, 0.5)
				c.Fill()
			}
		}
	}
	return c, nil
}
