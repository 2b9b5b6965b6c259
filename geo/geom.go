// Adapters from common geometry types to the nested ring form that earclip
// takes as input.
package geo

import (
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// Rings of a go-geom polygon. The M coordinate, if any, is dropped; Z is
// kept.
func FromPolygon(p *geom.Polygon) ([][][]float64, error) {
	if p == nil || len(p.FlatCoords()) == 0 {
		return [][][]float64{}, nil
	}

	stride := p.Stride()
	keep := 2
	switch p.Layout() {
	case geom.XY, geom.XYM:
	case geom.XYZ, geom.XYZM:
		keep = 3
	default:
		return nil, errors.Errorf("unsupported layout %v", p.Layout())
	}

	flat := p.FlatCoords()
	rings := make([][][]float64, 0, len(p.Ends()))
	start := 0
	for _, end := range p.Ends() {
		ring := make([][]float64, 0, (end-start)/stride)
		for i := start; i < end; i += stride {
			ring = append(ring, append([]float64(nil), flat[i:i+keep]...))
		}
		rings = append(rings, ring)
		start = end
	}
	return rings, nil
}

// Polygons of a go-geom multipolygon, in order.
func FromMultiPolygon(mp *geom.MultiPolygon) ([][][][]float64, error) {
	if mp == nil {
		return [][][][]float64{}, nil
	}
	polygons := make([][][][]float64, 0, mp.NumPolygons())
	for i := 0; i < mp.NumPolygons(); i++ {
		rings, err := FromPolygon(mp.Polygon(i))
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, rings)
	}
	return polygons, nil
}

// Polygons of a go-geom geometry. Polygons, multipolygons and collections of
// them are accepted.
func FromGeometry(g geom.T) ([][][][]float64, error) {
	switch g := g.(type) {
	case *geom.Polygon:
		rings, err := FromPolygon(g)
		if err != nil {
			return nil, err
		}
		return [][][][]float64{rings}, nil
	case *geom.MultiPolygon:
		return FromMultiPolygon(g)
	case *geom.GeometryCollection:
		var polygons [][][][]float64
		for i, child := range g.Geoms() {
			p, err := FromGeometry(child)
			if err != nil {
				return nil, errors.Wrapf(err, "geometry %d", i)
			}
			polygons = append(polygons, p...)
		}
		return polygons, nil
	}
	return nil, errors.Errorf("unsupported geometry type %T", g)
}

// Polygons of a WKB encoded geometry.
func FromWKB(data []byte) ([][][][]float64, error) {
	g, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding wkb")
	}
	return FromGeometry(g)
}
