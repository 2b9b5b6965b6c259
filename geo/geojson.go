package geo

import (
	"encoding/json"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// Polygons of a GeoJSON document. The document may be a bare geometry, a
// feature or a feature collection; non-areal geometries are skipped.
func FromGeoJSON(data []byte) ([][][][]float64, error) {
	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(err, "decoding geojson")
	}

	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, errors.Wrap(err, "decoding feature collection")
		}
		var polygons [][][][]float64
		for _, f := range fc.Features {
			polygons = append(polygons, fromGeoJSONGeometry(f.Geometry)...)
		}
		return polygons, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "decoding feature")
		}
		return fromGeoJSONGeometry(f.Geometry), nil
	}

	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(err, "decoding geometry")
	}
	return fromGeoJSONGeometry(g), nil
}

func fromGeoJSONGeometry(g *geojson.Geometry) [][][][]float64 {
	if g == nil {
		return nil
	}
	switch {
	case g.IsPolygon():
		return [][][][]float64{g.Polygon}
	case g.IsMultiPolygon():
		return g.MultiPolygon
	case g.IsCollection():
		var polygons [][][][]float64
		for _, child := range g.Geometries {
			polygons = append(polygons, fromGeoJSONGeometry(child)...)
		}
		return polygons
	}
	return nil
}
