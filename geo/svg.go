package geo

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Rings of the <polygon> elements of an SVG document, in document order. The
// first polygon is the outer boundary and the rest are holes. This is not a
// full svg parser: only the points attribute is read, and transforms are
// ignored.
func FromSVG(r io.Reader) ([][][]float64, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, errors.New("no polygons found")
	}

	rings := make([][][]float64, 0, len(elements))
	for i, el := range elements {
		ring, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// Parse an SVG points list. Coordinates may be separated by commas, spaces or
// both.
func parsePoints(s string) ([][]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([][]float64, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, []float64{x, y})
	}
	return points, nil
}
