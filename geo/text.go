package geo

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Rings from a plain text listing: one point per line as "x y" or "x y z",
// with each ring separated by an empty line. The first ring is the outer
// boundary.
func FromText(in io.Reader) ([][][]float64, error) {
	rings := [][][]float64{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	var points [][]float64
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if text == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	return rings, nil
}

func parsePoint(line string) ([]float64, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 || len(parts) > 3 {
		return nil, errors.Errorf("want 2 or 3 coordinates, got %d", len(parts))
	}
	point := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid coordinate %q", part)
		}
		point[i] = v
	}
	return point, nil
}
