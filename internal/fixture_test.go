package internal

import (
	"embed"
	"log"
	"math"

	"github.com/Open-S2/earclip/geo"
)

// This file loads the svg fixtures as flat polygon buffers. The first polygon
// element is the outer ring and the rest are holes. If anything goes wrong, it
// exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

type fixture struct {
	rings [][][]float64
	data  []float64
	holes []int
	dim   int
}

func newFixture(rings [][][]float64) *fixture {
	data, holes, dim := Flatten(rings)
	return &fixture{rings: rings, data: data, holes: holes, dim: dim}
}

func LoadFixture(name string) *fixture {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer f.Close()
	rings, err := geo.FromSVG(f)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return newFixture(rings)
}

// Some ad hoc code specified fixtures

func starRing(cx, cy, outerRadius, innerRadius float64, points int) [][]float64 {
	var ring [][]float64
	for i := 0; i < points*2; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / float64(points*2)
		ring = append(ring, []float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)})
	}
	return ring
}

func reversed(ring [][]float64) [][]float64 {
	result := make([][]float64, len(ring))
	for i, p := range ring {
		result[len(ring)-1-i] = p
	}
	return result
}

func SimpleStar() *fixture {
	return newFixture([][][]float64{starRing(0, 0, 5, 2, 5)})
}

func SquareWithHole() *fixture {
	return newFixture([][][]float64{
		{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}},
		{{-2, -2}, {-2, 2}, {2, 2}, {2, -2}},
	})
}

func StarOutline() *fixture {
	return newFixture([][][]float64{
		starRing(0, 0, 10, 5, 5),
		reversed(starRing(0, 0, 8, 3, 5)),
	})
}

// A star with enough points to switch on the z-order hash, with holes
// scattered inside. Hole winding alternates, which must not matter.
func BigStarWithHoles() *fixture {
	rings := [][][]float64{starRing(0, 0, 100, 70, 60)}
	for i := 0; i < 8; i++ {
		angle := 2 * math.Pi * float64(i) / 8
		hole := starRing(40*math.Cos(angle), 40*math.Sin(angle), 10, 6, 7)
		if i%2 == 1 {
			hole = reversed(hole)
		}
		rings = append(rings, hole)
	}
	return newFixture(rings)
}

// A circle of many points, wound clockwise.
func Circle(n int) *fixture {
	var ring [][]float64
	for i := 0; i < n; i++ {
		angle := -2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, []float64{50 * math.Cos(angle), 50 * math.Sin(angle)})
	}
	return newFixture([][][]float64{ring})
}
