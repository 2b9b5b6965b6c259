package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Open-S2/earclip"
	"github.com/Open-S2/earclip/advanced"
	"github.com/Open-S2/earclip/export"
	"github.com/Open-S2/earclip/geo"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Triangulate polygons from a file (or stdin) and write the mesh as JSON or
// YAML, optionally rendering it to PNG, the terminal, or a .glb file.
//
// Input polygons need not be valid. Rings that can't be triangulated produce
// partial output; run with --trace to see why.

type options struct {
	input        string
	format       string
	modulo       float64
	offset       int
	output       string
	outputFormat string
	png          string
	scale        float64
	imgcat       bool
	glb          string
	deviation    bool
	trace        bool
}

func main() {
	app := kingpin.New("earclip", "Triangulate polygons by ear clipping.")
	var opts options
	app.Arg("input", "Input file, or - for stdin.").Default("-").StringVar(&opts.input)
	app.Flag("format", "Input format.").Short('f').Default("auto").
		EnumVar(&opts.format, "auto", "json", "yaml", "geojson", "wkb", "svg", "text")
	app.Flag("modulo", "Grid spacing to re-tessellate along. Off by default.").Short('m').
		Default("+Inf").Float64Var(&opts.modulo)
	app.Flag("offset", "Value added to every output index.").Default("0").IntVar(&opts.offset)
	app.Flag("output", "Output file, or - for stdout.").Short('o').Default("-").StringVar(&opts.output)
	app.Flag("output-format", "Output format.").Default("json").EnumVar(&opts.outputFormat, "json", "yaml")
	app.Flag("png", "Render the mesh to a PNG file.").StringVar(&opts.png)
	app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64Var(&opts.scale)
	app.Flag("imgcat", "Print a preview to the terminal (iTerm only).").BoolVar(&opts.imgcat)
	app.Flag("glb", "Write the mesh to a binary glTF file.").StringVar(&opts.glb)
	app.Flag("deviation", "Report the area deviation of each polygon on stderr.").BoolVar(&opts.deviation)
	app.Flag("trace", "Trace the triangulation on stderr.").Short('v').BoolVar(&opts.trace)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFlags(0)
	if err := run(opts); err != nil {
		log.Fatalf("earclip: %v", err)
	}
}

func run(opts options) error {
	if opts.trace {
		advanced.SetTraceOutput(os.Stderr)
	}

	data, err := readInput(opts.input)
	if err != nil {
		return err
	}
	format := opts.format
	if format == "auto" {
		format = detectFormat(opts.input, data)
	}
	polygons, err := decode(format, data)
	if err != nil {
		return errors.Wrapf(err, "decoding %s input", format)
	}

	if opts.deviation {
		if err := reportDeviation(os.Stderr, polygons); err != nil {
			return err
		}
	}

	mesh, err := triangulate(polygons, opts.modulo, opts.offset)
	if err != nil {
		return err
	}

	if err := writeMesh(opts.output, opts.outputFormat, mesh); err != nil {
		return err
	}
	if opts.png != "" {
		if err := export.SavePNG(opts.png, mesh, opts.scale); err != nil {
			return err
		}
	}
	if opts.imgcat {
		if err := export.Print(os.Stdout, mesh, opts.scale); err != nil {
			return err
		}
	}
	if opts.glb != "" {
		if err := export.SaveGLB(opts.glb, mesh); err != nil {
			return err
		}
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	return data, errors.Wrapf(err, "reading %s", path)
}

func detectFormat(path string, data []byte) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".geojson":
		return "geojson"
	case ".yaml", ".yml":
		return "yaml"
	case ".wkb":
		return "wkb"
	case ".svg":
		return "svg"
	case ".txt":
		return "text"
	}
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.HasPrefix(trimmed, []byte("[")):
		return "json"
	case bytes.HasPrefix(trimmed, []byte("{")):
		return "geojson"
	case bytes.HasPrefix(trimmed, []byte("<")):
		return "svg"
	}
	return "text"
}

// Decode the input into a list of polygons. JSON and YAML inputs hold either
// one polygon (rings of points) or a list of them.
func decode(format string, data []byte) ([]earclip.Polygon, error) {
	switch format {
	case "json":
		return decodeNested(data, json.Unmarshal)
	case "yaml":
		return decodeNested(data, yaml.Unmarshal)
	case "geojson":
		return toPolygons(geo.FromGeoJSON(data))
	case "wkb":
		return toPolygons(geo.FromWKB(data))
	case "svg":
		rings, err := geo.FromSVG(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return []earclip.Polygon{rings}, nil
	case "text":
		rings, err := geo.FromText(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return []earclip.Polygon{rings}, nil
	}
	return nil, errors.Errorf("unknown format %q", format)
}

func decodeNested(data []byte, unmarshal func([]byte, interface{}) error) ([]earclip.Polygon, error) {
	var polygon earclip.Polygon
	if err := unmarshal(data, &polygon); err == nil {
		return []earclip.Polygon{polygon}, nil
	}
	var polygons []earclip.Polygon
	if err := unmarshal(data, &polygons); err != nil {
		return nil, err
	}
	return polygons, nil
}

func toPolygons(polygons [][][][]float64, err error) ([]earclip.Polygon, error) {
	if err != nil {
		return nil, err
	}
	result := make([]earclip.Polygon, len(polygons))
	for i, p := range polygons {
		result[i] = p
	}
	return result, nil
}

func triangulate(polygons []earclip.Polygon, modulo float64, offset int) (*earclip.Mesh, error) {
	if offset < 0 {
		return nil, errors.Errorf("offset must not be negative, got %d", offset)
	}
	if len(polygons) == 1 {
		return earclip.Earclip(polygons[0], modulo, offset)
	}
	mesh, err := earclip.EarclipMulti(polygons, modulo)
	if err != nil {
		return nil, err
	}
	for i := range mesh.Indices {
		mesh.Indices[i] += offset
	}
	return mesh, nil
}

func reportDeviation(w io.Writer, polygons []earclip.Polygon) error {
	for i, polygon := range polygons {
		vertices, holes, dim, err := advanced.Flatten(polygon)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		indices, err := advanced.Triangulate(vertices, holes, dim)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		deviation, err := advanced.Deviation(vertices, holes, indices, dim)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", i)
		}
		fmt.Fprintf(w, "polygon %d: %d triangles, deviation %g\n", i, len(indices)/3, deviation)
	}
	return nil
}

func writeMesh(path, format string, mesh *earclip.Mesh) error {
	if path == "-" {
		return encodeMesh(os.Stdout, format, mesh)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := encodeMesh(f, format, mesh); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

func encodeMesh(w io.Writer, format string, mesh *earclip.Mesh) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(mesh); err != nil {
			enc.Close()
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "encoding yaml")
	default:
		return errors.Wrap(json.NewEncoder(w).Encode(mesh), "encoding json")
	}
}
