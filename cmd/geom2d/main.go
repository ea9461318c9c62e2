// Command geom2d inspects polygon files and renders debug output. Input may be
// plain text (newline separated "x y" points, polygons separated by a blank
// line), SVG, or a YAML scene.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/geom2d/dbg"
	"github.com/osuushi/geom2d/floorplan"
	"github.com/osuushi/geom2d/geom"
	"github.com/osuushi/geom2d/internal/polyio"
	"github.com/osuushi/geom2d/raster"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "geom2d:", err)
		os.Exit(1)
	}
}

type cli struct {
	app *kingpin.Application
	out io.Writer

	logLevel *string
	format   *string
	noColor  *bool

	info        *kingpin.CmdClause
	infoFile    *string
	contains    *kingpin.CmdClause
	containsArg struct {
		file *string
		x, y *float64
	}
	intersect       *kingpin.CmdClause
	intersectFile   *string
	triangulate     *kingpin.CmdClause
	triangulateFile *string
	circuit         *kingpin.CmdClause
	circuitArg      struct {
		file     *string
		distance *float64
		linear   *bool
		samples  *int
	}
	draw    *kingpin.CmdClause
	drawArg struct {
		file    *string
		out     *string
		scale   *float64
		preview *bool
	}
	floorplan    *kingpin.CmdClause
	floorplanArg struct {
		seed       *int64
		resolution *int
		rooms      *int
		steps      *int
		out        *string
		scene      *string
	}
}

func newCLI(out io.Writer) *cli {
	c := &cli{out: out}
	app := kingpin.New("geom2d", "Inspect, triangulate and render 2D polygons.")
	c.app = app

	c.logLevel = app.Flag("log-level", "Log level (debug, info, warn, error).").
		Default("warn").Envar("GEOM2D_LOG_LEVEL").Enum("debug", "info", "warn", "error")
	c.format = app.Flag("format", "Input format. auto picks by file extension.").
		Default("auto").Envar("GEOM2D_FORMAT").Enum(append([]string{"auto"}, polyio.Formats...)...)
	c.noColor = app.Flag("no-color", "Disable colored output.").Envar("GEOM2D_NO_COLOR").Bool()

	c.info = app.Command("info", "Describe every polygon in a file.")
	c.infoFile = c.info.Arg("file", "Input file, or - for stdin.").Required().String()

	c.contains = app.Command("contains", "Test whether each polygon contains a point.")
	c.containsArg.file = c.contains.Arg("file", "Input file, or - for stdin.").Required().String()
	c.containsArg.x = c.contains.Arg("x", "Point x.").Required().Float64()
	c.containsArg.y = c.contains.Arg("y", "Point y.").Required().Float64()

	c.intersect = app.Command("intersect", "List the intersections between every pair of polygons.")
	c.intersectFile = c.intersect.Arg("file", "Input file, or - for stdin.").Required().String()

	c.triangulate = app.Command("triangulate", "Triangulate every polygon in a file.")
	c.triangulateFile = c.triangulate.Arg("file", "Input file, or - for stdin.").Required().String()

	c.circuit = app.Command("circuit", "Sample the circuit of a YAML scene.")
	c.circuitArg.file = c.circuit.Arg("file", "YAML scene with a circuit.").Required().String()
	c.circuitArg.distance = c.circuit.Flag("distance", "Distance along the circuit.").Default("0").Float64()
	c.circuitArg.linear = c.circuit.Flag("linear", "Join waypoints with straight lines.").Bool()
	c.circuitArg.samples = c.circuit.Flag("samples", "Also print this many evenly spaced points.").Default("0").Int()

	c.draw = app.Command("draw", "Render polygons to a PNG.")
	c.drawArg.file = c.draw.Arg("file", "Input file, or - for stdin.").Required().String()
	c.drawArg.out = c.draw.Flag("out", "PNG to write.").Default("polygons.png").String()
	c.drawArg.scale = c.draw.Flag("scale", "Pixels per unit.").Default("10").Float64()
	c.drawArg.preview = c.draw.Flag("preview", "Show the image inline (iTerm).").Bool()

	c.floorplan = app.Command("floorplan", "Generate a floor plan by growing rooms.")
	c.floorplanArg.seed = c.floorplan.Flag("seed", "Random seed.").Default("1").Int64()
	c.floorplanArg.resolution = c.floorplan.Flag("resolution", "Grid size in cells.").Default("128").Int()
	c.floorplanArg.rooms = c.floorplan.Flag("rooms", "Number of rooms to seed.").Default("6").Int()
	c.floorplanArg.steps = c.floorplan.Flag("steps", "Maximum growth passes.").Default("1000").Int()
	c.floorplanArg.out = c.floorplan.Flag("out", "PNG to write.").Default("floorplan.png").String()
	c.floorplanArg.scene = c.floorplan.Flag("scene", "Also write the rooms as a YAML scene.").String()

	return c
}

func run(args []string, out io.Writer) error {
	c := newCLI(out)
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*c.logLevel)); err != nil {
		return errors.Wrap(err, "log level")
	}
	geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	defer geom.SetLogger(nil)
	dbg.SetColors(!*c.noColor)

	switch command {
	case c.info.FullCommand():
		return c.runInfo()
	case c.contains.FullCommand():
		return c.runContains()
	case c.intersect.FullCommand():
		return c.runIntersect()
	case c.triangulate.FullCommand():
		return c.runTriangulate()
	case c.circuit.FullCommand():
		return c.runCircuit()
	case c.draw.FullCommand():
		return c.runDraw()
	case c.floorplan.FullCommand():
		return c.runFloorplan()
	}
	return errors.Errorf("unknown command %q", command)
}

func (c *cli) readScene(path string) (*polyio.Scene, error) {
	format := polyio.Format(*c.format)
	if format == "auto" {
		format = ""
	}
	return polyio.ReadFile(path, format)
}

func (c *cli) runInfo() error {
	scene, err := c.readScene(*c.infoFile)
	if err != nil {
		return err
	}
	for i, p := range scene.PolygonList() {
		fmt.Fprintf(c.out, "%s %s\n", dbg.Highlight(scene.PolygonName(i)), dbg.Describe(p))
		fmt.Fprintf(c.out, "  signed area %g, perimeter %g, bounds %v\n", p.SignedArea(), p.Perimeter(), p.AABB())
	}
	return nil
}

func (c *cli) runContains() error {
	scene, err := c.readScene(*c.containsArg.file)
	if err != nil {
		return err
	}
	point := geom.V2(*c.containsArg.x, *c.containsArg.y)
	for i, p := range scene.PolygonList() {
		inside, winding := p.Contains(point)
		fmt.Fprintf(c.out, "%s: inside=%t winding=%d even-odd=%t\n",
			dbg.Highlight(scene.PolygonName(i)), inside, winding, p.ContainsEvenOdd(point))
	}
	return nil
}

func (c *cli) runIntersect() error {
	scene, err := c.readScene(*c.intersectFile)
	if err != nil {
		return err
	}
	polygons := scene.PolygonList()
	for i := range polygons {
		for j := i + 1; j < len(polygons); j++ {
			intersections := polygons[i].IntersectsAll(polygons[j])
			fmt.Fprintf(c.out, "%s x %s: %d intersections\n",
				dbg.Highlight(scene.PolygonName(i)), dbg.Highlight(scene.PolygonName(j)), len(intersections))
			for _, s := range intersections {
				if s.A == s.B {
					fmt.Fprintf(c.out, "  point %v\n", s.A)
				} else {
					fmt.Fprintf(c.out, "  overlap %v\n", s)
				}
			}
		}
	}
	return nil
}

func (c *cli) runTriangulate() error {
	scene, err := c.readScene(*c.triangulateFile)
	if err != nil {
		return err
	}
	failed := 0
	for i, p := range scene.PolygonList() {
		triangles, err := p.Triangulate()
		if err != nil {
			failed++
			fmt.Fprintf(c.out, "%s: %s\n", dbg.Highlight(scene.PolygonName(i)), dbg.Failure(err.Error()))
			continue
		}
		parts := make([]string, 0, len(triangles)/3)
		for t := 0; t < len(triangles); t += 3 {
			parts = append(parts, fmt.Sprintf("%d %d %d", triangles[t], triangles[t+1], triangles[t+2]))
		}
		fmt.Fprintf(c.out, "%s: %s\n", dbg.Highlight(scene.PolygonName(i)), strings.Join(parts, ", "))
	}
	if failed > 0 {
		return errors.Errorf("%d polygons could not be triangulated", failed)
	}
	return nil
}

func (c *cli) runCircuit() error {
	scene, err := c.readScene(*c.circuitArg.file)
	if err != nil {
		return err
	}
	if *c.circuitArg.linear && scene.Circuit != nil {
		scene.Circuit.Smooth = false
	}
	circuit, err := scene.BuildCircuit()
	if err != nil {
		return err
	}

	routePoint := circuit.PointAndTangentAtDistance(*c.circuitArg.distance)
	fmt.Fprintf(c.out, "length %g\n", circuit.Length())
	fmt.Fprintf(c.out, "position %v\ntangent %v\n", routePoint.Position, routePoint.Direction)
	for _, p := range circuit.Sample(*c.circuitArg.samples) {
		fmt.Fprintf(c.out, "%g %g\n", p.X, p.Y)
	}
	return nil
}

func (c *cli) runDraw() error {
	scene, err := c.readScene(*c.drawArg.file)
	if err != nil {
		return err
	}
	if err := dbg.DrawPolygons(scene.PolygonList(), *c.drawArg.scale, *c.drawArg.out); err != nil {
		return err
	}
	if *c.drawArg.preview {
		dbg.Preview(*c.drawArg.out, c.out)
	} else {
		fmt.Fprintf(c.out, "wrote %s\n", *c.drawArg.out)
	}
	return nil
}

func (c *cli) runFloorplan() error {
	resolution := *c.floorplanArg.resolution
	if resolution < 16 {
		return errors.Errorf("resolution must be at least 16, got %d", resolution)
	}

	g := floorplan.New(resolution, rand.New(rand.NewSource(*c.floorplanArg.seed)))
	g.Reset()
	added := g.AddRandomRooms(*c.floorplanArg.rooms, 100*(*c.floorplanArg.rooms))
	passes := g.GrowAll(*c.floorplanArg.steps)

	canvas := raster.NewCanvas(resolution+1, resolution+1)
	g.Render(canvas)
	if err := canvas.SavePNG(*c.floorplanArg.out); err != nil {
		return errors.Wrap(err, "saving floor plan")
	}
	fmt.Fprintf(c.out, "%d rooms, %d growth passes, wrote %s\n", added, passes, *c.floorplanArg.out)

	if *c.floorplanArg.scene != "" {
		scene := &polyio.Scene{}
		for i, room := range g.Rooms {
			name := fmt.Sprintf("room %d", i)
			if i == 0 {
				name = "outer"
			}
			scene.AddPolygon(name, room.Float())
		}
		if err := polyio.WriteFile(*c.floorplanArg.scene, scene); err != nil {
			return err
		}
	}
	return nil
}
