package polyio

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/geom2d/circuit"
	"github.com/osuushi/geom2d/geom"
)

// Scene is the YAML document the command line tool works on:
//
//	polygons:
//	  - name: square
//	    points: [[0, 0], [0, 1], [1, 1], [1, 0]]
//	circuit:
//	  smooth: true
//	  waypoints: [[0, 0], [10, 0], [10, 10]]
//
// Points may also be written as {x: 1, y: 2}.
type Scene struct {
	Polygons []NamedPolygon `yaml:"polygons"`
	Circuit  *CircuitSpec   `yaml:"circuit,omitempty"`
}

type NamedPolygon struct {
	Name   string  `yaml:"name,omitempty"`
	Points []Point `yaml:"points"`
}

type CircuitSpec struct {
	Smooth    bool    `yaml:"smooth"`
	Waypoints []Point `yaml:"waypoints"`
}

type Point geom.Vector2

func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return errors.Errorf("line %d: a point needs 2 coordinates, got %d", node.Line, len(xy))
		}
		*p = Point{xy[0], xy[1]}
		return nil
	case yaml.MappingNode:
		var xy struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := node.Decode(&xy); err != nil {
			return err
		}
		*p = Point{xy.X, xy.Y}
		return nil
	}
	return errors.Errorf("line %d: a point must be [x, y] or {x: .., y: ..}", node.Line)
}

// MarshalYAML writes points in the compact [x, y] form.
func (p Point) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, value := range []float64{p.X, p.Y} {
		var child yaml.Node
		if err := child.Encode(value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &child)
	}
	return node, nil
}

func ReadScene(in io.Reader) (*Scene, error) {
	decoder := yaml.NewDecoder(in)
	decoder.KnownFields(true)
	var scene Scene
	if err := decoder.Decode(&scene); err != nil {
		if err == io.EOF {
			return &scene, nil
		}
		return nil, errors.Wrap(err, "decoding scene")
	}
	return &scene, nil
}

func WriteScene(out io.Writer, scene *Scene) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(scene); err != nil {
		return errors.Wrap(err, "encoding scene")
	}
	return errors.Wrap(encoder.Close(), "encoding scene")
}

// NewScene names polygons by their position.
func NewScene(polygons []*geom.Polygon) *Scene {
	scene := &Scene{}
	for _, polygon := range polygons {
		scene.AddPolygon("", polygon)
	}
	return scene
}

func (s *Scene) AddPolygon(name string, polygon *geom.Polygon) {
	points := make([]Point, polygon.Len())
	for i, v := range polygon.Items() {
		points[i] = Point(v)
	}
	s.Polygons = append(s.Polygons, NamedPolygon{Name: name, Points: points})
}

func (s *Scene) PolygonList() []*geom.Polygon {
	polygons := make([]*geom.Polygon, len(s.Polygons))
	for i, named := range s.Polygons {
		polygons[i] = named.Polygon()
	}
	return polygons
}

// PolygonName falls back to "#i" for unnamed polygons.
func (s *Scene) PolygonName(i int) string {
	if name := s.Polygons[i].Name; name != "" {
		return name
	}
	return "#" + strconv.Itoa(i)
}

func (n NamedPolygon) Polygon() *geom.Polygon {
	polygon := geom.NewPolygonWithCapacity(len(n.Points))
	for _, p := range n.Points {
		polygon.Add(geom.Vector2(p))
	}
	return polygon
}

func (s *Scene) BuildCircuit() (*circuit.Circuit, error) {
	if s.Circuit == nil {
		return nil, errors.New("scene has no circuit")
	}
	waypoints := make([]geom.Vector2, len(s.Circuit.Waypoints))
	for i, p := range s.Circuit.Waypoints {
		waypoints[i] = geom.Vector2(p)
	}
	return circuit.New(waypoints, s.Circuit.Smooth)
}
