package polyio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/geom2d/geom"
)

// ReadSVG collects every <polygon> and <rect> in document order. This is not
// a full SVG reader: transforms and styles are ignored, and coordinates are
// used as written, so shapes drawn in the usual y-down space come out
// vertically mirrored.
func ReadSVG(in io.Reader) ([]*geom.Polygon, error) {
	root, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var polygons []*geom.Polygon
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "polygon":
			polygon, err := parsePolygonPoints(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "polygon %q", el.Attributes["id"])
			}
			polygons = append(polygons, polygon)
		case "rect":
			polygon, err := parseRect(el.Attributes)
			if err != nil {
				return errors.Wrapf(err, "rect %q", el.Attributes["id"])
			}
			polygons = append(polygons, polygon)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found in svg")
	}
	return polygons, nil
}

// parsePolygonPoints accepts both "x,y x,y" and "x y x y".
func parsePolygonPoints(points string) (*geom.Polygon, error) {
	fields := strings.Fields(strings.ReplaceAll(points, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", points)
	}
	result := geom.NewPolygonWithCapacity(len(fields) / 2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		result.Add(geom.V2(x, y))
	}
	return result, nil
}

func parseRect(attributes map[string]string) (*geom.Polygon, error) {
	var values [4]float64
	for i, name := range []string{"x", "y", "width", "height"} {
		raw, ok := attributes[name]
		if !ok {
			// x and y default to zero
			if i < 2 {
				continue
			}
			return nil, errors.Errorf("missing %s", name)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s %q", name, raw)
		}
		values[i] = value
	}
	x, y, width, height := values[0], values[1], values[2], values[3]
	return geom.NewPolygon(
		geom.V2(x, y),
		geom.V2(x, y+height),
		geom.V2(x+width, y+height),
		geom.V2(x+width, y),
	), nil
}
