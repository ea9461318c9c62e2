// Package polyio reads polygons and scenes from the formats the command line
// tool accepts: plain text, SVG, and YAML.
package polyio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/geom2d/geom"
)

// ReadText reads newline separated points in the form "x y", with polygons
// separated by blank lines. Lines starting with '#' are ignored.
func ReadText(in io.Reader) ([]*geom.Polygon, error) {
	var polygons []*geom.Polygon
	scanner := bufio.NewScanner(in)
	points := geom.NewPolygon()
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// A blank line ends the current polygon, if there is one
		if line == "" {
			if points.Len() > 0 {
				polygons = append(polygons, points)
				points = geom.NewPolygon()
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points.Add(point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading polygons")
	}

	// Handle trailing polygon if any
	if points.Len() > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (geom.Vector2, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Vector2{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Vector2{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Vector2{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom.V2(x, y), nil
}
