package floorplan

import (
	"image/color"
	"sort"

	"github.com/pkg/errors"

	"github.com/osuushi/geom2d/geom"
)

// Rect is an axis-aligned block of cells with its corner at (X, Y).
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) Polygon() *geom.IntPolygon {
	return geom.IntRect(r.X, r.Y, r.Width, r.Height)
}

// StrictlyContains reports whether v is inside r and not on its outline.
func (r Rect) StrictlyContains(v geom.IntVector2) bool {
	return r.X < v.X && v.X < r.X+r.Width && r.Y < v.Y && v.Y < r.Y+r.Height
}

// Room is a polygon that grows one wall at a time. Walls are indexed by their
// starting vertex, and GrowableWalls tracks which of them are still free to
// move.
type Room struct {
	geom.IntPolygon
	CanGrow       bool
	GrowableWalls []bool
	Color         color.RGBA
}

func NewRoom(polygon *geom.IntPolygon, c color.RGBA) *Room {
	room := &Room{
		IntPolygon:    *polygon.Clone(),
		CanGrow:       true,
		GrowableWalls: make([]bool, polygon.Len()),
		Color:         c,
	}
	for i := range room.GrowableWalls {
		room.GrowableWalls[i] = true
	}
	return room
}

func (r *Room) anyGrowableWalls() bool {
	for _, growable := range r.GrowableWalls {
		if growable {
			return true
		}
	}
	return false
}

// outline joins rectangles into the polygon around their union. The walls
// must be in general position (no shared X or Y coordinates between
// rectangles) and their union must be connected.
func outline(walls []Rect) (*geom.IntPolygon, error) {
	polygons := make([]*geom.IntPolygon, len(walls))
	for i, wall := range walls {
		polygons[i] = wall.Polygon()
	}

	// The corners of the union are the rectangle corners that no other
	// rectangle covers, plus the points where rectangle outlines cross.
	candidates := geom.NewIntPolygonWithCapacity(4 * len(walls))
	for i, polygon := range polygons {
		for _, v := range polygon.Items() {
			if !coveredByOther(walls, i, v) {
				candidates.Add(v)
			}
		}
		for j, other := range polygons {
			if i == j {
				continue
			}
			for _, intersection := range polygon.IntersectsAll(other) {
				if intersection.A == intersection.B {
					candidates.Add(intersection.A)
				}
			}
		}
	}
	candidates.RemoveDuplicateVertices()

	result, err := traceOrthogonal(candidates.Items())
	if err != nil {
		return nil, err
	}
	result.RemoveCollinearVertices()
	result.SetClockwise(false)
	return result, nil
}

func coveredByOther(walls []Rect, self int, v geom.IntVector2) bool {
	for i, wall := range walls {
		if i != self && wall.StrictlyContains(v) {
			return true
		}
	}
	return false
}

// traceOrthogonal orders the corners of an orthogonal polygon without holes.
// Sorted along any row (or column), corners pair up into edges: first with
// second, third with fourth, and so on. Following horizontal and vertical
// edges alternately then walks the outline.
func traceOrthogonal(corners []geom.IntVector2) (*geom.IntPolygon, error) {
	if len(corners) < 4 {
		return nil, errors.Errorf("an orthogonal polygon needs at least 4 corners, got %d", len(corners))
	}

	horizontal, err := pairCorners(corners, func(v geom.IntVector2) (int, int) { return v.Y, v.X })
	if err != nil {
		return nil, err
	}
	vertical, err := pairCorners(corners, func(v geom.IntVector2) (int, int) { return v.X, v.Y })
	if err != nil {
		return nil, err
	}

	start := corners[0]
	for _, v := range corners[1:] {
		if v.Compare(start) < 0 {
			start = v
		}
	}

	result := geom.NewIntPolygonWithCapacity(len(corners))
	current, alongX := start, true
	for {
		result.Add(current)
		if alongX {
			current = horizontal[current]
		} else {
			current = vertical[current]
		}
		alongX = !alongX
		if current == start {
			break
		}
		if result.Len() > len(corners) {
			return nil, errors.New("corners do not form a single outline")
		}
	}
	if result.Len() != len(corners) {
		return nil, errors.Errorf("outline visits %d of %d corners, the shape is not connected", result.Len(), len(corners))
	}
	return result, nil
}

// pairCorners groups corners into lines by key and pairs them up along the
// line by position.
func pairCorners(corners []geom.IntVector2, keyAndPosition func(geom.IntVector2) (int, int)) (map[geom.IntVector2]geom.IntVector2, error) {
	lines := make(map[int][]geom.IntVector2)
	for _, v := range corners {
		key, _ := keyAndPosition(v)
		lines[key] = append(lines[key], v)
	}

	pairs := make(map[geom.IntVector2]geom.IntVector2, len(corners))
	for key, line := range lines {
		if len(line)%2 != 0 {
			return nil, errors.Errorf("odd number of corners (%d) on line %d", len(line), key)
		}
		sort.Slice(line, func(i, j int) bool {
			_, a := keyAndPosition(line[i])
			_, b := keyAndPosition(line[j])
			return a < b
		})
		for i := 0; i < len(line); i += 2 {
			pairs[line[i]] = line[i+1]
			pairs[line[i+1]] = line[i]
		}
	}
	return pairs, nil
}
