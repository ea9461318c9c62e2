package geom

import "math"

// Regular builds a regular polygon with the first vertex at angle (radians)
// and the rest following counterclockwise in y-up space.
func Regular(sides int, radius, angle float64) *Polygon {
	p := NewPolygonWithCapacity(sides)
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		p.Add(Vector2{radius * math.Cos(angle), radius * math.Sin(angle)})
		angle += step
	}
	return p
}

// Circle approximates a circle with 32 vertices per unit of radius, and never
// fewer than 8.
func Circle(radius float64) *Polygon {
	sides := int(32 * radius)
	if sides < 8 {
		sides = 8
	}
	return Regular(sides, radius, 0)
}

func CircleN(radius float64, points int) *Polygon {
	return Regular(points, radius, 0)
}

func UnitCircle() *Polygon { return Circle(1) }
func Triangle() *Polygon   { return Regular(3, 1, math.Pi/2) }
func Square() *Polygon     { return Regular(4, 1, math.Pi/4) }
func Pentagon() *Polygon   { return Regular(5, 1, math.Pi/2) }
func Hexagon() *Polygon    { return Regular(6, 1, math.Pi/2) }
func Heptagon() *Polygon   { return Regular(7, 1, math.Pi/2) }
func Octagon() *Polygon    { return Regular(8, 1, math.Pi/2) }

// UnitRect is the unit square centered on the origin.
func UnitRect() *Polygon {
	return NewPolygon(
		Vector2{-0.5, -0.5},
		Vector2{-0.5, 0.5},
		Vector2{0.5, 0.5},
		Vector2{0.5, -0.5},
	)
}

// IntRegular truncates each vertex of the float regular polygon.
func IntRegular(sides int, radius, angle float64) *IntPolygon {
	return Regular(sides, radius, angle).Int()
}

// IntUnitRect has side 2, since the integer grid cannot hold a half.
func IntUnitRect() *IntPolygon {
	return NewIntPolygon(
		IntVector2{-1, -1},
		IntVector2{-1, 1},
		IntVector2{1, 1},
		IntVector2{1, -1},
	)
}

// IntRect is the axis-aligned rectangle with one corner at (x, y), wound the
// same way as IntUnitRect.
func IntRect(x, y, width, height int) *IntPolygon {
	return NewIntPolygon(
		IntVector2{x, y},
		IntVector2{x, y + height},
		IntVector2{x + width, y + height},
		IntVector2{x + width, y},
	)
}
