package geom

import "math"

// Perp rotates v by 90 degrees counterclockwise (in y-up space).
//
// See Hill, F. S. Jr. "The Pleasures of 'Perp Dot' Products", Graphics Gems IV.
func Perp(v Vector2) Vector2 {
	return Vector2{-v.Y, v.X}
}

func IntPerp(v IntVector2) IntVector2 {
	return IntVector2{-v.Y, v.X}
}

// PerpDot is the 2D analogue of the cross product. Its sign tells which way b
// turns relative to a.
func PerpDot(a, b Vector2) float64 {
	return perpDot(a.X, a.Y, b.X, b.Y)
}

func IntPerpDot(a, b IntVector2) int {
	return perpDot(a.X, a.Y, b.X, b.Y)
}

// LocatePointOnLine classifies point against the line through line1 and
// line2: more than 0 is left, less than 0 is right, and 0 is on the line.
func LocatePointOnLine(line1, line2, point Vector2) float64 {
	return (line2.X-line1.X)*(point.Y-line1.Y) - (point.X-line1.X)*(line2.Y-line1.Y)
}

func IntLocatePointOnLine(line1, line2, point IntVector2) int {
	return (line2.X-line1.X)*(point.Y-line1.Y) - (point.X-line1.X)*(line2.Y-line1.Y)
}

// IsInTriangle reports whether point lies inside or on the boundary of the
// triangle abc, of either winding. A point equal to a corner is inside.
func IsInTriangle(a, b, c, point Vector2) bool {
	if a == point || b == point || c == point {
		return true
	}
	ab := PerpDot(b.Sub(a), point.Sub(a))
	bc := PerpDot(c.Sub(b), point.Sub(b))
	ca := PerpDot(a.Sub(c), point.Sub(c))
	return (ab <= 0 && bc <= 0 && ca <= 0) || (ab >= 0 && bc >= 0 && ca >= 0)
}

// Approximately compares coordinates with an absolute tolerance.
func Approximately(a, b Vector2, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}
