package geom

import (
	"fmt"
	"math"
)

// IntVector2 is a point or displacement with integer coordinates. All
// arithmetic is exact except division, which truncates toward zero.
type IntVector2 struct {
	X, Y int
}

func IV2(x, y int) IntVector2 {
	return IntVector2{X: x, Y: y}
}

// IV2F truncates float coordinates toward zero.
func IV2F(x, y float64) IntVector2 {
	return IntVector2{X: int(x), Y: int(y)}
}

func IntZero() IntVector2  { return IntVector2{0, 0} }
func IntOne() IntVector2   { return IntVector2{1, 1} }
func IntUp() IntVector2    { return IntVector2{0, 1} }
func IntDown() IntVector2  { return IntVector2{0, -1} }
func IntLeft() IntVector2  { return IntVector2{-1, 0} }
func IntRight() IntVector2 { return IntVector2{1, 0} }

func (v IntVector2) Add(w IntVector2) IntVector2 { return IntVector2{v.X + w.X, v.Y + w.Y} }
func (v IntVector2) Sub(w IntVector2) IntVector2 { return IntVector2{v.X - w.X, v.Y - w.Y} }
func (v IntVector2) Neg() IntVector2             { return IntVector2{-v.X, -v.Y} }
func (v IntVector2) Mul(s int) IntVector2        { return IntVector2{v.X * s, v.Y * s} }

// MulF scales by a float and truncates the result.
func (v IntVector2) MulF(s float64) IntVector2 {
	return IV2F(float64(v.X)*s, float64(v.Y)*s)
}

// Div truncates toward zero. Dividing by zero panics, as integer division
// does everywhere else in Go.
func (v IntVector2) Div(s int) IntVector2 { return IntVector2{v.X / s, v.Y / s} }

func (v IntVector2) DivF(s float64) IntVector2 {
	return IV2F(float64(v.X)/s, float64(v.Y)/s)
}

func (v IntVector2) Scale(w IntVector2) IntVector2 { return IntVector2{v.X * w.X, v.Y * w.Y} }

func (v IntVector2) SqrMagnitude() int {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude is the Euclidean length, truncated.
func (v IntVector2) Magnitude() int {
	return int(math.Sqrt(float64(v.SqrMagnitude())))
}

// Normalize multiplies v in place by 1/Magnitude() in integer arithmetic.
// That factor is 1 when the truncated length is 1, as for the axis unit
// vectors and (1, 1), and 0 for anything longer, so almost every vector
// collapses to zero. The behavior is kept for
// compatibility with existing callers (segment normals on axis-aligned walls
// are unit length and survive); use Float().Normalized() for a real direction.
// A zero vector stays zero.
func (v *IntVector2) Normalize() {
	m := v.Magnitude()
	if m == 0 {
		*v = IntVector2{}
		return
	}
	n := 1 / m
	v.X *= n
	v.Y *= n
}

func (v IntVector2) Normalized() IntVector2 {
	v.Normalize()
	return v
}

func (v IntVector2) Swapped() IntVector2 {
	return IntVector2{v.Y, v.X}
}

func (v IntVector2) Dot(w IntVector2) int {
	return v.X*w.X + v.Y*w.Y
}

// Distance is the truncated Euclidean distance.
func (v IntVector2) Distance(w IntVector2) int {
	return v.Sub(w).Magnitude()
}

func (v IntVector2) Compare(w IntVector2) int {
	switch {
	case v.X < w.X:
		return -1
	case v.X > w.X:
		return 1
	case v.Y < w.Y:
		return -1
	case v.Y > w.Y:
		return 1
	}
	return 0
}

func (v IntVector2) Float() Vector2 {
	return Vector2{float64(v.X), float64(v.Y)}
}

func (v IntVector2) String() string {
	return fmt.Sprintf("(%d %d)", v.X, v.Y)
}
