package geom

import (
	"fmt"
	"math"
)

// Vector2 is a point or displacement with float64 coordinates.
type Vector2 struct {
	X, Y float64
}

func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func Zero() Vector2  { return Vector2{0, 0} }
func One() Vector2   { return Vector2{1, 1} }
func Up() Vector2    { return Vector2{0, 1} }
func Down() Vector2  { return Vector2{0, -1} }
func Left() Vector2  { return Vector2{-1, 0} }
func Right() Vector2 { return Vector2{1, 0} }

func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }
func (v Vector2) Neg() Vector2          { return Vector2{-v.X, -v.Y} }
func (v Vector2) Mul(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Div follows IEEE semantics, so dividing by zero gives infinities or NaN.
func (v Vector2) Div(s float64) Vector2 { return Vector2{v.X / s, v.Y / s} }

// Scale multiplies component-wise.
func (v Vector2) Scale(w Vector2) Vector2 { return Vector2{v.X * w.X, v.Y * w.Y} }

func (v Vector2) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// Normalize scales v to unit length in place. A zero vector stays zero.
func (v *Vector2) Normalize() {
	m := v.Magnitude()
	if m == 0 {
		*v = Vector2{}
		return
	}
	n := 1 / m
	v.X *= n
	v.Y *= n
}

func (v Vector2) Normalized() Vector2 {
	v.Normalize()
	return v
}

// Swapped exchanges the X and Y coordinates.
func (v Vector2) Swapped() Vector2 {
	return Vector2{v.Y, v.X}
}

func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

func (v Vector2) Distance(w Vector2) float64 {
	return v.Sub(w).Magnitude()
}

// Lerp interpolates from v to w. t is not clamped.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Compare orders vectors lexicographically, by X and then by Y.
func (v Vector2) Compare(w Vector2) int {
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

// Int converts to integer coordinates, truncating toward zero.
func (v Vector2) Int() IntVector2 {
	return IV2F(v.X, v.Y)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g %g)", v.X, v.Y)
}
