package geom

import "fmt"

// AABB is an axis-aligned bounding box. It is computed on demand and never
// cached by the polygons that produce it.
type AABB[T any] struct {
	Min, Max T
}

func (b AABB[T]) String() string {
	return fmt.Sprintf("[%v %v]", b.Min, b.Max)
}
