package geom

// Indexed pairs a value with the position it came from, so that a list of
// edges can be filtered or sorted and each edge still knows which polygon
// vertex it starts at. Equality is structural: two Indexed values are equal
// when both the value and the index are.
type Indexed[T comparable] struct {
	Value T
	Index int
}
