// Package geom is a 2D computational geometry toolkit: vectors, directed
// segments, circularly indexed polygons, distance and intersection queries,
// point containment, and ear clipping triangulation.
//
// Every type comes in a float64 flavor and an int flavor. The int flavor is
// not a convenience wrapper around the float one; its arithmetic is exact and
// its division truncates toward zero, which is what you want when results must
// be deterministic (rasterized floor plans, grid tracks).
//
// Orientation follows the sign of the shoelace sum: a positive signed area is
// reported as Clockwise. With y pointing down, as in image space, that agrees
// with what you see on screen.
package geom
