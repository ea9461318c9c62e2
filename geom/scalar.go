package geom

import "golang.org/x/exp/constraints"

// Scalar is the set of coordinate types the generic algorithms run over. The
// algorithms only use +, -, * and /, so integer instantiations stay exact and
// truncate on division.
type Scalar interface {
	constraints.Signed | constraints.Float
}

func Swap[T any](left, right *T) {
	*left, *right = *right, *left
}

func perpDot[T Scalar](ax, ay, bx, by T) T {
	return ax*by - ay*bx
}

func maxOf[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func minOf[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}
