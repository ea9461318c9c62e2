package geom

import "github.com/pkg/errors"

// Threading errors through every step of ear clipping would add a lot of
// noise to code that only fails on invalid input. Instead, we panic with a
// TriangulationError, and the public API recovers to convert to an error.

type TriangulationError struct {
	error
}

// Panic with a TriangulationError.
func fatalf(format string, args ...interface{}) {
	panic(TriangulationError{errors.Errorf(format, args...)})
}

// HandlePanicRecover turns a recovered TriangulationError back into an error.
// Any other panic is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulationError, ok := r.(TriangulationError); ok {
			return triangulationError.error
		}
		panic(r)
	}
	return nil
}
