package geom

// Orientation is the winding direction of a polygon.
type Orientation int

const (
	CounterClockwise Orientation = -1
	NonOrientable    Orientation = 0
	Clockwise        Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case CounterClockwise:
		return "counterclockwise"
	case Clockwise:
		return "clockwise"
	}
	return "non-orientable"
}

func orientationOf(signedArea float64, count int) Orientation {
	if count < 3 {
		return NonOrientable
	}
	switch {
	case signedArea > 0:
		return Clockwise
	case signedArea < 0:
		return CounterClockwise
	}
	return NonOrientable
}
