package fling

import "math"

// Direction is the compass classification of a swipe vector.
type Direction uint8

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return "unknown"
}

// Angle returns the angle in degrees of the vector from (x1, y1) to (x2, y2),
// measured counter-clockwise from the positive X axis and normalized to
// [0, 360).
func Angle(x1, y1, x2, y2 float64) float64 {
	deg := math.Atan2(y2-y1, x2-x1) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

// Classify returns the direction an arrow from (x1, y1) to (x2, y2) points.
func Classify(x1, y1, x2, y2 float64) Direction {
	return DirectionFromAngle(Angle(x1, y1, x2, y2))
}

// DirectionFromAngle buckets an angle in degrees:
//
//	up    [45, 135)
//	right [0, 45) and [315, 360)
//	down  [225, 315)
//	left  everything else
//
// Each interval includes its lower bound, so 45 is up and 315 is right.
func DirectionFromAngle(deg float64) Direction {
	switch {
	case inRange(deg, 45, 135):
		return DirectionUp
	case inRange(deg, 0, 45), inRange(deg, 315, 360):
		return DirectionRight
	case inRange(deg, 225, 315):
		return DirectionDown
	default:
		return DirectionLeft
	}
}

func inRange(deg, lo, hi float64) bool {
	return deg >= lo && deg < hi
}
