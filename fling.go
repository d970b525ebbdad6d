package fling

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for positions, offsets, sizes and velocities
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle. The
// left and top edges are inside, the right and bottom edges outside, so
// adjacent rectangles never share a point.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Edge identifies the container edge a card leaves through.
type Edge uint8

const (
	EdgeRight  Edge = iota // exit past the right border
	EdgeLeft               // exit past the left border
	EdgeTop                // exit past the top border
	EdgeBottom             // exit past the bottom border
)

func (e Edge) String() string {
	switch e {
	case EdgeRight:
		return "right"
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return "unknown"
}

// ParseEdge converts an edge name ("left", "right", "top", "bottom") to an
// Edge.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "right":
		return EdgeRight, nil
	case "left":
		return EdgeLeft, nil
	case "top":
		return EdgeTop, nil
	case "bottom":
		return EdgeBottom, nil
	}
	return 0, fmt.Errorf("unknown edge %q", s)
}

// horizontal reports whether the edge lies on the X axis.
func (e Edge) horizontal() bool { return e == EdgeLeft || e == EdgeRight }

// Zone identifies one of the four click bands of a card.
type Zone uint8

const (
	ZoneNone   Zone = iota // release landed outside every band
	ZoneRight              // right 25% band
	ZoneLeft               // left 25% band
	ZoneTop                // top 25% band
	ZoneBottom             // bottom 25% band
)

func (z Zone) String() string {
	switch z {
	case ZoneRight:
		return "right"
	case ZoneLeft:
		return "left"
	case ZoneTop:
		return "top"
	case ZoneBottom:
		return "bottom"
	}
	return "none"
}

// TouchHalf records which vertical half of the card a press landed in.
// Touches below the middle flip the sign of the drag rotation.
type TouchHalf uint8

const (
	TouchAbove TouchHalf = iota // press in the upper half
	TouchBelow                  // press in the lower half
)

func (h TouchHalf) String() string {
	if h == TouchBelow {
		return "below"
	}
	return "above"
}

// Axes selects which exit directions a controller may commit to.
type Axes uint8

const (
	AxesAll        Axes = iota // left, right, top and bottom exits
	AxesHorizontal             // left and right exits only
)

// Easing selects the interpolation curve of an animation request.
type Easing uint8

const (
	EasingAccelerate Easing = iota // starts slow, speeds up (exit flights)
	EasingOvershoot                // overshoots the target then settles (spring-back)
)

// State is the phase of a controller's gesture state machine.
type State uint8

const (
	StateIdle       State = iota // no pointer down, nothing animating
	StatePressed                 // pointer down, slop not exceeded yet
	StateDragging                // pointer down, slop exceeded
	StateCommitting              // exit animation in flight
	StateSettling                // spring-back animation in flight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressed:
		return "pressed"
	case StateDragging:
		return "dragging"
	case StateCommitting:
		return "committing"
	case StateSettling:
		return "settling"
	}
	return "unknown"
}

// EventType identifies a kind of swipe event forwarded to an EventStore.
type EventType uint8

const (
	EventExit      EventType = iota // fires when an exit animation completes
	EventZoneClick                  // fires when a tap lands inside a click band
	EventScroll                     // fires on every scroll-progress update
)

func (t EventType) String() string {
	switch t {
	case EventExit:
		return "exit"
	case EventZoneClick:
		return "zone_click"
	case EventScroll:
		return "scroll"
	}
	return "unknown"
}
