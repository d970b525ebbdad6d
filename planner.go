package fling

import (
	"math"
	"time"
)

// maxCos is cos(45°). A rotated card is widest at 45 degrees.
var maxCos = math.Cos(math.Pi / 4)

// exitPlanner turns controller state into animation requests. It holds only
// the immutable geometry of one controller.
type exitPlanner struct {
	origin    Vec2 // card rest position
	size      Vec2
	container Vec2
}

// rotationWidthOffset is how much wider the card gets when rotated, used to
// push the exit point far enough that no corner stays visible.
func (p exitPlanner) rotationWidthOffset() float64 {
	return p.size.X/maxCos - p.size.X
}

// pathLine fits the drag path: the rest position followed by every recorded
// position. With axis swapped the fit is x as a function of y.
func (p exitPlanner) pathLine(path []Vec2, swapped bool) Line {
	xs := make([]float64, 0, len(path)+1)
	ys := make([]float64, 0, len(path)+1)
	xs = append(xs, p.origin.X)
	ys = append(ys, p.origin.Y)
	for _, pt := range path {
		xs = append(xs, pt.X)
		ys = append(ys, pt.Y)
	}
	if swapped {
		return Fit(ys, xs)
	}
	return Fit(xs, ys)
}

// crossing extrapolates where the drag path meets the far side of edge. For
// horizontal edges it returns the exit y, for vertical edges the exit x.
func (p exitPlanner) crossing(edge Edge, path []Vec2) float64 {
	switch edge {
	case EdgeLeft:
		return p.pathLine(path, false).At(-p.size.X)
	case EdgeRight:
		return p.pathLine(path, false).At(p.container.X)
	case EdgeTop:
		return p.pathLine(path, true).At(-p.size.Y)
	default:
		return p.pathLine(path, true).At(p.container.Y)
	}
}

// exitRotation is the tilt the card reaches when it leaves sideways.
func (p exitPlanner) exitRotation(edge Edge, half TouchHalf, base float64) float64 {
	rot := base * 2 * (p.container.X - p.origin.X) / p.container.X
	if half == TouchBelow {
		rot = -rot
	}
	if edge == EdgeLeft {
		rot = -rot
	}
	return rot
}

// exit plans a flight out through edge. cross is the coordinate along the
// edge: y for left/right, x for top/bottom.
func (p exitPlanner) exit(edge Edge, cross float64, half TouchHalf, base float64, d time.Duration) AnimationSpec {
	off := p.rotationWidthOffset()
	spec := AnimationSpec{Duration: d, Easing: EasingAccelerate}
	switch edge {
	case EdgeLeft:
		spec.Target = Vec2{-p.size.X - off, cross}
		spec.Rotation = p.exitRotation(edge, half, base)
	case EdgeRight:
		spec.Target = Vec2{p.container.X + off, cross}
		spec.Rotation = p.exitRotation(edge, half, base)
	case EdgeTop:
		spec.Target = Vec2{cross, -p.size.Y - off}
	case EdgeBottom:
		spec.Target = Vec2{cross, p.container.Y + off}
	}
	return spec
}

// settle plans the spring-back to the rest position.
func (p exitPlanner) settle(d time.Duration) AnimationSpec {
	return AnimationSpec{
		Target:   p.origin,
		Rotation: 0,
		Duration: d,
		Easing:   EasingOvershoot,
	}
}

// dismissCrossing is where a programmatic dismissal leaves: left flies off
// above the rest row, right at the rest row, vertical exits straight along x.
func (p exitPlanner) dismissCrossing(edge Edge) float64 {
	switch edge {
	case EdgeLeft:
		return p.origin.Y - p.size.Y*1.5
	case EdgeRight:
		return p.origin.Y
	default:
		return p.origin.X
	}
}
