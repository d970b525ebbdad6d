package fling

// HitZones are the four click bands of a card in screen coordinates. The
// bands overlap at the corners.
type HitZones struct {
	Top, Bottom, Left, Right Rect
}

// NewHitZones builds the bands for a card whose top-left corner sits at
// screen location loc and whose size is size. Each band covers 25% of the
// card along its axis.
func NewHitZones(loc, size Vec2) HitZones {
	qw := size.X * 0.25
	qh := size.Y * 0.25
	return HitZones{
		Top:    Rect{X: loc.X, Y: loc.Y, Width: size.X, Height: qh},
		Bottom: Rect{X: loc.X, Y: loc.Y + size.Y - qh, Width: size.X, Height: qh},
		Left:   Rect{X: loc.X, Y: loc.Y, Width: qw, Height: size.Y},
		Right:  Rect{X: loc.X + size.X - qw, Y: loc.Y, Width: qw, Height: size.Y},
	}
}

// Hit returns the band containing the screen point (x, y). Bands are tested
// bottom, top, left, right and the first match wins, so corners resolve to
// the vertical bands.
func (z HitZones) Hit(x, y float64) Zone {
	switch {
	case z.Bottom.Contains(x, y):
		return ZoneBottom
	case z.Top.Contains(x, y):
		return ZoneTop
	case z.Left.Contains(x, y):
		return ZoneLeft
	case z.Right.Contains(x, y):
		return ZoneRight
	}
	return ZoneNone
}

// Borders are the commitment thresholds of a container. A card whose center
// leaves the central half of the container commits to an exit instead of
// springing back.
type Borders struct {
	Left, Right, Top, Bottom float64
}

// NewBorders returns the borders at 25% and 75% of the container size.
func NewBorders(container Vec2) Borders {
	return Borders{
		Left:   container.X / 4,
		Right:  3 * container.X / 4,
		Top:    container.Y / 4,
		Bottom: 3 * container.Y / 4,
	}
}

// BeyondLeft reports whether the center x lies left of the left border.
func (b Borders) BeyondLeft(center Vec2) bool { return center.X < b.Left }

// BeyondRight reports whether the center x lies right of the right border.
func (b Borders) BeyondRight(center Vec2) bool { return center.X > b.Right }

// BeyondTop reports whether the center y lies above the top border.
func (b Borders) BeyondTop(center Vec2) bool { return center.Y < b.Top }

// BeyondBottom reports whether the center y lies below the bottom border.
func (b Borders) BeyondBottom(center Vec2) bool { return center.Y > b.Bottom }

// ScrollProgress maps the card center to [-1, 1] per axis: -1 at (or past)
// the left/top border, 1 at (or past) the right/bottom border, linear in
// between.
func (b Borders) ScrollProgress(center Vec2) (px, py float64) {
	switch {
	case b.BeyondLeft(center):
		px = -1
	case b.BeyondRight(center):
		px = 1
	default:
		px = (center.X-b.Left)/(b.Right-b.Left)*2 - 1
	}
	switch {
	case b.BeyondTop(center):
		py = -1
	case b.BeyondBottom(center):
		py = 1
	default:
		py = (center.Y-b.Top)/(b.Bottom-b.Top)*2 - 1
	}
	return px, py
}
