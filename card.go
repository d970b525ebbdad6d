package fling

// Element is the draggable thing a Controller moves. Positions are the
// top-left corner in container coordinates; rotation is in degrees around
// the element's center.
type Element interface {
	Position() Vec2
	Size() Vec2
	Rotation() float64

	// ScreenLocation returns the top-left corner in screen coordinates,
	// used to place the click bands at press time.
	ScreenLocation() Vec2

	// SetTransform moves and rotates the element. Called on every drag
	// sample and on every animation frame.
	SetTransform(pos Vec2, rotation float64)
}

// --- ID counter ---

// cardIDCounter is a plain counter. Controllers are single-threaded.
var cardIDCounter uint32

func nextCardID() uint32 {
	cardIDCounter++
	return cardIDCounter
}

// Card is a rectangular Element placed inside a container. It keeps its
// screen transform cached and recomputes it lazily after a change.
type Card struct {
	ID   uint32
	Name string

	// Transform (container space)
	X, Y          float64
	Width, Height float64
	Degrees       float64

	// ContainerX and ContainerY locate the container on screen.
	ContainerX, ContainerY float64

	// Metadata
	UserData any

	screenTransform [6]float64
	transformDirty  bool
}

// NewCard creates a card of the given size at (x, y).
func NewCard(name string, x, y, w, h float64) *Card {
	return &Card{
		ID:             nextCardID(),
		Name:           name,
		X:              x,
		Y:              y,
		Width:          w,
		Height:         h,
		transformDirty: true,
	}
}

// Position implements Element.
func (c *Card) Position() Vec2 { return Vec2{c.X, c.Y} }

// Size implements Element.
func (c *Card) Size() Vec2 { return Vec2{c.Width, c.Height} }

// Rotation implements Element.
func (c *Card) Rotation() float64 { return c.Degrees }

// ScreenLocation implements Element. The rotation is ignored: the click
// bands are axis-aligned.
func (c *Card) ScreenLocation() Vec2 {
	return Vec2{c.ContainerX + c.X, c.ContainerY + c.Y}
}

// SetTransform implements Element.
func (c *Card) SetTransform(pos Vec2, rotation float64) {
	c.X = pos.X
	c.Y = pos.Y
	c.Degrees = rotation
	c.transformDirty = true
}

// SetContainerOrigin places the container on screen and marks the card dirty.
func (c *Card) SetContainerOrigin(x, y float64) {
	c.ContainerX = x
	c.ContainerY = y
	c.transformDirty = true
}

// MarkDirty forces the screen transform to be recomputed. Useful after
// bulk-setting fields directly.
func (c *Card) MarkDirty() {
	c.transformDirty = true
}

// Center returns the card's center in container coordinates.
func (c *Card) Center() Vec2 {
	return Vec2{c.X + c.Width/2, c.Y + c.Height/2}
}

// ScreenTransform returns the affine matrix mapping card-local points to the
// screen, laid out as [a, b, c, d, tx, ty].
func (c *Card) ScreenTransform() [6]float64 {
	if c.transformDirty {
		c.screenTransform = computeCardTransform(c)
		c.transformDirty = false
	}
	return c.screenTransform
}

// ScreenToLocal converts a screen-space point to the card's local space,
// where (0, 0) is the card's top-left corner before rotation.
func (c *Card) ScreenToLocal(sx, sy float64) (lx, ly float64) {
	inv := invertAffine(c.ScreenTransform())
	return transformPoint(inv, sx, sy)
}

// LocalToScreen converts a card-local point to screen space.
func (c *Card) LocalToScreen(lx, ly float64) (sx, sy float64) {
	return transformPoint(c.ScreenTransform(), lx, ly)
}

// ContainsScreen reports whether the screen point lies on the (rotated) card.
func (c *Card) ContainsScreen(sx, sy float64) bool {
	lx, ly := c.ScreenToLocal(sx, sy)
	return lx >= 0 && lx <= c.Width && ly >= 0 && ly <= c.Height
}
