package fling

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
)

const noPointer = -1

// Listener receives the outcome of gestures. Every method is optional in
// spirit: embed Callbacks to implement only what you need.
type Listener interface {
	// OnExited fires when an exit animation completes, never when it is
	// cancelled. origin is the card's rest position.
	OnExited(origin Vec2, data any, edge Edge)
	OnZoneClicked(data any, zone Zone)
	// OnScrollProgress reports the card center per axis in [-1, 1].
	OnScrollProgress(px, py float64)
}

// Callbacks implements Listener with optional function fields.
type Callbacks struct {
	Exited         func(origin Vec2, data any, edge Edge)
	ZoneClicked    func(data any, zone Zone)
	ScrollProgress func(px, py float64)
}

// OnExited implements Listener.
func (c Callbacks) OnExited(origin Vec2, data any, edge Edge) {
	if c.Exited != nil {
		c.Exited(origin, data, edge)
	}
}

// OnZoneClicked implements Listener.
func (c Callbacks) OnZoneClicked(data any, zone Zone) {
	if c.ZoneClicked != nil {
		c.ZoneClicked(data, zone)
	}
}

// OnScrollProgress implements Listener.
func (c Callbacks) OnScrollProgress(px, py float64) {
	if c.ScrollProgress != nil {
		c.ScrollProgress(px, py)
	}
}

// Interceptor is the input source's claim switch. A controller claims the
// pointer stream on press so parents stop stealing it, and gives it back on
// release or cancel.
type Interceptor interface {
	RequestDisallowIntercept(disallow bool)
}

// EventStore is the interface for optional event forwarding (ECS bridges,
// journals). When set on a Controller, every listener notification is also
// emitted as a SwipeEvent.
type EventStore interface {
	EmitEvent(event SwipeEvent)
}

// SwipeEvent carries one gesture outcome for an EventStore.
type SwipeEvent struct {
	Type   EventType
	Edge   Edge // valid for EventExit
	Zone   Zone // valid for EventZoneClick
	Origin Vec2
	Data   any
	// Scroll fields (valid for EventScroll)
	ProgressX float64
	ProgressY float64
}

// Controller recognizes swipe gestures on one card. It turns pointer samples
// into live transforms while dragging and, on release, into a zone click, a
// spring-back or an animated exit.
//
// A Controller is not safe for concurrent use. Feed it from the goroutine
// that delivers input and ticks the animator; use one Controller per card.
type Controller struct {
	el   Element
	data any
	cfg  Config

	// Geometry, fixed at construction.
	size       Vec2
	half       Vec2
	origin     Vec2
	borders    Borders
	planner    exitPlanner
	xThreshold float64

	animator  Animator
	listener  Listener
	store     EventStore
	intercept Interceptor
	logger    *log.Logger

	// Session, live between press and release.
	active    int
	pos       Vec2 // card position; only meaningful while posValid
	posValid  bool
	down      Vec2
	last      Vec2
	pressedAt time.Time
	touch     TouchHalf
	zones     HitZones
	dragging  bool
	samples   []Vec2

	state   State
	anim    AnimationHandle
	animSeq uint64
}

// NewController creates a controller for el. The card's current position
// becomes its rest position. data travels with every exit and click
// notification. A nil animator makes every animation jump to its end
// immediately.
func NewController(el Element, animator Animator, data any, cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if animator == nil {
		animator = immediateAnimator{}
	}
	size := el.Size()
	origin := el.Position()
	container := Vec2{cfg.ContainerWidth, cfg.ContainerHeight}
	return &Controller{
		el:         el,
		data:       data,
		cfg:        cfg,
		size:       size,
		half:       Vec2{size.X / 2, size.Y / 2},
		origin:     origin,
		borders:    NewBorders(container),
		planner:    exitPlanner{origin: origin, size: size, container: container},
		xThreshold: cfg.TouchSlop * 2,
		animator:   animator,
		active:     noPointer,
	}, nil
}

// SetListener sets the optional outcome listener. Pass nil to remove it.
func (c *Controller) SetListener(l Listener) { c.listener = l }

// SetEventStore sets the optional event store. Pass nil to remove it.
func (c *Controller) SetEventStore(s EventStore) { c.store = s }

// SetInterceptor sets the optional intercept switch of the input source.
func (c *Controller) SetInterceptor(i Interceptor) { c.intercept = i }

// SetRotationDegrees changes the base tilt used while dragging and exiting.
func (c *Controller) SetRotationDegrees(deg float64) { c.cfg.BaseRotationDegrees = deg }

// State returns the current phase of the gesture state machine.
func (c *Controller) State() State { return c.state }

// IsTouching reports whether a pointer is being tracked.
func (c *Controller) IsTouching() bool { return c.active != noPointer }

// ActivePointer returns the tracked pointer ID, or -1.
func (c *Controller) ActivePointer() int { return c.active }

// AnimationRunning reports whether an exit animation is in flight.
func (c *Controller) AnimationRunning() bool { return c.state == StateCommitting }

// Origin returns the card's rest position.
func (c *Controller) Origin() Vec2 { return c.origin }

// Borders returns the commitment borders of the container.
func (c *Controller) Borders() Borders { return c.borders }

// LastPoint returns the card position the controller last applied.
func (c *Controller) LastPoint() Vec2 {
	if !c.posValid {
		return c.el.Position()
	}
	return c.pos
}

// Offset returns the translation from the rest position accumulated by the
// current session, or zero after a spring-back.
func (c *Controller) Offset() Vec2 {
	if !c.posValid {
		return Vec2{}
	}
	return c.pos.Sub(c.origin)
}

// Samples returns a copy of the card positions recorded since press.
func (c *Controller) Samples() []Vec2 {
	out := make([]Vec2, len(c.samples))
	copy(out, c.samples)
	return out
}

// --- Input handlers ---

// Press starts a session for pointerID at local, relative to the card's
// current top-left corner.
// It returns false while an exit animation is in flight: the card is
// leaving and the press belongs to whatever is underneath.
func (c *Controller) Press(pointerID int, local Vec2, t time.Time) bool {
	if c.state == StateCommitting || local.IsNaN() {
		return false
	}
	if c.state == StateSettling {
		c.abortAnimation()
	}

	c.active = pointerID
	c.pressedAt = t
	c.down = local
	c.last = local
	c.zones = NewHitZones(c.el.ScreenLocation(), c.size)

	// Keep the position of an unfinished session so the card does not jump.
	if !c.posValid {
		c.pos = c.el.Position()
		c.posValid = true
	}

	if local.Y < c.half.Y {
		c.touch = TouchAbove
	} else {
		c.touch = TouchBelow
	}
	c.dragging = false
	c.samples = c.samples[:0]
	c.state = StatePressed

	c.claim(true)
	c.debug("press", "pointer", pointerID, "x", local.X, "y", local.Y, "half", c.touch)
	return true
}

// Move applies a pointer sample. Local coordinates share the frame of the
// press: the card's top-left corner when the session began. Samples from a
// pointer other than the active one return false and leave the session
// untouched. NaN samples are dropped.
//
// The card follows every sample, but the session only counts as dragging
// once the total travel since press exceeds the touch slop on either axis.
// Slow drags made of many small deltas therefore still reach StateDragging.
func (c *Controller) Move(pointerID int, local Vec2, t time.Time) bool {
	if c.active == noPointer || pointerID != c.active {
		return false
	}
	if local.IsNaN() {
		return true
	}

	d := local.Sub(c.last)
	if !c.dragging {
		travel := local.Sub(c.down)
		if math.Abs(travel.X) > c.cfg.TouchSlop || math.Abs(travel.Y) > c.cfg.TouchSlop {
			c.dragging = true
			c.state = StateDragging
			c.debug("drag start", "pointer", pointerID, "dx", travel.X, "dy", travel.Y)
		}
	}

	c.pos = c.pos.Add(d)
	c.last = local
	c.samples = append(c.samples, c.pos)

	c.el.SetTransform(c.pos, c.dragRotation())
	c.reportScroll()
	return true
}

// PointerUp handles a secondary pointer leaving the screen. When the lifted
// pointer is the active one, tracking continues with remainingID, currently
// at local. The session keeps its offset and samples; the press point shifts
// with the hand-over so the card does not jump.
func (c *Controller) PointerUp(liftedID, remainingID int, local Vec2) {
	if c.active == noPointer || liftedID != c.active {
		return
	}
	c.active = remainingID
	if !local.IsNaN() {
		c.down = c.down.Add(local.Sub(c.last))
		c.last = local
	}
	c.debug("pointer reassigned", "from", liftedID, "to", remainingID)
}

// Release ends the session. local is the card-local release point, screen
// the raw screen point used for zone hits, and velocity the pointer velocity
// in pixels per second. Releases from a foreign pointer return false.
func (c *Controller) Release(pointerID int, local, screen Vec2, t time.Time, velocity Vec2) bool {
	if c.active == noPointer || pointerID != c.active {
		return false
	}
	if local.IsNaN() {
		local = c.last
	}
	c.dragging = false

	v := c.clampVelocity(velocity)
	held := t.Sub(c.pressedAt)
	d := local.Sub(c.down)

	// Either axis under slop counts as a tap, so single-axis drags land here
	// too. Kept for compatibility with existing decks.
	if held < c.cfg.MaxClickDuration && (math.Abs(d.X) < c.cfg.TouchSlop || math.Abs(d.Y) < c.cfg.TouchSlop) {
		zone := c.zones.Hit(screen.X, screen.Y)
		c.debug("tap", "zone", zone, "held", held)
		if zone != ZoneNone {
			c.emitZoneClick(zone)
		}
		c.settle()
	} else if math.Abs(v.X) > c.cfg.MinFlingVelocity || math.Abs(v.Y) > c.cfg.MinFlingVelocity {
		c.fling(local, d)
	} else {
		c.settle()
	}

	c.claim(false)
	c.active = noPointer
	return true
}

// Cancel aborts the gesture. A running exit animation is cancelled without
// firing its exit notification and the card springs back to rest. An active
// session settles, committing if the card already crossed a border. With
// nothing to cancel it does nothing.
func (c *Controller) Cancel() {
	hadSession := c.active != noPointer
	committing := c.state == StateCommitting
	if !hadSession && !committing {
		return
	}

	c.active = noPointer
	c.dragging = false
	c.claim(false)
	c.debug("cancel", "session", hadSession, "aborted", committing)
	if committing {
		// Borders are not re-checked: the card is past one by now.
		c.abortAnimation()
		c.springBack()
		return
	}
	c.settle()
}

// Dismiss flies the card out through edge without a gesture. It returns
// false while a pointer is down, when an exit is already running, or when
// the edge is not enabled.
func (c *Controller) Dismiss(edge Edge) bool {
	if c.active != noPointer || (c.cfg.Axes == AxesHorizontal && !edge.horizontal()) {
		return false
	}
	d := c.cfg.DismissDuration
	if !edge.horizontal() {
		d = c.cfg.VerticalDismissDuration
	}
	return c.commit(edge, c.planner.dismissCrossing(edge), d)
}

// --- Outcomes ---

// fling commits a fast release in its direction when it travelled far enough
// along that axis; otherwise the card settles.
func (c *Controller) fling(local, d Vec2) {
	// Raw screen coordinates: y grows downward, so a downward drag
	// classifies as up and commits the top edge. Existing decks rely on
	// that; FlipVerticalFling opts into the mirrored orientation.
	dir := Classify(c.down.X, c.down.Y, local.X, local.Y)
	if c.cfg.FlipVerticalFling {
		dir = Classify(c.down.X, -c.down.Y, local.X, -local.Y)
	}
	c.debug("fling", "direction", dir, "dx", d.X, "dy", d.Y)

	var edge Edge
	var far bool
	switch dir {
	case DirectionUp:
		edge, far = EdgeTop, math.Abs(d.Y) >= c.cfg.YDirectionThreshold
	case DirectionDown:
		edge, far = EdgeBottom, math.Abs(d.Y) >= c.cfg.YDirectionThreshold
	case DirectionLeft:
		edge, far = EdgeLeft, math.Abs(d.X) >= c.xThreshold
	default:
		edge, far = EdgeRight, math.Abs(d.X) >= c.xThreshold
	}
	if !far || (c.cfg.Axes == AxesHorizontal && !edge.horizontal()) {
		c.settle()
		return
	}

	dur := c.cfg.DismissDuration
	if !edge.horizontal() {
		dur = c.cfg.VerticalDismissDuration
	}
	// A committed right fling does not also settle.
	c.commit(edge, c.planner.crossing(edge, c.path()), dur)
}

// settle commits if the card center already crossed a border (checked left,
// right, top, bottom) and otherwise springs the card back to rest.
func (c *Controller) settle() {
	center := c.pos.Add(c.half)
	edge, crossed := c.crossedBorder(center)
	if crossed {
		c.commit(edge, c.planner.crossing(edge, c.path()), c.cfg.BorderExitDuration)
		c.reportScroll()
		return
	}
	c.springBack()
}

// springBack resets the session and animates the card to its rest position.
func (c *Controller) springBack() {
	c.posValid = false
	c.pos = Vec2{}
	c.down = Vec2{}
	c.samples = c.samples[:0]

	spec := c.planner.settle(c.cfg.SettleDuration)
	c.state = StateSettling
	c.debug("settle", "duration", spec.Duration)
	c.startAnimation(spec, func() {
		c.state = StateIdle
	})
	c.emitScroll(0, 0)
}

func (c *Controller) crossedBorder(center Vec2) (Edge, bool) {
	switch {
	case c.borders.BeyondLeft(center):
		return EdgeLeft, true
	case c.borders.BeyondRight(center):
		return EdgeRight, true
	case c.cfg.Axes == AxesAll && c.borders.BeyondTop(center):
		return EdgeTop, true
	case c.cfg.Axes == AxesAll && c.borders.BeyondBottom(center):
		return EdgeBottom, true
	}
	return 0, false
}

// commit starts the exit flight through edge. A second commit while one is
// in flight is ignored.
func (c *Controller) commit(edge Edge, cross float64, d time.Duration) bool {
	if c.state == StateCommitting {
		c.debug("commit ignored", "edge", edge)
		return false
	}
	if c.state == StateSettling {
		c.abortAnimation()
	}

	spec := c.planner.exit(edge, cross, c.touch, c.cfg.BaseRotationDegrees, d)
	c.state = StateCommitting
	c.debug("commit", "edge", edge, "x", spec.Target.X, "y", spec.Target.Y, "rotation", spec.Rotation, "duration", d)
	c.startAnimation(spec, func() {
		c.emitExit(edge)
		c.state = StateIdle
	})
	return true
}

// --- Animation bookkeeping ---

func (c *Controller) startAnimation(spec AnimationSpec, done func()) {
	c.animSeq++
	seq := c.animSeq
	finished := false
	spec.Element = c.el
	spec.OnComplete = func() {
		finished = true
		// Ignore completions of superseded or cancelled animations.
		if seq != c.animSeq {
			return
		}
		c.anim = 0
		done()
	}
	h := c.animator.Animate(spec)
	if !finished {
		c.anim = h
	}
}

func (c *Controller) abortAnimation() {
	c.animSeq++
	if c.anim != 0 {
		c.animator.Cancel(c.anim)
		c.anim = 0
	}
	c.debug("animation aborted")
}

// --- Helpers ---

func (c *Controller) dragRotation() float64 {
	rot := c.cfg.BaseRotationDegrees * 2 * (c.pos.X - c.origin.X) / c.cfg.ContainerWidth
	if c.touch == TouchBelow {
		rot = -rot
	}
	return rot
}

func (c *Controller) clampVelocity(v Vec2) Vec2 {
	m := c.cfg.MaxFlingVelocity
	return Vec2{math.Max(-m, math.Min(m, v.X)), math.Max(-m, math.Min(m, v.Y))}
}

// path returns the positions the exit line is fitted through. Without any
// recorded move it falls back to the current position.
func (c *Controller) path() []Vec2 {
	if len(c.samples) > 0 {
		return c.samples
	}
	if c.posValid {
		return []Vec2{c.pos}
	}
	return nil
}

func (c *Controller) claim(disallow bool) {
	if c.intercept != nil {
		c.intercept.RequestDisallowIntercept(disallow)
	}
}

// --- Notifications ---

func (c *Controller) reportScroll() {
	px, py := c.borders.ScrollProgress(c.pos.Add(c.half))
	c.emitScroll(px, py)
}

func (c *Controller) emitScroll(px, py float64) {
	if c.cfg.Axes == AxesHorizontal {
		py = 0
	}
	if c.listener != nil {
		c.listener.OnScrollProgress(px, py)
	}
	if c.store != nil {
		c.store.EmitEvent(SwipeEvent{Type: EventScroll, Origin: c.origin, Data: c.data, ProgressX: px, ProgressY: py})
	}
}

func (c *Controller) emitZoneClick(zone Zone) {
	if c.listener != nil {
		c.listener.OnZoneClicked(c.data, zone)
	}
	if c.store != nil {
		c.store.EmitEvent(SwipeEvent{Type: EventZoneClick, Zone: zone, Origin: c.origin, Data: c.data})
	}
}

func (c *Controller) emitExit(edge Edge) {
	if c.listener != nil {
		c.listener.OnExited(c.origin, c.data, edge)
	}
	if c.store != nil {
		c.store.EmitEvent(SwipeEvent{Type: EventExit, Edge: edge, Origin: c.origin, Data: c.data})
	}
}
