package fling

import "time"

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthMove
	synthRelease
	synthCancel
	synthPointerUp
)

// syntheticEvent represents a single injected pointer event. Screen
// coordinates are used and converted to the press frame at dispatch time,
// identical to real input.
type syntheticEvent struct {
	kind      syntheticKind
	screen    Vec2
	pointer   int // lifted pointer (pointer-up only)
	remaining int
}

// defaultFrameInterval is one frame at 60 TPS.
const defaultFrameInterval = time.Second / 60

// Injector feeds synthetic gestures to a Controller, one event per Step,
// with a virtual clock and a velocity estimate for releases. Use it for
// scripted demos and tests.
type Injector struct {
	// Clock is the timestamp given to the next event. Each Step advances it
	// by FrameInterval.
	Clock         time.Time
	FrameInterval time.Duration

	// Pointer is the pointer ID used for press, move and release. It is read
	// when an event is dispatched, not when it is queued.
	Pointer int

	// LastHandled is the result of the most recent dispatched event.
	LastHandled bool

	c     *Controller
	el    Element
	queue []syntheticEvent
	vt    VelocityTracker
	frame Vec2 // card screen location at press
}

// NewInjector creates an injector driving c, whose element is el.
func NewInjector(c *Controller, el Element) *Injector {
	return &Injector{
		Clock:         time.Unix(0, 0),
		FrameInterval: defaultFrameInterval,
		c:             c,
		el:            el,
	}
}

// Controller returns the driven controller.
func (in *Injector) Controller() *Controller { return in.c }

// Pending returns the number of queued events.
func (in *Injector) Pending() int { return len(in.queue) }

// InjectPress queues a press at the given screen coordinates.
func (in *Injector) InjectPress(x, y float64) {
	in.queue = append(in.queue, syntheticEvent{kind: synthPress, screen: Vec2{x, y}})
}

// InjectMove queues a move of the pressed pointer to the given screen
// coordinates. Use this between InjectPress and InjectRelease to simulate a
// drag.
func (in *Injector) InjectMove(x, y float64) {
	in.queue = append(in.queue, syntheticEvent{kind: synthMove, screen: Vec2{x, y}})
}

// InjectRelease queues a release at the given screen coordinates.
func (in *Injector) InjectRelease(x, y float64) {
	in.queue = append(in.queue, syntheticEvent{kind: synthRelease, screen: Vec2{x, y}})
}

// InjectCancel queues a cancel of the whole gesture.
func (in *Injector) InjectCancel() {
	in.queue = append(in.queue, syntheticEvent{kind: synthCancel})
}

// InjectPointerUp queues a secondary pointer lift while the remaining
// pointer rests at screen (x, y). The injector keeps moving with remaining
// from then on.
func (in *Injector) InjectPointerUp(lifted, remaining int, x, y float64) {
	in.queue = append(in.queue, syntheticEvent{kind: synthPointerUp, screen: Vec2{x, y}, pointer: lifted, remaining: remaining})
}

// InjectTap is a convenience that queues a press followed by a release at
// the same screen coordinates. Consumes two frames.
func (in *Injector) InjectTap(x, y float64) {
	in.InjectPress(x, y)
	in.InjectRelease(x, y)
}

// InjectDrag queues a full drag: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames ending on the target,
// and release at (toX, toY). The whole sequence consumes `frames` frames.
// Minimum frames is 3 (press + move + release).
func (in *Injector) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	in.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		in.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	in.InjectRelease(toX, toY)
}

// flingFrames is the length of an injected fling: press, two moves, release.
const flingFrames = 4

// InjectFling queues a fast drag from (fromX, fromY) to (toX, toY) over four
// frames, quick enough that the release velocity clears any sensible
// minimum fling velocity.
func (in *Injector) InjectFling(fromX, fromY, toX, toY float64) {
	in.InjectDrag(fromX, fromY, toX, toY, flingFrames)
}

// Step pops one event and dispatches it. Returns true if an event was
// consumed.
func (in *Injector) Step() bool {
	if len(in.queue) == 0 {
		return false
	}
	evt := in.queue[0]
	copy(in.queue, in.queue[1:])
	in.queue = in.queue[:len(in.queue)-1]

	in.Clock = in.Clock.Add(in.FrameInterval)
	in.LastHandled = in.dispatch(evt)
	return true
}

// Flush steps until the queue is empty and returns the number of events
// dispatched.
func (in *Injector) Flush() int {
	n := 0
	for in.Step() {
		n++
	}
	return n
}

func (in *Injector) dispatch(evt syntheticEvent) bool {
	switch evt.kind {
	case synthPress:
		in.frame = in.el.ScreenLocation()
		in.vt.Clear()
		in.vt.Add(evt.screen, in.Clock)
		return in.c.Press(in.Pointer, evt.screen.Sub(in.frame), in.Clock)
	case synthMove:
		in.vt.Add(evt.screen, in.Clock)
		return in.c.Move(in.Pointer, evt.screen.Sub(in.frame), in.Clock)
	case synthRelease:
		in.vt.Add(evt.screen, in.Clock)
		return in.c.Release(in.Pointer, evt.screen.Sub(in.frame), evt.screen, in.Clock, in.vt.Velocity())
	case synthCancel:
		in.c.Cancel()
		return true
	case synthPointerUp:
		in.c.PointerUp(evt.pointer, evt.remaining, evt.screen.Sub(in.frame))
		if evt.pointer == in.Pointer {
			in.Pointer = evt.remaining
		}
		return true
	}
	return false
}
