// Package ebiteninput feeds ebiten mouse and touch input to fling
// controllers.
package ebiteninput

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/fling"
)

// maxPointers is the number of pointer slots: mouse (0) plus touches (1-9).
const maxPointers = 10

// binding pairs a card with the controller that moves it.
type binding struct {
	card *fling.Card
	c    *fling.Controller
}

// session is the gesture a controller currently owns.
type session struct {
	b     *binding
	frame fling.Vec2 // card screen location at press
	down  []int      // pointers down on the card, in press order
	vt    fling.VelocityTracker
}

type pointerState struct {
	down bool
	last fling.Vec2
}

// Source polls ebiten input once per frame and routes it to bound cards.
// Cards bound later sit on top and are hit first. Only one card is dragged
// at a time: while a controller holds its claim, presses elsewhere join the
// running gesture instead of starting a new one.
type Source struct {
	bindings []*binding
	active   *session
	claimed  bool

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// NewSource creates an empty input source.
func NewSource() *Source {
	return &Source{}
}

// Bind registers card and installs the source as c's interceptor.
func (s *Source) Bind(card *fling.Card, c *fling.Controller) {
	c.SetInterceptor(s)
	s.bindings = append(s.bindings, &binding{card: card, c: c})
}

// BindBottom is Bind for a card placed under every bound card.
func (s *Source) BindBottom(card *fling.Card, c *fling.Controller) {
	c.SetInterceptor(s)
	s.bindings = append([]*binding{{card: card, c: c}}, s.bindings...)
}

// Unbind removes card. A gesture running on it is cancelled first.
func (s *Source) Unbind(card *fling.Card) {
	for i, b := range s.bindings {
		if b.card != card {
			continue
		}
		if s.active != nil && s.active.b == b {
			s.Cancel()
		}
		b.c.SetInterceptor(nil)
		copy(s.bindings[i:], s.bindings[i+1:])
		s.bindings[len(s.bindings)-1] = nil
		s.bindings = s.bindings[:len(s.bindings)-1]
		return
	}
}

// RequestDisallowIntercept implements fling.Interceptor.
func (s *Source) RequestDisallowIntercept(disallow bool) {
	s.claimed = disallow
}

// Claimed reports whether a controller currently holds the pointer stream.
func (s *Source) Claimed() bool { return s.claimed }

// Dragging returns the card of the running gesture, or nil.
func (s *Source) Dragging() *fling.Card {
	if s.active == nil {
		return nil
	}
	return s.active.b.card
}

// Cancel aborts the running gesture, if any.
func (s *Source) Cancel() {
	if s.active == nil {
		return
	}
	c := s.active.b.c
	s.active = nil
	c.Cancel()
}

// Update polls the mouse and touch screen. Call it once per frame from
// ebiten.Game.Update. Losing window focus cancels the running gesture.
func (s *Source) Update(now time.Time) {
	if !ebiten.IsFocused() {
		s.Cancel()
		return
	}
	s.processMousePointer(now)
	s.processTouchPointers(now)
}

// processMousePointer handles mouse input (pointer 0).
func (s *Source) processMousePointer(now time.Time) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.Feed(0, fling.Vec2{X: float64(mx), Y: float64(my)}, pressed, now)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Source) processTouchPointers(now time.Time) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.Feed(slot, fling.Vec2{X: float64(tx), Y: float64(ty)}, true, now)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.Feed(i, ps.last, false, now)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Source) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// Feed runs the pointer state machine for one sample. Update calls it for
// every polled pointer; tests and custom backends may call it directly.
func (s *Source) Feed(pointerID int, screen fling.Vec2, pressed bool, now time.Time) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &s.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.last = screen
		s.press(pointerID, screen, now)
	case pressed && ps.down:
		if screen != ps.last {
			ps.last = screen
			s.move(pointerID, screen, now)
		}
	case !pressed && ps.down:
		ps.down = false
		ps.last = screen
		s.release(pointerID, screen, now)
	}
}

func (s *Source) press(pointerID int, screen fling.Vec2, now time.Time) {
	if s.active != nil {
		// A second finger joins the running gesture.
		s.active.down = append(s.active.down, pointerID)
		return
	}
	if s.claimed {
		return
	}
	for i := len(s.bindings) - 1; i >= 0; i-- {
		b := s.bindings[i]
		if !b.card.ContainsScreen(screen.X, screen.Y) {
			continue
		}
		frame := b.card.ScreenLocation()
		if !b.c.Press(pointerID, screen.Sub(frame), now) {
			continue
		}
		s.active = &session{b: b, frame: frame, down: []int{pointerID}}
		s.active.vt.Add(screen, now)
		return
	}
}

func (s *Source) move(pointerID int, screen fling.Vec2, now time.Time) {
	a := s.active
	if a == nil || a.b.c.ActivePointer() != pointerID {
		return
	}
	a.vt.Add(screen, now)
	a.b.c.Move(pointerID, screen.Sub(a.frame), now)
}

func (s *Source) release(pointerID int, screen fling.Vec2, now time.Time) {
	a := s.active
	if a == nil {
		return
	}
	a.down = removePointer(a.down, pointerID)
	c := a.b.c
	if c.ActivePointer() != pointerID {
		if len(a.down) == 0 {
			s.active = nil
		}
		return
	}

	if len(a.down) > 0 {
		remaining := a.down[0]
		c.PointerUp(pointerID, remaining, s.pointers[remaining].last.Sub(a.frame))
		a.vt.Clear()
		a.vt.Add(s.pointers[remaining].last, now)
		return
	}

	a.vt.Add(screen, now)
	c.Release(pointerID, screen.Sub(a.frame), screen, now, a.vt.Velocity())
	s.active = nil
}

func removePointer(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Ensure Source implements Interceptor
var _ fling.Interceptor = (*Source)(nil)
