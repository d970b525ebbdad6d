package fling

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimationHandle identifies a running animation. The zero handle refers to
// nothing and is safe to cancel.
type AnimationHandle uint64

// AnimationSpec describes one flight of an element to a target transform.
// The controller fills it in; an Animator plays it.
type AnimationSpec struct {
	Element  Element
	Target   Vec2
	Rotation float64 // degrees
	Duration time.Duration
	Easing   Easing

	// OnComplete runs once when the element reaches the target. It must not
	// run for a cancelled animation.
	OnComplete func()
}

// Animator plays animation requests. Cancel must stop the animation
// synchronously and must not invoke its OnComplete.
type Animator interface {
	Animate(spec AnimationSpec) AnimationHandle
	Cancel(h AnimationHandle)
}

// defaultOvershootTension matches the spring-back feel of the card deck.
const defaultOvershootTension = 1.5

// TweenGroup animates the x, y and rotation of an Element simultaneously.
// Values are written through Element.SetTransform on every Update.
type TweenGroup struct {
	id         AnimationHandle
	tweens     [3]*gween.Tween
	target     Element
	onComplete func()
	Done       bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target element.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	x, doneX := g.tweens[0].Update(dt)
	y, doneY := g.tweens[1].Update(dt)
	r, doneR := g.tweens[2].Update(dt)
	g.target.SetTransform(Vec2{float64(x), float64(y)}, float64(r))
	g.Done = doneX && doneY && doneR
}

// TweenAnimator is an Animator backed by gween tweens. It has no clock of its
// own: call Update once per frame.
type TweenAnimator struct {
	// OvershootTension shapes EasingOvershoot; zero selects 1.5.
	OvershootTension float64

	groups []*TweenGroup
	nextID AnimationHandle
}

// NewTweenAnimator returns an animator whose overshoot easing uses tension.
func NewTweenAnimator(tension float64) *TweenAnimator {
	return &TweenAnimator{OvershootTension: tension}
}

// Animate starts a tween group from the element's current transform to the
// spec's target. A non-positive duration completes before Animate returns.
func (a *TweenAnimator) Animate(spec AnimationSpec) AnimationHandle {
	if spec.Duration <= 0 {
		return immediateAnimator{}.Animate(spec)
	}
	a.nextID++
	fn := a.easing(spec.Easing)
	d := float32(spec.Duration.Seconds())
	pos := spec.Element.Position()
	g := &TweenGroup{
		id:         a.nextID,
		target:     spec.Element,
		onComplete: spec.OnComplete,
	}
	g.tweens[0] = gween.New(float32(pos.X), float32(spec.Target.X), d, fn)
	g.tweens[1] = gween.New(float32(pos.Y), float32(spec.Target.Y), d, fn)
	g.tweens[2] = gween.New(float32(spec.Element.Rotation()), float32(spec.Rotation), d, fn)
	a.groups = append(a.groups, g)
	return g.id
}

// Cancel drops the group without completing it. Unknown handles are ignored.
func (a *TweenAnimator) Cancel(h AnimationHandle) {
	for i, g := range a.groups {
		if g.id == h {
			copy(a.groups[i:], a.groups[i+1:])
			a.groups[len(a.groups)-1] = nil
			a.groups = a.groups[:len(a.groups)-1]
			return
		}
	}
}

// Update advances every running group by dt seconds. Completed groups are
// removed before their OnComplete runs, so callbacks may start new
// animations.
func (a *TweenAnimator) Update(dt float32) {
	if len(a.groups) == 0 {
		return
	}
	var finished []*TweenGroup
	kept := a.groups[:0]
	for _, g := range a.groups {
		g.Update(dt)
		if g.Done {
			finished = append(finished, g)
			continue
		}
		kept = append(kept, g)
	}
	for i := len(kept); i < len(a.groups); i++ {
		a.groups[i] = nil
	}
	a.groups = kept

	for _, g := range finished {
		if g.onComplete != nil {
			g.onComplete()
		}
	}
}

// Active returns the number of running groups.
func (a *TweenAnimator) Active() int {
	return len(a.groups)
}

func (a *TweenAnimator) easing(e Easing) ease.TweenFunc {
	if e == EasingOvershoot {
		t := a.OvershootTension
		if t == 0 {
			t = defaultOvershootTension
		}
		return Overshoot(float32(t))
	}
	return ease.InQuad
}

// Overshoot returns an easing that shoots past the target and comes back.
// Larger tension overshoots further; zero reduces to a decelerating curve.
func Overshoot(tension float32) ease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		t = t/d - 1
		return c*(t*t*((tension+1)*t+tension)+1) + b
	}
}

// immediateAnimator jumps straight to the target. Used when a controller is
// built without an animator.
type immediateAnimator struct{}

func (immediateAnimator) Animate(spec AnimationSpec) AnimationHandle {
	spec.Element.SetTransform(spec.Target, spec.Rotation)
	if spec.OnComplete != nil {
		spec.OnComplete()
	}
	return 0
}

func (immediateAnimator) Cancel(AnimationHandle) {}
