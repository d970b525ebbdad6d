package fling

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestTweenAnimatorReachesTarget(t *testing.T) {
	card := NewCard("c", 10, 20, 100, 100)
	a := NewTweenAnimator(0)

	var completed int
	a.Animate(AnimationSpec{
		Element:    card,
		Target:     Vec2{100, 200},
		Rotation:   30,
		Duration:   time.Second,
		Easing:     EasingAccelerate,
		OnComplete: func() { completed++ },
	})
	if a.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", a.Active())
	}

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	a.Update(0.5)
	if completed != 0 {
		t.Fatal("completed too early")
	}
	a.Update(0.5)

	if completed != 1 {
		t.Fatalf("OnComplete ran %d times, want 1", completed)
	}
	if a.Active() != 0 {
		t.Errorf("Active() = %d after completion", a.Active())
	}
	if math.Abs(card.X-100) > 0.5 || math.Abs(card.Y-200) > 0.5 {
		t.Errorf("position = (%v, %v), want ~(100, 200)", card.X, card.Y)
	}
	if math.Abs(card.Degrees-30) > 0.01 {
		t.Errorf("rotation = %v, want ~30", card.Degrees)
	}

	a.Update(0.5)
	if completed != 1 {
		t.Error("OnComplete ran again after removal")
	}
}

func TestTweenAnimatorCancel(t *testing.T) {
	card := NewCard("c", 0, 0, 100, 100)
	a := NewTweenAnimator(0)

	var completed bool
	h := a.Animate(AnimationSpec{
		Element:    card,
		Target:     Vec2{100, 0},
		Duration:   time.Second,
		OnComplete: func() { completed = true },
	})
	a.Update(0.25)
	a.Cancel(h)
	x := card.X
	a.Update(1)

	if completed {
		t.Error("cancelled animation must not complete")
	}
	if card.X != x {
		t.Errorf("cancelled animation kept moving: %v -> %v", x, card.X)
	}
	a.Cancel(h) // unknown handles are ignored
	a.Cancel(0)
}

func TestTweenAnimatorChainsFromCallback(t *testing.T) {
	card := NewCard("c", 0, 0, 100, 100)
	a := NewTweenAnimator(0)

	var second bool
	a.Animate(AnimationSpec{
		Element:  card,
		Target:   Vec2{50, 0},
		Duration: 100 * time.Millisecond,
		OnComplete: func() {
			a.Animate(AnimationSpec{
				Element:    card,
				Target:     Vec2{0, 0},
				Duration:   100 * time.Millisecond,
				OnComplete: func() { second = true },
			})
		},
	})
	a.Update(0.1)
	if a.Active() != 1 {
		t.Fatalf("Active() = %d, want the chained animation", a.Active())
	}
	a.Update(0.1)
	if !second {
		t.Error("chained animation did not complete")
	}
}

func TestTweenAnimatorZeroDuration(t *testing.T) {
	card := NewCard("c", 0, 0, 100, 100)
	a := NewTweenAnimator(0)

	var completed bool
	a.Animate(AnimationSpec{
		Element:    card,
		Target:     Vec2{40, 50},
		Rotation:   5,
		OnComplete: func() { completed = true },
	})
	if !completed || a.Active() != 0 {
		t.Errorf("completed=%v active=%d, want immediate completion", completed, a.Active())
	}
	assertVec(t, "position", card.Position(), Vec2{40, 50})
}

func TestOvershootEasing(t *testing.T) {
	fn := Overshoot(1.5)

	if got := fn(0, 10, 100, 1); math.Abs(float64(got-10)) > 1e-4 {
		t.Errorf("start = %v, want 10", got)
	}
	if got := fn(1, 10, 100, 1); math.Abs(float64(got-110)) > 1e-4 {
		t.Errorf("end = %v, want 110", got)
	}

	// Somewhere before the end the curve passes the target.
	var peak float32
	for i := 1; i < 100; i++ {
		if v := fn(float32(i)/100, 0, 1, 1); v > peak {
			peak = v
		}
	}
	if peak <= 1 {
		t.Errorf("peak = %v, want an overshoot above 1", peak)
	}
}

func TestAnimatorEasingSelection(t *testing.T) {
	a := &TweenAnimator{}
	// InQuad at the midpoint is a quarter of the way.
	if got := a.easing(EasingAccelerate)(0.5, 0, 1, 1); math.Abs(float64(got-ease.InQuad(0.5, 0, 1, 1))) > 1e-6 {
		t.Errorf("accelerate(0.5) = %v", got)
	}
	if got := a.easing(EasingOvershoot)(0.5, 0, 1, 1); math.Abs(float64(got-Overshoot(1.5)(0.5, 0, 1, 1))) > 1e-6 {
		t.Errorf("overshoot(0.5) = %v, want default tension", got)
	}
}

func TestImmediateAnimator(t *testing.T) {
	card := NewCard("c", 0, 0, 10, 10)
	var done bool
	h := immediateAnimator{}.Animate(AnimationSpec{
		Element:    card,
		Target:     Vec2{7, 8},
		Rotation:   9,
		OnComplete: func() { done = true },
	})
	if h != 0 || !done {
		t.Errorf("handle=%d done=%v", h, done)
	}
	assertVec(t, "position", card.Position(), Vec2{7, 8})
}
