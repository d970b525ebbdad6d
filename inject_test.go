package fling

import (
	"testing"
	"time"
)

func newInjectRig(t *testing.T, anim Animator) (*Card, *Controller, *recorder, *Injector) {
	t.Helper()
	card := NewCard("c", 400, 400, 200, 200)
	card.SetContainerOrigin(50, 60)
	cfg := DefaultConfig()
	cfg.ContainerWidth = 1000
	cfg.ContainerHeight = 1000
	c, err := NewController(card, anim, "payload", cfg)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	c.SetListener(rec)
	return card, c, rec, NewInjector(c, card)
}

func TestInjectTap(t *testing.T) {
	_, c, rec, in := newInjectRig(t, nil)

	// Top band of the card on screen: container (50, 60) + card (400, 400).
	in.InjectTap(550, 470)
	if in.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", in.Pending())
	}

	// Frame 1: press
	in.Step()
	if !c.IsTouching() {
		t.Fatal("press should start a session")
	}
	if len(rec.zones) != 0 {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release → click fires
	in.Step()
	if in.Pending() != 0 {
		t.Fatalf("expected 0 remaining events, got %d", in.Pending())
	}
	if len(rec.zones) != 1 || rec.zones[0] != ZoneTop {
		t.Errorf("zones = %v, want [top]", rec.zones)
	}
	if !in.LastHandled {
		t.Error("release should be handled")
	}
}

func TestInjectDrag(t *testing.T) {
	card, c, rec, in := newInjectRig(t, nil)

	// Drag from the card center 500px to the left over 7 frames:
	// frame 0: press, frames 1-5: moves, frame 6: release.
	in.InjectDrag(550, 560, 50, 560, 7)
	if in.Pending() != 7 {
		t.Fatalf("expected 7 queued events, got %d", in.Pending())
	}

	for i := 0; i < 6; i++ {
		in.Step()
	}
	assertVec(t, "offset before release", c.Offset(), Vec2{-500, 0})
	if c.State() != StateDragging {
		t.Errorf("state = %v, want dragging", c.State())
	}

	in.Step()
	if len(rec.exits) != 1 || rec.exits[0].edge != EdgeLeft {
		t.Errorf("exits = %+v, want left", rec.exits)
	}
	if card.X >= 0 {
		t.Errorf("card x = %v, should be off screen", card.X)
	}
}

func TestInjectFling(t *testing.T) {
	_, _, rec, in := newInjectRig(t, nil)

	// Diagonal, so neither axis stays under the touch slop.
	in.InjectFling(550, 560, 650, 600)
	if in.Pending() != 4 {
		t.Fatalf("expected 4 queued events, got %d", in.Pending())
	}
	in.Flush()
	if len(rec.exits) != 1 || rec.exits[0].edge != EdgeRight {
		t.Errorf("exits = %+v, want right", rec.exits)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	_, _, _, in := newInjectRig(t, nil)
	in.InjectDrag(0, 0, 10, 10, 1)
	if in.Pending() != 3 {
		t.Errorf("expected drag clamped to 3 events, got %d", in.Pending())
	}
}

func TestInjectClockAdvances(t *testing.T) {
	_, _, _, in := newInjectRig(t, nil)
	start := in.Clock
	in.InjectPress(0, 0)
	in.InjectRelease(0, 0)
	if n := in.Flush(); n != 2 {
		t.Errorf("Flush() = %d, want 2", n)
	}
	if got := in.Clock.Sub(start); got != 2*defaultFrameInterval {
		t.Errorf("clock advanced %v, want two frames", got)
	}
	if in.Step() {
		t.Error("Step on an empty queue should return false")
	}
}

func TestInjectSlowPressIsNotATap(t *testing.T) {
	_, _, rec, in := newInjectRig(t, nil)
	in.FrameInterval = time.Second

	in.InjectTap(550, 470)
	in.Flush()
	if len(rec.zones) != 0 {
		t.Errorf("zones = %v, a one second press is not a tap", rec.zones)
	}
}

func TestInjectPointerHandOver(t *testing.T) {
	_, c, _, in := newInjectRig(t, nil)
	in.Pointer = 1

	in.InjectPress(550, 560)
	in.InjectMove(580, 560)
	in.InjectPointerUp(1, 2, 600, 570)
	in.InjectMove(610, 570)
	in.Flush()

	if c.ActivePointer() != 2 || in.Pointer != 2 {
		t.Fatalf("active=%d injector=%d, want 2", c.ActivePointer(), in.Pointer)
	}
	assertVec(t, "offset", c.Offset(), Vec2{40, 0})
}

func TestInjectCancel(t *testing.T) {
	_, c, rec, in := newInjectRig(t, nil)
	in.InjectPress(550, 560)
	in.InjectMove(1100, 560)
	in.InjectCancel()
	in.Flush()

	if c.IsTouching() {
		t.Error("cancel should end the session")
	}
	// The card was dragged past the right border, so cancel commits.
	if len(rec.exits) != 1 || rec.exits[0].edge != EdgeRight {
		t.Errorf("exits = %+v, want right", rec.exits)
	}
}

func TestInjectWithTweenAnimator(t *testing.T) {
	anim := NewTweenAnimator(1.5)
	card, c, rec, in := newInjectRig(t, anim)

	in.InjectDrag(550, 560, 50, 560, 7)
	in.Flush()
	if c.State() != StateCommitting {
		t.Fatalf("state = %v, want committing", c.State())
	}

	for i := 0; i < 30 && anim.Active() > 0; i++ {
		anim.Update(float32(defaultFrameInterval.Seconds()))
	}
	if len(rec.exits) != 1 || rec.exits[0].edge != EdgeLeft {
		t.Fatalf("exits = %+v, want left", rec.exits)
	}
	off := card.Width/maxCos - card.Width
	if diff := card.X - (-card.Width - off); diff > 0.5 || diff < -0.5 {
		t.Errorf("card x = %v, want %v", card.X, -card.Width-off)
	}
}
