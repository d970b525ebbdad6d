package ebiteninput

import (
	"testing"
	"time"

	"github.com/phanxgames/fling"
)

type outcome struct {
	exits  []fling.Edge
	clicks []fling.Zone
}

func bindCard(t *testing.T, s *Source, name string, x, y float64) (*fling.Card, *fling.Controller, *outcome) {
	t.Helper()
	card := fling.NewCard(name, x, y, 200, 200)
	c, err := fling.NewController(card, nil, name, fling.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	out := &outcome{}
	c.SetListener(fling.Callbacks{
		Exited:      func(_ fling.Vec2, _ any, e fling.Edge) { out.exits = append(out.exits, e) },
		ZoneClicked: func(_ any, z fling.Zone) { out.clicks = append(out.clicks, z) },
	})
	s.Bind(card, c)
	return card, c, out
}

func TestSourceDragLeftExits(t *testing.T) {
	s := NewSource()
	_, c, out := bindCard(t, s, "a", 140, 260)

	now := time.Unix(0, 0)
	frame := 16 * time.Millisecond
	s.Feed(0, fling.Vec2{X: 240, Y: 360}, true, now)
	if s.Dragging() == nil {
		t.Fatal("press on the card should start a gesture")
	}
	if !s.Claimed() {
		t.Error("controller should claim the pointer on press")
	}
	for x := 200.0; x >= 0; x -= 40 {
		now = now.Add(frame)
		s.Feed(0, fling.Vec2{X: x, Y: 360}, true, now)
	}
	now = now.Add(frame)
	s.Feed(0, fling.Vec2{X: 0, Y: 360}, false, now)

	if len(out.exits) != 1 || out.exits[0] != fling.EdgeLeft {
		t.Errorf("exits = %v, want [left]", out.exits)
	}
	if s.Dragging() != nil {
		t.Error("gesture should end on release")
	}
	if s.Claimed() {
		t.Error("claim should be released")
	}
	if c.IsTouching() {
		t.Error("controller still tracking a pointer")
	}
}

func TestSourceTapTopZone(t *testing.T) {
	s := NewSource()
	_, _, out := bindCard(t, s, "a", 140, 260)

	now := time.Unix(0, 0)
	s.Feed(0, fling.Vec2{X: 240, Y: 270}, true, now)
	s.Feed(0, fling.Vec2{X: 240, Y: 270}, false, now.Add(50*time.Millisecond))

	if len(out.clicks) != 1 || out.clicks[0] != fling.ZoneTop {
		t.Errorf("clicks = %v, want [top]", out.clicks)
	}
	if len(out.exits) != 0 {
		t.Errorf("unexpected exits %v", out.exits)
	}
}

func TestSourceTopmostCardWins(t *testing.T) {
	s := NewSource()
	_, below, _ := bindCard(t, s, "below", 100, 100)
	top, above, _ := bindCard(t, s, "above", 150, 150)

	s.Feed(0, fling.Vec2{X: 200, Y: 200}, true, time.Unix(0, 0))

	if s.Dragging() != top {
		t.Errorf("Dragging() = %v, want the top card", s.Dragging())
	}
	if !above.IsTouching() || below.IsTouching() {
		t.Errorf("touching: above=%v below=%v, want true/false", above.IsTouching(), below.IsTouching())
	}
}

func TestSourcePressOutsideIgnored(t *testing.T) {
	s := NewSource()
	_, c, _ := bindCard(t, s, "a", 140, 260)

	s.Feed(0, fling.Vec2{X: 10, Y: 10}, true, time.Unix(0, 0))
	if s.Dragging() != nil || c.IsTouching() {
		t.Error("press outside every card should be ignored")
	}
}

func TestSourceSecondPointerTakesOver(t *testing.T) {
	s := NewSource()
	_, c, _ := bindCard(t, s, "a", 140, 260)

	now := time.Unix(0, 0)
	s.Feed(1, fling.Vec2{X: 240, Y: 360}, true, now)
	s.Feed(2, fling.Vec2{X: 260, Y: 380}, true, now)
	if c.ActivePointer() != 1 {
		t.Fatalf("ActivePointer() = %d, want 1", c.ActivePointer())
	}

	s.Feed(1, fling.Vec2{X: 240, Y: 360}, false, now.Add(time.Millisecond))
	if c.ActivePointer() != 2 {
		t.Errorf("ActivePointer() = %d after lift, want 2", c.ActivePointer())
	}
	if s.Dragging() == nil {
		t.Error("gesture should continue with the remaining pointer")
	}

	// Moving the remaining pointer drags from where it rests, no jump.
	s.Feed(2, fling.Vec2{X: 270, Y: 380}, true, now.Add(2*time.Millisecond))
	if got := c.Offset(); got.X != 10 || got.Y != 0 {
		t.Errorf("Offset() = %+v, want {10 0}", got)
	}
}

func TestSourceUnbindCancels(t *testing.T) {
	s := NewSource()
	card, c, _ := bindCard(t, s, "a", 140, 260)

	s.Feed(0, fling.Vec2{X: 240, Y: 360}, true, time.Unix(0, 0))
	s.Unbind(card)

	if s.Dragging() != nil {
		t.Error("Unbind should end the gesture")
	}
	if c.IsTouching() {
		t.Error("controller should be cancelled")
	}
	s.Feed(0, fling.Vec2{X: 240, Y: 360}, false, time.Unix(1, 0))
}

func TestSourceBindBottom(t *testing.T) {
	s := NewSource()
	top, _, _ := bindCard(t, s, "top", 100, 100)

	card := fling.NewCard("under", 100, 100, 200, 200)
	c, err := fling.NewController(card, nil, "under", fling.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s.BindBottom(card, c)

	s.Feed(0, fling.Vec2{X: 200, Y: 200}, true, time.Unix(0, 0))
	if s.Dragging() != top {
		t.Error("a card bound at the bottom must not steal presses")
	}
}

func TestCardGeoMMatchesScreenTransform(t *testing.T) {
	card := fling.NewCard("c", 10, 20, 100, 50)
	card.Degrees = 30
	m := CardGeoM(card)

	wantX, wantY := card.LocalToScreen(100, 50)
	gotX, gotY := m.Apply(100, 50)
	if d := gotX - wantX; d > 1e-6 || d < -1e-6 {
		t.Errorf("x = %v, want %v", gotX, wantX)
	}
	if d := gotY - wantY; d > 1e-6 || d < -1e-6 {
		t.Errorf("y = %v, want %v", gotY, wantY)
	}
}
