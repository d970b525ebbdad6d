package fling

import "testing"

func TestHitZones(t *testing.T) {
	z := NewHitZones(Vec2{100, 200}, Vec2{200, 400})

	tests := []struct {
		name string
		x, y float64
		want Zone
	}{
		{"top band", 200, 210, ZoneTop},
		{"bottom band", 200, 590, ZoneBottom},
		{"left band", 110, 400, ZoneLeft},
		{"right band", 290, 400, ZoneRight},
		{"middle", 200, 400, ZoneNone},
		{"outside", 50, 50, ZoneNone},
		{"top-left corner", 110, 210, ZoneTop},
		{"bottom-right corner", 290, 590, ZoneBottom},
		{"left band outer edge", 100, 400, ZoneLeft},
		{"left band inner edge", 150, 400, ZoneNone},
		{"top band inner edge", 200, 300, ZoneNone},
		{"bottom band outer edge", 200, 600, ZoneNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := z.Hit(tt.x, tt.y); got != tt.want {
				t.Errorf("Hit(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBorders(t *testing.T) {
	b := NewBorders(Vec2{1000, 800})
	if b.Left != 250 || b.Right != 750 || b.Top != 200 || b.Bottom != 600 {
		t.Fatalf("borders = %+v", b)
	}

	if !b.BeyondLeft(Vec2{249, 400}) || b.BeyondLeft(Vec2{250, 400}) {
		t.Error("left border is exclusive")
	}
	if !b.BeyondRight(Vec2{751, 400}) || b.BeyondRight(Vec2{750, 400}) {
		t.Error("right border is exclusive")
	}
	if !b.BeyondTop(Vec2{500, 199}) || !b.BeyondBottom(Vec2{500, 601}) {
		t.Error("vertical borders not detected")
	}
}

func TestScrollProgress(t *testing.T) {
	b := NewBorders(Vec2{1000, 800})

	tests := []struct {
		name   string
		center Vec2
		px, py float64
	}{
		{"rest", Vec2{500, 400}, 0, 0},
		{"left border", Vec2{250, 400}, -1, 0},
		{"past left", Vec2{-300, 400}, -1, 0},
		{"past right", Vec2{5000, 400}, 1, 0},
		{"halfway right", Vec2{625, 400}, 0.5, 0},
		{"past top", Vec2{500, 0}, 0, -1},
		{"quarter down", Vec2{500, 500}, 0, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := b.ScrollProgress(tt.center)
			assertNear(t, "px", px, tt.px)
			assertNear(t, "py", py, tt.py)
		})
	}
}

func TestScrollProgressMonotonic(t *testing.T) {
	b := NewBorders(Vec2{480, 720})
	prev := -2.0
	for x := -100.0; x <= 600; x += 7 {
		px, _ := b.ScrollProgress(Vec2{x, 360})
		if px < prev {
			t.Fatalf("progress decreased at x=%v: %v < %v", x, px, prev)
		}
		if px < -1 || px > 1 {
			t.Fatalf("progress %v out of range at x=%v", px, x)
		}
		prev = px
	}
}

func TestRectContainsHalfOpen(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Contains(0, 0) || !r.Contains(9.999, 9.999) {
		t.Error("top-left edges should be inside")
	}
	if r.Contains(10, 5) || r.Contains(5, 10) {
		t.Error("right and bottom edges should be outside")
	}
}
