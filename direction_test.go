package fling

import "testing"

func TestAngle(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"east", 0, 0, 1, 0, 0},
		{"north", 0, 0, 0, 1, 90},
		{"west", 0, 0, -1, 0, 180},
		{"south", 0, 0, 0, -1, 270},
		{"north-east", 1, 1, 2, 2, 45},
		{"south-east", 0, 0, 1, -1, 315},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, "angle", Angle(tt.x1, tt.y1, tt.x2, tt.y2), tt.want)
		})
	}
}

func TestDirectionFromAngleBoundaries(t *testing.T) {
	tests := []struct {
		deg  float64
		want Direction
	}{
		{0, DirectionRight},
		{44.999, DirectionRight},
		{45, DirectionUp},
		{134.999, DirectionUp},
		{135, DirectionLeft},
		{224.999, DirectionLeft},
		{225, DirectionDown},
		{314.999, DirectionDown},
		{315, DirectionRight},
		{359.999, DirectionRight},
	}
	for _, tt := range tests {
		if got := DirectionFromAngle(tt.deg); got != tt.want {
			t.Errorf("DirectionFromAngle(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestClassifyCardinal(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
	}{
		{10, 0, DirectionRight},
		{0, 10, DirectionUp},
		{-10, 0, DirectionLeft},
		{0, -10, DirectionDown},
		{10, 3, DirectionRight},
		{-3, 10, DirectionUp},
	}
	for _, tt := range tests {
		if got := Classify(5, 5, 5+tt.dx, 5+tt.dy); got != tt.want {
			t.Errorf("Classify(d=%v,%v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionLeft.String() != "left" || Direction(99).String() != "unknown" {
		t.Errorf("unexpected names %q %q", DirectionLeft, Direction(99))
	}
}
