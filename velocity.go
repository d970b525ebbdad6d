package fling

import "time"

const (
	velocityHistory       = 20
	defaultVelocityWindow = 100 * time.Millisecond
)

type velocitySample struct {
	pos Vec2
	at  time.Time
}

// VelocityTracker estimates pointer velocity in pixels per second from the
// most recent samples. It fits position against time by least squares over a
// short window, which smooths out jittery touch input.
type VelocityTracker struct {
	// Window limits the samples used to those this close to the newest
	// one. Zero selects 100ms.
	Window time.Duration

	samples [velocityHistory]velocitySample
	head    int // index of the next write
	count   int
}

// Clear drops all samples.
func (v *VelocityTracker) Clear() {
	v.head = 0
	v.count = 0
}

// Add records a pointer position at time t. NaN positions are ignored.
func (v *VelocityTracker) Add(p Vec2, t time.Time) {
	if p.IsNaN() {
		return
	}
	v.samples[v.head] = velocitySample{pos: p, at: t}
	v.head = (v.head + 1) % velocityHistory
	if v.count < velocityHistory {
		v.count++
	}
}

// Velocity returns the estimated velocity. Fewer than two samples inside
// the window, or samples that all share one timestamp, yield zero.
func (v *VelocityTracker) Velocity() Vec2 {
	if v.count < 2 {
		return Vec2{}
	}
	window := v.Window
	if window == 0 {
		window = defaultVelocityWindow
	}

	newest := v.samples[(v.head-1+velocityHistory)%velocityHistory]
	ts := make([]float64, 0, v.count)
	xs := make([]float64, 0, v.count)
	ys := make([]float64, 0, v.count)
	for i := 0; i < v.count; i++ {
		s := v.samples[(v.head-1-i+2*velocityHistory)%velocityHistory]
		age := newest.at.Sub(s.at)
		if age > window || age < 0 {
			break
		}
		ts = append(ts, -age.Seconds())
		xs = append(xs, s.pos.X)
		ys = append(ys, s.pos.Y)
	}

	lx := Fit(ts, xs)
	ly := Fit(ts, ys)
	if lx.Vertical || ly.Vertical {
		return Vec2{}
	}
	return Vec2{lx.Slope, ly.Slope}
}
