package fling

import "math"

// Line is a least-squares fit y = Slope*x + Intercept.
//
// A fit over points that share one x (or over fewer than two points) has no
// defined slope. Vertical is then set, Slope holds +Inf and Intercept holds
// the mean y, which At returns for every x.
type Line struct {
	Slope     float64
	Intercept float64
	Vertical  bool
}

// At evaluates the line at x. It never returns NaN for finite inputs.
func (l Line) At(x float64) float64 {
	if l.Vertical {
		return l.Intercept
	}
	return l.Slope*x + l.Intercept
}

// Fit computes the ordinary least-squares line of ys against xs. Extra
// elements of the longer slice are ignored.
func Fit(xs, ys []float64) Line {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return Line{Slope: math.Inf(1), Vertical: true}
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	// Centered sums keep precision when the points sit far from the origin.
	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}
	if sxx < 1e-12 {
		return Line{Slope: math.Inf(1), Intercept: meanY, Vertical: true}
	}

	slope := sxy / sxx
	return Line{Slope: slope, Intercept: meanY - slope*meanX}
}

// FitPoints is Fit over a slice of points.
func FitPoints(pts []Vec2) Line {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return Fit(xs, ys)
}
