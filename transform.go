package fling

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeCardTransform computes the card-to-screen affine matrix.
// Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-W/2, -H/2) -> Rotate -> Translate(center) -> Translate(container)
func computeCardTransform(c *Card) [6]float64 {
	sin, cos := math.Sincos(c.Degrees * math.Pi / 180)

	px := c.Width / 2
	py := c.Height / 2

	// Rotate the pivot offset, then move the pivot to the card center on screen.
	tx := -cos*px + sin*py
	ty := -sin*px - cos*py
	cx := c.ContainerX + c.X + px
	cy := c.ContainerY + c.Y + py

	return [6]float64{cos, sin, -sin, cos, tx + cx, ty + cy}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
