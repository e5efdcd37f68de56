package core

import "math"

// Affine is a 2D affine transform. A point (x, y) maps to
// (A*x + C*y + E, B*x + D*y + F).
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the transform that leaves points unchanged.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Scaling returns a transform that scales by (sx, sy).
func Scaling(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Translation returns a transform that moves points by (dx, dy).
func Translation(dx, dy float64) Affine {
	return Affine{A: 1, D: 1, E: dx, F: dy}
}

// Rotation returns a transform that turns points clockwise on a y-down
// screen by the given radians.
func Rotation(radians float64) Affine {
	sin, cos := math.Sincos(radians)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// Then returns the transform that applies n first and m second.
func (m Affine) Then(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply maps a point through the transform.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Invert returns the inverse transform. ok is false for degenerate transforms.
func (m Affine) Invert() (inv Affine, ok bool) {
	det := m.A*m.D - m.B*m.C
	if math.Abs(det) < 1e-12 {
		return Affine{}, false
	}
	return Affine{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}

// Rotated reports whether the transform turns axes, beyond scaling.
func (m Affine) Rotated() bool {
	return math.Abs(m.B) > 1e-9 || math.Abs(m.C) > 1e-9
}
