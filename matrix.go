package vellum

import "math"

// Matrix is a 2D affine transformation matrix.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// A point (x, y) maps to (a*x + c*y + tx, b*x + d*y + ty).
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// RotateDegrees returns a clockwise (y-down) rotation matrix for the given
// angle in degrees. Multiples of 90 produce exact matrices.
func RotateDegrees(degrees float64) Matrix {
	sin, cos := sincosDegrees(degrees)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// sincosDegrees is math.Sincos in degrees, exact at multiples of 90.
func sincosDegrees(degrees float64) (sin, cos float64) {
	d := NormalizeDegrees(degrees)
	switch d {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case 180:
		return 0, -1
	case 270:
		return -1, 0
	}
	return math.Sincos(d * math.Pi / 180)
}

// Multiply returns m * o: the result applies o first, then m.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Invert returns the inverse of m. ok is false and the identity is returned
// when m is singular (determinant ≈ 0).
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Determinant()
	if det > -1e-12 && det < 1e-12 {
		return Identity(), false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// TransformPoint applies the matrix to a point.
func (m Matrix) TransformPoint(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// TransformVector applies the linear part of the matrix to a direction or
// size. Translation is ignored.
func (m Matrix) TransformVector(v Vec2) Vec2 {
	return Vec2{m[0]*v.X + m[2]*v.Y, m[1]*v.X + m[3]*v.Y}
}

// TransformPoints returns a new slice with every point transformed.
func (m Matrix) TransformPoints(pts []Vec2) []Vec2 {
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// IsAxisAligned reports whether m maps the x and y axes onto the x and y axes
// (in either order), i.e. it has no rotation other than multiples of 90.
func (m Matrix) IsAxisAligned() bool {
	near := func(v float64) bool { return math.Abs(v) <= FloatTolerance }
	return (near(m[1]) && near(m[2])) || (near(m[0]) && near(m[3]))
}

// ApproxEqual reports whether every element of m and o differs by at most tol.
func (m Matrix) ApproxEqual(o Matrix, tol float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > tol {
			return false
		}
	}
	return true
}
