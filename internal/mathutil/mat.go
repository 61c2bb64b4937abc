package mathutil

import "math"

// Mat2 is a row-major 2x2 matrix.
type Mat2 [2][2]float64

// Rotation returns the matrix rotating row vectors by theta radians:
//
//	[  cos t   sin t ]
//	[ -sin t   cos t ]
func Rotation(theta float64) Mat2 {
	sin, cos := math.Sincos(theta)
	return Mat2{
		{cos, sin},
		{-sin, cos},
	}
}

// Row returns row i of m as a vector.
func (m Mat2) Row(i int) Vec2 { return Vec2{m[i][0], m[i][1]} }

// Mul returns the matrix product m * n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		{m[0][0]*n[0][0] + m[0][1]*n[1][0], m[0][0]*n[0][1] + m[0][1]*n[1][1]},
		{m[1][0]*n[0][0] + m[1][1]*n[1][0], m[1][0]*n[0][1] + m[1][1]*n[1][1]},
	}
}

// Det returns the determinant of m.
func (m Mat2) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inverse returns the inverse of m, or ok=false when m is singular.
func (m Mat2) Inverse() (inv Mat2, ok bool) {
	det := m.Det()
	if det == 0 {
		return Mat2{}, false
	}
	id := 1 / det
	return Mat2{
		{m[1][1] * id, -m[0][1] * id},
		{-m[1][0] * id, m[0][0] * id},
	}, true
}
