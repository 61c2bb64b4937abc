package mathutil

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// MulMat treats v as a row vector and returns v * m.
func (v Vec2) MulMat(m Mat2) Vec2 {
	return Vec2{
		X: v.X*m[0][0] + v.Y*m[1][0],
		Y: v.X*m[0][1] + v.Y*m[1][1],
	}
}
