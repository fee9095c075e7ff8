package core

import "math"

// Vec2 is a 2D vector of float64 components used for positions, velocities
// and forces in world space.
type Vec2 struct {
	X, Y float64
}

// V returns a Vec2 with the given components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	return v.Sub(o).LenSq()
}

// Rotate returns v rotated by angle radians around the origin.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Heading returns the unit vector for a rotation angle. Angle 0 points along
// +Y, matching the craft's thrust direction (sin r, cos r).
func Heading(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: sin, Y: cos}
}
