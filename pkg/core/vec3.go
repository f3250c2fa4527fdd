// Package core provides the fixed-precision math primitives, the RNG,
// and the ray/hit types shared by every other package in the tracer.
package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y float32
}

// NewVec2 creates a Vec2.
func NewVec2(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the componentwise sum.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Multiply returns v scaled by s.
func (v Vec2) Multiply(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Vec3 is a 3D vector, used for points, directions and RGB colors alike.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a Vec3.
func NewVec3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns v scaled by a scalar.
func (v Vec3) Multiply(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// MultiplyVec returns the componentwise (Hadamard) product of two vectors.
func (v Vec3) MultiplyVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Negate returns -v.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns |v|^2.
func (v Vec3) LengthSquared() float32 { return v.Dot(v) }

// Length returns |v|.
func (v Vec3) Length() float32 { return float32(math.Sqrt(float64(v.LengthSquared()))) }

// Normalize returns a unit vector in the same direction as v. A zero
// vector normalizes to itself; callers must not rely on this case.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Multiply(1 / l)
}

// MaxComponent returns the largest of the three components (used by
// the Phong sampling-strategy split and Russian-roulette survival
// probability).
func (v Vec3) MaxComponent() float32 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}

// Clamp clamps every component to [lo, hi].
func (v Vec3) Clamp(lo, hi float32) Vec3 {
	clamp1 := func(x float32) float32 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
	return Vec3{clamp1(v.X), clamp1(v.Y), clamp1(v.Z)}
}

// IsFinite reports whether every component is a finite float (not NaN
// or +/-Inf).
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(float64(v.X)) && !math.IsInf(float64(v.X), 0) &&
		!math.IsNaN(float64(v.Y)) && !math.IsInf(float64(v.Y), 0) &&
		!math.IsNaN(float64(v.Z)) && !math.IsInf(float64(v.Z), 0)
}

// Component returns the i-th component (0=X, 1=Y, 2=Z).
func (v Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
