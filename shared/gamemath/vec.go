// Package gamemath holds the pure math shared by the hero systems and the
// movement resolver. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import "math"

// Vec is a point or displacement in world-pixel space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the polar angle of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Round snaps both axes to the nearest integer, ties toward +Inf.
func (v Vec) Round() Vec {
	return Vec{X: roundHalfUp(v.X), Y: roundHalfUp(v.Y)}
}

// Floor returns the integer cell containing v.
func (v Vec) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// FromPolar builds a displacement of length r at angle theta.
func FromPolar(r, theta float64) Vec {
	return Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
