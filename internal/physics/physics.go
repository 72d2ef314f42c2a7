// Package physics provides the vector math used for ship movement and
// proximity checks.
package physics

import "math"

// Vec2 is a point or direction in screen space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns v scaled to unit length. The zero vector maps to itself
// so callers never see NaN.
func Normalize(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Within reports whether a and b are strictly closer than radius.
func Within(a, b Vec2, radius float64) bool {
	d := a.Sub(b)
	return d.X*d.X+d.Y*d.Y < radius*radius
}

// Heading converts a direction into sprite rotation in degrees. The sprite
// art points up, so 90 degrees are added to the screen-space angle.
func Heading(dir Vec2) float64 {
	return math.Atan2(dir.Y, dir.X)*180/math.Pi + 90
}

// Facing returns the rotations of two ships sharing one line of travel:
// the first faces the second, the second faces the opposite way.
func Facing(from, to Vec2) (float64, float64) {
	a := Heading(Normalize(to.Sub(from)))
	return a, a + 180
}
