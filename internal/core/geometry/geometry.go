// Package geometry maps face angles to pixel positions.
//
// Angles are fractions of a full turn measured clockwise from 12 o'clock,
// so 0.25 points at 3 o'clock and 1.0 wraps back to 0.
package geometry

import "math"

// Point is a pixel position on the display.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the geometric center of the rectangle.
func (rect Rect) Center() Point {
	return Point{X: rect.X + rect.Width/2, Y: rect.Y + rect.Height/2}
}

// PointAt returns the point reached from center by travelling radius
// pixels in the direction of angle.
func PointAt(center Point, angle float64, radius int) Point {
	radians := Normalize(angle) * 2 * math.Pi
	return Point{
		X: center.X + int(math.Round(math.Sin(radians)*float64(radius))),
		Y: center.Y + int(math.Round(-math.Cos(radians)*float64(radius))),
	}
}

// Normalize wraps an angle into [0, 1).
func Normalize(angle float64) float64 {
	angle = math.Mod(angle, 1)
	if angle < 0 {
		angle++
	}
	return angle
}
