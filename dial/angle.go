package dial

import "math"

// Point is a position on the drawing surface, y increasing downward.
type Point struct {
	X, Y float64
}

// angleFor linearly maps value from [min, max] onto [start, end] degrees.
// The fraction is deliberately not clamped; see Dial.AngleFor.
func angleFor(value, min, max, start, end float64) float64 {
	normalized := (value - min) / (max - min)
	return start + (end-start)*normalized
}

// polar converts a (radius, angle-in-degrees) pair to a cartesian offset
// from the dial center. With a clockwise-positive angle and a y-down
// surface the conventional x = r·cos φ, y = r·sin φ already rotates the
// right way; no sign flip is needed.
func polar(radius, degrees float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: radius * math.Cos(rad),
		Y: radius * math.Sin(rad),
	}
}

// at places a polar coordinate on a surface of the given size by
// translating the center-origin offset to the surface's top-left origin.
func at(radius, degrees, width, height float64) Point {
	p := polar(radius, degrees)
	return Point{
		X: p.X + width/2,
		Y: p.Y + height/2,
	}
}
