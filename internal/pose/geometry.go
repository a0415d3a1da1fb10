package pose

import "math"

// Geometry primitives over landmarks. All functions are pure and defined for
// any finite input; NaN coordinates propagate as NaN since confidence
// filtering is the caller's responsibility.

// Midpoint returns the component-wise average of two landmarks.
// The visibility of the result is the lower of the two inputs.
func Midpoint(a, b Landmark) Landmark {
	return Landmark{
		X:          (a.X + b.X) / 2,
		Y:          (a.Y + b.Y) / 2,
		Z:          (a.Z + b.Z) / 2,
		Visibility: math.Min(a.Visibility, b.Visibility),
	}
}

// SegmentAngle returns the angle in degrees of the line from a to b relative
// to horizontal, in (-180, 180].
func SegmentAngle(a, b Landmark) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}

// Distance returns the Euclidean distance between two landmarks in 3D.
func Distance(a, b Landmark) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
