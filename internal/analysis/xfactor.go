package analysis

import (
	"math"

	"github.com/fairwaylabs/swingsight/internal/pose"
)

// XFactor returns the angular separation in degrees between the shoulder
// line and the hip line of one frame, clamped to the anatomical range
// [0, 90]. Raw separation beyond 90 degrees is a measurement artifact and
// is clipped rather than rejected.
func (a *Analyzer) XFactor(frame *pose.Frame) float64 {
	shoulder := pose.SegmentAngle(frame.Points[pose.LeftShoulder], frame.Points[pose.RightShoulder])
	hip := pose.SegmentAngle(frame.Points[pose.LeftHip], frame.Points[pose.RightHip])

	sep := math.Abs(shoulder - hip)
	// atan2 wraps at 180; take the smaller of the two turn directions.
	if sep > 180 {
		sep = 360 - sep
	}
	return clamp(sep, 0, maxXFactorDeg)
}

// XFactorStretch returns the maximum X-Factor observed across a swing,
// given the per-frame values recorded over its history. An empty history
// yields zero.
func XFactorStretch(xFactors []float64) float64 {
	var max float64
	for _, v := range xFactors {
		if v > max {
			max = v
		}
	}
	return max
}
