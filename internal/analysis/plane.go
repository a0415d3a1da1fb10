package analysis

import (
	"math"

	"github.com/fairwaylabs/swingsight/internal/pose"
)

// Swing-plane, attack-angle and club-path calculations. Each needs at least
// planeMinFrames of wrist history to be meaningful and returns zero below
// that threshold.

// AttackAngle returns the vertical angle in degrees of the hands' motion
// between the previous and current frame, positive for an upward strike,
// clamped to the plausible [-15, 15] range.
func (a *Analyzer) AttackAngle(frame *pose.Frame, hist *pose.History) float64 {
	if hist.Len() < planeMinFrames {
		return 0
	}

	prev, _ := hist.Latest()
	cur := frame.WristMid()
	was := prev.WristMid()

	// Image Y grows downward; rising hands mean a positive attack angle.
	up := was.Y - cur.Y
	forward := math.Abs(cur.X - was.X)
	angle := math.Atan2(up, forward) * 180 / math.Pi

	return clamp(angle, -maxAttackAngleDeg, maxAttackAngleDeg)
}

// SwingPlane returns the angle in degrees of the shoulder-to-hands line in
// the vertical/depth plane, clamped to [-90, 90].
func (a *Analyzer) SwingPlane(frame *pose.Frame, hist *pose.History) float64 {
	if hist.Len() < planeMinFrames {
		return 0
	}

	wrist := frame.WristMid()
	shoulder := frame.ShoulderMid()

	angle := math.Atan2(wrist.Y-shoulder.Y, wrist.Z-shoulder.Z) * 180 / math.Pi
	return clamp(angle, -maxSwingPlaneDeg, maxSwingPlaneDeg)
}

// ClubPath returns the horizontal/depth direction in degrees of the hands'
// motion relative to the configured target line. Unconstrained, but valid
// swings stay within roughly +-45 degrees. Positive is in-to-out.
func (a *Analyzer) ClubPath(frame *pose.Frame, hist *pose.History) float64 {
	if hist.Len() < planeMinFrames {
		return 0
	}

	prev, _ := hist.Latest()
	cur := frame.WristMid()
	was := prev.WristMid()

	angle := math.Atan2(cur.Z-was.Z, cur.X-was.X) * 180 / math.Pi
	return angle - a.cfg.TargetLineAngle
}
