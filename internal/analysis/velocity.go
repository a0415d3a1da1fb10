package analysis

import "github.com/fairwaylabs/swingsight/internal/pose"

// SegmentVelocities estimates the instantaneous velocity magnitude of each
// tracked body segment by finite difference between the current frame and
// the most recent frame in history. Velocities are reported in the engine's
// degrees/sec-equivalent scale. With an empty history every segment
// velocity is zero.
func (a *Analyzer) SegmentVelocities(frame *pose.Frame, hist *pose.History) map[BodySegment]float64 {
	out := make(map[BodySegment]float64, numSegments)

	prev, ok := hist.Latest()
	if !ok {
		for _, s := range optimalOrder {
			out[s] = 0
		}
		return out
	}

	for _, s := range optimalOrder {
		out[s] = a.segmentVelocityBetween(&prev, frame, s)
	}
	return out
}

// segmentVelocityBetween returns the velocity of one segment between two
// consecutive frames: displacement of the tracked point divided by the
// frame interval. The club proxy is scaled by the configured club factor
// since the club head travels farther than the hands per unit rotation.
func (a *Analyzer) segmentVelocityBetween(prev, cur *pose.Frame, s BodySegment) float64 {
	v := pose.Distance(segmentPoint(prev, s), segmentPoint(cur, s)) * a.cfg.FrameRate * velocityScale
	if s == SegmentClub {
		v *= a.cfg.ClubVelocityFactor
	}
	return v
}
