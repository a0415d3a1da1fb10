package analysis

import (
	"math"

	"github.com/fairwaylabs/swingsight/internal/pose"
)

// PhasePoint is one step of a per-phase breakdown: how much of a quantity a
// swing phase carried and for how long.
type PhasePoint struct {
	Phase      Phase   `json:"phase"`
	Magnitude  float64 `json:"magnitude"`
	DurationMs float64 `json:"duration_ms"`
}

// PowerMetrics aggregates the power estimates for one frame of a swing.
type PowerMetrics struct {
	// TotalPower sums mass * acceleration * velocity over the tracked
	// segments, in the engine's normalized units.
	TotalPower float64 `json:"total_power"`

	// PeakPower is the highest single-segment velocity observed.
	PeakPower float64 `json:"peak_power"`

	// TransferEfficiency is the fraction of total segment velocity carried
	// by the hands, in [0,1].
	TransferEfficiency float64 `json:"transfer_efficiency"`

	// RotationalPower estimates 0.5 * I * w^2 from shoulder-line rotation.
	RotationalPower float64 `json:"rotational_power"`

	// LinearPower estimates 0.5 * m * v^2 from hand speed.
	LinearPower float64 `json:"linear_power"`

	// Sequence breaks total power across the swing phases.
	Sequence []PhasePoint `json:"sequence"`
}

// powerPhaseShares models how total power distributes across the swing.
// The downswing carries most of it.
var powerPhaseShares = []struct {
	phase    Phase
	share    float64
	duration float64
}{
	{PhaseBackswing, 0.15, optimalBackswingMs},
	{PhaseTransition, 0.10, optimalTransitionMs},
	{PhaseDownswing, 0.55, optimalDownswingMs},
	{PhaseImpact, 0.20, optimalImpactMs},
}

// Power derives the power metrics for the current frame. Acceleration is
// estimated by first-differencing two consecutive velocity samples, which
// needs two frames of history; with less, acceleration terms are zero and
// only the velocity-based metrics remain.
func (a *Analyzer) Power(frame *pose.Frame, hist *pose.History) PowerMetrics {
	vels := a.SegmentVelocities(frame, hist)
	accels := a.segmentAccelerations(frame, hist, vels)

	var m PowerMetrics
	var sumVel float64
	for _, s := range optimalOrder {
		v := vels[s]
		sumVel += v
		if v > m.PeakPower {
			m.PeakPower = v
		}
		m.TotalPower += a.cfg.BodyMassKg * math.Abs(accels[s]) * v
	}

	if sumVel > 0 {
		m.TransferEfficiency = clamp01(vels[SegmentLeadArm] / sumVel)
	}

	m.RotationalPower = a.rotationalPower(frame, hist)
	m.LinearPower = 0.5 * a.cfg.BodyMassKg * vels[SegmentLeadArm] * vels[SegmentLeadArm]

	m.Sequence = make([]PhasePoint, 0, len(powerPhaseShares))
	for _, p := range powerPhaseShares {
		m.Sequence = append(m.Sequence, PhasePoint{
			Phase:      p.phase,
			Magnitude:  m.TotalPower * p.share,
			DurationMs: p.duration,
		})
	}

	return m
}

// segmentAccelerations first-differences the two most recent velocity
// samples per segment. It returns zeros when history is too short for a
// stable estimate.
func (a *Analyzer) segmentAccelerations(frame *pose.Frame, hist *pose.History, vels map[BodySegment]float64) map[BodySegment]float64 {
	out := make(map[BodySegment]float64, numSegments)
	if hist.Len() < 2 {
		for _, s := range optimalOrder {
			out[s] = 0
		}
		return out
	}

	p2 := hist.At(hist.Len() - 2)
	p1 := hist.At(hist.Len() - 1)
	for _, s := range optimalOrder {
		prevVel := a.segmentVelocityBetween(&p2, &p1, s)
		out[s] = (vels[s] - prevVel) * a.cfg.FrameRate
	}
	return out
}

// rotationalPower estimates rotational power from the angular velocity of
// the shoulder line between the current and previous frame, with the moment
// of inertia approximated from body mass.
func (a *Analyzer) rotationalPower(frame *pose.Frame, hist *pose.History) float64 {
	prev, ok := hist.Latest()
	if !ok {
		return 0
	}

	curAngle := pose.SegmentAngle(frame.Points[pose.LeftShoulder], frame.Points[pose.RightShoulder])
	prevAngle := pose.SegmentAngle(prev.Points[pose.LeftShoulder], prev.Points[pose.RightShoulder])

	// Angular velocity in rad/s.
	omega := (curAngle - prevAngle) * math.Pi / 180 * a.cfg.FrameRate
	inertia := a.cfg.BodyMassKg * inertiaFactor
	return 0.5 * inertia * omega * omega
}
