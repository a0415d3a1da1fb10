package analysis

import "github.com/fairwaylabs/swingsight/internal/pose"

// EnergyTransfer aggregates the mechanical-energy estimates for one frame.
type EnergyTransfer struct {
	// Kinetic sums 0.5 * m * v^2 over the tracked segments.
	Kinetic float64 `json:"kinetic"`

	// Potential is m * g * h from the center-of-mass height.
	Potential float64 `json:"potential"`

	// Loss is the assumed fixed fraction of total energy lost.
	Loss float64 `json:"loss"`

	// Efficiency is 1 - loss/kinetic, clamped to [0,1]; zero when there is
	// no kinetic energy to transfer.
	Efficiency float64 `json:"efficiency"`

	// Sequence breaks kinetic energy across the swing phases.
	Sequence []PhasePoint `json:"sequence"`
}

// Energy derives the energy metrics for the current frame.
func (a *Analyzer) Energy(frame *pose.Frame, hist *pose.History) EnergyTransfer {
	vels := a.SegmentVelocities(frame, hist)

	var e EnergyTransfer
	for _, s := range optimalOrder {
		e.Kinetic += 0.5 * a.cfg.BodyMassKg * vels[s] * vels[s]
	}

	e.Potential = a.cfg.BodyMassKg * gravity * centerOfMassHeight(frame)
	e.Loss = energyLossFraction * (e.Kinetic + e.Potential)
	if e.Kinetic > 0 {
		e.Efficiency = clamp01(1 - e.Loss/e.Kinetic)
	}

	e.Sequence = make([]PhasePoint, 0, len(powerPhaseShares))
	for _, p := range powerPhaseShares {
		e.Sequence = append(e.Sequence, PhasePoint{
			Phase:      p.phase,
			Magnitude:  e.Kinetic * p.share,
			DurationMs: p.duration,
		})
	}

	return e
}

// centerOfMass approximates the body's center of mass as the average of the
// shoulder and hip landmark positions.
func centerOfMass(f *pose.Frame) pose.Landmark {
	return pose.Midpoint(f.ShoulderMid(), f.HipMid())
}

// centerOfMassHeight converts the center-of-mass image position into a
// height above the frame bottom. Image Y grows downward, so height is the
// complement, floored at zero for poses partially out of frame.
func centerOfMassHeight(f *pose.Frame) float64 {
	h := 1 - centerOfMass(f).Y
	if h < 0 {
		return 0
	}
	return h
}
