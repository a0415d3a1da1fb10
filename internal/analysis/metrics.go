package analysis

import "github.com/fairwaylabs/swingsight/internal/pose"

// SwingMetrics is the full per-frame metric snapshot. It is a plain
// serializable value: created once per analyzed frame, never mutated, and
// later consistency analysis consumes lists of them by value.
type SwingMetrics struct {
	TimestampMs int64 `json:"timestamp_ms"`

	// XFactor is the shoulder-hip separation for this frame; Stretch is
	// the maximum separation seen over the swing so far.
	XFactor        float64 `json:"x_factor"`
	XFactorStretch float64 `json:"x_factor_stretch"`

	Sequence KinematicSequence `json:"sequence"`
	Power    PowerMetrics      `json:"power"`
	Energy   EnergyTransfer    `json:"energy"`
	Ground   GroundForce       `json:"ground"`

	SwingPlane  float64 `json:"swing_plane"`
	AttackAngle float64 `json:"attack_angle"`
	ClubPath    float64 `json:"club_path"`

	// HeadPosition is the lateral head position, kept for spatial
	// consistency scoring across swings.
	HeadPosition float64 `json:"head_position"`

	Timing      Timing      `json:"timing"`
	Consistency Consistency `json:"consistency"`
}

// Analyze computes the full metric snapshot for one frame. The caller
// supplies the rolling frame history (oldest first, not yet including this
// frame), the previously computed metrics of past swings, and the phase
// labels recorded for the swing in progress. Each sub-calculator applies
// its own insufficient-data fallback, so Analyze is total: any valid frame
// yields a defined snapshot.
func (a *Analyzer) Analyze(frame *pose.Frame, hist *pose.History, past []SwingMetrics, phases []Phase) SwingMetrics {
	m := SwingMetrics{
		TimestampMs:  frame.TimestampMs,
		XFactor:      a.XFactor(frame),
		Sequence:     a.KinematicSequence(frame, hist),
		Power:        a.Power(frame, hist),
		Energy:       a.Energy(frame, hist),
		Ground:       a.GroundForce(frame, hist),
		SwingPlane:   a.SwingPlane(frame, hist),
		AttackAngle:  a.AttackAngle(frame, hist),
		ClubPath:     a.ClubPath(frame, hist),
		HeadPosition: frame.Points[pose.Nose].X,
		Timing:       a.Timing(phases),
		Consistency:  a.Consistency(past),
	}

	xFactors := make([]float64, 0, hist.Len()+1)
	for _, f := range hist.Frames() {
		xFactors = append(xFactors, a.XFactor(&f))
	}
	xFactors = append(xFactors, m.XFactor)
	m.XFactorStretch = XFactorStretch(xFactors)

	return m
}
