package analysis

import (
	"math"

	"github.com/fairwaylabs/swingsight/internal/pose"
)

// GroundForce estimates ground reaction force and foot loading from body
// landmark motion. True force-plate data is not available from vision
// alone, so the weight distribution is a relative leg-geometry proxy, not a
// physical measurement.
type GroundForce struct {
	// Vertical is m * (g + a) from center-of-mass vertical acceleration;
	// static body weight with no history.
	Vertical float64 `json:"vertical"`

	// Horizontal is m * a from lateral center-of-mass acceleration.
	Horizontal float64 `json:"horizontal"`

	// WeightLeft and WeightRight are the left/right load shares in [0,1],
	// summing to 1.
	WeightLeft  float64 `json:"weight_left"`
	WeightRight float64 `json:"weight_right"`

	// Index normalizes the resultant force against body weight into [0,1].
	Index float64 `json:"index"`
}

// GroundForce estimates ground reaction forces for the current frame.
// Vertical and horizontal accelerations are second differences of the
// center-of-mass position over the frame interval, which needs two frames
// of history; with less, the vertical force defaults to static weight.
func (a *Analyzer) GroundForce(frame *pose.Frame, hist *pose.History) GroundForce {
	mass := a.cfg.BodyMassKg

	var accV, accH float64
	if hist.Len() >= 2 {
		c0 := centerOfMass(frame)
		c1 := centerOfMass(framePtr(hist.At(hist.Len() - 1)))
		c2 := centerOfMass(framePtr(hist.At(hist.Len() - 2)))

		rate2 := a.cfg.FrameRate * a.cfg.FrameRate
		// Height is the complement of image Y, so the sign flips.
		accV = -((c0.Y - 2*c1.Y + c2.Y) * rate2)
		accH = (c0.X - 2*c1.X + c2.X) * rate2
	}

	g := GroundForce{
		Vertical:   mass * (gravity + accV),
		Horizontal: mass * accH,
	}

	left := legStability(frame, pose.LeftHip, pose.LeftKnee, pose.LeftAnkle)
	right := legStability(frame, pose.RightHip, pose.RightKnee, pose.RightAnkle)
	if total := left + right; total > 0 {
		g.WeightLeft = left / total
		g.WeightRight = right / total
	} else {
		g.WeightLeft = 0.5
		g.WeightRight = 0.5
	}

	resultant := math.Sqrt(g.Vertical*g.Vertical + g.Horizontal*g.Horizontal)
	g.Index = clamp(resultant/(mass*gravity), 0, maxGroundForceRatio) / maxGroundForceRatio

	return g
}

// legStability sums the hip-knee and knee-ankle segment lengths of one leg.
// A longer, more extended leg is carrying more of the load — a deliberately
// simplified proxy for force-plate pressure.
func legStability(f *pose.Frame, hip, knee, ankle int) float64 {
	return pose.Distance(f.Points[hip], f.Points[knee]) +
		pose.Distance(f.Points[knee], f.Points[ankle])
}

// framePtr lets history values feed helpers that take frame pointers.
func framePtr(f pose.Frame) *pose.Frame {
	return &f
}
