package analysis

import "github.com/fairwaylabs/swingsight/internal/pose"

// Phase labels one frame of a swing.
type Phase string

const (
	PhaseSetup         Phase = "SETUP"
	PhaseBackswing     Phase = "BACKSWING"
	PhaseTransition    Phase = "TRANSITION"
	PhaseDownswing     Phase = "DOWNSWING"
	PhaseImpact        Phase = "IMPACT"
	PhaseFollowThrough Phase = "FOLLOW_THROUGH"
	PhaseFinish        Phase = "FINISH"
)

// Phase detection thresholds, in the engine's normalized units.
const (
	// phaseRiseVelocity is the upward hand speed that starts a backswing.
	phaseRiseVelocity = 150.0
	// phaseDropVelocity is the downward hand speed that starts the
	// downswing proper.
	phaseDropVelocity = 300.0
	// phaseImpactBand is how close to setup height the hands must return
	// for impact, in normalized image units.
	phaseImpactBand = 0.05
	// phaseRestVelocity is the hand speed below which the finish has
	// settled.
	phaseRestVelocity = 80.0
	// phaseRestFrames is how many consecutive slow frames end the swing.
	phaseRestFrames = 4
)

// PhaseDetector classifies each frame into a swing phase from hand-midpoint
// kinematics. It is a small state machine that only advances through the
// phases in swing order; the resulting frame-labeled sequence feeds the
// timing analyzer.
type PhaseDetector struct {
	cfg     Config
	current Phase

	setupY     float64
	hasSetup   bool
	restStreak int
}

// NewPhaseDetector creates a detector starting at setup.
func NewPhaseDetector(cfg Config) *PhaseDetector {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = DefaultConfig().FrameRate
	}
	return &PhaseDetector{cfg: cfg, current: PhaseSetup}
}

// Current returns the phase assigned to the last advanced frame.
func (d *PhaseDetector) Current() Phase {
	return d.current
}

// Reset returns the detector to setup for the next swing.
func (d *PhaseDetector) Reset() {
	d.current = PhaseSetup
	d.hasSetup = false
	d.restStreak = 0
}

// Advance classifies the next frame and returns its phase.
func (d *PhaseDetector) Advance(frame *pose.Frame, hist *pose.History) Phase {
	wrist := frame.WristMid()

	prev, ok := hist.Latest()
	if !ok {
		d.setupY = wrist.Y
		d.hasSetup = true
		d.current = PhaseSetup
		return d.current
	}

	// Vertical hand speed, positive upward, in the engine's velocity scale.
	vy := (prev.WristMid().Y - wrist.Y) * d.cfg.FrameRate * velocityScale
	speed := pose.Distance(prev.WristMid(), wrist) * d.cfg.FrameRate * velocityScale

	switch d.current {
	case PhaseSetup:
		if !d.hasSetup {
			d.setupY = wrist.Y
			d.hasSetup = true
		}
		if vy > phaseRiseVelocity {
			d.current = PhaseBackswing
		}

	case PhaseBackswing:
		if vy < 0 {
			d.current = PhaseTransition
		}

	case PhaseTransition:
		if vy < -phaseDropVelocity {
			d.current = PhaseDownswing
		}

	case PhaseDownswing:
		if wrist.Y >= d.setupY-phaseImpactBand {
			d.current = PhaseImpact
		}

	case PhaseImpact:
		if vy > 0 {
			d.current = PhaseFollowThrough
		}

	case PhaseFollowThrough:
		if speed < phaseRestVelocity {
			d.restStreak++
			if d.restStreak >= phaseRestFrames {
				d.current = PhaseFinish
			}
		} else {
			d.restStreak = 0
		}
	}

	return d.current
}
