// Package analysis implements the biomechanical swing-metrics engine:
// a pure per-frame pipeline from body landmarks to golf-swing biomechanics
// (X-Factor, kinematic sequencing, power and energy transfer, ground-force
// estimation, swing plane, consistency and timing).
package analysis

import "math"

// Model constants. These are fixed assumptions of the biomechanical model,
// not tunables: changing them changes the meaning of the scores.
const (
	// gravity is the gravitational acceleration in m/s^2.
	gravity = 9.81

	// inertiaFactor scales body mass into an approximate moment of inertia
	// for rotational power.
	inertiaFactor = 0.4

	// velocityScale converts normalized-distance-per-second velocities into
	// the degrees/sec-equivalent range the metrics are reported in.
	velocityScale = 1000.0

	// energyLossFraction is the fixed fraction of total mechanical energy
	// assumed lost per swing. A simplification: no per-joint damping model.
	energyLossFraction = 0.10

	// maxXFactorDeg is the anatomical limit on shoulder-hip separation.
	// Larger raw values are measurement artifacts and are clipped.
	maxXFactorDeg = 90.0

	// maxAttackAngleDeg bounds the plausible attack-angle range for
	// driver/iron swings.
	maxAttackAngleDeg = 15.0

	// maxSwingPlaneDeg bounds the swing-plane angle.
	maxSwingPlaneDeg = 90.0

	// maxGroundForceRatio caps the resultant ground force at three times
	// body weight before normalizing to a [0,1] index.
	maxGroundForceRatio = 3.0

	// headToleranceNorm is the acceptable head-movement spread in
	// normalized coordinates used to scale spatial consistency.
	headToleranceNorm = 0.1

	// xFactorToleranceDeg is the X-Factor spread in degrees used to scale
	// kinematic consistency.
	xFactorToleranceDeg = 10.0

	// trendThreshold is the consistency change required before a trend is
	// reported as improving or declining rather than stable.
	trendThreshold = 0.05

	// sequenceMinFrames is the minimum window for kinematic sequencing.
	sequenceMinFrames = 5

	// planeMinFrames is the minimum wrist-history length for swing-plane,
	// attack-angle and club-path calculations.
	planeMinFrames = 3

	// consistencyMinSwings is the minimum number of historical swings
	// before consistency statistics are meaningful.
	consistencyMinSwings = 5
)

// Reference phase durations in milliseconds for timing efficiency, taken
// from commonly taught tour tempo targets.
const (
	optimalBackswingMs  = 800.0
	optimalTransitionMs = 200.0
	optimalDownswingMs  = 400.0
	optimalImpactMs     = 50.0
)

// Config holds the engine tunables. All calculators read it immutably;
// construct once and share.
type Config struct {
	// FrameRate is the landmark sampling rate in frames per second.
	FrameRate float64

	// BodyMassKg is the assumed athlete mass used by the power, energy and
	// ground-force models.
	BodyMassKg float64

	// ClubVelocityFactor scales wrist velocity into the club-head proxy
	// velocity. The club head moves faster than the hands roughly in
	// proportion to the extra lever length.
	ClubVelocityFactor float64

	// TargetLineAngle is the reference angle in degrees for club-path
	// calculations. Zero means the camera is square to the target line.
	TargetLineAngle float64
}

// DefaultConfig returns a Config with the engine's documented defaults.
func DefaultConfig() Config {
	return Config{
		FrameRate:          30,
		BodyMassKg:         75,
		ClubVelocityFactor: 1.5,
		TargetLineAngle:    0,
	}
}

// Analyzer computes swing metrics from landmark frames. It holds only the
// immutable configuration and is safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an Analyzer with the given configuration.
// Non-positive frame rate or mass fall back to the defaults.
func NewAnalyzer(cfg Config) *Analyzer {
	def := DefaultConfig()
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = def.FrameRate
	}
	if cfg.BodyMassKg <= 0 {
		cfg.BodyMassKg = def.BodyMassKg
	}
	if cfg.ClubVelocityFactor <= 0 {
		cfg.ClubVelocityFactor = def.ClubVelocityFactor
	}
	return &Analyzer{cfg: cfg}
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// clamp01 bounds a score to [0,1].
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
