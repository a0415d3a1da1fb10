package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TrendDirection says which way swing consistency is moving.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendDeclining TrendDirection = "declining"
)

// Trend compares recent consistency against the longer historical record.
type Trend struct {
	Direction  TrendDirection `json:"direction"`
	Rate       float64        `json:"rate"`
	Recent     float64        `json:"recent"`
	Historical float64        `json:"historical"`
}

// Consistency is a snapshot of swing-to-swing repeatability over a rolling
// window of historical metrics.
type Consistency struct {
	// Overall averages the three component scores, in [0,1].
	Overall float64 `json:"overall"`

	// Temporal scores tempo stability.
	Temporal float64 `json:"temporal"`

	// Spatial scores head stillness across swings.
	Spatial float64 `json:"spatial"`

	// Kinematic scores X-Factor stability.
	Kinematic float64 `json:"kinematic"`

	// Repeatability scores swing-to-swing X-Factor drift.
	Repeatability float64 `json:"repeatability"`

	// Deviations maps metric names to their standard deviation across the
	// window.
	Deviations map[string]float64 `json:"deviations"`

	Trend Trend `json:"trend"`
}

// Consistency computes swing-to-swing consistency over historical metrics.
// It needs at least consistencyMinSwings samples; below that it returns the
// neutral zero snapshot rather than statistics over too little data.
func (a *Analyzer) Consistency(history []SwingMetrics) Consistency {
	if len(history) < consistencyMinSwings {
		return Consistency{
			Deviations: map[string]float64{},
			Trend:      Trend{Direction: TrendStable},
		}
	}

	tempos := make([]float64, len(history))
	heads := make([]float64, len(history))
	xFactors := make([]float64, len(history))
	for i, m := range history {
		tempos[i] = m.Timing.TempoRatio
		heads[i] = m.HeadPosition
		xFactors[i] = m.XFactor
	}

	c := Consistency{
		Temporal:  temporalScore(tempos),
		Spatial:   clamp01(1 - stat.StdDev(heads, nil)/headToleranceNorm),
		Kinematic: clamp01(1 - stat.StdDev(xFactors, nil)/xFactorToleranceDeg),
		Deviations: map[string]float64{
			"tempo":         stat.StdDev(tempos, nil),
			"head_position": stat.StdDev(heads, nil),
			"x_factor":      stat.StdDev(xFactors, nil),
		},
	}
	c.Overall = (c.Temporal + c.Spatial + c.Kinematic) / 3
	c.Repeatability = repeatabilityScore(xFactors)
	c.Trend = a.trend(history)

	return c
}

// temporalScore is 1 - stddev/mean of the tempo values, clamped to [0,1];
// zero when the mean is zero.
func temporalScore(tempos []float64) float64 {
	mean := stat.Mean(tempos, nil)
	if mean == 0 {
		return 0
	}
	return clamp01(1 - stat.StdDev(tempos, nil)/mean)
}

// repeatabilityScore penalizes swing-to-swing X-Factor drift: the mean
// absolute change between consecutive swings, scaled by the same tolerance
// as kinematic consistency.
func repeatabilityScore(xFactors []float64) float64 {
	if len(xFactors) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(xFactors); i++ {
		sum += math.Abs(xFactors[i] - xFactors[i-1])
	}
	mean := sum / float64(len(xFactors)-1)
	return clamp01(1 - mean/xFactorToleranceDeg)
}

// trend compares the consistency of the most recent window against all
// earlier samples. Changes within the threshold read as stable.
func (a *Analyzer) trend(history []SwingMetrics) Trend {
	split := len(history) - consistencyMinSwings
	recent := subsetConsistency(history[split:])

	historical := recent
	if split >= 2 {
		historical = subsetConsistency(history[:split])
	}

	t := Trend{
		Rate:       recent - historical,
		Recent:     recent,
		Historical: historical,
	}
	switch {
	case t.Rate > trendThreshold:
		t.Direction = TrendImproving
	case t.Rate < -trendThreshold:
		t.Direction = TrendDeclining
	default:
		t.Direction = TrendStable
	}
	return t
}

// subsetConsistency applies the overall-consistency formula to a subset of
// the history.
func subsetConsistency(metrics []SwingMetrics) float64 {
	tempos := make([]float64, len(metrics))
	heads := make([]float64, len(metrics))
	xFactors := make([]float64, len(metrics))
	for i, m := range metrics {
		tempos[i] = m.Timing.TempoRatio
		heads[i] = m.HeadPosition
		xFactors[i] = m.XFactor
	}

	return (temporalScore(tempos) +
		clamp01(1-stat.StdDev(heads, nil)/headToleranceNorm) +
		clamp01(1-stat.StdDev(xFactors, nil)/xFactorToleranceDeg)) / 3
}
