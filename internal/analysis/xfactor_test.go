package analysis

import (
	"math"
	"testing"

	"github.com/fairwaylabs/swingsight/internal/pose"
	"github.com/fairwaylabs/swingsight/testdata"
)

func TestXFactor_LevelAddress(t *testing.T) {
	// Shoulders and hips parallel at address: no separation.
	a := NewAnalyzer(DefaultConfig())
	f := testdata.Address().Frame(0)

	if got := a.XFactor(f); got != 0 {
		t.Errorf("expected 0 X-Factor at address, got %f", got)
	}
}

func TestXFactor_WithinAnatomicalRange(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	g := testdata.Address()
	// Tilt the shoulder line steeply; hips stay level.
	g.ShoulderL = pose.Landmark{X: 0.45, Y: 0.20, Visibility: 0.95}
	g.ShoulderR = pose.Landmark{X: 0.55, Y: 0.55, Visibility: 0.95}
	f := g.Frame(0)

	got := a.XFactor(f)
	if got <= 0 || got > 90 {
		t.Errorf("expected X-Factor in (0, 90], got %f", got)
	}
}

func TestXFactor_ClampsToNinety(t *testing.T) {
	// Raw separation beyond 90 degrees is a measurement artifact; the
	// result must be exactly 90, never larger.
	a := NewAnalyzer(DefaultConfig())

	g := testdata.Address()
	// Shoulder line past vertical: raw angle above 90 degrees against the
	// level hip line.
	g.ShoulderL = pose.Landmark{X: 0.50, Y: 0.30, Visibility: 0.95}
	g.ShoulderR = pose.Landmark{X: 0.40, Y: 0.90, Visibility: 0.95}
	f := g.Frame(0)

	if got := a.XFactor(f); got != 90 {
		t.Errorf("expected X-Factor clamped to exactly 90, got %f", got)
	}
}

func TestXFactor_NumericalStability(t *testing.T) {
	// Landmark sets differing by well under 0.001 per coordinate must not
	// produce chaotic amplification in the result.
	a := NewAnalyzer(DefaultConfig())

	g1 := testdata.Address()
	g2 := g1
	const eps = 0.0001
	g2.ShoulderL.Y += eps
	g2.ShoulderR.Y -= eps
	g2.HipL.Y += eps
	g2.HipR.Y -= eps

	diff := math.Abs(a.XFactor(g1.Frame(0)) - a.XFactor(g2.Frame(0)))
	if diff >= 0.1 {
		t.Errorf("expected X-Factor difference below 0.1 degrees, got %f", diff)
	}
}

func TestXFactorStretch(t *testing.T) {
	if got := XFactorStretch(nil); got != 0 {
		t.Errorf("expected 0 stretch for empty history, got %f", got)
	}

	if got := XFactorStretch([]float64{31.5, 47.2, 12.0}); got != 47.2 {
		t.Errorf("expected stretch 47.2, got %f", got)
	}
}
