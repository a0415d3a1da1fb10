package analysis

import (
	"testing"

	"github.com/fairwaylabs/swingsight/internal/pose"
	"github.com/fairwaylabs/swingsight/testdata"
)

func TestPower_NoHistory(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	hist := pose.NewHistory(pose.DefaultHistorySize)

	p := a.Power(testdata.Address().Frame(0), hist)
	if p.TotalPower != 0 {
		t.Errorf("expected 0 total power with no history, got %f", p.TotalPower)
	}
	if p.PeakPower != 0 {
		t.Errorf("expected 0 peak power with no history, got %f", p.PeakPower)
	}
	if p.TransferEfficiency != 0 {
		t.Errorf("expected 0 transfer efficiency with no history, got %f", p.TransferEfficiency)
	}
	if p.RotationalPower != 0 {
		t.Errorf("expected 0 rotational power with no history, got %f", p.RotationalPower)
	}
}

func TestPower_DuringDownswing(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	hist := pose.NewHistory(pose.DefaultHistorySize)

	// Hands accelerating over three frames: velocity growing each step, so
	// the first-difference acceleration is positive and power is real.
	g := testdata.Address()
	hist.Push(*g.Frame(0))
	g.WristL.X -= 0.02
	g.WristR.X -= 0.02
	hist.Push(*g.Frame(33))
	g.WristL.X -= 0.05
	g.WristR.X -= 0.05
	cur := g.Frame(66)

	p := a.Power(cur, hist)
	if p.TotalPower <= 0 {
		t.Errorf("expected positive total power while accelerating, got %f", p.TotalPower)
	}
	if p.PeakPower <= 0 {
		t.Errorf("expected positive peak power, got %f", p.PeakPower)
	}
	// Club proxy moves fastest, so it carries the peak.
	if p.PeakPower != a.SegmentVelocities(cur, hist)[SegmentClub] {
		t.Errorf("expected peak power to track the club, got %f", p.PeakPower)
	}
	if p.TransferEfficiency < 0 || p.TransferEfficiency > 1 {
		t.Errorf("transfer efficiency out of [0,1]: %f", p.TransferEfficiency)
	}
	if p.LinearPower <= 0 {
		t.Errorf("expected positive linear power, got %f", p.LinearPower)
	}
}

func TestPower_RotationalFromShoulderTurn(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	hist := pose.NewHistory(pose.DefaultHistorySize)
	hist.Push(*testdata.Address().Frame(0))

	g := testdata.Address()
	g.ShoulderL.Y += 0.10
	g.ShoulderR.Y -= 0.10

	p := a.Power(g.Frame(33), hist)
	if p.RotationalPower <= 0 {
		t.Errorf("expected positive rotational power from shoulder turn, got %f", p.RotationalPower)
	}
}

func TestPower_PhaseBreakdown(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	hist := pose.NewHistory(pose.DefaultHistorySize)

	g := testdata.Address()
	hist.Push(*g.Frame(0))
	g.WristL.X -= 0.02
	g.WristR.X -= 0.02
	hist.Push(*g.Frame(33))
	g.WristL.X -= 0.05
	g.WristR.X -= 0.05

	p := a.Power(g.Frame(66), hist)
	if len(p.Sequence) != 4 {
		t.Fatalf("expected 4 phase points, got %d", len(p.Sequence))
	}

	var sum float64
	var downswing float64
	for _, pt := range p.Sequence {
		sum += pt.Magnitude
		if pt.Phase == PhaseDownswing {
			downswing = pt.Magnitude
		}
		if pt.DurationMs <= 0 {
			t.Errorf("phase %s: non-positive duration %f", pt.Phase, pt.DurationMs)
		}
	}
	for _, pt := range p.Sequence {
		if pt.Phase != PhaseDownswing && pt.Magnitude > downswing {
			t.Errorf("phase %s carries more power than the downswing", pt.Phase)
		}
	}
	if sum > p.TotalPower+1e-9 {
		t.Errorf("phase breakdown %f exceeds total power %f", sum, p.TotalPower)
	}
}
