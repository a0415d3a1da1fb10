package analysis

// Timing breaks a frame-labeled swing into per-phase durations and derived
// tempo numbers.
type Timing struct {
	// PhaseDurationsMs maps each observed phase to its total duration.
	PhaseDurationsMs map[Phase]float64 `json:"phase_durations_ms"`

	BackswingMs  float64 `json:"backswing_ms"`
	TransitionMs float64 `json:"transition_ms"`
	DownswingMs  float64 `json:"downswing_ms"`
	TotalMs      float64 `json:"total_ms"`

	// TempoRatio is backswing over downswing duration, the classic 3:1
	// teaching target; zero when no downswing was observed.
	TempoRatio float64 `json:"tempo_ratio"`

	// Efficiency compares the key phase durations against reference tour
	// tempo targets, in [0,1].
	Efficiency float64 `json:"efficiency"`
}

// Timing computes phase durations from a frame-indexed phase sequence at
// the configured frame rate.
func (a *Analyzer) Timing(phases []Phase) Timing {
	t := Timing{PhaseDurationsMs: make(map[Phase]float64)}
	if len(phases) == 0 {
		return t
	}

	frameMs := 1000 / a.cfg.FrameRate
	for _, p := range phases {
		t.PhaseDurationsMs[p] += frameMs
	}

	t.BackswingMs = t.PhaseDurationsMs[PhaseBackswing]
	t.TransitionMs = t.PhaseDurationsMs[PhaseTransition]
	t.DownswingMs = t.PhaseDurationsMs[PhaseDownswing]
	t.TotalMs = float64(len(phases)) * frameMs

	if t.DownswingMs > 0 {
		t.TempoRatio = t.BackswingMs / t.DownswingMs
	}

	t.Efficiency = (phaseEfficiency(t.BackswingMs, optimalBackswingMs) +
		phaseEfficiency(t.DownswingMs, optimalDownswingMs) +
		phaseEfficiency(t.TransitionMs, optimalTransitionMs)) / 3

	return t
}

// phaseEfficiency scores an observed duration against its reference target:
// 1 at the target, falling toward 0 the further off it is, 0 for a phase
// that never happened.
func phaseEfficiency(actual, optimal float64) float64 {
	if actual <= 0 {
		return 0
	}
	if actual > optimal {
		return optimal / actual
	}
	return actual / optimal
}
