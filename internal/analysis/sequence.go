package analysis

import (
	"sort"

	"github.com/fairwaylabs/swingsight/internal/pose"
)

// KinematicSequence describes the order in which body segments reached peak
// velocity within the observed window and how closely that order matches
// the proximal-to-distal ideal.
type KinematicSequence struct {
	// Order lists the segments sorted by ascending peak-velocity time.
	Order []BodySegment `json:"order"`

	// Peaks carries each segment's peak velocity and when it occurred.
	Peaks []SegmentVelocity `json:"peaks"`

	// GapsMs are the time gaps between consecutive peaks, one fewer than
	// the number of segments.
	GapsMs []float64 `json:"gaps_ms"`

	// Efficiency is the fraction of segments in the optimal position,
	// in [0,1].
	Efficiency float64 `json:"efficiency"`

	// Optimal reports whether the observed order matches the canonical
	// pelvis-torso-arm-club order exactly.
	Optimal bool `json:"optimal"`
}

// KinematicSequence analyzes the firing order of the kinetic chain over the
// current frame plus history. It requires at least sequenceMinFrames frames
// of history; below that it returns the zero-efficiency unknown sequence
// rather than guessing from too little data.
func (a *Analyzer) KinematicSequence(frame *pose.Frame, hist *pose.History) KinematicSequence {
	if hist.Len() < sequenceMinFrames {
		return KinematicSequence{}
	}

	frames := append(hist.Frames(), *frame)

	// Peak velocity frame index per segment across the window.
	peaks := make([]SegmentVelocity, 0, numSegments)
	for _, s := range optimalOrder {
		best := SegmentVelocity{Segment: s}
		for i := 1; i < len(frames); i++ {
			v := a.segmentVelocityBetween(&frames[i-1], &frames[i], s)
			if v > best.Velocity {
				best.Velocity = v
				best.PeakTimeMs = float64(i) / a.cfg.FrameRate * 1000
			}
		}
		peaks = append(peaks, best)
	}

	// Ascending peak time; stable so ties keep canonical order.
	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].PeakTimeMs < peaks[j].PeakTimeMs
	})

	seq := KinematicSequence{
		Order: make([]BodySegment, len(peaks)),
		Peaks: peaks,
	}

	matches := 0
	for i, p := range peaks {
		seq.Order[i] = p.Segment
		if p.Segment == optimalOrder[i] {
			matches++
		}
	}
	seq.Efficiency = float64(matches) / float64(numSegments)
	seq.Optimal = matches == int(numSegments)

	for i := 1; i < len(peaks); i++ {
		seq.GapsMs = append(seq.GapsMs, peaks[i].PeakTimeMs-peaks[i-1].PeakTimeMs)
	}

	return seq
}
