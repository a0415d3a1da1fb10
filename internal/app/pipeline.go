package app

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/fairwaylabs/swingsight/internal/analysis"
	"github.com/fairwaylabs/swingsight/internal/pose"
	"github.com/fairwaylabs/swingsight/internal/store"
)

// runPipeline is the main loop that processes frames from the capture
// source. It manages the idle/active frame-rate switch and drives swing
// segmentation.
//
// Pipeline logic:
// 1. Start in idle mode (low FPS)
// 2. On motion detected, switch to active mode (full FPS)
// 3. Run pose detection
// 4. Advance the phase state machine; a swing starts when it leaves setup
// 5. Compute per-frame metrics for the swing in progress
// 6. On finish, persist the swing, update the consistency window, and
//    broadcast the final snapshot
// 7. After 2s without motion, drop back to idle mode
func (a *App) runPipeline() {
	activeMode := false
	lastMotionTime := now()

	frameInterval := time.Second / time.Duration(a.config.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.source.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = now()

				if !activeMode {
					activeMode = true
					a.source.SetFPS(a.config.ActiveFPS)
					frameInterval = time.Second / time.Duration(a.config.ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.source.SetFPS(a.config.IdleFPS)
					frameInterval = time.Second / time.Duration(a.config.IdleFPS)
					ticker.Reset(frameInterval)
					a.abandonSwing()
					a.history.Clear()
					a.phases.Reset()
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode || a.detector == nil {
				frame.Close()
				continue
			}

			pf, err := a.detector.Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting pose: %v", err)
				continue
			}
			if pf == nil {
				continue
			}

			a.processFrame(pf)
		}
	}
}

// processFrame advances swing segmentation and analysis by one pose frame.
// The frame joins the history buffer only after analysis, so every
// calculator sees history strictly older than the current frame.
func (a *App) processFrame(pf *pose.Frame) {
	phase := a.phases.Advance(pf, a.history)

	switch {
	case !a.recording && phase == analysis.PhaseBackswing:
		// Swing begins.
		a.recording = true
		a.swingStart = pf.TimestampMs
		a.swingPhases = a.swingPhases[:0]
		a.swingMetrics = a.swingMetrics[:0]
	}

	if a.recording {
		a.swingPhases = append(a.swingPhases, phase)

		m := a.analyzer.Analyze(pf, a.history, a.MetricsHistory(), a.swingPhases)
		a.swingMetrics = append(a.swingMetrics, m)

		if phase == analysis.PhaseFinish {
			a.finishSwing()
		}
	}

	a.history.Push(*pf)
}

// finishSwing persists the completed swing, rolls the consistency window
// forward, and broadcasts the final snapshot.
func (a *App) finishSwing() {
	a.recording = false
	a.phases.Reset()

	if len(a.swingMetrics) == 0 {
		return
	}
	final := a.swingMetrics[len(a.swingMetrics)-1]

	a.mu.Lock()
	a.metricsHistory = append(a.metricsHistory, final)
	a.trimMetricsLocked()
	a.mu.Unlock()

	swingID := uuid.NewString()
	if a.config.Store != nil && a.config.SessionID != "" {
		sw := &store.Swing{
			ID:          swingID,
			SessionID:   a.config.SessionID,
			StartedAtMs: a.swingStart,
			FrameCount:  len(a.swingMetrics),
			Phases:      append([]analysis.Phase(nil), a.swingPhases...),
		}
		if err := a.config.Store.Swings().Create(sw); err != nil {
			log.Printf("Error storing swing: %v", err)
		} else {
			for _, m := range a.swingMetrics {
				if err := a.config.Store.Metrics().Create(swingID, m); err != nil {
					log.Printf("Error storing swing metrics: %v", err)
					break
				}
			}
		}
	}

	if a.config.Live != nil {
		a.config.Live.Publish(swingID, final)
	}

	log.Printf("Swing complete: tempo %.2f, X-Factor stretch %.1f, sequence efficiency %.2f",
		final.Timing.TempoRatio, final.XFactorStretch, final.Sequence.Efficiency)
}

// abandonSwing drops an in-progress swing, e.g. when the golfer steps away
// mid-recording.
func (a *App) abandonSwing() {
	if a.recording {
		log.Println("Abandoning incomplete swing")
	}
	a.recording = false
	a.swingPhases = a.swingPhases[:0]
	a.swingMetrics = a.swingMetrics[:0]
}
