// Package app wires capture, pose detection, analysis and storage into the
// swing-processing pipeline.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/fairwaylabs/swingsight/internal/analysis"
	"github.com/fairwaylabs/swingsight/internal/capture"
	"github.com/fairwaylabs/swingsight/internal/detector"
	"github.com/fairwaylabs/swingsight/internal/pose"
	"github.com/fairwaylabs/swingsight/internal/server"
	"github.com/fairwaylabs/swingsight/internal/store"
)

// Pipeline timing constants.
const (
	// DefaultIdleFPS is the frame rate while waiting for activity.
	DefaultIdleFPS = 5
	// DefaultActiveFPS is the frame rate during swing analysis.
	DefaultActiveFPS = 30
	// IdleTimeoutMs is how long without motion before dropping back to
	// idle capture.
	IdleTimeoutMs = 2000
	// DefaultMetricsWindow is how many past swings feed consistency
	// analysis.
	DefaultMetricsWindow = 20
)

// Config holds configuration options for the application.
type Config struct {
	Store     *store.Store
	Live      *server.LiveHandler
	SessionID string

	// Source and Detector may be nil; New picks defaults.
	Source   capture.Source
	Detector detector.Detector

	// DetectorConfig tunes the pose sidecar when New constructs the
	// detector itself; ignored when Detector is supplied.
	DetectorConfig detector.Config

	CameraID      int
	VideoPath     string
	IdleFPS       int
	ActiveFPS     int
	MotionThresh  float64
	HistorySize   int
	MetricsWindow int
	Engine        analysis.Config
}

// App orchestrates the swing-processing pipeline for one session.
type App struct {
	config   Config
	source   capture.Source
	motion   *capture.MotionDetector
	detector detector.Detector
	detCfg   detector.Config
	analyzer *analysis.Analyzer
	phases   *analysis.PhaseDetector

	history *pose.History

	// metricsHistory holds the final snapshot of recent swings for
	// consistency analysis, oldest first.
	metricsHistory []analysis.SwingMetrics

	// In-progress swing state, owned by the pipeline goroutine.
	recording    bool
	swingStart   int64
	swingPhases  []analysis.Phase
	swingMetrics []analysis.SwingMetrics

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.IdleFPS <= 0 {
		config.IdleFPS = DefaultIdleFPS
	}
	if config.ActiveFPS <= 0 {
		config.ActiveFPS = DefaultActiveFPS
	}
	if config.MotionThresh <= 0 {
		config.MotionThresh = 1.0 // 1% pixel change
	}
	if config.MetricsWindow <= 0 {
		config.MetricsWindow = DefaultMetricsWindow
	}
	if config.DetectorConfig == (detector.Config{}) {
		config.DetectorConfig = detector.DefaultConfig()
	}

	a := &App{
		config:   config,
		source:   config.Source,
		motion:   capture.NewMotionDetector(config.MotionThresh),
		detector: config.Detector,
		detCfg:   config.DetectorConfig,
		analyzer: analysis.NewAnalyzer(config.Engine),
		phases:   analysis.NewPhaseDetector(config.Engine),
		history:  pose.NewHistory(config.HistorySize),
	}

	if a.source == nil {
		if config.VideoPath != "" {
			a.source = capture.NewVideoFile(config.VideoPath)
		} else {
			a.source = capture.NewCamera(config.CameraID)
		}
	}

	// Try the MediaPipe sidecar first, fall back to the mock detector so
	// the rest of the service still comes up without Python installed.
	if a.detector == nil {
		if mp, err := detector.NewMediaPipeDetector(a.detCfg); err == nil {
			a.detector = mp
			log.Println("Using MediaPipe pose detection")
		} else {
			log.Printf("MediaPipe not available (%v), using mock detector", err)
			a.detector = detector.NewMockDetector()
		}
	}

	return a
}

// SetEnabled enables or disables swing analysis.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether swing analysis is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SeedMetrics preloads the consistency window, typically from metrics
// persisted in a previous run of the same session.
func (a *App) SeedMetrics(metrics []analysis.SwingMetrics) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.metricsHistory = append(a.metricsHistory[:0], metrics...)
	a.trimMetricsLocked()
}

// MetricsHistory returns a copy of the consistency window, oldest first.
func (a *App) MetricsHistory() []analysis.SwingMetrics {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]analysis.SwingMetrics, len(a.metricsHistory))
	copy(out, a.metricsHistory)
	return out
}

func (a *App) trimMetricsLocked() {
	if excess := len(a.metricsHistory) - a.config.MetricsWindow; excess > 0 {
		a.metricsHistory = append(a.metricsHistory[:0], a.metricsHistory[excess:]...)
	}
}

// Start begins the analysis pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.source.Open(); err != nil {
		return err
	}

	a.source.SetFPS(a.config.IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Swing analysis pipeline started")
	return nil
}

// Stop halts the pipeline and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.source.Close(); err != nil {
		log.Printf("Error closing capture source: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Swing analysis pipeline stopped")
}

// Source returns the capture source.
func (a *App) Source() capture.Source {
	return a.source
}

// Detector returns the pose detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Analyzer returns the metrics engine.
func (a *App) Analyzer() *analysis.Analyzer {
	return a.analyzer
}

// now is stubbed in tests.
var now = time.Now
