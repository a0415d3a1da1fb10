package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fairwaylabs/swingsight/internal/analysis"
	"github.com/fairwaylabs/swingsight/internal/app"
	"github.com/fairwaylabs/swingsight/internal/config"
	"github.com/fairwaylabs/swingsight/internal/detector"
	"github.com/fairwaylabs/swingsight/internal/server"
	"github.com/fairwaylabs/swingsight/internal/store"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to config file")
	videoPath := flag.String("video", "", "analyze a recorded swing video instead of the camera")
	sessionName := flag.String("session", "", "name for a new practice session")
	flag.Parse()

	fmt.Println("SwingSight - Golf Swing Analysis")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *videoPath != "" {
		cfg.Capture.VideoPath = *videoPath
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Store.DBPath), 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	st, err := store.New(cfg.Store.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	session, err := openSession(st, *sessionName)
	if err != nil {
		log.Fatalf("Failed to open session: %v", err)
	}
	fmt.Printf("Session: %s (%s)\n", session.Name, session.ID)

	live := server.NewLiveHandler()

	a := app.New(app.Config{
		Store:         st,
		Live:          live,
		SessionID:     session.ID,
		CameraID:      cfg.Capture.CameraID,
		VideoPath:     cfg.Capture.VideoPath,
		IdleFPS:       cfg.Capture.IdleFPS,
		ActiveFPS:     cfg.Capture.ActiveFPS,
		MotionThresh:  cfg.Capture.MotionThreshold,
		HistorySize:   cfg.Analysis.HistorySize,
		MetricsWindow: cfg.Analysis.MetricsWindow,
		DetectorConfig: detector.Config{
			MinDetectionConf: cfg.Detector.MinDetectionConfidence,
			MinTrackingConf:  cfg.Detector.MinTrackingConfidence,
			ModelComplexity:  cfg.Detector.ModelComplexity,
		},
		Engine: engineConfig(cfg),
	})

	// Resume the consistency window from metrics of earlier runs.
	if seed, err := st.Metrics().Recent(session.ID, cfg.Analysis.MetricsWindow); err != nil {
		log.Printf("Failed to load previous metrics: %v", err)
	} else if len(seed) > 0 {
		a.SeedMetrics(seed)
		fmt.Printf("Loaded %d previous swings for consistency analysis\n", len(seed))
	}

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start pipeline: %v", err)
	}
	defer a.Stop()
	a.SetEnabled(true)

	srv := server.New(server.Config{
		StaticDir: cfg.Server.StaticDir,
		Store:     st,
		Live:      live,
	})

	fmt.Printf("Starting server on %s\n", cfg.Server.Addr)
	if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// openSession reuses the most recent session unless a new name is given.
func openSession(st *store.Store, name string) (*store.Session, error) {
	if name == "" {
		sessions, err := st.Sessions().List()
		if err != nil {
			return nil, err
		}
		if len(sessions) > 0 {
			return sessions[0], nil
		}
		name = "practice"
	}

	session := &store.Session{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := st.Sessions().Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// engineConfig maps the file configuration onto the engine's tunables.
func engineConfig(cfg config.Config) analysis.Config {
	engine := analysis.DefaultConfig()
	if cfg.Analysis.FrameRate > 0 {
		engine.FrameRate = cfg.Analysis.FrameRate
	}
	if cfg.Analysis.BodyMassKg > 0 {
		engine.BodyMassKg = cfg.Analysis.BodyMassKg
	}
	if cfg.Analysis.ClubVelocityFactor > 0 {
		engine.ClubVelocityFactor = cfg.Analysis.ClubVelocityFactor
	}
	engine.TargetLineAngle = cfg.Analysis.TargetLineAngle
	return engine
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "swingsight.yaml"
	}
	return filepath.Join(home, ".swingsight", "config.yaml")
}
