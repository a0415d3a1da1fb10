// Package config loads the SwingSight configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the full application configuration.
type Config struct {
	Capture  CaptureConfig  `yaml:"capture"`
	Detector DetectorConfig `yaml:"detector"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
}

// CaptureConfig configures the video source.
type CaptureConfig struct {
	// CameraID selects the capture device; ignored when VideoPath is set.
	CameraID int `yaml:"camera_id"`
	// VideoPath plays back a recorded swing video instead of a camera.
	VideoPath string `yaml:"video_path"`
	// IdleFPS is the frame rate while waiting for activity.
	IdleFPS int `yaml:"idle_fps"`
	// ActiveFPS is the frame rate during swing analysis.
	ActiveFPS int `yaml:"active_fps"`
	// MotionThreshold is the changed-pixel percentage that wakes the
	// pipeline.
	MotionThreshold float64 `yaml:"motion_threshold"`
}

// DetectorConfig configures the pose sidecar.
type DetectorConfig struct {
	MinDetectionConfidence float64 `yaml:"min_detection_confidence"`
	MinTrackingConfidence  float64 `yaml:"min_tracking_confidence"`
	ModelComplexity        int     `yaml:"model_complexity"`
}

// AnalysisConfig configures the metrics engine.
type AnalysisConfig struct {
	FrameRate          float64 `yaml:"frame_rate"`
	BodyMassKg         float64 `yaml:"body_mass_kg"`
	ClubVelocityFactor float64 `yaml:"club_velocity_factor"`
	TargetLineAngle    float64 `yaml:"target_line_angle"`
	HistorySize        int     `yaml:"history_size"`
	MetricsWindow      int     `yaml:"metrics_window"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"static_dir"`
}

// StoreConfig configures persistence.
type StoreConfig struct {
	DBPath string `yaml:"db_path"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Capture: CaptureConfig{
			CameraID:        0,
			IdleFPS:         5,
			ActiveFPS:       30,
			MotionThreshold: 1.0,
		},
		Detector: DetectorConfig{
			MinDetectionConfidence: 0.5,
			MinTrackingConfidence:  0.5,
			ModelComplexity:        1,
		},
		Analysis: AnalysisConfig{
			FrameRate:          30,
			BodyMassKg:         75,
			ClubVelocityFactor: 1.5,
			HistorySize:        60,
			MetricsWindow:      20,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Store: StoreConfig{
			DBPath: filepath.Join(home, ".swingsight", "swingsight.db"),
		},
	}
}

// Load reads a YAML config file, applying defaults for every omitted field.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
