package capture

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestNewMotionDetector(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
	}{
		{name: "default threshold", threshold: 1.0},
		{name: "high threshold", threshold: 5.0},
		{name: "low threshold", threshold: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := NewMotionDetector(tt.threshold)
			if md == nil {
				t.Fatal("NewMotionDetector returned nil")
			}
			defer md.Close()

			if md.threshold != tt.threshold {
				t.Errorf("threshold = %f, want %f", md.threshold, tt.threshold)
			}

			if md.initialized {
				t.Error("motion detector should not be initialized initially")
			}
		})
	}
}

func TestMotionDetector_FirstFrameIsBaseline(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	// The first frame only establishes the baseline.
	detected, percent := md.Detect(&frame)
	if detected {
		t.Error("first frame should never report motion")
	}
	if percent != 0 {
		t.Errorf("expected 0%% change on first frame, got %f", percent)
	}
}

func TestMotionDetector_NoMotionOnIdenticalFrames(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	frame1 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame1.Close()
	frame2 := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame2.Close()

	md.Detect(&frame1)
	detected, percent := md.Detect(&frame2)
	if detected {
		t.Errorf("identical frames should not report motion (%.2f%% changed)", percent)
	}
}

func TestMotionDetector_DetectsChange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	dark := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer dark.Close()

	bright := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(255, 255, 255, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer bright.Close()

	md.Detect(&dark)
	detected, percent := md.Detect(&bright)
	if !detected {
		t.Errorf("expected motion between dark and bright frames (%.2f%% changed)", percent)
	}
}

func TestMotionDetector_Reset(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	md := NewMotionDetector(1.0)
	defer md.Close()

	dark := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer dark.Close()
	bright := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(255, 255, 255, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer bright.Close()

	md.Detect(&dark)
	md.Reset()

	// After a reset the bright frame is just a new baseline.
	detected, _ := md.Detect(&bright)
	if detected {
		t.Error("frame after reset should re-establish the baseline, not report motion")
	}
}
