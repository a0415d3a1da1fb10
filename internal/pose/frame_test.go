package pose

import (
	"errors"
	"testing"
)

func TestNewFrame_FullLandmarkSet(t *testing.T) {
	points := make([]Landmark, NumLandmarks)
	points[LeftWrist] = Landmark{X: 0.4, Y: 0.5}
	points[RightWrist] = Landmark{X: 0.6, Y: 0.5}

	f, err := NewFrame(points, 1234)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.TimestampMs != 1234 {
		t.Errorf("expected timestamp 1234, got %d", f.TimestampMs)
	}
	if mid := f.WristMid(); mid.X != 0.5 || mid.Y != 0.5 {
		t.Errorf("unexpected wrist midpoint: %+v", mid)
	}
}

func TestNewFrame_ShortLandmarkSet(t *testing.T) {
	// A short landmark set is a detector precondition violation and must
	// fail loudly, never silently substitute joints.
	points := make([]Landmark, 12)

	_, err := NewFrame(points, 0)
	if err == nil {
		t.Fatal("expected error for short landmark set")
	}
	if !errors.Is(err, ErrMissingLandmarks) {
		t.Errorf("expected ErrMissingLandmarks, got %v", err)
	}
}

func TestNewFrame_CopiesInput(t *testing.T) {
	points := make([]Landmark, NumLandmarks)
	points[Nose] = Landmark{X: 0.5}

	f, err := NewFrame(points, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the caller's slice must not reach the frame.
	points[Nose].X = 0.9
	if f.Points[Nose].X != 0.5 {
		t.Error("frame shares storage with the input slice")
	}
}
