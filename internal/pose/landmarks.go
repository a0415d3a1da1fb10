// Package pose provides the body-landmark data model for swing analysis.
package pose

import (
	"errors"
	"fmt"
)

// Body landmark indices following the MediaPipe Pose convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// ErrMissingLandmarks is returned when a frame is constructed from fewer
// landmarks than the pose model produces. A short landmark set means the
// upstream detector misbehaved; substituting joints would silently corrupt
// every downstream metric, so frame construction fails instead.
var ErrMissingLandmarks = errors.New("missing pose landmarks")

// Landmark is a single detected body point in camera-normalized coordinates.
// X and Y are in [0,1] relative to the image, Z is depth relative to the hip
// midpoint. Visibility is the detector's confidence in [0,1]; a zero value
// means the detector reported none.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Frame is one detected pose at one timestamp: the full ordered landmark set
// for a single video frame. Frames are immutable once constructed.
type Frame struct {
	Points      [NumLandmarks]Landmark `json:"points"`
	TimestampMs int64                  `json:"timestamp_ms"`
}

// NewFrame builds a Frame from a detector landmark slice.
// It returns ErrMissingLandmarks if fewer than NumLandmarks points are
// supplied.
func NewFrame(points []Landmark, timestampMs int64) (*Frame, error) {
	if len(points) < NumLandmarks {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrMissingLandmarks, len(points), NumLandmarks)
	}

	f := &Frame{TimestampMs: timestampMs}
	copy(f.Points[:], points[:NumLandmarks])
	return f, nil
}

// ShoulderMid returns the midpoint of the two shoulder landmarks.
func (f *Frame) ShoulderMid() Landmark {
	return Midpoint(f.Points[LeftShoulder], f.Points[RightShoulder])
}

// HipMid returns the midpoint of the two hip landmarks.
func (f *Frame) HipMid() Landmark {
	return Midpoint(f.Points[LeftHip], f.Points[RightHip])
}

// WristMid returns the midpoint of the two wrist landmarks. During a swing
// both hands are on the grip, so this tracks the hands on the club.
func (f *Frame) WristMid() Landmark {
	return Midpoint(f.Points[LeftWrist], f.Points[RightWrist])
}
