package detector

import (
	"gocv.io/x/gocv"

	"github.com/fairwaylabs/swingsight/internal/pose"
)

// MockDetector is a test implementation of the Detector interface.
// It plays back a scripted sequence of pose frames.
type MockDetector struct {
	frames []*pose.Frame
	next   int
	err    error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFrames sets the pose sequence that Detect will play back, one frame
// per call. After the sequence is exhausted Detect keeps returning the last
// frame.
func (m *MockDetector) SetFrames(frames []*pose.Frame) {
	m.frames = frames
	m.next = 0
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the next scripted frame or the configured error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*pose.Frame, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.frames) == 0 {
		return nil, nil
	}
	f := m.frames[m.next]
	if m.next < len(m.frames)-1 {
		m.next++
	}
	return f, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}
