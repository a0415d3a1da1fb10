package capture

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockSource is a test implementation of the Source interface that serves
// synthetic frames without camera hardware.
type MockSource struct {
	mu      sync.Mutex
	open    bool
	fps     int
	frames  int
	openErr error
	readErr error
}

// NewMockSource creates a new MockSource.
func NewMockSource() *MockSource {
	return &MockSource{fps: DefaultFPS}
}

// SetOpenError makes Open fail with the given error.
func (m *MockSource) SetOpenError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.openErr = err
}

// SetReadError makes ReadFrame fail with the given error.
func (m *MockSource) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// FramesRead returns how many frames have been served.
func (m *MockSource) FramesRead() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Open marks the source open.
func (m *MockSource) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.openErr != nil {
		return m.openErr
	}
	m.open = true
	return nil
}

// Close marks the source closed.
func (m *MockSource) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	return nil
}

// ReadFrame returns a blank frame.
// The caller is responsible for closing the returned Mat.
func (m *MockSource) ReadFrame() (*gocv.Mat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return nil, ErrSourceNotOpen
	}
	if m.readErr != nil {
		return nil, m.readErr
	}

	mat := gocv.NewMatWithSize(DefaultHeight, DefaultWidth, gocv.MatTypeCV8UC3)
	m.frames++
	return &mat, nil
}

// SetFPS sets the frame rate.
func (m *MockSource) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fps = fps
}

// FPS returns the frame rate.
func (m *MockSource) FPS() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fps
}

// IsOpen reports whether the source is open.
func (m *MockSource) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}
