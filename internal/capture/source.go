// Package capture provides swing video capture using GoCV (OpenCV).
package capture

import (
	"errors"
	"sync"

	"gocv.io/x/gocv"
)

// Default capture settings.
const (
	DefaultFPS    = 30
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// ErrSourceNotOpen is returned when reading from a source that is not open.
var ErrSourceNotOpen = errors.New("capture source is not open")

// Source defines the interface for swing video sources: a live camera at
// the range or a recorded swing video.
type Source interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	SetFPS(fps int)
	FPS() int
	IsOpen() bool
}

// videoSource manages capture from a camera device or video file via GoCV.
type videoSource struct {
	// Exactly one of deviceID/path identifies the source.
	deviceID int
	path     string

	capture *gocv.VideoCapture
	mu      sync.Mutex
	running bool
	fps     int
}

// NewCamera creates a Source reading from a camera device.
func NewCamera(deviceID int) Source {
	return &videoSource{
		deviceID: deviceID,
		fps:      DefaultFPS,
	}
}

// NewVideoFile creates a Source reading from a recorded swing video.
func NewVideoFile(path string) Source {
	return &videoSource{
		path: path,
		fps:  DefaultFPS,
	}
}

// Open opens the underlying capture device or file.
func (s *videoSource) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	var (
		capture *gocv.VideoCapture
		err     error
	)
	if s.path != "" {
		capture, err = gocv.VideoCaptureFile(s.path)
	} else {
		capture, err = gocv.OpenVideoCapture(s.deviceID)
	}
	if err != nil {
		return err
	}

	if s.path == "" {
		capture.Set(gocv.VideoCaptureFrameWidth, DefaultWidth)
		capture.Set(gocv.VideoCaptureFrameHeight, DefaultHeight)
		capture.Set(gocv.VideoCaptureFPS, float64(s.fps))
	}

	s.capture = capture
	s.running = true

	return nil
}

// Close closes the source and releases resources.
func (s *videoSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.capture == nil {
		s.running = false
		return nil
	}

	err := s.capture.Close()
	s.capture = nil
	s.running = false

	return err
}

// ReadFrame reads a single frame.
// The caller is responsible for closing the returned Mat.
func (s *videoSource) ReadFrame() (*gocv.Mat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running || s.capture == nil {
		return nil, ErrSourceNotOpen
	}

	mat := gocv.NewMat()
	if ok := s.capture.Read(&mat); !ok {
		mat.Close()
		return nil, errors.New("failed to read frame from source")
	}

	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	return &mat, nil
}

// SetFPS sets the capture frame rate. Ignored for file sources, whose rate
// is fixed by the recording. Values less than or equal to 0 are ignored.
func (s *videoSource) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fps = fps

	if s.capture != nil && s.path == "" {
		s.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current frame rate setting.
func (s *videoSource) FPS() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fps
}

// IsOpen returns true if the source is currently open.
func (s *videoSource) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}
