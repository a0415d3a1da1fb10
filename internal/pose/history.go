package pose

// DefaultHistorySize is the default capacity of a frame history buffer.
// Two seconds of footage at 30 fps comfortably covers a full swing.
const DefaultHistorySize = 60

// History is a bounded, time-ordered buffer of recent frames, oldest first.
// When full, pushing a frame evicts the oldest. It is not safe for
// concurrent use; the analysis pipeline owns it from a single goroutine.
type History struct {
	frames []Frame
	cap    int
}

// NewHistory creates a History holding at most capacity frames.
// A non-positive capacity falls back to DefaultHistorySize.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &History{
		frames: make([]Frame, 0, capacity),
		cap:    capacity,
	}
}

// Push appends a frame, evicting the oldest when the buffer is full.
func (h *History) Push(f Frame) {
	if len(h.frames) >= h.cap {
		copy(h.frames, h.frames[1:])
		h.frames = h.frames[:h.cap-1]
	}
	h.frames = append(h.frames, f)
}

// Len returns the number of buffered frames.
func (h *History) Len() int {
	return len(h.frames)
}

// At returns the frame at index i, oldest first. It panics on an
// out-of-range index, like a slice.
func (h *History) At(i int) Frame {
	return h.frames[i]
}

// Latest returns the most recent frame, or false if the buffer is empty.
func (h *History) Latest() (Frame, bool) {
	if len(h.frames) == 0 {
		return Frame{}, false
	}
	return h.frames[len(h.frames)-1], true
}

// Frames returns a copy of the buffered frames, oldest first.
func (h *History) Frames() []Frame {
	out := make([]Frame, len(h.frames))
	copy(out, h.frames)
	return out
}

// Clear empties the buffer without releasing its capacity.
func (h *History) Clear() {
	h.frames = h.frames[:0]
}
