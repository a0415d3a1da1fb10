package analysis

import (
	"fmt"

	"github.com/fairwaylabs/swingsight/internal/pose"
)

// BodySegment identifies a link of the kinematic chain tracked for
// sequencing analysis. The set is closed; sequencing compares exactly these
// four links.
type BodySegment int

const (
	SegmentPelvis BodySegment = iota
	SegmentTorso
	SegmentLeadArm
	SegmentClub
	numSegments
)

// optimalOrder is the proximal-to-distal firing order of an efficient swing:
// hips before torso before arms before club.
var optimalOrder = [numSegments]BodySegment{SegmentPelvis, SegmentTorso, SegmentLeadArm, SegmentClub}

// String returns the segment name.
func (s BodySegment) String() string {
	switch s {
	case SegmentPelvis:
		return "pelvis"
	case SegmentTorso:
		return "torso"
	case SegmentLeadArm:
		return "lead_arm"
	case SegmentClub:
		return "club"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so segments serialize by
// name in JSON payloads.
func (s BodySegment) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText restores a segment from its serialized name.
func (s *BodySegment) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pelvis":
		*s = SegmentPelvis
	case "torso":
		*s = SegmentTorso
	case "lead_arm":
		*s = SegmentLeadArm
	case "club":
		*s = SegmentClub
	default:
		return fmt.Errorf("unknown body segment %q", text)
	}
	return nil
}

// segmentPoint returns the landmark tracked for a segment. The club has no
// landmark of its own; its position is proxied by the hands on the grip.
func segmentPoint(f *pose.Frame, s BodySegment) pose.Landmark {
	switch s {
	case SegmentPelvis:
		return f.HipMid()
	case SegmentTorso:
		return f.ShoulderMid()
	default:
		return f.WristMid()
	}
}

// SegmentVelocity is a body segment tagged with its instantaneous velocity
// magnitude and the time within the observed window at which it peaked.
type SegmentVelocity struct {
	Segment    BodySegment `json:"segment"`
	Velocity   float64     `json:"velocity"`
	PeakTimeMs float64     `json:"peak_time_ms"`
}
