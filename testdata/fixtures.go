// Package testdata provides synthetic golfer poses for tests.
package testdata

import "github.com/fairwaylabs/swingsight/internal/pose"

// Golfer holds the key joints of a synthetic pose, camera facing the
// golfer. Frame expands it into a full landmark set.
type Golfer struct {
	Nose      pose.Landmark
	ShoulderL pose.Landmark
	ShoulderR pose.Landmark
	ElbowL    pose.Landmark
	ElbowR    pose.Landmark
	WristL    pose.Landmark
	WristR    pose.Landmark
	HipL      pose.Landmark
	HipR      pose.Landmark
	KneeL     pose.Landmark
	KneeR     pose.Landmark
	AnkleL    pose.Landmark
	AnkleR    pose.Landmark
}

// Address returns a golfer standing at address: shoulders level, hands
// together on the grip, weight centered.
func Address() Golfer {
	return Golfer{
		Nose:      lm(0.50, 0.20, 0),
		ShoulderL: lm(0.35, 0.30, 0),
		ShoulderR: lm(0.65, 0.30, 0),
		ElbowL:    lm(0.33, 0.42, 0),
		ElbowR:    lm(0.67, 0.42, 0),
		WristL:    lm(0.48, 0.55, 0),
		WristR:    lm(0.52, 0.55, 0),
		HipL:      lm(0.40, 0.50, 0),
		HipR:      lm(0.60, 0.50, 0),
		KneeL:     lm(0.40, 0.70, 0),
		KneeR:     lm(0.60, 0.70, 0),
		AnkleL:    lm(0.40, 0.90, 0),
		AnkleR:    lm(0.60, 0.90, 0),
	}
}

// Frame expands the golfer into a full 33-landmark pose frame. Face and
// foot detail points cluster around their parent joints.
func (g Golfer) Frame(ts int64) *pose.Frame {
	points := make([]pose.Landmark, pose.NumLandmarks)

	// Face detail tracks the nose.
	for i := pose.Nose; i <= pose.MouthRight; i++ {
		points[i] = g.Nose
	}

	points[pose.LeftShoulder] = g.ShoulderL
	points[pose.RightShoulder] = g.ShoulderR
	points[pose.LeftElbow] = g.ElbowL
	points[pose.RightElbow] = g.ElbowR
	points[pose.LeftWrist] = g.WristL
	points[pose.RightWrist] = g.WristR

	// Hand detail tracks the wrists.
	points[pose.LeftPinky] = g.WristL
	points[pose.LeftIndex] = g.WristL
	points[pose.LeftThumb] = g.WristL
	points[pose.RightPinky] = g.WristR
	points[pose.RightIndex] = g.WristR
	points[pose.RightThumb] = g.WristR

	points[pose.LeftHip] = g.HipL
	points[pose.RightHip] = g.HipR
	points[pose.LeftKnee] = g.KneeL
	points[pose.RightKnee] = g.KneeR
	points[pose.LeftAnkle] = g.AnkleL
	points[pose.RightAnkle] = g.AnkleR

	// Foot detail tracks the ankles.
	points[pose.LeftHeel] = g.AnkleL
	points[pose.LeftFootIndex] = g.AnkleL
	points[pose.RightHeel] = g.AnkleR
	points[pose.RightFootIndex] = g.AnkleR

	f, err := pose.NewFrame(points, ts)
	if err != nil {
		panic(err) // fixture always supplies the full set
	}
	return f
}

// OptimalSequenceFrames returns a synthetic window in which the pelvis
// reaches peak speed first, then the torso, then the hands: the canonical
// proximal-to-distal firing order.
func OptimalSequenceFrames(frameMs int64) []pose.Frame {
	g := Address()
	frames := make([]pose.Frame, 0, 7)
	push := func(i int) {
		frames = append(frames, *g.Frame(int64(i)*frameMs))
	}

	push(0)

	// Hips fire first.
	g.HipL.X -= 0.06
	g.HipR.X -= 0.06
	push(1)
	g.HipL.X -= 0.02
	g.HipR.X -= 0.02
	push(2)

	// Then the torso.
	g.ShoulderL.X -= 0.07
	g.ShoulderR.X -= 0.07
	push(3)
	g.ShoulderL.X -= 0.02
	g.ShoulderR.X -= 0.02
	push(4)

	// Then the hands (and with them the club proxy).
	g.WristL.X -= 0.08
	g.WristR.X -= 0.08
	push(5)
	g.WristL.X -= 0.02
	g.WristR.X -= 0.02
	push(6)

	return frames
}

// lm builds a fully visible landmark.
func lm(x, y, z float64) pose.Landmark {
	return pose.Landmark{X: x, Y: y, Z: z, Visibility: 0.95}
}
