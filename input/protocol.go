package input

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/pthm-cable/gargantua/components"
)

// LandmarkMsg is one landmark on the wire.
type LandmarkMsg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// FrameMsg is one detection result, shaped like a hand landmarker result:
// an array of hands, each an array of 21 landmarks.
type FrameMsg struct {
	Landmarks [][]LandmarkMsg `json:"landmarks"`
}

// DecodeFrame parses and validates a JSON frame.
// Frames with a hand that does not carry exactly 21 finite landmarks are
// rejected whole; the simulation never sees partial input.
func DecodeFrame(data []byte) (components.Observation, error) {
	var msg FrameMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("decoding frame: %w", err)
	}
	return msg.Observation()
}

// Observation converts the message to an observation.
func (m FrameMsg) Observation() (components.Observation, error) {
	obs := make(components.Observation, len(m.Landmarks))
	for h, lms := range m.Landmarks {
		if len(lms) != components.LandmarksPerHand {
			return nil, fmt.Errorf("hand %d: expected %d landmarks, got %d", h, components.LandmarksPerHand, len(lms))
		}
		for i, lm := range lms {
			l, err := toLandmark(lm.X, lm.Y, lm.Z)
			if err != nil {
				return nil, fmt.Errorf("hand %d landmark %d: %w", h, i, err)
			}
			obs[h][i] = l
		}
	}
	return obs, nil
}

// toLandmark narrows a coordinate triple to a landmark, rejecting values
// that are not finite once narrowed to float32.
func toLandmark(x, y, z float64) (components.Landmark, error) {
	l := components.Landmark{X: float32(x), Y: float32(y), Z: float32(z)}
	for _, v := range [3]float32{l.X, l.Y, l.Z} {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return components.Landmark{}, fmt.Errorf("non-finite coordinate (%v, %v, %v)", x, y, z)
		}
	}
	return l, nil
}

// EncodeFrame is the inverse of DecodeFrame, used by test clients and
// recording tools.
func EncodeFrame(obs components.Observation) ([]byte, error) {
	msg := FrameMsg{Landmarks: make([][]LandmarkMsg, len(obs))}
	for h := range obs {
		lms := make([]LandmarkMsg, components.LandmarksPerHand)
		for i, lm := range obs[h] {
			lms[i] = LandmarkMsg{X: float64(lm.X), Y: float64(lm.Y), Z: float64(lm.Z)}
		}
		msg.Landmarks[h] = lms
	}
	return json.Marshal(msg)
}
