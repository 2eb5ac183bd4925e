package input

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/gargantua/components"
)

// LandmarkRow is one landmark of one hand of one frame in a recording.
// A row with Hand = -1 marks a frame in which no hands were seen.
type LandmarkRow struct {
	Frame    int     `csv:"frame"`
	Hand     int     `csv:"hand"`
	Landmark int     `csv:"landmark"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
}

// Recording is a sequence of observations captured at a fixed frame rate.
type Recording struct {
	Frames []components.Observation
	FPS    float64
}

// LoadRecording reads a landmark CSV.
func LoadRecording(path string, fps float64) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening recording: %w", err)
	}
	defer f.Close()

	var rows []LandmarkRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parsing recording: %w", err)
	}

	frames, err := framesFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("recording %s: %w", path, err)
	}
	return &Recording{Frames: frames, FPS: fps}, nil
}

// maxRecordedHands bounds the hand index accepted from a recording.
const maxRecordedHands = components.MaxTrackedHands + 2

func framesFromRows(rows []LandmarkRow) ([]components.Observation, error) {
	numFrames := 0
	for _, r := range rows {
		// Every recorded frame has at least one row
		if r.Frame < 0 || r.Frame >= len(rows) {
			return nil, fmt.Errorf("frame index %d out of range for %d rows", r.Frame, len(rows))
		}
		if r.Hand >= maxRecordedHands {
			return nil, fmt.Errorf("frame %d: hand index %d exceeds %d", r.Frame, r.Hand, maxRecordedHands-1)
		}
		if r.Frame+1 > numFrames {
			numFrames = r.Frame + 1
		}
	}

	// Landmarks seen per frame and hand
	type key struct{ frame, hand int }
	seen := make(map[key]*[components.LandmarksPerHand]bool)
	frames := make([]components.Observation, numFrames)

	for _, r := range rows {
		if r.Hand < 0 {
			continue
		}
		if r.Landmark < 0 || r.Landmark >= components.LandmarksPerHand {
			return nil, fmt.Errorf("frame %d hand %d: landmark index %d out of range", r.Frame, r.Hand, r.Landmark)
		}
		lm, err := toLandmark(r.X, r.Y, r.Z)
		if err != nil {
			return nil, fmt.Errorf("frame %d hand %d landmark %d: %w", r.Frame, r.Hand, r.Landmark, err)
		}

		k := key{r.Frame, r.Hand}
		got := seen[k]
		if got == nil {
			got = new([components.LandmarksPerHand]bool)
			seen[k] = got
		}
		if got[r.Landmark] {
			return nil, fmt.Errorf("frame %d hand %d: duplicate landmark %d", r.Frame, r.Hand, r.Landmark)
		}
		got[r.Landmark] = true

		for len(frames[r.Frame]) <= r.Hand {
			frames[r.Frame] = append(frames[r.Frame], components.Hand{})
		}
		frames[r.Frame][r.Hand][r.Landmark] = lm
	}

	for f, obs := range frames {
		if obs == nil {
			frames[f] = components.Observation{}
		}
		for h := range obs {
			got := seen[key{f, h}]
			for i := 0; i < components.LandmarksPerHand; i++ {
				if got == nil || !got[i] {
					return nil, fmt.Errorf("frame %d hand %d: missing landmark %d", f, h, i)
				}
			}
		}
	}
	return frames, nil
}

// Len returns the number of frames.
func (r *Recording) Len() int {
	return len(r.Frames)
}

// At returns the frame shown t seconds into playback, looping.
func (r *Recording) At(t float64) components.Observation {
	if len(r.Frames) == 0 {
		return components.Observation{}
	}
	idx := int(t*r.FPS) % len(r.Frames)
	if idx < 0 {
		idx += len(r.Frames)
	}
	return r.Frames[idx]
}

// Recorder captures observations for later replay.
type Recorder struct {
	rows  []LandmarkRow
	frame int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Add appends one frame.
func (rec *Recorder) Add(obs components.Observation) {
	if len(obs) == 0 {
		rec.rows = append(rec.rows, LandmarkRow{Frame: rec.frame, Hand: -1, Landmark: -1})
	}
	for h := range obs {
		for i, lm := range obs[h] {
			rec.rows = append(rec.rows, LandmarkRow{
				Frame:    rec.frame,
				Hand:     h,
				Landmark: i,
				X:        float64(lm.X),
				Y:        float64(lm.Y),
				Z:        float64(lm.Z),
			})
		}
	}
	rec.frame++
}

// Frames returns how many frames were recorded.
func (rec *Recorder) Frames() int {
	return rec.frame
}

// Save writes the recording as CSV.
func (rec *Recorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating recording: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rec.rows, f); err != nil {
		return fmt.Errorf("writing recording: %w", err)
	}
	return nil
}
