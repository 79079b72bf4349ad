package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/wars/internal/application/input"
)

// Recorder is an input.Source that records every frame it passes through
type Recorder struct {
	source    input.Source
	data      ReplayData
	recording bool
}

var _ input.Source = (*Recorder)(nil)

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(source input.Source, seed int64, start string) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			Start:     start,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// Poll reads the wrapped source and records the result
func (r *Recorder) Poll() (input.State, bool) {
	s, ok := r.source.Poll()
	if ok && r.recording {
		r.data.Frames = append(r.data.Frames, frameFromState(len(r.data.Frames), s))
	}
	return s, ok
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording. Polling still passes input through.
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
