package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/wars/internal/application/input"
)

// Replayer is an input.Source that plays back recorded frames
type Replayer struct {
	data  ReplayData
	frame int
}

var _ input.Source = (*Replayer)(nil)

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}

	return &data, nil
}

// Poll returns the input for the current frame and advances
func (r *Replayer) Poll() (input.State, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.State{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.State(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Start returns the name of the scene the recording started in
func (r *Replayer) Start() string {
	return r.data.Start
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (mouse parked, nothing held)
func CreateTestReplayData(frames int, mouseX, mouseY float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		Start:     "menu",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
