// Package replay records per-frame input snapshots and plays them back.
package replay

import "github.com/younwookim/wars/internal/application/input"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`           // Frame number
	MX float64 `json:"mx"`          // MouseX
	MY float64 `json:"my"`          // MouseY
	K  uint32  `json:"k,omitempty"` // Held keys, one bit per input.Key
	B  uint8   `json:"b,omitempty"` // Held mouse buttons, one bit per input.MouseButton
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Start     string       `json:"start"` // Start scene name, as accepted by -start
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func frameFromState(f int, s input.State) FrameInput {
	return FrameInput{F: f, MX: s.MouseX, MY: s.MouseY, K: s.Keys, B: s.Buttons}
}

// State converts the recorded frame back into an input snapshot
func (fi FrameInput) State() input.State {
	return input.State{MouseX: fi.MX, MouseY: fi.MY, Keys: fi.K, Buttons: fi.B}
}
