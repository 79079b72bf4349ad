// Package input defines the read-only input surface scenes query each frame.
//
// Scenes never poll the platform themselves. The driver captures one State
// per frame from a Source and hands it to the active scene.
package input

// Key is a keyboard key the game reacts to
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyA
	KeyD
	KeyW
	KeyEscape
	keyCount
)

// Keys lists every key tracked in a State
var Keys = [...]Key{KeyLeft, KeyRight, KeyUp, KeyA, KeyD, KeyW, KeyEscape}

// MouseButton is a mouse button the game reacts to
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	mouseButtonCount
)

// MouseButtons lists every mouse button tracked in a State
var MouseButtons = [...]MouseButton{MouseButtonLeft, MouseButtonRight}

// Surface is what a scene may ask about the current frame's input
type Surface interface {
	MousePosition() (x, y float64)
	IsMouseButtonDown(button MouseButton) bool
	IsKeyDown(key Key) bool
}

// Source yields one input snapshot per frame.
// ok is false once the source has nothing more to give (end of a replay).
type Source interface {
	Poll() (s State, ok bool)
}

// State is an immutable snapshot of the input for one frame
type State struct {
	MouseX, MouseY float64
	Keys           uint32
	Buttons        uint8
}

var _ Surface = State{}

// At returns a copy of s with the cursor moved to (x, y)
func (s State) At(x, y float64) State {
	s.MouseX, s.MouseY = x, y
	return s
}

// WithKeys returns a copy of s with the given keys held
func (s State) WithKeys(keys ...Key) State {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			s.Keys |= 1 << uint(k)
		}
	}
	return s
}

// WithButtons returns a copy of s with the given mouse buttons held
func (s State) WithButtons(buttons ...MouseButton) State {
	for _, b := range buttons {
		if b >= 0 && b < mouseButtonCount {
			s.Buttons |= 1 << uint(b)
		}
	}
	return s
}

// MousePosition returns the cursor position in logical screen coordinates
func (s State) MousePosition() (x, y float64) {
	return s.MouseX, s.MouseY
}

// IsMouseButtonDown reports whether the button is held this frame
func (s State) IsMouseButtonDown(button MouseButton) bool {
	if button < 0 || button >= mouseButtonCount {
		return false
	}
	return s.Buttons&(1<<uint(button)) != 0
}

// IsKeyDown reports whether the key is held this frame
func (s State) IsKeyDown(key Key) bool {
	if key < 0 || key >= keyCount {
		return false
	}
	return s.Keys&(1<<uint(key)) != 0
}

// Scripted is a Source that plays back a fixed list of states
type Scripted struct {
	frames []State
	next   int
}

// NewScripted creates a Source yielding frames in order
func NewScripted(frames ...State) *Scripted {
	return &Scripted{frames: frames}
}

// Poll returns the next scripted state
func (s *Scripted) Poll() (State, bool) {
	if s.next >= len(s.frames) {
		return State{}, false
	}
	st := s.frames[s.next]
	s.next++
	return st, true
}
