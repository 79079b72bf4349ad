package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Poller reads the live keyboard and mouse state from ebiten
type Poller struct{}

// NewPoller creates a new ebiten-backed input source
func NewPoller() *Poller {
	return &Poller{}
}

var _ Source = (*Poller)(nil)

// Poll reads the current input state. It never runs out.
func (p *Poller) Poll() (State, bool) {
	mx, my := ebiten.CursorPosition()
	s := State{MouseX: float64(mx), MouseY: float64(my)}

	for _, k := range Keys {
		if ebiten.IsKeyPressed(keyToEbiten(k)) {
			s = s.WithKeys(k)
		}
	}
	for _, b := range MouseButtons {
		if ebiten.IsMouseButtonPressed(mouseButtonToEbiten(b)) {
			s = s.WithButtons(b)
		}
	}

	return s, true
}

// SaveRequested reports whether the save-recording hotkey was just pressed
func (p *Poller) SaveRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF5)
}

// keyToEbiten converts a Key to an ebiten.Key
func keyToEbiten(k Key) ebiten.Key {
	switch k {
	case KeyLeft:
		return ebiten.KeyArrowLeft
	case KeyRight:
		return ebiten.KeyArrowRight
	case KeyUp:
		return ebiten.KeyArrowUp
	case KeyA:
		return ebiten.KeyA
	case KeyD:
		return ebiten.KeyD
	case KeyW:
		return ebiten.KeyW
	case KeyEscape:
		return ebiten.KeyEscape
	default:
		return ebiten.Key(-1)
	}
}

// mouseButtonToEbiten converts a MouseButton to an ebiten.MouseButton
func mouseButtonToEbiten(b MouseButton) ebiten.MouseButton {
	switch b {
	case MouseButtonRight:
		return ebiten.MouseButtonRight
	default:
		return ebiten.MouseButtonLeft
	}
}
