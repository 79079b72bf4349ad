// Package scene defines the Scene interface for game screens.
//
// Each game screen (menu, hard mode menu, game, dummy) implements the Scene
// interface to handle its own per-frame logic and rendering. A scene never
// builds its successor: it returns a Transition describing the next scene
// and the driver constructs it through a Factory.
package scene

import (
	"fmt"

	"github.com/younwookim/wars/internal/application/input"
	"github.com/younwookim/wars/internal/application/state"
)

// Scene represents a game screen
//
// The driver calls Advance once per frame and, unless a transition was
// requested, Render right after. A scene is never rendered after its own
// Advance returned a transition.
type Scene interface {
	// Advance updates the scene state for one frame.
	// dt is the frame time in seconds and is never negative.
	// in is the input captured for this frame; scenes only read it.
	// Returns the next scene to switch to, or nil to stay on this one.
	Advance(dt float64, in input.Surface) *Transition

	// Render issues this frame's draw calls. It must not change scene state.
	Render()

	// Kind reports which variant this scene is.
	Kind() state.SceneKind
}

// Transition requests a switch to a freshly built scene
type Transition struct {
	To         state.SceneKind
	Difficulty state.Difficulty // Only meaningful when To is SceneGame
}

// ToMenu requests the main menu
func ToMenu() *Transition {
	return &Transition{To: state.SceneMenu}
}

// ToHardModeMenu requests the hard mode confirmation menu
func ToHardModeMenu() *Transition {
	return &Transition{To: state.SceneHardModeMenu}
}

// ToGame requests a new game at the given difficulty
func ToGame(d state.Difficulty) *Transition {
	return &Transition{To: state.SceneGame, Difficulty: d}
}

// ToDummy requests the placeholder scene
func ToDummy() *Transition {
	return &Transition{To: state.SceneDummy}
}

// String returns a readable form such as "Game(Hard)"
func (t Transition) String() string {
	if t.To == state.SceneGame {
		return fmt.Sprintf("%s(%s)", t.To, t.Difficulty)
	}
	return t.To.String()
}

// Factory builds the scene a transition asks for
type Factory interface {
	Build(t Transition) Scene
}
