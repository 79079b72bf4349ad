// Package dummy provides an inert placeholder scene.
package dummy

import (
	"github.com/younwookim/wars/internal/application/input"
	"github.com/younwookim/wars/internal/application/scene"
	"github.com/younwookim/wars/internal/application/state"
	"github.com/younwookim/wars/internal/infrastructure/render"
)

// Dummy never transitions and draws nothing.
// It is reachable only as a start scene.
type Dummy struct {
	surface render.Surface
}

func New(surface render.Surface) *Dummy {
	return &Dummy{surface: surface}
}

// Advance implements scene.Scene
func (d *Dummy) Advance(dt float64, in input.Surface) *scene.Transition {
	return nil
}

// Render commits an empty batch
func (d *Dummy) Render() {
	d.surface.Begin()
	d.surface.End()
}

func (d *Dummy) Kind() state.SceneKind {
	return state.SceneDummy
}
