// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/wars/internal/application/input"
	"github.com/younwookim/wars/internal/application/scene"
	"github.com/younwookim/wars/internal/log"
)

// Presenter puts the last committed draw batch on screen
type Presenter interface {
	Present(screen *ebiten.Image)
	Reset()
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current   scene.Scene
	factory   scene.Factory
	source    input.Source
	presenter Presenter
	log       *log.Logger

	screenW int
	screenH int
	dt      float64
	frame   int
}

// New creates a new Game with the given initial scene.
// presenter may be nil when running headless.
func New(initialScene scene.Scene, factory scene.Factory, source input.Source, presenter Presenter, screenW, screenH int, logger *log.Logger) *Game {
	return &Game{
		current:   initialScene,
		factory:   factory,
		source:    source,
		presenter: presenter,
		log:       logger,
		screenW:   screenW,
		screenH:   screenH,
		dt:        1.0 / 60.0, // Default to 60 FPS
	}
}

// Step runs one frame with the given input and reports whether the scene
// was replaced. The replaced scene is not rendered on that frame and the
// new one first renders on the next.
func (g *Game) Step(in input.State) bool {
	g.frame++

	next := g.current.Advance(g.dt, in)
	if next == nil {
		g.current.Render()
		return false
	}

	g.log.Infof("frame %d: %s -> %s", g.frame, g.current.Kind(), next)
	if g.presenter != nil {
		g.presenter.Reset()
	}
	g.current = g.factory.Build(*next)
	return true
}

// Update polls input and steps the current scene.
// Implements ebiten.Game interface. Returns ebiten.Termination once the
// input source is exhausted.
func (g *Game) Update() error {
	in, ok := g.source.Poll()
	if !ok {
		return ebiten.Termination
	}
	g.Step(in)
	return nil
}

// Draw presents the batch committed by the last Render.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.presenter != nil {
		g.presenter.Present(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frame returns the number of frames stepped so far
func (g *Game) Frame() int {
	return g.frame
}
