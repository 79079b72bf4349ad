// Package menu provides the button menu scenes: the main menu and the hard
// mode confirmation menu.
package menu

import (
	"github.com/younwookim/wars/internal/application/input"
	"github.com/younwookim/wars/internal/application/scene"
	"github.com/younwookim/wars/internal/application/state"
	"github.com/younwookim/wars/internal/application/ui"
	"github.com/younwookim/wars/internal/domain/entity"
	"github.com/younwookim/wars/internal/infrastructure/render"
)

// Button is a clickable rectangle leading to another scene
type Button struct {
	Name   string
	Rect   entity.Rect
	Slot   int
	Target scene.Transition
}

// Menu is a scene made of a background and hoverable buttons.
// It keeps no state besides the hover checker, which is refreshed from
// input every frame.
type Menu struct {
	kind       state.SceneKind
	surface    render.Surface
	hover      *ui.HoverChecker
	background entity.Rect
	buttons    []Button
	hoverDim   float64
}

// New creates a menu scene. Buttons are tested in the given order, so the
// first one wins where rectangles overlap.
func New(kind state.SceneKind, surface render.Surface, background entity.Rect, buttons []Button, hoverDim float64) *Menu {
	return &Menu{
		kind:       kind,
		surface:    surface,
		hover:      ui.NewHoverChecker(),
		background: background,
		buttons:    buttons,
		hoverDim:   hoverDim,
	}
}

// Advance checks for a click on a button (implements scene.Scene)
func (m *Menu) Advance(_ float64, in input.Surface) *scene.Transition {
	m.hover.UpdateMousePosition(in.MousePosition())

	if !in.IsMouseButtonDown(input.MouseButtonLeft) {
		return nil
	}

	for _, b := range m.buttons {
		if m.hover.IsHovered(b.Rect) {
			next := b.Target
			return &next
		}
	}
	return nil
}

// Render draws the background and the buttons, dimming the hovered one
func (m *Menu) Render() {
	m.surface.Begin()

	m.surface.DrawQuad(m.background.Pos(), m.background.Size(), entity.White, 0)

	for _, b := range m.buttons {
		c := entity.White
		if m.hover.IsHovered(b.Rect) {
			c = entity.Gray(m.hoverDim)
		}
		m.surface.DrawQuad(b.Rect.Pos(), b.Rect.Size(), c, float64(b.Slot))
	}

	m.surface.End()
}

// Kind reports whether this is the main or the hard mode menu
func (m *Menu) Kind() state.SceneKind {
	return m.kind
}

// Buttons returns the menu's buttons in priority order
func (m *Menu) Buttons() []Button {
	return m.buttons
}
