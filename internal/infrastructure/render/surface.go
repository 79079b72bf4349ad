// Package render provides the batching draw surface scenes issue quads to,
// and the presenter that puts the committed batch on screen.
//
// Scenes only see the Surface interface. Textures are loaded into numbered
// slots once, at scene construction; draw calls then select a slot by number.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/wars/internal/domain/entity"
)

// Surface accepts a Begin/End bracketed sequence of quad draw calls
type Surface interface {
	// LoadTexture binds the image at path to slot. A failed load leaves a
	// labeled placeholder in the slot.
	LoadTexture(path string, slot int)

	// Begin starts a new batch, discarding anything not yet committed.
	Begin()

	// End commits the batch.
	End()

	// DrawQuad draws a rectangle using the texture in slot, tinted by c.
	DrawQuad(pos, size entity.Vec2, c entity.Color, slot float64)

	// DrawTexturedQuad draws a rectangle using the texture in slot, untinted.
	DrawTexturedQuad(pos, size entity.Vec2, slot float64)
}

// Command is one queued quad
type Command struct {
	Pos   entity.Vec2
	Size  entity.Vec2
	Color entity.Color
	Slot  float64

	// Image is the texture bound to Slot when the command was issued; nil
	// when the slot is empty or its load failed.
	Image *ebiten.Image

	// Label names the asset expected in Slot, shown on placeholders.
	Label string
}

// Sink receives every committed batch
type Sink interface {
	Submit(batch []Command)
}
