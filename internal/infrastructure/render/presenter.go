package render

import (
	"bytes"
	"fmt"
	"image/color"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/wars/internal/domain/entity"
	"golang.org/x/image/font/gofont/goregular"
)

// Placeholder fill colors, indexed by texture slot
var placeholderColors = []color.RGBA{
	{40, 40, 60, 255},   // backgrounds
	{90, 170, 110, 255}, // first button / first skin
	{200, 110, 90, 255}, // second button / second skin
	{110, 130, 200, 255},
	{200, 190, 90, 255},
}

const labelSize = 18

// Presenter keeps the latest committed batch and draws it onto the screen
type Presenter struct {
	batch []Command
	face  *text.GoTextFace
}

var _ Sink = (*Presenter)(nil)

// NewPresenter creates a presenter with the embedded label font
func NewPresenter() (*Presenter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load label font: %w", err)
	}
	return &Presenter{
		face: &text.GoTextFace{Source: src, Size: labelSize},
	}, nil
}

// Submit replaces the batch shown by Present
func (p *Presenter) Submit(batch []Command) {
	p.batch = batch
}

// Reset drops the current batch so the next Present draws nothing
func (p *Presenter) Reset() {
	p.batch = nil
}

// Pending returns the number of quads that Present will draw
func (p *Presenter) Pending() int {
	return len(p.batch)
}

// Present draws the latest batch, in order, onto screen
func (p *Presenter) Present(screen *ebiten.Image) {
	for _, cmd := range p.batch {
		if cmd.Image != nil {
			p.drawTextured(screen, cmd)
		} else {
			p.drawPlaceholder(screen, cmd)
		}
	}
}

func (p *Presenter) drawTextured(screen *ebiten.Image, cmd Command) {
	b := cmd.Image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cmd.Size.X/float64(b.Dx()), cmd.Size.Y/float64(b.Dy()))
	op.GeoM.Translate(cmd.Pos.X, cmd.Pos.Y)
	op.ColorScale.Scale(float32(cmd.Color.R), float32(cmd.Color.G), float32(cmd.Color.B), float32(cmd.Color.A))
	screen.DrawImage(cmd.Image, op)
}

func (p *Presenter) drawPlaceholder(screen *ebiten.Image, cmd Command) {
	vector.DrawFilledRect(screen,
		float32(cmd.Pos.X), float32(cmd.Pos.Y),
		float32(cmd.Size.X), float32(cmd.Size.Y),
		PlaceholderColor(int(cmd.Slot), cmd.Color), false)

	if cmd.Label == "" || p.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.Pos.X+8, cmd.Pos.Y+8)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, path.Base(cmd.Label), p.face, op)
}

// PlaceholderColor returns the fill used for an empty slot, tinted by c
func PlaceholderColor(slot int, c entity.Color) color.RGBA {
	base := placeholderColors[0]
	if slot >= 0 && slot < len(placeholderColors) {
		base = placeholderColors[slot]
	}
	return color.RGBA{
		R: uint8(float64(base.R) * clamp01(c.R)),
		G: uint8(float64(base.G) * clamp01(c.G)),
		B: uint8(float64(base.B) * clamp01(c.B)),
		A: uint8(float64(base.A) * clamp01(c.A)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
