package render

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/younwookim/wars/internal/domain/entity"
	"github.com/younwookim/wars/internal/log"
)

type texture struct {
	img  *ebiten.Image
	name string
}

// Renderer2D is a Surface that records quads into a batch and hands each
// committed batch to a Sink.
type Renderer2D struct {
	maxSlots int
	textures *intmap.Map[int, texture]
	loader   TextureLoader
	sink     Sink
	log      *log.Logger

	batch   []Command
	last    []Command
	drawing bool
}

var _ Surface = (*Renderer2D)(nil)

// NewRenderer2D creates a draw surface with maxSlots texture slots.
// sink may be nil, in which case batches are only kept for LastBatch.
func NewRenderer2D(maxSlots int, loader TextureLoader, sink Sink, logger *log.Logger) *Renderer2D {
	if loader == nil {
		loader = NopLoader{}
	}
	return &Renderer2D{
		maxSlots: maxSlots,
		textures: intmap.New[int, texture](maxSlots),
		loader:   loader,
		sink:     sink,
		log:      logger,
	}
}

// MaxSlots returns the number of texture slots
func (r *Renderer2D) MaxSlots() int {
	return r.maxSlots
}

// LoadTexture binds the image at path to slot
func (r *Renderer2D) LoadTexture(path string, slot int) {
	if slot < 0 || slot >= r.maxSlots {
		r.log.Warnf("texture %s: slot %d out of range [0, %d)", path, slot, r.maxSlots)
		return
	}

	img, err := r.loader.Load(path)
	if err != nil {
		if !errors.Is(err, ErrNoTextures) {
			r.log.Warnf("using placeholder for slot %d: %v", slot, err)
		}
		img = nil
	}
	r.textures.Put(slot, texture{img: img, name: path})
}

// TextureName returns the asset path bound to slot
func (r *Renderer2D) TextureName(slot int) (string, bool) {
	t, ok := r.textures.Get(slot)
	return t.name, ok
}

// Begin starts a new batch
func (r *Renderer2D) Begin() {
	r.batch = make([]Command, 0, len(r.last))
	r.drawing = true
}

// End commits the current batch and forwards it to the sink
func (r *Renderer2D) End() {
	if !r.drawing {
		return
	}
	r.last = r.batch
	r.batch = nil
	r.drawing = false
	if r.sink != nil {
		r.sink.Submit(r.last)
	}
}

// DrawQuad queues a tinted quad. Calls outside Begin/End are dropped.
func (r *Renderer2D) DrawQuad(pos, size entity.Vec2, c entity.Color, slot float64) {
	if !r.drawing {
		return
	}
	cmd := Command{Pos: pos, Size: size, Color: c, Slot: slot}
	if t, ok := r.textures.Get(int(slot)); ok {
		cmd.Image = t.img
		cmd.Label = t.name
	}
	r.batch = append(r.batch, cmd)
}

// DrawTexturedQuad queues an untinted quad
func (r *Renderer2D) DrawTexturedQuad(pos, size entity.Vec2, slot float64) {
	r.DrawQuad(pos, size, entity.White, slot)
}

// LastBatch returns the most recently committed batch.
// The slice must not be modified.
func (r *Renderer2D) LastBatch() []Command {
	return r.last
}
