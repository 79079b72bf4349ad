// Package builder constructs scenes from transition requests.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/wars/internal/application/scene"
	"github.com/younwookim/wars/internal/application/scene/dummy"
	"github.com/younwookim/wars/internal/application/scene/menu"
	"github.com/younwookim/wars/internal/application/scene/playing"
	"github.com/younwookim/wars/internal/application/state"
	"github.com/younwookim/wars/internal/domain/entity"
	"github.com/younwookim/wars/internal/infrastructure/config"
	"github.com/younwookim/wars/internal/infrastructure/render"
	"github.com/younwookim/wars/internal/log"
)

// Builder is the scene.Factory for the game's closed set of scenes.
// Every Build gets a fresh draw surface with the scene's textures loaded.
type Builder struct {
	cfg    *config.GameConfig
	loader render.TextureLoader
	sink   render.Sink
	rng    *rand.Rand
	log    *log.Logger

	menuButtons     []menu.Button
	hardModeButtons []menu.Button
}

var _ scene.Factory = (*Builder)(nil)

// New creates a Builder. Menu button targets are resolved here so a bad
// scenes config fails at startup rather than on a click.
func New(cfg *config.GameConfig, loader render.TextureLoader, sink render.Sink, rng *rand.Rand, logger *log.Logger) (*Builder, error) {
	menuButtons, err := buttons(cfg.Scenes.Menu)
	if err != nil {
		return nil, fmt.Errorf("failed to build menu: %w", err)
	}
	hardModeButtons, err := buttons(cfg.Scenes.HardModeMenu)
	if err != nil {
		return nil, fmt.Errorf("failed to build hard mode menu: %w", err)
	}

	return &Builder{
		cfg:             cfg,
		loader:          loader,
		sink:            sink,
		rng:             rng,
		log:             logger,
		menuButtons:     menuButtons,
		hardModeButtons: hardModeButtons,
	}, nil
}

func buttons(mc config.MenuConfig) ([]menu.Button, error) {
	out := make([]menu.Button, 0, len(mc.Buttons))
	for _, bc := range mc.Buttons {
		kind, err := state.ParseSceneKind(bc.Target)
		if err != nil {
			return nil, fmt.Errorf("button %s: %w", bc.Name, err)
		}
		difficulty, err := state.ParseDifficulty(bc.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("button %s: %w", bc.Name, err)
		}
		out = append(out, menu.Button{
			Name:   bc.Name,
			Rect:   entity.Rect{X: bc.X, Y: bc.Y, W: bc.Width, H: bc.Height},
			Slot:   bc.Slot,
			Target: scene.Transition{To: kind, Difficulty: difficulty},
		})
	}
	return out, nil
}

// Build implements scene.Factory
func (b *Builder) Build(t scene.Transition) scene.Scene {
	switch t.To {
	case state.SceneMenu:
		return b.menu(state.SceneMenu, b.cfg.Scenes.Menu, b.menuButtons)
	case state.SceneHardModeMenu:
		return b.menu(state.SceneHardModeMenu, b.cfg.Scenes.HardModeMenu, b.hardModeButtons)
	case state.SceneGame:
		surface := b.surface(b.cfg.Scenes.Game)
		return playing.New(b.cfg.Physics, t.Difficulty, surface, b.rng, b.log)
	case state.SceneDummy:
		return dummy.New(b.surface(b.cfg.Scenes.Dummy))
	default:
		b.log.Errorf("unknown scene %s, falling back to menu", t)
		return b.menu(state.SceneMenu, b.cfg.Scenes.Menu, b.menuButtons)
	}
}

func (b *Builder) menu(kind state.SceneKind, mc config.MenuConfig, buttons []menu.Button) *menu.Menu {
	background := entity.Rect{
		W: float64(b.cfg.Physics.Display.ScreenWidth),
		H: float64(b.cfg.Physics.Display.ScreenHeight),
	}
	return menu.New(kind, b.surface(mc.Assets), background, buttons, mc.HoverDim)
}

func (b *Builder) surface(ac config.AssetsConfig) *render.Renderer2D {
	r := render.NewRenderer2D(ac.Slots, b.loader, b.sink, b.log)
	for _, tc := range ac.Textures {
		r.LoadTexture(tc.Path, tc.Slot)
	}
	return r
}
