package main

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/wars/internal/application/game"
	"github.com/younwookim/wars/internal/application/replay"
	"github.com/younwookim/wars/internal/application/scene/builder"
	"github.com/younwookim/wars/internal/application/state"
	"github.com/younwookim/wars/internal/infrastructure/config"
	"github.com/younwookim/wars/internal/infrastructure/render"
	applog "github.com/younwookim/wars/internal/log"
)

// ReplayResult summarizes a headless replay run
type ReplayResult struct {
	Frames      int
	Scenes      []state.SceneKind // Scenes entered, in order
	Final       state.SceneKind
	Transitions []int // Frame number of each entry in Scenes
}

func (r ReplayResult) String() string {
	names := make([]string, len(r.Scenes))
	for i, k := range r.Scenes {
		names[i] = fmt.Sprintf("%s@%d", k, r.Transitions[i])
	}
	return fmt.Sprintf("frames=%d final=%s transitions=[%s]", r.Frames, r.Final, strings.Join(names, " "))
}

// RunReplay plays recorded input through the scene driver without a window.
// Textures are never loaded and nothing is presented.
func RunReplay(cfg *config.GameConfig, data replay.ReplayData, logger *applog.Logger) (ReplayResult, error) {
	start, err := parseStart(data.Start)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("failed to parse start scene: %w", err)
	}

	scenes, err := builder.New(cfg, render.NopLoader{}, nil, rand.New(rand.NewSource(data.Seed)), logger)
	if err != nil {
		return ReplayResult{}, err
	}

	g := game.New(scenes.Build(start), scenes, replay.NewReplayer(data), nil, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight, logger)
	g.SetDT(1.0 / float64(cfg.Physics.Display.Framerate))

	var result ReplayResult
	for {
		prev := g.Current()
		err := g.Update()
		if errors.Is(err, ebiten.Termination) {
			break
		}
		if err != nil {
			return result, err
		}
		if g.Current() != prev {
			result.Scenes = append(result.Scenes, g.Current().Kind())
			result.Transitions = append(result.Transitions, g.Frame())
		}
	}

	result.Frames = g.Frame()
	result.Final = g.Current().Kind()
	return result, nil
}
