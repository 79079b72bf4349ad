package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/wars/internal/application/game"
	"github.com/younwookim/wars/internal/application/input"
	"github.com/younwookim/wars/internal/application/replay"
	"github.com/younwookim/wars/internal/application/scene"
	"github.com/younwookim/wars/internal/application/scene/builder"
	"github.com/younwookim/wars/internal/application/state"
	"github.com/younwookim/wars/internal/infrastructure/config"
	"github.com/younwookim/wars/internal/infrastructure/render"
	applog "github.com/younwookim/wars/internal/log"
)

// recordingGame saves the input recording when F5 is pressed
type recordingGame struct {
	*game.Game
	poller   *input.Poller
	recorder *replay.Recorder
	filename string
}

func (g *recordingGame) Update() error {
	if g.poller.SaveRequested() {
		if err := g.recorder.Save(g.filename); err != nil {
			log.Printf("Failed to save replay: %v", err)
		} else {
			log.Printf("Replay saved to %s (%d frames)", g.filename, g.recorder.FrameCount())
		}
	}
	return g.Game.Update()
}

func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// parseStart maps a -start name to the transition that builds that scene
func parseStart(name string) (scene.Transition, error) {
	if name == "hardGame" {
		return *scene.ToGame(state.DifficultyHard), nil
	}
	kind, err := state.ParseSceneKind(name)
	if err != nil {
		return scene.Transition{}, err
	}
	return scene.Transition{To: kind}, nil
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded session headless and print where it ends")
	startFlag := flag.String("start", "menu", "Start scene: menu, hardModeMenu, game, hardGame or dummy")
	assetsFlag := flag.String("assets", "assets", "Directory holding the textures/ tree")
	logLevelFlag := flag.String("log-level", "info", "Log level: debug, info, warn, error or none")
	flag.Parse()

	logger := applog.New(os.Stderr, applog.LevelFromString(*logLevelFlag))

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		result, err := RunReplay(cfg, *data, logger)
		if err != nil {
			log.Fatalf("Failed to run replay: %v", err)
		}
		fmt.Println(result)
		return
	}

	start, err := parseStart(*startFlag)
	if err != nil {
		log.Fatalf("Invalid -start: %v", err)
	}

	presenter, err := render.NewPresenter()
	if err != nil {
		log.Fatalf("Failed to create presenter: %v", err)
	}

	seed := time.Now().UnixNano()
	logger.Debugf("seed %d", seed)

	scenes, err := builder.New(cfg, render.NewDirLoader(*assetsFlag), presenter, rand.New(rand.NewSource(seed)), logger)
	if err != nil {
		log.Fatalf("Failed to set up scenes: %v", err)
	}

	display := cfg.Physics.Display
	poller := input.NewPoller()

	var source input.Source = poller
	var recorder *replay.Recorder
	if *recordFlag != "" {
		recorder = replay.NewRecorder(poller, seed, *startFlag)
		source = recorder
		log.Printf("Recording input to %s (F5 saves)", *recordFlag)
	}

	g := game.New(scenes.Build(start), scenes, source, presenter, display.ScreenWidth, display.ScreenHeight, logger)
	g.SetDT(1.0 / float64(display.Framerate))

	var runner ebiten.Game = g
	if recorder != nil {
		runner = &recordingGame{Game: g, poller: poller, recorder: recorder, filename: *recordFlag}
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(runner); err != nil {
		log.Fatal(err)
	}

	if recorder != nil {
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save replay: %v", err)
		}
	}
}
