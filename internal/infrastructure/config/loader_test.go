package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadPhysics(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 200.0, cfg.Player.Speed)
	assert.Equal(t, 5.0, cfg.Player.GravityRate)
	assert.Equal(t, 370.0, cfg.Player.RestHeight)
	assert.Equal(t, 200.0, cfg.Player.StartX)
	assert.Equal(t, 150.0, cfg.Player.Size)
	assert.Equal(t, []float64{1000, 800, 600}, cfg.Enemy.SpawnX)
	assert.Equal(t, 50.0, cfg.Enemy.HardSpeed)
	assert.Equal(t, 150.0, cfg.Enemy.TriggerDistance)
}

func TestLoader_LoadScenes(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadScenes()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Menu.Assets.Slots)
	assert.Equal(t, 0.7, cfg.Menu.HoverDim)
	require.Len(t, cfg.Menu.Buttons, 2)
	play := cfg.Menu.Buttons[0]
	assert.Equal(t, "play", play.Name)
	assert.Equal(t, 80.0, play.X)
	assert.Equal(t, 275.0, play.Y)
	assert.Equal(t, "game", play.Target)
	assert.Equal(t, "normal", play.Difficulty)

	require.Len(t, cfg.HardModeMenu.Buttons, 2)
	yes := cfg.HardModeMenu.Buttons[0]
	assert.Equal(t, 540.0, yes.X, "centered on a 1280 wide screen")
	assert.Equal(t, "hard", yes.Difficulty)

	assert.Equal(t, 5, cfg.Game.Slots)
	assert.Len(t, cfg.Game.Textures, 3)
	assert.Equal(t, 2, cfg.Dummy.Slots)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Scenes)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "empty")

	_, err := loader.LoadPhysics()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read physics.json")
}

func TestLoader_BadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"physics.json": {Data: []byte(`{"display": `)},
	}
	loader := NewFSLoader(fsys, "broken")

	_, err := loader.LoadPhysics()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse physics.json")
}
