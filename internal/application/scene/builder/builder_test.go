package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/wars/internal/application/input"
	"github.com/younwookim/wars/internal/application/scene"
	"github.com/younwookim/wars/internal/application/scene/menu"
	"github.com/younwookim/wars/internal/application/scene/playing"
	"github.com/younwookim/wars/internal/application/state"
	"github.com/younwookim/wars/internal/domain/entity"
	"github.com/younwookim/wars/internal/infrastructure/config"
	"github.com/younwookim/wars/internal/infrastructure/render"
	"github.com/younwookim/wars/internal/log"
)

type captureSink struct {
	last []render.Command
}

func (c *captureSink) Submit(batch []render.Command) {
	c.last = batch
}

func loadConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader("../../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	return cfg
}

func newTestBuilder(t *testing.T) (*Builder, *captureSink) {
	t.Helper()
	sink := &captureSink{}
	b, err := New(loadConfig(t), render.NopLoader{}, sink, rand.New(rand.NewSource(7)), log.Discard())
	require.NoError(t, err)
	return b, sink
}

func TestBuild_Kinds(t *testing.T) {
	b, _ := newTestBuilder(t)

	tests := []struct {
		name       string
		transition *scene.Transition
		expected   state.SceneKind
	}{
		{"menu", scene.ToMenu(), state.SceneMenu},
		{"hard mode menu", scene.ToHardModeMenu(), state.SceneHardModeMenu},
		{"normal game", scene.ToGame(state.DifficultyNormal), state.SceneGame},
		{"hard game", scene.ToGame(state.DifficultyHard), state.SceneGame},
		{"dummy", scene.ToDummy(), state.SceneDummy},
		{"unknown falls back to menu", &scene.Transition{To: state.SceneKind(99)}, state.SceneMenu},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := b.Build(*tt.transition)
			require.NotNil(t, s)
			assert.Equal(t, tt.expected, s.Kind())
		})
	}
}

func TestBuild_GameDifficulty(t *testing.T) {
	b, _ := newTestBuilder(t)

	s := b.Build(*scene.ToGame(state.DifficultyHard))

	p, ok := s.(*playing.Playing)
	require.True(t, ok)
	assert.Equal(t, state.DifficultyHard, p.Difficulty())
	assert.Equal(t, 3, p.EnemyCount())
}

func TestBuild_MenuButtons(t *testing.T) {
	b, _ := newTestBuilder(t)

	tests := []struct {
		name     string
		kind     *scene.Transition
		expected []menu.Button
	}{
		{
			name: "main menu",
			kind: scene.ToMenu(),
			expected: []menu.Button{
				{Name: "play", Rect: entity.Rect{X: 80, Y: 275, W: 200, H: 100}, Slot: 1, Target: *scene.ToGame(state.DifficultyNormal)},
				{Name: "hardMode", Rect: entity.Rect{X: 80, Y: 400, W: 400, H: 100}, Slot: 2, Target: *scene.ToHardModeMenu()},
			},
		},
		{
			name: "hard mode menu",
			kind: scene.ToHardModeMenu(),
			expected: []menu.Button{
				{Name: "yes", Rect: entity.Rect{X: 540, Y: 330, W: 200, H: 100}, Slot: 1, Target: *scene.ToGame(state.DifficultyHard)},
				{Name: "no", Rect: entity.Rect{X: 540, Y: 450, W: 200, H: 100}, Slot: 2, Target: *scene.ToMenu()},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := b.Build(*tt.kind).(*menu.Menu)
			require.True(t, ok)
			assert.Equal(t, tt.expected, m.Buttons())
		})
	}
}

func TestBuild_ScenesRenderToSink(t *testing.T) {
	b, sink := newTestBuilder(t)

	s := b.Build(*scene.ToMenu())
	s.Render()

	require.Len(t, sink.last, 3)
	assert.Equal(t, "textures/backgrounds/main_menu_background.png", sink.last[0].Label)
	assert.Equal(t, "textures/ui/play_button.png", sink.last[1].Label)
	assert.Equal(t, "textures/ui/other_button.png", sink.last[2].Label)
	for _, cmd := range sink.last {
		assert.Nil(t, cmd.Image, "headless loader leaves placeholders")
	}
}

func TestBuild_FreshSceneEachTime(t *testing.T) {
	b, _ := newTestBuilder(t)

	first := b.Build(*scene.ToGame(state.DifficultyNormal)).(*playing.Playing)
	first.Advance(0, input.State{}.WithKeys(input.KeyEscape))
	second := b.Build(*scene.ToGame(state.DifficultyNormal)).(*playing.Playing)

	assert.NotSame(t, first, second)
	assert.Equal(t, 3, second.EnemyCount())
}

func TestBuild_SameSeedSameSkins(t *testing.T) {
	cfg := loadConfig(t)
	skins := func() []entity.Skin {
		b, err := New(cfg, render.NopLoader{}, nil, rand.New(rand.NewSource(42)), log.Discard())
		require.NoError(t, err)
		var out []entity.Skin
		for i := 0; i < 8; i++ {
			out = append(out, b.Build(*scene.ToGame(state.DifficultyNormal)).(*playing.Playing).PlayerSkin())
		}
		return out
	}

	assert.Equal(t, skins(), skins())
}

func TestNew_BadButtonTarget(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.GameConfig)
	}{
		{"unknown target", func(c *config.GameConfig) { c.Scenes.Menu.Buttons[0].Target = "credits" }},
		{"unknown difficulty", func(c *config.GameConfig) { c.Scenes.HardModeMenu.Buttons[0].Difficulty = "nightmare" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfig(t)
			tt.mutate(cfg)

			_, err := New(cfg, render.NopLoader{}, nil, rand.New(rand.NewSource(1)), log.Discard())
			assert.Error(t, err)
		})
	}
}
