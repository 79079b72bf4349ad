// Package playing provides the main gameplay scene.
package playing

import (
	"math"
	"math/rand"

	"github.com/younwookim/wars/internal/application/input"
	"github.com/younwookim/wars/internal/application/scene"
	"github.com/younwookim/wars/internal/application/state"
	"github.com/younwookim/wars/internal/domain/entity"
	"github.com/younwookim/wars/internal/infrastructure/config"
	"github.com/younwookim/wars/internal/infrastructure/render"
	"github.com/younwookim/wars/internal/log"
)

// Playing is the main gameplay scene
type Playing struct {
	config     *config.PhysicsConfig
	surface    render.Surface
	difficulty state.Difficulty
	background entity.Rect

	player    *entity.Player
	enemies   entity.Enemies
	enemySkin entity.Skin

	// Index of the enemy watched for the hard mode loss check. Hard mode
	// never removes enemies, so this stays the spawn-order tail.
	watched int
}

// New creates a new Playing scene.
// rng decides, with a single coin flip, which skin the player gets; the
// enemies get the other one.
func New(cfg *config.PhysicsConfig, difficulty state.Difficulty, surface render.Surface, rng *rand.Rand, logger *log.Logger) *Playing {
	skin := entity.SkinA
	if rng.Intn(2) == 1 {
		skin = entity.SkinB
	}
	logger.Debugf("player skin %d, enemy skin %d", skin, skin.Other())

	pc := cfg.Player
	enemies := entity.NewEnemies(cfg.Enemy.SpawnX)

	return &Playing{
		config:     cfg,
		surface:    surface,
		difficulty: difficulty,
		background: entity.Rect{
			W: float64(cfg.Display.ScreenWidth),
			H: float64(cfg.Display.ScreenHeight),
		},
		player:    entity.NewPlayer(pc.StartX, pc.StartY, pc.YSpeed, skin),
		enemies:   enemies,
		enemySkin: skin.Other(),
		watched:   len(enemies) - 1,
	}
}

// Advance proceeds the game state (implements scene.Scene)
func (p *Playing) Advance(dt float64, in input.Surface) *scene.Transition {
	pc := p.config.Player

	p.player.ApplyGravity(pc.GravityRate, pc.RestHeight, dt)

	step := pc.Speed * dt
	if in.IsKeyDown(input.KeyLeft) || in.IsKeyDown(input.KeyA) {
		p.player.X -= step
	}
	if in.IsKeyDown(input.KeyRight) || in.IsKeyDown(input.KeyD) {
		p.player.X += step
	}
	// Thrust, not an impulse: the player rises for as long as the key is held
	if in.IsKeyDown(input.KeyUp) || in.IsKeyDown(input.KeyW) {
		p.player.Y -= step
	}

	if in.IsKeyDown(input.KeyEscape) {
		return scene.ToMenu()
	}

	if p.difficulty == state.DifficultyHard {
		return p.advanceHard(dt)
	}
	return p.advanceNormal()
}

// advanceHard moves every enemy left; the watched enemy reaching the player
// ends the game.
func (p *Playing) advanceHard(dt float64) *scene.Transition {
	p.enemies.MoveAll(-p.config.Enemy.HardSpeed * dt)

	watched, ok := p.enemies.At(p.watched)
	if !ok {
		return scene.ToMenu()
	}
	if math.Abs(watched.X-p.player.X) < p.config.Enemy.TriggerDistance {
		return scene.ToMenu()
	}
	return nil
}

// advanceNormal lets the player remove the tail enemy by reaching it; the
// game is won once none remain.
func (p *Playing) advanceNormal() *scene.Transition {
	last, ok := p.enemies.Last()
	if !ok {
		return scene.ToMenu()
	}

	reach := p.config.Enemy.TriggerDistance
	if math.Abs(last.X-p.player.X) < reach && math.Abs(p.config.Player.RestHeight-p.player.Y) < reach {
		p.enemies.PopLast()
		if len(p.enemies) == 0 {
			return scene.ToMenu()
		}
	}
	return nil
}

// Render draws the background, the player and the remaining enemies
func (p *Playing) Render() {
	p.surface.Begin()

	p.surface.DrawQuad(p.background.Pos(), p.background.Size(), entity.White, 0)

	size := p.config.Player.Size
	p.surface.DrawQuad(
		entity.Vec2{X: p.player.X, Y: p.player.Y},
		entity.Vec2{X: size, Y: size},
		entity.White,
		p.player.Skin.Slot(),
	)

	enemySize := entity.Vec2{X: p.config.Enemy.Size, Y: p.config.Enemy.Size}
	for _, e := range p.enemies {
		p.surface.DrawQuad(
			entity.Vec2{X: e.X, Y: p.config.Player.RestHeight},
			enemySize,
			entity.White,
			p.enemySkin.Slot(),
		)
	}

	p.surface.End()
}

// Kind reports SceneGame
func (p *Playing) Kind() state.SceneKind {
	return state.SceneGame
}

// Difficulty returns the gameplay variant chosen at construction
func (p *Playing) Difficulty() state.Difficulty {
	return p.difficulty
}

// PlayerSkin returns the player's texture slot
func (p *Playing) PlayerSkin() entity.Skin {
	return p.player.Skin
}

// EnemySkin returns the enemies' texture slot
func (p *Playing) EnemySkin() entity.Skin {
	return p.enemySkin
}

// EnemyCount returns the number of enemies still on the field
func (p *Playing) EnemyCount() int {
	return len(p.enemies)
}
