package config

import (
	"errors"
	"fmt"
)

// Validate checks the ranges the scenes rely on
func (c *GameConfig) Validate() error {
	if c.Physics == nil || c.Scenes == nil {
		return errors.New("physics and scenes configs are required")
	}
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("physics: %w", err)
	}
	if err := c.Scenes.Validate(); err != nil {
		return fmt.Errorf("scenes: %w", err)
	}
	return nil
}

// Validate checks display and motion settings
func (p *PhysicsConfig) Validate() error {
	d := p.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("display: screen size %dx%d must be positive", d.ScreenWidth, d.ScreenHeight)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("display: framerate %d must be positive", d.Framerate)
	}
	if d.Scale <= 0 {
		return fmt.Errorf("display: scale %d must be positive", d.Scale)
	}
	if p.Player.Size <= 0 || p.Enemy.Size <= 0 {
		return errors.New("player and enemy sizes must be positive")
	}
	if len(p.Enemy.SpawnX) == 0 {
		return errors.New("enemy: spawnX must not be empty")
	}
	for i := 1; i < len(p.Enemy.SpawnX); i++ {
		if p.Enemy.SpawnX[i] >= p.Enemy.SpawnX[i-1] {
			return fmt.Errorf("enemy: spawnX[%d]=%v must be less than spawnX[%d]=%v",
				i, p.Enemy.SpawnX[i], i-1, p.Enemy.SpawnX[i-1])
		}
	}
	if p.Enemy.TriggerDistance <= 0 {
		return fmt.Errorf("enemy: triggerDistance %v must be positive", p.Enemy.TriggerDistance)
	}
	return nil
}

// Validate checks texture slots and menu buttons
func (s *ScenesConfig) Validate() error {
	for name, m := range map[string]MenuConfig{"menu": s.Menu, "hardModeMenu": s.HardModeMenu} {
		if err := m.validate(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if err := s.Game.validate(); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	if s.Game.Slots < 3 {
		return fmt.Errorf("game: needs at least 3 slots (background and two skins), got %d", s.Game.Slots)
	}
	if err := s.Dummy.validate(); err != nil {
		return fmt.Errorf("dummy: %w", err)
	}
	return nil
}

func (a AssetsConfig) validate() error {
	if a.Slots <= 0 {
		return fmt.Errorf("slots %d must be positive", a.Slots)
	}
	for _, t := range a.Textures {
		if t.Slot < 0 || t.Slot >= a.Slots {
			return fmt.Errorf("texture %s: slot %d out of range [0, %d)", t.Path, t.Slot, a.Slots)
		}
	}
	return nil
}

func (m MenuConfig) validate() error {
	if err := m.Assets.validate(); err != nil {
		return err
	}
	if m.HoverDim <= 0 || m.HoverDim > 1 {
		return fmt.Errorf("hoverDim %v must be in (0, 1]", m.HoverDim)
	}
	if len(m.Buttons) == 0 {
		return errors.New("at least one button is required")
	}
	for _, b := range m.Buttons {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("button %s: size must be positive", b.Name)
		}
		if b.Slot < 0 || b.Slot >= m.Assets.Slots {
			return fmt.Errorf("button %s: slot %d out of range [0, %d)", b.Name, b.Slot, m.Assets.Slots)
		}
		if b.Target == "" {
			return fmt.Errorf("button %s: target is required", b.Name)
		}
	}
	return nil
}
