package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Scenes  *ScenesConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.load("physics.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadScenes loads scenes.json
func (l *Loader) LoadScenes() (*ScenesConfig, error) {
	var cfg ScenesConfig
	if err := l.load("scenes.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) load(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadAll loads and validates all configurations (physics, scenes)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	scenes, err := l.LoadScenes()
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{
		Physics: physics,
		Scenes:  scenes,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", l.basePath, err)
	}
	return cfg, nil
}
