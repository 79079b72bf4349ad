package state

import "fmt"

// SceneKind identifies one of the closed set of scene variants
type SceneKind int

const (
	SceneMenu SceneKind = iota
	SceneHardModeMenu
	SceneGame
	SceneDummy
)

// String returns the string representation of the scene kind
func (k SceneKind) String() string {
	switch k {
	case SceneMenu:
		return "Menu"
	case SceneHardModeMenu:
		return "HardModeMenu"
	case SceneGame:
		return "Game"
	case SceneDummy:
		return "Dummy"
	default:
		return "Unknown"
	}
}

// ParseSceneKind parses a config or flag name into a SceneKind
func ParseSceneKind(s string) (SceneKind, error) {
	switch s {
	case "menu":
		return SceneMenu, nil
	case "hardModeMenu":
		return SceneHardModeMenu, nil
	case "game":
		return SceneGame, nil
	case "dummy":
		return SceneDummy, nil
	default:
		return 0, fmt.Errorf("unknown scene %q", s)
	}
}

// Difficulty selects the gameplay variant of the game scene
type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyHard
)

// String returns the string representation of the difficulty
func (d Difficulty) String() string {
	switch d {
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty parses a config or flag name into a Difficulty.
// An empty string means normal.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "", "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty %q", s)
	}
}
