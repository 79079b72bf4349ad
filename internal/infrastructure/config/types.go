package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display DisplayConfig `json:"display"`
	Player  PlayerConfig  `json:"player"`
	Enemy   EnemyConfig   `json:"enemy"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// PlayerConfig configures player motion. Speeds are in units per second.
type PlayerConfig struct {
	Speed       float64 `json:"speed"`
	GravityRate float64 `json:"gravityRate"` // Growth of the fall step per second
	RestHeight  float64 `json:"restHeight"`  // Ground line; smaller Y is higher
	StartX      float64 `json:"startX"`
	StartY      float64 `json:"startY"`
	YSpeed      float64 `json:"ySpeed"`
	Size        float64 `json:"size"`
}

type EnemyConfig struct {
	SpawnX          []float64 `json:"spawnX"` // Spawn order; must be decreasing
	HardSpeed       float64   `json:"hardSpeed"`
	TriggerDistance float64   `json:"triggerDistance"`
	Size            float64   `json:"size"`
}
