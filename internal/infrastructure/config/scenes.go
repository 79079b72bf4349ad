package config

// ScenesConfig is the root config for scenes.json
type ScenesConfig struct {
	Menu         MenuConfig   `json:"menu"`
	HardModeMenu MenuConfig   `json:"hardModeMenu"`
	Game         AssetsConfig `json:"game"`
	Dummy        AssetsConfig `json:"dummy"`
}

// AssetsConfig lists the textures a scene loads into its draw surface
type AssetsConfig struct {
	Slots    int             `json:"slots"`
	Textures []TextureConfig `json:"textures"`
}

type TextureConfig struct {
	Path string `json:"path"` // Relative to the assets root
	Slot int    `json:"slot"`
}

// MenuConfig describes a button menu scene
type MenuConfig struct {
	Assets   AssetsConfig   `json:"assets"`
	HoverDim float64        `json:"hoverDim"` // Color scale for a hovered button
	Buttons  []ButtonConfig `json:"buttons"`  // Priority order
}

// ButtonConfig is one clickable menu button
type ButtonConfig struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Slot       int     `json:"slot"`
	Target     string  `json:"target"`               // Scene name, e.g. "game"
	Difficulty string  `json:"difficulty,omitempty"` // Only for target "game"
}
