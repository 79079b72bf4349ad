package entity

// Skin is a character texture slot. The two character skins always split
// between the player and the enemies.
type Skin int

const (
	SkinA Skin = 1
	SkinB Skin = 2
)

// Other returns the complementary skin
func (s Skin) Other() Skin {
	if s == SkinA {
		return SkinB
	}
	return SkinA
}

// Slot returns the skin as a draw-surface texture selector
func (s Skin) Slot() float64 {
	return float64(s)
}

// Player is the controllable character
type Player struct {
	X, Y float64

	// YSpeed is the configured vertical speed. Upward thrust uses the shared
	// move speed, so nothing reads it during a frame.
	YSpeed float64

	// Gravity is the accumulated fall step, added to Y each frame the player
	// is airborne and reset on the ground.
	Gravity float64

	Skin Skin
}

// NewPlayer creates a player at the given position
func NewPlayer(x, y, ySpeed float64, skin Skin) *Player {
	return &Player{
		X:      x,
		Y:      y,
		YSpeed: ySpeed,
		Skin:   skin,
	}
}

// ApplyGravity advances the fall accumulator by rate*dt and drops the player
// while above restY. On or below restY the accumulator resets instead.
//
// The accumulator is added to Y as a per-frame step, not integrated over dt,
// so fall speed depends on how long the player has been airborne and on the
// frame count rather than on elapsed time alone.
func (p *Player) ApplyGravity(rate, restY, dt float64) {
	p.Gravity += rate * dt
	if p.Y < restY {
		p.Y += p.Gravity
	} else {
		p.Gravity = 0
	}
}

// Rect returns the player's quad for a square sprite of the given size
func (p *Player) Rect(size float64) Rect {
	return Rect{X: p.X, Y: p.Y, W: size, H: size}
}
