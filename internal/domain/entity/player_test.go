package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkin_Other(t *testing.T) {
	assert.Equal(t, SkinB, SkinA.Other())
	assert.Equal(t, SkinA, SkinB.Other())
	assert.Equal(t, 1.0, SkinA.Slot())
	assert.Equal(t, 2.0, SkinB.Slot())
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(200, 370, 200, SkinB)

	assert.Equal(t, 200.0, p.X)
	assert.Equal(t, 370.0, p.Y)
	assert.Equal(t, 200.0, p.YSpeed)
	assert.Equal(t, 0.0, p.Gravity)
	assert.Equal(t, SkinB, p.Skin)
}

func TestPlayer_ApplyGravity_OnGround(t *testing.T) {
	p := NewPlayer(200, 370, 200, SkinA)

	p.ApplyGravity(5, 370, 0.1)

	assert.Equal(t, 370.0, p.Y, "player at rest height does not move")
	assert.Equal(t, 0.0, p.Gravity, "accumulator resets on the ground")
}

func TestPlayer_ApplyGravity_Airborne(t *testing.T) {
	p := NewPlayer(200, 300, 200, SkinA)

	p.ApplyGravity(5, 370, 1)
	assert.InDelta(t, 5.0, p.Gravity, 1e-9)
	assert.InDelta(t, 305.0, p.Y, 1e-9)

	// Accumulator keeps growing while airborne
	p.ApplyGravity(5, 370, 1)
	assert.InDelta(t, 10.0, p.Gravity, 1e-9)
	assert.InDelta(t, 315.0, p.Y, 1e-9)
}

func TestPlayer_ApplyGravity_ZeroDeltaStillFallsByAccumulator(t *testing.T) {
	p := NewPlayer(200, 300, 200, SkinA)
	p.Gravity = 3

	p.ApplyGravity(5, 370, 0)

	assert.InDelta(t, 3.0, p.Gravity, 1e-9)
	assert.InDelta(t, 303.0, p.Y, 1e-9)
}

func TestPlayer_ApplyGravity_BelowRest(t *testing.T) {
	p := NewPlayer(200, 400, 200, SkinA)
	p.Gravity = 7

	p.ApplyGravity(5, 370, 0.5)

	assert.Equal(t, 400.0, p.Y, "no correction back up to the rest line")
	assert.Equal(t, 0.0, p.Gravity)
}

func TestPlayer_Rect(t *testing.T) {
	p := NewPlayer(10, 20, 0, SkinA)

	assert.Equal(t, Rect{X: 10, Y: 20, W: 150, H: 150}, p.Rect(150))
}
