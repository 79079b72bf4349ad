package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/wars/internal/domain/entity"
)

func TestHoverChecker_Default(t *testing.T) {
	h := NewHoverChecker()

	assert.True(t, h.IsButtonHovered(0, 0, 10, 10), "pointer starts at the origin")
	assert.False(t, h.IsButtonHovered(80, 275, 200, 100))
}

func TestHoverChecker_UpdateMousePosition(t *testing.T) {
	h := NewHoverChecker()

	h.UpdateMousePosition(100, 300)
	assert.True(t, h.IsButtonHovered(80, 275, 200, 100))
	assert.False(t, h.IsButtonHovered(80, 400, 400, 100))

	h.UpdateMousePosition(100, 450)
	assert.False(t, h.IsButtonHovered(80, 275, 200, 100))
	assert.True(t, h.IsHovered(entity.Rect{X: 80, Y: 400, W: 400, H: 100}))
}

func TestHoverChecker_Edges(t *testing.T) {
	h := NewHoverChecker()

	h.UpdateMousePosition(280, 300)
	assert.False(t, h.IsButtonHovered(80, 275, 200, 100), "right edge is outside")

	h.UpdateMousePosition(80, 275)
	assert.True(t, h.IsButtonHovered(80, 275, 200, 100), "top-left corner is inside")
}
