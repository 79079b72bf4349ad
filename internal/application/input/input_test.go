package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Zero(t *testing.T) {
	var s State

	for _, k := range Keys {
		assert.False(t, s.IsKeyDown(k), "key %d", k)
	}
	for _, b := range MouseButtons {
		assert.False(t, s.IsMouseButtonDown(b), "button %d", b)
	}
	x, y := s.MousePosition()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestState_WithKeys(t *testing.T) {
	s := State{}.WithKeys(KeyA, KeyEscape)

	assert.True(t, s.IsKeyDown(KeyA))
	assert.True(t, s.IsKeyDown(KeyEscape))
	assert.False(t, s.IsKeyDown(KeyD))
	assert.False(t, s.IsKeyDown(KeyLeft))
}

func TestState_WithKeysDoesNotMutateReceiver(t *testing.T) {
	base := State{}.WithKeys(KeyW)
	pressed := base.WithKeys(KeyD)

	assert.False(t, base.IsKeyDown(KeyD))
	assert.True(t, pressed.IsKeyDown(KeyD))
	assert.True(t, pressed.IsKeyDown(KeyW))
}

func TestState_WithButtons(t *testing.T) {
	s := State{}.At(100, 300).WithButtons(MouseButtonLeft)

	assert.True(t, s.IsMouseButtonDown(MouseButtonLeft))
	assert.False(t, s.IsMouseButtonDown(MouseButtonRight))

	x, y := s.MousePosition()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 300.0, y)
}

func TestState_OutOfRange(t *testing.T) {
	s := State{}.WithKeys(Key(-1), Key(40)).WithButtons(MouseButton(9))

	assert.Equal(t, uint32(0), s.Keys)
	assert.Equal(t, uint8(0), s.Buttons)
	assert.False(t, s.IsKeyDown(Key(40)))
	assert.False(t, s.IsMouseButtonDown(MouseButton(-2)))
}

func TestScripted(t *testing.T) {
	src := NewScripted(State{}.WithKeys(KeyA), State{}.At(5, 6))

	s, ok := src.Poll()
	require.True(t, ok)
	assert.True(t, s.IsKeyDown(KeyA))

	s, ok = src.Poll()
	require.True(t, ok)
	assert.Equal(t, 5.0, s.MouseX)

	_, ok = src.Poll()
	assert.False(t, ok)
}
