package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnemies(t *testing.T) {
	es := NewEnemies([]float64{1000, 800, 600})

	require.Len(t, es, 3)
	assert.Equal(t, 1000.0, es[0].X)
	assert.Equal(t, 800.0, es[1].X)
	assert.Equal(t, 600.0, es[2].X)
}

func TestEnemies_Last(t *testing.T) {
	es := NewEnemies([]float64{1000, 800, 600})

	last, ok := es.Last()
	require.True(t, ok)
	assert.Equal(t, 600.0, last.X)

	var empty Enemies
	_, ok = empty.Last()
	assert.False(t, ok)
}

func TestEnemies_At(t *testing.T) {
	es := NewEnemies([]float64{1000, 800})

	e, ok := es.At(0)
	require.True(t, ok)
	assert.Equal(t, 1000.0, e.X)

	// Out of range falls back to the tail
	e, ok = es.At(2)
	require.True(t, ok)
	assert.Equal(t, 800.0, e.X)

	_, ok = Enemies{}.At(0)
	assert.False(t, ok)
}

func TestEnemies_PopLast(t *testing.T) {
	es := NewEnemies([]float64{1000, 800, 600})

	es.PopLast()
	require.Len(t, es, 2)
	assert.Equal(t, 800.0, es[1].X, "tail is removed, order kept")

	es.PopLast()
	es.PopLast()
	assert.Empty(t, es)

	// Popping an empty lineup is a no-op
	es.PopLast()
	assert.Empty(t, es)
}

func TestEnemies_MoveAll(t *testing.T) {
	es := NewEnemies([]float64{1000, 800, 600})

	es.MoveAll(-2.5)

	assert.Equal(t, 997.5, es[0].X)
	assert.Equal(t, 797.5, es[1].X)
	assert.Equal(t, 597.5, es[2].X)
}
