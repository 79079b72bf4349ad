package entity

// Enemy is an opponent on the ground line; only its horizontal position changes
type Enemy struct {
	X float64
}

// Enemies is the ordered enemy lineup of a game scene.
//
// Enemies are kept in spawn order, which is decreasing X. The tail is the
// enemy spawned closest to the player's start. Game rules only ever look at
// the tail, so the slice must never be reordered or appended to after
// construction.
type Enemies []Enemy

// NewEnemies creates a lineup from spawn positions, preserving their order
func NewEnemies(spawnX []float64) Enemies {
	es := make(Enemies, len(spawnX))
	for i, x := range spawnX {
		es[i] = Enemy{X: x}
	}
	return es
}

// Last returns the tail enemy
func (es Enemies) Last() (*Enemy, bool) {
	if len(es) == 0 {
		return nil, false
	}
	return &es[len(es)-1], true
}

// At returns the enemy at index i, or the tail when the lineup is shorter
func (es Enemies) At(i int) (*Enemy, bool) {
	if len(es) == 0 {
		return nil, false
	}
	if i >= len(es) {
		i = len(es) - 1
	}
	return &es[i], true
}

// PopLast removes the tail enemy
func (es *Enemies) PopLast() {
	if len(*es) == 0 {
		return
	}
	*es = (*es)[:len(*es)-1]
}

// MoveAll shifts every enemy horizontally by dx
func (es Enemies) MoveAll(dx float64) {
	for i := range es {
		es[i].X += dx
	}
}
