package entity

// Vec2 is a 2D position or size in screen units
type Vec2 struct {
	X, Y float64
}

// Color is an RGBA color multiplier; each channel is in [0, 1]
type Color struct {
	R, G, B, A float64
}

// White is the identity color multiplier
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Gray returns a color with every channel, alpha included, set to v
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v, A: v}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// Pos returns the top-left corner
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Size returns the width and height
func (r Rect) Size() Vec2 {
	return Vec2{X: r.W, Y: r.H}
}

// Contains reports whether (px, py) lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}
