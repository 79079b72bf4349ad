// Package ui holds pointer helpers shared by menu scenes.
package ui

import "github.com/younwookim/wars/internal/domain/entity"

// HoverChecker answers whether the last pushed pointer position lies inside
// a rectangle. Push the position every frame before querying.
type HoverChecker struct {
	mouseX, mouseY float64
}

// NewHoverChecker creates a checker with the pointer at the origin
func NewHoverChecker() *HoverChecker {
	return &HoverChecker{}
}

// UpdateMousePosition stores the pointer position for later queries
func (h *HoverChecker) UpdateMousePosition(x, y float64) {
	h.mouseX, h.mouseY = x, y
}

// IsButtonHovered reports whether the pointer is inside (x, y, width, height)
func (h *HoverChecker) IsButtonHovered(x, y, width, height float64) bool {
	return h.IsHovered(entity.Rect{X: x, Y: y, W: width, H: height})
}

// IsHovered reports whether the pointer is inside r
func (h *HoverChecker) IsHovered(r entity.Rect) bool {
	return r.Contains(h.mouseX, h.mouseY)
}
