// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Rect represents an axis-aligned cell rectangle on the terminal screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned body in world units. X, Y is the top-left corner
// and y grows downward. The size is fixed at construction and is always
// positive; only NewBox and SetHeight may change it.
type Box struct {
	X, Y float64
	w, h float64
}

// NewBox creates a body at (x, y) with the given size.
// A non-positive size is a programmer error and panics.
func NewBox(x, y, w, h float64) Box {
	if !(w > 0) || !(h > 0) {
		panic(fmt.Sprintf("core: box size must be positive, got %vx%v", w, h))
	}
	return Box{X: x, Y: y, w: w, h: h}
}

// W returns the body width.
func (b Box) W() float64 { return b.w }

// H returns the body height.
func (b Box) H() float64 { return b.h }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.w }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.h }

// MidY returns the vertical midpoint.
func (b Box) MidY() float64 { return b.Y + b.h/2 }

// SetHeight changes the body height keeping the top edge in place.
func (b *Box) SetHeight(h float64) {
	if !(h > 0) {
		panic(fmt.Sprintf("core: box height must be positive, got %v", h))
	}
	b.h = h
}

// Overlaps reports whether the half-open extents of both bodies intersect
// on both axes. Touching edges do not overlap.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.X+o.w &&
		b.X+b.w > o.X &&
		b.Y < o.Y+o.h &&
		b.Y+b.h > o.Y
}

// Penetration returns the size of the intersection interval on each axis.
// Values are only meaningful when Overlaps is true.
func (b Box) Penetration(o Box) (dx, dy float64) {
	dx = math.Min(b.Right(), o.Right()) - math.Max(b.X, o.X)
	dy = math.Min(b.Bottom(), o.Bottom()) - math.Max(b.Y, o.Y)
	return dx, dy
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
