package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Camera is the horizontal scroll offset. There is no vertical scrolling.
type Camera struct {
	X float64
}

// Follow keeps the target a third of the way into the viewport, clamped to
// [0, worldWidth-viewportWidth]. A world narrower than the viewport pins
// the camera at 0.
func (c *Camera) Follow(targetX, worldWidth, viewportWidth float64) {
	c.X = core.ClampF(targetX-viewportWidth/3, 0, max(0, worldWidth-viewportWidth))
}

// Reset snaps the camera back to the start of the world.
func (c *Camera) Reset() {
	c.X = 0
}
