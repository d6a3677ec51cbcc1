package platformer

// Controls holds the player's input state between frames. Directions are
// level flags that keep their last value until changed. Jump is a single
// queued request consumed by the next running frame; repeats before that
// frame collapse into one.
type Controls struct {
	left, right bool
	jump        bool
}

// SetLeft sets whether left is held.
func (c *Controls) SetLeft(held bool) { c.left = held }

// SetRight sets whether right is held.
func (c *Controls) SetRight(held bool) { c.right = held }

// Jump queues a jump for the next frame.
func (c *Controls) Jump() { c.jump = true }

// Intent returns the held directions.
func (c *Controls) Intent() Intent {
	return Intent{Left: c.left, Right: c.right}
}

// JumpQueued reports whether a jump is waiting to be consumed.
func (c *Controls) JumpQueued() bool { return c.jump }

func (c *Controls) takeJump() bool {
	j := c.jump
	c.jump = false
	return j
}

// Release drops every held direction and any queued jump.
func (c *Controls) Release() {
	*c = Controls{}
}
