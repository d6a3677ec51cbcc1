package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Body is the moving part shared by the player and hostiles: a box plus a
// velocity in world units per frame.
type Body struct {
	core.Box
	VelX, VelY float64
}

// Contact describes how a body was separated from an obstacle.
type Contact int

const (
	ContactNone    Contact = iota
	ContactSide            // pushed out horizontally
	ContactFloor           // landed on top of the obstacle
	ContactCeiling         // hit the obstacle from below
)

// Resolve pushes b out of a solid obstacle along the axis of least
// penetration and zeroes the velocity on that axis. Horizontal separation
// wins only when it is strictly shallower. Overlap depth is used instead of
// velocity so a body resting on a tile keeps its footing when walking into
// the neighbouring one.
func Resolve(b *Body, o Obstacle) Contact {
	if !o.Solid() || !b.Overlaps(o.Box) {
		return ContactNone
	}

	dx, dy := b.Penetration(o.Box)
	if dx < dy {
		if b.X < o.Box.X {
			b.X = o.Box.X - b.W()
		} else {
			b.X = o.Box.Right()
		}
		b.VelX = 0
		return ContactSide
	}

	b.VelY = 0
	if b.Y < o.Box.Y {
		b.Y = o.Box.Y - b.H()
		return ContactFloor
	}
	b.Y = o.Box.Bottom()
	return ContactCeiling
}
