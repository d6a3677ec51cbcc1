package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Hostile is a patrolling enemy. It walks at a constant signed speed, turns
// around at walls and is defeated by a stomp from above.
type Hostile struct {
	Body
	Alive       bool
	Defeated    bool
	defeatTicks int

	tuning config.HostileConfig
}

func newHostile(at Point, cfg config.HostileConfig) Hostile {
	return Hostile{
		Body:   Body{Box: core.NewBox(at.X, at.Y, cfg.Width, cfg.Height), VelX: cfg.Speed},
		Alive:  true,
		tuning: cfg,
	}
}

// Collidable reports whether the hostile takes part in collisions.
func (h *Hostile) Collidable() bool {
	return h.Alive && !h.Defeated
}

// Update advances the hostile by one frame. floorY is the bottom of the
// visible world; an active hostile falling past it dies on the spot.
func (h *Hostile) Update(floorY float64) {
	if !h.Alive {
		return
	}
	if h.Defeated {
		h.defeatTicks++
		if h.defeatTicks > h.tuning.DefeatFrames {
			h.Alive = false
		}
		return
	}

	h.VelY += h.tuning.Gravity
	h.X += h.VelX
	h.Y += h.VelY

	if h.Y > floorY {
		h.Alive = false
	}
}

// Stomp defeats the hostile. The body is flattened in place, keeping its
// feet on the ground. Stomping a hostile that is not collidable is a no-op.
func (h *Hostile) Stomp() bool {
	if !h.Collidable() {
		return false
	}
	bottom := h.Bottom()
	h.Defeated = true
	h.defeatTicks = 0
	h.VelX, h.VelY = 0, 0
	h.SetHeight(h.tuning.FlattenedHeight)
	h.Y = bottom - h.H()
	return true
}

// resolve applies the hostile rule against a static obstacle: a shallow
// vertical overlap while falling is a landing, otherwise a shallow
// horizontal overlap turns the hostile around. Unlike Resolve the body is
// not pushed out sideways; the reversed velocity walks it clear.
func (h *Hostile) resolve(o Obstacle) {
	if !o.Solid() || !h.Collidable() || !h.Overlaps(o.Box) {
		return
	}

	dx, dy := h.Penetration(o.Box)
	switch {
	case dy > 0 && dy < h.H() && h.VelY > 0:
		h.Y = o.Box.Y - h.H()
		h.VelY = 0
	case dx > 0 && dx < h.W():
		h.VelX = -h.VelX
	}
}
