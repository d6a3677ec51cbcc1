package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

const (
	playerFrames     = 3
	playerFrameTicks = 8
)

// Intent is the continuous part of the player's input for one frame.
type Intent struct {
	Left, Right bool
}

// Player is the controllable actor.
type Player struct {
	Body
	Airborne    bool
	FacingRight bool
	Frame       int // walk animation phase
	frameTicks  int

	physics config.PhysicsConfig
}

func newPlayer(at Point, cfg config.PlatformerConfig) *Player {
	return &Player{
		Body:        Body{Box: core.NewBox(at.X, at.Y, cfg.Player.Width, cfg.Player.Height)},
		FacingRight: true,
		physics:     cfg.Physics,
	}
}

// Jump applies the jump impulse. It is ignored while airborne.
func (p *Player) Jump() bool {
	if p.Airborne {
		return false
	}
	p.VelY = p.physics.JumpImpulse
	p.Airborne = true
	return true
}

// Update integrates one frame of movement. Left wins when both directions
// are held. Releasing both lets friction decay the horizontal speed. The
// body is kept inside [0, worldWidth-width]; the vertical axis is unbounded.
func (p *Player) Update(in Intent, worldWidth float64) {
	switch {
	case in.Left:
		p.VelX = -p.physics.PlayerSpeed
		p.FacingRight = false
	case in.Right:
		p.VelX = p.physics.PlayerSpeed
		p.FacingRight = true
	default:
		p.VelX *= p.physics.Friction
	}

	p.VelY += p.physics.Gravity
	p.X += p.VelX
	p.Y += p.VelY

	p.frameTicks++
	if p.frameTicks >= playerFrameTicks {
		p.frameTicks = 0
		p.Frame = (p.Frame + 1) % playerFrames
	}

	p.X = core.ClampF(p.X, 0, max(0, worldWidth-p.W()))
}

// Respawn moves the player back to the start with zero velocity.
func (p *Player) Respawn(at Point) {
	p.X, p.Y = at.X, at.Y
	p.VelX, p.VelY = 0, 0
	p.Airborne = false
	p.FacingRight = true
}

// Moving reports whether the player is visibly walking.
func (p *Player) Moving() bool {
	return p.VelX > 0.5 || p.VelX < -0.5
}
