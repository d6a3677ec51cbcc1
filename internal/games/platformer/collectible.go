package platformer

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Collectible is a coin. It spins through a few frames on the frame tick
// and bobs around its anchor on the wall clock, so the bob speed does not
// depend on the frame rate.
type Collectible struct {
	core.Box
	BaseY      float64
	Frame      int
	frameTicks int

	tuning config.CollectibleConfig
}

func newCollectible(at Point, cfg config.CollectibleConfig) Collectible {
	return Collectible{
		Box:    core.NewBox(at.X, at.Y, cfg.Width, cfg.Height),
		BaseY:  at.Y,
		tuning: cfg,
	}
}

// Update advances the spin animation by one frame and places the coin on
// its bob curve for the given time.
func (c *Collectible) Update(now time.Time) {
	c.frameTicks++
	if c.frameTicks >= c.tuning.FrameTicks {
		c.frameTicks = 0
		c.Frame = (c.Frame + 1) % c.tuning.Frames
	}

	phase := float64(now.UnixMilli()) / c.tuning.BobPeriodMsec
	c.Y = c.BaseY + math.Sin(phase)*c.tuning.BobAmplitude
}
