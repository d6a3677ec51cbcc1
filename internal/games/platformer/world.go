package platformer

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

// World owns one level and everything moving in it. All methods must be
// called from a single goroutine; hosts serialize frames, clock ticks and
// input through their event loop.
type World struct {
	cfg     config.PlatformerConfig
	pending *config.PlatformerConfig
	seed    int64

	fixed *Level // replaces the generator when set
	level Level

	player   *Player
	hostiles []Hostile
	coins    []Collectible

	camera   Camera
	controls Controls
	session  *Session

	now    func() time.Time
	frames uint64
}

// Option customizes a World.
type Option func(*World)

// WithClock replaces the wall clock used for coin bobbing.
func WithClock(now func() time.Time) Option {
	return func(w *World) { w.now = now }
}

// WithHUD registers the sink notified on every counter change.
func WithHUD(h HUDSink) Option {
	return func(w *World) { w.session.hud = h }
}

// WithLevel uses l instead of the generated level.
func WithLevel(l Level) Option {
	return func(w *World) {
		w.fixed = &l
		w.level = l
	}
}

// NewWorld builds an idle world. The static level is laid out right away so
// it can be shown behind the title screen; entities spawn on Start.
func NewWorld(cfg config.PlatformerConfig, seed int64, opts ...Option) *World {
	w := &World{
		cfg:     cfg,
		seed:    seed,
		now:     time.Now,
		session: NewSession(cfg.Session, nil),
	}
	w.level = w.buildLevel()
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *World) buildLevel() Level {
	if w.fixed != nil {
		return *w.fixed
	}
	rng := rand.New(rand.NewSource(w.seed))
	return GenerateLevel(LevelParams{
		Width:         w.cfg.World.Width,
		GroundY:       w.cfg.World.GroundY(),
		Tile:          w.cfg.World.TileSize,
		HostileHeight: w.cfg.Hostile.Height,
	}, rng)
}

// spawnPoint is where the player starts and respawns: standing on the ground.
func (w *World) spawnPoint() Point {
	return Point{X: w.cfg.Player.StartX, Y: w.cfg.World.GroundY() - w.cfg.Player.Height}
}

// populate places the player, hostiles and coins for a fresh run.
func (w *World) populate() {
	w.player = newPlayer(w.spawnPoint(), w.cfg)

	w.hostiles = make([]Hostile, 0, len(w.level.HostileSpawns))
	for _, at := range w.level.HostileSpawns {
		w.hostiles = append(w.hostiles, newHostile(at, w.cfg.Hostile))
	}

	w.coins = make([]Collectible, 0, len(w.level.CoinSpawns))
	for _, at := range w.level.CoinSpawns {
		w.coins = append(w.coins, newCollectible(at, w.cfg.Collectible))
	}

	w.camera.Reset()
	w.frames = 0
}

// Start begins the first run. It only acts on an idle world.
func (w *World) Start() bool {
	if !w.session.Start() {
		return false
	}
	w.populate()
	return true
}

// Restart throws the current run away and begins a new one from any state.
// A configuration queued with Reconfigure takes effect here.
func (w *World) Restart() {
	if w.pending != nil {
		w.cfg = *w.pending
		w.pending = nil
		w.session.rules = w.cfg.Session
		w.level = w.buildLevel()
	}
	w.controls.takeJump()
	w.session.Restart()
	w.populate()
}

// Pause suspends a running world.
func (w *World) Pause() bool { return w.session.Pause() }

// Resume continues a paused world.
func (w *World) Resume() bool { return w.session.Resume() }

// Reconfigure queues new tuning for the next restart. A running level never
// changes rules midway.
func (w *World) Reconfigure(cfg config.PlatformerConfig) {
	w.pending = &cfg
}

// Step advances the simulation by one frame. It does nothing unless the
// session is running.
func (w *World) Step() {
	if w.session.State() != StateRunning || w.player == nil {
		return
	}
	w.frames++
	p := w.player

	if w.controls.takeJump() {
		p.Jump()
	}
	p.Update(w.controls.Intent(), w.level.Width)

	for _, o := range w.level.Obstacles {
		if !p.Overlaps(o.Box) {
			continue
		}
		if Resolve(&p.Body, o) == ContactFloor {
			p.Airborne = false
		}
	}

	w.stepHostiles()
	w.stepCoins()

	w.camera.Follow(p.X, w.level.Width, w.cfg.World.ViewportWidth)

	if p.Y > w.cfg.World.ViewportHeight {
		w.die()
	}
	w.checkFinish()
}

func (w *World) stepHostiles() {
	p := w.player
	for i := range w.hostiles {
		h := &w.hostiles[i]
		if !h.Alive {
			continue
		}

		h.Update(w.cfg.World.ViewportHeight)
		for _, o := range w.level.Obstacles {
			h.resolve(o)
		}

		if !h.Collidable() || !p.Overlaps(h.Box) {
			continue
		}
		if p.VelY > 0 && p.Bottom() < h.MidY() {
			h.Stomp()
			p.VelY = w.cfg.Physics.StompBounce
			w.session.AddScore(w.cfg.Session.StompPoints)
		} else {
			w.die()
		}
	}

	alive := w.hostiles[:0]
	for _, h := range w.hostiles {
		if h.Alive {
			alive = append(alive, h)
		}
	}
	w.hostiles = alive
}

// stepCoins collects touched coins and animates the rest. A coin is only
// taken while the run is live, so a death earlier in the frame that ended
// the game leaves it in place.
func (w *World) stepCoins() {
	now := w.now()
	kept := w.coins[:0]
	for _, c := range w.coins {
		if w.session.Running() && w.player.Overlaps(c.Box) {
			w.session.CollectCoin()
			continue
		}
		c.Update(now)
		kept = append(kept, c)
	}
	w.coins = kept
}

// ClockTick counts one second off the session clock. Running out of time
// costs a life like any other death.
func (w *World) ClockTick() {
	if w.player == nil {
		return
	}
	if w.session.Tick() {
		w.die()
	}
}

// die takes a life and, if any remain, puts the player back at the start
// with a fresh clock. Score and coins are kept.
func (w *World) die() {
	if !w.session.LoseLife() {
		return
	}
	w.player.Respawn(w.spawnPoint())
	w.camera.Reset()
	w.session.ResetClock()
}

// checkFinish ends the run as a win once the player reaches the finish
// margin, converting the remaining time into points.
func (w *World) checkFinish() {
	if !w.session.Running() {
		return
	}
	if w.player.X < w.level.Width-w.cfg.World.FinishMargin {
		return
	}
	w.session.AddScore(w.session.TimeLeft() * w.cfg.Session.TimeBonus)
	w.session.End(OutcomeWin)
}

// Controls returns the input state the next frame will read.
func (w *World) Controls() *Controls { return &w.controls }

// Session returns the session bookkeeping.
func (w *World) Session() *Session { return w.session }

// Player returns the player, or nil before the first start.
func (w *World) Player() *Player { return w.player }

// Hostiles returns the active hostiles in spawn order.
func (w *World) Hostiles() []Hostile { return w.hostiles }

// Collectibles returns the coins not yet picked up.
func (w *World) Collectibles() []Collectible { return w.coins }

// Level returns the static level.
func (w *World) Level() Level { return w.level }

// Camera returns the camera.
func (w *World) Camera() Camera { return w.camera }

// Config returns the tuning in effect.
func (w *World) Config() config.PlatformerConfig { return w.cfg }

// Frames returns the number of frames simulated since the run began.
func (w *World) Frames() uint64 { return w.frames }
