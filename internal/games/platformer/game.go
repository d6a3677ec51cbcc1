// Package platformer implements a side-scrolling platformer: a level of
// ground, floating blocks and pipes, a player who runs and jumps to the goal
// pole, patrolling hostiles that can be stomped and coins to collect.
//
// World is the simulation and knows nothing about terminals. Game adapts it
// to the registry so the platform layer can host it.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "platformer"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// configured rules.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game hosts a World behind the registry interface.
type Game struct {
	world   *World
	runtime core.RuntimeConfig
	hud     HUD
}

// New creates a new platformer instance. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Super Platformer"
}

// Reset loads the configuration and builds an idle world.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// The command line validates the path before any game is created.
	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)

	g.world = NewWorld(cfg, runtime.Seed, WithHUD(g))
	g.hud = g.world.Session().HUD()
}

// Step applies one frame of input and advances the world.
//
// Session controls are edge actions. Directions come from the held set and
// are copied into the world's controls every frame, so the newest state
// always wins. Jump on the title screen starts the game; a jump while paused
// or after the end is dropped rather than queued for later.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world

	switch {
	case in.Has(core.ActionRestart):
		w.Restart()
	case in.Has(core.ActionStart):
		w.Start()
	}

	if in.Has(core.ActionPause) {
		if !w.Pause() {
			w.Resume()
		}
	}
	if in.Has(core.ActionPauseOnly) {
		w.Pause()
	}
	if in.Has(core.ActionResume) {
		w.Resume()
	}

	c := w.Controls()
	c.SetLeft(in.IsHeld(core.ActionLeft))
	c.SetRight(in.IsHeld(core.ActionRight))
	if in.Has(core.ActionJump) {
		switch w.Session().State() {
		case StateIdle:
			w.Start()
		case StateRunning:
			c.Jump()
		}
	}

	w.Step()
	return core.StepResult{State: g.State()}
}

// ClockTick advances the one-second countdown.
func (g *Game) ClockTick() {
	g.world.ClockTick()
}

// Reconfigure queues new tuning for the next restart.
func (g *Game) Reconfigure(cfg config.PlatformerConfig) {
	config.ApplyPreset(&cfg, difficultyPreset)
	g.world.Reconfigure(cfg)
}

// UpdateHUD receives counter changes from the session.
func (g *Game) UpdateHUD(h HUD) {
	g.hud = h
}

// World returns the hosted simulation.
func (g *Game) World() *World {
	return g.world
}

// Render draws the current frame, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cfg := g.world.Config().World
	g.world.Render(newScreenPainter(dst, cfg.ViewportWidth, cfg.ViewportHeight))
	drawHUD(dst, g.hud)

	s := g.world.Session()
	switch s.State() {
	case StateIdle:
		drawCenteredMessage(dst, "SUPER PLATFORMER", "Press SPACE or ENTER to start")
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case StateEnded:
		if s.Outcome() == OutcomeWin {
			drawCenteredMessage(dst, "COURSE CLEAR!", fmtScoreLine(s.Score()))
		} else {
			drawCenteredMessage(dst, "GAME OVER", fmtScoreLine(s.Score()))
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.Session()
	return core.GameState{
		Score:    s.Score(),
		GameOver: s.Ended(),
		Won:      s.Outcome() == OutcomeWin,
		Paused:   s.State() == StatePaused,
		Started:  s.State() != StateIdle,
		Coins:    s.Coins(),
		Lives:    s.Lives(),
		Time:     s.TimeLeft(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
