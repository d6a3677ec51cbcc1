// Package config provides YAML-based tuning for the platformer: world
// dimensions, physics constants, entity sizes and session rules.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Hostile     HostileConfig     `yaml:"hostile"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Session     SessionConfig     `yaml:"session"`
}

// WorldConfig defines the level extent and the logical viewport the camera
// follows. All values are world units.
type WorldConfig struct {
	Width          float64 `yaml:"width"`
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	TileSize       float64 `yaml:"tile_size"`
	FinishMargin   float64 `yaml:"finish_margin"` // distance from the world end that wins the level
}

// GroundY returns the top edge of the ground strip.
func (w WorldConfig) GroundY() float64 {
	return w.ViewportHeight - w.TileSize
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	PlayerSpeed float64 `yaml:"player_speed"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	Friction    float64 `yaml:"friction"`
	StompBounce float64 `yaml:"stomp_bounce"`
}

// PlayerConfig defines the player body and spawn point.
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HostileConfig defines patrolling enemies.
type HostileConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"` // signed; negative walks left
	Gravity         float64 `yaml:"gravity"`
	FlattenedHeight float64 `yaml:"flattened_height"`
	DefeatFrames    int     `yaml:"defeat_frames"`
}

// CollectibleConfig defines coins.
type CollectibleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Frames        int     `yaml:"frames"`
	FrameTicks    int     `yaml:"frame_ticks"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	BobPeriodMsec float64 `yaml:"bob_period_ms"`
}

// SessionConfig defines scoring and lives.
type SessionConfig struct {
	Lives        int `yaml:"lives"`
	Time         int `yaml:"time"`
	CoinsPerLife int `yaml:"coins_per_life"`
	StompPoints  int `yaml:"stomp_points"`
	CoinPoints   int `yaml:"coin_points"`
	TimeBonus    int `yaml:"time_bonus"` // points per remaining second on a win
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyPreset adjusts session rules for a difficulty preset.
// Normal and the empty preset keep the configured values.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Session.Time = 500
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Session.Time = 300
	}
}

// Validate rejects configurations that would construct degenerate bodies or
// a session that cannot run.
func (c PlatformerConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.viewport_width", c.World.ViewportWidth)
	positive("world.viewport_height", c.World.ViewportHeight)
	positive("world.tile_size", c.World.TileSize)
	positive("physics.player_speed", c.Physics.PlayerSpeed)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("hostile.width", c.Hostile.Width)
	positive("hostile.height", c.Hostile.Height)
	positive("hostile.flattened_height", c.Hostile.FlattenedHeight)
	positive("collectible.width", c.Collectible.Width)
	positive("collectible.height", c.Collectible.Height)
	positive("collectible.bob_period_ms", c.Collectible.BobPeriodMsec)
	positive("session.lives", float64(c.Session.Lives))
	positive("session.time", float64(c.Session.Time))
	positive("session.coins_per_life", float64(c.Session.CoinsPerLife))
	positive("collectible.frames", float64(c.Collectible.Frames))
	positive("collectible.frame_ticks", float64(c.Collectible.FrameTicks))

	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("physics.friction must be within [0, 1], got %v", c.Physics.Friction))
	}
	if c.World.ViewportHeight <= c.World.TileSize {
		errs = append(errs, fmt.Errorf("world.viewport_height (%v) must exceed world.tile_size (%v)",
			c.World.ViewportHeight, c.World.TileSize))
	}
	if c.Hostile.DefeatFrames < 0 {
		errs = append(errs, fmt.Errorf("hostile.defeat_frames must not be negative, got %d", c.Hostile.DefeatFrames))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid platformer config: %w", errors.Join(errs...))
	}
	return nil
}
