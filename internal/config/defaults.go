package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Width:          6400,
			ViewportWidth:  1280,
			ViewportHeight: 720,
			TileSize:       64,
			FinishMargin:   250,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			PlayerSpeed: 5,
			JumpImpulse: -15,
			Friction:    0.85,
			StompBounce: -8,
		},
		Player: PlayerConfig{
			StartX: 100,
			Width:  48,
			Height: 64,
		},
		Hostile: HostileConfig{
			Width:           48,
			Height:          48,
			Speed:           -1.5,
			Gravity:         0.5,
			FlattenedHeight: 16,
			DefeatFrames:    30,
		},
		Collectible: CollectibleConfig{
			Width:         32,
			Height:        32,
			Frames:        4,
			FrameTicks:    10,
			BobAmplitude:  3,
			BobPeriodMsec: 300,
		},
		Session: SessionConfig{
			Lives:        3,
			Time:         400,
			CoinsPerLife: 100,
			StompPoints:  100,
			CoinPoints:   200,
			TimeBonus:    50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
