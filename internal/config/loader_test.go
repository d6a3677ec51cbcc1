package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded YAML and DefaultPlatformerConfig() disagree:\n%+v\n%+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "world:\n  width: 3200\nsession:\n  lives: 7\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.Width != 3200 {
		t.Errorf("World.Width = %v, expected 3200", cfg.World.Width)
	}
	if cfg.Session.Lives != 7 {
		t.Errorf("Session.Lives = %d, expected 7", cfg.Session.Lives)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 0.6 {
		t.Errorf("Physics.Gravity = %v, expected default 0.6", cfg.Physics.Gravity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "player.width") {
		t.Errorf("Load() of a zero-width player should name the field, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlatformerConfig)
		field  string
	}{
		{"negative hostile height", func(c *PlatformerConfig) { c.Hostile.Height = -1 }, "hostile.height"},
		{"zero lives", func(c *PlatformerConfig) { c.Session.Lives = 0 }, "session.lives"},
		{"friction above one", func(c *PlatformerConfig) { c.Physics.Friction = 1.5 }, "physics.friction"},
		{"viewport shorter than ground", func(c *PlatformerConfig) { c.World.ViewportHeight = 64 }, "world.viewport_height"},
		{"zero coin frames", func(c *PlatformerConfig) { c.Collectible.Frames = 0 }, "collectible.frames"},
	}

	if err := DefaultPlatformerConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPlatformerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives, time int
	}{
		{DifficultyEasy, 5, 500},
		{DifficultyNormal, 3, 400},
		{DifficultyHard, 2, 300},
		{"", 3, 400},
	}

	for _, tc := range tests {
		cfg := DefaultPlatformerConfig()
		ApplyPreset(&cfg, tc.preset)
		if cfg.Session.Lives != tc.lives || cfg.Session.Time != tc.time {
			t.Errorf("preset %q: lives=%d time=%d, expected %d/%d",
				tc.preset, cfg.Session.Lives, cfg.Session.Time, tc.lives, tc.time)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestGroundY(t *testing.T) {
	w := DefaultPlatformerConfig().World
	if w.GroundY() != 656 {
		t.Errorf("GroundY() = %v, expected 656", w.GroundY())
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platformer.yaml")
	if err := os.WriteFile(path, []byte("session:\n  lives: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan PlatformerConfig, 16)
	go w.Run(ctx, func(cfg PlatformerConfig) { reloaded <- cfg }, nil)

	if err := os.WriteFile(path, []byte("session:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloaded:
			if cfg.Session.Lives == 9 {
				return
			}
		case <-deadline:
			t.Fatal("watcher did not deliver the rewritten config")
		}
	}
}
