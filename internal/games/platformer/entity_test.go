package platformer

import (
	"math"
	"testing"
	"time"
)

func TestPlayerRunsRight(t *testing.T) {
	cfg := testConfig()
	const worldW = 6400

	for _, n := range []int{0, 1, 10, 100, 1250, 1251, 1300, 2000} {
		p := newPlayer(Point{X: 100, Y: 0}, cfg)
		for i := 0; i < n; i++ {
			p.Update(Intent{Right: true}, worldW)
		}
		expected := math.Min(100+5*float64(n), worldW-cfg.Player.Width)
		if p.X != expected {
			t.Errorf("after %d frames x = %v, expected %v", n, p.X, expected)
		}
	}
}

func TestPlayerUpdate(t *testing.T) {
	cfg := testConfig()

	t.Run("left wins over right", func(t *testing.T) {
		p := newPlayer(Point{X: 500}, cfg)
		p.Update(Intent{Left: true, Right: true}, 6400)
		if p.VelX != -5 || p.FacingRight {
			t.Errorf("VelX = %v facingRight = %v, expected -5 and false", p.VelX, p.FacingRight)
		}
	})

	t.Run("friction decays without stopping", func(t *testing.T) {
		p := newPlayer(Point{X: 500}, cfg)
		p.Update(Intent{Right: true}, 6400)
		p.Update(Intent{}, 6400)
		if math.Abs(p.VelX-4.25) > 1e-9 {
			t.Errorf("VelX = %v, expected 4.25", p.VelX)
		}
		for i := 0; i < 100; i++ {
			p.Update(Intent{}, 6400)
		}
		if p.VelX <= 0 {
			t.Errorf("friction should decay asymptotically, VelX = %v", p.VelX)
		}
	})

	t.Run("gravity every frame", func(t *testing.T) {
		p := newPlayer(Point{X: 500}, cfg)
		p.Update(Intent{}, 6400)
		p.Update(Intent{}, 6400)
		if math.Abs(p.VelY-1.2) > 1e-9 || math.Abs(p.Y-1.8) > 1e-9 {
			t.Errorf("VelY = %v Y = %v, expected 1.2 and 1.8", p.VelY, p.Y)
		}
	})

	t.Run("left world edge", func(t *testing.T) {
		p := newPlayer(Point{X: 2}, cfg)
		p.Update(Intent{Left: true}, 6400)
		if p.X != 0 {
			t.Errorf("x = %v, expected 0", p.X)
		}
	})

	t.Run("walk animation", func(t *testing.T) {
		p := newPlayer(Point{X: 500}, cfg)
		for i := 0; i < 8; i++ {
			p.Update(Intent{Right: true}, 6400)
		}
		if p.Frame != 1 {
			t.Errorf("frame after 8 ticks = %d, expected 1", p.Frame)
		}
		for i := 0; i < 16; i++ {
			p.Update(Intent{Right: true}, 6400)
		}
		if p.Frame != 0 {
			t.Errorf("frame after 24 ticks = %d, expected 0", p.Frame)
		}
	})
}

func TestPlayerJump(t *testing.T) {
	p := newPlayer(Point{X: 100, Y: 592}, testConfig())

	if !p.Jump() {
		t.Fatal("grounded jump should succeed")
	}
	if p.VelY != -15 || !p.Airborne {
		t.Errorf("VelY = %v airborne = %v, expected -15 and true", p.VelY, p.Airborne)
	}

	p.VelY = -3
	if p.Jump() {
		t.Error("airborne jump should be ignored")
	}
	if p.VelY != -3 {
		t.Errorf("ignored jump changed VelY to %v", p.VelY)
	}

	p.Respawn(Point{X: 100, Y: 592})
	if p.Airborne || p.VelX != 0 || p.VelY != 0 {
		t.Error("respawn should leave the player standing still")
	}
}

func TestHostileBouncesOffWall(t *testing.T) {
	cfg := testConfig()
	wall := block(40, 560, 64, 128, ObstaclePipe)

	// Just clear of the wall; the next frame walks into it
	h := newHostile(Point{X: 104.5, Y: 608}, cfg.Hostile)
	if h.VelX != -1.5 {
		t.Fatalf("initial VelX = %v, expected -1.5", h.VelX)
	}

	h.Update(720)
	h.resolve(wall)

	if h.VelX != 1.5 {
		t.Errorf("VelX after wall = %v, expected exactly 1.5", h.VelX)
	}
}

func TestHostileLands(t *testing.T) {
	cfg := testConfig()
	ground := block(64, 656, 64, 64, ObstacleGround)

	h := newHostile(Point{X: 70, Y: 610}, cfg.Hostile)
	h.VelY = 2
	h.Update(720)
	h.resolve(ground)

	if h.Y != 608 || h.VelY != 0 {
		t.Errorf("hostile at y=%v vy=%v, expected 608 and 0", h.Y, h.VelY)
	}
	if h.VelX != -1.5 {
		t.Errorf("landing should keep walking, VelX = %v", h.VelX)
	}
}

func TestHostileIgnoresPole(t *testing.T) {
	h := newHostile(Point{X: 100, Y: 608}, testConfig().Hostile)
	h.resolve(block(100, 256, 16, 400, ObstaclePole))
	if h.VelX != -1.5 {
		t.Errorf("pole changed VelX to %v", h.VelX)
	}
}

func TestHostileStomp(t *testing.T) {
	cfg := testConfig()
	h := newHostile(Point{X: 300, Y: 608}, cfg.Hostile)

	if !h.Stomp() {
		t.Fatal("first stomp should defeat")
	}
	if !h.Defeated || h.Collidable() {
		t.Error("stomped hostile should be defeated and not collidable")
	}
	if h.H() != 16 || h.Bottom() != 656 {
		t.Errorf("flattened body h=%v bottom=%v, expected 16 and 656", h.H(), h.Bottom())
	}
	if h.Stomp() {
		t.Error("stomping a defeated hostile should be a no-op")
	}

	// Defeated hostiles ignore obstacles
	h.resolve(block(290, 600, 64, 64, ObstacleBrick))
	if h.Y != 640 {
		t.Errorf("defeated hostile moved to y=%v", h.Y)
	}

	for i := 0; i < cfg.Hostile.DefeatFrames; i++ {
		h.Update(720)
	}
	if !h.Alive {
		t.Fatal("hostile removed before the countdown elapsed")
	}
	h.Update(720)
	if h.Alive {
		t.Error("hostile should be removed once the countdown exceeds the threshold")
	}
}

func TestHostileFallsOutOfWorld(t *testing.T) {
	h := newHostile(Point{X: 850, Y: 720}, testConfig().Hostile)
	h.Update(720)
	if h.Alive {
		t.Error("hostile below the floor should die")
	}
	if h.Defeated {
		t.Error("falling is not a defeat")
	}
}

func TestCollectibleUpdate(t *testing.T) {
	cfg := testConfig()
	c := newCollectible(Point{X: 350, Y: 406}, cfg.Collectible)

	c.Update(time.UnixMilli(0))
	if c.Y != 406 {
		t.Errorf("y at t=0 = %v, expected the anchor 406", c.Y)
	}

	at := time.UnixMilli(1234)
	c.Update(at)
	expected := 406 + math.Sin(1234.0/300)*3
	if math.Abs(c.Y-expected) > 1e-9 {
		t.Errorf("y at t=1234ms = %v, expected %v", c.Y, expected)
	}

	for ms := int64(0); ms < 5000; ms += 17 {
		c.Update(time.UnixMilli(ms))
		if math.Abs(c.Y-c.BaseY) > 3+1e-9 {
			t.Fatalf("bob left the amplitude at %dms: %v", ms, c.Y-c.BaseY)
		}
	}
}

func TestCollectibleFrames(t *testing.T) {
	c := newCollectible(Point{X: 0, Y: 0}, testConfig().Collectible)
	now := time.UnixMilli(0)

	for i := 0; i < 9; i++ {
		c.Update(now)
	}
	if c.Frame != 0 {
		t.Errorf("frame after 9 ticks = %d, expected 0", c.Frame)
	}
	c.Update(now)
	if c.Frame != 1 {
		t.Errorf("frame after 10 ticks = %d, expected 1", c.Frame)
	}
	for i := 0; i < 30; i++ {
		c.Update(now)
	}
	if c.Frame != 0 {
		t.Errorf("frame after 40 ticks = %d, expected to wrap to 0", c.Frame)
	}
}

func TestControls(t *testing.T) {
	var c Controls

	c.SetRight(true)
	c.SetLeft(true)
	c.SetLeft(false)
	if in := c.Intent(); in.Left || !in.Right {
		t.Errorf("intent = %+v, expected right only", in)
	}

	c.Jump()
	c.Jump()
	if !c.takeJump() {
		t.Fatal("queued jump should be consumed")
	}
	if c.takeJump() {
		t.Error("repeated jumps should collapse into one")
	}

	c.Jump()
	c.Release()
	if c.JumpQueued() || c.Intent() != (Intent{}) {
		t.Error("Release should clear everything")
	}
}

func TestCameraFollow(t *testing.T) {
	var c Camera

	for x := -500.0; x < 8000; x += 37 {
		c.Follow(x, 6400, 1280)
		if c.X < 0 || c.X > 5120 {
			t.Fatalf("camera at %v for x=%v, outside [0, 5120]", c.X, x)
		}
	}

	c.Follow(1000, 6400, 1280)
	if math.Abs(c.X-(1000-1280.0/3)) > 1e-9 {
		t.Errorf("camera = %v, expected the target a third into the view", c.X)
	}

	c.Follow(6352, 6400, 1280)
	if c.X != 5120 {
		t.Errorf("camera at world end = %v, expected 5120", c.X)
	}

	c.Follow(900, 1000, 1280)
	if c.X != 0 {
		t.Errorf("narrow world camera = %v, expected 0", c.X)
	}

	c.X = 300
	c.Reset()
	if c.X != 0 {
		t.Error("Reset should return to 0")
	}
}
