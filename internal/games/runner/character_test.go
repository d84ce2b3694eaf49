package runner

import (
	"testing"

	"github.com/vovakirdan/puku-runner/internal/config"
)

func TestJumpLandsBackOnGround(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	c := NewCharacter(cfg)
	standY := cfg.World.Ground - cfg.Character.StandHeight

	if !c.Jump() {
		t.Fatal("Jump from the ground should succeed")
	}
	if c.Jump() {
		t.Error("Jump while airborne should be ignored")
	}

	landed := -1
	for i := 1; i <= 100; i++ {
		c.Update()
		if c.Y > standY {
			t.Fatalf("tick %d: character below ground: y=%v", i, c.Y)
		}
		if !c.Jumping {
			landed = i
			break
		}
	}

	if landed < 0 {
		t.Fatal("character never landed")
	}
	if c.Y != standY || c.VelY != 0 {
		t.Errorf("after landing y=%v vel=%v, want y=%v vel=0", c.Y, c.VelY, standY)
	}
	// Impulse -16 with gravity 1 is airborne for about 32 ticks
	if landed < 30 || landed > 34 {
		t.Errorf("landed after %d ticks, want about 32", landed)
	}
}

func TestNoDuckWhileAirborne(t *testing.T) {
	c := NewCharacter(config.DefaultRunnerConfig())
	c.Jump()
	c.Update()

	c.SetDucking(true)
	if c.Ducking {
		t.Error("ducking should be ignored mid-air")
	}
	if c.Pose() != PoseJumping {
		t.Errorf("pose = %v, want jumping", c.Pose())
	}
}

func TestNoJumpWhileDucking(t *testing.T) {
	c := NewCharacter(config.DefaultRunnerConfig())
	c.SetDucking(true)
	c.Update()

	if c.Jump() {
		t.Error("jump should be blocked while ducking")
	}
	if c.VelY != 0 {
		t.Errorf("VelY = %v, want 0", c.VelY)
	}
}

func TestDuckClamp(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	c := NewCharacter(cfg)

	c.SetDucking(true)
	// Ducking lowers the clamp; gravity pulls the character down to it
	for i := 0; i < 20; i++ {
		c.Update()
	}
	if want := cfg.World.Ground - cfg.Character.DuckHeight; c.Y != want {
		t.Errorf("ducking y = %v, want %v", c.Y, want)
	}
	if c.Pose() != PoseDucking {
		t.Errorf("pose = %v, want ducking", c.Pose())
	}

	c.SetDucking(false)
	c.Update()
	if want := cfg.World.Ground - cfg.Character.StandHeight; c.Y != want {
		t.Errorf("standing y = %v, want %v", c.Y, want)
	}
}

func TestDuckBoxIsSmaller(t *testing.T) {
	c := NewCharacter(config.DefaultRunnerConfig())
	stand := c.Rect()

	c.SetDucking(true)
	for i := 0; i < 20; i++ {
		c.Update()
	}
	duck := c.Rect()

	if duck.H >= stand.H {
		t.Errorf("duck box height %v should be below stand box height %v", duck.H, stand.H)
	}
	if duck.Y <= stand.Y {
		t.Errorf("duck box top %v should be lower than stand box top %v", duck.Y, stand.Y)
	}
}

func TestRunAnimation(t *testing.T) {
	tests := []struct {
		ticks int
		frame int
	}{
		{4, 0},
		{5, 1},
		{10, 2},
		{15, 0},
	}

	for _, tt := range tests {
		c := NewCharacter(config.DefaultRunnerConfig())
		for i := 0; i < tt.ticks; i++ {
			c.Update()
		}
		if c.RunFrame != tt.frame {
			t.Errorf("after %d ticks RunFrame = %d, want %d", tt.ticks, c.RunFrame, tt.frame)
		}
	}
}

func TestBackgroundWraps(t *testing.T) {
	bg := Background{Width: 800}

	bg.Scroll(2.5)
	if bg.Offset != -2.5 {
		t.Errorf("Offset = %v, want -2.5", bg.Offset)
	}

	for i := 0; i < 319; i++ {
		bg.Scroll(2.5)
	}
	// 320 * 2.5 = 800 reaches -Width and wraps
	if bg.Offset != 0 {
		t.Errorf("Offset after a full width = %v, want 0", bg.Offset)
	}

	copies := bg.Copies()
	if copies[1]-copies[0] != bg.Width {
		t.Errorf("copies %v should be one width apart", copies)
	}
}
