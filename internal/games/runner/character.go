package runner

import (
	"github.com/vovakirdan/puku-runner/internal/assets"
	"github.com/vovakirdan/puku-runner/internal/config"
	"github.com/vovakirdan/puku-runner/internal/core"
)

// Pose selects the character's sprite.
type Pose int

const (
	PoseRunning Pose = iota
	PoseJumping
	PoseDucking
)

// String returns the pose name.
func (p Pose) String() string {
	switch p {
	case PoseRunning:
		return "running"
	case PoseJumping:
		return "jumping"
	case PoseDucking:
		return "ducking"
	default:
		return "unknown"
	}
}

// Character is the runner. Its x never changes; the world scrolls past it.
type Character struct {
	X        float64 // Left edge of the sprite
	Y        float64 // Top edge of the sprite (world y grows downward)
	VelY     float64
	Jumping  bool
	Ducking  bool
	RunFrame int // Index into the run animation

	frameCounter int
	cfg          config.RunnerCharacter
	ground       float64
	gravity      float64
	jumpImpulse  float64
}

// NewCharacter creates a character standing on the ground.
func NewCharacter(cfg config.RunnerConfig) *Character {
	c := &Character{
		cfg:         cfg.Character,
		ground:      cfg.World.Ground,
		gravity:     cfg.Physics.Gravity,
		jumpImpulse: cfg.Physics.JumpImpulse,
	}
	c.Reset()
	return c
}

// Reset puts the character back at its starting position.
func (c *Character) Reset() {
	c.X = c.cfg.X
	c.Y = c.standY()
	c.VelY = 0
	c.Jumping = false
	c.Ducking = false
	c.RunFrame = 0
	c.frameCounter = 0
}

// standY is the ground clamp while standing.
func (c *Character) standY() float64 {
	return c.ground - c.cfg.StandHeight
}

// duckY is the ground clamp while ducking.
func (c *Character) duckY() float64 {
	return c.ground - c.cfg.DuckHeight
}

// Jump starts a jump. Only allowed when on the ground and not ducking.
func (c *Character) Jump() bool {
	if c.Jumping || c.Ducking {
		return false
	}
	c.VelY = c.jumpImpulse
	c.Jumping = true
	return true
}

// SetDucking applies the duck input. Ignored while airborne.
func (c *Character) SetDucking(ducking bool) {
	if c.Jumping {
		return
	}
	c.Ducking = ducking
}

// Update advances the character by one tick.
func (c *Character) Update() {
	// Semi-implicit Euler: velocity first, then position
	c.VelY += c.gravity
	c.Y += c.VelY

	if !c.Ducking && c.Y > c.standY() {
		c.land(c.standY())
	}
	if c.Ducking && c.Y > c.duckY() {
		c.land(c.duckY())
	}

	if c.Pose() == PoseRunning {
		c.frameCounter++
		if c.frameCounter >= c.cfg.AnimationSpeed {
			c.RunFrame = (c.RunFrame + 1) % assets.RunFrames
			c.frameCounter = 0
		}
	}
}

// land clamps the character to a ground line.
func (c *Character) land(y float64) {
	c.Y = y
	c.VelY = 0
	c.Jumping = false
}

// Pose returns the sprite state.
func (c *Character) Pose() Pose {
	switch {
	case c.Jumping:
		return PoseJumping
	case c.Ducking:
		return PoseDucking
	default:
		return PoseRunning
	}
}

// Height returns the sprite height for the current pose.
func (c *Character) Height() float64 {
	if c.Ducking && !c.Jumping {
		return c.cfg.DuckHeight
	}
	return c.cfg.StandHeight
}

// Rect returns the collision box. Ducking uses a smaller, lower box.
func (c *Character) Rect() core.RectF {
	box := c.cfg.StandBox
	if c.Ducking {
		box = c.cfg.DuckBox
	}
	return core.NewRectF(c.X+box.OffsetX, c.Y+box.OffsetY, box.Width, box.Height)
}
