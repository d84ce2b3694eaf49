package runner

import (
	"github.com/vovakirdan/puku-runner/internal/assets"
	"github.com/vovakirdan/puku-runner/internal/core"
)

// Entity is the capability set shared by all scenery actors.
// The lifecycle manager and the renderer dispatch through it uniformly.
type Entity interface {
	// Advance moves the entity by one tick.
	Advance()
	// Bounds returns the entity's box in world units.
	Bounds() core.RectF
	// OffScreen reports whether the entity has fully left the world on the left.
	OffScreen() bool
	// Sprite selects the entity's visual variant from the sheet.
	Sprite(sheet *assets.Sheet) assets.Sprite
}

// Tier distinguishes the two coin kinds.
type Tier int

const (
	TierOrdinary Tier = iota
	TierPremium
)

// String returns the tier name.
func (t Tier) String() string {
	if t == TierPremium {
		return "premium"
	}
	return "ordinary"
}

// Obstacle is a ground hazard. Touching one ends the session.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Variant int // Index into the sheet's obstacle sprites
	speed   float64
}

// Advance moves the obstacle left.
func (o *Obstacle) Advance() { o.X -= o.speed }

// Bounds returns the obstacle's collision box.
func (o *Obstacle) Bounds() core.RectF { return core.NewRectF(o.X, o.Y, o.W, o.H) }

// OffScreen reports whether the right edge has passed the left edge of the world.
func (o *Obstacle) OffScreen() bool { return o.X+o.W < 0 }

// Sprite returns the obstacle's variant.
func (o *Obstacle) Sprite(sheet *assets.Sheet) assets.Sprite {
	return sheet.Obstacles[o.Variant%len(sheet.Obstacles)]
}

// Coin is a collectible token.
type Coin struct {
	X, Y      float64
	W, H      float64
	Tier      Tier
	Value     int
	Collected bool
	speed     float64
}

// Advance moves the coin left.
func (c *Coin) Advance() { c.X -= c.speed }

// Bounds returns the coin's pickup box.
func (c *Coin) Bounds() core.RectF { return core.NewRectF(c.X, c.Y, c.W, c.H) }

// OffScreen reports whether the right edge has passed the left edge of the world.
func (c *Coin) OffScreen() bool { return c.X+c.W < 0 }

// Sprite returns the tier's sprite.
func (c *Coin) Sprite(sheet *assets.Sheet) assets.Sprite {
	if c.Tier == TierPremium {
		return sheet.Coins.Premium
	}
	return sheet.Coins.Ordinary
}

// Airplane is a decorative banner plane on a slower parallax layer.
// It grants a bonus once, when it passes the character.
type Airplane struct {
	X, Y   float64
	W, H   float64
	Passed bool
	speed  float64
}

// Advance moves the airplane left at its own speed.
func (a *Airplane) Advance() { a.X -= a.speed }

// Bounds returns the airplane's box.
func (a *Airplane) Bounds() core.RectF { return core.NewRectF(a.X, a.Y, a.W, a.H) }

// OffScreen reports whether the right edge has passed the left edge of the world.
func (a *Airplane) OffScreen() bool { return a.X+a.W < 0 }

// Sprite returns the banner plane.
func (a *Airplane) Sprite(sheet *assets.Sheet) assets.Sprite { return sheet.Airplane }

// Background is the slowest scrolling layer.
// It wraps once it has scrolled a full width; two copies are drawn side by side.
type Background struct {
	Offset float64 // Always in (-Width, 0]
	Width  float64
}

// Scroll moves the background left by the given distance.
func (b *Background) Scroll(dx float64) {
	b.Offset -= dx
	if b.Offset <= -b.Width {
		b.Offset = 0
	}
}

// Copies returns the left edges of the two copies to draw.
func (b *Background) Copies() [2]float64 {
	return [2]float64{b.Offset, b.Offset + b.Width}
}

// Compile-time checks
var (
	_ Entity = (*Obstacle)(nil)
	_ Entity = (*Coin)(nil)
	_ Entity = (*Airplane)(nil)
)
