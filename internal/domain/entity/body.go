package entity

import (
	"time"

	"github.com/younwookim/robobrawl/internal/domain/geom"
	"github.com/younwookim/robobrawl/internal/domain/platform"
)

// Combatant is the physical body and status state shared by the player and every enemy.
// Velocities are in pixels per tick.
type Combatant struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64

	Health    int
	MaxHealth int
	Alive     bool

	Grounded            bool
	DoubleJumpAvailable bool

	Invincible  Timer
	Stunned     Timer
	Knockback   Timer
	KnockbackVX float64

	KnockbackForce float64
	KnockbackScale float64

	JumpSpeed       float64
	DoubleJumpSpeed float64

	// SkipPlatformsUntil disables platform landing (drop-through)
	SkipPlatformsUntil time.Time

	// Platforms is a borrowed reference; the arena owns the registry.
	Platforms *platform.Registry
	World     World
}

// NewCombatant creates a living body at (x, y) with the given parameters
func NewCombatant(x, y float64, p BodyParams, world World, platforms *platform.Registry) Combatant {
	scale := p.KnockbackScale
	if scale == 0 {
		scale = 1
	}
	return Combatant{
		X:                   x,
		Y:                   y,
		Width:               p.Width,
		Height:              p.Height,
		Health:              p.MaxHealth,
		MaxHealth:           p.MaxHealth,
		Alive:               true,
		DoubleJumpAvailable: true,
		Invincible:          NewTimer(p.InvincibleDuration),
		Stunned:             NewTimer(p.StunDuration),
		Knockback:           NewTimer(p.KnockbackDuration),
		KnockbackForce:      p.KnockbackForce,
		KnockbackScale:      scale,
		JumpSpeed:           p.JumpSpeed,
		DoubleJumpSpeed:     p.DoubleJumpSpeed,
		Platforms:           platforms,
		World:               world,
	}
}

// Rect returns the full body rectangle
func (c *Combatant) Rect() geom.Rect {
	return geom.NewRect(c.X, c.Y, c.Width, c.Height)
}

// CenterX returns the horizontal center of the body
func (c *Combatant) CenterX() float64 {
	return c.X + c.Width/2
}

// CenterY returns the vertical center of the body
func (c *Combatant) CenterY() float64 {
	return c.Y + c.Height/2
}

// Bottom returns the y coordinate of the body's feet
func (c *Combatant) Bottom() float64 {
	return c.Y + c.Height
}

// IsInvincible returns true while damage is rejected
func (c *Combatant) IsInvincible() bool {
	return c.Invincible.Active
}

// IsStunned returns true while AI decisions are suspended
func (c *Combatant) IsStunned() bool {
	return c.Stunned.Active
}

// IsKnockedBack returns true while a knockback impulse is being applied
func (c *Combatant) IsKnockedBack() bool {
	return c.Knockback.Active
}

// Disabled reports whether the body is stunned or knocked back
func (c *Combatant) Disabled() bool {
	return c.Stunned.Active || c.Knockback.Active
}

// HealthRatio returns Health / MaxHealth
func (c *Combatant) HealthRatio() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return float64(c.Health) / float64(c.MaxHealth)
}

// Update runs one physics tick: status timers first, then integration and collisions
func (c *Combatant) Update(now time.Time) {
	if !c.Alive {
		return
	}
	c.UpdateStatus(now)
	c.Integrate(now)
}

// UpdateStatus expires invincibility, stun and knockback, and applies the
// damped knockback impulse while it lasts.
func (c *Combatant) UpdateStatus(now time.Time) {
	c.Invincible.Expire(now)
	c.Stunned.Expire(now)

	if !c.Knockback.Active {
		return
	}
	if c.Knockback.Expire(now) {
		c.KnockbackVX = 0
		return
	}
	c.X += c.KnockbackVX * c.World.KnockbackDamping
	c.ClampX()
}

// Integrate applies gravity, moves the body, resolves platform landing,
// snaps to the floor and clamps to the arena.
func (c *Combatant) Integrate(now time.Time) {
	if !c.Grounded {
		c.VY += c.World.Gravity
	}

	c.X += c.VX
	c.Y += c.VY

	c.resolvePlatforms(now)

	if c.Bottom() >= c.World.FloorY {
		c.Y = c.World.FloorY - c.Height
		c.land()
	}

	c.ClampX()
}

func (c *Combatant) resolvePlatforms(now time.Time) {
	if c.Platforms == nil || now.Before(c.SkipPlatformsUntil) {
		return
	}

	body := c.Rect()
	if _, newY, ok := c.Platforms.CheckCollision(body, c.VY); ok {
		c.Y = newY
		c.land()
		return
	}

	// Walked off an edge
	if c.Grounded && c.VY >= 0 {
		onFloor := c.Bottom() >= c.World.FloorY-c.World.FloorSupport
		if !onFloor && !c.Platforms.IsOnPlatform(body) {
			c.Grounded = false
		}
	}
}

func (c *Combatant) land() {
	c.VY = 0
	c.Grounded = true
	c.DoubleJumpAvailable = true
}

// ClampX keeps the body inside the arena horizontally
func (c *Combatant) ClampX() {
	c.X = geom.Clamp(c.X, 0, c.World.Width-c.Width)
}

// Jump performs a ground jump, or the single air jump when airborne.
// Returns false when the air jump has already been used.
func (c *Combatant) Jump() bool {
	if c.Grounded {
		c.VY = -c.JumpSpeed
		c.Grounded = false
		c.DoubleJumpAvailable = true
		return true
	}
	if c.DoubleJumpAvailable {
		c.VY = -c.DoubleJumpSpeed
		c.DoubleJumpAvailable = false
		return true
	}
	return false
}

// TakeDamage applies a hit. It is a no-op while invincible or dead.
// Returns true when the hit was applied.
func (c *Combatant) TakeDamage(now time.Time, hit Hit) bool {
	if !c.Alive || c.Invincible.Active {
		return false
	}

	c.Health -= hit.Amount
	c.Invincible.Start(now)

	if hit.Knockback {
		c.ApplyKnockback(now, hit.SourceX, hit.HasSource)
	}
	if hit.Stun {
		c.Stunned.Start(now)
	}

	if c.Health <= 0 {
		c.Alive = false
	}
	return true
}

// ApplyKnockback starts a knockback pushing away from sourceX,
// or away from the arena center when there is no source.
func (c *Combatant) ApplyKnockback(now time.Time, sourceX float64, hasSource bool) {
	if !c.Alive {
		return
	}
	from := c.World.CenterX()
	if hasSource {
		from = sourceX
	}

	force := c.KnockbackForce * c.KnockbackScale
	if c.CenterX() < from {
		force = -force
	}

	c.Knockback.Start(now)
	c.KnockbackVX = force
}

// Launch forces a knockback impulse and upward velocity regardless of invincibility.
// It never changes health.
func (c *Combatant) Launch(now time.Time, vx, vy float64) {
	if !c.Alive {
		return
	}
	c.Knockback.Start(now)
	c.KnockbackVX = vx
	c.VY = vy
	c.Grounded = false
}

// Heal restores health up to MaxHealth. Dead bodies cannot be healed.
func (c *Combatant) Heal(amount int) {
	if !c.Alive || amount <= 0 {
		return
	}
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}
