package entity

import "time"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Side identifies one of the player's two fists
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// World describes the arena bounds and the physics rules shared by every body
type World struct {
	Width  float64 // x is clamped to [0, Width - body width]
	Height float64 // projectiles die outside [0, Height]
	FloorY float64 // top of the ground

	Gravity float64 // added to VY every tick while airborne (px/tick²)

	// KnockbackDamping is the fraction of a knockback impulse applied per tick
	KnockbackDamping float64

	// FloorSupport is how close (px) to the floor a body counts as supported
	FloorSupport float64
}

// DefaultWorld returns the standard 1024x768 arena rules
func DefaultWorld() World {
	return World{
		Width:            1024,
		Height:           768,
		FloorY:           668,
		Gravity:          0.8,
		KnockbackDamping: 0.1,
		FloorSupport:     5,
	}
}

// CenterX returns the horizontal center of the arena
func (w World) CenterX() float64 {
	return w.Width / 2
}

// OutOfBounds reports whether a point lies outside the arena
func (w World) OutOfBounds(x, y float64) bool {
	return x < 0 || x > w.Width || y < 0 || y > w.Height
}

// Hit describes one incoming damage event
type Hit struct {
	Amount    int
	Knockback bool
	Stun      bool

	// SourceX is the x coordinate the hit came from. When HasSource is false
	// knockback pushes away from the arena center instead.
	SourceX   float64
	HasSource bool
}

// HitFrom returns a hit with a known source position
func HitFrom(amount int, sourceX float64, knockback, stun bool) Hit {
	return Hit{Amount: amount, Knockback: knockback, Stun: stun, SourceX: sourceX, HasSource: true}
}

// ms converts milliseconds to a duration
func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
